package checkout

import (
	"time"

	"github.com/google/uuid"

	"github.com/marcgerasmio/alaika2/internal/models"
	"github.com/marcgerasmio/alaika2/internal/money"
)

// Reconcile turns the selected cart lines into finalized transactions.
// It returns the transactions in the order the ids were selected,
// together with the ids of the lines that were consumed. Selected ids
// with no matching line are ignored so a stale selection never fails a
// checkout. Reconcile does not touch storage; the caller persists the
// transactions and deletes exactly the consumed lines.
func Reconcile(lines []models.CartItem, selectedIDs []uint, modeOfPayment string, asOf time.Time) ([]models.Transaction, []uint, error) {
	byID := make(map[uint]models.CartItem, len(lines))
	for _, line := range lines {
		byID[line.ID] = line
	}

	date := models.DateOf(asOf)
	transactions := make([]models.Transaction, 0, len(selectedIDs))
	consumed := make([]uint, 0, len(selectedIDs))

	for _, id := range selectedIDs {
		line, ok := byID[id]
		if !ok {
			continue
		}

		total, err := money.LineTotal(line.Price, line.Quantity)
		if err != nil {
			return nil, nil, err
		}

		customer := line.UserName
		if customer == "" {
			customer = "Guest"
		}

		transactions = append(transactions, models.Transaction{
			DocumentID:    uuid.NewString(),
			CustomerName:  customer,
			ProductName:   line.ProductName,
			BranchName:    line.BranchName,
			Quantity:      line.Quantity,
			Total:         total,
			ModeOfPayment: modeOfPayment,
			Date:          date,
		})
		consumed = append(consumed, id)
	}

	return transactions, consumed, nil
}
