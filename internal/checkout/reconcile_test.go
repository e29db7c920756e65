package checkout

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/marcgerasmio/alaika2/internal/models"
	"github.com/marcgerasmio/alaika2/internal/money"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleLines() []models.CartItem {
	return []models.CartItem{
		{ID: 1, UserName: "Ana", ProductName: "Scented Candle", BranchName: "Cebu", Price: price("120.00"), Quantity: 2},
		{ID: 2, UserName: "Ana", ProductName: "Photo Frame", BranchName: "Cebu", Price: price("350.50"), Quantity: 1},
		{ID: 3, UserName: "", ProductName: "Gift Wrap", BranchName: "Manila", Price: price("25.00"), Quantity: 4},
	}
}

func TestReconcileEmptySelection(t *testing.T) {
	txs, consumed, err := Reconcile(sampleLines(), nil, models.PaymentCashOnDelivery, time.Now())
	require.NoError(t, err)
	require.Empty(t, txs)
	require.Empty(t, consumed)
}

func TestReconcileSelectedLines(t *testing.T) {
	asOf := time.Date(2024, 6, 10, 15, 4, 5, 0, time.UTC)

	txs, consumed, err := Reconcile(sampleLines(), []uint{2, 1}, models.PaymentPayPal, asOf)
	require.NoError(t, err)
	require.Len(t, txs, 2)
	require.Equal(t, []uint{2, 1}, consumed)

	// output follows the selection order, not the cart order
	require.Equal(t, "Photo Frame", txs[0].ProductName)
	require.Equal(t, "Scented Candle", txs[1].ProductName)

	require.Equal(t, "350.50", txs[0].Total.StringFixed(2))
	require.Equal(t, "240.00", txs[1].Total.StringFixed(2))

	for _, tx := range txs {
		require.Equal(t, models.PaymentPayPal, tx.ModeOfPayment)
		require.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), tx.Date)
		require.NotEmpty(t, tx.DocumentID)
	}
}

func TestReconcileIgnoresStaleIDs(t *testing.T) {
	txs, consumed, err := Reconcile(sampleLines(), []uint{99, 1, 42}, models.PaymentCashOnDelivery, time.Now())
	require.NoError(t, err)
	require.Len(t, txs, 1)
	require.Equal(t, []uint{1}, consumed)
}

func TestReconcileGuestFallback(t *testing.T) {
	txs, _, err := Reconcile(sampleLines(), []uint{3}, models.PaymentCashOnDelivery, time.Now())
	require.NoError(t, err)
	require.Equal(t, "Guest", txs[0].CustomerName)
}

func TestReconcileInvalidQuantity(t *testing.T) {
	lines := []models.CartItem{
		{ID: 7, UserName: "Ana", ProductName: "Mug", Price: price("99.00"), Quantity: 0},
	}
	_, _, err := Reconcile(lines, []uint{7}, models.PaymentCashOnDelivery, time.Now())
	require.ErrorIs(t, err, money.ErrInvalidQuantity)
}

func TestReconcileCountMatchesSelection(t *testing.T) {
	lines := sampleLines()
	selected := []uint{1, 2, 3, 4, 5}

	txs, consumed, err := Reconcile(lines, selected, models.PaymentCashOnDelivery, time.Now())
	require.NoError(t, err)
	require.Len(t, txs, 3)
	require.Len(t, consumed, 3)
}
