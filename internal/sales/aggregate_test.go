package sales

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/marcgerasmio/alaika2/internal/models"
)

func tx(product, branch string, qty int, date string) models.Transaction {
	d, _ := time.Parse(time.DateOnly, date)
	return models.Transaction{ProductName: product, BranchName: branch, Quantity: qty, Date: d}
}

func TestTopSalesAggregatesByProduct(t *testing.T) {
	txs := []models.Transaction{
		tx("A", "Cebu", 3, "2024-06-01"),
		tx("B", "Cebu", 5, "2024-06-02"),
		tx("A", "Manila", 2, "2024-06-03"),
	}

	got := TopSales(txs, "", 0)
	require.Equal(t, []ProductSales{
		{ProductName: "A", TotalQuantity: 5},
		{ProductName: "B", TotalQuantity: 5},
	}, got)
}

func TestTopSalesTieKeepsFirstSeenOrder(t *testing.T) {
	txs := []models.Transaction{
		tx("B", "Cebu", 5, "2024-06-01"),
		tx("A", "Cebu", 5, "2024-06-02"),
	}

	got := TopSales(txs, "", 0)
	require.Equal(t, "B", got[0].ProductName)
	require.Equal(t, "A", got[1].ProductName)
}

func TestTopSalesBranchFilter(t *testing.T) {
	txs := []models.Transaction{
		tx("A", "Cebu", 3, "2024-06-01"),
		tx("A", "Manila", 9, "2024-06-01"),
		tx("B", "Manila", 1, "2024-06-01"),
	}

	got := TopSales(txs, "Manila", 0)
	require.Equal(t, []ProductSales{
		{ProductName: "A", TotalQuantity: 9},
		{ProductName: "B", TotalQuantity: 1},
	}, got)
}

func TestTopSalesDropsNonPositiveAndTruncates(t *testing.T) {
	txs := []models.Transaction{
		tx("Zero", "Cebu", 0, "2024-06-01"),
		tx("C", "Cebu", 1, "2024-06-01"),
		tx("B", "Cebu", 2, "2024-06-01"),
		tx("A", "Cebu", 3, "2024-06-01"),
	}

	got := TopSales(txs, "", 2)
	require.Equal(t, []ProductSales{
		{ProductName: "A", TotalQuantity: 3},
		{ProductName: "B", TotalQuantity: 2},
	}, got)

	require.LessOrEqual(t, len(TopSales(txs, "", 0)), DefaultTopLimit)
}

func TestTopSalesSortedNonIncreasing(t *testing.T) {
	txs := []models.Transaction{
		tx("A", "Cebu", 2, "2024-06-01"),
		tx("B", "Cebu", 7, "2024-06-01"),
		tx("C", "Cebu", 4, "2024-06-01"),
		tx("A", "Cebu", 1, "2024-06-01"),
	}

	got := TopSales(txs, "", 0)
	for i := 1; i < len(got); i++ {
		require.GreaterOrEqual(t, got[i-1].TotalQuantity, got[i].TotalQuantity)
	}
}

func TestTopSalesEmptyInput(t *testing.T) {
	require.Empty(t, TopSales(nil, "", 0))
	require.Empty(t, TopSales(nil, "Cebu", 5))
}

func TestOrdersPerDayEmptyWindow(t *testing.T) {
	ref := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	got := OrdersPerDay(nil, "", 5, ref)
	require.Len(t, got, 5)
	require.Equal(t, time.Date(2024, 6, 6, 0, 0, 0, 0, time.UTC), got[0].Date)
	require.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), got[4].Date)
	for _, b := range got {
		require.Zero(t, b.Count)
	}
}

func TestOrdersPerDayCountsExactDates(t *testing.T) {
	ref := time.Date(2024, 6, 10, 23, 59, 0, 0, time.UTC)
	txs := []models.Transaction{
		tx("A", "Cebu", 1, "2024-06-07"),
		tx("B", "Cebu", 1, "2024-06-07"),
		tx("C", "Cebu", 1, "2024-06-10"),
	}

	got := OrdersPerDay(txs, "", 5, ref)
	require.Len(t, got, 5)
	require.Equal(t, 2, got[1].Count) // 06-07
	require.Equal(t, 1, got[4].Count) // 06-10
	require.Zero(t, got[0].Count)
	require.Zero(t, got[2].Count)
	require.Zero(t, got[3].Count)
}

func TestOrdersPerDayExcludesOutsideWindow(t *testing.T) {
	ref := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	txs := []models.Transaction{
		tx("A", "Cebu", 1, "2024-06-05"),
		tx("B", "Cebu", 1, "2024-06-11"),
	}

	got := OrdersPerDay(txs, "", 5, ref)
	for _, b := range got {
		require.Zero(t, b.Count)
	}
}

func TestOrdersPerDayBranchFilter(t *testing.T) {
	ref := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	txs := []models.Transaction{
		tx("A", "Cebu", 1, "2024-06-10"),
		tx("B", "Manila", 1, "2024-06-10"),
	}

	got := OrdersPerDay(txs, "Cebu", 1, ref)
	require.Len(t, got, 1)
	require.Equal(t, 1, got[0].Count)
}

func TestBranchesDistinctFirstSeen(t *testing.T) {
	txs := []models.Transaction{
		tx("A", "Cebu", 1, "2024-06-01"),
		tx("B", "Manila", 1, "2024-06-01"),
		tx("C", "Cebu", 1, "2024-06-02"),
	}

	require.Equal(t, []string{"Cebu", "Manila"}, Branches(txs))
	require.Empty(t, Branches(nil))
}
