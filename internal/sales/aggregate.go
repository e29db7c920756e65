package sales

import (
	"sort"
	"time"

	"github.com/marcgerasmio/alaika2/internal/models"
)

const DefaultTopLimit = 20

type ProductSales struct {
	ProductName   string `json:"product_name"`
	TotalQuantity int    `json:"quantity"`
}

type DayCount struct {
	Date  time.Time `json:"date"`
	Count int       `json:"count"`
}

// TopSales ranks products by cumulative quantity sold. An empty branch
// means all branches. Grouping is by the literal product name; groups
// that sum to zero or less are dropped. Ties keep the order in which
// the groups first appeared in the input.
func TopSales(txs []models.Transaction, branch string, limit int) []ProductSales {
	if limit <= 0 {
		limit = DefaultTopLimit
	}

	totals := make(map[string]int)
	var order []string
	for _, tx := range txs {
		if branch != "" && tx.BranchName != branch {
			continue
		}
		if _, seen := totals[tx.ProductName]; !seen {
			order = append(order, tx.ProductName)
		}
		totals[tx.ProductName] += tx.Quantity
	}

	ranked := make([]ProductSales, 0, len(order))
	for _, name := range order {
		if totals[name] <= 0 {
			continue
		}
		ranked = append(ranked, ProductSales{ProductName: name, TotalQuantity: totals[name]})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalQuantity > ranked[j].TotalQuantity
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// OrdersPerDay counts transactions per calendar date over a window of
// windowDays ending at referenceDate inclusive. Every bucket is
// present in ascending date order, zero counts included; transactions
// dated outside the window contribute to no bucket.
func OrdersPerDay(txs []models.Transaction, branch string, windowDays int, referenceDate time.Time) []DayCount {
	if windowDays <= 0 {
		return nil
	}

	end := models.DateOf(referenceDate)
	start := end.AddDate(0, 0, -(windowDays - 1))

	counts := make(map[time.Time]int, windowDays)
	for _, tx := range txs {
		if branch != "" && tx.BranchName != branch {
			continue
		}
		day := models.DateOf(tx.Date)
		if day.Before(start) || day.After(end) {
			continue
		}
		counts[day]++
	}

	buckets := make([]DayCount, 0, windowDays)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		buckets = append(buckets, DayCount{Date: day, Count: counts[day]})
	}
	return buckets
}

// Branches returns the distinct branch names appearing in the
// transactions, in first-seen order. The admin dashboard builds its
// branch filter from this set.
func Branches(txs []models.Transaction) []string {
	seen := make(map[string]bool)
	var names []string
	for _, tx := range txs {
		if seen[tx.BranchName] {
			continue
		}
		seen[tx.BranchName] = true
		names = append(names, tx.BranchName)
	}
	return names
}
