package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/marcgerasmio/alaika2/internal/logging"
	"github.com/marcgerasmio/alaika2/internal/models"
	"github.com/marcgerasmio/alaika2/internal/sales"
	"github.com/marcgerasmio/alaika2/internal/util"
)

type TransactionHandler struct {
	DB *gorm.DB
}

// History returns the caller's purchase history, newest first.
func (h *TransactionHandler) History(c echo.Context) error {
	customer, _ := c.Get("userName").(string)
	if customer == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	var txs []models.Transaction
	if err := h.DB.
		Where("customer_name = ?", customer).
		Order("date DESC").
		Find(&txs).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, txs)
}

func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	page := parseIntDefault(c.QueryParam("page"), 1)
	size := parseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	var total int64
	if err := h.DB.Model(&models.Transaction{}).Count(&total).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	var txs []models.Transaction
	if err := h.DB.Order("id ASC").Offset(offset).Limit(limit).Find(&txs).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]any{
		"data": txs,
		"meta": map[string]any{
			"page":  page,
			"size":  limit,
			"total": total,
		},
	})
}

func (h *TransactionHandler) TopSales(c echo.Context) error {
	l := logging.FromContext(c.Request().Context()).With("handler", "transactions.top_sales")

	branch := c.QueryParam("branch")
	limit := parseIntDefault(c.QueryParam("limit"), sales.DefaultTopLimit)

	txs, err := h.loadTransactions()
	if err != nil {
		l.Error("load transactions failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	ranked := sales.TopSales(txs, branch, limit)
	l.Info("top sales computed", "branch", branch, "groups", len(ranked))

	return c.JSON(http.StatusOK, echo.Map{
		"branch":    branch,
		"top_sales": ranked,
	})
}

func (h *TransactionHandler) OrdersPerDay(c echo.Context) error {
	l := logging.FromContext(c.Request().Context()).With("handler", "transactions.orders_per_day")

	branch := c.QueryParam("branch")
	days := parseIntDefault(c.QueryParam("days"), 7)
	if days < 1 || days > 366 {
		return echo.NewHTTPError(http.StatusBadRequest, "days out of range")
	}

	ref := time.Now()
	if v := c.QueryParam("date"); v != "" {
		parsed, err := time.Parse(time.DateOnly, v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid date")
		}
		ref = parsed
	}

	txs, err := h.loadTransactions()
	if err != nil {
		l.Error("load transactions failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"branch":  branch,
		"buckets": sales.OrdersPerDay(txs, branch, days, ref),
	})
}

// DashboardBranches lists the branches that actually appear in the
// recorded transactions, for the dashboard's filter dropdown.
func (h *TransactionHandler) DashboardBranches(c echo.Context) error {
	txs, err := h.loadTransactions()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"branches": sales.Branches(txs)})
}

func (h *TransactionHandler) loadTransactions() ([]models.Transaction, error) {
	var txs []models.Transaction
	if err := h.DB.Order("id ASC").Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}
