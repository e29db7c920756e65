package cart

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/marcgerasmio/alaika2/internal/checkout"
	"github.com/marcgerasmio/alaika2/internal/models"
	"github.com/marcgerasmio/alaika2/internal/money"
	"github.com/marcgerasmio/alaika2/internal/mykafka"
)

type CartHandler struct {
	DB        *gorm.DB
	Producer  *mykafka.Producer
	JWTSecret []byte
}

func (h *CartHandler) GetCart(c echo.Context) error {
	userName, err := GetUser(c, h.JWTSecret)
	if err != nil {
		return err
	}

	var items []models.CartItem
	if err := h.DB.Where("user_name = ?", userName).Find(&items).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, items)
}

func (h *CartHandler) AddToCart(c echo.Context) error {
	userName, err := GetUser(c, h.JWTSecret)
	if err != nil {
		return err
	}

	var req struct {
		ProductID uint `json:"product_id"`
		Quantity  int  `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	var prod models.Product
	if err := h.DB.First(&prod, req.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	unitPrice, err := money.ParsePrice(prod.Price)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var item models.CartItem
	tx := h.DB.Where("user_name = ? AND product_name = ? AND branch_name = ?",
		userName, prod.Name, prod.BranchName).First(&item)
	if tx.Error == nil {
		item.Quantity += req.Quantity
		if err := h.DB.Save(&item).Error; err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		h.publish(c, map[string]any{
			"type":     "cart_item_added",
			"user":     userName,
			"product":  prod.Name,
			"quantity": item.Quantity,
		})
		return c.JSON(http.StatusOK, item)
	}
	if !errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return echo.NewHTTPError(http.StatusInternalServerError, tx.Error.Error())
	}

	newItem := models.CartItem{
		DocumentID:  uuid.NewString(),
		UserName:    userName,
		ProductName: prod.Name,
		BranchName:  prod.BranchName,
		Price:       unitPrice,
		Quantity:    req.Quantity,
	}
	if err := h.DB.Create(&newItem).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	h.publish(c, map[string]any{
		"type":     "cart_item_added",
		"user":     userName,
		"product":  prod.Name,
		"quantity": newItem.Quantity,
	})
	return c.JSON(http.StatusOK, newItem)
}

// DeleteFromCart removes a line by id. Deleting an id that is already
// gone is not an error, so a retried delete stays a no-op.
func (h *CartHandler) DeleteFromCart(c echo.Context) error {
	userName, err := GetUser(c, h.JWTSecret)
	if err != nil {
		return err
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.DB.
		Where("id = ? AND user_name = ?", id, userName).
		Delete(&models.CartItem{}).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	var remaining []models.CartItem
	if err := h.DB.Where("user_name = ?", userName).Find(&remaining).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	h.publish(c, map[string]any{
		"type":         "cart_item_deleted",
		"user":         userName,
		"deleted_item": id,
	})
	return c.JSON(http.StatusOK, remaining)
}

// Checkout converts the selected cart lines into transactions and
// removes them from the cart in a single DB transaction.
func (h *CartHandler) Checkout(c echo.Context) error {
	userName, err := GetUser(c, h.JWTSecret)
	if err != nil {
		return err
	}

	var req struct {
		ItemIDs       []uint `json:"item_ids"`
		ModeOfPayment string `json:"modeOfPayment"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	mode := req.ModeOfPayment
	switch mode {
	case "":
		mode = models.PaymentCashOnDelivery
	case models.PaymentCashOnDelivery, models.PaymentPayPal:
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "unknown payment mode")
	}

	var (
		orders   []models.Transaction
		consumed []uint
	)

	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		var lines []models.CartItem
		if err := tx.Where("user_name = ?", userName).Find(&lines).Error; err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}

		orders, consumed, err = checkout.Reconcile(lines, req.ItemIDs, mode, time.Now())
		if err != nil {
			if errors.Is(err, money.ErrInvalidQuantity) {
				return echo.NewHTTPError(http.StatusBadRequest, err.Error())
			}
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}

		for i := range orders {
			if err := tx.Create(&orders[i]).Error; err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
			}
		}
		for _, id := range consumed {
			if err := tx.
				Where("id = ? AND user_name = ?", id, userName).
				Delete(&models.CartItem{}).Error; err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
			}
		}
		return nil
	})
	if txErr != nil {
		var he *echo.HTTPError
		if errors.As(txErr, &he) {
			return he
		}
		return echo.NewHTTPError(http.StatusInternalServerError, txErr.Error())
	}

	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(o.Total)
	}

	h.publish(c, map[string]any{
		"type":   "order_created",
		"user":   userName,
		"orders": len(orders),
		"total":  total.StringFixed(2),
	})

	return c.JSON(http.StatusOK, echo.Map{
		"orders":          orders,
		"consumed_ids":    consumed,
		"total":           total,
		"mode_of_payment": mode,
	})
}
