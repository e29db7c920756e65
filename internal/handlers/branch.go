package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/marcgerasmio/alaika2/internal/models"
)

type BranchHandler struct {
	DB *gorm.DB
}

func (h *BranchHandler) GetBranches(c echo.Context) error {
	var branches []models.Branch
	if err := h.DB.Order("id ASC").Find(&branches).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, branches)
}
