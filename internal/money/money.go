package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPriceFormat = errors.New("invalid price format")
	ErrInvalidQuantity    = errors.New("invalid quantity")
)

// ParsePrice converts a display price like "₱1,299.00" into a decimal
// amount. The currency symbol and grouping commas are stripped before
// parsing.
func ParsePrice(text string) (decimal.Decimal, error) {
	s := strings.TrimSpace(text)
	s = strings.ReplaceAll(s, "₱", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidPriceFormat, text)
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidPriceFormat, text)
	}
	return amount, nil
}

// LineTotal is unit price times quantity, rounded to centavos.
func LineTotal(unitPrice decimal.Decimal, quantity int) (decimal.Decimal, error) {
	if quantity < 1 {
		return decimal.Zero, fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}
	total := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	return total.Round(2), nil
}
