package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PaymentCashOnDelivery = "Cash on Delivery"
	PaymentPayPal         = "PayPal"
)

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"  json:"id"`
	Name         string `gorm:"not null"                  json:"name"`
	Email        string `gorm:"unique;not null"           json:"email"`
	PasswordHash string `gorm:"not null"                  json:"-"`
	Role         string `gorm:"not null;default:customer" json:"role"`
}

type RefreshToken struct {
	ID        uint   `gorm:"primaryKey"          json:"id"`
	Token     string `gorm:"unique;not null"     json:"token"`
	UserID    uint   `gorm:"index;not null"      json:"user_id"`
	Role      string `gorm:"not null"            json:"role"`
	ExpiresAt int64  `gorm:"not null"            json:"expires_at"`
	Revoked   bool   `gorm:"default:false"       json:"revoked"`
}

type Branch struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"unique;not null"          json:"name"`
	Description string `gorm:"not null"                 json:"description"`
}

// Price keeps the catalog's display formatting ("₱1,299.00"); numeric
// values are derived through money.ParsePrice at the point of sale.
type Product struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	DocumentID  string `gorm:"uniqueIndex;not null"     json:"document_id"`
	Name        string `gorm:"not null;index"           json:"product_name"`
	BranchName  string `gorm:"not null;index"           json:"branch_name"`
	Category    string `json:"category"`
	Price       string `gorm:"not null"                 json:"product_price"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type CartItem struct {
	ID          uint            `gorm:"primaryKey"                  json:"id"`
	DocumentID  string          `gorm:"uniqueIndex;not null"        json:"document_id"`
	UserName    string          `gorm:"index;not null"              json:"user_name"`
	ProductName string          `gorm:"not null"                    json:"product_name"`
	BranchName  string          `gorm:"not null"                    json:"branch_name"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Quantity    int             `gorm:"default:1;check:quantity>0"  json:"quantity"`
}

// Transaction is a finalized purchase. It is written once at checkout
// and never updated afterwards.
type Transaction struct {
	ID            uint            `gorm:"primaryKey"                  json:"id"`
	DocumentID    string          `gorm:"uniqueIndex;not null"        json:"document_id"`
	CustomerName  string          `gorm:"index;not null"              json:"customer_name"`
	ProductName   string          `gorm:"not null"                    json:"product_name"`
	BranchName    string          `gorm:"index;not null"              json:"branch_name"`
	Quantity      int             `gorm:"not null"                    json:"quantity"`
	Total         decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
	ModeOfPayment string          `gorm:"not null"                    json:"modeOfPayment"`
	Date          time.Time       `gorm:"type:date;index;not null"    json:"date"`
}

// DateOf drops the time component, keeping the calendar date in UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
