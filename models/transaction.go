package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PaymentCash       = "Cash"
	PaymentCreditCard = "Credit Card"
	PaymentTransfer   = "Transfer"
)

// TransactionItem is a point-in-time snapshot of a cart line. It deliberately
// carries no catalog reference, so later price edits never alter history.
type TransactionItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type TransactionItemList []TransactionItem

func (l TransactionItemList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal(TransactionItemList{})
	}
	return json.Marshal(l)
}

func (l *TransactionItemList) Scan(value interface{}) error {
	if value == nil {
		*l = TransactionItemList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("unsupported type for TransactionItemList")
	}
}

// Transaction is an append-only sales record. The only permitted mutation is
// the price-correction path which rewrites items and recomputes total_amount.
type Transaction struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null" json:"customerId"`

	Items         TransactionItemList `gorm:"type:jsonb" json:"items"`
	TotalAmount   float64             `gorm:"column:total_amount;type:decimal(10,2);not null" json:"totalAmount"`
	PaymentMethod string              `gorm:"column:payment_method" json:"paymentMethod"`

	CreatedAt time.Time `json:"date"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}
