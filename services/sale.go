package services

import (
	"errors"
	"fmt"

	"clinicpro-backend/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SaleLine is one cart line at checkout. The operator may override the unit
// price, so the line price is taken as given rather than re-read from the
// catalog.
type SaleLine struct {
	Type     string    `json:"type" binding:"required,oneof=service course"`
	ItemID   uuid.UUID `json:"id" binding:"required"`
	Name     string    `json:"name"`
	Price    float64   `json:"price" binding:"min=0"`
	Quantity int       `json:"quantity" binding:"required,min=1"`
}

// ProcessSale records a checkout: one transaction row with a snapshot of the
// cart, plus one independent course instance per unit of every course line.
// Buying 2x a 10-session course yields two separate 10-session instances,
// never one 20-session balance.
//
// All inserts run in a single database transaction, so a failed course grant
// rolls back the sale instead of leaving a paid-but-ungranted state.
func (s *ClinicService) ProcessSale(actor uuid.UUID, customerID uuid.UUID, lines []SaleLine, paymentMethod string) (*models.Transaction, error) {
	if err := s.authorize(actor); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	for _, line := range lines {
		if line.Quantity < 1 {
			return nil, fmt.Errorf("invalid quantity %d for item %s", line.Quantity, line.ItemID)
		}
	}

	var customer models.Customer
	if err := s.db.First(&customer, "id = ?", customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("customer not found: %w", err)
		}
		return nil, err
	}

	total := decimal.Zero
	for _, line := range lines {
		lineTotal := decimal.NewFromFloat(line.Price).Mul(decimal.NewFromInt(int64(line.Quantity)))
		total = total.Add(lineTotal)
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	items := make(models.TransactionItemList, 0, len(lines))
	var grants []models.CustomerCourse
	for _, line := range lines {
		name := line.Name
		if line.Type == "course" {
			var def models.CourseDefinition
			err := tx.First(&def, "id = ?", line.ItemID).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				// The cart referenced a definition that no longer exists.
				// Keep the paid line in the snapshot but grant nothing.
				logrus.WithField("courseId", line.ItemID).Warn("sold course has no definition, no instances granted")
			case err != nil:
				tx.Rollback()
				return nil, fmt.Errorf("resolving course %s: %w", line.ItemID, err)
			default:
				if name == "" {
					name = def.Name
				}
				for i := 0; i < line.Quantity; i++ {
					grants = append(grants, models.CustomerCourse{
						CustomerID:     customerID,
						CourseID:       def.ID,
						CourseName:     def.Name,
						TotalUnits:     def.TotalUnits,
						RemainingUnits: def.TotalUnits,
						Active:         true,
					})
				}
			}
		} else if name == "" {
			var service models.Service
			if err := tx.First(&service, "id = ?", line.ItemID).Error; err == nil {
				name = service.Name
			}
		}
		items = append(items, models.TransactionItem{
			Name:     name,
			Price:    line.Price,
			Quantity: line.Quantity,
		})
	}

	transaction := models.Transaction{
		CustomerID:    customerID,
		Items:         items,
		TotalAmount:   total.Round(2).InexactFloat64(),
		PaymentMethod: paymentMethod,
	}
	if err := tx.Create(&transaction).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("recording sale: %w", err)
	}

	for i := range grants {
		if err := tx.Create(&grants[i]).Error; err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("granting course instance: %w", err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("committing sale: %w", err)
	}

	s.refreshAfterWrite()
	return &transaction, nil
}

// UpdateTransactionItems is the price-correction path: it rewrites the item
// snapshot of an existing transaction and recomputes the total to match. No
// other transaction field can be edited after the fact.
func (s *ClinicService) UpdateTransactionItems(actor uuid.UUID, id uuid.UUID, items []models.TransactionItem) (*models.Transaction, error) {
	if err := s.authorize(actor); err != nil {
		return nil, err
	}

	var transaction models.Transaction
	if err := s.db.First(&transaction, "id = ?", id).Error; err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, item := range items {
		lineTotal := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(lineTotal)
	}

	transaction.Items = items
	transaction.TotalAmount = total.Round(2).InexactFloat64()
	if err := s.db.Model(&transaction).Updates(map[string]interface{}{
		"items":        models.TransactionItemList(items),
		"total_amount": transaction.TotalAmount,
	}).Error; err != nil {
		return nil, fmt.Errorf("correcting transaction: %w", err)
	}

	s.refreshAfterWrite()
	return &transaction, nil
}
