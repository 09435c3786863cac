package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
)

// Consumable links a service or course definition to an inventory item.
// QuantityUsed is the amount deducted per single unit of the service/course.
type Consumable struct {
	InventoryItemID uuid.UUID `json:"inventoryItemId"`
	QuantityUsed    int       `json:"quantityUsed"`
}

// ConsumableList is stored as a jsonb column.
type ConsumableList []Consumable

func (l ConsumableList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal(ConsumableList{})
	}
	return json.Marshal(l)
}

func (l *ConsumableList) Scan(value interface{}) error {
	if value == nil {
		*l = ConsumableList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("unsupported type for ConsumableList")
	}
}

// StringList is stored as a jsonb column (photo references etc).
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal(StringList{})
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("unsupported type for StringList")
	}
}
