package models

import "time"

// OrderSequenceRowID is the primary key of the single counter row.
const OrderSequenceRowID = 1

// OrderSequence holds the monotonic order number counter. Exactly one row
// (id = 1) exists; NextNumber is the most recently issued number.
type OrderSequence struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	NextNumber int64     `gorm:"column:next_number;not null"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
