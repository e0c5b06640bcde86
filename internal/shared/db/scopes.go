package db

import (
	"gorm.io/gorm"
)

// OldestFirst orders rows by creation time, breaking ties on the primary key
// so rows written in the same millisecond keep their insertion order.
//
//	db.Scopes(db.OldestFirst()).Where("ticket_id = ?", id).Find(&comments)
func OldestFirst() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC").Order("id ASC")
	}
}
