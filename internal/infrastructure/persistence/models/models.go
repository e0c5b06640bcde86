// Package models holds the gorm persistence shapes. They are the
// anti-corruption layer between the domain aggregates and the database.
package models

// All returns every model, in dependency-free order, for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&ProjectModel{},
		&ProjectAssignmentModel{},
		&TicketModel{},
		&CommentModel{},
		&TicketHistoryModel{},
		&AttachmentModel{},
	}
}
