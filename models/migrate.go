package models

import "gorm.io/gorm"

// Migrate creates the schema. The phone uniqueness constraint only covers
// active rows, so a soft-deleted contact frees its number for reuse; GORM
// tags cannot express a filtered index, hence the raw statement.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&User{}, &Contact{}, &Favorite{}); err != nil {
		return err
	}
	return db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_contacts_user_phone_active
		 ON contacts (user_id, phone) WHERE deleted_at IS NULL`,
	).Error
}
