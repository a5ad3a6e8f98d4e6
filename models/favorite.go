package models

type Favorite struct {
	ID        uint    `gorm:"primaryKey"`
	UserID    uint    `gorm:"not null;uniqueIndex:idx_favorites_user_contact"`
	ContactID uint    `gorm:"not null;uniqueIndex:idx_favorites_user_contact"`
	Contact   Contact `gorm:"foreignKey:ContactID"`
}
