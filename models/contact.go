package models

import "gorm.io/gorm"

type Contact struct {
	ID        uint           `gorm:"primaryKey"`
	Name      string         `gorm:"not null"`
	Phone     string         `gorm:"not null"`
	Nickname  *string        `gorm:""`
	UserID    uint           `gorm:"not null;index"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
