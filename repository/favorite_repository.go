package repository

import (
	"errors"

	"gorm.io/gorm"

	"contact-api/models"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// List returns one page of the user's favorites with their contacts
// embedded. Filters apply to the joined contact's fields.
func (r *FavoriteRepository) List(userID uint, f ContactFilters, page int) ([]models.Favorite, int64, error) {
	if page < 1 {
		page = 1
	}

	q := r.db.Model(&models.Favorite{}).
		Joins("JOIN contacts ON contacts.id = favorites.contact_id AND contacts.deleted_at IS NULL").
		Where("favorites.user_id = ?", userID)
	q = applyContactFilters(q, f, func(col string) string { return "contacts." + col })

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var favorites []models.Favorite
	err := q.Preload("Contact").
		Order("favorites.id asc").
		Limit(PerPage).
		Offset((page - 1) * PerPage).
		Find(&favorites).Error
	if err != nil {
		return nil, 0, err
	}
	return favorites, total, nil
}

// Create favorites a contact. The duplicate check runs before insert so the
// failure surfaces as a validation error; the unique index backs it up.
func (r *FavoriteRepository) Create(userID, contactID uint) (*models.Favorite, error) {
	exists, err := r.Exists(userID, contactID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateFavorite
	}

	favorite := models.Favorite{UserID: userID, ContactID: contactID}
	if err := r.db.Create(&favorite).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateFavorite
		}
		return nil, err
	}
	return &favorite, nil
}

func (r *FavoriteRepository) Exists(userID, contactID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Favorite{}).
		Where("user_id = ? AND contact_id = ?", userID, contactID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetByID resolves a favorite with its contact hydrated.
func (r *FavoriteRepository) GetByID(id uint) (*models.Favorite, error) {
	var favorite models.Favorite
	if err := r.db.Preload("Contact").First(&favorite, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &favorite, nil
}

// GetByIDBare resolves a favorite without the contact relation; enough for
// ownership checks before a delete.
func (r *FavoriteRepository) GetByIDBare(id uint) (*models.Favorite, error) {
	var favorite models.Favorite
	if err := r.db.First(&favorite, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &favorite, nil
}

func (r *FavoriteRepository) Delete(favorite *models.Favorite) error {
	return r.db.Delete(favorite).Error
}
