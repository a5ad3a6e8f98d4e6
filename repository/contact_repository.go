package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"contact-api/models"
)

// PerPage is the fixed page size for every list endpoint.
const PerPage = 10

// ContactFilters are case-insensitive substring matches, ANDed together.
type ContactFilters struct {
	Name     string
	Phone    string
	Nickname string
}

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

var contactOrderColumns = map[string]bool{
	"id": true, "name": true, "phone": true, "nickname": true,
}

func applyContactFilters(q *gorm.DB, f ContactFilters, column func(string) string) *gorm.DB {
	if f.Name != "" {
		q = q.Where("LOWER("+column("name")+") LIKE LOWER(?)", "%"+f.Name+"%")
	}
	if f.Phone != "" {
		q = q.Where("LOWER("+column("phone")+") LIKE LOWER(?)", "%"+f.Phone+"%")
	}
	if f.Nickname != "" {
		q = q.Where("LOWER("+column("nickname")+") LIKE LOWER(?)", "%"+f.Nickname+"%")
	}
	return q
}

// List returns one page of the user's active contacts plus the total count
// across all pages.
func (r *ContactRepository) List(userID uint, f ContactFilters, orderBy, order string, page int) ([]models.Contact, int64, error) {
	if !contactOrderColumns[orderBy] {
		orderBy = "id"
	}
	if order != "desc" {
		order = "asc"
	}
	if page < 1 {
		page = 1
	}

	q := applyContactFilters(r.db.Model(&models.Contact{}).Where("user_id = ?", userID), f,
		func(col string) string { return col })

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var contacts []models.Contact
	err := q.Order(orderBy + " " + order).
		Limit(PerPage).
		Offset((page - 1) * PerPage).
		Find(&contacts).Error
	if err != nil {
		return nil, 0, err
	}
	return contacts, total, nil
}

// Create inserts a contact. The active-row duplicate check here is a
// courtesy; the partial unique index is the final arbiter under races.
func (r *ContactRepository) Create(userID uint, name, phone string, nickname *string) (*models.Contact, error) {
	taken, err := r.phoneTaken(userID, phone, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicatePhone
	}

	contact := models.Contact{Name: name, Phone: phone, Nickname: nickname, UserID: userID}
	if err := r.db.Create(&contact).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicatePhone
		}
		return nil, err
	}
	return &contact, nil
}

// GetByID resolves an active contact without an ownership check; callers
// decide authorization after existence is settled.
func (r *ContactRepository) GetByID(id uint) (*models.Contact, error) {
	var contact models.Contact
	if err := r.db.First(&contact, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &contact, nil
}

func (r *ContactRepository) Update(contact *models.Contact, name, phone string, nickname *string) error {
	if contact.Name == name && contact.Phone == phone && equalNickname(contact.Nickname, nickname) {
		return ErrNoChange
	}

	taken, err := r.phoneTaken(contact.UserID, phone, contact.ID)
	if err != nil {
		return err
	}
	if taken {
		return ErrDuplicatePhone
	}

	contact.Name = name
	contact.Phone = phone
	contact.Nickname = nickname
	if err := r.db.Save(contact).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicatePhone
		}
		return err
	}
	return nil
}

// SoftDelete tombstones the contact and removes its favorite, if any, in the
// same transaction.
func (r *ContactRepository) SoftDelete(contact *models.Contact) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("contact_id = ?", contact.ID).Delete(&models.Favorite{}).Error; err != nil {
			return err
		}
		return tx.Delete(contact).Error
	})
}

// RestoreAll walks the user's trashed contacts in id order and restores each
// one whose phone is not held by another active contact. Each restore runs
// in its own transaction so one conflict never blocks the rest. Returns
// ErrNotFound when there is nothing to restore.
func (r *ContactRepository) RestoreAll(userID uint) ([]string, error) {
	var trashed []models.Contact
	err := r.db.Unscoped().
		Where("user_id = ? AND deleted_at IS NOT NULL", userID).
		Order("id").
		Find(&trashed).Error
	if err != nil {
		return nil, err
	}
	if len(trashed) == 0 {
		return nil, ErrNotFound
	}

	messages := make([]string, 0, len(trashed))
	for _, contact := range trashed {
		taken, err := r.phoneTaken(userID, contact.Phone, 0)
		if err != nil {
			return nil, err
		}
		if taken {
			messages = append(messages, fmt.Sprintf(
				"An active contact with phone %s-%s already exists. Not restored.",
				contact.Phone, contact.Name))
			continue
		}
		err = r.db.Transaction(func(tx *gorm.DB) error {
			return tx.Unscoped().Model(&models.Contact{}).
				Where("id = ?", contact.ID).
				Update("deleted_at", nil).Error
		})
		if err != nil {
			return nil, err
		}
		messages = append(messages, fmt.Sprintf("Contact with phone %s restored.", contact.Phone))
	}
	return messages, nil
}

func (r *ContactRepository) phoneTaken(userID uint, phone string, excludeID uint) (bool, error) {
	q := r.db.Model(&models.Contact{}).Where("user_id = ? AND phone = ?", userID, phone)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func equalNickname(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
