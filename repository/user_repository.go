package repository

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"contact-api/models"
)

const bcryptCost = 14

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(firstname, lastname, email, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}
	user := models.User{
		Firstname: firstname,
		Lastname:  lastname,
		Email:     email,
		Password:  string(hash),
	}
	if err := r.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) EmailTaken(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Authenticate returns ErrInvalidCredentials for both an unknown email and a
// wrong password so callers cannot enumerate accounts.
func (r *UserRepository) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

func (r *UserRepository) CheckPassword(user *models.User, password string) error {
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// ChangePassword swaps the stored hash. Returns ErrInvalidCredentials when
// the old password does not match, ErrNoChange when the new password equals
// the old one.
func (r *UserRepository) ChangePassword(user *models.User, oldPassword, newPassword string) error {
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)) != nil {
		return ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(newPassword)) == nil {
		return ErrNoChange
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return err
	}
	user.Password = string(hash)
	return r.db.Save(user).Error
}

// EditProfile updates the name fields. Returns ErrNoChange when both values
// are identical to the stored ones.
func (r *UserRepository) EditProfile(user *models.User, firstname, lastname string) error {
	if user.Firstname == firstname && user.Lastname == lastname {
		return ErrNoChange
	}
	user.Firstname = firstname
	user.Lastname = lastname
	return r.db.Save(user).Error
}
