package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"contact-api/middleware"
	"contact-api/models"
	"contact-api/repository"
	"contact-api/utils"
)

type ChangePasswordRequest struct {
	Password    string `json:"password" binding:"required,min=3,max=10"`
	NewPassword string `json:"new_password" binding:"required,min=3,max=10"`
}

type CheckPasswordRequest struct {
	Password string `json:"password" binding:"required"`
}

type EditProfileRequest struct {
	Firstname string `json:"firstname" binding:"required,min=3"`
	Lastname  string `json:"lastname" binding:"required,min=3"`
}

func currentUser(c *gin.Context, repo *repository.UserRepository) (*models.User, bool) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.Error(c, "User not authenticated", http.StatusUnauthorized, nil)
		return nil, false
	}
	user, err := repo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.Error(c, "User not found", http.StatusNotFound, nil)
		} else {
			utils.Error(c, "An error has occurred", http.StatusInternalServerError, nil)
		}
		return nil, false
	}
	return user, true
}

func ChangePassword(db *gorm.DB) gin.HandlerFunc {
	repo := repository.NewUserRepository(db)
	return func(c *gin.Context) {
		var body ChangePasswordRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.Error(c, "Validation error", http.StatusUnprocessableEntity, utils.ValidationMessages(err))
			return
		}

		user, ok := currentUser(c, repo)
		if !ok {
			return
		}

		switch err := repo.ChangePassword(user, body.Password, body.NewPassword); {
		case errors.Is(err, repository.ErrInvalidCredentials):
			utils.Error(c, "Current password incorrect", http.StatusUnauthorized, gin.H{"message": "Incorrect password"})
		case errors.Is(err, repository.ErrNoChange):
			utils.Error(c, "The new password must be different from the current one", http.StatusBadRequest, nil)
		case err != nil:
			utils.Error(c, "An error has occurred", http.StatusInternalServerError, nil)
		default:
			utils.Success(c, "Password updated successfully", http.StatusOK, nil)
		}
	}
}

func CheckPassword(db *gorm.DB) gin.HandlerFunc {
	repo := repository.NewUserRepository(db)
	return func(c *gin.Context) {
		var body CheckPasswordRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.Error(c, "Validation error", http.StatusUnprocessableEntity, utils.ValidationMessages(err))
			return
		}

		user, ok := currentUser(c, repo)
		if !ok {
			return
		}

		if err := repo.CheckPassword(user, body.Password); err != nil {
			utils.Error(c, "Current password incorrect", http.StatusUnauthorized, gin.H{"message": "Incorrect password"})
			return
		}
		utils.Success(c, "Password correct!", http.StatusOK, nil)
	}
}

func EditProfile(db *gorm.DB) gin.HandlerFunc {
	repo := repository.NewUserRepository(db)
	return func(c *gin.Context) {
		var body EditProfileRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.Error(c, "Validation error", http.StatusUnprocessableEntity, utils.ValidationMessages(err))
			return
		}

		user, ok := currentUser(c, repo)
		if !ok {
			return
		}

		switch err := repo.EditProfile(user, body.Firstname, body.Lastname); {
		case errors.Is(err, repository.ErrNoChange):
			// Identical values on a profile edit are not an error.
			utils.Success(c, "No changes, profile was not updated", http.StatusOK, gin.H{"message": "No changes, profile was not updated"})
		case err != nil:
			utils.Error(c, "An error has occurred", http.StatusInternalServerError, nil)
		default:
			utils.Success(c, "Profile updated successfully", http.StatusOK, nil)
		}
	}
}
