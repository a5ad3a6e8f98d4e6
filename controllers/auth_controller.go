package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"contact-api/middleware"
	"contact-api/repository"
	"contact-api/utils"
)

type RegisterRequest struct {
	Firstname string `json:"firstname" binding:"required,min=3"`
	Lastname  string `json:"lastname" binding:"required,min=3"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=3,max=10"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func Register(db *gorm.DB) gin.HandlerFunc {
	repo := repository.NewUserRepository(db)
	return func(c *gin.Context) {
		var body RegisterRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.Error(c, "Validation error", http.StatusUnprocessableEntity, utils.ValidationMessages(err))
			return
		}

		// Email uniqueness is a validation concern, same shape as the rest.
		taken, err := repo.EmailTaken(body.Email)
		if err != nil {
			utils.Error(c, "An error has occurred", http.StatusInternalServerError, nil)
			return
		}
		if taken {
			utils.Error(c, "Validation error", http.StatusUnprocessableEntity, map[string][]string{
				"email": {"The email has already been taken."},
			})
			return
		}

		if _, err := repo.Create(body.Firstname, body.Lastname, body.Email, body.Password); err != nil {
			utils.Error(c, "An error has occurred", http.StatusInternalServerError, nil)
			return
		}
		utils.Success(c, "User registered successfully", http.StatusCreated, nil)
	}
}

func Login(db *gorm.DB) gin.HandlerFunc {
	repo := repository.NewUserRepository(db)
	return func(c *gin.Context) {
		var body LoginRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.Error(c, "Validation error", http.StatusUnprocessableEntity, utils.ValidationMessages(err))
			return
		}

		user, err := repo.Authenticate(body.Email, body.Password)
		if err != nil {
			if errors.Is(err, repository.ErrInvalidCredentials) {
				utils.Error(c, "Invalid credentials", http.StatusUnauthorized, nil)
				return
			}
			utils.Error(c, "An error has occurred", http.StatusInternalServerError, nil)
			return
		}

		token, err := utils.IssueToken(user.ID)
		if err != nil {
			utils.Error(c, "An error has occurred", http.StatusInternalServerError, nil)
			return
		}
		utils.Success(c, "User logged in successfully", http.StatusOK, token)
	}
}

func Profile(db *gorm.DB) gin.HandlerFunc {
	repo := repository.NewUserRepository(db)
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			utils.Error(c, "User not authenticated", http.StatusUnauthorized, nil)
			return
		}

		user, err := repo.GetByID(userID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				utils.Error(c, "User not found", http.StatusNotFound, nil)
				return
			}
			utils.Error(c, "An error has occurred", http.StatusInternalServerError, nil)
			return
		}
		utils.Success(c, "User profile", http.StatusOK, user)
	}
}

func Logout(revoker middleware.TokenRevoker) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			utils.Error(c, "User not authenticated", http.StatusUnauthorized, nil)
			return
		}

		if err := revoker.Revoke(c.Request.Context(), userID); err != nil {
			utils.Error(c, "An error has occurred", http.StatusInternalServerError, nil)
			return
		}
		utils.Success(c, "Logged out successfully", http.StatusOK, nil)
	}
}
