package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"contact-api/middleware"
	"contact-api/models"
	"contact-api/policy"
	"contact-api/repository"
	"contact-api/secureid"
	"contact-api/utils"
)

type FavoriteStoreRequest struct {
	ContactID string `json:"contact_id" binding:"required"`
}

type FavoriteIndexRequest struct {
	Name     string `form:"name"`
	Phone    string `form:"phone"`
	Nickname string `form:"nickname"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
}

type FavoriteResource struct {
	ID      string          `json:"id"`
	Contact ContactResource `json:"contact"`
}

func newFavoriteResource(codec *secureid.Codec, favorite *models.Favorite) FavoriteResource {
	return FavoriteResource{
		ID:      codec.Encode(favorite.ID),
		Contact: newContactResource(codec, &favorite.Contact),
	}
}

func FavoriteIndex(db *gorm.DB, codec *secureid.Codec) gin.HandlerFunc {
	repo := repository.NewFavoriteRepository(db)
	return func(c *gin.Context) {
		var query FavoriteIndexRequest
		if err := c.ShouldBindQuery(&query); err != nil {
			utils.Error(c, "Validation error", http.StatusUnprocessableEntity, utils.ValidationMessages(err))
			return
		}
		if query.Page < 1 {
			query.Page = 1
		}

		userID, _ := middleware.CurrentUserID(c)
		filters := repository.ContactFilters{Name: query.Name, Phone: query.Phone, Nickname: query.Nickname}
		favorites, total, err := repo.List(userID, filters, query.Page)
		if err != nil {
			utils.Error(c, "An error has occurred", http.StatusInternalServerError, nil)
			return
		}

		resources := make([]FavoriteResource, 0, len(favorites))
		for i := range favorites {
			resources = append(resources, newFavoriteResource(codec, &favorites[i]))
		}
		page := utils.NewPage(c, query.Page, repository.PerPage, len(resources), total, resources)
		utils.Success(c, "Favorite list of a user", http.StatusOK, page)
	}
}

func FavoriteStore(db *gorm.DB, codec *secureid.Codec) gin.HandlerFunc {
	repo := repository.NewFavoriteRepository(db)
	contacts := repository.NewContactRepository(db)
	return func(c *gin.Context) {
		var body FavoriteStoreRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.Error(c, "Validation error", http.StatusUnprocessableEntity, utils.ValidationMessages(err))
			return
		}

		// Existence first, then ownership of the target contact, then the
		// duplicate check, so each failure maps to its own status.
		contactID, err := codec.Decode(body.ContactID)
		if err != nil {
			utils.Error(c, "The requested resource does not exist", http.StatusNotFound, nil)
			return
		}
		contact, err := contacts.GetByID(contactID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				utils.Error(c, "The requested resource does not exist", http.StatusNotFound, nil)
			} else {
				utils.Error(c, "An error has occurred", http.StatusInternalServerError, nil)
			}
			return
		}
		userID, _ := middleware.CurrentUserID(c)
		if !policy.Owns(userID, contact.UserID) {
			utils.Error(c, "You are not authorized to add this contact to favorites", http.StatusForbidden, nil)
			return
		}

		if _, err := repo.Create(userID, contact.ID); err != nil {
			if errors.Is(err, repository.ErrDuplicateFavorite) {
				utils.Error(c, "Validation error", http.StatusUnprocessableEntity, map[string][]string{
					"contact_id": {"This contact is already in your favorites."},
				})
				return
			}
			utils.Error(c, "An error has occurred", http.StatusInternalServerError, nil)
			return
		}
		utils.Success(c, "Contact added to favorites successfully", http.StatusCreated, nil)
	}
}

func FavoriteShow(db *gorm.DB, codec *secureid.Codec) gin.HandlerFunc {
	repo := repository.NewFavoriteRepository(db)
	return func(c *gin.Context) {
		id, err := codec.Decode(c.Param("id"))
		if err != nil {
			utils.Error(c, "Favorite contact not found", http.StatusNotFound, nil)
			return
		}
		favorite, err := repo.GetByID(id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				utils.Error(c, "Favorite contact not found", http.StatusNotFound, nil)
			} else {
				utils.Error(c, "An error has occurred", http.StatusInternalServerError, nil)
			}
			return
		}

		userID, _ := middleware.CurrentUserID(c)
		if !policy.Owns(userID, favorite.UserID) {
			utils.Error(c, "You are not authorized to view this favorite contact", http.StatusForbidden, nil)
			return
		}
		utils.Success(c, "Favorite contact", http.StatusOK, newFavoriteResource(codec, favorite))
	}
}

func FavoriteDestroy(db *gorm.DB, codec *secureid.Codec) gin.HandlerFunc {
	repo := repository.NewFavoriteRepository(db)
	return func(c *gin.Context) {
		id, err := codec.Decode(c.Param("id"))
		if err != nil {
			utils.Error(c, "Favorite contact not found", http.StatusNotFound, nil)
			return
		}
		favorite, err := repo.GetByIDBare(id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				utils.Error(c, "Favorite contact not found", http.StatusNotFound, nil)
			} else {
				utils.Error(c, "An error has occurred", http.StatusInternalServerError, nil)
			}
			return
		}

		userID, _ := middleware.CurrentUserID(c)
		if !policy.Owns(userID, favorite.UserID) {
			utils.Error(c, "You are not authorized to delete this favorite contact", http.StatusForbidden, nil)
			return
		}

		if err := repo.Delete(favorite); err != nil {
			utils.Error(c, "An error has occurred", http.StatusInternalServerError, nil)
			return
		}
		utils.Success(c, "Favorite contact deleted", http.StatusOK, nil)
	}
}
