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

type ContactRequest struct {
	Name     string  `json:"name" binding:"required,min=3,max=255"`
	Phone    string  `json:"phone" binding:"required,len=10,numeric"`
	Nickname *string `json:"nickname" binding:"omitempty,min=3,max=255"`
}

type ContactIndexRequest struct {
	Name     string `form:"name"`
	Phone    string `form:"phone"`
	Nickname string `form:"nickname"`
	OrderBy  string `form:"orderBy" binding:"omitempty,oneof=id name phone nickname"`
	Order    string `form:"order" binding:"omitempty,oneof=asc desc"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
}

type ContactResource struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Phone    string  `json:"phone"`
	Nickname *string `json:"nickname"`
}

// ContactDetailResource adds whether the contact is currently bookmarked.
type ContactDetailResource struct {
	ContactResource
	Favorited bool `json:"favorited"`
}

func newContactResource(codec *secureid.Codec, contact *models.Contact) ContactResource {
	return ContactResource{
		ID:       codec.Encode(contact.ID),
		Name:     contact.Name,
		Phone:    contact.Phone,
		Nickname: contact.Nickname,
	}
}

var duplicatePhoneErrors = map[string][]string{
	"phone": {"You already have a contact with that phone."},
}

func ContactIndex(db *gorm.DB, codec *secureid.Codec) gin.HandlerFunc {
	repo := repository.NewContactRepository(db)
	return func(c *gin.Context) {
		var query ContactIndexRequest
		if err := c.ShouldBindQuery(&query); err != nil {
			utils.Error(c, "Validation error", http.StatusUnprocessableEntity, utils.ValidationMessages(err))
			return
		}
		if query.Page < 1 {
			query.Page = 1
		}

		userID, _ := middleware.CurrentUserID(c)
		filters := repository.ContactFilters{Name: query.Name, Phone: query.Phone, Nickname: query.Nickname}
		contacts, total, err := repo.List(userID, filters, query.OrderBy, query.Order, query.Page)
		if err != nil {
			utils.Error(c, "An error has occurred", http.StatusInternalServerError, nil)
			return
		}

		resources := make([]ContactResource, 0, len(contacts))
		for i := range contacts {
			resources = append(resources, newContactResource(codec, &contacts[i]))
		}
		page := utils.NewPage(c, query.Page, repository.PerPage, len(resources), total, resources)
		utils.Success(c, "Contact list of a user", http.StatusOK, page)
	}
}

func ContactStore(db *gorm.DB) gin.HandlerFunc {
	repo := repository.NewContactRepository(db)
	return func(c *gin.Context) {
		var body ContactRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.Error(c, "Validation error", http.StatusUnprocessableEntity, utils.ValidationMessages(err))
			return
		}

		userID, _ := middleware.CurrentUserID(c)
		if _, err := repo.Create(userID, body.Name, body.Phone, body.Nickname); err != nil {
			if errors.Is(err, repository.ErrDuplicatePhone) {
				utils.Error(c, "You cannot create another contact with the same phone", http.StatusUnprocessableEntity, duplicatePhoneErrors)
				return
			}
			utils.Error(c, "An error has occurred", http.StatusInternalServerError, nil)
			return
		}
		utils.Success(c, "Contact created successfully", http.StatusCreated, nil)
	}
}

// resolveContact settles existence before ownership: an undecodable or
// unknown id is a 404, someone else's contact a 403.
func resolveContact(c *gin.Context, repo *repository.ContactRepository, codec *secureid.Codec) (*models.Contact, bool) {
	id, err := codec.Decode(c.Param("id"))
	if err != nil {
		utils.Error(c, "Contact not found", http.StatusNotFound, nil)
		return nil, false
	}
	contact, err := repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.Error(c, "Contact not found", http.StatusNotFound, nil)
		} else {
			utils.Error(c, "An error has occurred", http.StatusInternalServerError, nil)
		}
		return nil, false
	}
	userID, _ := middleware.CurrentUserID(c)
	if !policy.Owns(userID, contact.UserID) {
		utils.Error(c, "You are not authorized to perform this action", http.StatusForbidden, nil)
		return nil, false
	}
	return contact, true
}

func ContactShow(db *gorm.DB, codec *secureid.Codec) gin.HandlerFunc {
	repo := repository.NewContactRepository(db)
	favorites := repository.NewFavoriteRepository(db)
	return func(c *gin.Context) {
		contact, ok := resolveContact(c, repo, codec)
		if !ok {
			return
		}

		favorited, err := favorites.Exists(contact.UserID, contact.ID)
		if err != nil {
			utils.Error(c, "An error has occurred", http.StatusInternalServerError, nil)
			return
		}
		resource := ContactDetailResource{
			ContactResource: newContactResource(codec, contact),
			Favorited:       favorited,
		}
		utils.Success(c, "Showing contact", http.StatusOK, resource)
	}
}

func ContactUpdate(db *gorm.DB, codec *secureid.Codec) gin.HandlerFunc {
	repo := repository.NewContactRepository(db)
	return func(c *gin.Context) {
		contact, ok := resolveContact(c, repo, codec)
		if !ok {
			return
		}

		var body ContactRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.Error(c, "Validation error", http.StatusUnprocessableEntity, utils.ValidationMessages(err))
			return
		}

		switch err := repo.Update(contact, body.Name, body.Phone, body.Nickname); {
		case errors.Is(err, repository.ErrNoChange):
			utils.Error(c, "No changes to the contact", http.StatusBadRequest, nil)
		case errors.Is(err, repository.ErrDuplicatePhone):
			utils.Error(c, "You cannot create another contact with the same phone", http.StatusUnprocessableEntity, duplicatePhoneErrors)
		case err != nil:
			utils.Error(c, "An error has occurred", http.StatusInternalServerError, nil)
		default:
			utils.Success(c, "Contact updated successfully", http.StatusAccepted, nil)
		}
	}
}

func ContactDestroy(db *gorm.DB, codec *secureid.Codec) gin.HandlerFunc {
	repo := repository.NewContactRepository(db)
	return func(c *gin.Context) {
		contact, ok := resolveContact(c, repo, codec)
		if !ok {
			return
		}

		if err := repo.SoftDelete(contact); err != nil {
			utils.Error(c, "An error has occurred", http.StatusInternalServerError, nil)
			return
		}
		utils.Success(c, "Contact deleted successfully", http.StatusOK, nil)
	}
}

func ContactRestore(db *gorm.DB) gin.HandlerFunc {
	repo := repository.NewContactRepository(db)
	return func(c *gin.Context) {
		userID, _ := middleware.CurrentUserID(c)
		messages, err := repo.RestoreAll(userID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				utils.Error(c, "You have no deleted contacts to restore", http.StatusNotFound, nil)
				return
			}
			utils.Error(c, "An error has occurred", http.StatusInternalServerError, nil)
			return
		}
		utils.Success(c, "Restore completed", http.StatusOK, messages)
	}
}
