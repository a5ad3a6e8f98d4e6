package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"contact-api/controllers"
	"contact-api/middleware"
	"contact-api/secureid"
)

func ContactRoutes(r *gin.Engine, db *gorm.DB, codec *secureid.Codec, revoker middleware.TokenRevoker) {
	contact := r.Group("/contact", middleware.JWTAuthMiddleware(revoker))
	{
		contact.GET("", controllers.ContactIndex(db, codec))
		contact.POST("", controllers.ContactStore(db))
		contact.POST("/restore", controllers.ContactRestore(db))
		contact.GET("/:id", controllers.ContactShow(db, codec))
		contact.PUT("/:id", controllers.ContactUpdate(db, codec))
		contact.DELETE("/:id", controllers.ContactDestroy(db, codec))
	}
}
