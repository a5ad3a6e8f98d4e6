package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"contact-api/controllers"
	"contact-api/middleware"
	"contact-api/secureid"
)

func FavoriteRoutes(r *gin.Engine, db *gorm.DB, codec *secureid.Codec, revoker middleware.TokenRevoker) {
	favorite := r.Group("/favorite", middleware.JWTAuthMiddleware(revoker))
	{
		favorite.GET("", controllers.FavoriteIndex(db, codec))
		favorite.POST("", controllers.FavoriteStore(db, codec))
		favorite.GET("/:id", controllers.FavoriteShow(db, codec))
		favorite.DELETE("/:id", controllers.FavoriteDestroy(db, codec))
	}
}
