package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"contact-api/controllers"
	"contact-api/middleware"
)

func AuthRoutes(r *gin.Engine, db *gorm.DB, revoker middleware.TokenRevoker) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register(db))
		auth.POST("/login", controllers.Login(db))

		protected := auth.Group("", middleware.JWTAuthMiddleware(revoker))
		{
			protected.GET("/profile", controllers.Profile(db))
			protected.POST("/logout", controllers.Logout(revoker))
			protected.POST("/changePassword", controllers.ChangePassword(db))
			protected.POST("/check-password", controllers.CheckPassword(db))
			protected.PUT("/editProfile", controllers.EditProfile(db))
		}
	}
}
