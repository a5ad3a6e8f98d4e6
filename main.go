package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"contact-api/config"
	"contact-api/middleware"
	"contact-api/routes"
	"contact-api/secureid"
	"contact-api/utils"
)

func main() {
	config.LoadEnv()
	config.InitRedis()
	config.ConnectDB()

	codec, err := secureid.New(config.EncryptionKey)
	if err != nil {
		log.Fatal("❌ Failed to build id codec:", err)
	}
	utils.RegisterValidatorTagNames()

	revoker := middleware.NewRedisTokenRevoker(config.RedisClient)

	r := gin.Default()
	routes.AuthRoutes(r, config.DB, revoker)
	routes.ContactRoutes(r, config.DB, codec, revoker)
	routes.FavoriteRoutes(r, config.DB, codec, revoker)

	r.Run(config.ListenAddr)
}
