package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/infantleo38/brainx/config"
	"github.com/infantleo38/brainx/controllers"
	"github.com/infantleo38/brainx/repositories/impl"
	"github.com/infantleo38/brainx/routes"
	"github.com/infantleo38/brainx/services"
	"github.com/infantleo38/brainx/websocket"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	config.InitDatabase()

	// Repositories
	chatRepo := impl.NewChatRepository(config.DB)
	messageRepo := impl.NewMessageRepository(config.DB)
	readRepo := impl.NewMessageReadRepository(config.DB)
	resourceRepo := impl.NewResourceRepository(config.DB)
	userRepo := impl.NewUserRepository(config.DB)
	batchRepo := impl.NewBatchRepository(config.DB)

	// Services
	bunny := config.LoadBunnyConfig()
	storage := services.NewBunnyStorage(bunny.APIKey, bunny.StorageZone, bunny.Region, bunny.CDNURL)
	chatService := services.NewChatService(chatRepo, userRepo, batchRepo)
	messageService := services.NewMessageService(chatRepo, messageRepo, readRepo, userRepo)
	resourceService := services.NewResourceService(chatRepo, resourceRepo, storage)

	// Connection registry: owned here, injected into the handlers, torn down
	// on exit. Broadcasts only reach clients connected to this process.
	hub := websocket.NewHub(messageService)
	defer hub.Close()

	// Controllers
	chatController := controllers.NewChatController(chatService, messageService)
	resourceController := controllers.NewResourceController(resourceService)
	wsController := controllers.NewWebSocketController(hub)

	r := gin.Default()
	routes.RegisterRoutes(r, config.JWTSecret(), chatController, resourceController, wsController)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
