package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/infantleo38/brainx/controllers"
	"github.com/infantleo38/brainx/middlewares"
)

func RegisterRoutes(
	r *gin.Engine,
	jwtSecret string,
	chats *controllers.ChatController,
	resources *controllers.ResourceController,
	ws *controllers.WebSocketController,
) {
	auth := middlewares.AuthMiddleware(jwtSecret)

	chatGroup := r.Group("/chats")
	chatGroup.Use(auth)
	{
		chatGroup.POST("/", chats.CreateChat)
		chatGroup.GET("/", chats.ListChats)
		chatGroup.GET("/proxy-download", resources.ProxyDownload)
		chatGroup.GET("/:chat_id", chats.GetChat)
		chatGroup.POST("/:chat_id/members", chats.AddMember)
		chatGroup.POST("/:chat_id/messages", chats.SendMessage)
		chatGroup.GET("/:chat_id/messages", chats.ListMessages)
		chatGroup.POST("/:chat_id/messages/:message_id/read", chats.MarkRead)
		chatGroup.POST("/:chat_id/resources", resources.Upload)
		chatGroup.GET("/:chat_id/resources", resources.ListResources)
		chatGroup.GET("/:chat_id/resources/files", resources.ListFiles)
		chatGroup.GET("/:chat_id/ws", ws.ServeChat)
	}

	batchGroup := r.Group("/batches")
	batchGroup.Use(auth)
	{
		batchGroup.GET("/:batch_id/chat", chats.GetChatByBatch)
	}
}
