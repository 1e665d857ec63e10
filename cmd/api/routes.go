package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (app *application) routes() http.Handler {
	if app.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(app.RequestLogger())
	r.Use(app.CORSMiddleware())

	api := r.Group("/api")
	api.GET("/health", app.Handler.Health)

	limited := api.Group("/")
	limited.Use(app.RateLimitMiddleware())
	{
		// chat routes
		limited.POST("/chat", app.Handler.Chat)
		limited.POST("/chat-with-attachment", app.Handler.ChatWithAttachment)

		// quiz routes
		limited.POST("/quiz", app.Handler.GenerateQuiz)
		limited.POST("/quiz/results", app.Handler.SaveQuizResult)

		// document routes
		limited.POST("/upload-document", app.Handler.UploadDocument)
		limited.POST("/upload", app.Handler.UploadDocument)

		// history routes
		limited.GET("/history/:userId", app.Handler.GetHistory)
		limited.DELETE("/history/:userId", app.Handler.ClearHistory)
	}

	return r
}
