package api

import "github.com/gin-gonic/gin"

func (s *Server) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/health", s.health)
		api.GET("/booth/catalog", s.catalogHandler)
		api.POST("/booth/compose", s.composeHandler)
		api.GET("/prompts", s.promptsHandler)
		api.GET("/qr", s.qrHandler)
	}
}
