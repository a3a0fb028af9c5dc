package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	chat := rg.Group("/assistant")
	{
		chat.POST("/chat", h.Chat)
	}
}
