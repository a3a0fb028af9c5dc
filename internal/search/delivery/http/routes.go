package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	s := rg.Group("/search")
	{
		s.GET("", h.Search)
		s.POST("/export/excel", h.ExportExcel)
	}
}
