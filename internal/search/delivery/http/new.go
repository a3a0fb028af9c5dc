package http

import (
	"github.com/gin-gonic/gin"

	"laura-assistant/internal/search"
	"laura-assistant/pkg/log"
)

// Handler is the public interface for the search HTTP delivery layer.
type Handler interface {
	Search(c *gin.Context)
	ExportExcel(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc search.UseCase
}

// New creates a new HTTP handler for the search domain.
func New(l log.Logger, uc search.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
