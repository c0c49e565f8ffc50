package v1

import (
	"github.com/gin-gonic/gin"

	"slidesmith/internal/interfaces/httpserver/handlers"
)

// Routes encapsulates versioned route registration.
type Routes struct {
	handlers *handlers.Provider
}

func NewRoutes(provider *handlers.Provider) *Routes {
	return &Routes{handlers: provider}
}

// Register attaches all v1 routes under /v1 prefix.
func (r *Routes) Register(router gin.IRouter) {
	group := router.Group("/v1")
	group.POST("/presentations", r.handlers.Presentation.Generate)
	group.GET("/layouts", r.handlers.Presentation.Layouts)
}
