package api

import (
	"github.com/gin-gonic/gin"

	"blogbot/workflow"
)

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(gen *workflow.Generator) *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	// Register resource routers
	RegisterBlogRoutes(r, gen)
	RegisterHealthRoutes(r)
	return r
}
