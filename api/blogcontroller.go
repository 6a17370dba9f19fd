package api

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"blogbot/workflow"
)

// RegisterBlogRoutes registers blog generation routes.
func RegisterBlogRoutes(r *gin.Engine, gen *workflow.Generator) {
	ctrl := &blogController{gen: gen}
	r.POST("/api/blog/generate", ctrl.handleGenerate)
	r.GET("/api/blog/post", ctrl.handleGetPost)
}

type blogController struct {
	gen *workflow.Generator
}

// generateRequest mirrors workflow.Request with the topic required.
type generateRequest struct {
	Topic          string `json:"topic" binding:"required"`
	UseSearchCache *bool  `json:"use_search_cache"`
	UseScrapeCache *bool  `json:"use_scrape_cache"`
	UseCachedPost  *bool  `json:"use_cached_post"`
}

// handleGenerate runs the workflow and streams the post body as it is
// written. Cache flags default to true, matching the original service.
func (b *blogController) handleGenerate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.Topic) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "topic is required"})
		return
	}

	run := workflow.Request{
		Topic:          req.Topic,
		UseSearchCache: boolOrDefault(req.UseSearchCache, true),
		UseScrapeCache: boolOrDefault(req.UseScrapeCache, true),
		UseCachedPost:  boolOrDefault(req.UseCachedPost, true),
	}

	c.Writer.Header().Set("Content-Type", "text/plain; charset=utf-8")
	c.Writer.WriteHeader(http.StatusOK)

	_, err := b.gen.Generate(c.Request.Context(), run, func(chunk string) {
		if _, werr := c.Writer.WriteString(chunk); werr != nil {
			return
		}
		c.Writer.Flush()
	})
	if err != nil {
		// Headers are already sent; log and cut the stream.
		log.Printf("Error: blog generation failed for topic %q: %v", run.Topic, err)
	}
}

// handleGetPost returns the cached post for a topic, if one exists.
func (b *blogController) handleGetPost(c *gin.Context) {
	topic := c.Query("topic")
	if strings.TrimSpace(topic) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "topic query parameter is required"})
		return
	}

	content, ok := b.gen.CachedPost(c.Request.Context(), topic)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no cached post for topic", "topic": topic})
		return
	}

	c.JSON(http.StatusOK, gin.H{"topic": topic, "content": content})
}

func boolOrDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
