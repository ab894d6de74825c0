package apihandlers

import (
	"fmt"

	"blurbgen/internal/app"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// NewRouter returns a gin engine with middleware and every route registered.
func NewRouter(a *app.App) *gin.Engine {
	router := gin.New()
	router.Use(Recovery(), RequestID(), SecurityHeaders(), RequestLogger())

	h := NewAPIHandler(a)
	router.GET("/", h.IndexHandler)
	router.POST("/generate", h.GenerateHandler)
	router.GET("/samples", h.SamplesHandler)
	router.GET("/health", h.HealthHandler)

	return router
}

// Recovery turns a panic in a handler or backend into a JSON 500, like any
// other generation failure.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, rec any) {
		log.WithField("request_id", c.GetString(requestIDKey)).Errorf("Recovered from panic: %v", rec)
		Internal(c, fmt.Sprint(rec))
	})
}
