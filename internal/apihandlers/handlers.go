package apihandlers

import (
	_ "embed"
	"errors"
	"net/http"

	"blurbgen/internal/app"
	"blurbgen/internal/models"
	"blurbgen/internal/services"
	"blurbgen/internal/util"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

//go:embed static/index.html
var indexHTML []byte

type APIHandler struct {
	App *app.App
}

func NewAPIHandler(app *app.App) *APIHandler {
	return &APIHandler{App: app}
}

// IndexHandler serves the product form page.
func (h *APIHandler) IndexHandler(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}

// GenerateHandler handles POST /generate.
func (h *APIHandler) GenerateHandler(c *gin.Context) {
	var req models.GenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	clean, err := util.SanitizeRequest(req, h.App.Sanitize)
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	description, err := h.App.Generator.Generate(c.Request.Context(), clean)
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.GenerationResult{
		ProductName: clean.ProductName,
		Category:    clean.Category,
		Description: description,
	})
}

// respondWithError maps validation failures to 400 and everything else to 500.
// Generation errors are passed through verbatim.
func (h *APIHandler) respondWithError(c *gin.Context, err error) {
	var ve *models.ValidationError
	if errors.As(err, &ve) {
		BadRequest(c, ve.Error())
		return
	}

	log.WithFields(log.Fields{
		"request_id": c.GetString(requestIDKey),
		"backend":    h.App.Generator.Name(),
	}).Errorf("GenerateHandler: generation failed: %v", err)
	Internal(c, err.Error())
}

// SamplesHandler handles GET /samples.
func (h *APIHandler) SamplesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, services.ListSamples())
}

// HealthHandler reports liveness and the active backend.
func (h *APIHandler) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"backend": h.App.Generator.Name(),
	})
}
