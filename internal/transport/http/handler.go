package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"qr-contact-card/internal/apperrors"
	"qr-contact-card/internal/models"
	"qr-contact-card/internal/services"
)

// Handler exposes the card generation pipeline over HTTP
type Handler struct {
	generator *services.Generator
	logger    *logrus.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(generator *services.Generator, logger *logrus.Logger) *Handler {
	return &Handler{
		generator: generator,
		logger:    logger,
	}
}

// generateRequest is the JSON body accepted by the generate and download
// endpoints. Only name is required; color defaults to navy when absent.
type generateRequest struct {
	Name      string `json:"name"`
	Title     string `json:"title"`
	Org       string `json:"org"`
	Phone     string `json:"phone"`
	WorkPhone string `json:"workPhone"`
	Email     string `json:"email"`
	Website   string `json:"website"`
	LinkedIn  string `json:"linkedin"`
	Address   string `json:"address"`
	Note      string `json:"note"`
	Color     string `json:"color"`
}

// contactFields maps the request body to the pipeline's input record
func (r *generateRequest) contactFields() models.ContactFields {
	return models.ContactFields{
		Name:         r.Name,
		Title:        r.Title,
		Organization: r.Org,
		MobilePhone:  r.Phone,
		WorkPhone:    r.WorkPhone,
		Email:        r.Email,
		Website:      r.Website,
		LinkedIn:     r.LinkedIn,
		Address:      r.Address,
		Note:         r.Note,
	}
}

// theme resolves the requested theme; an absent color falls back to navy
// but an unrecognized one is rejected
func (r *generateRequest) theme() (models.Theme, error) {
	if r.Color == "" {
		return models.ThemeNavy, nil
	}
	return models.ParseTheme(r.Color)
}

// Register attaches the handler's routes to the engine
func (h *Handler) Register(engine *gin.Engine) {
	engine.POST("/generate", h.Generate)
	engine.POST("/download", h.Download)
	engine.GET("/health", h.Health)
}

// Generate returns the composite card as base64 PNG plus the raw vCard
func (h *Handler) Generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	theme, err := req.theme()
	if err != nil {
		h.respondError(c, err)
		return
	}

	payload, err := h.generator.Preview(req.contactFields(), theme)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"image":   payload.EncodedImage,
		"vcard":   payload.RawRecord,
	})
}

// Download streams the composite card as a PNG attachment
func (h *Handler) Download(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	theme, err := req.theme()
	if err != nil {
		h.respondError(c, err)
		return
	}

	payload, err := h.generator.Download(req.contactFields(), theme)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", payload.FileName))
	c.Data(http.StatusOK, payload.MimeType, payload.FileBytes)
}

// Health reports service liveness
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondError maps pipeline errors to HTTP statuses: user-correctable
// input problems are 400, everything else is 500
func (h *Handler) respondError(c *gin.Context, err error) {
	var validationErr *apperrors.ValidationError
	var capacityErr *apperrors.CapacityError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message, "field": validationErr.Field})
	case errors.As(err, &capacityErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": capacityErr.Message, "field": capacityErr.Field})
	default:
		h.logger.Errorf("Card generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate contact card"})
	}
}
