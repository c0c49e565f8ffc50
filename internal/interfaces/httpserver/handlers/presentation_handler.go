package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"slidesmith/internal/config"
	"slidesmith/internal/domain/analysis"
	"slidesmith/internal/domain/deck"
	"slidesmith/internal/domain/layout"
	"slidesmith/internal/interfaces/httpserver/requests"
	"slidesmith/internal/interfaces/httpserver/responses"
	"slidesmith/internal/utils/platformerrors"
)

// PresentationHandler exposes deck generation endpoints.
type PresentationHandler struct {
	cfg     *config.Config
	service *deck.Service
	log     zerolog.Logger
}

func NewPresentationHandler(cfg *config.Config, service *deck.Service, log zerolog.Logger) *PresentationHandler {
	return &PresentationHandler{
		cfg:     cfg,
		service: service,
		log:     log.With().Str("component", "presentation-handler").Logger(),
	}
}

// Generate godoc
// @Summary      Generate a presentation
// @Description  Turns free-form content plus presentation parameters into styled, asset-annotated slides.
// @Tags         presentations
// @Accept       json
// @Produce      json
// @Param        request  body      requests.GeneratePresentation  true  "Generation request"
// @Success      200      {object}  deck.Result
// @Failure      400      {object}  responses.ErrorResponse
// @Router       /v1/presentations [post]
func (h *PresentationHandler) Generate(c *gin.Context) {
	var req requests.GeneratePresentation
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, err.Error())
		return
	}

	result, err := h.service.Generate(c.Request.Context(), deck.Request{
		Content:                   req.Content,
		Audience:                  analysis.ParseAudience(req.Audience),
		PresentationType:          analysis.ParsePresentationType(req.PresentationType),
		BrandGuidelines:           req.BrandGuidelines,
		TimeConstraintMinutes:     req.TimeConstraint,
		AccessibilityRequirements: req.AccessibilityRequirements,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("deck generation failed")
		responses.HandleError(c, err, "failed to generate presentation")
		return
	}

	c.JSON(http.StatusOK, result)
}

// Layouts godoc
// @Summary      List layout patterns
// @Description  Returns the static layout pattern catalog.
// @Tags         presentations
// @Produce      json
// @Success      200  {array}  layout.Pattern
// @Router       /v1/layouts [get]
func (h *PresentationHandler) Layouts(c *gin.Context) {
	c.JSON(http.StatusOK, layout.Catalog())
}
