package analyses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-analyzer/internal/llm/azure"
	"resume-analyzer/internal/resumes"
	"resume-analyzer/internal/shared/server/middleware"
	"resume-analyzer/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the analyses service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes under the resumes resource.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes/:id/analyze", h.analyze)
	rg.GET("/resumes/:id/analysis", h.list)
}

func (h *Handler) analyze(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	resumeID := c.Param("id")

	analysis, result, err := h.Svc.Analyze(c.Request.Context(), resumeID, userID)
	if err != nil {
		writeAnalysisError(c, err)
		return
	}
	c.Set("analysisId", analysis.ID)
	respond.Created(c, toResponse(analysis, result))
}

// list returns all persisted analyses for the resume, newest first. A
// resume with no analyses yet gets an empty list, not a 404.
func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	items, err := h.Svc.List(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		writeAnalysisError(c, err)
		return
	}
	out := make([]AnalysisResponse, 0, len(items))
	for _, analysis := range items {
		out = append(out, toResponse(analysis, reconstructResult(analysis)))
	}
	respond.OK(c, gin.H{"items": out})
}

func writeAnalysisError(c *gin.Context, err error) {
	var upstream *azure.UpstreamError
	switch {
	case errors.Is(err, resumes.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "no analysis for this resume", nil)
	case errors.Is(err, azure.ErrConfigMissing):
		respond.Error(c, http.StatusServiceUnavailable, "analysis_unavailable", "analysis service is not configured", nil)
	case errors.As(err, &upstream):
		respond.Error(c, http.StatusBadGateway, "upstream_error", "analysis service request failed", gin.H{
			"status": upstream.StatusCode,
		})
	case errors.Is(err, ErrNoJSONBlock), errors.Is(err, ErrMalformedResponse):
		respond.Error(c, http.StatusBadGateway, "invalid_model_output", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "analysis failed", nil)
	}
}
