package resumes

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-analyzer/internal/shared/server/middleware"
	"resume-analyzer/internal/shared/server/respond"
)

const maxUploadBytes = 10 << 20

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.create)
	rg.POST("/upload", h.upload)
	rg.GET("", h.list)
	rg.GET("/:id", h.get)
	rg.GET("/:id/file", h.file)
	rg.PUT("/:id", h.update)
	rg.DELETE("/:id", h.remove)
}

func (h *Handler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "title and resume_text are required", nil)
		return
	}
	userID := middleware.UserIDFromContext(c)
	resume, err := h.Svc.Create(c.Request.Context(), userID, CreateInput{
		Title:          req.Title,
		ResumeText:     req.ResumeText,
		TargetRole:     req.TargetRole,
		JobDescription: req.JobDescription,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.Set("resumeId", resume.ID)
	respond.Created(c, toResponse(resume))
}

func (h *Handler) upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "file field is required", nil)
		return
	}
	if fileHeader.Size > maxUploadBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, "file_too_large", "file exceeds the upload limit", nil)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "could not read uploaded file", nil)
		return
	}
	defer file.Close()
	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "could not read uploaded file", nil)
		return
	}
	if len(data) > maxUploadBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, "file_too_large", "file exceeds the upload limit", nil)
		return
	}

	userID := middleware.UserIDFromContext(c)
	resume, err := h.Svc.CreateFromFile(
		c.Request.Context(),
		userID,
		c.PostForm("title"),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		data,
	)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.Set("resumeId", resume.ID)
	respond.Created(c, toResponse(resume))
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	items, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	out := make([]ResumeResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toResponse(item))
	}
	respond.OK(c, gin.H{"items": out})
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	resume, err := h.Svc.Get(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	respond.OK(c, toResponse(resume))
}

func (h *Handler) file(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	rc, name, err := h.Svc.OpenFile(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	defer rc.Close()
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, rc)
}

func (h *Handler) update(c *gin.Context) {
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "title and resume_text are required", nil)
		return
	}
	userID := middleware.UserIDFromContext(c)
	resume, err := h.Svc.Update(c.Request.Context(), c.Param("id"), userID, UpdateInput{
		Title:          req.Title,
		ResumeText:     req.ResumeText,
		TargetRole:     req.TargetRole,
		JobDescription: req.JobDescription,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	respond.OK(c, toResponse(resume))
}

func (h *Handler) remove(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "invalid_request", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "resume operation failed", nil)
	}
}
