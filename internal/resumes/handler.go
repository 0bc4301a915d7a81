package resumes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/byteKumar/pepperuni/internal/shared/server/respond"
	"github.com/byteKumar/pepperuni/internal/shared/telemetry"
)

// maxUploadBytes caps the multipart body read for a resume submission.
const maxUploadBytes = 10 << 20

// Handler wires HTTP handlers to the resume pipeline.
type Handler struct {
	Pipeline *Pipeline
}

// NewHandler constructs a Handler.
func NewHandler(pipeline *Pipeline) *Handler {
	return &Handler{Pipeline: pipeline}
}

// RegisterRoutes attaches resume routes to the router group. Submit may carry
// extra middleware (rate limiting) ahead of the handler.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, submitMiddleware ...gin.HandlerFunc) {
	handlers := append(append([]gin.HandlerFunc{}, submitMiddleware...), h.submit)
	rg.POST("/main_job/", handlers...)
	rg.GET("/get_resume", h.getResume)
	rg.GET("/get_resume_details", h.getResumeDetails)
}

func (h *Handler) submit(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.submitError(c, http.StatusBadRequest, "File is missing in the request.")
		return
	}
	jobDescription := c.PostForm("job_description")
	if jobDescription == "" {
		h.submitError(c, http.StatusBadRequest, "Job description is missing in the request.")
		return
	}
	jobTitle := c.PostForm("job_title")
	userID := c.PostForm("user_id")

	file, err := fileHeader.Open()
	if err != nil {
		h.submitError(c, http.StatusInternalServerError, err.Error())
		return
	}
	defer file.Close()

	resumeID, err := h.Pipeline.Submit(c.Request.Context(), SubmitInput{
		UserID:         userID,
		FileName:       fileHeader.Filename,
		File:           file,
		JobTitle:       jobTitle,
		JobDescription: jobDescription,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrExtraction):
			h.submitError(c, http.StatusBadRequest, "Failed to extract text from the PDF.")
		case errors.Is(err, ErrInvalidInput):
			h.submitError(c, http.StatusBadRequest, "File is missing in the request.")
		default:
			h.submitError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"success": true, "resume_id": resumeID})
}

// submitError keeps the submit endpoint's {success, error} body shape while
// logging through telemetry like respond.Error does.
func (h *Handler) submitError(c *gin.Context, status int, message string) {
	telemetry.Error("http.error", map[string]any{
		"status":     status,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	})
	c.AbortWithStatusJSON(status, gin.H{"success": false, "error": message})
}

func (h *Handler) getResume(c *gin.Context) {
	resumeID := c.Query("resume_id")
	if resumeID == "" {
		respond.Error(c, http.StatusBadRequest, "Resume ID is required")
		return
	}

	resume, err := h.Pipeline.GetByID(c.Request.Context(), resumeID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "Resume not found.")
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "Resume ID is required")
		default:
			respond.Error(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"resume": resume.ResumeText,
		"score":  resume.Score,
	})
}

func (h *Handler) getResumeDetails(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		respond.Error(c, http.StatusBadRequest, "User ID is required")
		return
	}

	summaries, err := h.Pipeline.ListByUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "User ID is required")
			return
		}
		respond.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	respond.JSON(c, http.StatusOK, summaries)
}
