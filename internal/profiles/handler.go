package profiles

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/byteKumar/pepperuni/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the profiles service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches profile routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/update_profile", h.updateProfile)
	rg.GET("/get_profile", h.getProfile)
}

type updateProfileRequest struct {
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	LinkedIn  string `json:"linkedin"`
	Portfolio string `json:"portfolio"`
}

func (h *Handler) updateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "User ID is required")
		return
	}
	if req.UserID == "" {
		respond.Error(c, http.StatusBadRequest, "User ID is required")
		return
	}

	created, err := h.Svc.Upsert(c.Request.Context(), Profile{
		UserID:    req.UserID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		LinkedIn:  req.LinkedIn,
		Portfolio: req.Portfolio,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "User ID is required")
			return
		}
		respond.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	if created {
		respond.JSON(c, http.StatusCreated, gin.H{"message": "Profile created successfully!"})
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"message": "Profile updated successfully!"})
}

func (h *Handler) getProfile(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		respond.Error(c, http.StatusBadRequest, "User ID is required")
		return
	}

	profile, err := h.Svc.Get(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "User not found")
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "User ID is required")
		default:
			respond.Error(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"name":      profile.Name,
		"email":     profile.Email,
		"phone":     profile.Phone,
		"linkedin":  profile.LinkedIn,
		"portfolio": profile.Portfolio,
	})
}
