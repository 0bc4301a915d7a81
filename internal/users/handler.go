package users

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/byteKumar/pepperuni/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the users service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches auth routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/signup", h.signup)
	rg.POST("/signin", h.signin)
}

type signupRequest struct {
	StudentName string `json:"studentName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

func (h *Handler) signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "All fields are required")
		return
	}
	if req.StudentName == "" || req.Email == "" || req.Password == "" {
		respond.Error(c, http.StatusBadRequest, "All fields are required")
		return
	}

	_, err := h.Svc.Register(c.Request.Context(), req.StudentName, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailExists):
			respond.Error(c, http.StatusConflict, "Email already exists")
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "All fields are required")
		default:
			respond.Error(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	respond.JSON(c, http.StatusCreated, gin.H{"message": "User successfully registered"})
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) signin(c *gin.Context) {
	var req signinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Email and password are required")
		return
	}
	if req.Email == "" || req.Password == "" {
		respond.Error(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := h.Svc.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "User not found. Please sign up.")
		case errors.Is(err, ErrInvalidCredential):
			respond.Error(c, http.StatusUnauthorized, "Invalid password")
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "Email and password are required")
		default:
			respond.Error(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"message":     "Login successful!",
		"studentName": user.StudentName,
		"email":       user.Email,
		"id":          user.ID,
	})
}
