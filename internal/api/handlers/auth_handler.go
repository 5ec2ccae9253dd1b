package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yoockh/facultyportal/internal/services"
	"github.com/yoockh/facultyportal/internal/validation"
)

type AuthHandler struct {
	svc services.AuthService
}

func NewAuthHandler(svc services.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	const op = "AuthHandler.Register"

	var req RegisterRequest
	if !bindJSON(c, op, &req) {
		return
	}
	if err := validation.Check(op, &req); err != nil {
		writeError(c, err)
		return
	}

	u, err := h.svc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully", "user": u})
}

func (h *AuthHandler) Login(c *gin.Context) {
	const op = "AuthHandler.Login"

	var req LoginRequest
	if !bindJSON(c, op, &req) {
		return
	}
	if err := validation.Check(op, &req); err != nil {
		writeError(c, err)
		return
	}

	res, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}
