package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Dosada05/fixture-planner/middleware"
	"github.com/Dosada05/fixture-planner/services"
)

type AuthHandler struct {
	authService services.AuthService
	jwtSecret   string
	now         func() time.Time
}

func NewAuthHandler(authService services.AuthService, jwtSecret string) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		jwtSecret:   jwtSecret,
		now:         time.Now,
	}
}

// Register
// @Summary Register an organizer
// @Tags auth
// @Accept json
// @Produce json
// @Param body body services.RegisterInput true "Name, email and password"
// @Success 201 {object} map[string]interface{} "User created"
// @Failure 400 {object} map[string]string "Malformed JSON"
// @Failure 409 {object} map[string]string "Email already taken"
// @Failure 422 {object} map[string]string "Validation error"
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input services.RegisterInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if input.Email == "" || input.Password == "" || input.Name == "" {
		badRequestResponse(w, r, errors.New("name, email, and password are required"))
		return
	}

	user, err := h.authService.Register(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"user": user}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Login
// @Summary Log in and get a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param body body services.LoginInput true "Email and password"
// @Success 200 {object} map[string]interface{} "token and user"
// @Failure 400 {object} map[string]string "Malformed JSON"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input services.LoginInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if input.Email == "" || input.Password == "" {
		badRequestResponse(w, r, errors.New("email and password are required"))
		return
	}

	user, err := h.authService.Login(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	tokenString, err := middleware.IssueToken(h.jwtSecret, user, h.now())
	if err != nil {
		serverErrorResponse(w, r, fmt.Errorf("failed to sign token: %w", err))
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"token": tokenString, "user": user}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
