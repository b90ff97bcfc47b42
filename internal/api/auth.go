package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/krishisahayak/app-backend/internal/storage/userfile"
	"github.com/krishisahayak/app-backend/internal/types"
)

// RegisterRequest is the request body for creating an account.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the request body for logging in.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the session token for authenticated routes.
type LoginResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Register handles POST /auth/register.
func (s *Server) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	err := s.users.Register(types.User{Name: req.Name, Email: req.Email, Password: req.Password})
	switch {
	case errors.Is(err, userfile.ErrMissingField):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "all fields are mandatory"})
	case errors.Is(err, userfile.ErrUserExists):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "this email is already registered"})
	case err != nil:
		s.logger.WithError(err).Error("failed to register user")
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to save user"})
	}

	return c.JSON(http.StatusCreated, SuccessResponse{Success: true})
}

// Login handles POST /auth/login.
func (s *Server) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "all fields are mandatory"})
	}

	user, err := s.users.Authenticate(req.Email, req.Password)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid email or password"})
	}

	token, err := s.authService.IssueToken(user.Email)
	if err != nil {
		s.logger.WithError(err).Error("failed to issue token")
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to issue token"})
	}

	return c.JSON(http.StatusOK, LoginResponse{Token: token, Name: user.Name, Email: user.Email})
}
