package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"publicity/internal/auth"
	"publicity/internal/errors"
)

// TokenHandler issues bearer tokens to authenticated callers.
type TokenHandler struct {
	tokens *auth.TokenService
}

// NewTokenHandler creates a new token handler.
func NewTokenHandler(tokens *auth.TokenService) *TokenHandler {
	return &TokenHandler{tokens: tokens}
}

// TokenResponse carries a freshly issued token and its lifetime in seconds.
type TokenResponse struct {
	Token    string `json:"token"`
	Duration int    `json:"duration"`
}

// Get godoc
// @Summary Issue a bearer token
// @Description Returns a short-lived token that substitutes for the password on subsequent requests.
// @Tags auth
// @Produce json
// @Security BasicAuth
// @Success 200 {object} TokenResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /token [get]
func (h *TokenHandler) Get(c echo.Context) error {
	user := auth.CurrentUser(c)

	token, err := h.tokens.Generate(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to issue token",
			Code:  "TOKEN_ISSUE_FAILED",
		})
	}

	return c.JSON(http.StatusOK, TokenResponse{
		Token:    token,
		Duration: int(h.tokens.TTL().Seconds()),
	})
}
