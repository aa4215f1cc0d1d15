package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"publicity/internal/auth"
	"publicity/internal/model"
	"publicity/internal/service"
)

// UserHandler bundles HTTP handlers for the user resource.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// CreateUserRequest represents a signup request.
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,user_email"`
	Nickname string `json:"nickname" validate:"required,user_nickname"`
	Name     string `json:"name" validate:"required,user_name"`
	Fullname string `json:"fullname" validate:"required,user_name"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest represents a profile update; all fields are optional.
type UpdateUserRequest struct {
	Name     *string `json:"name" validate:"omitempty,user_name"`
	Fullname *string `json:"fullname" validate:"omitempty,user_name"`
	Email    *string `json:"email" validate:"omitempty,user_email"`
	Password *string `json:"password"`
}

// UserPayload is the public representation of a user; the password hash is
// never part of it.
type UserPayload struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Fullname string `json:"fullname"`
	Nickname string `json:"nickname"`
	Email    string `json:"email"`
}

// UserResponse wraps a user payload in the wire envelope.
type UserResponse struct {
	User UserPayload `json:"user"`
}

// ResultResponse acknowledges a mutation.
type ResultResponse struct {
	Result bool `json:"result"`
}

func userPayload(u *model.User) UserPayload {
	return UserPayload{
		ID:       u.ID,
		Name:     u.Name,
		Fullname: u.Fullname,
		Nickname: u.Nickname,
		Email:    u.Email,
	}
}

// Create godoc
// @Summary Sign up a new user
// @Tags users
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "Signup data"
// @Success 201 {object} UserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /user [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.svc.Register(c.Request().Context(), req.Name, req.Fullname, req.Nickname, req.Email, req.Password)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, UserResponse{User: userPayload(user)})
}

// Get godoc
// @Summary Get own user record
// @Tags users
// @Produce json
// @Security BasicAuth
// @Param nickname path string true "Nickname"
// @Success 200 {object} UserResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /user/{nickname} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.svc.Get(c.Request().Context(), auth.CurrentUser(c), c.Param("nickname"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, UserResponse{User: userPayload(user)})
}

// Update godoc
// @Summary Update own user record
// @Tags users
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param nickname path string true "Nickname"
// @Param request body UpdateUserRequest true "Fields to update"
// @Success 200 {object} ResultResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /user/{nickname} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	upd := service.UserUpdate{
		Name:     req.Name,
		Fullname: req.Fullname,
		Email:    req.Email,
		Password: req.Password,
	}
	if err := h.svc.Update(c.Request().Context(), auth.CurrentUser(c), c.Param("nickname"), upd); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, ResultResponse{Result: true})
}

// Delete godoc
// @Summary Delete own user record
// @Description Deletes the user together with every posting it owns.
// @Tags users
// @Produce json
// @Security BasicAuth
// @Param nickname path string true "Nickname"
// @Success 200 {object} ResultResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /user/{nickname} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), auth.CurrentUser(c), c.Param("nickname")); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, ResultResponse{Result: true})
}
