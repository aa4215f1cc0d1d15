package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"publicity/internal/auth"
	"publicity/internal/model"
	"publicity/internal/service"
)

// PublicityHandler bundles HTTP handlers for the publicity resource.
type PublicityHandler struct {
	svc service.PublicityService
}

// NewPublicityHandler creates a handler layer.
func NewPublicityHandler(svc service.PublicityService) *PublicityHandler {
	return &PublicityHandler{svc: svc}
}

// PublicityRequest represents a posting create or update. company_name and
// contact replace the stored values wholesale.
type PublicityRequest struct {
	Publication string `json:"publication" validate:"required,max=140"`
	CompanyName string `json:"company_name" validate:"omitempty,max=45"`
	Contact     string `json:"contact" validate:"omitempty,max=45"`
}

// PublicityPayload is the public representation of a posting. User carries
// the owner's nickname and is only set on creation responses.
type PublicityPayload struct {
	ID          uint   `json:"id"`
	Publication string `json:"publication"`
	Contact     string `json:"contact"`
	CompanyName string `json:"company_name"`
	User        string `json:"user,omitempty"`
}

// PublicityResponse wraps a posting payload in the wire envelope.
type PublicityResponse struct {
	Publicity PublicityPayload `json:"publicity"`
}

// PublicityListResponse wraps the full posting list.
type PublicityListResponse struct {
	Publicities []PublicityPayload `json:"publicities"`
}

func publicityPayload(p *model.Publicity) PublicityPayload {
	return PublicityPayload{
		ID:          p.ID,
		Publication: p.Publication,
		Contact:     p.Contact,
		CompanyName: p.CompanyName,
	}
}

func publicityID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

// Create godoc
// @Summary Create a posting
// @Description The authenticated caller becomes the posting's owner.
// @Tags publicity
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param request body PublicityRequest true "Posting data"
// @Success 201 {object} PublicityResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /publicity [post]
func (h *PublicityHandler) Create(c echo.Context) error {
	var req PublicityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	owner := auth.CurrentUser(c)
	publicity, err := h.svc.Create(c.Request().Context(), owner, service.PublicityInput{
		Publication: req.Publication,
		CompanyName: req.CompanyName,
		Contact:     req.Contact,
	})
	if err != nil {
		return httpError(err)
	}

	payload := publicityPayload(publicity)
	payload.User = owner.Nickname
	return c.JSON(http.StatusCreated, PublicityResponse{Publicity: payload})
}

// Get godoc
// @Summary Get a posting
// @Tags publicity
// @Produce json
// @Param id path int true "Publicity ID"
// @Success 200 {object} PublicityResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /publicity/{id} [get]
func (h *PublicityHandler) Get(c echo.Context) error {
	id, err := publicityID(c)
	if err != nil {
		return err
	}

	publicity, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, PublicityResponse{Publicity: publicityPayload(publicity)})
}

// List godoc
// @Summary List all postings
// @Tags publicity
// @Produce json
// @Success 200 {object} PublicityListResponse
// @Router /publicity [get]
func (h *PublicityHandler) List(c echo.Context) error {
	publicities, err := h.svc.List(c.Request().Context())
	if err != nil {
		return httpError(err)
	}

	payloads := make([]PublicityPayload, 0, len(publicities))
	for i := range publicities {
		payloads = append(payloads, publicityPayload(&publicities[i]))
	}
	return c.JSON(http.StatusOK, PublicityListResponse{Publicities: payloads})
}

// Update godoc
// @Summary Update a posting
// @Description Only the owner may update; omitted optional fields are cleared.
// @Tags publicity
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param id path int true "Publicity ID"
// @Param request body PublicityRequest true "Posting data"
// @Success 200 {object} PublicityResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /publicity/{id} [put]
func (h *PublicityHandler) Update(c echo.Context) error {
	id, err := publicityID(c)
	if err != nil {
		return err
	}

	var req PublicityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	publicity, err := h.svc.Update(c.Request().Context(), auth.CurrentUser(c), id, service.PublicityInput{
		Publication: req.Publication,
		CompanyName: req.CompanyName,
		Contact:     req.Contact,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, PublicityResponse{Publicity: publicityPayload(publicity)})
}

// Delete godoc
// @Summary Delete a posting
// @Tags publicity
// @Produce json
// @Security BasicAuth
// @Param id path int true "Publicity ID"
// @Success 200 {object} ResultResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /publicity/{id} [delete]
func (h *PublicityHandler) Delete(c echo.Context) error {
	id, err := publicityID(c)
	if err != nil {
		return err
	}

	if err := h.svc.Delete(c.Request().Context(), auth.CurrentUser(c), id); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, ResultResponse{Result: true})
}
