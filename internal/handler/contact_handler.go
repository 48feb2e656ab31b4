package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "contactbook/internal/errors"
	"contactbook/internal/middleware"
	"contactbook/internal/model"
	"contactbook/internal/service"
)

// ContactHandler serves the schema-validated contact endpoints.
type ContactHandler struct {
	contacts service.ContactService
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(contacts service.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

// ContactRequest represents a contact create/update payload.
type ContactRequest struct {
	FirstName    string   `json:"first_name" validate:"required,max=100"`
	LastName     string   `json:"last_name" validate:"required,max=100"`
	Company      string   `json:"company" validate:"omitempty,max=100"`
	Address      string   `json:"address"`
	PhoneNumbers []string `json:"phone_numbers"`
}

// ContactListResponse is one page of contacts plus pagination metadata.
type ContactListResponse struct {
	Contacts []model.ContactProjection `json:"contacts"`
	Total    int64                     `json:"total"`
	Pages    int                       `json:"pages"`
	Page     int                       `json:"page"`
	PerPage  int                       `json:"per_page"`
}

// MessageResponse carries a human-readable acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

func (r ContactRequest) toInput() service.ContactInput {
	return service.ContactInput{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Company:      r.Company,
		Address:      r.Address,
		PhoneNumbers: r.PhoneNumbers,
	}
}

func currentUserID(c echo.Context) (uint, error) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
			Error: apperrors.ErrUnauthorized.Error(),
			Code:  "UNAUTHORIZED",
		})
	}
	return user.ID, nil
}

func contactIDParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusNotFound, apperrors.ErrorResponse{
			Error: apperrors.ErrContactNotFound.Error(),
			Code:  "NOT_FOUND",
		})
	}
	return uint(id), nil
}

func projectContacts(contacts []model.Contact) []model.ContactProjection {
	projections := make([]model.ContactProjection, 0, len(contacts))
	for i := range contacts {
		projections = append(projections, contacts[i].Projection())
	}
	return projections
}

// Create godoc
// @Summary Create a contact
// @Tags contacts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ContactRequest true "Contact fields"
// @Success 201 {object} model.ContactProjection
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /contacts [post]
func (h *ContactHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid request body",
			Code:  "VALIDATION_ERROR",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	contact, err := h.contacts.Create(c.Request().Context(), userID, req.toInput())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, contact.Projection())
}

// List godoc
// @Summary List contacts with pagination and search
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number, starting at 1"
// @Param per_page query int false "Items per page, capped at 50"
// @Param search query string false "Substring matched against name, company and address"
// @Success 200 {object} ContactListResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /contacts [get]
func (h *ContactHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	perPage, _ := strconv.Atoi(c.QueryParam("per_page"))
	search := c.QueryParam("search")

	result, err := h.contacts.List(c.Request().Context(), userID, page, perPage, search)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, ContactListResponse{
		Contacts: projectContacts(result.Contacts),
		Total:    result.Total,
		Pages:    result.Pages,
		Page:     result.Page,
		PerPage:  result.PerPage,
	})
}

// Get godoc
// @Summary Get a contact by id
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contact ID"
// @Success 200 {object} model.ContactProjection
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /contacts/{id} [get]
func (h *ContactHandler) Get(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	contactID, err := contactIDParam(c)
	if err != nil {
		return err
	}

	contact, err := h.contacts.Get(c.Request().Context(), userID, contactID)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, contact.Projection())
}

// Update godoc
// @Summary Update a contact
// @Tags contacts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contact ID"
// @Param request body ContactRequest true "Contact fields"
// @Success 200 {object} model.ContactProjection
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /contacts/{id} [put]
func (h *ContactHandler) Update(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	contactID, err := contactIDParam(c)
	if err != nil {
		return err
	}

	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid request body",
			Code:  "VALIDATION_ERROR",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	contact, err := h.contacts.Update(c.Request().Context(), userID, contactID, req.toInput())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, contact.Projection())
}

// Delete godoc
// @Summary Delete a contact
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contact ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /contacts/{id} [delete]
func (h *ContactHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	contactID, err := contactIDParam(c)
	if err != nil {
		return err
	}

	if err := h.contacts.Delete(c.Request().Context(), userID, contactID); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Contact deleted successfully"})
}
