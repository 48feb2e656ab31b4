package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "contactbook/internal/errors"
	"contactbook/internal/service"
)

// SimpleContactHandler serves contact CRUD for the simplified endpoint
// family. Semantics match the schema-validated family; only the request
// validation is manual.
type SimpleContactHandler struct {
	contacts service.ContactService
}

// NewSimpleContactHandler creates a new simplified contact handler.
func NewSimpleContactHandler(contacts service.ContactService) *SimpleContactHandler {
	return &SimpleContactHandler{contacts: contacts}
}

func (h *SimpleContactHandler) bindContact(c echo.Context) (service.ContactInput, error) {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return service.ContactInput{}, echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid request body",
			Code:  "VALIDATION_ERROR",
		})
	}
	if req.FirstName == "" {
		return service.ContactInput{}, fieldRequired("first_name")
	}
	if req.LastName == "" {
		return service.ContactInput{}, fieldRequired("last_name")
	}
	return req.toInput(), nil
}

// Create godoc
// @Summary Create a contact (simplified scheme)
// @Tags simple_contacts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} model.ContactProjection
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /simple_contacts [post]
func (h *SimpleContactHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	input, err := h.bindContact(c)
	if err != nil {
		return err
	}

	contact, err := h.contacts.Create(c.Request().Context(), userID, input)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, contact.Projection())
}

// List godoc
// @Summary List contacts (simplified scheme)
// @Tags simple_contacts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ContactListResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /simple_contacts [get]
func (h *SimpleContactHandler) List(c echo.Context) error {
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
// @Summary Get a contact by id (simplified scheme)
// @Tags simple_contacts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.ContactProjection
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /simple_contacts/{id} [get]
func (h *SimpleContactHandler) Get(c echo.Context) error {
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
// @Summary Update a contact (simplified scheme)
// @Tags simple_contacts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.ContactProjection
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /simple_contacts/{id} [put]
func (h *SimpleContactHandler) Update(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	contactID, err := contactIDParam(c)
	if err != nil {
		return err
	}

	input, err := h.bindContact(c)
	if err != nil {
		return err
	}

	contact, err := h.contacts.Update(c.Request().Context(), userID, contactID, input)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, contact.Projection())
}

// Delete godoc
// @Summary Delete a contact (simplified scheme)
// @Tags simple_contacts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /simple_contacts/{id} [delete]
func (h *SimpleContactHandler) Delete(c echo.Context) error {
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
