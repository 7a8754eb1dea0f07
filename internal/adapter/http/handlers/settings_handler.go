package handlers

import (
	"errors"
	"net/http"

	request "cotfact/internal/adapter/http/dto/request"
	response "cotfact/internal/adapter/http/dto/response"
	"cotfact/internal/usecase"
	"cotfact/pkg"
	"cotfact/pkg/auth"

	"github.com/gin-gonic/gin"
)

var errInvalidSettingsPayload = pkg.NewDomainErrorSimple("INVALID_SETTINGS_INPUT", "Invalid settings payload", http.StatusBadRequest)

// defaultOwnerID is used when requests are unauthenticated (local single-user
// deployments without AUTH_JWT_SECRET).
const defaultOwnerID = "default"

// SettingsHandler handles the per-owner company info and template preference
// rows.

type SettingsHandler struct {
	usecase usecase.ISettingsUseCase
}

func NewSettingsHandler(uc usecase.ISettingsUseCase) *SettingsHandler {
	return &SettingsHandler{usecase: uc}
}

// ownerID resolves the row owner: the authenticated subject when present,
// otherwise the shared default row.
func ownerID(c *gin.Context) string {
	if sub := auth.Subject(c); sub != "" {
		return sub
	}
	return defaultOwnerID
}

func (h *SettingsHandler) GetCompanyInfo(c *gin.Context) {
	info, err := h.usecase.GetCompanyInfo(c.Request.Context(), ownerID(c))
	if err != nil {
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCompanyInfo(info))
}

func (h *SettingsHandler) SaveCompanyInfo(c *gin.Context) {
	var payload request.CompanyInfoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSettingsPayload.HTTPStatus, errInvalidSettingsPayload.ToHTTPError())
		return
	}

	if errs := payload.Validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, errInvalidSettingsPayload.ToValidationError(errs))
		return
	}

	info, err := h.usecase.SaveCompanyInfo(c.Request.Context(), payload.ToEntity(ownerID(c)))
	if err != nil {
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCompanyInfo(info))
}

func (h *SettingsHandler) GetTemplatePreferences(c *gin.Context) {
	prefs, err := h.usecase.GetTemplatePreferences(c.Request.Context(), ownerID(c))
	if err != nil {
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTemplatePreferences(prefs))
}

func (h *SettingsHandler) SaveTemplatePreferences(c *gin.Context) {
	var payload request.TemplatePreferencesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSettingsPayload.HTTPStatus, errInvalidSettingsPayload.ToHTTPError())
		return
	}

	prefs, err := h.usecase.SaveTemplatePreferences(c.Request.Context(), payload.ToEntity(ownerID(c)))
	if err != nil {
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTemplatePreferences(prefs))
}

func mapSettingsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOwnerID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCompanyInfoNotFound), errors.Is(err, usecase.ErrPreferencesNotFound):
		return pkg.NewDomainErrorSimple("SETTINGS_NOT_FOUND", "Settings not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
