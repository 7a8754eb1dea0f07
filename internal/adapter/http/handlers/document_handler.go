package handlers

import (
	"errors"
	"net/http"

	request "cotfact/internal/adapter/http/dto/request"
	response "cotfact/internal/adapter/http/dto/response"
	"cotfact/internal/usecase"
	"cotfact/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidDocumentPayload = pkg.NewDomainErrorSimple("INVALID_DOCUMENT_INPUT", "Invalid document payload", http.StatusBadRequest)
	errDocumentValidation     = pkg.NewDomainErrorSimple("VALIDATION_FAILED", "Document payload failed validation", http.StatusBadRequest)
)

// DocumentHandler handles HTTP requests for quotes and invoices.

type DocumentHandler struct {
	usecase usecase.IDocumentUseCase
}

func NewDocumentHandler(uc usecase.IDocumentUseCase) *DocumentHandler {
	return &DocumentHandler{usecase: uc}
}

// CreateDocument validates the full creation payload and stores a new quote
// or invoice with a freshly allocated document number.
func (h *DocumentHandler) CreateDocument(c *gin.Context) {
	var payload request.CreateDocumentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDocumentPayload.HTTPStatus, errInvalidDocumentPayload.ToHTTPError())
		return
	}

	if errs := payload.Validate(); len(errs) > 0 {
		c.JSON(errDocumentValidation.HTTPStatus, errDocumentValidation.ToValidationError(errs))
		return
	}

	doc, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromDocument(doc))
}

func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	docs, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDocuments(docs))
}

func (h *DocumentHandler) GetDocument(c *gin.Context) {
	doc, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDocument(doc))
}

// UpdateDocument merges a partial patch over the stored document. An empty
// patch never reaches the store.
func (h *DocumentHandler) UpdateDocument(c *gin.Context) {
	var payload request.UpdateDocumentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDocumentPayload.HTTPStatus, errInvalidDocumentPayload.ToHTTPError())
		return
	}

	if errs := payload.Validate(); len(errs) > 0 {
		c.JSON(errDocumentValidation.HTTPStatus, errDocumentValidation.ToValidationError(errs))
		return
	}

	doc, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDocument(doc))
}

func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// ApproveQuote moves a draft or pending quote to approved.
func (h *DocumentHandler) ApproveQuote(c *gin.Context) {
	doc, err := h.usecase.ApproveQuote(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDocument(doc))
}

// ConvertToInvoice creates a new pending invoice from an approved quote. The
// quote itself is left untouched.
func (h *DocumentHandler) ConvertToInvoice(c *gin.Context) {
	doc, err := h.usecase.ConvertToInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromDocument(doc))
}

func mapDocumentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDocumentID), errors.Is(err, usecase.ErrInvalidDocument), errors.Is(err, usecase.ErrEmptyPatch):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDocumentNotFound):
		return pkg.NewDomainErrorSimple("DOCUMENT_NOT_FOUND", "Document not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteAlreadyConverted):
		return pkg.NewDomainErrorSimple("QUOTE_ALREADY_CONVERTED", "Quote has already been converted to an invoice", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotAQuote),
		errors.Is(err, usecase.ErrQuoteNotApprovable),
		errors.Is(err, usecase.ErrQuoteNotApproved),
		errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", err.Error(), http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
