package routes

import (
	"cotfact/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDocuments = "/documents"
	PathCustomers = "/customers"
	PathSettings  = "/settings"
)

func addDocumentRoutes(rg *gin.RouterGroup, h *handlers.DocumentHandler) {
	documents := rg.Group(PathDocuments)
	{
		documents.POST("", h.CreateDocument)
		documents.GET("", h.ListDocuments)
		documents.GET("/:id", h.GetDocument)
		documents.PATCH("/:id", h.UpdateDocument)
		documents.DELETE("/:id", h.DeleteDocument)

		// Lifecycle transitions.
		documents.PATCH("/:id/approve", h.ApproveQuote)
		documents.POST("/:id/convert", h.ConvertToInvoice)
	}
}

func addCustomerRoutes(rg *gin.RouterGroup, h *handlers.CustomerHandler) {
	customers := rg.Group(PathCustomers)
	{
		customers.POST("", h.CreateCustomer)
		customers.GET("", h.ListCustomers)
		customers.GET("/:id", h.GetCustomer)
		customers.PATCH("/:id", h.UpdateCustomer)
		customers.DELETE("/:id", h.DeleteCustomer)
	}
}

func addSettingsRoutes(rg *gin.RouterGroup, h *handlers.SettingsHandler) {
	settings := rg.Group(PathSettings)
	{
		settings.GET("/company", h.GetCompanyInfo)
		settings.PUT("/company", h.SaveCompanyInfo)
		settings.GET("/template", h.GetTemplatePreferences)
		settings.PUT("/template", h.SaveTemplatePreferences)
	}
}
