package main

import (
	"cotfact/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           COTFACT API
// @version         1.0
// @description     Quotes and invoices service (documents, customers, settings) backed by DynamoDB.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}
