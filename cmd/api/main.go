package main

import (
	_ "pedido_venda/docs"
	"pedido_venda/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Pedido de Venda API
// @version         1.0
// @description     Sales order form service: line-item ledger, document layout, PDF/XLSX export and submission.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
