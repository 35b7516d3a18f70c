package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/obrasur/remitos-api/internal/application/auth"
	"github.com/obrasur/remitos-api/internal/application/export"
	"github.com/obrasur/remitos-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC   *auth.UseCase
	UserUC   *usecase.UserUseCase
	WorkUC   *usecase.WorkUseCase
	RemitoUC *usecase.RemitoUseCase
	CSVUC    *export.CSVUseCase
	PDFUC    *export.PDFUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público; logout y sesión no exigen sesión previa)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/session", authHandler.Session)

	// Rutas protegidas (requieren sesión activa)
	protected := api.Group("/", SessionMiddleware(deps.AuthUC))

	// Users: lectura con sesión, escritura solo admin
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Post("/", AdminOnly(), userHandler.Create)
	users.Put("/:id", AdminOnly(), userHandler.Update)
	users.Delete("/:id", AdminOnly(), userHandler.Delete)

	// Works: mismo esquema que users
	works := protected.Group("/works")
	workHandler := NewWorkHandler(deps.WorkUC)
	works.Get("/", workHandler.List)
	works.Get("/:id", workHandler.GetByID)
	works.Post("/", AdminOnly(), workHandler.Create)
	works.Put("/:id", AdminOnly(), workHandler.Update)
	works.Delete("/:id", AdminOnly(), workHandler.Delete)

	// Remitos: la regla de edición se aplica dentro del handler
	remitos := protected.Group("/remitos")
	remitoHandler := NewRemitoHandler(deps.RemitoUC, deps.CSVUC, deps.PDFUC)
	remitos.Get("/", remitoHandler.List)
	remitos.Get("/export.csv", remitoHandler.ExportCSV)
	remitos.Get("/:id", remitoHandler.GetByID)
	remitos.Get("/:id/pdf", remitoHandler.PrintPDF)
	remitos.Post("/", remitoHandler.Create)
	remitos.Put("/:id", remitoHandler.Update)
	remitos.Delete("/:id", remitoHandler.Delete)
}
