package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Catalogo-api/internal/application/auth"
	"github.com/jhoicas/Catalogo-api/internal/application/pim"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC   *usecase.CompanyUseCase
	CategoryUC  *usecase.CategoryUseCase
	AttributeUC *usecase.AttributeUseCase
	SectionUC   *usecase.SectionUseCase
	FamilyUC    *usecase.FamilyUseCase
	ProductUC   *usecase.ProductUseCase
	ImportUC    *pim.ImportUseCase
	ExportUC    *pim.ExportUseCase
	TemplateUC  *pim.TemplateUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API. Las rutas con segmento fijo
// (reorder, bulk-edit, export...) van antes que las rutas /:id para
// que fiber no las capture como parámetro.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Companies (creación pública para bootstrap; lectura protegida)
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", AuthMiddleware(deps.JWTSecret), companyHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token; el companyId del path
	// debe coincidir con el del token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	categories := protected.Group("/categories/:companyId", CompanyScope())
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	attributes := protected.Group("/attributes/:companyId", CompanyScope())
	attributeHandler := NewAttributeHandler(deps.AttributeUC)
	attributes.Get("/", attributeHandler.List)
	attributes.Post("/", attributeHandler.Create)
	attributes.Get("/:id", attributeHandler.GetByID)
	attributes.Put("/:id", attributeHandler.Update)
	attributes.Delete("/:id", attributeHandler.Delete)

	sections := protected.Group("/sections/:companyId", CompanyScope())
	sectionHandler := NewSectionHandler(deps.SectionUC)
	sections.Get("/", sectionHandler.List)
	sections.Post("/", sectionHandler.Create)
	sections.Put("/reorder", sectionHandler.Reorder)
	sections.Get("/:id", sectionHandler.GetByID)
	sections.Put("/:id", sectionHandler.Update)
	sections.Delete("/:id", sectionHandler.Delete)

	families := protected.Group("/families/:companyId", CompanyScope())
	familyHandler := NewFamilyHandler(deps.FamilyUC)
	families.Get("/", familyHandler.List)
	families.Post("/", familyHandler.Create)
	families.Get("/:id", familyHandler.GetByID)
	families.Get("/:id/products", familyHandler.Products)
	families.Put("/:id", familyHandler.Update)
	families.Delete("/:id", familyHandler.Delete)

	products := protected.Group("/products/:companyId", CompanyScope())
	productHandler := NewProductHandler(deps.ProductUC)
	ioHandler := NewImportExportHandler(deps.ImportUC, deps.ExportUC, deps.TemplateUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Post("/bulk-edit", RequireRole("admin", "editor"), productHandler.BulkEdit)
	products.Post("/bulk-delete", RequireRole("admin", "editor"), productHandler.BulkDelete)
	products.Get("/export", ioHandler.Export)
	products.Post("/import", RequireRole("admin", "editor"), ioHandler.Import)
	products.Get("/import-template", ioHandler.Template)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
}
