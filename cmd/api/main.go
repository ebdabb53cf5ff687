package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/jhoicas/Catalogo-api/docs"
	"github.com/jhoicas/Catalogo-api/internal/application/auth"
	"github.com/jhoicas/Catalogo-api/internal/application/pim"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Catalogo-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Catalogo-api/internal/interfaces/http"
	"github.com/jhoicas/Catalogo-api/pkg/config"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

// @title        Catálogo API
// @version      1.0
// @description  API PIM multi-tenant: categorías, atributos, familias, productos e import/export.
// @securityDefinitions.apikey Bearer
// @in    header
// @name  Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	attributeRepo := postgres.NewAttributeRepository(pool)
	sectionRepo := postgres.NewSectionRepository(pool)
	familyRepo := postgres.NewFamilyRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	valueRepo := postgres.NewAttributeValueRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	companyUC := usecase.NewCompanyUseCase(companyRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, productRepo, txRunner)
	attributeUC := usecase.NewAttributeUseCase(attributeRepo, valueRepo, familyRepo)
	sectionUC := usecase.NewSectionUseCase(sectionRepo, attributeRepo, txRunner)
	familyUC := usecase.NewFamilyUseCase(familyRepo, attributeRepo, productRepo, valueRepo, txRunner)
	productUC := usecase.NewProductUseCase(productRepo, valueRepo, familyRepo, txRunner)
	importUC := pim.NewImportUseCase(categoryRepo, attributeRepo, familyRepo, productRepo, txRunner)

	// PDF: catálogo de productos para exportación
	pdfGenerator := infrapdf.NewMarotoCatalogGenerator()
	exportUC := pim.NewExportUseCase(productRepo, valueRepo, categoryRepo, familyRepo, companyRepo, pdfGenerator)
	templateUC := pim.NewTemplateUseCase(attributeRepo)

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Catálogo API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:   companyUC,
		CategoryUC:  categoryUC,
		AttributeUC: attributeUC,
		SectionUC:   sectionUC,
		FamilyUC:    familyUC,
		ProductUC:   productUC,
		ImportUC:    importUC,
		ExportUC:    exportUC,
		TemplateUC:  templateUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
