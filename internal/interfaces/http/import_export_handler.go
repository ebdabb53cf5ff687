package http

import (
	"bufio"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/pim"
)

// ImportExportHandler maneja importación CSV y export CSV/PDF de productos (protegido).
type ImportExportHandler struct {
	importUC   *pim.ImportUseCase
	exportUC   *pim.ExportUseCase
	templateUC *pim.TemplateUseCase
}

// NewImportExportHandler construye el handler.
func NewImportExportHandler(importUC *pim.ImportUseCase, exportUC *pim.ExportUseCase, templateUC *pim.TemplateUseCase) *ImportExportHandler {
	return &ImportExportHandler{importUC: importUC, exportUC: exportUC, templateUC: templateUC}
}

// Import godoc
// @Summary      Importar productos desde CSV (filas aisladas, upsert por SKU)
// @Tags         import-export
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        companyId  path      string  true  "ID de la empresa"
// @Param        file       formData  file    true  "Archivo CSV"
// @Success      200  {object}  dto.ImportResult
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products/{companyId}/import [post]
func (h *ImportExportHandler) Import(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "archivo 'file' requerido (multipart)")
	}
	if !isCSV(fileHeader) {
		return badRequest(c, "el archivo debe ser CSV")
	}
	f, err := fileHeader.Open()
	if err != nil {
		return badRequest(c, "no se pudo abrir el archivo")
	}
	defer f.Close()

	result, err := h.importUC.Import(c.UserContext(), c.Params("companyId"), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// Export godoc
// @Summary      Exportar productos a CSV (streaming) o PDF
// @Tags         import-export
// @Security     Bearer
// @Produce      text/csv
// @Param        companyId  path   string  true   "ID de la empresa"
// @Param        format     query  string  false  "csv|pdf"  default(csv)
// @Param        categoryId query  string  false  "Filtro por categoría"
// @Param        familyId   query  string  false  "Filtro por familia"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products/{companyId}/export [get]
func (h *ImportExportHandler) Export(c *fiber.Ctx) error {
	companyID := c.Params("companyId")
	var f dto.ExportFilter
	if err := c.QueryParser(&f); err != nil {
		return badRequest(c, "query inválida")
	}

	switch c.Query("format", "csv") {
	case "pdf":
		doc, err := h.exportUC.ExportPDF(companyID, f)
		if err != nil {
			return respondError(c, err)
		}
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="products.pdf"`)
		return c.Send(doc)
	case "csv":
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="products.csv"`)
		// Streaming: las filas se escriben en lotes; si el cliente se
		// desconecta, el writer falla y la generación se corta.
		c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
			if err := h.exportUC.ExportCSV(companyID, f, w); err != nil {
				log.Error().Err(err).Str("company_id", companyID).Msg("export CSV interrumpido")
			}
		})
		return nil
	default:
		return badRequest(c, "format debe ser csv o pdf")
	}
}

// Template godoc
// @Summary      Descargar plantilla CSV de importación
// @Tags         import-export
// @Security     Bearer
// @Produce      text/csv
// @Param        companyId  path  string  true  "ID de la empresa"
// @Success      200
// @Router       /api/products/{companyId}/import-template [get]
func (h *ImportExportHandler) Template(c *fiber.Ctx) error {
	var buf strings.Builder
	if err := h.templateUC.Generate(c.Params("companyId"), &buf); err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="import-template.csv"`)
	return c.SendString(buf.String())
}

// isCSV acepta por extensión .csv o Content-Type de la parte multipart.
func isCSV(fh *multipart.FileHeader) bool {
	if strings.HasSuffix(strings.ToLower(fh.Filename), ".csv") {
		return true
	}
	ct := fh.Header.Get("Content-Type")
	return ct == "text/csv" || ct == "application/csv" || ct == "application/vnd.ms-excel"
}
