package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP para Product (protegido).
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos con filtros, orden y paginación
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        companyId  path   string  true   "ID de la empresa"
// @Param        page       query  int     false  "Página"  default(1)
// @Param        limit      query  int     false  "Límite"  default(20)
// @Param        search     query  string  false  "Busca en name, description y sku"
// @Param        categoryId query  string  false  "Filtro por categoría"
// @Param        familyId   query  string  false  "Filtro por familia"
// @Param        status     query  string  false  "Filtro por estado"
// @Param        sortBy     query  string  false  "name|sku|status|completeness|createdAt|updatedAt"
// @Param        sortOrder  query  string  false  "asc|desc"
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products/{companyId} [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var q dto.ProductListQuery
	if err := c.QueryParser(&q); err != nil {
		return badRequest(c, "query inválida")
	}
	out, err := h.uc.List(c.Params("companyId"), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto con valores y completitud recalculada
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Param        id         path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{companyId}/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Params("companyId"), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "producto no encontrado")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto con valores de atributo
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products/{companyId} [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.Name == "" {
		return badRequest(c, "name es requerido")
	}
	out, err := h.uc.Create(c.UserContext(), c.Params("companyId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar producto (set de valores reemplazado si viene)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Param        id         path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{companyId}/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("companyId"), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Security     Bearer
// @Param        companyId  path  string  true  "ID de la empresa"
// @Param        id         path  string  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{companyId}/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("companyId"), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// BulkEdit godoc
// @Summary      Editar en lote por lista de ids
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Param        body  body  dto.BulkEditRequest  true  "Ids y campos a aplicar"
// @Success      200   {object}  map[string]int
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products/{companyId}/bulk-edit [post]
func (h *ProductHandler) BulkEdit(c *fiber.Ctx) error {
	var in dto.BulkEditRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	updated, err := h.uc.BulkEdit(c.Params("companyId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"updated": updated})
}

// BulkDelete godoc
// @Summary      Eliminar en lote por lista de ids
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Param        body  body  dto.BulkDeleteRequest  true  "Ids a eliminar"
// @Success      200   {object}  map[string]int
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products/{companyId}/bulk-delete [post]
func (h *ProductHandler) BulkDelete(c *fiber.Ctx) error {
	var in dto.BulkDeleteRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	deleted, err := h.uc.BulkDelete(c.Params("companyId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": deleted})
}
