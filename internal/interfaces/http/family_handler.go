package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
)

// FamilyHandler maneja las peticiones HTTP para Family (protegido).
type FamilyHandler struct {
	uc *usecase.FamilyUseCase
}

// NewFamilyHandler construye el handler.
func NewFamilyHandler(uc *usecase.FamilyUseCase) *FamilyHandler {
	return &FamilyHandler{uc: uc}
}

// List godoc
// @Summary      Listar familias con conteos
// @Tags         families
// @Security     Bearer
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Success      200  {array}  dto.FamilyResponse
// @Router       /api/families/{companyId} [get]
func (h *FamilyHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Params("companyId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener familia con grupos y atributos requeridos
// @Tags         families
// @Security     Bearer
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Param        id         path  string  true  "ID de la familia"
// @Success      200  {object}  dto.FamilyDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/families/{companyId}/{id} [get]
func (h *FamilyHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Params("companyId"), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "familia no encontrada")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear familia con grupos y requeridos en una transacción
// @Tags         families
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Param        body  body  dto.CreateFamilyRequest  true  "Datos de la familia"
// @Success      201   {object}  dto.FamilyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/families/{companyId} [post]
func (h *FamilyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFamilyRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.Code == "" || in.Name == "" {
		return badRequest(c, "code y name son requeridos")
	}
	out, err := h.uc.Create(c.UserContext(), c.Params("companyId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar familia (reemplazo total de grupos/requeridos si vienen)
// @Tags         families
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Param        id         path  string  true  "ID de la familia"
// @Param        body  body  dto.UpdateFamilyRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.FamilyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/families/{companyId}/{id} [put]
func (h *FamilyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateFamilyRequest
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
// @Summary      Eliminar familia (bloqueado con productos asignados)
// @Tags         families
// @Security     Bearer
// @Param        companyId  path  string  true  "ID de la empresa"
// @Param        id         path  string  true  "ID de la familia"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/families/{companyId}/{id} [delete]
func (h *FamilyHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("companyId"), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Products godoc
// @Summary      Listar productos de una familia
// @Tags         families
// @Security     Bearer
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Param        id         path  string  true  "ID de la familia"
// @Success      200  {object}  dto.ProductListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/families/{companyId}/{id}/products [get]
func (h *FamilyHandler) Products(c *fiber.Ctx) error {
	var q dto.ProductListQuery
	if err := c.QueryParser(&q); err != nil {
		return badRequest(c, "query inválida")
	}
	out, err := h.uc.Products(c.Params("companyId"), c.Params("id"), q)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "familia no encontrada")
	}
	return c.JSON(out)
}
