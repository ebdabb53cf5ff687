package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
)

// SectionHandler maneja las peticiones HTTP para Section (protegido).
type SectionHandler struct {
	uc *usecase.SectionUseCase
}

// NewSectionHandler construye el handler.
func NewSectionHandler(uc *usecase.SectionUseCase) *SectionHandler {
	return &SectionHandler{uc: uc}
}

// List godoc
// @Summary      Listar secciones en orden
// @Tags         sections
// @Security     Bearer
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Success      200  {array}  dto.SectionResponse
// @Router       /api/sections/{companyId} [get]
func (h *SectionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Params("companyId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener sección por ID
// @Tags         sections
// @Security     Bearer
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Param        id         path  string  true  "ID de la sección"
// @Success      200  {object}  dto.SectionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sections/{companyId}/{id} [get]
func (h *SectionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Params("companyId"), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "sección no encontrada")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear sección (orden auto-asignado a max+1)
// @Tags         sections
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Param        body  body  dto.CreateSectionRequest  true  "Datos de la sección"
// @Success      201   {object}  dto.SectionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sections/{companyId} [post]
func (h *SectionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSectionRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.Code == "" || in.Name == "" {
		return badRequest(c, "code y name son requeridos")
	}
	out, err := h.uc.Create(c.Params("companyId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar sección
// @Tags         sections
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Param        id         path  string  true  "ID de la sección"
// @Param        body  body  dto.UpdateSectionRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.SectionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sections/{companyId}/{id} [put]
func (h *SectionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSectionRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Params("companyId"), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Reorder godoc
// @Summary      Reordenar secciones (ids en la posición deseada)
// @Tags         sections
// @Security     Bearer
// @Accept       json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Param        body  body  dto.ReorderSectionsRequest  true  "Ids en el nuevo orden"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sections/{companyId}/reorder [put]
func (h *SectionHandler) Reorder(c *fiber.Ctx) error {
	var in dto.ReorderSectionsRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if err := h.uc.Reorder(c.UserContext(), c.Params("companyId"), in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar sección (bloqueado con atributos asignados)
// @Tags         sections
// @Security     Bearer
// @Param        companyId  path  string  true  "ID de la empresa"
// @Param        id         path  string  true  "ID de la sección"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sections/{companyId}/{id} [delete]
func (h *SectionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("companyId"), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
