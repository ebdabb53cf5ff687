package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// AttributeHandler maneja las peticiones HTTP para Attribute (protegido).
type AttributeHandler struct {
	uc *usecase.AttributeUseCase
}

// NewAttributeHandler construye el handler.
func NewAttributeHandler(uc *usecase.AttributeUseCase) *AttributeHandler {
	return &AttributeHandler{uc: uc}
}

// List godoc
// @Summary      Listar atributos con conteos de uso
// @Tags         attributes
// @Security     Bearer
// @Produce      json
// @Param        companyId  path   string  true   "ID de la empresa"
// @Param        type       query  string  false  "Filtro por tipo"
// @Param        sectionId  query  string  false  "Filtro por sección"
// @Success      200  {array}  dto.AttributeResponse
// @Router       /api/attributes/{companyId} [get]
func (h *AttributeHandler) List(c *fiber.Ctx) error {
	f := repository.AttributeFilter{
		Type:      c.Query("type"),
		SectionID: c.Query("sectionId"),
	}
	out, err := h.uc.List(c.Params("companyId"), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener atributo con conteos de uso
// @Tags         attributes
// @Security     Bearer
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Param        id         path  string  true  "ID del atributo"
// @Success      200  {object}  dto.AttributeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/attributes/{companyId}/{id} [get]
func (h *AttributeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Params("companyId"), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "atributo no encontrado")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear atributo (definición validada por tipo)
// @Tags         attributes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Param        body  body  dto.CreateAttributeRequest  true  "Definición del atributo"
// @Success      201   {object}  dto.AttributeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/attributes/{companyId} [post]
func (h *AttributeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAttributeRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.Code == "" || in.Name == "" || in.Type == "" {
		return badRequest(c, "code, name y type son requeridos")
	}
	out, err := h.uc.Create(c.Params("companyId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar atributo (type-change bloqueado con valores vivos)
// @Tags         attributes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Param        id         path  string  true  "ID del atributo"
// @Param        body  body  dto.UpdateAttributeRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.AttributeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/attributes/{companyId}/{id} [put]
func (h *AttributeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAttributeRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Params("companyId"), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar atributo (bloqueado con valores o familias que lo usan)
// @Tags         attributes
// @Security     Bearer
// @Param        companyId  path  string  true  "ID de la empresa"
// @Param        id         path  string  true  "ID del atributo"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/attributes/{companyId}/{id} [delete]
func (h *AttributeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("companyId"), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
