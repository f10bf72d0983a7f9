package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nutrimilho/estoque-api/internal/application/dto"
	"github.com/nutrimilho/estoque-api/internal/application/inventory"
)

// GroupHandler maneja las peticiones HTTP para grupos de productos (protegido).
type GroupHandler struct {
	uc      *inventory.CatalogUseCase
	changed func()
}

// NewGroupHandler construye el handler. changed se invoca tras cada mutación
// exitosa para refrescar las alertas; puede ser nil.
func NewGroupHandler(uc *inventory.CatalogUseCase, changed func()) *GroupHandler {
	return &GroupHandler{uc: uc, changed: changed}
}

func (h *GroupHandler) notifyChanged() {
	if h.changed != nil {
		h.changed()
	}
}

// Create godoc
// @Summary      Crear grupo de productos
// @Tags         groups
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateGroupRequest  true  "Datos del grupo"
// @Success      201   {object}  dto.GroupResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/groups [post]
func (h *GroupHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateGroupRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateGroup(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar grupos
// @Tags         groups
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.GroupListResponse
// @Router       /api/groups [get]
func (h *GroupHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListGroups()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar grupo con sus productos y movimientos
// @Tags         groups
// @Security     Bearer
// @Param        id  path  string  true  "ID del grupo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/groups/{id} [delete]
func (h *GroupHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.DeleteGroup(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	h.notifyChanged()
	return c.SendStatus(fiber.StatusNoContent)
}
