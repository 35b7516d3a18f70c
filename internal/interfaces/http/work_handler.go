package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/obrasur/remitos-api/internal/application/dto"
	"github.com/obrasur/remitos-api/internal/application/usecase"
)

// WorkHandler maneja las peticiones HTTP para obras.
type WorkHandler struct {
	uc *usecase.WorkUseCase
}

// NewWorkHandler construye el handler.
func NewWorkHandler(uc *usecase.WorkUseCase) *WorkHandler {
	return &WorkHandler{uc: uc}
}

// List godoc
// @Summary      Listar obras
// @Tags         works
// @Produce      json
// @Success      200  {array}  dto.WorkResponse
// @Router       /api/works [get]
func (h *WorkHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener obra por ID
// @Tags         works
// @Produce      json
// @Param        id   path  string  true  "ID de la obra"
// @Success      200  {object}  dto.WorkResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/works/{id} [get]
func (h *WorkHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear obra
// @Tags         works
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWorkRequest  true  "Datos de la obra"
// @Success      201   {object}  dto.WorkResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/works [post]
func (h *WorkHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWorkRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar obra
// @Tags         works
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la obra"
// @Param        body  body  dto.UpdateWorkRequest  true  "Parche"
// @Success      200   {object}  dto.WorkResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/works/{id} [put]
func (h *WorkHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateWorkRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar obra
// @Tags         works
// @Param        id  path  string  true  "ID de la obra"
// @Success      204
// @Router       /api/works/{id} [delete]
func (h *WorkHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
