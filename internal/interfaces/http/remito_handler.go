package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/obrasur/remitos-api/internal/application/dto"
	"github.com/obrasur/remitos-api/internal/application/export"
	"github.com/obrasur/remitos-api/internal/application/usecase"
	"github.com/obrasur/remitos-api/internal/domain/entity"
)

// RemitoHandler maneja las peticiones HTTP para remitos, incluida la
// exportación CSV del listado y la versión imprimible en PDF.
//
// Las reglas de permiso de edición (creador o admin, remito no firmado por
// ambas partes) se aplican acá, en la capa de presentación, no en el almacén.
type RemitoHandler struct {
	uc  *usecase.RemitoUseCase
	csv *export.CSVUseCase
	pdf *export.PDFUseCase
}

// NewRemitoHandler construye el handler.
func NewRemitoHandler(uc *usecase.RemitoUseCase, csv *export.CSVUseCase, pdf *export.PDFUseCase) *RemitoHandler {
	return &RemitoHandler{uc: uc, csv: csv, pdf: pdf}
}

// List godoc
// @Summary      Listar remitos con filtros
// @Tags         remitos
// @Produce      json
// @Param        work_id     query  string  false  "Obra destino"
// @Param        user_id     query  string  false  "Usuario creador"
// @Param        status      query  string  false  "Estado"
// @Param        item        query  string  false  "Texto en nombre de ítem"
// @Param        start_date  query  string  false  "Desde (YYYY-MM-DD)"
// @Param        end_date    query  string  false  "Hasta inclusive (YYYY-MM-DD)"
// @Success      200  {array}  dto.RemitoResponse
// @Router       /api/remitos [get]
func (h *RemitoHandler) List(c *fiber.Ctx) error {
	var filter dto.RemitoFilter
	if err := c.QueryParser(&filter); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "filtros inválidos"})
	}
	out, err := h.uc.List(c.Context(), filter)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener remito por ID
// @Tags         remitos
// @Produce      json
// @Param        id   path  string  true  "ID del remito"
// @Success      200  {object}  dto.RemitoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/remitos/{id} [get]
func (h *RemitoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear remito
// @Tags         remitos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRemitoRequest  true  "Datos del remito"
// @Success      201   {object}  dto.RemitoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/remitos [post]
func (h *RemitoHandler) Create(c *fiber.Ctx) error {
	user, _ := SessionUser(c)
	var in dto.CreateRemitoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	// Regla del formulario original: la firma del emisor es obligatoria al crear.
	if in.SenderSignature == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "la firma del emisor es obligatoria"})
	}
	out, err := h.uc.Create(c.Context(), user.ID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar remito
// @Tags         remitos
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del remito"
// @Param        body  body  dto.UpdateRemitoRequest  true  "Parche"
// @Success      200   {object}  dto.RemitoResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/remitos/{id} [put]
func (h *RemitoHandler) Update(c *fiber.Ctx) error {
	remito, err := h.uc.GetEntity(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if ok, resp := h.canEdit(c, remito); !ok {
		return resp
	}
	var in dto.UpdateRemitoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), remito.ID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar remito
// @Tags         remitos
// @Param        id  path  string  true  "ID del remito"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/remitos/{id} [delete]
func (h *RemitoHandler) Delete(c *fiber.Ctx) error {
	remito, err := h.uc.GetEntity(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if ok, resp := h.canEdit(c, remito); !ok {
		return resp
	}
	if err := h.uc.Delete(c.Context(), remito.ID); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// canEdit aplica la regla de edición: puede editar su creador o un admin, y
// solo mientras el remito no esté firmado por ambas partes. Si no se puede,
// escribe la respuesta 403 y devuelve ok=false.
func (h *RemitoHandler) canEdit(c *fiber.Ctx, remito *entity.Remito) (bool, error) {
	user, _ := SessionUser(c)
	if remito.FullySigned() {
		return false, c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el remito está firmado por ambas partes y no admite cambios"})
	}
	if !user.IsAdmin() && remito.CreatedByID != user.ID {
		return false, c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo el creador o un admin pueden modificar el remito"})
	}
	return true, nil
}

// ExportCSV godoc
// @Summary      Exportar listado filtrado a CSV
// @Tags         remitos
// @Produce      text/csv
// @Success      200  {string}  string
// @Router       /api/remitos/export.csv [get]
func (h *RemitoHandler) ExportCSV(c *fiber.Ctx) error {
	var filter dto.RemitoFilter
	if err := c.QueryParser(&filter); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "filtros inválidos"})
	}
	remitos, err := h.uc.Filtered(c.Context(), filter)
	if err != nil {
		return writeError(c, err)
	}
	data, err := h.csv.Export(c.Context(), remitos)
	if err != nil {
		return writeError(c, err)
	}
	filename := fmt.Sprintf("remitos_%s.csv", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// PrintPDF godoc
// @Summary      Versión imprimible de un remito
// @Tags         remitos
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del remito"
// @Success      200  {string}  string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/remitos/{id}/pdf [get]
func (h *RemitoHandler) PrintPDF(c *fiber.Ctx) error {
	remito, err := h.uc.GetEntity(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	data, err := h.pdf.Print(c.Context(), remito)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+remito.Number+`.pdf"`)
	return c.Send(data)
}
