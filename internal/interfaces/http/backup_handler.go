package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/petshop-pos/internal/application/backup"
	"github.com/tu-usuario/petshop-pos/internal/application/dto"
	"github.com/tu-usuario/petshop-pos/internal/domain"
)

// clearConfirmation frase exacta que el operador debe escribir para vaciar el
// almacén completo.
const clearConfirmation = "BORRAR TODO"

// clearRequest cuerpo esperado por el endpoint de vaciado.
type clearRequest struct {
	Confirmation string `json:"confirmation"`
}

// BackupHandler maneja la exportación, importación y vaciado del almacén.
type BackupHandler struct {
	uc *backup.BackupUseCase
}

// NewBackupHandler construye el handler.
func NewBackupHandler(uc *backup.BackupUseCase) *BackupHandler {
	return &BackupHandler{uc: uc}
}

// Export godoc
// @Summary      Exportar respaldo completo
// @Tags         backup
// @Produce      json
// @Success      200  {object}  dto.BackupDocument
// @Router       /api/backup/export [get]
func (h *BackupHandler) Export(c *fiber.Ctx) error {
	doc, err := h.uc.Export()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="respaldo-pos.json"`)
	return c.JSON(doc)
}

// Import godoc
// @Summary      Importar respaldo (reemplaza todo el contenido)
// @Tags         backup
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BackupDocument  true  "Documento de respaldo"
// @Success      200   {object}  dto.ImportResultDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/backup/import [post]
func (h *BackupHandler) Import(c *fiber.Ctx) error {
	var doc dto.BackupDocument
	if err := c.BodyParser(&doc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.uc.Import(&doc)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el respaldo debe incluir products, orders y transactions"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(result)
}

// Clear godoc
// @Summary      Vaciar el almacén completo
// @Tags         backup
// @Accept       json
// @Param        body  body  clearRequest  true  "Confirmación escrita"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/backup/clear [post]
func (h *BackupHandler) Clear(c *fiber.Ctx) error {
	var in clearRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Confirmation != clearConfirmation {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CONFIRMATION", Message: "escriba exactamente: " + clearConfirmation})
	}
	if err := h.uc.Clear(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
