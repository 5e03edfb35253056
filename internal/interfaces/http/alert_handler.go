package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/holawaleh/e-commerce/internal/application/dto"
	"github.com/holawaleh/e-commerce/internal/application/usecase"
	"github.com/holawaleh/e-commerce/internal/domain/entity"
)

// AlertHandler maneja las peticiones HTTP de alertas de stock (protegido).
type AlertHandler struct {
	uc               *usecase.AlertUseCase
	expiryWindowDays int
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *usecase.AlertUseCase, expiryWindowDays int) *AlertHandler {
	return &AlertHandler{uc: uc, expiryWindowDays: expiryWindowDays}
}

// List godoc
// @Summary      Listar alertas de stock
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        unresolved  query  bool  false  "Solo alertas sin resolver"
// @Param        limit       query  int   false  "Máximo de filas (default 20)"
// @Param        offset      query  int   false  "Desplazamiento"
// @Success      200  {array}   dto.AlertResponse
// @Router       /api/stock/alerts [get]
func (h *AlertHandler) List(c *fiber.Ctx) error {
	businessID := GetBusinessID(c)
	if businessID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	unresolvedOnly := c.QueryBool("unresolved", false)

	alerts, err := h.uc.List(c.Context(), businessID, unresolvedOnly, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, toAlertResponse(a))
	}
	return c.JSON(fiber.Map{"total": len(out), "alerts": out})
}

// Resolve godoc
// @Summary      Resolver una alerta manualmente
// @Description  Marca la alerta como resuelta por el usuario autenticado.
//
//	Resolver una alerta ya resuelta devuelve 409.
//
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la alerta"
// @Success      200  {object}  dto.AlertResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/stock/alerts/{id}/resolve [post]
func (h *AlertHandler) Resolve(c *fiber.Ctx) error {
	businessID := GetBusinessID(c)
	userID := GetUserID(c)
	if businessID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	alert, err := h.uc.Resolve(c.Context(), businessID, c.Params("id"), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toAlertResponse(alert))
}

// ExpiryCheck godoc
// @Summary      Barrido de lotes próximos a vencer
// @Description  Abre alertas EXPIRING_SOON para productos con lotes que vencen
//
//	dentro de la ventana. Idempotente: lotes ya alertados no abren duplicados.
//
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        window_days  query  int  false  "Ventana en días (default configurado)"
// @Success      200  {object}  dto.ExpiryCheckResponse
// @Router       /api/stock/alerts/expiry-check [post]
func (h *AlertHandler) ExpiryCheck(c *fiber.Ctx) error {
	businessID := GetBusinessID(c)
	if businessID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	windowDays := c.QueryInt("window_days", h.expiryWindowDays)
	if windowDays <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "window_days debe ser mayor que 0"})
	}
	opened, err := h.uc.ExpiryCheck(c.Context(), businessID, windowDays)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ExpiryCheckResponse{WindowDays: windowDays, AlertsOpened: opened})
}

func toAlertResponse(a *entity.StockAlert) dto.AlertResponse {
	return dto.AlertResponse{
		ID:         a.ID,
		ProductID:  a.ProductID,
		Kind:       a.Kind,
		IsResolved: a.IsResolved,
		ResolvedBy: a.ResolvedBy,
		ResolvedAt: a.ResolvedAt,
		CreatedAt:  a.CreatedAt,
	}
}
