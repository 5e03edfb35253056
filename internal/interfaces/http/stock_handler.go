package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/holawaleh/e-commerce/internal/application/dto"
	"github.com/holawaleh/e-commerce/internal/application/stock"
	"github.com/holawaleh/e-commerce/internal/domain/entity"
)

// StockHandler maneja las peticiones HTTP del ledger de stock (protegido).
type StockHandler struct {
	appendUC    *stock.AppendMovementUseCase
	reconcileUC *stock.ReconcileUseCase
	queryUC     *stock.QueryUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(appendUC *stock.AppendMovementUseCase, reconcileUC *stock.ReconcileUseCase, queryUC *stock.QueryUseCase) *StockHandler {
	return &StockHandler{appendUC: appendUC, reconcileUC: reconcileUC, queryUC: queryUC}
}

// AppendMovement godoc
// @Summary      Registrar movimiento de stock
// @Description  Valida y persiste una entrada del ledger. Todos los fallos de
//
//	validación se devuelven juntos, etiquetados por campo.
//
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AppendMovementRequest  true  "product_id, kind, quantity (magnitud positiva), serie/lote según producto, reason según kind"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/movements [post]
func (h *StockHandler) AppendMovement(c *fiber.Ctx) error {
	businessID := GetBusinessID(c)
	userID := GetUserID(c)
	if businessID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.AppendMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	mov, err := h.appendUC.Append(c.Context(), stock.MovementInput{
		BusinessID:   businessID,
		ProductID:    in.ProductID,
		UserID:       userID,
		Kind:         in.Kind,
		Quantity:     in.Quantity,
		SerialNumber: in.SerialNumber,
		BatchNumber:  in.BatchNumber,
		SupplyDate:   in.SupplyDate,
		ExpiryDate:   in.ExpiryDate,
		Reason:       in.Reason,
		Reference:    in.Reference,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(mov))
}

// ListMovements godoc
// @Summary      Historial de movimientos de un producto
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del producto"
// @Param        from    query  string  false  "Fecha inicial (RFC3339)"
// @Param        to      query  string  false  "Fecha final (RFC3339)"
// @Param        limit   query  int     false  "Máximo de filas (default 20)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {array}   dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock/products/{id}/movements [get]
func (h *StockHandler) ListMovements(c *fiber.Ctx) error {
	businessID := GetBusinessID(c)
	if businessID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	productID := c.Params("id")

	from, to, err := parseDateRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rango de fechas inválido (RFC3339)"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()

	movements, err := h.queryUC.ListMovements(c.Context(), businessID, productID, from, to, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, toMovementResponse(m))
	}
	return c.JSON(fiber.Map{"total": len(out), "movements": out})
}

// Summary godoc
// @Summary      Resumen de movimientos por tipo
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "Fecha inicial (RFC3339)"
// @Param        to    query  string  false  "Fecha final (RFC3339)"
// @Success      200  {array}   dto.MovementSummaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock/movements/summary [get]
func (h *StockHandler) Summary(c *fiber.Ctx) error {
	businessID := GetBusinessID(c)
	if businessID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	from, to, err := parseDateRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rango de fechas inválido (RFC3339)"})
	}
	summary, err := h.queryUC.Summary(c.Context(), businessID, from, to)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.MovementSummaryResponse, 0, len(summary))
	for _, s := range summary {
		out = append(out, dto.MovementSummaryResponse{
			Kind:           s.Kind,
			TotalMovements: s.TotalMovements,
			TotalQuantity:  s.TotalQuantity,
		})
	}
	return c.JSON(out)
}

// Reconcile godoc
// @Summary      Reconciliar el saldo de un producto contra su ledger
// @Description  Recalcula el saldo real repasando el ledger completo y corrige
//
//	el cache si hay deriva. Idempotente.
//
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.ReconcileResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/products/{id}/reconcile [post]
func (h *StockHandler) Reconcile(c *fiber.Ctx) error {
	businessID := GetBusinessID(c)
	if businessID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	result, err := h.reconcileUC.Reconcile(c.Context(), businessID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	msg := "saldo consistente con el ledger"
	if result.Corrected {
		msg = "deriva detectada y corregida"
	}
	return c.JSON(dto.ReconcileResponse{
		Corrected:   result.Corrected,
		OldQuantity: result.OldQuantity,
		NewQuantity: result.NewQuantity,
		Message:     msg,
	})
}

func parseDateRange(c *fiber.Ctx) (from, to *time.Time, err error) {
	if s := c.Query("from"); s != "" {
		t, perr := time.Parse(time.RFC3339, s)
		if perr != nil {
			return nil, nil, perr
		}
		from = &t
	}
	if s := c.Query("to"); s != "" {
		t, perr := time.Parse(time.RFC3339, s)
		if perr != nil {
			return nil, nil, perr
		}
		to = &t
	}
	return from, to, nil
}

func toMovementResponse(m *entity.StockMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:           m.ID,
		ProductID:    m.ProductID,
		Kind:         m.Kind,
		Quantity:     m.Quantity,
		BalanceAfter: m.BalanceAfter,
		SerialNumber: m.SerialNumber,
		BatchNumber:  m.BatchNumber,
		SupplyDate:   m.SupplyDate,
		ExpiryDate:   m.ExpiryDate,
		Reason:       m.Reason,
		Reference:    m.Reference,
		PerformedBy:  m.PerformedBy,
		Timestamp:    m.Timestamp,
	}
}
