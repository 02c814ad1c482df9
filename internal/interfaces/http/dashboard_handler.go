package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/DavidManiIbrahim/keeper-api/internal/application/analytics"
	"github.com/DavidManiIbrahim/keeper-api/internal/application/dto"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetStats devuelve el snapshot de métricas del inventario.
// GET /api/dashboard/stats
//
// Respuesta: DashboardStatsDTO (total_products, total_suppliers,
// total_categories, low_stock_products, total_stock_value,
// recent_transaction_count sobre los últimos 7 días).
// No requiere parámetros; las agregaciones se calculan en el servidor.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.uc.GetStats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(stats)
}
