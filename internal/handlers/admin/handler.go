package admin

import (
	"net/http"

	"lodge/infras/otel"
	"lodge/internal/domains/stats/service"
	"lodge/shared/constant"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	statsService service.Stats
	otel         otel.Otel
}

func New(statsService service.Stats, otel otel.Otel) Handler {
	return Handler{
		statsService: statsService,
		otel:         otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/admin", func(routerGroup chi.Router) {
		routerGroup.Get("/stats", handler.GetDashboardStats)
		routerGroup.Get("/dashboard", handler.GetDashboardStats)
	})
}

// GetDashboardStats returns the aggregated admin dashboard figures.
// @Summary Get dashboard statistics
// @Description Room counts, booking counts by status, total and monthly revenue, and the most recent bookings.
// @Tags Admin
// @Accept json
// @Produce json
// @Success 200 {object} dto.DashboardStatsResponse "Dashboard statistics"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/stats [get]
// @Security BearerAuth
func (handler *Handler) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDashboardStats")
	defer scope.End()

	stats, err := handler.statsService.Dashboard(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dashboard stats")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Dashboard stats retrieved successfully")

	response.WithJSON(w, http.StatusOK, stats)
}
