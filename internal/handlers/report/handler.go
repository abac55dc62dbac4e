package report

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/report/model/dto"
	"hotel/internal/domains/report/service"
	"hotel/shared/constant"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Report
	otel    otel.Otel
}

func New(service service.Report, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reports", func(routerGroup chi.Router) {
		routerGroup.Get("/occupancy", handler.GetOccupancy)
		routerGroup.Get("/revenue", handler.GetRevenue)
		routerGroup.Get("/guests", handler.GetGuestStatistics)
	})
}

func (handler *Handler) GetOccupancy(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOccupancy")
	defer scope.End()

	report, err := handler.service.Occupancy(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build occupancy report")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, report)
}

// GetRevenue reads the inclusive range from ?start= and ?end=.
func (handler *Handler) GetRevenue(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRevenue")
	defer scope.End()

	req := dto.RevenueRequest{
		Start: r.URL.Query().Get(constant.RequestParamStart),
		End:   r.URL.Query().Get(constant.RequestParamEnd),
	}

	report, err := handler.service.Revenue(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build revenue report")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, report)
}

func (handler *Handler) GetGuestStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuestStatistics")
	defer scope.End()

	report, err := handler.service.GuestStatistics(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build guest statistics")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, report)
}
