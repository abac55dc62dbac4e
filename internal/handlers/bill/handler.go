package bill

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/bill/model/dto"
	"hotel/internal/domains/bill/service"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/validator"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Bill
	otel    otel.Otel
}

func New(service service.Bill, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bills", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.GenerateBill)
		routerGroup.Get("/", handler.GetBills)
		routerGroup.Get("/{id}", handler.GetBill)
		routerGroup.Post("/{id}/payments", handler.PayBill)
	})
}

// GenerateBill returns the booking's bill, creating it on the first call.
func (handler *Handler) GenerateBill(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GenerateBill")
	defer scope.End()

	req := dto.GenerateBillRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	bill, err := handler.service.Generate(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", req.BookingID).Msg("failed to generate bill")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, bill)
}

func (handler *Handler) GetBills(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBills")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	bills, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bills")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bills)
}

func (handler *Handler) GetBill(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBill")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	bill, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("bill_id", id).Msg("failed to get bill")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bill)
}

func (handler *Handler) PayBill(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PayBill")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	req := dto.PayBillRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	bill, err := handler.service.Pay(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("bill_id", id).Msg("failed to pay bill")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bill paid successfully")

	response.WithJSON(w, http.StatusOK, bill)
}
