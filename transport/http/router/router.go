package router

import (
	"net/http"

	"hotel/infras/metrics"
	"hotel/internal/handlers/bill"
	"hotel/internal/handlers/booking"
	"hotel/internal/handlers/guest"
	"hotel/internal/handlers/report"
	"hotel/internal/handlers/room"
	"hotel/transport/http/middleware"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

type DomainHandlers struct {
	Room    room.Handler
	Guest   guest.Handler
	Booking booking.Handler
	Bill    bill.Handler
	Report  report.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Middleware     middleware.AppMiddleware
	Metrics        *metrics.Metrics
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.Recoverer)
	router.Use(r.Middleware.Tracing)
	router.Use(r.Middleware.Metrics)
	router.Use(r.Middleware.Logger)
	router.Use(r.Middleware.CORS())
	router.Use(r.Middleware.RateLimit())

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		response.WithMessage(w, http.StatusOK, "OK")
	})
	router.Handle("/metrics", r.Metrics.Handler())

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Bill.Router(routerGroup)
		r.DomainHandlers.Report.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware, mtr *metrics.Metrics) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middleware:     appMiddleware,
		Metrics:        mtr,
	}
}
