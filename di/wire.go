//go:build wireinject
// +build wireinject

package di

import (
	"hotel/config"
	"hotel/infras/metrics"
	"hotel/infras/otel"
	"hotel/infras/storage"
	"hotel/internal/cli"
	"hotel/shared/clock"
	"hotel/transport/http"
	"hotel/transport/http/middleware"
	"hotel/transport/http/router"

	billRepository "hotel/internal/domains/bill/repository"
	billService "hotel/internal/domains/bill/service"
	bookingRepository "hotel/internal/domains/booking/repository"
	bookingService "hotel/internal/domains/booking/service"
	guestRepository "hotel/internal/domains/guest/repository"
	guestService "hotel/internal/domains/guest/service"
	reportService "hotel/internal/domains/report/service"
	roomRepository "hotel/internal/domains/room/repository"
	roomService "hotel/internal/domains/room/service"
	billHandler "hotel/internal/handlers/bill"
	bookingHandler "hotel/internal/handlers/booking"
	guestHandler "hotel/internal/handlers/guest"
	reportHandler "hotel/internal/handlers/report"
	roomHandler "hotel/internal/handlers/room"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	metrics.New,
	storage.NewCodec,
	storage.New,
	clock.System,
)

var repositories = wire.NewSet(
	roomRepository.New,
	guestRepository.New,
	bookingRepository.New,
	billRepository.New,
	ProvideStore,
)

var domains = wire.NewSet(
	roomService.New,
	guestService.New,
	bookingService.New,
	billService.New,
	reportService.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	guestHandler.New,
	bookingHandler.New,
	billHandler.New,
	reportHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, error) {
	wire.Build(
		configurations,
		infrastructures,
		repositories,
		domains,
		middlewares,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil
}

func InitializeCLI() (*cli.Services, error) {
	wire.Build(
		configurations,
		infrastructures,
		repositories,
		domains,
		wire.Struct(new(cli.Services), "*"),
	)

	return &cli.Services{}, nil
}
