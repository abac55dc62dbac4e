package router_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hotel/config"
	"hotel/infras/metrics"
	"hotel/infras/otel/mocks"
	billService "hotel/internal/domains/bill/service"
	bookingService "hotel/internal/domains/booking/service"
	guestService "hotel/internal/domains/guest/service"
	reportService "hotel/internal/domains/report/service"
	roomService "hotel/internal/domains/room/service"
	billHandler "hotel/internal/handlers/bill"
	bookingHandler "hotel/internal/handlers/booking"
	guestHandler "hotel/internal/handlers/guest"
	reportHandler "hotel/internal/handlers/report"
	roomHandler "hotel/internal/handlers/room"
	"hotel/internal/store"
	"hotel/internal/store/storetest"
	"hotel/shared/clock"
	gModel "hotel/shared/model"
	"hotel/transport/http/middleware"
	"hotel/transport/http/router"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, cfg *config.Config) http.Handler {
	t.Helper()

	st, _ := storetest.New(t, store.Snapshot{})
	clk := clock.Fixed(gModel.NewDate(2024, time.May, 20))
	otl := mocks.NewOtel()
	mtr := metrics.New()

	handlers := router.DomainHandlers{
		Room:    roomHandler.New(roomService.New(st, clk, otl), otl),
		Guest:   guestHandler.New(guestService.New(st, otl), otl),
		Booking: bookingHandler.New(bookingService.New(st, clk, otl, mtr), otl),
		Bill:    billHandler.New(billService.New(st, clk, otl, mtr), otl),
		Report:  reportHandler.New(reportService.New(st, clk, otl), otl),
	}

	r := router.New(handlers, middleware.NewAppMiddleware(otl, cfg, mtr), mtr)
	mux := chi.NewRouter()
	r.SetupRoutes(mux)

	return mux
}

func do(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec
}

func data(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var envelope struct {
		Data map[string]any `json:"data"`
	}

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope), rec.Body.String())

	return envelope.Data
}

func TestRouter_BookingAndBillingFlow(t *testing.T) {
	srv := newServer(t, &config.Config{})

	rec := do(t, srv, http.MethodPost, "/v1/rooms", `{"number":"101","type":"Deluxe","price":100}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, srv, http.MethodPost, "/v1/rooms", `{"number":"101","type":"Suite","price":200}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, srv, http.MethodPost, "/v1/guests", `{"name":"Alice Smith","email":"alice@example.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	guestID, _ := data(t, rec)["guest_id"].(string)
	require.Len(t, guestID, 8)

	rec = do(t, srv, http.MethodPost, "/v1/bookings",
		`{"guest_id":"`+guestID+`","room_number":"101","check_in":"2024-06-01","check_out":"2024-06-04"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	booking := data(t, rec)
	bookingID, _ := booking["booking_id"].(string)
	assert.Equal(t, "upcoming", booking["status"])
	assert.EqualValues(t, 3, booking["nights"])

	rec = do(t, srv, http.MethodPost, "/v1/bookings",
		`{"guest_id":"`+guestID+`","room_number":"101","check_in":"2024-06-03","check_out":"2024-06-06"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error":"room 101 is not available from 2024-06-03 to 2024-06-06"}`, rec.Body.String())

	rec = do(t, srv, http.MethodPost, "/v1/bookings",
		`{"guest_id":"`+guestID+`","room_number":"101","check_in":"2024-05-10","check_out":"2024-05-09"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, srv, http.MethodGet, "/v1/bookings/availability?room_number=101&check_in=2024-06-04&check_out=2024-06-08", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, data(t, rec)["available"])

	rec = do(t, srv, http.MethodPost, "/v1/bills", `{"booking_id":"`+bookingID+`"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	bill := data(t, rec)
	billID, _ := bill["bill_id"].(string)
	assert.EqualValues(t, 300, bill["amount"])
	assert.Equal(t, "UNPAID", bill["status"])
	assert.Nil(t, bill["payment_date"])

	rec = do(t, srv, http.MethodPost, "/v1/bills/"+billID+"/payments", `{"amount":100}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, srv, http.MethodPost, "/v1/bills/"+billID+"/payments", `{"amount":300}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "2024-05-20", data(t, rec)["payment_date"])

	rec = do(t, srv, http.MethodGet, "/v1/reports/revenue?start=2024-05-01&end=2024-05-31", "")
	require.Equal(t, http.StatusOK, rec.Code)
	revenue := data(t, rec)
	assert.EqualValues(t, 300, revenue["total"])
	assert.EqualValues(t, 1, revenue["paid_bills"])

	rec = do(t, srv, http.MethodGet, "/v1/reports/revenue?start=2024-05-31&end=2024-05-01", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, srv, http.MethodDelete, "/v1/bookings/"+bookingID, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, srv, http.MethodGet, "/v1/bills/"+billID, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, srv, http.MethodGet, "/v1/bookings/"+bookingID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_NotFoundAndMalformed(t *testing.T) {
	srv := newServer(t, &config.Config{})

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		code   int
	}{
		{name: "unknown room", method: http.MethodGet, path: "/v1/rooms/999", code: http.StatusNotFound},
		{name: "unknown guest", method: http.MethodGet, path: "/v1/guests/nobody", code: http.StatusNotFound},
		{name: "unknown bill", method: http.MethodPost, path: "/v1/bills/nope/payments", body: `{"amount":10}`, code: http.StatusNotFound},
		{name: "malformed json", method: http.MethodPost, path: "/v1/rooms", body: `{"number":`, code: http.StatusBadRequest},
		{name: "invalid email", method: http.MethodPost, path: "/v1/guests", body: `{"name":"Bob","email":"bob"}`, code: http.StatusBadRequest},
		{name: "empty listing", method: http.MethodGet, path: "/v1/bookings", code: http.StatusOK},
		{name: "occupancy", method: http.MethodGet, path: "/v1/reports/occupancy", code: http.StatusOK},
		{name: "guest statistics", method: http.MethodGet, path: "/v1/reports/guests", code: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, srv, tt.method, tt.path, tt.body)

			assert.Equal(t, tt.code, rec.Code, rec.Body.String())
		})
	}
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	srv := newServer(t, &config.Config{})

	rec := do(t, srv, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	do(t, srv, http.MethodGet, "/v1/rooms/999", "")

	rec = do(t, srv, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `hotel_http_requests_total{method="GET",route="/v1/rooms/{number}",status="404"} 1`), rec.Body.String())
}

func TestRouter_RateLimit(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	srv := newServer(t, cfg)

	for range 2 {
		rec := do(t, srv, http.MethodGet, "/healthz", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
	}

	rec := do(t, srv, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Forwarded-For", "10.0.0.9, 10.0.0.1")

	other := httptest.NewRecorder()
	srv.ServeHTTP(other, req)
	assert.Equal(t, http.StatusOK, other.Code)
}

func TestRouter_CORS(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"https://front.example.com"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet}

	srv := newServer(t, cfg)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://front.example.com")

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, "https://front.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}
