package cli_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"hotel/infras/metrics"
	"hotel/infras/otel/mocks"
	"hotel/internal/cli"
	billModel "hotel/internal/domains/bill/model"
	billService "hotel/internal/domains/bill/service"
	bookingModel "hotel/internal/domains/booking/model"
	bookingService "hotel/internal/domains/booking/service"
	guestModel "hotel/internal/domains/guest/model"
	guestService "hotel/internal/domains/guest/service"
	reportService "hotel/internal/domains/report/service"
	roomModel "hotel/internal/domains/room/model"
	roomService "hotel/internal/domains/room/service"
	"hotel/internal/store"
	"hotel/internal/store/storetest"
	"hotel/shared/clock"
	gModel "hotel/shared/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed() store.Snapshot {
	return store.Snapshot{
		Rooms: []roomModel.Room{
			{Number: "101", Type: "Deluxe", Price: 100},
			{Number: "102", Type: "Standard", Price: 60},
		},
		Guests: []guestModel.Guest{
			{GuestID: "g1", Name: "Alice Smith", Email: "alice@example.com"},
		},
		Bookings: []bookingModel.Booking{
			{BookingID: "b1", GuestID: "g1", RoomNumber: "101", CheckIn: gModel.NewDate(2024, time.June, 1), CheckOut: gModel.NewDate(2024, time.June, 4), IsActive: true},
		},
		Bills: []billModel.Bill{},
	}
}

type harness struct {
	store *store.Store
	load  cli.Loader
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	st, _ := storetest.New(t, seed())
	clk := clock.Fixed(gModel.NewDate(2024, time.June, 2))
	otl := mocks.NewOtel()
	mtr := metrics.New()

	services := &cli.Services{
		Rooms:    roomService.New(st, clk, otl),
		Guests:   guestService.New(st, otl),
		Bookings: bookingService.New(st, clk, otl, mtr),
		Bills:    billService.New(st, clk, otl, mtr),
		Reports:  reportService.New(st, clk, otl),
	}

	return &harness{
		store: st,
		load:  func() (*cli.Services, error) { return services, nil },
	}
}

func (h *harness) run(args ...string) (stdout, stderr string, code int) {
	cmd := cli.NewRootCommand(h.load)

	var out, errOut bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	code = cli.Execute(cmd, &errOut)

	return out.String(), errOut.String(), code
}

func TestRootCommand_Commands(t *testing.T) {
	cmd := cli.NewRootCommand(newHarness(t).load)

	commands := [][]string{
		{"room", "add"}, {"room", "update"}, {"room", "get"}, {"room", "list"},
		{"guest", "register"}, {"guest", "update"}, {"guest", "get"}, {"guest", "search"}, {"guest", "list"},
		{"booking", "create"}, {"booking", "update"}, {"booking", "cancel"}, {"booking", "get"},
		{"booking", "search"}, {"booking", "list"}, {"booking", "available"},
		{"bill", "generate"}, {"bill", "pay"}, {"bill", "get"}, {"bill", "list"},
		{"report", "occupancy"}, {"report", "revenue"}, {"report", "guests"},
	}

	for _, path := range commands {
		sub, _, err := cmd.Find(path)
		require.NoError(t, err, "%v", path)
		assert.Equal(t, path[len(path)-1], sub.Name())
	}

	format := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, format)
	assert.Equal(t, "text", format.DefValue)
}

func TestBookingCommands(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		code    int
		pattern string
	}{
		{
			name:    "back to back stay",
			args:    []string{"booking", "create", "--guest", "g1", "--room", "101", "--check-in", "2024-06-04", "--check-out", "2024-06-07"},
			code:    cli.ExitSuccess,
			pattern: `Nights:\s+3\n`,
		},
		{
			name:    "overlapping stay declined",
			args:    []string{"booking", "create", "--guest", "g1", "--room", "101", "--check-in", "2024-06-03", "--check-out", "2024-06-07"},
			code:    cli.ExitFailure,
			pattern: "room 101 is not available from 2024-06-03 to 2024-06-07",
		},
		{
			name:    "reversed range",
			args:    []string{"booking", "create", "--guest", "g1", "--room", "102", "--check-in", "2024-05-10", "--check-out", "2024-05-09"},
			code:    cli.ExitInvalid,
			pattern: `check_out \(2024-05-09\) must be after check_in \(2024-05-10\)`,
		},
		{
			name:    "unknown guest",
			args:    []string{"booking", "create", "--guest", "nobody", "--room", "101", "--check-in", "2024-07-01", "--check-out", "2024-07-02"},
			code:    cli.ExitFailure,
			pattern: "guest nobody not found",
		},
		{
			name:    "availability",
			args:    []string{"booking", "available", "--room", "101", "--check-in", "2024-06-03", "--check-out", "2024-06-05"},
			code:    cli.ExitSuccess,
			pattern: `room 101 is not available from 2024-06-03 to 2024-06-05 \(conflicts: b1\)`,
		},
		{
			name:    "move check out only",
			args:    []string{"booking", "update", "b1", "--check-out", "2024-06-06"},
			code:    cli.ExitSuccess,
			pattern: `Check-out:\s+2024-06-06`,
		},
		{
			name:    "status in house",
			args:    []string{"booking", "get", "b1"},
			code:    cli.ExitSuccess,
			pattern: `Status:\s+in_house`,
		},
		{
			name:    "missing argument",
			args:    []string{"booking", "cancel"},
			code:    cli.ExitInvalid,
			pattern: `accepts 1 arg\(s\)`,
		},
		{
			name:    "unknown flag",
			args:    []string{"booking", "list", "--colour", "red"},
			code:    cli.ExitInvalid,
			pattern: "unknown flag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, code := newHarness(t).run(tt.args...)

			assert.Equal(t, tt.code, code, stderr)
			assert.Regexp(t, tt.pattern, stdout+stderr)
		})
	}
}

func TestBillCommands_JSON(t *testing.T) {
	h := newHarness(t)

	stdout, stderr, code := h.run("bill", "generate", "b1", "--format", "json")
	require.Equal(t, cli.ExitSuccess, code, stderr)

	var bill struct {
		BillID      string  `json:"bill_id"`
		Amount      float64 `json:"amount"`
		Status      string  `json:"status"`
		PaymentDate *string `json:"payment_date"`
	}

	require.NoError(t, json.Unmarshal([]byte(stdout), &bill))
	assert.Equal(t, 300.0, bill.Amount)
	assert.Equal(t, "UNPAID", bill.Status)
	assert.Nil(t, bill.PaymentDate)

	_, stderr, code = h.run("bill", "pay", bill.BillID, "--amount", "250")
	assert.Equal(t, cli.ExitFailure, code)
	assert.Contains(t, stderr, "less than the amount due")

	stdout, stderr, code = h.run("bill", "pay", bill.BillID, "--amount", "300")
	require.Equal(t, cli.ExitSuccess, code, stderr)
	assert.Contains(t, stdout, "Paid on:")
	assert.Contains(t, stdout, "2024-06-02")

	_, stderr, code = h.run("bill", "pay", bill.BillID, "--amount", "300")
	assert.Equal(t, cli.ExitFailure, code)
	assert.Contains(t, stderr, "already paid")

	stdout, _, code = h.run("report", "revenue", "--start", "2024-06-01", "--end", "2024-06-30", "--format", "json")
	require.Equal(t, cli.ExitSuccess, code)
	assert.Contains(t, stdout, `"total": 300`)
}

func TestUpdateCommands_KeepOmittedFields(t *testing.T) {
	h := newHarness(t)

	stdout, stderr, code := h.run("room", "update", "101", "--price", "120")
	require.Equal(t, cli.ExitSuccess, code, stderr)
	assert.Contains(t, stdout, "Deluxe")
	assert.Contains(t, stdout, "120.00")

	stdout, stderr, code = h.run("guest", "update", "g1", "--phone", "555-0100")
	require.Equal(t, cli.ExitSuccess, code, stderr)
	assert.Contains(t, stdout, "Alice Smith")
	assert.Contains(t, stdout, "555-0100")
	assert.Contains(t, stdout, "alice@example.com")

	snapshot := storetest.Snapshot(t, h.store)
	assert.Equal(t, "Deluxe", snapshot.Rooms[0].Type)
	assert.Equal(t, 120.0, snapshot.Rooms[0].Price)
}

func TestReportCommands(t *testing.T) {
	h := newHarness(t)

	stdout, _, code := h.run("report", "occupancy")
	require.Equal(t, cli.ExitSuccess, code)
	assert.Contains(t, stdout, "Occupancy on 2024-06-02: 1 of 2 rooms (50.0%), 1 available")

	stdout, _, code = h.run("report", "guests")
	require.Equal(t, cli.ExitSuccess, code)
	assert.Contains(t, stdout, "Guests: 1, with bookings: 1, without: 0")

	_, stderr, code := h.run("report", "revenue", "--start", "2024-06-30", "--end", "2024-06-01")
	assert.Equal(t, cli.ExitInvalid, code)
	assert.Contains(t, stderr, "must not be before start")
}

func TestRootCommand_Errors(t *testing.T) {
	h := newHarness(t)

	_, stderr, code := h.run("room", "list", "--format", "xml")
	assert.Equal(t, cli.ExitInvalid, code)
	assert.Contains(t, stderr, `invalid format "xml"`)

	failing := &harness{load: func() (*cli.Services, error) { return nil, errors.New("permission denied") }}

	_, stderr, code = failing.run("room", "list")
	assert.Equal(t, cli.ExitFailure, code)
	assert.Contains(t, stderr, "failed to open hotel data: permission denied")
}
