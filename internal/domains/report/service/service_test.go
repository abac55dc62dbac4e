package service_test

import (
	"context"
	"testing"
	"time"

	"hotel/infras/otel/mocks"
	billModel "hotel/internal/domains/bill/model"
	bookingModel "hotel/internal/domains/booking/model"
	guestModel "hotel/internal/domains/guest/model"
	"hotel/internal/domains/report/model/dto"
	"hotel/internal/domains/report/service"
	roomModel "hotel/internal/domains/room/model"
	"hotel/internal/store"
	"hotel/internal/store/storetest"
	"hotel/shared/clock"
	"hotel/shared/failure"
	gModel "hotel/shared/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(month time.Month, d int) gModel.Date {
	return gModel.NewDate(2024, month, d)
}

func seed() store.Snapshot {
	return store.Snapshot{
		Rooms: []roomModel.Room{
			{Number: "101", Type: "Deluxe", Price: 100},
			{Number: "102", Type: "Standard", Price: 60},
			{Number: "103", Type: "Deluxe", Price: 120},
			{Number: "104", Type: "Standard", Price: 60},
		},
		Guests: []guestModel.Guest{
			{GuestID: "g1", Name: "Alice"},
			{GuestID: "g2", Name: "Bob"},
			{GuestID: "g3", Name: "Carol"},
		},
		Bookings: []bookingModel.Booking{
			{BookingID: "b1", GuestID: "g2", RoomNumber: "101", CheckIn: day(time.June, 1), CheckOut: day(time.June, 4)},
			{BookingID: "b2", GuestID: "g1", RoomNumber: "102", CheckIn: day(time.June, 3), CheckOut: day(time.June, 6)},
			{BookingID: "b3", GuestID: "g1", RoomNumber: "103", CheckIn: day(time.June, 20), CheckOut: day(time.June, 22)},
			{BookingID: "b4", GuestID: "ghost", RoomNumber: "104", CheckIn: day(time.June, 28), CheckOut: day(time.July, 2)},
			{BookingID: "b5", GuestID: "g2", RoomNumber: "999", CheckIn: day(time.May, 1), CheckOut: day(time.May, 2)},
		},
		Bills: []billModel.Bill{
			{BillID: "x1", BookingID: "b1", Amount: 300, Status: billModel.StatusPaid, PaymentDate: day(time.June, 4)},
			{BillID: "x2", BookingID: "b2", Amount: 180, Status: billModel.StatusPaid, PaymentDate: day(time.June, 30)},
			{BillID: "x3", BookingID: "b3", Amount: 240, Status: billModel.StatusPaid, PaymentDate: day(time.July, 1)},
			{BillID: "x4", BookingID: "b4", Amount: 240, Status: billModel.StatusUnpaid},
			{BillID: "x5", BookingID: "gone", Amount: 120, Status: billModel.StatusPaid, PaymentDate: day(time.June, 10)},
			{BillID: "x6", BookingID: "b5", Amount: 50, Status: billModel.StatusPaid, PaymentDate: day(time.June, 1)},
		},
	}
}

func newService(t *testing.T, today gModel.Date) service.Report {
	t.Helper()

	st, _ := storetest.New(t, seed())

	return service.New(st, clock.Fixed(today), mocks.NewOtel())
}

func TestReportService_Occupancy(t *testing.T) {
	svc := newService(t, day(time.June, 3))

	res, err := svc.Occupancy(context.Background())
	require.NoError(t, err)

	assert.Equal(t, dto.OccupancyReport{
		Date:      "2024-06-03",
		Total:     4,
		Occupied:  2,
		Available: 2,
		Rate:      50,
		Rooms: []dto.RoomOccupancy{
			{Number: "101", Type: "Deluxe", Occupied: true},
			{Number: "102", Type: "Standard", Occupied: true},
			{Number: "103", Type: "Deluxe"},
			{Number: "104", Type: "Standard"},
		},
		ByType: []dto.TypeOccupancy{
			{Type: "Deluxe", Total: 2, Occupied: 1, Rate: 50},
			{Type: "Standard", Total: 2, Occupied: 1, Rate: 50},
		},
	}, res)
}

func TestReportService_OccupancyCheckoutDayIsFree(t *testing.T) {
	svc := newService(t, day(time.June, 4))

	res, err := svc.Occupancy(context.Background())
	require.NoError(t, err)

	assert.False(t, res.Rooms[0].Occupied)
	assert.True(t, res.Rooms[1].Occupied)
	assert.Equal(t, 25.0, res.Rate)
}

func TestReportService_OccupancyEmpty(t *testing.T) {
	st, _ := storetest.New(t, store.Snapshot{})
	svc := service.New(st, clock.Fixed(day(time.June, 3)), mocks.NewOtel())

	res, err := svc.Occupancy(context.Background())
	require.NoError(t, err)

	assert.Zero(t, res.Total)
	assert.Zero(t, res.Rate)
	assert.Empty(t, res.Rooms)
	assert.Empty(t, res.ByType)
}

func TestReportService_Revenue(t *testing.T) {
	svc := newService(t, day(time.July, 15))

	res, err := svc.Revenue(context.Background(), dto.RevenueRequest{Start: "2024-06-01", End: "2024-06-30"})
	require.NoError(t, err)

	// x3 was paid on 07-01 and falls outside; x5 and x6 cannot be traced to a room type
	assert.Equal(t, 650.0, res.Total)
	assert.Equal(t, 4, res.PaidBills)
	assert.Equal(t, 1, res.UnpaidBills)
	require.Len(t, res.ByType, 2)
	assert.Equal(t, "Deluxe", res.ByType[0].Type)
	assert.Equal(t, 300.0, res.ByType[0].Revenue)
	assert.InDelta(t, 46.15, res.ByType[0].Percentage, 0.01)
	assert.Equal(t, "Standard", res.ByType[1].Type)
	assert.Equal(t, 180.0, res.ByType[1].Revenue)
	assert.InDelta(t, 27.69, res.ByType[1].Percentage, 0.01)
}

func TestReportService_RevenueByType(t *testing.T) {
	svc := newService(t, day(time.July, 15))

	res, err := svc.Revenue(context.Background(), dto.RevenueRequest{Start: "2024-06-30", End: "2024-07-01"})
	require.NoError(t, err)

	assert.Equal(t, "2024-06-30", res.Start)
	assert.Equal(t, "2024-07-01", res.End)
	assert.Equal(t, 420.0, res.Total)
	assert.Equal(t, 2, res.PaidBills)
	assert.Equal(t, 1, res.UnpaidBills)

	require.Len(t, res.ByType, 2)
	assert.Equal(t, "Standard", res.ByType[0].Type)
	assert.Equal(t, 180.0, res.ByType[0].Revenue)
	assert.InDelta(t, 42.857, res.ByType[0].Percentage, 0.001)
	assert.Equal(t, "Deluxe", res.ByType[1].Type)
	assert.Equal(t, 240.0, res.ByType[1].Revenue)
	assert.InDelta(t, 57.143, res.ByType[1].Percentage, 0.001)
}

func TestReportService_RevenueErrors(t *testing.T) {
	svc := newService(t, day(time.July, 15))

	tests := []struct {
		name    string
		req     dto.RevenueRequest
		message string
	}{
		{
			name:    "end before start",
			req:     dto.RevenueRequest{Start: "2024-06-30", End: "2024-06-01"},
			message: "end (2024-06-01) must not be before start (2024-06-30)",
		},
		{
			name:    "malformed start",
			req:     dto.RevenueRequest{Start: "June", End: "2024-06-01"},
			message: `invalid start date "June", expected YYYY-MM-DD`,
		},
		{
			name: "missing end",
			req:  dto.RevenueRequest{Start: "2024-06-01"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Revenue(context.Background(), tt.req)
			require.Error(t, err)
			assert.True(t, failure.IsBadRequest(err))

			if tt.message != "" {
				assert.Equal(t, tt.message, err.Error())
			}
		})
	}
}

func TestReportService_RevenueSingleDay(t *testing.T) {
	svc := newService(t, day(time.July, 15))

	res, err := svc.Revenue(context.Background(), dto.RevenueRequest{Start: "2024-06-04", End: "2024-06-04"})
	require.NoError(t, err)

	assert.Equal(t, 300.0, res.Total)
	assert.Equal(t, 1, res.PaidBills)
}

func TestReportService_RevenueUnpaidStayBoundary(t *testing.T) {
	svc := newService(t, day(time.July, 10))

	// b4 runs 06-28 to 07-02: its last night is 07-01, the checkout day is not part of the stay
	tests := []struct {
		name   string
		start  string
		end    string
		unpaid int
	}{
		{name: "range starts on last night", start: "2024-07-01", end: "2024-07-05", unpaid: 1},
		{name: "range starts on checkout day", start: "2024-07-02", end: "2024-07-05", unpaid: 0},
		{name: "range ends on check in", start: "2024-06-25", end: "2024-06-28", unpaid: 1},
		{name: "range ends before check in", start: "2024-06-25", end: "2024-06-27", unpaid: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Revenue(context.Background(), dto.RevenueRequest{Start: tt.start, End: tt.end})
			require.NoError(t, err)

			assert.Equal(t, tt.unpaid, res.UnpaidBills)
		})
	}
}

func TestReportService_GuestStatistics(t *testing.T) {
	svc := newService(t, day(time.June, 3))

	res, err := svc.GuestStatistics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, dto.GuestStatistics{
		Total:           3,
		WithBookings:    2,
		WithoutBookings: 1,
		TopGuests: []dto.TopGuest{
			{GuestID: "g2", Name: "Bob", Bookings: 2},
			{GuestID: "g1", Name: "Alice", Bookings: 2},
			{GuestID: "ghost", Name: "Unknown", Bookings: 1},
		},
	}, res)
}

func TestReportService_GuestStatisticsTopFive(t *testing.T) {
	snapshot := store.Snapshot{}

	for i, id := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		snapshot.Guests = append(snapshot.Guests, guestModel.Guest{GuestID: id, Name: id})

		for n := 0; n <= i%3; n++ {
			snapshot.Bookings = append(snapshot.Bookings, bookingModel.Booking{
				BookingID:  id + string(rune('0'+n)),
				GuestID:    id,
				RoomNumber: "101",
			})
		}
	}

	st, _ := storetest.New(t, snapshot)
	svc := service.New(st, clock.Fixed(day(time.June, 3)), mocks.NewOtel())

	res, err := svc.GuestStatistics(context.Background())
	require.NoError(t, err)

	ids := []string{}
	for _, guest := range res.TopGuests {
		ids = append(ids, guest.GuestID)
	}

	// counts: a=1 b=2 c=3 d=1 e=2 f=3 g=1
	assert.Equal(t, []string{"c", "f", "b", "e", "a"}, ids)
	assert.Equal(t, 7, res.WithBookings)
	assert.Zero(t, res.WithoutBookings)
}
