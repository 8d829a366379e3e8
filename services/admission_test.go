package services_test

import (
	"errors"
	"testing"
	"time"

	"hotel-admin/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func ptr(f float64) *float64 { return &f }

type fakeRates struct {
	rates map[uint]float64
	err   error
}

func (f *fakeRates) NightlyRate(roomID uint) (float64, error) {
	if f.err != nil {
		return 0, f.err
	}
	rate, ok := f.rates[roomID]
	if !ok {
		return 0, services.ErrRateUnavailable
	}
	return rate, nil
}

type fakeBooking struct {
	id       uint
	roomID   uint
	checkIn  time.Time
	checkOut time.Time
	status   string
}

type fakeConflicts struct {
	bookings []fakeBooking
	err      error
}

func (f *fakeConflicts) CountConflicts(roomID uint, checkIn, checkOut time.Time, excludeBookingID uint) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var n int64
	for _, b := range f.bookings {
		if b.roomID != roomID {
			continue
		}
		if excludeBookingID != 0 && b.id == excludeBookingID {
			continue
		}
		if b.status != services.StatusPending && b.status != services.StatusConfirmed {
			continue
		}
		// half-open overlap: NOT (out1 <= in2 OR in1 >= out2)
		if b.checkOut.After(checkIn) && b.checkIn.Before(checkOut) {
			n++
		}
	}
	return n, nil
}

func newEngine(rates *fakeRates, conflicts *fakeConflicts) *services.AdmissionEngine {
	if rates == nil {
		rates = &fakeRates{rates: map[uint]float64{}}
	}
	if conflicts == nil {
		conflicts = &fakeConflicts{}
	}
	return services.NewAdmissionEngine(rates, conflicts)
}

func TestComputeNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{"three nights", date("2025-03-01"), date("2025-03-04"), 3},
		{"one night", date("2025-03-01"), date("2025-03-02"), 1},
		{"equal dates", date("2025-03-01"), date("2025-03-01"), 0},
		{"inverted range", date("2025-01-10"), date("2025-01-05"), 0},
		{"one day inverted", date("2025-03-02"), date("2025-03-01"), 0},
		{
			"timestamps truncated to day boundaries",
			time.Date(2025, 3, 1, 23, 59, 0, 0, time.UTC),
			time.Date(2025, 3, 2, 0, 1, 0, 0, time.UTC),
			1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.ComputeNights(tt.checkIn, tt.checkOut))
		})
	}
}

func TestComputePrice(t *testing.T) {
	rates := &fakeRates{rates: map[uint]float64{1: 80.00, 2: 0.00}}
	engine := newEngine(rates, nil)

	t.Run("rate times nights", func(t *testing.T) {
		assert.InDelta(t, 400.00, engine.ComputePrice(1, 5, nil), 1e-9)
	})

	t.Run("manual override wins over room rate", func(t *testing.T) {
		assert.InDelta(t, 120.00, engine.ComputePrice(1, 5, ptr(120.00)), 1e-9)
	})

	t.Run("zero nights short-circuits", func(t *testing.T) {
		assert.InDelta(t, 0.00, engine.ComputePrice(1, 0, nil), 1e-9)
	})

	t.Run("zero rate room", func(t *testing.T) {
		assert.InDelta(t, 0.00, engine.ComputePrice(2, 3, nil), 1e-9)
	})

	t.Run("unknown room degrades to zero", func(t *testing.T) {
		assert.InDelta(t, 0.00, engine.ComputePrice(99, 3, nil), 1e-9)
	})

	t.Run("rate lookup fault degrades to zero", func(t *testing.T) {
		broken := newEngine(&fakeRates{err: errors.New("db gone")}, nil)
		assert.InDelta(t, 0.00, broken.ComputePrice(1, 3, nil), 1e-9)
	})
}

func TestIsRoomAvailable(t *testing.T) {
	existing := []fakeBooking{
		{id: 7, roomID: 1, checkIn: date("2025-06-01"), checkOut: date("2025-06-05"), status: services.StatusConfirmed},
		{id: 8, roomID: 1, checkIn: date("2025-07-01"), checkOut: date("2025-07-03"), status: services.StatusCancelled},
		{id: 9, roomID: 2, checkIn: date("2025-06-01"), checkOut: date("2025-06-05"), status: services.StatusCompleted},
	}
	engine := newEngine(nil, &fakeConflicts{bookings: existing})

	t.Run("overlapping range conflicts", func(t *testing.T) {
		assert.False(t, engine.IsRoomAvailable(1, date("2025-06-04"), date("2025-06-08"), 0))
	})

	t.Run("back-to-back checkout and check-in is allowed", func(t *testing.T) {
		assert.True(t, engine.IsRoomAvailable(1, date("2025-06-05"), date("2025-06-10"), 0))
	})

	t.Run("cancelled booking does not block", func(t *testing.T) {
		assert.True(t, engine.IsRoomAvailable(1, date("2025-07-01"), date("2025-07-03"), 0))
	})

	t.Run("completed booking does not block", func(t *testing.T) {
		assert.True(t, engine.IsRoomAvailable(2, date("2025-06-02"), date("2025-06-04"), 0))
	})

	t.Run("editing a booking against its own range", func(t *testing.T) {
		assert.True(t, engine.IsRoomAvailable(1, date("2025-06-01"), date("2025-06-05"), 7))
	})

	t.Run("lookup fault fails closed", func(t *testing.T) {
		broken := newEngine(nil, &fakeConflicts{err: errors.New("db gone")})
		assert.False(t, broken.IsRoomAvailable(1, date("2025-06-01"), date("2025-06-05"), 0))
	})
}

func TestAdmit(t *testing.T) {
	rates := &fakeRates{rates: map[uint]float64{1: 80.00}}
	conflicts := &fakeConflicts{bookings: []fakeBooking{
		{id: 7, roomID: 1, checkIn: date("2025-06-01"), checkOut: date("2025-06-05"), status: services.StatusConfirmed},
	}}
	engine := services.NewAdmissionEngine(rates, conflicts)

	t.Run("valid candidate accepted with computed price", func(t *testing.T) {
		res := engine.Admit(services.BookingCandidate{
			RoomID:   1,
			CheckIn:  date("2025-08-01"),
			CheckOut: date("2025-08-04"),
			Status:   services.StatusConfirmed,
		})
		require.True(t, res.Accepted)
		assert.Equal(t, 3, res.Nights)
		assert.InDelta(t, 240.00, res.TotalPrice, 1e-9)
	})

	t.Run("manual price override carries into the result", func(t *testing.T) {
		res := engine.Admit(services.BookingCandidate{
			RoomID:      1,
			CheckIn:     date("2025-08-01"),
			CheckOut:    date("2025-08-04"),
			Status:      services.StatusPending,
			ManualPrice: ptr(199.50),
		})
		require.True(t, res.Accepted)
		assert.InDelta(t, 199.50, res.TotalPrice, 1e-9)
	})

	rejections := []struct {
		name      string
		candidate services.BookingCandidate
		reason    services.RejectReason
	}{
		{
			"missing room",
			services.BookingCandidate{CheckIn: date("2025-08-01"), CheckOut: date("2025-08-04"), Status: services.StatusPending},
			services.RejectInvalidInput,
		},
		{
			"missing dates",
			services.BookingCandidate{RoomID: 1, Status: services.StatusPending},
			services.RejectInvalidInput,
		},
		{
			"unrecognized status",
			services.BookingCandidate{RoomID: 1, CheckIn: date("2025-08-01"), CheckOut: date("2025-08-04"), Status: "checked-in"},
			services.RejectInvalidInput,
		},
		{
			"check-out before check-in",
			services.BookingCandidate{RoomID: 1, CheckIn: date("2025-01-10"), CheckOut: date("2025-01-05"), Status: services.StatusPending},
			services.RejectInvalidDateRange,
		},
		{
			"same-day stay",
			services.BookingCandidate{RoomID: 1, CheckIn: date("2025-08-01"), CheckOut: date("2025-08-01"), Status: services.StatusPending},
			services.RejectInvalidDateRange,
		},
		{
			"negative manual price on pending booking",
			services.BookingCandidate{RoomID: 1, CheckIn: date("2025-08-01"), CheckOut: date("2025-08-04"), Status: services.StatusPending, ManualPrice: ptr(-5.00)},
			services.RejectInvalidPrice,
		},
		{
			"overlapping dates",
			services.BookingCandidate{RoomID: 1, CheckIn: date("2025-06-04"), CheckOut: date("2025-06-08"), Status: services.StatusConfirmed},
			services.RejectRoomUnavailable,
		},
	}
	for _, tt := range rejections {
		t.Run(tt.name, func(t *testing.T) {
			res := engine.Admit(tt.candidate)
			require.False(t, res.Accepted)
			assert.Equal(t, tt.reason, res.Reason)
		})
	}

	t.Run("cancelled booking tolerates a negative price", func(t *testing.T) {
		res := engine.Admit(services.BookingCandidate{
			RoomID:      1,
			CheckIn:     date("2025-08-01"),
			CheckOut:    date("2025-08-04"),
			Status:      services.StatusCancelled,
			ManualPrice: ptr(-5.00),
		})
		require.True(t, res.Accepted)
		assert.InDelta(t, -5.00, res.TotalPrice, 1e-9)
	})

	t.Run("editing against its own range is admitted", func(t *testing.T) {
		res := engine.Admit(services.BookingCandidate{
			RoomID:           1,
			CheckIn:          date("2025-06-01"),
			CheckOut:         date("2025-06-05"),
			Status:           services.StatusConfirmed,
			ExcludeBookingID: 7,
		})
		assert.True(t, res.Accepted)
	})

	t.Run("date range rejected before availability is consulted", func(t *testing.T) {
		// Both checks would fail; the cheap structural one must win so no
		// round-trip is wasted on malformed input.
		broken := services.NewAdmissionEngine(rates, &fakeConflicts{err: errors.New("db gone")})
		res := broken.Admit(services.BookingCandidate{
			RoomID:   1,
			CheckIn:  date("2025-01-10"),
			CheckOut: date("2025-01-05"),
			Status:   services.StatusPending,
		})
		require.False(t, res.Accepted)
		assert.Equal(t, services.RejectInvalidDateRange, res.Reason)
	})

	t.Run("availability fault rejects as unavailable", func(t *testing.T) {
		broken := services.NewAdmissionEngine(rates, &fakeConflicts{err: errors.New("db gone")})
		res := broken.Admit(services.BookingCandidate{
			RoomID:   1,
			CheckIn:  date("2025-08-01"),
			CheckOut: date("2025-08-04"),
			Status:   services.StatusPending,
		})
		require.False(t, res.Accepted)
		assert.Equal(t, services.RejectRoomUnavailable, res.Reason)
	})
}

func TestIsValidBookingStatus(t *testing.T) {
	for _, s := range []string{services.StatusPending, services.StatusConfirmed, services.StatusCancelled, services.StatusCompleted} {
		assert.True(t, services.IsValidBookingStatus(s), s)
	}
	for _, s := range []string{"", "Pending", "checked-in", "done"} {
		assert.False(t, services.IsValidBookingStatus(s), s)
	}
}
