package booking

import (
	"errors"
	"strings"
	"testing"

	bookingRepo "roomi/database/repository/booking"
	"roomi/models"

	"go.uber.org/zap"
)

// fakeBookingRepo is an in-memory stand-in for the Mongo-backed repository.
type fakeBookingRepo struct {
	bookings map[string]*models.Booking

	createCalls int
	failCreates int // number of leading Create calls to reject as duplicates
	createErr   error
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[string]*models.Booking{}}
}

func (f *fakeBookingRepo) Create(bk *models.Booking) error {
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	if f.createCalls <= f.failCreates {
		return bookingRepo.ErrDuplicateConfirmation
	}
	if _, exists := f.bookings[bk.ConfirmationNumber]; exists {
		return bookingRepo.ErrDuplicateConfirmation
	}
	f.bookings[bk.ConfirmationNumber] = bk
	return nil
}

func (f *fakeBookingRepo) GetByConfirmation(cn string) (*models.Booking, error) {
	bk, ok := f.bookings[cn]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	return bk, nil
}

func (f *fakeBookingRepo) SearchByName(guestName string) ([]models.Booking, error) {
	var out []models.Booking
	for _, bk := range f.bookings {
		if strings.Contains(strings.ToLower(bk.GuestName), strings.ToLower(guestName)) {
			out = append(out, *bk)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) Cancel(cn, reference, reason string) (*models.Booking, error) {
	bk, ok := f.bookings[cn]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	if bk.Status == models.StatusCancelled {
		return nil, bookingRepo.ErrAlreadyCancelled
	}
	bk.Status = models.StatusCancelled
	bk.CancellationReference = reference
	bk.CancellationReason = reason
	return bk, nil
}

func (f *fakeBookingRepo) List(status string, limit int64) ([]models.Booking, error) {
	var out []models.Booking
	for _, bk := range f.bookings {
		if status != "" && string(bk.Status) != status {
			continue
		}
		if int64(len(out)) >= limit {
			break
		}
		out = append(out, *bk)
	}
	return out, nil
}

func newTestService(repo bookingRepo.BookingRepository) *DefaultBookingService {
	return &DefaultBookingService{Repo: repo, Logger: zap.NewNop()}
}

func sampleCreate() models.BookingCreate {
	return models.BookingCreate{
		GuestName: "Maria Lopez",
		CheckIn:   "next Friday",
		CheckOut:  "the following Wednesday",
		RoomType:  "deluxe",
		Phone:     "555-0134",
		Email:     "maria@example.com",
		Guests:    "2",
	}
}

func TestCreateBooking(t *testing.T) {
	t.Run("persists a confirmed booking with priced totals", func(t *testing.T) {
		repo := newFakeBookingRepo()
		svc := newTestService(repo)

		resp, err := svc.CreateBooking(sampleCreate())
		if err != nil {
			t.Fatalf("CreateBooking: %v", err)
		}
		if !resp.Success {
			t.Error("expected success response")
		}
		if !confirmationPattern.MatchString(resp.ConfirmationNumber) {
			t.Errorf("confirmation number %q does not match %v", resp.ConfirmationNumber, confirmationPattern)
		}
		if resp.Nights != FixedNights {
			t.Errorf("Nights = %d, want %d", resp.Nights, FixedNights)
		}
		if resp.GrandTotal != 843.75 {
			t.Errorf("GrandTotal = %v, want 843.75", resp.GrandTotal)
		}
		if !strings.Contains(resp.Message, resp.ConfirmationNumber) {
			t.Errorf("message %q does not mention the confirmation number", resp.Message)
		}

		stored, ok := repo.bookings[resp.ConfirmationNumber]
		if !ok {
			t.Fatal("booking was not persisted")
		}
		if stored.Status != models.StatusConfirmed {
			t.Errorf("stored status = %q, want %q", stored.Status, models.StatusConfirmed)
		}
		if stored.GrandTotal != resp.GrandTotal {
			t.Errorf("stored GrandTotal = %v, response GrandTotal = %v", stored.GrandTotal, resp.GrandTotal)
		}
	})

	t.Run("retries on confirmation number collision", func(t *testing.T) {
		repo := newFakeBookingRepo()
		repo.failCreates = 2
		svc := newTestService(repo)

		resp, err := svc.CreateBooking(sampleCreate())
		if err != nil {
			t.Fatalf("CreateBooking: %v", err)
		}
		if repo.createCalls != 3 {
			t.Errorf("Create called %d times, want 3", repo.createCalls)
		}
		if _, ok := repo.bookings[resp.ConfirmationNumber]; !ok {
			t.Error("booking was not persisted after retry")
		}
	})

	t.Run("gives up after exhausting collision retries", func(t *testing.T) {
		repo := newFakeBookingRepo()
		repo.failCreates = maxConfirmationAttempts
		svc := newTestService(repo)

		if _, err := svc.CreateBooking(sampleCreate()); err == nil {
			t.Fatal("expected error after persistent collisions")
		}
		if repo.createCalls != maxConfirmationAttempts {
			t.Errorf("Create called %d times, want %d", repo.createCalls, maxConfirmationAttempts)
		}
	})

	t.Run("surfaces store failures", func(t *testing.T) {
		repo := newFakeBookingRepo()
		repo.createErr = errors.New("connection reset")
		svc := newTestService(repo)

		if _, err := svc.CreateBooking(sampleCreate()); err == nil {
			t.Fatal("expected error from failing store")
		}
	})
}

func TestGetBooking(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := newTestService(repo)

	resp, err := svc.CreateBooking(sampleCreate())
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	t.Run("found", func(t *testing.T) {
		bk, err := svc.GetBooking(resp.ConfirmationNumber)
		if err != nil {
			t.Fatalf("GetBooking: %v", err)
		}
		if bk.GuestName != "Maria Lopez" {
			t.Errorf("GuestName = %q, want %q", bk.GuestName, "Maria Lopez")
		}
	})

	t.Run("unknown confirmation number", func(t *testing.T) {
		if _, err := svc.GetBooking("ROOMI-20000101-0000"); !errors.Is(err, ErrBookingNotFound) {
			t.Errorf("err = %v, want ErrBookingNotFound", err)
		}
	})
}

func TestCancelBooking(t *testing.T) {
	t.Run("cancels and reports the reference", func(t *testing.T) {
		repo := newFakeBookingRepo()
		svc := newTestService(repo)

		created, err := svc.CreateBooking(sampleCreate())
		if err != nil {
			t.Fatalf("CreateBooking: %v", err)
		}

		resp, err := svc.CancelBooking(created.ConfirmationNumber, "change of plans")
		if err != nil {
			t.Fatalf("CancelBooking: %v", err)
		}
		wantRef := "CXL-" + created.ConfirmationNumber
		if resp.CancellationReference != wantRef {
			t.Errorf("CancellationReference = %q, want %q", resp.CancellationReference, wantRef)
		}
		if !resp.RefundEligible {
			t.Error("expected refund eligibility")
		}
		if repo.bookings[created.ConfirmationNumber].Status != models.StatusCancelled {
			t.Error("stored booking was not transitioned to cancelled")
		}
	})

	t.Run("unknown confirmation number", func(t *testing.T) {
		svc := newTestService(newFakeBookingRepo())

		if _, err := svc.CancelBooking("ROOMI-20000101-0000", ""); !errors.Is(err, ErrBookingNotFound) {
			t.Errorf("err = %v, want ErrBookingNotFound", err)
		}
	})

	t.Run("second cancel reports already cancelled", func(t *testing.T) {
		repo := newFakeBookingRepo()
		svc := newTestService(repo)

		created, err := svc.CreateBooking(sampleCreate())
		if err != nil {
			t.Fatalf("CreateBooking: %v", err)
		}
		if _, err := svc.CancelBooking(created.ConfirmationNumber, ""); err != nil {
			t.Fatalf("first cancel: %v", err)
		}
		if _, err := svc.CancelBooking(created.ConfirmationNumber, ""); !errors.Is(err, ErrAlreadyCancelled) {
			t.Errorf("err = %v, want ErrAlreadyCancelled", err)
		}
	})
}

func TestListBookingsDefaultLimit(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := newTestService(repo)

	for i := 0; i < 25; i++ {
		if _, err := svc.CreateBooking(sampleCreate()); err != nil {
			t.Fatalf("CreateBooking: %v", err)
		}
	}

	out, err := svc.ListBookings("", 0)
	if err != nil {
		t.Fatalf("ListBookings: %v", err)
	}
	if len(out) != 20 {
		t.Errorf("len = %d, want default limit 20", len(out))
	}
}
