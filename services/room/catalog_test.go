package room

import (
	"errors"
	"strings"
	"testing"

	"roomi/models"

	"go.uber.org/zap"
)

// fakeRoomTypeRepo is an in-memory stand-in for the Mongo-backed repository.
type fakeRoomTypeRepo struct {
	roomTypes map[string]models.RoomType
	seedCalls int
	listErr   error
}

func newFakeRoomTypeRepo() *fakeRoomTypeRepo {
	return &fakeRoomTypeRepo{roomTypes: map[string]models.RoomType{}}
}

func (f *fakeRoomTypeRepo) Seed(roomTypes []models.RoomType) error {
	f.seedCalls++
	for _, rt := range roomTypes {
		f.roomTypes[rt.Code] = rt
	}
	return nil
}

func (f *fakeRoomTypeRepo) List() ([]models.RoomType, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.RoomType, 0, len(f.roomTypes))
	for _, code := range []string{"STD", "DLX", "STE-J", "FAM", "STE-E"} {
		if rt, ok := f.roomTypes[code]; ok {
			out = append(out, rt)
		}
	}
	return out, nil
}

func (f *fakeRoomTypeRepo) GetByCode(code string) (*models.RoomType, error) {
	rt, ok := f.roomTypes[code]
	if !ok {
		return nil, errors.New("room type not found")
	}
	return &rt, nil
}

func newTestCatalog(t *testing.T) (*DefaultCatalogService, *fakeRoomTypeRepo) {
	t.Helper()
	repo := newFakeRoomTypeRepo()
	svc := &DefaultCatalogService{Repo: repo, Logger: zap.NewNop()}
	if err := svc.Bootstrap(); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	return svc, repo
}

func TestBootstrapIsIdempotent(t *testing.T) {
	svc, repo := newTestCatalog(t)

	if err := svc.Bootstrap(); err != nil {
		t.Fatalf("second Bootstrap: %v", err)
	}
	if repo.seedCalls != 2 {
		t.Errorf("seedCalls = %d, want 2", repo.seedCalls)
	}
	if len(repo.roomTypes) != len(DefaultRoomTypes) {
		t.Errorf("catalog has %d entries after re-seed, want %d", len(repo.roomTypes), len(DefaultRoomTypes))
	}
}

func TestFilterRoomTypes(t *testing.T) {
	budget := FilterRoomTypes(DefaultRoomTypes, "budget")
	premium := FilterRoomTypes(DefaultRoomTypes, "premium")
	all := FilterRoomTypes(DefaultRoomTypes, "all")

	t.Run("budget and premium partition the catalog", func(t *testing.T) {
		if len(budget)+len(premium) != len(DefaultRoomTypes) {
			t.Errorf("budget(%d) + premium(%d) != catalog(%d)", len(budget), len(premium), len(DefaultRoomTypes))
		}
		for _, rt := range budget {
			if rt.Rate > BudgetRateCeiling {
				t.Errorf("budget tier contains %s at rate %v", rt.Type, rt.Rate)
			}
		}
		for _, rt := range premium {
			if rt.Rate <= BudgetRateCeiling {
				t.Errorf("premium tier contains %s at rate %v", rt.Type, rt.Rate)
			}
		}
	})

	t.Run("the boundary rate is budget", func(t *testing.T) {
		found := false
		for _, rt := range budget {
			if rt.Rate == BudgetRateCeiling {
				found = true
			}
		}
		if !found {
			t.Errorf("no room at rate %v classified as budget", BudgetRateCeiling)
		}
	})

	t.Run("all returns everything", func(t *testing.T) {
		if len(all) != len(DefaultRoomTypes) {
			t.Errorf("all has %d entries, want %d", len(all), len(DefaultRoomTypes))
		}
	})

	t.Run("unknown filter behaves like all", func(t *testing.T) {
		if got := FilterRoomTypes(DefaultRoomTypes, "luxury"); len(got) != len(DefaultRoomTypes) {
			t.Errorf("unknown filter returned %d entries, want %d", len(got), len(DefaultRoomTypes))
		}
	})
}

func TestListRoomTypes(t *testing.T) {
	svc, _ := newTestCatalog(t)

	resp, err := svc.ListRoomTypes("budget")
	if err != nil {
		t.Fatalf("ListRoomTypes: %v", err)
	}
	if resp.Count != len(resp.RoomTypes) {
		t.Errorf("Count = %d, len(RoomTypes) = %d", resp.Count, len(resp.RoomTypes))
	}
	if !strings.HasPrefix(resp.Message, "We have ") {
		t.Errorf("unexpected message %q", resp.Message)
	}
	for _, rt := range resp.RoomTypes {
		if !strings.Contains(resp.Message, rt.Type) {
			t.Errorf("message %q does not mention %s", resp.Message, rt.Type)
		}
	}
}

func TestCheckAvailability(t *testing.T) {
	svc, repo := newTestCatalog(t)

	t.Run("always reports available", func(t *testing.T) {
		resp, err := svc.CheckAvailability("tomorrow", "Sunday", "", "2")
		if err != nil {
			t.Fatalf("CheckAvailability: %v", err)
		}
		if !resp.Available {
			t.Error("expected Available")
		}
		if len(resp.Rooms) != len(DefaultRoomTypes) {
			t.Errorf("got %d rooms, want full catalog of %d", len(resp.Rooms), len(DefaultRoomTypes))
		}
		if resp.CheckIn != "tomorrow" || resp.CheckOut != "Sunday" {
			t.Errorf("dates not echoed back: %q / %q", resp.CheckIn, resp.CheckOut)
		}
	})

	t.Run("filters by room type substring", func(t *testing.T) {
		resp, err := svc.CheckAvailability("tomorrow", "Sunday", "suite", "2")
		if err != nil {
			t.Fatalf("CheckAvailability: %v", err)
		}
		if len(resp.Rooms) != 2 {
			t.Fatalf("got %d rooms matching %q, want 2", len(resp.Rooms), "suite")
		}
		for _, rt := range resp.Rooms {
			if !strings.Contains(strings.ToLower(rt.Type), "suite") {
				t.Errorf("unexpected match %s", rt.Type)
			}
		}
	})

	t.Run("matches by code", func(t *testing.T) {
		resp, err := svc.CheckAvailability("tomorrow", "Sunday", "FAM", "4")
		if err != nil {
			t.Fatalf("CheckAvailability: %v", err)
		}
		if len(resp.Rooms) != 1 || resp.Rooms[0].Code != "FAM" {
			t.Errorf("got %+v, want the family room", resp.Rooms)
		}
	})

	t.Run("surfaces store failures", func(t *testing.T) {
		repo.listErr = errors.New("connection reset")
		defer func() { repo.listErr = nil }()

		if _, err := svc.CheckAvailability("tomorrow", "Sunday", "", ""); err == nil {
			t.Fatal("expected error from failing store")
		}
	})
}

func TestHotelInfo(t *testing.T) {
	svc, _ := newTestCatalog(t)

	t.Run("timings", func(t *testing.T) {
		info := svc.HotelInfo("timings")
		if info["check_in_time"] != "3:00 PM" {
			t.Errorf("check_in_time = %v", info["check_in_time"])
		}
		if info["check_out_time"] != "11:00 AM" {
			t.Errorf("check_out_time = %v", info["check_out_time"])
		}
		if _, ok := info["address"]; ok {
			t.Error("timings section should not include the address")
		}
	})

	t.Run("location", func(t *testing.T) {
		info := svc.HotelInfo("location")
		if info["hotel_name"] != "Grand Hotel" {
			t.Errorf("hotel_name = %v", info["hotel_name"])
		}
	})

	t.Run("policies", func(t *testing.T) {
		info := svc.HotelInfo("policies")
		if _, ok := info["cancellation_policy"]; !ok {
			t.Error("policies section missing cancellation_policy")
		}
	})

	t.Run("all is the superset", func(t *testing.T) {
		info := svc.HotelInfo("all")
		for _, key := range []string{"hotel_name", "address", "check_in_time", "check_out_time", "cancellation_policy", "tax_rate"} {
			if _, ok := info[key]; !ok {
				t.Errorf("all section missing %q", key)
			}
		}
	})

	t.Run("unknown section behaves like all", func(t *testing.T) {
		info := svc.HotelInfo("spa")
		if _, ok := info["hotel_name"]; !ok {
			t.Error("unknown section should fall back to the full payload")
		}
	})
}
