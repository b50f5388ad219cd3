package handlers_test

import (
	"context"
	"testing"

	"Inventory-Tracker-API/domain"

	"github.com/gofiber/fiber/v2"
)

type fakeClockInService struct {
	createFn func(ctx context.Context, req domain.ClockInRequest) (domain.CreateClockInResponse, error)
	getFn    func(ctx context.Context, id string) (domain.ClockInResponse, error)
	filterFn func(ctx context.Context, query domain.ClockInFilterQuery) ([]domain.ClockInResponse, error)
	updateFn func(ctx context.Context, id string, req domain.ClockInRequest) (domain.ClockInResponse, error)
	deleteFn func(ctx context.Context, id string) error
}

func (f *fakeClockInService) CreateClockIn(ctx context.Context, req domain.ClockInRequest) (domain.CreateClockInResponse, error) {
	return f.createFn(ctx, req)
}

func (f *fakeClockInService) GetClockInByID(ctx context.Context, id string) (domain.ClockInResponse, error) {
	return f.getFn(ctx, id)
}

func (f *fakeClockInService) FilterClockIns(ctx context.Context, query domain.ClockInFilterQuery) ([]domain.ClockInResponse, error) {
	return f.filterFn(ctx, query)
}

func (f *fakeClockInService) UpdateClockIn(ctx context.Context, id string, req domain.ClockInRequest) (domain.ClockInResponse, error) {
	return f.updateFn(ctx, id, req)
}

func (f *fakeClockInService) DeleteClockIn(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func TestCreateClockInReturnsID(t *testing.T) {
	clockInService := &fakeClockInService{
		createFn: func(ctx context.Context, req domain.ClockInRequest) (domain.CreateClockInResponse, error) {
			return domain.CreateClockInResponse{ID: "65a1b2c3d4e5f6a7b8c9d0e2"}, nil
		},
	}
	app := setupApp(t, &fakeItemService{}, clockInService)

	resp, err := app.Test(jsonRequest("POST", "/clock-in", map[string]any{
		"email":    "a@b.com",
		"location": "office",
	}))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var body map[string]string
	decodeBody(t, resp, &body)
	if body["id"] != "65a1b2c3d4e5f6a7b8c9d0e2" {
		t.Errorf("expected inserted id in body, got %v", body)
	}
}

func TestCreateClockInRejectsMissingLocation(t *testing.T) {
	app := setupApp(t, &fakeItemService{}, &fakeClockInService{})

	resp, err := app.Test(jsonRequest("POST", "/clock-in", map[string]any{
		"email": "a@b.com",
	}))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestFilterClockInsEmptyIs404(t *testing.T) {
	clockInService := &fakeClockInService{
		filterFn: func(ctx context.Context, query domain.ClockInFilterQuery) ([]domain.ClockInResponse, error) {
			return nil, domain.ErrNoClockInRecords
		},
	}
	app := setupApp(t, &fakeItemService{}, clockInService)

	resp, err := app.Test(jsonRequest("GET", "/clock-in/filter", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for empty clock-in list, got %d", resp.StatusCode)
	}

	var body map[string]string
	decodeBody(t, resp, &body)
	if body["detail"] != domain.MessageNoClockInRecords {
		t.Errorf("expected 'no records found' detail, got %v", body)
	}
}

func TestFilterClockInsPassesQueryParams(t *testing.T) {
	clockInService := &fakeClockInService{
		filterFn: func(ctx context.Context, query domain.ClockInFilterQuery) ([]domain.ClockInResponse, error) {
			if query.Location != "office" || query.InsertDatetime != "2024-01-02 15:04:05" {
				t.Errorf("unexpected query binding: %+v", query)
			}
			return []domain.ClockInResponse{{ID: "65a1b2c3d4e5f6a7b8c9d0e2"}}, nil
		},
	}
	app := setupApp(t, &fakeItemService{}, clockInService)

	resp, err := app.Test(jsonRequest("GET", "/clock-in/filter?location=office&insert_datetime=2024-01-02+15:04:05", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestGetClockInInvalidID(t *testing.T) {
	clockInService := &fakeClockInService{
		getFn: func(ctx context.Context, id string) (domain.ClockInResponse, error) {
			return domain.ClockInResponse{}, domain.ErrInvalidID
		},
	}
	app := setupApp(t, &fakeItemService{}, clockInService)

	resp, err := app.Test(jsonRequest("GET", "/clock-in/not-a-hex-id", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestUpdateClockInNoChangeIsNotFound(t *testing.T) {
	clockInService := &fakeClockInService{
		updateFn: func(ctx context.Context, id string, req domain.ClockInRequest) (domain.ClockInResponse, error) {
			return domain.ClockInResponse{}, domain.ErrClockInNotModified
		},
	}
	app := setupApp(t, &fakeItemService{}, clockInService)

	resp, err := app.Test(jsonRequest("PUT", "/clock-in/65a1b2c3d4e5f6a7b8c9d0e2", map[string]any{
		"email":    "a@b.com",
		"location": "office",
	}))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unchanged update, got %d", resp.StatusCode)
	}
}

func TestDeleteClockInConfirmation(t *testing.T) {
	clockInService := &fakeClockInService{
		deleteFn: func(ctx context.Context, id string) error {
			return nil
		},
	}
	app := setupApp(t, &fakeItemService{}, clockInService)

	resp, err := app.Test(jsonRequest("DELETE", "/clock-in/65a1b2c3d4e5f6a7b8c9d0e2", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body map[string]string
	decodeBody(t, resp, &body)
	if body["detail"] != domain.MessageClockInDeleted {
		t.Errorf("expected deletion confirmation, got %v", body)
	}
}

func TestDeleteClockInNeverInserted(t *testing.T) {
	clockInService := &fakeClockInService{
		deleteFn: func(ctx context.Context, id string) error {
			return domain.ErrClockInNotFound
		},
	}
	app := setupApp(t, &fakeItemService{}, clockInService)

	resp, err := app.Test(jsonRequest("DELETE", "/clock-in/65a1b2c3d4e5f6a7b8c9d0e2", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}
