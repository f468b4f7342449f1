package fiber_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"shop-analytics-service/internal/analytics/core/domain"
	"shop-analytics-service/internal/analytics/core/usecase"
)

type fakeSalesUseCase struct {
	ExecuteFn func(ctx context.Context, in usecase.GetSalesInput) ([]domain.SalesBucket, error)
	lastInput usecase.GetSalesInput
	called    bool
}

func (f *fakeSalesUseCase) Execute(ctx context.Context, in usecase.GetSalesInput) ([]domain.SalesBucket, error) {
	f.called = true
	f.lastInput = in
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx, in)
	}
	return nil, nil
}

type fakeGrowthUseCase struct {
	ExecuteFn func(ctx context.Context, in usecase.GetSalesInput) ([]domain.GrowthPoint, error)
	called    bool
}

func (f *fakeGrowthUseCase) Execute(ctx context.Context, in usecase.GetSalesInput) ([]domain.GrowthPoint, error) {
	f.called = true
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx, in)
	}
	return nil, nil
}

type fakeYearsUseCase struct {
	years []int
	err   error
}

func (f *fakeYearsUseCase) Execute(ctx context.Context) ([]int, error) {
	return f.years, f.err
}

type fakeRepeatUseCase struct {
	ExecuteFn func(ctx context.Context, interval string) ([]domain.RepeatCustomer, error)
	called    bool
}

func (f *fakeRepeatUseCase) Execute(ctx context.Context, interval string) ([]domain.RepeatCustomer, error) {
	f.called = true
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx, interval)
	}
	return nil, nil
}

type fakeDistributionUseCase struct {
	dist   []domain.CityDistribution
	cities []string
	err    error
}

func (f *fakeDistributionUseCase) Execute(ctx context.Context) ([]domain.CityDistribution, error) {
	return f.dist, f.err
}

func (f *fakeDistributionUseCase) Cities(ctx context.Context) ([]string, error) {
	return f.cities, f.err
}

type fakeNewCustomersUseCase struct {
	customers []domain.NewCustomer
	years     []int
	err       error
}

func (f *fakeNewCustomersUseCase) Execute(ctx context.Context) ([]domain.NewCustomer, error) {
	return f.customers, f.err
}

func (f *fakeNewCustomersUseCase) Years(ctx context.Context) ([]int, error) {
	return f.years, f.err
}

type fakeCLVUseCase struct {
	ExecuteFn func(ctx context.Context, in usecase.GetCLVInput) ([]domain.CohortCLV, error)
	lastInput usecase.GetCLVInput
}

func (f *fakeCLVUseCase) Execute(ctx context.Context, in usecase.GetCLVInput) ([]domain.CohortCLV, error) {
	f.lastInput = in
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx, in)
	}
	return nil, nil
}

func (f *fakeCLVUseCase) UnsupportedYearMessage() string {
	return "Invalid year. Only 2020 and 2021 are supported."
}

type fakeDocumentsUseCase struct {
	ExecuteFn  func(ctx context.Context, c domain.Collection) ([]domain.Document, error)
	collection domain.Collection
}

func (f *fakeDocumentsUseCase) Execute(ctx context.Context, c domain.Collection) ([]domain.Document, error) {
	f.collection = c
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx, c)
	}
	return nil, nil
}

// ------------------------------------------------------------
// helpers
// ------------------------------------------------------------

func newApp(t *testing.T, register func(r fiber.Router)) *fiber.App {
	t.Helper()
	app := fiber.New()
	register(app)
	return app
}

func doGet(t *testing.T, app *fiber.App, path string) (*http.Response, []byte) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, body
}

func decode(t *testing.T, body []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(body, v); err != nil {
		t.Fatalf("failed to decode response %q: %v", string(body), err)
	}
}

func strPtr(s string) *string { return &s }
