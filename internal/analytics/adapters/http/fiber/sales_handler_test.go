package fiber_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"

	httpadapter "shop-analytics-service/internal/analytics/adapters/http/fiber"
	"shop-analytics-service/internal/analytics/core/domain"
	"shop-analytics-service/internal/analytics/core/usecase"
)

func salesApp(t *testing.T, sales *fakeSalesUseCase, growth *fakeGrowthUseCase, years *fakeYearsUseCase) (*fiber.App, *test.Hook) {
	t.Helper()
	log, hook := test.NewNullLogger()
	h := httpadapter.NewSalesHandler(sales, growth, years, log)
	return newApp(t, h.Register), hook
}

// ------------------------------------------------------------
// SUCCESS: monthly sales
// ------------------------------------------------------------

func TestGetSales_Success(t *testing.T) {
	sales := &fakeSalesUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.GetSalesInput) ([]domain.SalesBucket, error) {
			return []domain.SalesBucket{
				{Key: domain.BucketKey{Interval: domain.IntervalMonthly, Year: 2023, Month: 1}, TotalSales: decimal.RequireFromString("100.50")},
				{Key: domain.BucketKey{Interval: domain.IntervalMonthly, Year: 2023, Month: 2}, TotalSales: decimal.RequireFromString("150")},
			}, nil
		},
	}
	app, _ := salesApp(t, sales, &fakeGrowthUseCase{}, &fakeYearsUseCase{})

	resp, body := doGet(t, app, "/sales/monthly/2023")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	if sales.lastInput.Interval != "monthly" || sales.lastInput.Year != 2023 {
		t.Fatalf("unexpected input %+v", sales.lastInput)
	}

	var got []httpadapter.SalesBucketResponse
	decode(t, body, &got)
	if len(got) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(got))
	}
	if got[0].BucketKey.Year != 2023 || got[0].BucketKey.Month != 1 || got[0].TotalSales != 100.5 {
		t.Fatalf("unexpected first bucket %+v", got[0])
	}
	if strings.Contains(string(body), "\"day\"") || strings.Contains(string(body), "\"quarter\"") {
		t.Fatalf("monthly bucket must not carry day or quarter: %s", body)
	}
}

func TestGetSales_EmptyIsArray(t *testing.T) {
	app, _ := salesApp(t, &fakeSalesUseCase{}, &fakeGrowthUseCase{}, &fakeYearsUseCase{})

	resp, body := doGet(t, app, "/sales/yearly/1999")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	if string(body) != "[]" {
		t.Fatalf("expected [], got %s", body)
	}
}

// ------------------------------------------------------------
// VALIDATION
// ------------------------------------------------------------

func TestGetSales_InvalidInterval(t *testing.T) {
	sales := &fakeSalesUseCase{}
	app, _ := salesApp(t, sales, &fakeGrowthUseCase{}, &fakeYearsUseCase{})

	resp, body := doGet(t, app, "/sales/weekly/2023")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.StatusCode)
	}
	if sales.called {
		t.Fatalf("usecase must not be called on invalid interval")
	}

	var errResp httpadapter.ErrorResponse
	decode(t, body, &errResp)
	if errResp.Error != "invalid_interval" {
		t.Fatalf("expected invalid_interval, got %s", errResp.Error)
	}
	if !strings.Contains(errResp.Message, "'daily', 'monthly', 'quarterly', 'yearly'") {
		t.Fatalf("unexpected message %q", errResp.Message)
	}
}

func TestGetSales_InvalidYear(t *testing.T) {
	sales := &fakeSalesUseCase{}
	app, _ := salesApp(t, sales, &fakeGrowthUseCase{}, &fakeYearsUseCase{})

	resp, body := doGet(t, app, "/sales/monthly/abc")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.StatusCode)
	}
	if sales.called {
		t.Fatalf("usecase must not be called on invalid year")
	}

	var errResp httpadapter.ErrorResponse
	decode(t, body, &errResp)
	if errResp.Error != "invalid_year" {
		t.Fatalf("expected invalid_year, got %s", errResp.Error)
	}
}

// ------------------------------------------------------------
// ERRORS
// ------------------------------------------------------------

func TestGetSales_UsecaseError(t *testing.T) {
	sales := &fakeSalesUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.GetSalesInput) ([]domain.SalesBucket, error) {
			return nil, errors.New("connection refused")
		},
	}
	app, hook := salesApp(t, sales, &fakeGrowthUseCase{}, &fakeYearsUseCase{})

	resp, body := doGet(t, app, "/sales/daily/2023")
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.StatusCode)
	}

	var errResp httpadapter.ErrorResponse
	decode(t, body, &errResp)
	if errResp.Error != "internal_server_error" {
		t.Fatalf("expected internal_server_error, got %s", errResp.Error)
	}
	if strings.Contains(string(body), "connection refused") {
		t.Fatalf("internal error leaked to client: %s", body)
	}
	if len(hook.Entries) != 1 {
		t.Fatalf("expected one log entry, got %d", len(hook.Entries))
	}
}

// ------------------------------------------------------------
// GROWTH
// ------------------------------------------------------------

func TestGetSalesGrowth_Success(t *testing.T) {
	growth := &fakeGrowthUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.GetSalesInput) ([]domain.GrowthPoint, error) {
			if in.Interval != "monthly" || in.Year != 2023 {
				t.Fatalf("unexpected input %+v", in)
			}
			return []domain.GrowthPoint{
				{Period: domain.BucketKey{Interval: domain.IntervalMonthly, Year: 2023, Month: 2}, GrowthRate: decimal.NewFromInt(50)},
			}, nil
		},
	}
	app, _ := salesApp(t, &fakeSalesUseCase{}, growth, &fakeYearsUseCase{})

	resp, body := doGet(t, app, "/sales-growth/monthly/2023")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var got []httpadapter.GrowthRateResponse
	decode(t, body, &got)
	if len(got) != 1 || got[0].GrowthRate != 50 || got[0].Period.Month != 2 {
		t.Fatalf("unexpected growth %+v", got)
	}
}

func TestGetSalesGrowth_InvalidInterval(t *testing.T) {
	growth := &fakeGrowthUseCase{}
	app, _ := salesApp(t, &fakeSalesUseCase{}, growth, &fakeYearsUseCase{})

	resp, _ := doGet(t, app, "/sales-growth/hourly/2023")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.StatusCode)
	}
	if growth.called {
		t.Fatalf("usecase must not be called on invalid interval")
	}
}

// ------------------------------------------------------------
// INTERVALS / YEARS
// ------------------------------------------------------------

func TestGetIntervals(t *testing.T) {
	app, _ := salesApp(t, &fakeSalesUseCase{}, &fakeGrowthUseCase{}, &fakeYearsUseCase{})

	resp, body := doGet(t, app, "/sales/intervals")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var got []string
	decode(t, body, &got)
	want := []string{"daily", "monthly", "quarterly", "yearly"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestGetYears(t *testing.T) {
	app, _ := salesApp(t, &fakeSalesUseCase{}, &fakeGrowthUseCase{}, &fakeYearsUseCase{years: []int{2020, 2021}})

	resp, body := doGet(t, app, "/sales/years")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	if string(body) != "[2020,2021]" {
		t.Fatalf("unexpected body %s", body)
	}
}

func TestGetYears_Error(t *testing.T) {
	app, _ := salesApp(t, &fakeSalesUseCase{}, &fakeGrowthUseCase{}, &fakeYearsUseCase{err: errors.New("boom")})

	resp, _ := doGet(t, app, "/sales/years")
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.StatusCode)
	}
}
