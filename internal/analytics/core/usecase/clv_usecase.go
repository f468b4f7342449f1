package usecase

import (
	"context"
	"errors"
	"slices"
	"strconv"
	"strings"

	"shop-analytics-service/internal/analytics/core/aggregate"
	"shop-analytics-service/internal/analytics/core/domain"
	"shop-analytics-service/internal/analytics/core/ports"
)

var ErrUnsupportedYear = errors.New("unsupported cohort year")

type GetCLVInput struct {
	Year string
}

type GetCLVByCohortsUseCase struct {
	orders    ports.OrderReader
	customers ports.CustomerReader
	years     []int
}

// NewGetCLVByCohortsUseCase accepts only the given cohort years.
func NewGetCLVByCohortsUseCase(orders ports.OrderReader, customers ports.CustomerReader, years []int) *GetCLVByCohortsUseCase {
	sorted := slices.Clone(years)
	slices.Sort(sorted)
	return &GetCLVByCohortsUseCase{orders: orders, customers: customers, years: sorted}
}

// Execute validates the year, then computes average CLV per acquisition month.
func (uc *GetCLVByCohortsUseCase) Execute(ctx context.Context, in GetCLVInput) ([]domain.CohortCLV, error) {
	year, err := strconv.Atoi(in.Year)
	if err != nil || strconv.Itoa(year) != in.Year || !slices.Contains(uc.years, year) {
		return nil, ErrUnsupportedYear
	}

	orders, err := uc.orders.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := uc.customers.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}

	return aggregate.CLVByCohorts(orders, customers, year), nil
}

// UnsupportedYearMessage describes the accepted years, e.g.
// "Invalid year. Only 2020 and 2021 are supported."
func (uc *GetCLVByCohortsUseCase) UnsupportedYearMessage() string {
	parts := make([]string, len(uc.years))
	for i, y := range uc.years {
		parts[i] = strconv.Itoa(y)
	}

	switch len(parts) {
	case 0:
		return "Invalid year. No cohort years are supported."
	case 1:
		return "Invalid year. Only " + parts[0] + " is supported."
	default:
		list := strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1]
		return "Invalid year. Only " + list + " are supported."
	}
}
