package usecase

import (
	"context"
	"time"

	"shop-analytics-service/internal/analytics/core/aggregate"
	"shop-analytics-service/internal/analytics/core/domain"
	"shop-analytics-service/internal/analytics/core/ports"
)

type GetSalesInput struct {
	Interval string // daily / monthly / quarterly / yearly
	Year     int
}

type GetSalesOverTimeUseCase struct {
	orders ports.OrderReader
	loc    *time.Location
}

// NewGetSalesOverTimeUseCase buckets orders in loc; nil means UTC.
func NewGetSalesOverTimeUseCase(orders ports.OrderReader, loc *time.Location) *GetSalesOverTimeUseCase {
	return &GetSalesOverTimeUseCase{orders: orders, loc: locationOrUTC(loc)}
}

// Execute returns the sales of in.Year bucketed by in.Interval. An unsupported
// interval returns an empty result without reading the store.
func (uc *GetSalesOverTimeUseCase) Execute(ctx context.Context, in GetSalesInput) ([]domain.SalesBucket, error) {
	interval, ok := domain.ParseInterval(in.Interval)
	if !ok {
		return []domain.SalesBucket{}, nil
	}

	orders, err := uc.orders.ListOrdersInYear(ctx, in.Year)
	if err != nil {
		return nil, err
	}

	return aggregate.SalesOverTime(orders, interval, in.Year, uc.loc), nil
}

type GetSalesGrowthUseCase struct {
	sales *GetSalesOverTimeUseCase
}

func NewGetSalesGrowthUseCase(sales *GetSalesOverTimeUseCase) *GetSalesGrowthUseCase {
	return &GetSalesGrowthUseCase{sales: sales}
}

func (uc *GetSalesGrowthUseCase) Execute(ctx context.Context, in GetSalesInput) ([]domain.GrowthPoint, error) {
	sales, err := uc.sales.Execute(ctx, in)
	if err != nil {
		return nil, err
	}
	return aggregate.GrowthRates(sales), nil
}

type GetSalesYearsUseCase struct {
	orders ports.OrderReader
	loc    *time.Location
}

func NewGetSalesYearsUseCase(orders ports.OrderReader, loc *time.Location) *GetSalesYearsUseCase {
	return &GetSalesYearsUseCase{orders: orders, loc: locationOrUTC(loc)}
}

func (uc *GetSalesYearsUseCase) Execute(ctx context.Context) ([]int, error) {
	orders, err := uc.orders.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	return aggregate.OrderYears(orders, uc.loc), nil
}

func locationOrUTC(loc *time.Location) *time.Location {
	if loc == nil {
		return time.UTC
	}
	return loc
}
