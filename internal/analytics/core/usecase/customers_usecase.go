package usecase

import (
	"context"
	"time"

	"shop-analytics-service/internal/analytics/core/aggregate"
	"shop-analytics-service/internal/analytics/core/domain"
	"shop-analytics-service/internal/analytics/core/ports"
)

type GetRepeatCustomersUseCase struct {
	orders    ports.OrderReader
	customers ports.CustomerReader
	loc       *time.Location
}

func NewGetRepeatCustomersUseCase(orders ports.OrderReader, customers ports.CustomerReader, loc *time.Location) *GetRepeatCustomersUseCase {
	return &GetRepeatCustomersUseCase{orders: orders, customers: customers, loc: locationOrUTC(loc)}
}

// Execute returns customers with more than one order per interval bucket. An
// unsupported interval returns an empty result without reading the store.
func (uc *GetRepeatCustomersUseCase) Execute(ctx context.Context, interval string) ([]domain.RepeatCustomer, error) {
	i, ok := domain.ParseInterval(interval)
	if !ok {
		return []domain.RepeatCustomer{}, nil
	}

	orders, err := uc.orders.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := uc.customers.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}

	return aggregate.RepeatCustomers(orders, customers, i, uc.loc), nil
}

type GetCustomerDistributionUseCase struct {
	customers ports.CustomerReader
}

func NewGetCustomerDistributionUseCase(customers ports.CustomerReader) *GetCustomerDistributionUseCase {
	return &GetCustomerDistributionUseCase{customers: customers}
}

func (uc *GetCustomerDistributionUseCase) Execute(ctx context.Context) ([]domain.CityDistribution, error) {
	customers, err := uc.customers.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	return aggregate.CustomerDistribution(customers), nil
}

func (uc *GetCustomerDistributionUseCase) Cities(ctx context.Context) ([]string, error) {
	customers, err := uc.customers.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	return aggregate.DistinctCities(customers), nil
}

type GetNewCustomersUseCase struct {
	customers ports.CustomerReader
}

func NewGetNewCustomersUseCase(customers ports.CustomerReader) *GetNewCustomersUseCase {
	return &GetNewCustomersUseCase{customers: customers}
}

func (uc *GetNewCustomersUseCase) Execute(ctx context.Context) ([]domain.NewCustomer, error) {
	customers, err := uc.customers.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	return aggregate.NewCustomers(customers), nil
}

// Years lists the years in which customers were created.
func (uc *GetNewCustomersUseCase) Years(ctx context.Context) ([]int, error) {
	customers, err := uc.customers.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	return aggregate.CustomerYears(customers), nil
}
