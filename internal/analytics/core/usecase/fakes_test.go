package usecase_test

import (
	"context"

	"shop-analytics-service/internal/analytics/core/domain"
)

// fakeStore implements every store port for tests.
type fakeStore struct {
	orders       []domain.Order
	customers    []domain.Customer
	docs         map[domain.Collection][]domain.Document
	ordersErr    error
	customersErr error
	docsErr      error

	ordersCalled    bool
	customersCalled bool
	lastCollection  domain.Collection
	lastYear        int
}

func (f *fakeStore) ListOrders(ctx context.Context) ([]domain.Order, error) {
	f.ordersCalled = true
	if f.ordersErr != nil {
		return nil, f.ordersErr
	}
	return f.orders, nil
}

func (f *fakeStore) ListOrdersInYear(ctx context.Context, year int) ([]domain.Order, error) {
	f.lastYear = year
	return f.ListOrders(ctx)
}

func (f *fakeStore) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	f.customersCalled = true
	if f.customersErr != nil {
		return nil, f.customersErr
	}
	return f.customers, nil
}

func (f *fakeStore) ListDocuments(ctx context.Context, c domain.Collection) ([]domain.Document, error) {
	f.lastCollection = c
	if f.docsErr != nil {
		return nil, f.docsErr
	}
	return f.docs[c], nil
}

func strPtr(s string) *string { return &s }
