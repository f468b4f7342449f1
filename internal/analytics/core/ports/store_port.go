package ports

import (
	"context"

	"shop-analytics-service/internal/analytics/core/domain"
)

// OrderReader loads orders from the store. Implementations return the store
// error unchanged.
type OrderReader interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
	// ListOrdersInYear narrows the read to domain.YearWindow(year). Orders just
	// outside year may be returned; callers still filter by bucket.
	ListOrdersInYear(ctx context.Context, year int) ([]domain.Order, error)
}

type CustomerReader interface {
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
}

// DocumentReader dumps a collection without interpreting it.
type DocumentReader interface {
	ListDocuments(ctx context.Context, c domain.Collection) ([]domain.Document, error)
}

type StorePort interface {
	OrderReader
	CustomerReader
	DocumentReader
}
