package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"shop-analytics-service/internal/analytics/core/domain"
	"shop-analytics-service/internal/analytics/core/ports"
)

type CollectionNames struct {
	Orders    string
	Customers string
	Products  string
}

func DefaultCollectionNames() CollectionNames {
	return CollectionNames{
		Orders:    "shopifyOrders",
		Customers: "shopifyCustomers",
		Products:  "shopifyProducts",
	}
}

type StoreRepository struct {
	db    Database
	names CollectionNames
}

func NewStoreRepository(db Database, names CollectionNames) *StoreRepository {
	return &StoreRepository{db: db, names: names}
}

var _ ports.StorePort = (*StoreRepository)(nil)

func (r *StoreRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return r.findOrders(ctx, bson.M{})
}

// ListOrdersInYear matches created_at as a string range. Non-string values
// never compare to a string in MongoDB, so they drop out here as well.
func (r *StoreRepository) ListOrdersInYear(ctx context.Context, year int) ([]domain.Order, error) {
	from, to := domain.YearWindow(year)
	return r.findOrders(ctx, bson.M{"created_at": bson.M{"$gte": from, "$lt": to}})
}

func (r *StoreRepository) findOrders(ctx context.Context, filter bson.M) ([]domain.Order, error) {
	cur, err := r.db.Collection(r.names.Orders).Find(ctx, filter, options.Find().SetProjection(orderProjection))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var orders []domain.Order
	for cur.Next(ctx) {
		var doc orderDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		orders = append(orders, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *StoreRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	cur, err := r.db.Collection(r.names.Customers).Find(ctx, bson.M{}, options.Find().SetProjection(customerProjection))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var customers []domain.Customer
	for cur.Next(ctx) {
		var doc customerDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		customers = append(customers, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *StoreRepository) ListDocuments(ctx context.Context, c domain.Collection) ([]domain.Document, error) {
	name, err := r.collectionName(c)
	if err != nil {
		return nil, err
	}

	cur, err := r.db.Collection(name).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	docs := []domain.Document{}
	for cur.Next(ctx) {
		var raw bson.M
		if err := cur.Decode(&raw); err != nil {
			return nil, err
		}
		docs = append(docs, domain.Document(raw))
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *StoreRepository) collectionName(c domain.Collection) (string, error) {
	switch c {
	case domain.CollectionOrders:
		return r.names.Orders, nil
	case domain.CollectionCustomers:
		return r.names.Customers, nil
	case domain.CollectionProducts:
		return r.names.Products, nil
	default:
		return "", fmt.Errorf("unsupported collection: %s", c)
	}
}
