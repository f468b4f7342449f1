package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/lib/pq"

	"shop-analytics-service/internal/analytics/core/domain"
	"shop-analytics-service/internal/analytics/core/ports"
)

// Each table stores one Shopify document per row in a jsonb column named doc.
type TableNames struct {
	Orders    string
	Customers string
	Products  string
}

func DefaultTableNames() TableNames {
	return TableNames{
		Orders:    "shopify_orders",
		Customers: "shopify_customers",
		Products:  "shopify_products",
	}
}

type StoreRepository struct {
	db     DB
	tables TableNames
}

func NewStoreRepository(db DB, tables TableNames) *StoreRepository {
	return &StoreRepository{db: db, tables: tables}
}

var _ ports.StorePort = (*StoreRepository)(nil)

// SQL templates, %s is the quoted table name.
const listOrdersSQL = `
SELECT
    doc->>'id',
    doc->'customer'->>'id',
    doc->>'created_at',
    doc->>'total_price',
    doc->'total_price_set'->'shop_money'->>'amount'
FROM %s`

// The "C" collation keeps the comparison byte-wise, which orders ISO-8601 strings
// chronologically.
const listOrdersInYearSQL = listOrdersSQL + `
WHERE (doc->>'created_at') COLLATE "C" >= $1
  AND (doc->>'created_at') COLLATE "C" < $2`

const listCustomersSQL = `
SELECT
    doc->>'id',
    doc->>'first_name',
    doc->>'last_name',
    doc->>'created_at',
    doc->'default_address'->>'city'
FROM %s`

const listDocumentsSQL = `SELECT doc FROM %s`

func (r *StoreRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return r.queryOrders(ctx, fmt.Sprintf(listOrdersSQL, pq.QuoteIdentifier(r.tables.Orders)))
}

func (r *StoreRepository) ListOrdersInYear(ctx context.Context, year int) ([]domain.Order, error) {
	from, to := domain.YearWindow(year)
	return r.queryOrders(ctx, fmt.Sprintf(listOrdersInYearSQL, pq.QuoteIdentifier(r.tables.Orders)), from, to)
}

func (r *StoreRepository) queryOrders(ctx context.Context, query string, args ...any) ([]domain.Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var id, customerID, createdAt, totalPrice, amount sql.NullString
		if err := rows.Scan(&id, &customerID, &createdAt, &totalPrice, &amount); err != nil {
			return nil, err
		}
		orders = append(orders, domain.Order{
			ID:              parseID(id),
			CustomerID:      parseID(customerID),
			CreatedAt:       createdAt.String,
			TotalPrice:      totalPrice.String,
			ShopMoneyAmount: amount.String,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *StoreRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(listCustomersSQL, pq.QuoteIdentifier(r.tables.Customers)))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var id, firstName, lastName, createdAt, city sql.NullString
		if err := rows.Scan(&id, &firstName, &lastName, &createdAt, &city); err != nil {
			return nil, err
		}
		customers = append(customers, domain.Customer{
			ID:        parseID(id),
			FirstName: nullable(firstName),
			LastName:  nullable(lastName),
			CreatedAt: createdAt.String,
			City:      nullable(city),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *StoreRepository) ListDocuments(ctx context.Context, c domain.Collection) ([]domain.Document, error) {
	table, err := r.tableName(c)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(listDocumentsSQL, pq.QuoteIdentifier(table)))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := []domain.Document{}
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}

		// UseNumber keeps 64-bit Shopify ids intact.
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		var doc domain.Document
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode %s document: %w", table, err)
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *StoreRepository) tableName(c domain.Collection) (string, error) {
	switch c {
	case domain.CollectionOrders:
		return r.tables.Orders, nil
	case domain.CollectionCustomers:
		return r.tables.Customers, nil
	case domain.CollectionProducts:
		return r.tables.Products, nil
	default:
		return "", fmt.Errorf("unsupported collection: %s", c)
	}
}

func parseID(s sql.NullString) int64 {
	if !s.Valid {
		return 0
	}
	// ->> renders large json numbers without exponent, but tolerate "1.0e3" style too.
	if n, err := strconv.ParseInt(s.String, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s.String, 64); err == nil {
		return int64(f)
	}
	return 0
}

func nullable(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
