package domain

// Collection names one of the document collections the store is populated with.
type Collection string

const (
	CollectionOrders    Collection = "orders"
	CollectionCustomers Collection = "customers"
	CollectionProducts  Collection = "products"
)

// Document is an untyped store document, returned as-is by the raw dump endpoints.
type Document map[string]any

type Order struct {
	ID         int64
	CustomerID int64 // 0 when the order has no customer
	CreatedAt  string

	// TotalPrice feeds customer lifetime value, ShopMoneyAmount feeds sales.
	TotalPrice      string
	ShopMoneyAmount string
}

type Customer struct {
	ID        int64
	FirstName *string
	LastName  *string
	CreatedAt string
	City      *string // default_address.city
}

// FullName returns "first last" only when both parts are present.
func (c Customer) FullName() (string, bool) {
	if c.FirstName == nil || c.LastName == nil {
		return "", false
	}
	return *c.FirstName + " " + *c.LastName, true
}
