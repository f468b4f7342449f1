package mongodb

import (
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"

	"shop-analytics-service/internal/analytics/core/domain"
)

// Shopify exports are not consistent about numeric types, so ids and amounts
// are decoded raw and converted by hand.

type orderDoc struct {
	ID       bson.RawValue `bson:"id"`
	Customer *struct {
		ID bson.RawValue `bson:"id"`
	} `bson:"customer"`
	CreatedAt     bson.RawValue `bson:"created_at"`
	TotalPrice    bson.RawValue `bson:"total_price"`
	TotalPriceSet *struct {
		ShopMoney *struct {
			Amount bson.RawValue `bson:"amount"`
		} `bson:"shop_money"`
	} `bson:"total_price_set"`
}

func (d orderDoc) toDomain() domain.Order {
	o := domain.Order{
		ID:         rawInt64(d.ID),
		CreatedAt:  stringOnly(d.CreatedAt),
		TotalPrice: rawString(d.TotalPrice),
	}
	if d.Customer != nil {
		o.CustomerID = rawInt64(d.Customer.ID)
	}
	if d.TotalPriceSet != nil && d.TotalPriceSet.ShopMoney != nil {
		o.ShopMoneyAmount = rawString(d.TotalPriceSet.ShopMoney.Amount)
	}
	return o
}

var orderProjection = bson.M{
	"_id":                               0,
	"id":                                1,
	"customer.id":                       1,
	"created_at":                        1,
	"total_price":                       1,
	"total_price_set.shop_money.amount": 1,
}

type customerDoc struct {
	ID             bson.RawValue `bson:"id"`
	FirstName      bson.RawValue `bson:"first_name"`
	LastName       bson.RawValue `bson:"last_name"`
	CreatedAt      bson.RawValue `bson:"created_at"`
	DefaultAddress *struct {
		City bson.RawValue `bson:"city"`
	} `bson:"default_address"`
}

func (d customerDoc) toDomain() domain.Customer {
	c := domain.Customer{
		ID:        rawInt64(d.ID),
		FirstName: optionalString(d.FirstName),
		LastName:  optionalString(d.LastName),
		CreatedAt: stringOnly(d.CreatedAt),
	}
	if d.DefaultAddress != nil {
		c.City = optionalString(d.DefaultAddress.City)
	}
	return c
}

var customerProjection = bson.M{
	"_id":                  0,
	"id":                   1,
	"first_name":           1,
	"last_name":            1,
	"created_at":           1,
	"default_address.city": 1,
}

func rawInt64(v bson.RawValue) int64 {
	switch v.Type {
	case bsontype.Int64:
		return v.Int64()
	case bsontype.Int32:
		return int64(v.Int32())
	case bsontype.Double:
		return int64(v.Double())
	case bsontype.String:
		n, err := strconv.ParseInt(v.StringValue(), 10, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

func rawString(v bson.RawValue) string {
	switch v.Type {
	case bsontype.String:
		return v.StringValue()
	case bsontype.Double:
		return strconv.FormatFloat(v.Double(), 'f', -1, 64)
	case bsontype.Int32:
		return strconv.FormatInt(int64(v.Int32()), 10)
	case bsontype.Int64:
		return strconv.FormatInt(v.Int64(), 10)
	case bsontype.Decimal128:
		return v.Decimal128().String()
	default:
		return ""
	}
}

// stringOnly returns v when it is a BSON string and "" otherwise. A Date
// created_at then fails timestamp parsing and is skipped by the aggregations.
func stringOnly(v bson.RawValue) string {
	if v.Type != bsontype.String {
		return ""
	}
	return v.StringValue()
}

// optionalString treats anything but a BSON string as absent.
func optionalString(v bson.RawValue) *string {
	if v.Type != bsontype.String {
		return nil
	}
	s := v.StringValue()
	return &s
}
