package domain

import "github.com/shopspring/decimal"

type SalesBucket struct {
	Key        BucketKey
	TotalSales decimal.Decimal
}

type GrowthPoint struct {
	Period     BucketKey
	GrowthRate decimal.Decimal
}

type RepeatCustomer struct {
	CustomerID     int64
	FirstName      *string
	LastName       *string
	TotalPurchases int64
	TimePeriod     BucketKey
}

type CityDistribution struct {
	City  string
	Count int64
	Names []*string // first names, nil when the customer has none
}

type CohortCLV struct {
	Cohort        string // YYYY-MM
	AverageCLV    decimal.Decimal
	CustomerNames []string
}

type NewCustomer struct {
	FirstName *string
	LastName  *string
	CreatedAt string
}
