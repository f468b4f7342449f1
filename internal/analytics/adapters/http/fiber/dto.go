package fiber

import "shop-analytics-service/internal/analytics/core/domain"

// PeriodResponse is a time bucket key. Only the fields used by the interval are set.
type PeriodResponse struct {
	Day     int `json:"day,omitempty" example:"5"`
	Month   int `json:"month,omitempty" example:"1"`
	Quarter int `json:"quarter,omitempty"`
	Year    int `json:"year" example:"2023"`
}

type SalesBucketResponse struct {
	BucketKey  PeriodResponse `json:"bucket_key"`
	TotalSales float64        `json:"total_sales" example:"1520.75"`
}

type GrowthRateResponse struct {
	Period     PeriodResponse `json:"period"`
	GrowthRate float64        `json:"growth_rate" example:"50"`
}

type RepeatCustomerResponse struct {
	CustomerID     int64          `json:"customer_id" example:"6940095643906"`
	FirstName      *string        `json:"first_name"`
	LastName       *string        `json:"last_name"`
	TotalPurchases int64          `json:"total_purchases" example:"2"`
	TimePeriod     PeriodResponse `json:"time_period"`
}

type CustomerFirstName struct {
	FirstName *string `json:"first_name,omitempty"`
}

type CityDistributionResponse struct {
	City  string              `json:"city" example:"London"`
	Count int64               `json:"count" example:"12"`
	Names []CustomerFirstName `json:"names"`
}

type CityResponse struct {
	City string `json:"city" example:"London"`
}

type CohortCLVResponse struct {
	Cohort        string   `json:"cohort" example:"2020-01"`
	AverageCLV    float64  `json:"average_clv" example:"245.5"`
	CustomerNames []string `json:"customer_names"`
}

type NewCustomerResponse struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	CreatedAt string  `json:"created_at,omitempty" example:"2020-01-05T10:00:00-05:00"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_interval"`
	Message string `json:"message" example:"Invalid interval. Choose from 'daily', 'monthly', 'quarterly', 'yearly'."`
}

func toPeriod(k domain.BucketKey) PeriodResponse {
	return PeriodResponse{
		Day:     k.Day,
		Month:   k.Month,
		Quarter: k.Quarter,
		Year:    k.Year,
	}
}
