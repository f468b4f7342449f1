package aggregate

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"shop-analytics-service/internal/analytics/core/domain"
)

// SalesOverTime groups the orders created in year into interval buckets and sums
// the shop money amount of each bucket. Buckets are returned in chronological order.
// An unsupported interval yields an empty result.
func SalesOverTime(orders []domain.Order, interval domain.Interval, year int, loc *time.Location) []domain.SalesBucket {
	if !interval.Valid() {
		return []domain.SalesBucket{}
	}

	totals := make(map[domain.BucketKey]decimal.Decimal)
	for _, o := range orders {
		key, ok := bucketOf(o.CreatedAt, interval, loc)
		if !ok || key.Year != year {
			continue
		}
		sum := totals[key]
		if amount, ok := parseAmount(o.ShopMoneyAmount); ok {
			sum = sum.Add(amount)
		}
		totals[key] = sum
	}

	out := make([]domain.SalesBucket, 0, len(totals))
	for key, total := range totals {
		out = append(out, domain.SalesBucket{Key: key, TotalSales: total})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Key.Before(out[j].Key)
	})
	return out
}

// GrowthRates computes the percentage change between each pair of adjacent
// buckets. The first bucket has no predecessor and produces no point. A zero
// previous total yields a growth rate of exactly 0.
func GrowthRates(sales []domain.SalesBucket) []domain.GrowthPoint {
	if len(sales) < 2 {
		return []domain.GrowthPoint{}
	}

	out := make([]domain.GrowthPoint, 0, len(sales)-1)
	for i := 1; i < len(sales); i++ {
		prev := sales[i-1].TotalSales
		cur := sales[i].TotalSales

		rate := decimal.Zero
		if !prev.IsZero() {
			rate = cur.Sub(prev).Div(prev).Mul(hundred)
		}
		out = append(out, domain.GrowthPoint{
			Period:     sales[i].Key,
			GrowthRate: rate,
		})
	}
	return out
}

// OrderYears lists the distinct years orders were created in, ascending.
func OrderYears(orders []domain.Order, loc *time.Location) []int {
	years := make(map[int]struct{})
	for _, o := range orders {
		key, ok := bucketOf(o.CreatedAt, domain.IntervalYearly, loc)
		if !ok {
			continue
		}
		years[key.Year] = struct{}{}
	}
	return distinctSorted(years)
}
