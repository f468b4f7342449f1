package aggregate

import (
	"sort"

	"github.com/shopspring/decimal"

	"shop-analytics-service/internal/analytics/core/domain"
)

const unknownCustomerName = "Unknown"

type cohortAccumulator struct {
	total decimal.Decimal
	count int64
	names map[string]struct{}
}

// CLVByCohorts computes the average lifetime value of the customers acquired in
// each month of year. Spend is summed over all orders regardless of year; the
// cohort of a customer is the year-month of its created_at in the offset the
// timestamp was written with. Customers created outside year are ignored.
func CLVByCohorts(orders []domain.Order, customers []domain.Customer, year int) []domain.CohortCLV {
	spend := make(map[int64]decimal.Decimal)
	for _, o := range orders {
		if o.CustomerID == 0 {
			continue
		}
		sum := spend[o.CustomerID]
		if amount, ok := parseAmount(o.TotalPrice); ok {
			sum = sum.Add(amount)
		}
		spend[o.CustomerID] = sum
	}

	cohortOf := make(map[int64]string)
	names := make(map[int64]string)
	for _, c := range customers {
		if t, err := domain.ParseTimestamp(c.CreatedAt); err == nil && t.Year() == year {
			cohortOf[c.ID] = t.Format("2006-01")
		}
		if name, ok := c.FullName(); ok {
			names[c.ID] = name
		}
	}

	cohorts := make(map[string]*cohortAccumulator)
	for customerID, total := range spend {
		month, ok := cohortOf[customerID]
		if !ok {
			continue
		}
		name, ok := names[customerID]
		if !ok {
			name = unknownCustomerName
		}

		acc, ok := cohorts[month]
		if !ok {
			acc = &cohortAccumulator{names: make(map[string]struct{})}
			cohorts[month] = acc
		}
		acc.total = acc.total.Add(total)
		acc.count++
		acc.names[name] = struct{}{}
	}

	out := make([]domain.CohortCLV, 0, len(cohorts))
	for month, acc := range cohorts {
		customerNames := make([]string, 0, len(acc.names))
		for n := range acc.names {
			customerNames = append(customerNames, n)
		}
		sort.Strings(customerNames)

		out = append(out, domain.CohortCLV{
			Cohort:        month,
			AverageCLV:    acc.total.Div(decimal.NewFromInt(acc.count)),
			CustomerNames: customerNames,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Cohort < out[j].Cohort
	})
	return out
}
