package aggregate

import (
	"sort"
	"time"

	"shop-analytics-service/internal/analytics/core/domain"
)

type customerPeriod struct {
	customerID int64
	period     domain.BucketKey
}

// RepeatCustomers finds customers with more than one order inside the same
// interval bucket. Groups whose customer is unknown are dropped. The result is
// sorted by purchase count, highest first.
func RepeatCustomers(orders []domain.Order, customers []domain.Customer, interval domain.Interval, loc *time.Location) []domain.RepeatCustomer {
	if !interval.Valid() {
		return []domain.RepeatCustomer{}
	}

	counts := make(map[customerPeriod]int64)
	for _, o := range orders {
		if o.CustomerID == 0 {
			continue
		}
		key, ok := bucketOf(o.CreatedAt, interval, loc)
		if !ok {
			continue
		}
		counts[customerPeriod{customerID: o.CustomerID, period: key}]++
	}

	byID := make(map[int64]domain.Customer, len(customers))
	for _, c := range customers {
		byID[c.ID] = c
	}

	out := make([]domain.RepeatCustomer, 0)
	for group, n := range counts {
		if n <= 1 {
			continue
		}
		c, ok := byID[group.customerID]
		if !ok {
			continue
		}
		out = append(out, domain.RepeatCustomer{
			CustomerID:     group.customerID,
			FirstName:      c.FirstName,
			LastName:       c.LastName,
			TotalPurchases: n,
			TimePeriod:     group.period,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.TotalPurchases != b.TotalPurchases {
			return a.TotalPurchases > b.TotalPurchases
		}
		if a.TimePeriod != b.TimePeriod {
			return a.TimePeriod.Before(b.TimePeriod)
		}
		return a.CustomerID < b.CustomerID
	})
	return out
}

// CustomerDistribution counts customers per default address city and collects
// their first names. Customers without a city are left out.
func CustomerDistribution(customers []domain.Customer) []domain.CityDistribution {
	index := make(map[string]int)
	out := make([]domain.CityDistribution, 0)

	for _, c := range customers {
		if c.City == nil {
			continue
		}
		i, ok := index[*c.City]
		if !ok {
			i = len(out)
			index[*c.City] = i
			out = append(out, domain.CityDistribution{City: *c.City, Names: []*string{}})
		}
		out[i].Count++
		out[i].Names = append(out[i].Names, c.FirstName)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].City < out[j].City
	})
	return out
}

// DistinctCities returns every known default address city once, sorted.
func DistinctCities(customers []domain.Customer) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, c := range customers {
		if c.City == nil {
			continue
		}
		if _, ok := seen[*c.City]; ok {
			continue
		}
		seen[*c.City] = struct{}{}
		out = append(out, *c.City)
	}
	sort.Strings(out)
	return out
}

// NewCustomers projects every customer to its name and creation date.
func NewCustomers(customers []domain.Customer) []domain.NewCustomer {
	out := make([]domain.NewCustomer, 0, len(customers))
	for _, c := range customers {
		out = append(out, domain.NewCustomer{
			FirstName: c.FirstName,
			LastName:  c.LastName,
			CreatedAt: c.CreatedAt,
		})
	}
	return out
}

// CustomerYears lists the distinct years customers were created in, ascending.
// The year is read in the offset written in created_at.
func CustomerYears(customers []domain.Customer) []int {
	years := make(map[int]struct{})
	for _, c := range customers {
		t, err := domain.ParseTimestamp(c.CreatedAt)
		if err != nil {
			continue
		}
		years[t.Year()] = struct{}{}
	}
	return distinctSorted(years)
}
