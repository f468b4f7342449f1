package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop-analytics-service/internal/analytics/core/domain"
)

func strPtr(s string) *string { return &s }

func customer(id int64, first, last, createdAt, city string) domain.Customer {
	c := domain.Customer{ID: id, CreatedAt: createdAt}
	if first != "" {
		c.FirstName = strPtr(first)
	}
	if last != "" {
		c.LastName = strPtr(last)
	}
	if city != "" {
		c.City = strPtr(city)
	}
	return c
}

func TestRepeatCustomers_MonthlyScenario(t *testing.T) {
	orders := []domain.Order{
		order(1, "2023-01-05T10:00:00Z", "10"),
		order(1, "2023-01-20T10:00:00Z", "20"),
		order(2, "2023-02-01T10:00:00Z", "5"),
	}
	customers := []domain.Customer{
		customer(1, "Ada", "Lovelace", "2020-01-01T00:00:00Z", ""),
		customer(2, "Bob", "Builder", "2020-01-01T00:00:00Z", ""),
	}

	got := RepeatCustomers(orders, customers, domain.IntervalMonthly, time.UTC)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].CustomerID)
	assert.Equal(t, "Ada", *got[0].FirstName)
	assert.Equal(t, "Lovelace", *got[0].LastName)
	assert.Equal(t, int64(2), got[0].TotalPurchases)
	assert.Equal(t, domain.BucketKey{Interval: domain.IntervalMonthly, Year: 2023, Month: 1}, got[0].TimePeriod)
}

func TestRepeatCustomers_SortedAndFiltered(t *testing.T) {
	orders := []domain.Order{
		order(1, "2023-01-05T10:00:00Z", "1"),
		order(1, "2023-01-06T10:00:00Z", "1"),
		order(2, "2023-01-05T10:00:00Z", "1"),
		order(2, "2023-01-06T10:00:00Z", "1"),
		order(2, "2023-01-07T10:00:00Z", "1"),
		order(3, "2023-01-05T10:00:00Z", "1"),
		order(3, "2023-01-06T10:00:00Z", "1"),
		order(0, "2023-01-05T10:00:00Z", "1"),
		order(0, "2023-01-06T10:00:00Z", "1"),
	}
	// customer 3 has no customer record and must be dropped by the join.
	customers := []domain.Customer{
		customer(1, "Ada", "Lovelace", "", ""),
		customer(2, "Bob", "Builder", "", ""),
	}

	got := RepeatCustomers(orders, customers, domain.IntervalYearly, time.UTC)
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].CustomerID)
	assert.Equal(t, int64(3), got[0].TotalPurchases)
	assert.Equal(t, int64(1), got[1].CustomerID)
	for _, r := range got {
		assert.Greater(t, r.TotalPurchases, int64(1))
	}
}

func TestRepeatCustomers_NoYearFilter(t *testing.T) {
	orders := []domain.Order{
		order(1, "2020-01-05T10:00:00Z", "1"),
		order(1, "2020-01-06T10:00:00Z", "1"),
		order(1, "2023-01-05T10:00:00Z", "1"),
		order(1, "2023-01-06T10:00:00Z", "1"),
	}
	customers := []domain.Customer{customer(1, "Ada", "Lovelace", "", "")}

	got := RepeatCustomers(orders, customers, domain.IntervalMonthly, time.UTC)
	require.Len(t, got, 2)
	assert.Equal(t, 2020, got[0].TimePeriod.Year)
	assert.Equal(t, 2023, got[1].TimePeriod.Year)
}

func TestRepeatCustomers_UnsupportedInterval(t *testing.T) {
	orders := []domain.Order{
		order(1, "2023-01-05T10:00:00Z", "1"),
		order(1, "2023-01-06T10:00:00Z", "1"),
	}
	got := RepeatCustomers(orders, []domain.Customer{customer(1, "A", "B", "", "")}, domain.IntervalUnknown, time.UTC)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCustomerDistribution(t *testing.T) {
	customers := []domain.Customer{
		customer(1, "Ada", "L", "", "Berlin"),
		customer(2, "Bob", "B", "", "Austin"),
		customer(3, "", "C", "", "Berlin"),
		customer(4, "Dan", "D", "", ""),
		customer(5, "Eve", "E", "", "Cairo"),
	}

	got := CustomerDistribution(customers)
	require.Len(t, got, 3)

	assert.Equal(t, "Berlin", got[0].City)
	assert.Equal(t, int64(2), got[0].Count)
	require.Len(t, got[0].Names, 2)
	assert.Equal(t, "Ada", *got[0].Names[0])
	assert.Nil(t, got[0].Names[1])

	assert.Equal(t, "Austin", got[1].City)
	assert.Equal(t, "Cairo", got[2].City)
}

func TestDistinctCities(t *testing.T) {
	customers := []domain.Customer{
		customer(1, "", "", "", "Berlin"),
		customer(2, "", "", "", "Austin"),
		customer(3, "", "", "", "Berlin"),
		customer(4, "", "", "", ""),
	}

	assert.Equal(t, []string{"Austin", "Berlin"}, DistinctCities(customers))
	assert.Equal(t, []string{}, DistinctCities(nil))
}

func TestNewCustomersAndYears(t *testing.T) {
	customers := []domain.Customer{
		customer(1, "Ada", "Lovelace", "2021-03-01T00:00:00-05:00", ""),
		customer(2, "Bob", "", "2020-12-31T23:30:00-05:00", ""),
		customer(3, "", "", "", ""),
	}

	projected := NewCustomers(customers)
	require.Len(t, projected, 3)
	assert.Equal(t, "Ada", *projected[0].FirstName)
	assert.Nil(t, projected[1].LastName)
	assert.Equal(t, "2021-03-01T00:00:00-05:00", projected[0].CreatedAt)

	assert.Equal(t, []int{2020, 2021}, CustomerYears(customers))
}
