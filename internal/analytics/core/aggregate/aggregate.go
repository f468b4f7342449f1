// Package aggregate holds the analytics computations. Every function is a pure
// transformation of store records; none of them touch the store.
package aggregate

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"shop-analytics-service/internal/analytics/core/domain"
)

var hundred = decimal.NewFromInt(100)

// parseAmount reads a decimal money string. Missing or malformed amounts are
// reported as not ok and contribute nothing to sums.
func parseAmount(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// bucketOf parses created_at and buckets it in loc.
func bucketOf(createdAt string, interval domain.Interval, loc *time.Location) (domain.BucketKey, bool) {
	t, err := domain.ParseTimestamp(createdAt)
	if err != nil {
		return domain.BucketKey{}, false
	}
	if loc == nil {
		loc = time.UTC
	}
	return interval.Bucket(t.In(loc))
}

func distinctSorted(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}
