package domain

import "time"

// Interval is the reporting granularity used for time bucketing.
type Interval int

const (
	IntervalUnknown Interval = iota
	IntervalDaily
	IntervalMonthly
	IntervalQuarterly
	IntervalYearly
)

var intervalNames = map[Interval]string{
	IntervalDaily:     "daily",
	IntervalMonthly:   "monthly",
	IntervalQuarterly: "quarterly",
	IntervalYearly:    "yearly",
}

// Intervals lists the supported intervals from finest to coarsest.
func Intervals() []Interval {
	return []Interval{IntervalDaily, IntervalMonthly, IntervalQuarterly, IntervalYearly}
}

func ParseInterval(s string) (Interval, bool) {
	for i, name := range intervalNames {
		if name == s {
			return i, true
		}
	}
	return IntervalUnknown, false
}

func (i Interval) String() string {
	if name, ok := intervalNames[i]; ok {
		return name
	}
	return "unknown"
}

func (i Interval) Valid() bool {
	_, ok := intervalNames[i]
	return ok
}

// Bucket returns the key of the reporting period t falls into. The caller decides
// the location t is expressed in.
func (i Interval) Bucket(t time.Time) (BucketKey, bool) {
	key := BucketKey{Interval: i, Year: t.Year()}
	month := int(t.Month())

	switch i {
	case IntervalDaily:
		key.Day = t.Day()
		key.Month = month
	case IntervalMonthly:
		key.Month = month
	case IntervalQuarterly:
		key.Quarter = QuarterOf(month)
	case IntervalYearly:
	default:
		return BucketKey{}, false
	}
	return key, true
}

// QuarterOf returns ceil(month/3).
func QuarterOf(month int) int {
	return (month + 2) / 3
}
