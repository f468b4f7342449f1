package domain

// BucketKey identifies one reporting period for one interval. Fields that the
// interval does not use stay zero, so keys compare structurally with ==.
type BucketKey struct {
	Interval Interval
	Year     int
	Quarter  int
	Month    int
	Day      int
}

// Before orders keys chronologically.
func (k BucketKey) Before(other BucketKey) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	if k.Quarter != other.Quarter {
		return k.Quarter < other.Quarter
	}
	if k.Month != other.Month {
		return k.Month < other.Month
	}
	return k.Day < other.Day
}
