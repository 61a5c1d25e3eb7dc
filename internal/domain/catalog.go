package domain

// Service represents a single bookable service from the shop catalog
type Service struct {
	ID              int64
	Name            string
	DurationMinutes int
	Price           float64
}

// ServicePackage represents a fixed bundle of services sold as one unit.
// Its duration and price are authoritative numbers, not derived from the
// member services listed for display.
type ServicePackage struct {
	ID              int64
	Name            string
	DurationMinutes int
	Price           float64
	ServiceIDs      []int64
}
