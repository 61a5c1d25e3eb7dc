package domain

// SelectionMode determines whether the user is picking individual services
// or a single package
type SelectionMode string

const (
	ModeServices SelectionMode = "services"
	ModePackage  SelectionMode = "package"
)

// IsValid returns true for one of the two known modes
func (m SelectionMode) IsValid() bool {
	return m == ModeServices || m == ModePackage
}

// BookingSelection is the computed state of the user's current pick.
// Exactly one of ServiceIDs (non-empty) or PackageID (non-nil) is populated;
// an empty selection has neither.
type BookingSelection struct {
	Mode       SelectionMode
	ServiceIDs []int64
	PackageID  *int64

	DurationMinutes        int
	RoundedDurationMinutes int
	RequiredSlots          int
	SubtotalPrice          float64
}

// IsEmpty returns true when nothing is selected for the active mode
func (s *BookingSelection) IsEmpty() bool {
	if s.Mode == ModePackage {
		return s.PackageID == nil
	}
	return len(s.ServiceIDs) == 0
}

// HasService returns true if the given service id is part of the selection
func (s *BookingSelection) HasService(id int64) bool {
	for _, sid := range s.ServiceIDs {
		if sid == id {
			return true
		}
	}
	return false
}
