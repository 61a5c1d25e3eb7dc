package dispatch_selection

import (
	"errors"
	"fmt"
	"time"

	"github.com/m-andrianov/BRB-BookingService/internal/domain"
	"github.com/m-andrianov/BRB-BookingService/internal/picker"
)

// Типы действий, принимаемые эндпоинтом
const (
	actionSetMode          = "set_mode"
	actionToggleService    = "toggle_service"
	actionSelectPackage    = "select_package"
	actionClearSelection   = "clear_selection"
	actionSetDate          = "set_date"
	actionToggleSlot       = "toggle_slot"
	actionClearSlots       = "clear_slots"
	actionPreselectService = "preselect_service"
	actionPreselectPackage = "preselect_package"
	actionReset            = "reset"
)

var (
	// ErrUnknownAction возвращается для неизвестного типа действия
	ErrUnknownAction = errors.New("unknown action type")

	// ErrMissingField возвращается, когда для действия не хватает поля
	ErrMissingField = errors.New("missing action field")
)

// ActionRequest HTTP модель действия над состоянием выбора
type ActionRequest struct {
	Type      string  `json:"type"`
	Mode      *string `json:"mode,omitempty"`      // для set_mode: "services" | "package"
	ServiceID *int64  `json:"serviceId,omitempty"` // для toggle_service / preselect_service
	PackageID *int64  `json:"packageId,omitempty"` // для select_package / preselect_package
	Date      *string `json:"date,omitempty"`      // для set_date: "2026-01-14"
	SlotID    *string `json:"slotId,omitempty"`    // для toggle_slot: "2026-01-14T10:00"
}

// ToPickerAction конвертирует HTTP модель в действие машины состояний
func (r *ActionRequest) ToPickerAction() (picker.Action, error) {
	switch r.Type {
	case actionSetMode:
		if r.Mode == nil {
			return nil, fmt.Errorf("%w: mode", ErrMissingField)
		}
		mode := domain.SelectionMode(*r.Mode)
		if !mode.IsValid() {
			return nil, fmt.Errorf("%w: mode", ErrMissingField)
		}
		return picker.SetSelectionMode{Mode: mode}, nil

	case actionToggleService:
		if r.ServiceID == nil {
			return nil, fmt.Errorf("%w: serviceId", ErrMissingField)
		}
		return picker.ToggleService{ID: *r.ServiceID}, nil

	case actionSelectPackage:
		// packageId может быть null - это снятие выбора пакета
		return picker.SelectPackage{ID: r.PackageID}, nil

	case actionClearSelection:
		return picker.ClearSelection{}, nil

	case actionSetDate:
		if r.Date == nil {
			return nil, fmt.Errorf("%w: date", ErrMissingField)
		}
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: date", ErrMissingField)
		}
		return picker.SetDate{Date: date}, nil

	case actionToggleSlot:
		if r.SlotID == nil {
			return nil, fmt.Errorf("%w: slotId", ErrMissingField)
		}
		return picker.ToggleSlot{SlotID: *r.SlotID}, nil

	case actionClearSlots:
		return picker.ClearSlots{}, nil

	case actionPreselectService:
		if r.ServiceID == nil {
			return nil, fmt.Errorf("%w: serviceId", ErrMissingField)
		}
		return picker.PreselectService{ID: *r.ServiceID}, nil

	case actionPreselectPackage:
		if r.PackageID == nil {
			return nil, fmt.Errorf("%w: packageId", ErrMissingField)
		}
		return picker.PreselectPackage{ID: *r.PackageID}, nil

	case actionReset:
		return picker.Reset{}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, r.Type)
	}
}
