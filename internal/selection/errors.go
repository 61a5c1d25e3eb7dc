package selection

import "errors"

var (
	// ErrUnknownMode возвращается при неизвестном режиме выбора
	ErrUnknownMode = errors.New("selection: unknown selection mode")

	// ErrModeConflict возвращается, когда одновременно выбраны услуги и пакет
	ErrModeConflict = errors.New("selection: services and package cannot be selected together")

	// ErrEmptySelection возвращается, когда для активного режима ничего не выбрано
	ErrEmptySelection = errors.New("selection: nothing selected for the active mode")
)
