// Package selection вычисляет параметры выбора клиента: суммарную длительность
// и цену выбранных услуг или пакета, округление длительности до целых слотов
// и итоговый BookingSelection.
//
// Все функции чистые и не возвращают ошибок наружу: неизвестные id игнорируются,
// некорректная комбинация режима и выбора деградирует до пустого выбора.
// Клиент может держать устаревшие id во время обновления каталога, и это не
// должно ломать процесс выбора.
package selection

import (
	"github.com/m-andrianov/BRB-BookingService/internal/domain"
)

// ServicesDuration суммирует длительность услуг, чьи id входят в selectedIDs.
// Неизвестные id молча игнорируются. Повторы в selectedIDs не удваивают сумму.
func ServicesDuration(services []domain.Service, selectedIDs []int64) int {
	selected := idSet(selectedIDs)

	total := 0
	for _, svc := range services {
		if selected[svc.ID] {
			total += svc.DurationMinutes
		}
	}
	return total
}

// ServicesPrice суммирует цену услуг, чьи id входят в selectedIDs
func ServicesPrice(services []domain.Service, selectedIDs []int64) float64 {
	selected := idSet(selectedIDs)

	total := 0.0
	for _, svc := range services {
		if selected[svc.ID] {
			total += svc.Price
		}
	}
	return total
}

// PackageDuration возвращает длительность пакета, либо 0, если пакет не найден
func PackageDuration(packages []domain.ServicePackage, packageID int64) int {
	for _, pkg := range packages {
		if pkg.ID == packageID {
			return pkg.DurationMinutes
		}
	}
	return 0
}

// PackagePrice возвращает цену пакета, либо 0, если пакет не найден
func PackagePrice(packages []domain.ServicePackage, packageID int64) float64 {
	for _, pkg := range packages {
		if pkg.ID == packageID {
			return pkg.Price
		}
	}
	return 0
}

// RoundToSlots округляет длительность вверх до целого числа 30-минутных слотов.
// Любая длительность <= 30 (включая 0 и отрицательные) занимает ровно один слот.
//
// Примеры: 31 -> (60, 2), 60 -> (60, 2), 61 -> (90, 3).
func RoundToSlots(durationMinutes int) (roundedMinutes, requiredSlots int) {
	if durationMinutes <= domain.SlotDurationMinutes {
		return domain.SlotDurationMinutes, 1
	}

	requiredSlots = (durationMinutes + domain.SlotDurationMinutes - 1) / domain.SlotDurationMinutes
	return requiredSlots * domain.SlotDurationMinutes, requiredSlots
}

// ValidateMode проверяет инвариант выбора: режим известен, выбор не пуст,
// услуги и пакет не выбраны одновременно.
func ValidateMode(mode domain.SelectionMode, serviceIDs []int64, packageID *int64) error {
	if !mode.IsValid() {
		return ErrUnknownMode
	}

	switch mode {
	case domain.ModeServices:
		if packageID != nil {
			return ErrModeConflict
		}
		if len(serviceIDs) == 0 {
			return ErrEmptySelection
		}
	case domain.ModePackage:
		if len(serviceIDs) > 0 {
			return ErrModeConflict
		}
		if packageID == nil {
			return ErrEmptySelection
		}
	}

	return nil
}

// New единственный конструктор BookingSelection: собирает длительность, цену и
// число слотов из сырых id. При нарушении инварианта возвращает пустой выбор
// с сохранённым режимом вместо ошибки.
func New(
	mode domain.SelectionMode,
	services []domain.Service,
	packages []domain.ServicePackage,
	serviceIDs []int64,
	packageID *int64,
) domain.BookingSelection {
	if err := ValidateMode(mode, serviceIDs, packageID); err != nil {
		return Empty(mode)
	}

	var durationMinutes int
	var subtotal float64

	switch mode {
	case domain.ModeServices:
		durationMinutes = ServicesDuration(services, serviceIDs)
		subtotal = ServicesPrice(services, serviceIDs)
	case domain.ModePackage:
		durationMinutes = PackageDuration(packages, *packageID)
		subtotal = PackagePrice(packages, *packageID)
	}

	rounded, slots := RoundToSlots(durationMinutes)

	result := domain.BookingSelection{
		Mode:                   mode,
		DurationMinutes:        durationMinutes,
		RoundedDurationMinutes: rounded,
		RequiredSlots:          slots,
		SubtotalPrice:          subtotal,
	}

	switch mode {
	case domain.ModeServices:
		result.ServiceIDs = uniqueIDs(serviceIDs)
	case domain.ModePackage:
		id := *packageID
		result.PackageID = &id
	}

	return result
}

// Empty возвращает пустой выбор для указанного режима
func Empty(mode domain.SelectionMode) domain.BookingSelection {
	if !mode.IsValid() {
		mode = domain.ModeServices
	}
	return domain.BookingSelection{
		Mode:       mode,
		ServiceIDs: []int64{},
	}
}

func idSet(ids []int64) map[int64]bool {
	set := make(map[int64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	result := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			result = append(result, id)
		}
	}
	return result
}
