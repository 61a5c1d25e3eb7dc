package picker

import (
	"time"

	"github.com/m-andrianov/BRB-BookingService/internal/domain"
)

// Action закрытое множество событий выбора. Каждое событие UI (выбор услуги,
// клик по дате, клик по слоту) приходит в Reduce одним из этих типов;
// type switch в Reduce исчерпывающий.
type Action interface {
	isAction()
}

// SetServices заменяет каталог услуг, не трогая текущий выбор
type SetServices struct {
	Services []domain.Service
}

// SetPackages заменяет каталог пакетов, не трогая текущий выбор
type SetPackages struct {
	Packages []domain.ServicePackage
}

// SetSelectionMode переключает режим выбора и сбрасывает выбор другого режима
type SetSelectionMode struct {
	Mode domain.SelectionMode
}

// ToggleService добавляет или убирает услугу из выбора
type ToggleService struct {
	ID int64
}

// SelectPackage выбирает пакет; nil снимает выбор
type SelectPackage struct {
	ID *int64
}

// ClearSelection сбрасывает выбор текущего режима
type ClearSelection struct{}

// SetDate выбирает дату; даты в прошлом игнорируются
type SetDate struct {
	Date time.Time
}

// ToggleSlot выбирает стартовый слот или снимает выбор слотов целиком
type ToggleSlot struct {
	SlotID string
}

// ClearSlots снимает выбор слотов
type ClearSlots struct{}

// PreselectService выбор ровно одной услуги при переходе по прямой ссылке
type PreselectService struct {
	ID int64
}

// PreselectPackage выбор ровно одного пакета при переходе по прямой ссылке
type PreselectPackage struct {
	ID int64
}

// Reset возвращает состояние к начальному
type Reset struct{}

func (SetServices) isAction()      {}
func (SetPackages) isAction()      {}
func (SetSelectionMode) isAction() {}
func (ToggleService) isAction()    {}
func (SelectPackage) isAction()    {}
func (ClearSelection) isAction()   {}
func (SetDate) isAction()          {}
func (ToggleSlot) isAction()       {}
func (ClearSlots) isAction()       {}
func (PreselectService) isAction() {}
func (PreselectPackage) isAction() {}
func (Reset) isAction()            {}
