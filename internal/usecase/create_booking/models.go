package create_booking

import (
	"time"

	"github.com/m-andrianov/BRB-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID     int64            // ID пользователя
	ServiceIDs []int64          // Выбранные услуги (режим услуг)
	PackageID  *int64           // Выбранный пакет (режим пакета)
	Date       time.Time        // Дата бронирования (без времени)
	StartTime  types.TimeString // Время начала первого слота (например, "10:00")
	Notes      *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64            // ID созданного бронирования
	UserID          int64            // ID пользователя
	ServiceIDs      []int64          // Услуги бронирования
	PackageID       *int64           // Пакет бронирования
	BookingDate     time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность, округлённая до целых слотов
	RequiredSlots   int              // Число занятых слотов
	Status          string           // Статус бронирования

	// Денормализованные данные
	Title      string  // Название услуг или пакета
	TotalPrice float64 // Итоговая цена
	Notes      *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
