package get_day_schedule

import (
	"time"

	"github.com/m-andrianov/BRB-BookingService/internal/domain"
)

// Request модель запроса сетки слотов на день
type Request struct {
	UserID int64     // ID запрашивающего пользователя; для него помечаются собственные бронирования
	Date   time.Time // Дата (без времени)
}

// Response модель ответа с сеткой слотов
type Response struct {
	Date                time.Time         // Дата, на которую построена сетка
	IsBusinessDay       bool              // false для выходного дня
	SlotDurationMinutes int               // Размер ячейки сетки
	Slots               []domain.TimeSlot // Слоты по возрастанию времени
}
