package create_booking

import (
	"time"

	"github.com/m-andrianov/BRB-BookingService/internal/domain"
	createBooking "github.com/m-andrianov/BRB-BookingService/internal/usecase/create_booking"
	"github.com/m-andrianov/BRB-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceIDs  []int64 `json:"serviceIds,omitempty"`
	PackageID   *int64  `json:"packageId,omitempty"`
	BookingDate string  `json:"bookingDate"` // "2026-01-14"
	StartTime   string  `json:"startTime"`   // "10:00"
	Notes       *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"userId"`
	ServiceIDs      []int64 `json:"serviceIds"`
	PackageID       *int64  `json:"packageId,omitempty"`
	BookingDate     string  `json:"bookingDate"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	RequiredSlots   int     `json:"requiredSlots"`
	Status          string  `json:"status"`
	Title           string  `json:"title"`
	TotalPrice      float64 `json:"totalPrice"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:     userID,
		ServiceIDs: r.ServiceIDs,
		PackageID:  r.PackageID,
		Date:       bookingDate,
		StartTime:  startTime,
		Notes:      r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	serviceIDs := resp.ServiceIDs
	if serviceIDs == nil {
		serviceIDs = []int64{}
	}

	return &BookingResponse{
		ID:              resp.ID,
		UserID:          resp.UserID,
		ServiceIDs:      serviceIDs,
		PackageID:       resp.PackageID,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		RequiredSlots:   resp.RequiredSlots,
		Status:          resp.Status,
		Title:           resp.Title,
		TotalPrice:      resp.TotalPrice,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
