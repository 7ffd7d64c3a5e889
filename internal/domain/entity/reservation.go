package entity

import "time"

type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusApproved  ReservationStatus = "approved"
	StatusRejected  ReservationStatus = "rejected"
	StatusCompleted ReservationStatus = "completed"
	StatusCancelled ReservationStatus = "cancelled"
)

func (s ReservationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Reservation links one Client and one Provider. Timestamps are
// system-assigned; the *Name and *PhoneNumber fields are read-only joins
// filled when reading, never written back.
type Reservation struct {
	ID         int64             `json:"id"`
	ClientID   int64             `json:"client"`
	ProviderID int64             `json:"provider"`
	Service    string            `json:"service"`
	Date       Date              `json:"date"`
	Status     ReservationStatus `json:"status"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`

	ClientName          string  `json:"client_name"`
	ProviderName        string  `json:"provider_name"`
	ClientPhoneNumber   *string `json:"client_phone_number"`
	ProviderPhoneNumber *string `json:"provider_phone_number"`
}
