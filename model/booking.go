package model

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID            int64         `json:"id"`
	UserID        int64         `json:"user_id"`
	CarID         int64         `json:"car_id"`
	StartAt       time.Time     `json:"start_at"`
	EndAt         time.Time     `json:"end_at"`
	TotalAmount   float64       `json:"total_amount"`
	NeedDriver    bool          `json:"need_driver"`
	DriverContact string        `json:"driver_contact,omitempty"`
	Status        BookingStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
}
