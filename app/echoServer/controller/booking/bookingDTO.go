package booking

import "time"

type CreateBookingReq struct {
	CarID         int64     `json:"car_id" validate:"required,gt=0"`
	StartAt       time.Time `json:"start_at" validate:"required"`
	EndAt         time.Time `json:"end_at" validate:"required"`
	NeedDriver    bool      `json:"need_driver"`
	DriverContact string    `json:"driver_contact" validate:"required_if=NeedDriver true"`
}

type UpdateStatusReq struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}
