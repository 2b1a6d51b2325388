package bookingsvc

import "github.com/vivekranpara25/UrbanDrive/model"

// Lifecycle: pending -> confirmed -> completed, with cancellation allowed
// from pending or confirmed. completed and cancelled are terminal, so a
// second cancel can never re-increment availability.
var transitions = map[model.BookingStatus][]model.BookingStatus{
	model.BookingPending:   {model.BookingConfirmed, model.BookingCancelled},
	model.BookingConfirmed: {model.BookingCompleted, model.BookingCancelled},
}

func canTransition(from, to model.BookingStatus) bool {
	for _, t := range transitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

func validStatus(s model.BookingStatus) bool {
	switch s {
	case model.BookingPending, model.BookingConfirmed, model.BookingCompleted, model.BookingCancelled:
		return true
	}
	return false
}
