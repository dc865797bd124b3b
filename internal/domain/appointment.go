package domain

import (
	"time"

	"github.com/m04kA/FDL-AtelierService/pkg/types"
)

// AppointmentStatus represents the status of an appointment.
type AppointmentStatus string

const (
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a confirmed atelier visit. The (Date, Time) pair
// must have existed in the availability catalog at creation time; after
// creation that exact pair is no longer offered, so at most one appointment
// can ever hold a given slot time.
type Appointment struct {
	ID          string // protocol code, "APP-NNNN"
	ClientName  string
	ClientEmail string
	Date        string // ISO calendar date, "2006-01-02"
	Time        types.TimeString
	Status      AppointmentStatus

	CreatedAt time.Time
}

// IsConfirmed reports whether the appointment is still confirmed.
func (a *Appointment) IsConfirmed() bool {
	return a.Status == AppointmentConfirmed
}
