package models

import (
	"github.com/m04kA/FDL-AtelierService/internal/domain"
)

// AppointmentResponse запись на визит в модели отображения
type AppointmentResponse struct {
	ID          string
	ClientName  string
	ClientEmail string
	Date        string // ISO дата
	DisplayDate string // DD/MM/YYYY
	Time        string
	Status      string
}

// AppointmentListResponse список записей, сначала свежие
type AppointmentListResponse struct {
	Appointments []AppointmentResponse
}

// FromDomainAppointmentList конвертирует доменные записи в модели отображения.
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	result := make([]AppointmentResponse, 0, len(appointments))
	for _, appt := range appointments {
		result = append(result, AppointmentResponse{
			ID:          appt.ID,
			ClientName:  appt.ClientName,
			ClientEmail: appt.ClientEmail,
			Date:        appt.Date,
			DisplayDate: domain.FormatDisplayDate(appt.Date),
			Time:        appt.Time.String(),
			Status:      string(appt.Status),
		})
	}
	return &AppointmentListResponse{Appointments: result}
}
