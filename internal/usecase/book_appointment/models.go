package book_appointment

import (
	"time"

	"github.com/m04kA/FDL-AtelierService/pkg/types"
)

// Request модель запроса на подтверждение бронирования
type Request struct {
	Date        string           // ISO дата слота, YYYY-MM-DD
	Time        types.TimeString // время слота, HH:MM
	ClientName  string
	ClientEmail string
}

// Response модель ответа с подтвержденной записью
type Response struct {
	AppointmentID string // код протокола, "APP-NNNN"
	ClientName    string
	ClientEmail   string
	Date          string // ISO дата
	DisplayDate   string // DD/MM/YYYY
	Time          types.TimeString
	Status        string

	CreatedAt time.Time
}
