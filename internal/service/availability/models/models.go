package models

import (
	"github.com/m04kA/FDL-AtelierService/internal/domain"
)

// AddSlotRequest запрос на публикацию времени приема
type AddSlotRequest struct {
	Date string // ISO дата, YYYY-MM-DD
	Time string // HH:MM
}

// RemoveTimeRequest запрос на снятие одного времени с даты
type RemoveTimeRequest struct {
	Date string
	Time string
}

// CatalogEntry запись каталога для отображения
type CatalogEntry struct {
	Date        string // ISO дата
	DisplayDate string // DD/MM/YYYY
	Times       []string
}

// CatalogResponse список записей каталога
type CatalogResponse struct {
	Entries []CatalogEntry
}

// FromDomainSlots конвертирует доменные записи каталога в модели отображения.
func FromDomainSlots(slots []*domain.AvailabilitySlot) *CatalogResponse {
	entries := make([]CatalogEntry, 0, len(slots))
	for _, slot := range slots {
		times := make([]string, 0, len(slot.Times))
		for _, t := range slot.Times {
			times = append(times, t.String())
		}
		entries = append(entries, CatalogEntry{
			Date:        slot.Date,
			DisplayDate: domain.FormatDisplayDate(slot.Date),
			Times:       times,
		})
	}
	return &CatalogResponse{Entries: entries}
}
