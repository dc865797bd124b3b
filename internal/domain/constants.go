package domain

// Time format constants
const (
	TimeFormat        = "15:04"      // HH:MM
	DateFormat        = "2006-01-02" // YYYY-MM-DD
	DisplayDateFormat = "02/01/2006" // DD/MM/YYYY, pt-BR locale rendering
)

// Defaults applied by the measurement intake when the client leaves the
// contact fields blank.
const (
	DefaultClientName   = "Cliente Interessado"
	DefaultClientEmail  = "contato@exemplo.com"
	DefaultClothingType = "Terno Completo"
)

// Business validation constants
const (
	MaxClientNameLength = 120
	MaxItemsPerOrder    = 20
)
