package app

// View экран консольного приложения. Навигация держится в контроллере,
// глобального состояния нет.
type View int

const (
	ViewHome View = iota
	ViewCollection
	ViewMeasurements
	ViewConcierge
	ViewStatus
	ViewBooking
	ViewAdmin
	ViewLogin
	ViewExit
)

// String возвращает читаемое имя экрана для логов.
func (v View) String() string {
	switch v {
	case ViewHome:
		return "home"
	case ViewCollection:
		return "collection"
	case ViewMeasurements:
		return "measurements"
	case ViewConcierge:
		return "concierge"
	case ViewStatus:
		return "status"
	case ViewBooking:
		return "booking"
	case ViewAdmin:
		return "admin"
	case ViewLogin:
		return "login"
	case ViewExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Role роль текущего пользователя консоли
type Role int

const (
	RoleClient Role = iota
	RoleAdmin
)

// String возвращает читаемое имя роли.
func (r Role) String() string {
	if r == RoleAdmin {
		return "admin"
	}
	return "client"
}
