package codes

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// ProjectAlphabet алфавит для кодов проектов.
// Исключены легко перепутываемые символы (0/O, 1/I).
const ProjectAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const (
	projectPrefix     = "FDL"
	appointmentPrefix = "APP"
	projectCodeLength = 4
)

// Generator генерирует человекочитаемые бизнес-коды:
// коды проектов вида FDL-XXXX-YYYY и коды записей вида APP-NNNN.
// Глобальная уникальность не гарантируется - вызывающая сторона
// проверяет коллизии по своему реестру.
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

// New создает генератор со случайным зерном и системным временем.
func New() *Generator {
	seed := uint64(time.Now().UnixNano())
	return &Generator{
		rng: rand.New(rand.NewPCG(seed, seed>>32)),
		now: time.Now,
	}
}

// NewWithSource создает генератор с заданным источником случайности и времени.
// Используется в тестах для детерминированных кодов.
func NewWithSource(rng *rand.Rand, now func() time.Time) *Generator {
	return &Generator{rng: rng, now: now}
}

// ProjectCode возвращает код проекта вида "FDL-XXXX-YYYY",
// где XXXX - 4 символа из ProjectAlphabet, YYYY - текущий год.
func (g *Generator) ProjectCode() string {
	body := make([]byte, projectCodeLength)
	for i := range body {
		body[i] = ProjectAlphabet[g.rng.IntN(len(ProjectAlphabet))]
	}
	return fmt.Sprintf("%s-%s-%d", projectPrefix, body, g.now().Year())
}

// AppointmentCode возвращает код записи вида "APP-NNNN",
// где NNNN - случайное число от 1000 до 9999.
func (g *Generator) AppointmentCode() string {
	return fmt.Sprintf("%s-%d", appointmentPrefix, g.rng.IntN(9000)+1000)
}
