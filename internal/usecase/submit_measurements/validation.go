package submit_measurements

import (
	"fmt"
	"strings"

	"github.com/m04kA/FDL-AtelierService/internal/domain"
)

// Допустимые границы для мерок: сантиметры для обхватов и роста,
// килограммы для веса. Отсутствующие значения пропускаются.
const (
	minMeasurementValue = 1.0
	maxMeasurementValue = 400.0
)

// validateRequest проверяет корректность входных данных
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	if len(strings.TrimSpace(req.ClientName)) > domain.MaxClientNameLength {
		return fmt.Errorf("%w: client name exceeds %d characters", ErrInvalidInput, domain.MaxClientNameLength)
	}

	fields := []struct {
		name  string
		value *float64
	}{
		{"neck", req.Measurements.Neck},
		{"chest", req.Measurements.Chest},
		{"waist", req.Measurements.Waist},
		{"hips", req.Measurements.Hips},
		{"sleeve_length", req.Measurements.SleeveLength},
		{"shoulders", req.Measurements.Shoulders},
		{"height", req.Measurements.Height},
		{"weight", req.Measurements.Weight},
	}

	for _, f := range fields {
		if f.value == nil {
			continue
		}
		if *f.value < minMeasurementValue || *f.value > maxMeasurementValue {
			return fmt.Errorf("%w: %s = %g", ErrInvalidMeasurement, f.name, *f.value)
		}
	}

	return nil
}
