package domain

// MeasurementData holds the optional body measurements collected by the
// intake form. All values are centimeters except Weight (kilograms).
type MeasurementData struct {
	Neck         *float64
	Chest        *float64
	Waist        *float64
	Hips         *float64
	SleeveLength *float64
	Shoulders    *float64
	Height       *float64
	Weight       *float64
	ClothingType string
}
