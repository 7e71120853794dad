package models

// AlertKind classifies a compatibility alert.
type AlertKind string

const (
	AlertAllergyExclusion  AlertKind = "allergy_exclusion"
	AlertWeatherAdvisory   AlertKind = "weather_advisory"
	AlertEquipmentAdvisory AlertKind = "equipment_advisory"
	AlertError             AlertKind = "error"
)

// Alert is a human-readable compatibility message attached to a kit.
// Exclusion alerts explain why an item was removed; advisory alerts flag a
// concern about an item that stayed in the kit.
type Alert struct {
	Kind    AlertKind `json:"kind"`
	Message string    `json:"message"`
}
