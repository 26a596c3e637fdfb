package model

// Band is a coarse health category derived from current/max hp.
type Band string

const (
	BandCritical Band = "critical"
	BandLow      Band = "low"
	BandNormal   Band = "normal"
	// BandUnknown is reported when max hp is zero or negative.
	BandUnknown Band = "unknown"
)

// HPStatus is the derived display state of a character's hit points.
type HPStatus struct {
	Ratio float64
	Band  Band
}
