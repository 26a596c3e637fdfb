package roster

import "github.com/idilsaglam/tabletop/internal/model"

// DeriveHPStatus computes current/max without clamping, so the ratio can
// exceed 1 or go negative. A max of zero or less has no meaningful ratio
// and reports BandUnknown.
func DeriveHPStatus(current, max int) model.HPStatus {
	if max <= 0 {
		return model.HPStatus{Ratio: 0, Band: model.BandUnknown}
	}
	ratio := float64(current) / float64(max)
	band := model.BandNormal
	switch {
	case ratio <= 0.25:
		band = model.BandCritical
	case ratio <= 0.50:
		band = model.BandLow
	}
	return model.HPStatus{Ratio: ratio, Band: band}
}
