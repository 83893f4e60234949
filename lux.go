package tsl2561

import (
	"fmt"
	"math"
)

// ErrInvalidReading marks channel data the empirical lux formula cannot be
// trusted with: channel 0 reads zero, a channel sits at or above the clip
// threshold for the current integration time, or the sensor runs in manual
// integration mode for which no threshold or time scale is defined.
var ErrInvalidReading = fmt.Errorf("invalid channel reading")

// Clip thresholds indexed by integration time code. A channel at or above
// its threshold is saturated for that exposure window.
var clipThresholds = [3]uint16{4900, 37000, 65000}

// Seconds of exposure per integration time code, used to normalize readings
// to the 402 ms calibration baseline.
var integScales = [3]float64{0.034, 0.252, 1}

// ComputeLux converts the two raw channel readings into lux using the
// piecewise empirical formula from the datasheet. gain and integ are the
// codes from the timing register the channels were sampled under. The result
// is normalized to the 16x gain / 402 ms baseline the coefficients were
// calibrated at. Returns ErrInvalidReading when the inputs are out of the
// formula's valid range.
func ComputeLux(broadband, infrared uint16, gain, integ byte) (float64, error) {
	if integ == IntegManual {
		return 0, fmt.Errorf("%w: no clip threshold or time scale for manual integration mode", ErrInvalidReading)
	}
	if broadband == 0 {
		return 0, fmt.Errorf("%w: channel 0 is zero", ErrInvalidReading)
	}
	clip := clipThresholds[integ]
	if broadband >= clip || infrared >= clip {
		return 0, fmt.Errorf("%w: channel saturated (clip threshold %d)", ErrInvalidReading, clip)
	}

	ch0 := float64(broadband)
	ch1 := float64(infrared)
	ratio := ch1 / ch0

	var lux float64
	switch {
	case ratio <= 0.50:
		// ratio 0 falls through math.Pow(0, 1.4) == 0 to plain 0.0304*ch0
		lux = 0.0304*ch0 - 0.062*ch0*math.Pow(ratio, 1.4)
	case ratio <= 0.61:
		lux = 0.0224*ch0 - 0.031*ch1
	case ratio <= 0.80:
		lux = 0.0128*ch0 - 0.0153*ch1
	case ratio <= 1.30:
		lux = 0.00146*ch0 - 0.00112*ch1
	default:
		lux = 0
	}

	if gain == Gain1x {
		lux *= 16
	}
	return lux / integScales[integ], nil
}
