package plot

import (
	"math"
	"strconv"
)

// generateAutoTicks fills the tick vector for the current range and scale
// type. On linear scales the tick step is chosen so that approximately
// autoTickCount ticks cover the range, with the step mantissa rounded to
// a "nice" value: below 5 the digit after the decimal point is rounded to
// 0.5 granularity, from 5 upward the step is rounded to multiples of two
// times the magnitude. On logarithmic scales one tick is generated per
// power of the log base; ranges straddling zero produce no ticks.
func (a *Axis) generateAutoTicks() {
	if a.scaleType == ScaleLinear {
		if a.autoTickStep {
			// aim for autoTickCount ticks, i.e. autoTickCount-1 intervals;
			// the division must stay exact for integer steps so the
			// magnitude floor below does not slip down a decade
			a.tickStep = a.rng.Size() / math.Max(1, float64(a.autoTickCount-1))
			magnitudeFactor := math.Pow(10, math.Floor(math.Log10(a.tickStep)))
			tickStepMantissa := a.tickStep / magnitudeFactor
			if tickStepMantissa < 5 {
				// round digit after decimal point to 0.5
				a.tickStep = float64(int(tickStepMantissa*2)) / 2.0 * magnitudeFactor
			} else {
				// round to first digit in multiples of 2
				a.tickStep = float64(int(tickStepMantissa/10.0*5)) / 5.0 * 10 * magnitudeFactor
			}
		}
		if a.autoSubTicks {
			a.subTickCount = autoSubTickCount(a.tickStep, a.subTickCount)
		}
		firstStep := math.Floor(a.rng.Lower / a.tickStep)
		lastStep := math.Ceil(a.rng.Upper / a.tickStep)
		tickCount := int(lastStep - firstStep + 1)
		if tickCount < 0 {
			tickCount = 0
		}
		a.tickVector = a.tickVector[:0]
		for i := 0; i < tickCount; i++ {
			a.tickVector = append(a.tickVector, (firstStep+float64(i))*a.tickStep)
		}
		return
	}

	// logarithmic scale: one tick per power of the log base
	a.tickVector = a.tickVector[:0]
	switch {
	case a.rng.Lower > 0 && a.rng.Upper > 0:
		currentMag := a.basePow(math.Floor(a.baseLog(a.rng.Lower)))
		a.tickVector = append(a.tickVector, currentMag)
		// currentMag may collapse to zero for ranges around 1e-300,
		// the loop condition cancels in that case
		for currentMag < a.rng.Upper && currentMag > 0 {
			currentMag *= a.scaleLogBase
			a.tickVector = append(a.tickVector, currentMag)
		}
	case a.rng.Lower < 0 && a.rng.Upper < 0:
		currentMag := -a.basePow(math.Ceil(a.baseLog(-a.rng.Lower)))
		a.tickVector = append(a.tickVector, currentMag)
		for currentMag < a.rng.Upper && currentMag < 0 {
			currentMag /= a.scaleLogBase
			a.tickVector = append(a.tickVector, currentMag)
		}
	default:
		Logger().Warn("plot: invalid range for logarithmic scale",
			"lower", a.rng.Lower, "upper", a.rng.Upper)
	}
}

// autoSubTickCount returns the sub-tick count appropriate for the given
// tick step, based on a lookup over the step's mantissa. Only integer and
// half-integer mantissas map to dedicated counts; anything else keeps the
// fallback value. A count of n divides the step into n+1 sections.
func autoSubTickCount(tickStep float64, fallback int) int {
	result := fallback

	magnitudeFactor := math.Pow(10, math.Floor(math.Log10(tickStep)))
	tickStepMantissa := tickStep / magnitudeFactor

	const epsilon = 0.01
	intPartF, fracPart := math.Modf(tickStepMantissa)
	intPart := int(intPartF)

	if fracPart < epsilon || 1.0-fracPart < epsilon {
		if 1.0-fracPart < epsilon {
			intPart++
		}
		switch intPart {
		case 1:
			result = 4 // 1.0 -> 0.2 substep
		case 2:
			result = 3 // 2.0 -> 0.5 substep
		case 3:
			result = 2 // 3.0 -> 1.0 substep
		case 4:
			result = 3 // 4.0 -> 1.0 substep
		case 5:
			result = 4 // 5.0 -> 1.0 substep
		case 6:
			result = 2 // 6.0 -> 2.0 substep
		case 7:
			result = 6 // 7.0 -> 1.0 substep
		case 8:
			result = 3 // 8.0 -> 2.0 substep
		case 9:
			result = 2 // 9.0 -> 3.0 substep
		}
	} else if math.Abs(fracPart-0.5) < epsilon {
		switch intPart {
		case 1:
			result = 2 // 1.5 -> 0.5 substep
		case 2:
			result = 4 // 2.5 -> 0.5 substep
		case 3:
			result = 4 // 3.5 -> 0.7 substep
		case 4:
			result = 2 // 4.5 -> 1.5 substep
		case 5:
			result = 4 // 5.5 -> 1.1 substep
		case 6:
			result = 4 // 6.5 -> 1.3 substep
		case 7:
			result = 2 // 7.5 -> 2.5 substep
		case 8:
			result = 4 // 8.5 -> 1.7 substep
		case 9:
			result = 4 // 9.5 -> 1.9 substep
		}
	}
	// mantissa fraction that is neither 0.0 nor 0.5 keeps the fallback

	return result
}

// setupTickVectors prepares the tick vector, sub-tick vector and tick
// label vector for the next draw. Auto ticks are regenerated; manual
// ticks are kept as provided. Sub-ticks are placed evenly between each
// adjacent tick pair and clipped to the current range, so they always
// lie strictly inside the span of their bounding ticks.
func (a *Axis) setupTickVectors() {
	if (!a.ticks && !a.tickLabels && !a.grid.Visible()) || a.rng.Size() <= 0 {
		return
	}

	if a.autoTicks {
		a.generateAutoTicks()
	}

	a.lowestVisibleTick, a.highestVisibleTick = a.visibleTickBounds()
	if len(a.tickVector) == 0 {
		a.subTickVector = a.subTickVector[:0]
		return
	}

	// generate subticks between ticks:
	a.subTickVector = a.subTickVector[:0]
	if a.subTickCount > 0 {
	outer:
		for i := 1; i < len(a.tickVector); i++ {
			subTickStep := (a.tickVector[i] - a.tickVector[i-1]) / float64(a.subTickCount+1)
			for k := 1; k <= a.subTickCount; k++ {
				pos := a.tickVector[i-1] + float64(k)*subTickStep
				if pos < a.rng.Lower {
					continue
				}
				if pos > a.rng.Upper {
					break outer
				}
				a.subTickVector = append(a.subTickVector, pos)
			}
		}
	}

	// generate tick labels according to tick positions:
	if a.autoTickLabels {
		a.tickVectorLabels = a.tickVectorLabels[:0]
		for _, t := range a.tickVector {
			a.tickVectorLabels = append(a.tickVectorLabels, a.formatTickValue(t))
		}
	} else if len(a.tickVectorLabels) < len(a.tickVector) {
		// make sure a provided tick label vector has at least minimal length:
		for len(a.tickVectorLabels) < len(a.tickVector) {
			a.tickVectorLabels = append(a.tickVectorLabels, "")
		}
	}
}

// formatTickValue renders a tick coordinate according to the axis number
// format and precision.
func (a *Axis) formatTickValue(v float64) string {
	return strconv.FormatFloat(v, a.numberFormat, a.numberPrecision, 64)
}

// visibleTickBounds returns the indices of the first and last tick inside
// the current range. If no tick is visible, low > high.
func (a *Axis) visibleTickBounds() (low, high int) {
	low = len(a.tickVector)
	high = -1
	for i, t := range a.tickVector {
		if t >= a.rng.Lower {
			low = i
			break
		}
	}
	for i := len(a.tickVector) - 1; i >= 0; i-- {
		if a.tickVector[i] <= a.rng.Upper {
			high = i
			break
		}
	}
	return low, high
}
