package builder

import (
	"fmt"
	"math"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// MaxMultiplicity is the largest coefficient drawn as parallel edges.
const MaxMultiplicity = 1000

// Multiplicity turns a stoichiometric coefficient into the number of parallel
// edges to draw. Fractional values are truncated toward zero. Null, unknown,
// non-numeric, zero and negative coefficients all count as 1. Coefficients
// above MaxMultiplicity, infinity included, are an error.
func Multiplicity(coefficient cty.Value) (int, error) {
	if coefficient.IsNull() || !coefficient.IsWhollyKnown() {
		return 1, nil
	}
	num, err := convert.Convert(coefficient, cty.Number)
	if err != nil || num.IsNull() {
		return 1, nil
	}

	var f float64
	if err := gocty.FromCtyValue(num, &f); err != nil {
		// Only magnitudes beyond float64 fail here.
		if num.AsBigFloat().Sign() < 0 {
			return 1, nil
		}
		return 0, fmt.Errorf("coefficient exceeds the maximum of %d", MaxMultiplicity)
	}
	if f < 1 {
		return 1, nil
	}
	if math.IsInf(f, 1) || f > MaxMultiplicity {
		return 0, fmt.Errorf("coefficient %g exceeds the maximum of %d", f, MaxMultiplicity)
	}
	return int(f), nil
}
