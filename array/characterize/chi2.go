package characterize

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// ErrInvalidConfidence is returned for confidence parameters outside (0, 1).
var ErrInvalidConfidence = errors.New("characterize: confidence must be in (0, 1)")

// Chi2 returns the chi-squared value such that a nu-dimensional confidence
// ellipsoid encloses a fraction 1-alpha of a normally distributed variable.
func Chi2(nu int, alpha float64) (float64, error) {
	if nu < 1 {
		return 0, fmt.Errorf("characterize: degrees of freedom must be positive, got %d", nu)
	}
	if alpha <= 0 || alpha >= 1 {
		return 0, fmt.Errorf("%w: alpha %v", ErrInvalidConfidence, alpha)
	}

	// The two-dimensional case has a closed form.
	if nu == 2 {
		return -2 * math.Log(alpha), nil
	}

	dist := distuv.ChiSquared{K: float64(nu)}
	return dist.Quantile(1 - alpha), nil
}
