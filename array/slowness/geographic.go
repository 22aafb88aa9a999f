package slowness

import "math"

// toGeographic converts a slowness vector in [northing, easting,
// {elevation}] components into apparent velocity, back azimuth, and (for
// 3D) elevation angle.
//
// The back azimuth is the direction the signal arrived from, degrees
// clockwise from north in [0, 360). The slowness vector points back toward
// the source under the delay model, so the azimuth is that of the vector
// itself. Velocity is the reciprocal slowness magnitude and becomes +Inf
// for a zero slowness vector; that degenerate result is surfaced rather
// than clamped.
func toGeographic(s []float64) (vel, az, elev float64, hasElev bool) {
	var norm2 float64
	for _, v := range s {
		norm2 += v * v
	}
	vel = 1 / math.Sqrt(norm2)

	// Wrap the angle into [0, 360) going clockwise from north.
	az = math.Mod(math.Atan2(s[1], s[0])*180/math.Pi-360, 360)
	if az < 0 {
		az += 360
	}

	if len(s) == 3 {
		horiz := math.Hypot(s[0], s[1])
		elev = math.Atan2(s[2], horiz) * 180 / math.Pi
		hasElev = true
	}

	return vel, az, elev, hasElev
}
