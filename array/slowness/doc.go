// Package slowness estimates the slowness vector of a planar wavefront
// crossing an array of sensors.
//
// The estimate is computed directly from the sensor time series and the
// known sensor positions: every unordered sensor pair contributes an
// arrival-time difference measured at the peak of the pair's normalized
// cross-correlation, and the slowness vector is the weighted least-squares
// solution of the plane-wave delay model
//
//	tau_ij ≈ (r_i - r_j) · s
//
// over all pairs. Apparent velocity and back azimuth (plus elevation angle
// for 3D arrays) follow from the slowness vector, and the least-squares
// residual yields an uncertainty estimate for the delays — which doubles as
// a measure of how badly a non-planar arrival violates the model.
//
// Per-sensor weights deselect (weight 0) or de-emphasize (weight < 1)
// individual traces without changing the shape of any output: excluded
// pairs keep their slots in the pair-indexed outputs with zeroed values.
//
// Typical use provides coordinates in km and the sample rate in Hz, giving
// velocity in km/s, slowness in s/km, delays and their uncertainty in
// seconds, and angles in degrees:
//
//	res, err := slowness.Estimate(traces, coords, 20, nil)
//	if err != nil {
//		...
//	}
//	fmt.Printf("%.2f km/s from %.1f°\n", res.Velocity, res.Azimuth)
//
// A 2D array needs at least 3 sensors, a 3D array at least 4. At exactly
// the minimum sensor count there is no redundancy left to estimate the
// delay uncertainty from; Estimate then returns the otherwise complete
// result together with [ErrUndefinedUncertainty].
package slowness
