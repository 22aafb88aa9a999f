// Package characterize estimates the measurement capabilities of a 2D
// sensor array from its geometry alone.
//
// [ArraySig] maps how trace-velocity and back-azimuth uncertainties vary
// with the arrival's velocity and azimuth, given an assumed time-delay
// uncertainty: the delay covariance is projected through the co-array
// design matrix into a confidence ellipse in slowness space, and the
// ellipse's extremal radii and subtended angles bound the velocity and
// azimuth errors. [ImpulseResponse] evaluates the array's wavenumber
// response over a k-space grid.
//
// The approach follows Szuberla & Olson (2004), Uncertainties associated
// with parameter estimation in atmospheric infrasound arrays,
// J. Acoust. Soc. Am. 115(1), 253-258.
package characterize
