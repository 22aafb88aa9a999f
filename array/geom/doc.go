// Package geom provides sensor-pair enumeration and co-array construction
// for array-processing algorithms.
//
// The pair ordering produced by [Pairs] is a contract shared by every
// consumer in this module: pair-indexed outputs (delays, correlation maxima,
// co-array separations) all use the same canonical order, so results can be
// cross-referenced column by column.
package geom
