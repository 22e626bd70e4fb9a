// Package kernel provides core domain primitives shared by every aggregate
// of the dispatch domain.
//
// The package includes:
//   - UUID: A value object for entity identity with a total order used for tie-breaks
//   - Distance: A value object for the delivery distance generated at dispatch time
//   - RandomSource: The injectable source of randomness behind NewRandomDistance
//
// All primitives are immutable and safe for concurrent use. Their zero values
// are invalid and fail Validate.
package kernel
