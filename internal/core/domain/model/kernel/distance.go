package kernel

import (
	"math"
	"math/rand/v2"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const (
	// DistanceMin is the smallest distance a delivery can be assigned.
	DistanceMin = 0.0
	// DistanceMax is the exclusive upper bound of a delivery distance.
	DistanceMax = 20.0
)

// ErrDistanceIsNotConstructed is returned when a zero-value Distance is used.
var ErrDistanceIsNotConstructed = errs.NewValueIsRequiredError(
	"distance must be created via NewDistance or NewRandomDistance constructors")

// RandomSource produces uniformly distributed floats in [0, 1).
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	Float64() float64
}

// NewDefaultRandomSource returns a source backed by the runtime's random generator.
// It is safe for concurrent use.
func NewDefaultRandomSource() RandomSource {
	return globalSource{}
}

type globalSource struct{}

func (globalSource) Float64() float64 {
	return rand.Float64() //nolint:gosec // not a security boundary
}

// Distance is the length of a delivery route in kilometres.
// Real routing is not performed: the value is drawn at random when the delivery
// is created and only serves as a weight for the driver rank report.
//
// Example:
//
//	d, err := kernel.NewDistance(12.5)
//	if err != nil {
//	    // out of range
//	}
//	fmt.Println(d.Kilometers()) // 12.5
type Distance struct { //nolint:recvcheck //using for validation
	km    float64
	guard guard.ConstructorGuard
}

// NewDistance creates a Distance from a value in [DistanceMin, DistanceMax).
//
// Returns:
//   - Distance: A valid distance
//   - error: ValueIsOutOfRangeError for values outside the range or NaN
func NewDistance(km float64) (Distance, error) {
	d := Distance{
		guard: guard.NewConstructorGuard(),
	}

	if err := d.setKilometers(km); err != nil {
		return Distance{}, err
	}

	return d, nil
}

// NewRandomDistance draws a distance uniformly from [DistanceMin, DistanceMax) using src.
func NewRandomDistance(src RandomSource) (Distance, error) {
	if src == nil {
		return Distance{}, errs.NewValueIsRequiredError("random source")
	}
	return NewDistance(DistanceMin + (DistanceMax-DistanceMin)*src.Float64())
}

// Validate checks that the Distance was created through a constructor.
func (d Distance) Validate() error {
	return d.guard.Validate(ErrDistanceIsNotConstructed)
}

// Kilometers returns the raw value.
func (d Distance) Kilometers() float64 {
	return d.km
}

func (d *Distance) setKilometers(km float64) error {
	if math.IsNaN(km) || km < DistanceMin || km >= DistanceMax {
		return errs.NewValueIsOutOfRangeError("distance", km, DistanceMin, DistanceMax)
	}

	d.km = km
	return nil
}
