package rainbow

import (
	"errors"
	"fmt"
)

// Sentinels matched by errors.Is against the typed errors below.
var (
	ErrInvalidColor = errors.New("invalid colour")
	ErrInvalidRange = errors.New("invalid number range")
	ErrTooFewColors = errors.New("too few colours")
)

// InvalidColorError reports a colour spec that is neither a hex string nor a known name.
type InvalidColorError struct {
	Spec string
}

func (e *InvalidColorError) Error() string {
	return fmt.Sprintf("invalid colour %q", e.Spec)
}

func (e *InvalidColorError) Is(target error) bool {
	return target == ErrInvalidColor
}

// InvalidRangeError reports a number range where max is not greater than min.
type InvalidRangeError struct {
	Min float64
	Max float64
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid number range: max %v must be greater than min %v", e.Max, e.Min)
}

func (e *InvalidRangeError) Is(target error) bool {
	return target == ErrInvalidRange
}

// TooFewColorsError reports a spectrum with fewer than two colours.
type TooFewColorsError struct {
	Count int
}

func (e *TooFewColorsError) Error() string {
	return fmt.Sprintf("a spectrum needs at least 2 colours, got %d", e.Count)
}

func (e *TooFewColorsError) Is(target error) bool {
	return target == ErrTooFewColors
}
