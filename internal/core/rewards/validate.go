package rewards

import "fmt"

// Positive fails unless v > 0.
func Positive(field string, v float64) error {
	if v <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %g", ErrInvalidConfig, field, v)
	}
	return nil
}

// NonNegative fails when v < 0.
func NonNegative(field string, v float64) error {
	if v < 0 {
		return fmt.Errorf("%w: %s must not be negative, got %g", ErrInvalidConfig, field, v)
	}
	return nil
}

// Similarity fails unless v is a valid cosine in [-1, 1].
func Similarity(field string, v float64) error {
	if v < -1 || v > 1 {
		return fmt.Errorf("%w: %s must be within [-1, 1], got %g", ErrInvalidConfig, field, v)
	}
	return nil
}

// Ordered fails unless lo <= hi.
func Ordered(loField string, lo float64, hiField string, hi float64) error {
	if lo > hi {
		return fmt.Errorf("%w: %s (%g) must not exceed %s (%g)", ErrInvalidConfig, loField, lo, hiField, hi)
	}
	return nil
}
