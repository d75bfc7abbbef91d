package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration parses a duration string, returns the fallback on error.
func ParseDuration(durationStr string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		// The process logger may not be configured yet when config values are read.
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("fallback", fallback).Msg("Failed to parse duration string, using fallback")
		return fallback
	}
	return duration
}

// ToMinorUnits converts a decimal currency amount to integer minor units (cents), rounding to
// the nearest unit so that 19.99 becomes 1999 rather than 1998.
func ToMinorUnits(amount float64) int64 {
	if amount >= 0 {
		return int64(amount*100 + 0.5)
	}
	return int64(amount*100 - 0.5)
}
