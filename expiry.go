package credstore

import "time"

// Expired reports whether a record stamped with expiresAt is dead relative
// to the given horizon. The comparison is strict: a record expiring exactly
// at the horizon is still valid.
//
// Every expiry decision in this module goes through this function with an
// injected horizon rather than sampling the wall clock in deep logic, so
// tests can drive deterministic timelines.
func Expired(expiresAt, horizon time.Time) bool {
	return expiresAt.Before(horizon)
}
