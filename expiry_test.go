package credstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExpired_Boundary(t *testing.T) {
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.False(t, Expired(at, at), "a record expiring exactly at the horizon is still valid")
	assert.True(t, Expired(at, at.Add(time.Nanosecond)))
	assert.False(t, Expired(at, at.Add(-time.Nanosecond)))
	assert.False(t, Expired(at.Add(time.Hour), at))
	assert.True(t, Expired(at, at.Add(time.Hour)))
}
