package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingNumberCandidateFormat(t *testing.T) {
	at := time.Date(2026, 9, 10, 15, 30, 0, 0, time.UTC)

	number := bookingNumberCandidate(at)
	assert.Regexp(t, regexp.MustCompile(`^PT-20260910-[A-Z0-9]{6}$`), number)
}

func TestBookingNumberCandidatesAreDistinct(t *testing.T) {
	at := time.Now()

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		seen[bookingNumberCandidate(at)] = true
	}
	assert.Len(t, seen, 1000)
}

func TestRound2HalfUp(t *testing.T) {
	assert.Equal(t, 0.13, Round2(0.125))
	assert.Equal(t, 33.33, Round2(33.333))
	assert.Equal(t, 0.88, Round2(0.875))
	assert.Equal(t, 100.0, Round2(100.0))
}
