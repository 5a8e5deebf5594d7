package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedClock_FrozenUntilAdvanced(t *testing.T) {
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local)
	c := NewFixedClock(start)

	assert.Equal(t, start, c.Now())
	assert.Equal(t, start, c.Now(), "Now must not advance the clock")

	c.Advance(90 * time.Second)
	assert.Equal(t, start.Add(90*time.Second), c.Now())
}

func TestFixedClock_Set(t *testing.T) {
	c := NewFixedClock(time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local))

	target := time.Date(2023, 6, 1, 9, 30, 0, 0, time.Local)
	c.Set(target)
	assert.Equal(t, target, c.Now())
}
