package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealNow(t *testing.T) {
	c := Real{}
	before := time.Now().UTC()
	now := c.Now()
	after := time.Now().UTC()

	assert.False(t, now.Before(before))
	assert.False(t, now.After(after))
}

func TestFixed(t *testing.T) {
	start := time.Date(2023, 1, 15, 12, 0, 0, 0, time.UTC)
	c := NewFixed(start)

	assert.Equal(t, start, c.Now())

	c.Advance(2 * time.Hour)
	assert.Equal(t, start.Add(2*time.Hour), c.Now())

	next := time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC)
	c.Set(next)
	assert.Equal(t, next, c.Now())
}
