package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func windowProduct(active bool, start, end time.Time) *Product {
	return &Product{
		Name:      "Bluza",
		Active:    active,
		StartTime: start,
		EndTime:   end,
	}
}

func TestWithinWindow(t *testing.T) {
	start := time.Date(2023, 1, 15, 10, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)
	p := windowProduct(true, start, end)

	assert.False(t, p.WithinWindow(start.Add(-time.Second)))
	assert.True(t, p.WithinWindow(start), "window start is inclusive")
	assert.True(t, p.WithinWindow(start.Add(time.Hour)))
	assert.False(t, p.WithinWindow(end), "window end is exclusive")
	assert.False(t, p.WithinWindow(end.Add(time.Hour)))
}

func TestCheckAndExpire(t *testing.T) {
	start := time.Date(2023, 1, 15, 10, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	t.Run("inactive product stays inactive at any time", func(t *testing.T) {
		p := windowProduct(false, start, end)
		assert.False(t, p.CheckAndExpire(start.Add(time.Hour)))
		assert.False(t, p.Active)
	})

	t.Run("active product inside window", func(t *testing.T) {
		p := windowProduct(true, start, end)
		assert.True(t, p.CheckAndExpire(start.Add(time.Hour)))
		assert.True(t, p.Active)
	})

	t.Run("active product after window expires", func(t *testing.T) {
		p := windowProduct(true, start, end)
		assert.False(t, p.CheckAndExpire(end))
		assert.False(t, p.Active, "expiry flips the active flag")
	})

	t.Run("active product before window", func(t *testing.T) {
		p := windowProduct(true, start, end)
		assert.False(t, p.CheckAndExpire(start.Add(-time.Hour)))
		assert.False(t, p.Active)
	})

	t.Run("repeated calls are idempotent", func(t *testing.T) {
		p := windowProduct(true, start, end)
		assert.False(t, p.CheckAndExpire(end.Add(time.Hour)))
		assert.False(t, p.CheckAndExpire(end.Add(2*time.Hour)))
		assert.False(t, p.Active)
	})
}

func TestCurrencyValid(t *testing.T) {
	assert.True(t, CurrencyEUR.Valid())
	assert.True(t, CurrencyRON.Valid())
	assert.True(t, CurrencyUSD.Valid())
	assert.True(t, CurrencyGBP.Valid())
	assert.False(t, Currency("CHF").Valid())
	assert.False(t, Currency("").Valid())
}
