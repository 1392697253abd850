package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, _ := time.Parse(DateLayout, s)
	return t
}

func TestComputeExpiry(t *testing.T) {
	assert.Equal(t, "2024-01-31", ComputeExpiry("2024-01-01", 30))
	assert.Equal(t, "2024-04-01", ComputeExpiry("2024-01-02", 90))
	assert.Equal(t, "2024-01-02", ComputeExpiry("2024-01-01", 1))

	// Unavailable: missing start date or non-positive duration.
	assert.Equal(t, "", ComputeExpiry("", 30))
	assert.Equal(t, "", ComputeExpiry("2024-01-01", 0))
	assert.Equal(t, "", ComputeExpiry("2024-01-01", -5))
	assert.Equal(t, "", ComputeExpiry("not-a-date", 30))
}

func TestComputeExpiryMonotonic(t *testing.T) {
	start := date("2023-06-15")
	for days := 1; days <= 400; days++ {
		expiry, ok := ParseDate(ComputeExpiry("2023-06-15", days))
		assert.True(t, ok)
		assert.True(t, expiry.After(start), "expiry must be after start for %d days", days)
	}
}

func TestRemainingDays(t *testing.T) {
	today := date("2024-03-10")

	got, ok := RemainingDays("2024-03-11", today)
	assert.True(t, ok)
	assert.Equal(t, 1, got)

	got, ok = RemainingDays("2024-03-10", today)
	assert.True(t, ok)
	assert.Equal(t, 0, got)

	// Expired plans go negative, never clamped.
	got, ok = RemainingDays("2024-03-01", today)
	assert.True(t, ok)
	assert.Equal(t, -9, got)

	_, ok = RemainingDays("", today)
	assert.False(t, ok)
}

func TestRemainingDaysIgnoresTimeOfDay(t *testing.T) {
	// The caller's clock carries a time component; the result must be a whole
	// calendar-day difference regardless.
	lateEvening := time.Date(2024, 3, 10, 23, 45, 12, 0, time.UTC)
	got, ok := RemainingDays("2024-03-11", lateEvening)
	assert.True(t, ok)
	assert.Equal(t, 1, got)
}

func TestRemainingDaysSign(t *testing.T) {
	today := date("2024-07-01")
	for offset := -30; offset <= 30; offset++ {
		expiry := FormatDate(today.AddDate(0, 0, offset))
		got, ok := RemainingDays(expiry, today)
		assert.True(t, ok)
		assert.Equal(t, offset, got)
		if offset > 0 {
			assert.Greater(t, got, 0)
		} else {
			assert.LessOrEqual(t, got, 0)
		}
	}
}

func TestComputeAnnualExpiry(t *testing.T) {
	assert.Equal(t, "2025-05-10", ComputeAnnualExpiry("2024-05-10"))

	// Leap day payment: AddDate normalizes Feb 29 + 1 year to Mar 1.
	assert.Equal(t, "2025-03-01", ComputeAnnualExpiry("2024-02-29"))

	assert.Equal(t, "", ComputeAnnualExpiry(""))
	assert.Equal(t, "", ComputeAnnualExpiry("29/02/2024"))
}

func TestIsAnnualFeeActive(t *testing.T) {
	today := date("2024-06-01")

	assert.True(t, IsAnnualFeeActive(true, "2024-06-01", today))
	assert.True(t, IsAnnualFeeActive(true, "2025-01-01", today))
	assert.True(t, IsAnnualFeeActive(true, "", today)) // no expiry recorded
	assert.False(t, IsAnnualFeeActive(true, "2024-05-31", today))
	assert.False(t, IsAnnualFeeActive(false, "2025-01-01", today))
}

func TestAnnualFeeStatus(t *testing.T) {
	today := date("2024-06-01")

	assert.Equal(t, FeePaid, AnnualFeeStatus(true, "2024-06-01", today))
	assert.Equal(t, FeePaid, AnnualFeeStatus(true, "", today))
	assert.Equal(t, FeeUnpaid, AnnualFeeStatus(false, "2025-01-01", today))

	// Paid but expired displays EXPIRED, not Paid.
	assert.Equal(t, FeeExpired, AnnualFeeStatus(true, "2024-05-31", today))
}
