// Package billing holds the membership lifecycle date arithmetic: plan expiry
// from start date and package duration, remaining days until expiry, and the
// annual fee cycle. All dates are calendar dates encoded as "YYYY-MM-DD"
// strings, treated as local midnight; no timezone conversion happens here.
package billing

import (
	"math"
	"time"
)

const DateLayout = "2006-01-02"

// ParseDate parses a calendar date string. ok is false for empty or malformed
// input.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Today returns the current calendar date at midnight.
func Today() time.Time {
	return Midnight(time.Now())
}

// Midnight truncates t to its calendar date (UTC, matching ParseDate).
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatDate renders t back into the wire format.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ComputeExpiry returns startDate + durationDays calendar days. The empty
// string signals "unavailable": start date missing/invalid or a non-positive
// duration. It never fails with an error; callers treat "" as not computed.
func ComputeExpiry(startDate string, durationDays int) string {
	start, ok := ParseDate(startDate)
	if !ok || durationDays <= 0 {
		return ""
	}
	return FormatDate(start.AddDate(0, 0, durationDays))
}

// RemainingDays computes ceil((expiry - today) / 1 day) with both dates
// normalized to midnight. The result may be negative; a plan expired N days
// ago yields -N. ok is false when the expiry date is absent or malformed, in
// which case callers should not display a countdown at all.
func RemainingDays(expiryDate string, today time.Time) (int, bool) {
	expiry, ok := ParseDate(expiryDate)
	if !ok {
		return 0, false
	}
	diff := expiry.Sub(Midnight(today))
	return int(math.Ceil(diff.Hours() / 24)), true
}

// ComputeAnnualExpiry returns paymentDate + 1 calendar year. Year increment is
// calendar arithmetic, not a 365-day offset: a 2024-02-29 payment normalizes
// to 2025-03-01. Empty when the payment date is absent or malformed.
func ComputeAnnualExpiry(paymentDate string) string {
	paid, ok := ParseDate(paymentDate)
	if !ok {
		return ""
	}
	return FormatDate(paid.AddDate(1, 0, 0))
}

// IsAnnualFeeActive reports whether the annual fee currently covers the
// member: the fee was paid and the expiry date, if present, has not passed.
func IsAnnualFeeActive(feePaid bool, expiryDate string, today time.Time) bool {
	if !feePaid {
		return false
	}
	expiry, ok := ParseDate(expiryDate)
	if !ok {
		return true // no expiry recorded, the paid flag stands alone
	}
	return !expiry.Before(Midnight(today))
}

// FeeStatus is the display state of the annual fee.
type FeeStatus string

const (
	FeePaid    FeeStatus = "Paid"
	FeeUnpaid  FeeStatus = "Not Paid"
	FeeExpired FeeStatus = "EXPIRED"
)

// AnnualFeeStatus follows the public member-lookup rule: an expiry strictly
// before today overrides a paid flag, so a paid-but-expired fee reads EXPIRED,
// never Paid.
func AnnualFeeStatus(feePaid bool, expiryDate string, today time.Time) FeeStatus {
	if !feePaid {
		return FeeUnpaid
	}
	if expiry, ok := ParseDate(expiryDate); ok && expiry.Before(Midnight(today)) {
		return FeeExpired
	}
	return FeePaid
}
