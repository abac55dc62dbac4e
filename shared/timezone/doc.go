// Package timezone resolves the hotel's local calendar.
//
// Stay dates carry no time of day, so "today" depends on where the hotel is. The zone comes from
// APP_TIMEZONE (an IANA name such as "Asia/Jakarta" or "Europe/London") and falls back to UTC
// when unset or unknown:
//
//	now := timezone.Now()          // wall clock in the hotel zone
//	loc := timezone.GetLocation()
package timezone
