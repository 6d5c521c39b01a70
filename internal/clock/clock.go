package clock

import "time"

// UTCNow returns the current time in UTC truncated to whole seconds,
// the precision the API exposes in updated_at.
func UTCNow() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
