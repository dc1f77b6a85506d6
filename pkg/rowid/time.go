package rowid

import (
	"time"

	"github.com/oklog/ulid/v2"
)

var epoch = time.Unix(0, 0)

// TimeToTimestamp converts t to milliseconds since the Unix epoch.
// Sub-millisecond precision is truncated. Times before the epoch yield 0.
func TimeToTimestamp(t time.Time) uint64 {
	if t.Before(epoch) {
		return 0
	}
	return ulid.Timestamp(t)
}

// TimestampToTime converts milliseconds since the Unix epoch to a UTC time.Time.
func TimestampToTime(ms uint64) time.Time {
	return ulid.Time(ms).UTC()
}
