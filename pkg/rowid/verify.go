package rowid

import "time"

// VerifyResult reports the outcome of Verify. When Success is false only Err is set.
type VerifyResult struct {
	Success   bool
	Result    time.Time
	Timestamp uint64

	// Natural is true when the encoded time is not after the time of verification.
	Natural bool
	Err     error
}

// Verify decodes the timestamp prefix of encoded and checks that it does not
// lie in the future.
func (r *RowID) Verify(encoded string) VerifyResult {
	ms, err := r.DecodeTimestamp(encoded)
	if err != nil {
		return VerifyResult{Err: err}
	}
	return VerifyResult{
		Success:   true,
		Result:    TimestampToTime(ms),
		Timestamp: ms,
		Natural:   ms <= TimeToTimestamp(r.now()),
	}
}
