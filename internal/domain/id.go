package domain

import (
	"time"

	"github.com/weiawesome/rowid/internal/generator"
	"github.com/weiawesome/rowid/pkg/rowid"
)

// GenerateRequest is the body of POST /api/v1/ids.
type GenerateRequest struct {
	TimestampMs      *uint64 `json:"timestamp_ms"`
	RandomnessLength *int    `json:"randomness_length"`
}

// BatchRequest is the body of POST /api/v1/ids/batch.
type BatchRequest struct {
	Count int `json:"count"`
}

// EncodeRequest is the query of GET /api/v1/encode.
type EncodeRequest struct {
	TimestampMs *uint64 `form:"timestamp_ms" binding:"required"`
}

// RandomnessRequest is the query of GET /api/v1/randomness.
type RandomnessRequest struct {
	Length *int `form:"length" binding:"required"`
}

type IDResponse struct {
	ID string `json:"id"`
}

type BatchResponse struct {
	IDs []string `json:"ids"`
}

type EncodeResponse struct {
	Encoded     string `json:"encoded"`
	TimestampMs uint64 `json:"timestamp_ms"`
}

type RandomnessResponse struct {
	Randomness string `json:"randomness"`
}

// VerifyResponse mirrors rowid.VerifyResult. Invalid IDs are reported with
// Valid false and an error code instead of a failed request.
type VerifyResponse struct {
	Valid       bool   `json:"valid"`
	TimestampMs uint64 `json:"timestamp_ms,omitempty"`
	Time        string `json:"time,omitempty"`
	Natural     bool   `json:"natural"`
	ErrorCode   string `json:"error_code,omitempty"`
	Error       string `json:"error,omitempty"`
}

// ValidateResponse is the result of checking that an ID decodes and is not
// from the future.
type ValidateResponse struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

type ParseResponse struct {
	TimestampMs uint64 `json:"timestamp_ms"`
	Time        string `json:"time"`
	Natural     bool   `json:"natural"`
	RandomPart  string `json:"random_part"`
	IDLength    int    `json:"id_length"`
	Alphabet    string `json:"alphabet"`
}

// FormatTime renders ms as RFC 3339 in UTC. Unlike time.Time's JSON encoding
// it also handles years past 9999, which hand-crafted IDs can reach.
func FormatTime(ms uint64) string {
	return rowid.TimestampToTime(ms).Format(time.RFC3339Nano)
}

func NewVerifyResponse(res rowid.VerifyResult) VerifyResponse {
	if !res.Success {
		return VerifyResponse{
			ErrorCode: ErrorCode(res.Err),
			Error:     res.Err.Error(),
		}
	}
	return VerifyResponse{
		Valid:       true,
		TimestampMs: res.Timestamp,
		Time:        FormatTime(res.Timestamp),
		Natural:     res.Natural,
	}
}

func NewParseResponse(res *generator.ParseResult) ParseResponse {
	return ParseResponse{
		TimestampMs: res.TimestampMs,
		Time:        FormatTime(res.TimestampMs),
		Natural:     res.Natural,
		RandomPart:  res.RandomPart,
		IDLength:    res.IDLength,
		Alphabet:    res.Alphabet,
	}
}
