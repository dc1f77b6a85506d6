package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weiawesome/rowid/internal/domain"
	"github.com/weiawesome/rowid/internal/generator"
	"github.com/weiawesome/rowid/pkg/rowid"
)

const nowMs = 1704067200000

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ids, err := rowid.NewBuilder().
		WithDefaultRandomnessLength(6).
		WithClock(func() time.Time { return time.UnixMilli(nowMs) }).
		Finalize()
	require.NoError(t, err)

	gen, err := generator.NewRowIDGenerator(ids, 3)
	require.NoError(t, err)

	r := gin.New()
	NewHandler(gen).RegisterRoutes(r)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func TestNewID(t *testing.T) {
	r := newTestRouter(t)

	w, env := do(t, r, http.MethodGet, "/api/v1/ids", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, env.Success)

	var data domain.IDResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Len(t, data.ID, 16)
	assert.True(t, strings.HasPrefix(data.ID, "01HK153X00"))
}

func TestGenerateID(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name     string
		body     string
		wantCode int
		wantErr  string
		wantLen  int
		wantTs   uint64
	}{
		{"defaults", `{}`, http.StatusCreated, "", 16, nowMs},
		{"timestamp and length", `{"timestamp_ms": 1000, "randomness_length": 2}`, http.StatusCreated, "", 12, 1000},
		{"overflow", `{"timestamp_ms": 1125899906842624}`, http.StatusBadRequest, domain.CodeTimestampOverflow, 0, 0},
		{"bad length", `{"randomness_length": -1}`, http.StatusBadRequest, domain.CodeInvalidLength, 0, 0},
		{"negative timestamp", `{"timestamp_ms": -1}`, http.StatusBadRequest, "BAD_REQUEST", 0, 0},
		{"malformed", `{`, http.StatusBadRequest, "BAD_REQUEST", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := do(t, r, http.MethodPost, "/api/v1/ids", tt.body)
			require.Equal(t, tt.wantCode, w.Code, w.Body.String())

			if tt.wantErr != "" {
				assert.False(t, env.Success)
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.wantErr, env.Error.Code)
				return
			}

			var data domain.IDResponse
			require.NoError(t, json.Unmarshal(env.Data, &data))
			assert.Len(t, data.ID, tt.wantLen)

			ts, err := rowid.DecodeTimestamp(data.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTs, ts)
		})
	}
}

func TestGenerateBatch(t *testing.T) {
	r := newTestRouter(t)

	w, env := do(t, r, http.MethodPost, "/api/v1/ids/batch", `{"count": 3}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var data domain.BatchResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Len(t, data.IDs, 3)

	for _, body := range []string{`{"count": 4}`, `{"count": 0}`, `{}`} {
		w, env := do(t, r, http.MethodPost, "/api/v1/ids/batch", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		require.NotNil(t, env.Error)
		assert.Equal(t, domain.CodeInvalidCount, env.Error.Code)
	}
}

func TestVerifyID(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name        string
		id          string
		wantValid   bool
		wantNatural bool
		wantCode    string
	}{
		{"natural", "01HK153X00ABCDEF", true, true, ""},
		{"future", "01HK153X01ABCDEF", true, false, ""},
		{"too short", "ABC123", false, false, domain.CodeEncodedTooShort},
		{"invalid character", "01HK153U00ABCDEF", false, false, domain.CodeInvalidCharacter},
		{"past year 9999", "ZZZZZZZZZZ", true, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := do(t, r, http.MethodGet, "/api/v1/ids/"+tt.id+"/verify", "")
			require.Equal(t, http.StatusOK, w.Code)
			require.True(t, env.Success)

			var data domain.VerifyResponse
			require.NoError(t, json.Unmarshal(env.Data, &data))
			assert.Equal(t, tt.wantValid, data.Valid)
			assert.Equal(t, tt.wantNatural, data.Natural)
			assert.Equal(t, tt.wantCode, data.ErrorCode)
		})
	}
}

func TestValidateID(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name       string
		id         string
		wantValid  bool
		wantReason string
	}{
		{"natural", "01HK153X00ABCDEF", true, ""},
		{"future", "01HK153X01ABCDEF", false, "timestamp is in the future"},
		{"too short", "ABC123", false, rowid.ErrEncodedTooShort.Error()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := do(t, r, http.MethodGet, "/api/v1/ids/"+tt.id+"/validate", "")
			require.Equal(t, http.StatusOK, w.Code)

			var data domain.ValidateResponse
			require.NoError(t, json.Unmarshal(env.Data, &data))
			assert.Equal(t, tt.wantValid, data.Valid)
			assert.Equal(t, tt.wantReason, data.Reason)
		})
	}
}

func TestParseID(t *testing.T) {
	r := newTestRouter(t)

	w, env := do(t, r, http.MethodGet, "/api/v1/ids/01HK153X00ABCDEF/parse", "")
	require.Equal(t, http.StatusOK, w.Code)

	var data domain.ParseResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, uint64(nowMs), data.TimestampMs)
	assert.Equal(t, "ABCDEF", data.RandomPart)
	assert.Equal(t, 16, data.IDLength)
	assert.True(t, data.Natural)
	assert.Equal(t, "2024-01-01T00:00:00Z", data.Time)

	w, env = do(t, r, http.MethodGet, "/api/v1/ids/ZZZZZZZZZZAB/parse", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, uint64(1<<50-1), data.TimestampMs)
	assert.True(t, strings.HasPrefix(data.Time, "37648-"), data.Time)
	assert.False(t, data.Natural)
	assert.Equal(t, "AB", data.RandomPart)

	w, env = do(t, r, http.MethodGet, "/api/v1/ids/short/parse", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, domain.CodeEncodedTooShort, env.Error.Code)
}

func TestEncode(t *testing.T) {
	r := newTestRouter(t)

	w, env := do(t, r, http.MethodGet, "/api/v1/encode?timestamp_ms=1704067200000", "")
	require.Equal(t, http.StatusOK, w.Code)

	var data domain.EncodeResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "01HK153X00", data.Encoded)

	w, _ = do(t, r, http.MethodGet, "/api/v1/encode", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env = do(t, r, http.MethodGet, "/api/v1/encode?timestamp_ms=1125899906842624", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, domain.CodeTimestampOverflow, env.Error.Code)
}

func TestRandomness(t *testing.T) {
	r := newTestRouter(t)

	w, env := do(t, r, http.MethodGet, "/api/v1/randomness?length=9", "")
	require.Equal(t, http.StatusOK, w.Code)

	var data domain.RandomnessResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Len(t, data.Randomness, 9)

	w, env = do(t, r, http.MethodGet, "/api/v1/randomness?length=0", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Empty(t, data.Randomness)

	w, env = do(t, r, http.MethodGet, "/api/v1/randomness?length=5000", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, domain.CodeInvalidLength, env.Error.Code)
}

func TestNoRoute(t *testing.T) {
	r := newTestRouter(t)

	w, env := do(t, r, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Success)
}
