package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		send     func(c *gin.Context)
		wantCode int
		wantErr  string
	}{
		{"bad request", func(c *gin.Context) { BadRequest(c, "bad body") }, http.StatusBadRequest, CodeBadRequest},
		{"invalid argument", func(c *gin.Context) { InvalidArgument(c, "INVALID_COUNT", "bad count") }, http.StatusBadRequest, "INVALID_COUNT"},
		{"not found", func(c *gin.Context) { NotFound(c, "nope") }, http.StatusNotFound, CodeNotFound},
		{"internal", func(c *gin.Context) { InternalError(c, "boom") }, http.StatusInternalServerError, CodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			tt.send(c)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.True(t, c.IsAborted())
			require.Len(t, c.Errors, 1)
			assert.Equal(t, tt.wantErr, c.Errors[0].Meta)

			var body Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantErr, body.Error.Code)
		})
	}
}

func TestSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	Created(c, map[string]string{"id": "01HK153X00"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Empty(t, c.Errors)
	assert.JSONEq(t, `{"success":true,"data":{"id":"01HK153X00"}}`, w.Body.String())
}
