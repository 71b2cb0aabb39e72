package utils

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ticketRequest struct {
	Numbers []int `json:"numbers" validate:"required,len=6,unique,dive,lotto_ball"`
	Rounds  int   `form:"rounds" validate:"gte=0"`
}

func TestValidatorLottoBall(t *testing.T) {
	v := GetValidator()

	assert.Empty(t, v.Validate(ticketRequest{Numbers: []int{1, 2, 3, 4, 5, 49}}))

	errs := v.Validate(ticketRequest{Numbers: []int{0, 2, 3, 4, 5, 6}})
	require.Len(t, errs, 1)
	assert.Equal(t, "numbers[0]", errs[0].Field)
	assert.Equal(t, "lotto_ball", errs[0].Tag)

	errs = v.Validate(ticketRequest{Numbers: []int{1, 1, 3, 4, 5, 6}})
	require.Len(t, errs, 1)
	assert.Equal(t, "unique", errs[0].Tag)

	errs = v.Validate(ticketRequest{Numbers: []int{1, 2, 3, 4, 5, 6}, Rounds: -1})
	require.Len(t, errs, 1)
	assert.Equal(t, "rounds", errs[0].Field)

	assert.Equal(t, map[string]string{"rounds": "rounds不可小於0"}, ErrorsToMap(errs))
}

func TestValidateField(t *testing.T) {
	v := GetValidator()
	assert.Empty(t, v.ValidateField(49, "lotto_ball"))
	assert.NotEmpty(t, v.ValidateField(50, "lotto_ball"))
	assert.NotEmpty(t, v.ValidateField("7", "lotto_ball"))
}

func TestHasVersionFlag(t *testing.T) {
	tests := []struct {
		args      []string
		requested bool
		asJSON    bool
	}{
		{nil, false, false},
		{[]string{"-rounds", "3"}, false, false},
		{[]string{"--version"}, true, false},
		{[]string{"-seed", "1", "-version"}, true, false},
		{[]string{"--version-json"}, true, true},
		{[]string{"version"}, true, false},
		{[]string{"-rounds", "version"}, false, false},
	}

	for _, tc := range tests {
		requested, asJSON := HasVersionFlag(tc.args)
		assert.Equal(t, tc.requested, requested, "%v", tc.args)
		assert.Equal(t, tc.asJSON, asJSON, "%v", tc.args)
	}
}

func TestPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintVersion(&buf, "app v1", map[string]string{"version": "1"}, false))
	assert.Equal(t, "app v1\n", buf.String())

	buf.Reset()
	require.NoError(t, PrintVersion(&buf, "app v1", map[string]string{"version": "1"}, true))
	assert.True(t, strings.HasPrefix(buf.String(), "{"))
	assert.Contains(t, buf.String(), `"version": "1"`)
}

func TestResponseEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	Error(c, http.StatusNotFound, "SESSION_NOT_FOUND", "missing")

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, "SESSION_NOT_FOUND", resp.Error)
	assert.Equal(t, "missing", resp.Message)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	Success(c, gin.H{"ok": true})
	var ok Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ok))
	assert.Equal(t, "success", ok.Message)
	assert.Empty(t, ok.Error)
}

func TestValidationFailedResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)

	errs := GetValidator().Validate(ticketRequest{Numbers: []int{1, 2, 3, 4, 5, 6}, Rounds: -1})
	require.Len(t, errs, 1)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	ValidationFailed(c, ErrorsToMap(errs))

	var resp struct {
		Code  int               `json:"code"`
		Error string            `json:"error"`
		Data  map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_PARAMETER", resp.Error)
	assert.Equal(t, map[string]string{"rounds": "rounds不可小於0"}, resp.Data)
}
