package bind

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func newJSONRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestJSONDecodesAndValidates(t *testing.T) {
	var in loginPayload
	errs, err := JSON(newJSONRequest(`{"email":"a@b.co","password":"secret123"}`), &in)
	require.NoError(t, err)
	assert.Nil(t, errs)
	assert.Equal(t, "a@b.co", in.Email)
}

func TestJSONReturnsValidationErrors(t *testing.T) {
	var in loginPayload
	errs, err := JSON(newJSONRequest(`{"email":"nope","password":"123"}`), &in)
	require.NoError(t, err)
	require.NotNil(t, errs)
	assert.Contains(t, errs["email"], "valid email")
	assert.Contains(t, errs["password"], "at least 6")
}

func TestJSONRejectsMalformedBody(t *testing.T) {
	var in loginPayload
	_, err := JSON(newJSONRequest(`{"email":`), &in)
	assert.Error(t, err)
}
