package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// HTTPTestSuite contains common utilities for HTTP testing
type HTTPTestSuite struct {
	Router *gin.Engine
}

// SetupHTTPTest initializes Gin for testing
func SetupHTTPTest() *HTTPTestSuite {
	gin.SetMode(gin.TestMode)
	return &HTTPTestSuite{Router: gin.New()}
}

// NewHTTPTestSuite wraps an already configured router
func NewHTTPTestSuite(router *gin.Engine) *HTTPTestSuite {
	return &HTTPTestSuite{Router: router}
}

// MakeRequest creates and executes an HTTP request for testing
func (suite *HTTPTestSuite) MakeRequest(method, url string, body interface{}) *httptest.ResponseRecorder {
	return suite.MakeRequestWithHeaders(method, url, body, nil)
}

// MakeAuthenticatedRequest sends the request with a bearer token
func (suite *HTTPTestSuite) MakeAuthenticatedRequest(method, url, token string, body interface{}) *httptest.ResponseRecorder {
	return suite.MakeRequestWithHeaders(method, url, body, map[string]string{
		"Authorization": "Bearer " + token,
	})
}

// MakeRequestWithHeaders creates and executes an HTTP request with custom headers.
// A string or []byte body is sent as-is; anything else is JSON encoded.
func (suite *HTTPTestSuite) MakeRequestWithHeaders(method, url string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reqBody io.Reader

	switch b := body.(type) {
	case nil:
	case string:
		reqBody = bytes.NewBufferString(b)
	case []byte:
		reqBody = bytes.NewBuffer(b)
	default:
		jsonBytes, _ := json.Marshal(b)
		reqBody = bytes.NewBuffer(jsonBytes)
	}

	req, _ := http.NewRequest(method, url, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	recorder := httptest.NewRecorder()
	suite.Router.ServeHTTP(recorder, req)
	return recorder
}

// Envelope mirrors the response body every endpoint returns
type Envelope struct {
	Status     string          `json:"status"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Errors     []FieldError    `json:"errors"`
	StatusCode int             `json:"statusCode"`
}

// FieldError is one entry of an envelope's errors list
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ParseEnvelope asserts the status code and decodes the envelope
func ParseEnvelope(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int) Envelope {
	t.Helper()
	require.Equal(t, expectedStatus, recorder.Code, recorder.Body.String())
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))

	var env Envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &env))
	return env
}

// ParseEnvelopeData decodes the envelope and unmarshals its data into target
func ParseEnvelopeData(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, target interface{}) Envelope {
	t.Helper()
	env := ParseEnvelope(t, recorder, expectedStatus)
	require.NotEmpty(t, env.Data, "envelope has no data")
	require.NoError(t, json.Unmarshal(env.Data, target))
	return env
}

// AssertErrorEnvelope asserts a failure envelope with the given status and message
func AssertErrorEnvelope(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) Envelope {
	t.Helper()
	env := ParseEnvelope(t, recorder, expectedStatus)
	assert.Equal(t, "Bad request", env.Status)
	assert.Equal(t, expectedMessage, env.Message)
	assert.Equal(t, expectedStatus, env.StatusCode)
	return env
}

// CreateTestGinContext creates a test Gin context
func CreateTestGinContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	return ctx, recorder
}
