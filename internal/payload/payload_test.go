package payload

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, body string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	return c
}

func parseObject(t *testing.T, body string) Body {
	t.Helper()
	parsed, apiErr := Parse(newTestContext(t, body), ParseOptions{})
	require.Nil(t, apiErr)
	return parsed
}

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		options     ParseOptions
		wantMessage string
	}{
		{name: "valid object", body: `{"text":"hello"}`},
		{name: "empty object", body: `{}`},
		{name: "empty body", body: "", wantMessage: "Request body is required"},
		{name: "whitespace body", body: "  \n ", wantMessage: "Request body is required"},
		{name: "empty body allowed", body: "", options: ParseOptions{AllowEmpty: true}},
		{name: "malformed json", body: `{"text":`, wantMessage: "Invalid JSON body"},
		{name: "array body", body: `[1,2]`, wantMessage: "JSON body must be an object"},
		{name: "scalar body", body: `"hello"`, wantMessage: "JSON body must be an object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, apiErr := Parse(newTestContext(t, tt.body), tt.options)
			if tt.wantMessage == "" {
				assert.Nil(t, apiErr)
				return
			}
			require.NotNil(t, apiErr)
			assert.Equal(t, http.StatusBadRequest, apiErr.HTTPStatus)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
		})
	}
}

func TestRequireString(t *testing.T) {
	body := parseObject(t, `{"text":"hello","count":3}`)

	value, apiErr := body.RequireString("text")
	require.Nil(t, apiErr)
	assert.Equal(t, "hello", value)

	_, apiErr = body.RequireString("missing")
	require.NotNil(t, apiErr)
	assert.Equal(t, `"missing" must be a string`, apiErr.Message)

	_, apiErr = body.RequireString("count")
	require.NotNil(t, apiErr)
	assert.Equal(t, `"count" must be a string`, apiErr.Message)
}

func TestOptionalString(t *testing.T) {
	body := parseObject(t, `{"format":"html","count":3}`)

	value, present, apiErr := body.OptionalString("format")
	require.Nil(t, apiErr)
	assert.True(t, present)
	assert.Equal(t, "html", value)

	_, present, apiErr = body.OptionalString("missing")
	require.Nil(t, apiErr)
	assert.False(t, present)

	_, _, apiErr = body.OptionalString("count")
	require.NotNil(t, apiErr)
	assert.Equal(t, `"count" must be a string`, apiErr.Message)
}

func TestOptionalBool(t *testing.T) {
	body := parseObject(t, `{"html":true,"text":"x"}`)

	value, present, apiErr := body.OptionalBool("html")
	require.Nil(t, apiErr)
	assert.True(t, present)
	assert.True(t, value)

	_, present, apiErr = body.OptionalBool("missing")
	require.Nil(t, apiErr)
	assert.False(t, present)

	_, _, apiErr = body.OptionalBool("text")
	require.NotNil(t, apiErr)
	assert.Equal(t, `"text" must be a boolean`, apiErr.Message)
}

func TestOptionalNumber(t *testing.T) {
	body := parseObject(t, `{"minConfidence":0.75,"text":"x"}`)

	value, present, apiErr := body.OptionalNumber("minConfidence")
	require.Nil(t, apiErr)
	assert.True(t, present)
	assert.InDelta(t, 0.75, value, 1e-9)

	_, present, apiErr = body.OptionalNumber("missing")
	require.Nil(t, apiErr)
	assert.False(t, present)

	_, _, apiErr = body.OptionalNumber("text")
	require.NotNil(t, apiErr)
	assert.Equal(t, `"text" must be a number`, apiErr.Message)
}

func TestRequireStringArray(t *testing.T) {
	body := parseObject(t, `{"texts":["a","b"],"mixed":["a",1],"single":"a"}`)

	items, apiErr := body.RequireStringArray("texts")
	require.Nil(t, apiErr)
	assert.Equal(t, []string{"a", "b"}, items)

	_, apiErr = body.RequireStringArray("mixed")
	require.NotNil(t, apiErr)
	assert.Equal(t, `"mixed" must be an array of strings`, apiErr.Message)

	_, apiErr = body.RequireStringArray("single")
	require.NotNil(t, apiErr)
	assert.Equal(t, `"single" must be an array of strings`, apiErr.Message)

	_, apiErr = body.RequireStringArray("missing")
	require.NotNil(t, apiErr)
}

func TestRequireStringOrArray(t *testing.T) {
	body := parseObject(t, `{"q":"hello","list":["a","b"],"bad":3}`)

	items, isArray, apiErr := body.RequireStringOrArray("q")
	require.Nil(t, apiErr)
	assert.False(t, isArray)
	assert.Equal(t, []string{"hello"}, items)

	items, isArray, apiErr = body.RequireStringOrArray("list")
	require.Nil(t, apiErr)
	assert.True(t, isArray)
	assert.Equal(t, []string{"a", "b"}, items)

	_, _, apiErr = body.RequireStringOrArray("bad")
	require.NotNil(t, apiErr)
	assert.Equal(t, `"bad" must be a string or an array of strings`, apiErr.Message)

	_, _, apiErr = body.RequireStringOrArray("missing")
	require.NotNil(t, apiErr)
	assert.Equal(t, `"missing" must be a string or an array of strings`, apiErr.Message)
}

func TestOptionalStringArray(t *testing.T) {
	body := parseObject(t, `{"texts":[],"bad":"x"}`)

	items, present, apiErr := body.OptionalStringArray("texts")
	require.Nil(t, apiErr)
	assert.True(t, present)
	assert.Empty(t, items)

	_, present, apiErr = body.OptionalStringArray("missing")
	require.Nil(t, apiErr)
	assert.False(t, present)

	_, _, apiErr = body.OptionalStringArray("bad")
	require.NotNil(t, apiErr)
	assert.Equal(t, `"bad" must be an array of strings`, apiErr.Message)
}
