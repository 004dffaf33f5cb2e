package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractToken(t *testing.T) {
	cases := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"Token abc", "abc", true},
		{"token  abc ", "abc", true},
		{"Basic abc", "", false},
		{"Token ", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		token, ok := extractToken(tc.header)
		assert.Equal(t, tc.ok, ok, tc.header)
		assert.Equal(t, tc.token, token, tc.header)
	}
}

func TestErrorHandler(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("pq: relation \"recipes\" does not exist")
	})
	app.Get("/teapot", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})

	decode := func(path string) (int, map[string]any) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
		require.NoError(t, err)
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		var body map[string]any
		require.NoError(t, json.Unmarshal(raw, &body))
		return resp.StatusCode, body
	}

	code, body := decode("/boom")
	assert.Equal(t, fiber.StatusInternalServerError, code)
	assert.NotContains(t, body["message"], "pq:")
	assert.NotContains(t, body, "error")

	code, body = decode("/teapot")
	assert.Equal(t, fiber.StatusTeapot, code)
	assert.Equal(t, "short and stout", body["message"])

	code, _ = decode("/missing")
	assert.Equal(t, fiber.StatusNotFound, code)
}
