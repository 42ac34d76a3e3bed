package utils

import (
	"io"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"habittracker/backend/config"
)

func tokenApp(cfg *config.Config) *fiber.App {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		id, err := ExtractUserIDFromToken(c, cfg)
		if err != nil {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		return c.SendString(strconv.FormatUint(uint64(id), 10))
	})
	return app
}

func callWithAuth(t *testing.T, app *fiber.App, header string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(fiber.HeaderAuthorization, header)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestTokenRoundTrip(t *testing.T) {
	cfg := &config.Config{JWTSecret: "secret"}
	token, err := GenerateJWTToken(42, cfg)
	require.NoError(t, err)

	app := tokenApp(cfg)
	for _, header := range []string{"Bearer " + token, "bearer " + token, token} {
		status, body := callWithAuth(t, app, header)
		assert.Equal(t, fiber.StatusOK, status, header)
		assert.Equal(t, "42", body)
	}
}

func TestTokenRejected(t *testing.T) {
	cfg := &config.Config{JWTSecret: "secret"}
	app := tokenApp(cfg)

	foreign, err := GenerateJWTToken(42, &config.Config{JWTSecret: "other"})
	require.NoError(t, err)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 42,
		"exp":     time.Now().Add(-time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	noUser, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	for name, header := range map[string]string{
		"missing":      "",
		"garbage":      "Bearer not.a.token",
		"wrong secret": "Bearer " + foreign,
		"expired":      "Bearer " + expired,
		"no user":      "Bearer " + noUser,
	} {
		status, _ := callWithAuth(t, app, header)
		assert.Equal(t, fiber.StatusUnauthorized, status, name)
	}
}
