package controllers_test

import (
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestRegister(t *testing.T) {
	resp, username := registerUser(t)
	assert.Equal(t, username, resp.User.Username)
	assert.NotZero(t, resp.User.ID)

	var body map[string]interface{}
	status := request(t, fiber.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "someoneelse",
		"email":    strings.ToUpper(username) + "@EXAMPLE.COM",
		"password": "password123",
	}, &body)
	assert.Equal(t, fiber.StatusBadRequest, status, "email is unique regardless of case")
}

func TestRegisterValidation(t *testing.T) {
	var body struct {
		Details map[string]string `json:"details"`
	}
	status := request(t, fiber.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "ab",
		"email":    "not-an-email",
		"password": "short",
	}, &body)

	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Equal(t, "min", body.Details["Username"])
	assert.Equal(t, "email", body.Details["Email"])
	assert.Equal(t, "min", body.Details["Password"])
}

func TestLogin(t *testing.T) {
	_, username := registerUser(t)

	var resp authResponse
	status := request(t, fiber.MethodPost, "/api/auth/login", "", map[string]string{
		"username": username,
		"password": "password123",
	}, &resp)
	assert.Equal(t, fiber.StatusOK, status)
	assert.NotEmpty(t, resp.Token)

	status = request(t, fiber.MethodPost, "/api/auth/login", "", map[string]string{
		"username": strings.ToUpper(username) + "@example.com",
		"password": "password123",
	}, &resp)
	assert.Equal(t, fiber.StatusOK, status, "login by email")

	status = request(t, fiber.MethodPost, "/api/auth/login", "", map[string]string{
		"username": username,
		"password": "wrongpassword",
	}, nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestGetProfile(t *testing.T) {
	auth, username := registerUser(t)
	request(t, fiber.MethodPost, "/api/auth/login", "", map[string]string{
		"username": username,
		"password": "password123",
	}, nil)

	var body struct {
		Data struct {
			Username   string `json:"username"`
			HabitCount int64  `json:"habit_count"`
			LastLogin  string `json:"last_login"`
		} `json:"data"`
	}
	status := request(t, fiber.MethodGet, "/api/user/profile", auth.Token, nil, &body)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, username, body.Data.Username)
	assert.Zero(t, body.Data.HabitCount)
	assert.NotEmpty(t, body.Data.LastLogin)

	status = request(t, fiber.MethodGet, "/api/user/profile", "", nil, nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	status = request(t, fiber.MethodGet, "/api/user/profile", "garbage", nil, nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}
