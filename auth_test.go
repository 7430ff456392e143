package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegister(t *testing.T) {
	app, _ := setupTestApp()

	tests := []struct {
		name           string
		body           map[string]interface{}
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "Успешная регистрация",
			body:           map[string]interface{}{"email": "owner@oakwoods.test", "password": "password123"},
			expectedStatus: 201,
			expectedMsg:    "User created successfully",
		},
		{
			name:           "Без пароля",
			body:           map[string]interface{}{"email": "second@oakwoods.test"},
			expectedStatus: 400,
			expectedMsg:    "Missing email or password",
		},
		{
			name:           "Без email",
			body:           map[string]interface{}{"password": "password123"},
			expectedStatus: 400,
			expectedMsg:    "Missing email or password",
		},
		{
			name:           "Повторная регистрация",
			body:           map[string]interface{}{"email": "owner@oakwoods.test", "password": "another"},
			expectedStatus: 400,
			expectedMsg:    "User already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := doJSON(app, "POST", "/auth/register", tt.body, "")
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			assert.Equal(t, tt.expectedMsg, decodeMap(resp)["msg"])
		})
	}
}

func TestLogin(t *testing.T) {
	app, _ := setupTestApp()

	resp, err := doJSON(app, "POST", "/auth/register", map[string]interface{}{
		"email":    "owner@oakwoods.test",
		"password": "password123",
	}, "")
	assert.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)

	t.Run("Успешный вход", func(t *testing.T) {
		resp, err := doJSON(app, "POST", "/auth/login", map[string]interface{}{
			"email":    "owner@oakwoods.test",
			"password": "password123",
		}, "")
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.NotEmpty(t, decodeMap(resp)["access_token"])
	})

	t.Run("Неверный пароль", func(t *testing.T) {
		resp, err := doJSON(app, "POST", "/auth/login", map[string]interface{}{
			"email":    "owner@oakwoods.test",
			"password": "wrong",
		}, "")
		assert.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
		assert.Equal(t, "Bad email or password", decodeMap(resp)["msg"])
	})

	t.Run("Неизвестный пользователь", func(t *testing.T) {
		resp, err := doJSON(app, "POST", "/auth/login", map[string]interface{}{
			"email":    "nobody@oakwoods.test",
			"password": "password123",
		}, "")
		assert.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
	})
}

func TestUpdateAccount(t *testing.T) {
	app, _ := setupTestApp()

	resp, _ := doJSON(app, "POST", "/auth/register", map[string]interface{}{
		"email":    "owner@oakwoods.test",
		"password": "password123",
	}, "")
	assert.Equal(t, 201, resp.StatusCode)

	resp, _ = doJSON(app, "POST", "/auth/login", map[string]interface{}{
		"email":    "owner@oakwoods.test",
		"password": "password123",
	}, "")
	token, _ := decodeMap(resp)["access_token"].(string)
	assert.NotEmpty(t, token)

	t.Run("Без токена", func(t *testing.T) {
		resp, err := doJSON(app, "POST", "/auth/update", map[string]interface{}{
			"currentPassword": "password123",
			"newPassword":     "newpassword",
		}, "")
		assert.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
	})

	t.Run("Неверный текущий пароль", func(t *testing.T) {
		resp, err := doJSON(app, "POST", "/auth/update", map[string]interface{}{
			"currentPassword": "wrong",
			"newPassword":     "newpassword",
		}, token)
		assert.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
		assert.Equal(t, "Invalid current password", decodeMap(resp)["msg"])
	})

	t.Run("Без изменений", func(t *testing.T) {
		resp, err := doJSON(app, "POST", "/auth/update", map[string]interface{}{
			"currentPassword": "password123",
		}, token)
		assert.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
		assert.Equal(t, "No changes provided", decodeMap(resp)["msg"])
	})

	t.Run("Смена пароля", func(t *testing.T) {
		resp, err := doJSON(app, "POST", "/auth/update", map[string]interface{}{
			"currentPassword": "password123",
			"newPassword":     "newpassword",
		}, token)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		// Вход по новому паролю
		resp, err = doJSON(app, "POST", "/auth/login", map[string]interface{}{
			"email":    "owner@oakwoods.test",
			"password": "newpassword",
		}, "")
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		// Старый пароль больше не работает
		resp, err = doJSON(app, "POST", "/auth/login", map[string]interface{}{
			"email":    "owner@oakwoods.test",
			"password": "password123",
		}, "")
		assert.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
	})
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app, _ := setupTestApp()

	paths := []struct {
		method string
		path   string
	}{
		{"GET", "/inventory"},
		{"GET", "/orders"},
		{"GET", "/laborers"},
		{"GET", "/expenses"},
		{"POST", "/reports/export"},
		{"GET", "/api/dashboard"},
	}

	for _, p := range paths {
		t.Run(p.method+" "+p.path, func(t *testing.T) {
			resp, err := doJSON(app, p.method, p.path, nil, "")
			assert.NoError(t, err)
			assert.Equal(t, 401, resp.StatusCode)
		})
	}
}
