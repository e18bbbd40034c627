package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"yarnhog/internal/models"
	"yarnhog/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func availabilityApp(mockRepo *MockUserRepository) *fiber.App {
	s := &Server{
		config:      testConfig(),
		userRepo:    mockRepo,
		userService: service.NewUserService(mockRepo, nil),
	}
	app := fiber.New()
	app.Get("/usernames/:username/availability", s.CheckUsernameAvailability)
	return app
}

func TestCheckUsernameAvailability(t *testing.T) {
	t.Run("free name is available", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("GetByUsername", mock.Anything, "hookbender").Return(nil, nil)
		app := availabilityApp(mockRepo)

		req := httptest.NewRequest(http.MethodGet, "/usernames/hookbender/availability", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, true, body["available"])
	})

	t.Run("held name is taken", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("GetByUsername", mock.Anything, "hookbender").
			Return(&models.User{ID: 3, Username: "hookbender"}, nil)
		app := availabilityApp(mockRepo)

		req := httptest.NewRequest(http.MethodGet, "/usernames/hookbender/availability", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, false, body["available"])
	})

	t.Run("malformed name reports the reason", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		app := availabilityApp(mockRepo)

		req := httptest.NewRequest(http.MethodGet, "/usernames/ab/availability", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, false, body["available"])
		assert.NotEmpty(t, body["reason"])
		mockRepo.AssertNotCalled(t, "GetByUsername")
	})
}
