package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"scribe/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetUser(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		mockSetup      func(*MockUserRepository)
		expectedStatus int
	}{
		{
			name: "Success",
			url:  "/users/1",
			mockSetup: func(repo *MockUserRepository) {
				repo.On("GetByID", mock.Anything, uint(1)).
					Return(&models.User{ID: 1, Username: "alice"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Not Found",
			url:  "/users/99",
			mockSetup: func(repo *MockUserRepository) {
				repo.On("GetByID", mock.Anything, uint(99)).
					Return(nil, models.NewNotFoundError("User", 99))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Invalid ID",
			url:            "/users/abc",
			mockSetup:      func(*MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			userRepo := new(MockUserRepository)
			tt.mockSetup(userRepo)
			s := newTestServer(userRepo, new(MockProfileRepository), new(MockPostRepository))
			app.Get("/users/:id", s.GetUser)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestCreateUser(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]string
		mockSetup      func(*MockUserRepository)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "Success",
			body: map[string]string{"username": "alice", "password": "password123"},
			mockSetup: func(repo *MockUserRepository) {
				repo.On("GetByUsername", mock.Anything, "alice").Return(nil, nil)
				repo.On("Create", mock.Anything, mock.Anything).Return(nil).
					Run(func(args mock.Arguments) {
						args.Get(1).(*models.User).ID = 1
					})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Missing Fields",
			body:           map[string]string{"username": "alice"},
			mockSetup:      func(*MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   models.CodeValidation,
		},
		{
			name:           "Invalid Username",
			body:           map[string]string{"username": "a!", "password": "password123"},
			mockSetup:      func(*MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   models.CodeValidation,
		},
		{
			name: "Duplicate Username",
			body: map[string]string{"username": "alice", "password": "password123"},
			mockSetup: func(repo *MockUserRepository) {
				repo.On("GetByUsername", mock.Anything, "alice").
					Return(&models.User{ID: 1, Username: "alice"}, nil)
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   models.CodeConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			userRepo := new(MockUserRepository)
			tt.mockSetup(userRepo)
			s := newTestServer(userRepo, new(MockProfileRepository), new(MockPostRepository))
			app.Post("/users", s.CreateUser)

			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.expectedCode != "" {
				var errResp models.ErrorResponse
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
				assert.Equal(t, tt.expectedCode, errResp.Code)
			}
		})
	}
}

func TestCreateUser_PasswordNotExposed(t *testing.T) {
	app := fiber.New()
	userRepo := new(MockUserRepository)
	userRepo.On("GetByUsername", mock.Anything, "alice").Return(nil, nil)
	userRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	s := newTestServer(userRepo, new(MockProfileRepository), new(MockPostRepository))
	app.Post("/users", s.CreateUser)

	body, _ := json.Marshal(map[string]string{"username": "alice", "password": "password123"})
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var payload map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "alice", payload["username"])
	assert.NotContains(t, payload, "password")
}

func TestUpdateUser(t *testing.T) {
	app := fiber.New()
	userRepo := new(MockUserRepository)
	userRepo.On("GetByID", mock.Anything, uint(1)).
		Return(&models.User{ID: 1, Username: "alice"}, nil)
	userRepo.On("GetByUsername", mock.Anything, "bob").Return(nil, nil)
	userRepo.On("Save", mock.Anything, mock.Anything).Return(nil)
	s := newTestServer(userRepo, new(MockProfileRepository), new(MockPostRepository))
	app.Patch("/users/:id", s.UpdateUser)

	body, _ := json.Marshal(map[string]string{"username": "bob"})
	req := httptest.NewRequest(http.MethodPatch, "/users/1", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "bob", payload["username"])
}

func TestDeleteUser(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		app := fiber.New()
		userRepo := new(MockUserRepository)
		userRepo.On("Delete", mock.Anything, uint(1)).Return(nil)
		s := newTestServer(userRepo, new(MockProfileRepository), new(MockPostRepository))
		app.Delete("/users/:id", s.DeleteUser)

		req := httptest.NewRequest(http.MethodDelete, "/users/1", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		userRepo.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		app := fiber.New()
		userRepo := new(MockUserRepository)
		userRepo.On("Delete", mock.Anything, uint(99)).
			Return(models.NewNotFoundError("User", 99))
		s := newTestServer(userRepo, new(MockProfileRepository), new(MockPostRepository))
		app.Delete("/users/:id", s.DeleteUser)

		req := httptest.NewRequest(http.MethodDelete, "/users/99", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestGetUsers(t *testing.T) {
	app := fiber.New()
	userRepo := new(MockUserRepository)
	userRepo.On("List", mock.Anything).Return([]models.User{
		{ID: 1, Username: "alice"},
		{ID: 2, Username: "bob"},
	}, nil)
	s := newTestServer(userRepo, new(MockProfileRepository), new(MockPostRepository))
	app.Get("/users", s.GetUsers)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var users []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&users))
	assert.Len(t, users, 2)
}
