package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AminElhag/Elixir/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupAuthRouter(repo AccountRepository) (*gin.Engine, *session.Manager) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	sessions := session.NewManager(session.NewMemoryStore())
	service := NewService(sessions, repo, testSecret, time.Millisecond)
	handler := NewHandler(service, sessions, testSecret)

	router.POST("/auth/login", handler.Login)
	router.POST("/auth/register", handler.Register)
	router.POST("/auth/verify-otp", handler.VerifyOTP)
	router.POST("/auth/logout", handler.Logout)
	router.GET("/auth/status", handler.Status)
	router.GET("/me", handler.Me)

	return router, sessions
}

func postJSON(router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestLoginEndpoint(t *testing.T) {
	t.Run("Successful login saves session", func(t *testing.T) {
		repo := new(MockAccountRepo)
		repo.On("FindByEmail", mock.Anything, "user@example.com").Return(nil, ErrAccountNotFound)

		router, sessions := setupAuthRouter(repo)

		w := postJSON(router, "/auth/login", gin.H{
			"email_or_phone": "user@example.com",
			"password":       "password123",
		})

		assert.Equal(t, http.StatusOK, w.Code)

		var result LoginResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.NotEmpty(t, result.Token)
		assert.True(t, sessions.Authenticated())
	})

	t.Run("Validation errors are per-field", func(t *testing.T) {
		router, sessions := setupAuthRouter(new(MockAccountRepo))

		w := postJSON(router, "/auth/login", gin.H{
			"email_or_phone": "not-an-email",
			"password":       "short",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Please enter a valid email address or phone number")
		assert.Contains(t, w.Body.String(), "Password must be at least 8 characters")
		assert.False(t, sessions.Authenticated())
	})

	t.Run("Wrong password against local account", func(t *testing.T) {
		hash, _ := HashPassword("realPassword1")
		acct := &Account{ID: 7, Name: "Ahmed Ali", Email: "ahmed@example.com", PasswordHash: hash}

		repo := new(MockAccountRepo)
		repo.On("FindByEmail", mock.Anything, "ahmed@example.com").Return(acct, nil)

		router, _ := setupAuthRouter(repo)

		w := postJSON(router, "/auth/login", gin.H{
			"email_or_phone": "ahmed@example.com",
			"password":       "wrongPassword1",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid email/phone or password")
	})
}

func TestRegisterEndpoint(t *testing.T) {
	payload := gin.H{
		"name":             "Ahmed Ali",
		"email":            "ahmed@example.com",
		"phone":            "0501234567",
		"password":         "password123",
		"confirm_password": "password123",
		"id_number":        "1234567890",
		"agreed_to_terms":  true,
	}

	t.Run("Successful registration", func(t *testing.T) {
		repo := new(MockAccountRepo)
		repo.On("EmailExists", mock.Anything, "ahmed@example.com").Return(false, nil)
		repo.On("Create", mock.Anything, mock.AnythingOfType("auth.Account")).
			Return(&Account{ID: 1, Name: "Ahmed Ali", Email: "ahmed@example.com"}, nil)

		router, sessions := setupAuthRouter(repo)

		w := postJSON(router, "/auth/register", payload)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "ahmed@example.com")
		assert.NotContains(t, w.Body.String(), "password_hash")
		assert.False(t, sessions.Authenticated())
	})

	t.Run("Duplicate email", func(t *testing.T) {
		repo := new(MockAccountRepo)
		repo.On("EmailExists", mock.Anything, "ahmed@example.com").Return(true, nil)

		router, _ := setupAuthRouter(repo)

		w := postJSON(router, "/auth/register", payload)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Password mismatch", func(t *testing.T) {
		router, _ := setupAuthRouter(new(MockAccountRepo))

		bad := gin.H{}
		for k, v := range payload {
			bad[k] = v
		}
		bad["confirm_password"] = "different123"

		w := postJSON(router, "/auth/register", bad)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Passwords do not match")
	})
}

func TestVerifyOTPEndpoint(t *testing.T) {
	payload := gin.H{
		"email":           "ahmed@example.com",
		"name":            "Ahmed Ali",
		"otp_code":        "123456",
		"agreed_to_terms": true,
	}

	t.Run("Successful verification saves session", func(t *testing.T) {
		router, sessions := setupAuthRouter(new(MockAccountRepo))

		w := postJSON(router, "/auth/verify-otp", payload)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, sessions.Authenticated())
	})

	t.Run("Terms not agreed", func(t *testing.T) {
		router, sessions := setupAuthRouter(new(MockAccountRepo))

		bad := gin.H{}
		for k, v := range payload {
			bad[k] = v
		}
		bad["agreed_to_terms"] = false

		w := postJSON(router, "/auth/verify-otp", bad)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "You must agree to the terms to continue")
		assert.False(t, sessions.Authenticated())
	})
}

func TestLogoutEndpoint(t *testing.T) {
	router, sessions := setupAuthRouter(new(MockAccountRepo))

	postJSON(router, "/auth/verify-otp", gin.H{
		"email":           "ahmed@example.com",
		"name":            "Ahmed Ali",
		"otp_code":        "123456",
		"agreed_to_terms": true,
	})
	require.True(t, sessions.Authenticated())

	w := postJSON(router, "/auth/logout", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, sessions.Authenticated())

	// Logging out twice is fine.
	w = postJSON(router, "/auth/logout", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStatusEndpoint(t *testing.T) {
	t.Run("No session", func(t *testing.T) {
		router, _ := setupAuthRouter(new(MockAccountRepo))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/auth/status", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp StatusResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Authenticated)
		assert.False(t, resp.TokenExpired)
		assert.False(t, resp.TokenValid)
	})

	t.Run("Live session", func(t *testing.T) {
		repo := new(MockAccountRepo)
		repo.On("FindByEmail", mock.Anything, "user@example.com").Return(nil, ErrAccountNotFound)

		router, _ := setupAuthRouter(repo)

		postJSON(router, "/auth/login", gin.H{
			"email_or_phone": "user@example.com",
			"password":       "password123",
		})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/auth/status", nil)
		router.ServeHTTP(w, req)

		var resp StatusResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Authenticated)
		assert.False(t, resp.TokenExpired)
		assert.True(t, resp.TokenValid)
	})
}

func TestMeEndpoint(t *testing.T) {
	repo := new(MockAccountRepo)
	repo.On("FindByEmail", mock.Anything, "user@example.com").Return(nil, ErrAccountNotFound)

	router, _ := setupAuthRouter(repo)

	postJSON(router, "/auth/login", gin.H{
		"email_or_phone": "user@example.com",
		"password":       "password123",
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/me", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp MeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.UserEmail)
	assert.Equal(t, "user@example.com", *resp.UserEmail)
	require.NotNil(t, resp.UserName)
	assert.Equal(t, "user", *resp.UserName)
}
