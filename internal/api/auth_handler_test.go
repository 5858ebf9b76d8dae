package api_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pantrydev/pantry-api/internal/api"
	"github.com/pantrydev/pantry-api/internal/mocks"
	"github.com/pantrydev/pantry-api/internal/service"
)

func newAuthRouter(userStore *mocks.MockUserStore, jwtService *mocks.MockJWTService) http.Handler {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	authService := service.NewAuthService(userStore, &mocks.MockPasswordHasher{}, jwtService, logger)
	authHandler := api.NewAuthHandler(authService, logger)
	userHandler := api.NewUserHandler(
		service.NewUserService(userStore, &mocks.MockPasswordHasher{}, logger), logger)

	r := chi.NewRouter()
	r.Post("/user/create", userHandler.Create)
	r.Post("/auth/login", authHandler.Login)
	return r
}

func TestLogin(t *testing.T) {
	t.Parallel()

	register := func(t *testing.T, router http.Handler) {
		t.Helper()
		w := doJSON(t, router, http.MethodPost, "/user/create",
			`{"email":"alice@example.com","password":"hunter22"}`)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	t.Run("valid credentials return an access token", func(t *testing.T) {
		router := newAuthRouter(mocks.NewMockUserStore(), &mocks.MockJWTService{Token: "signed-token"})
		register(t, router)

		w := doJSON(t, router, http.MethodPost, "/auth/login",
			`{"email":"alice@example.com","password":"hunter22"}`)

		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "signed-token", resp["access_token"])
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		router := newAuthRouter(mocks.NewMockUserStore(), &mocks.MockJWTService{})
		register(t, router)

		unknown := doJSON(t, router, http.MethodPost, "/auth/login",
			`{"email":"nobody@example.com","password":"hunter22"}`)
		wrongPassword := doJSON(t, router, http.MethodPost, "/auth/login",
			`{"email":"alice@example.com","password":"wrong"}`)

		require.Equal(t, http.StatusBadRequest, unknown.Code)
		require.Equal(t, http.StatusBadRequest, wrongPassword.Code)

		var a, b map[string]any
		require.NoError(t, json.Unmarshal(unknown.Body.Bytes(), &a))
		require.NoError(t, json.Unmarshal(wrongPassword.Body.Bytes(), &b))
		assert.Equal(t, "User or password is incorrect", a["error"])
		assert.Equal(t, a["error"], b["error"])
	})

	t.Run("invalid payloads are rejected", func(t *testing.T) {
		router := newAuthRouter(mocks.NewMockUserStore(), &mocks.MockJWTService{})

		tests := []struct {
			name string
			body string
		}{
			{"missing email", `{"password":"hunter22"}`},
			{"missing password", `{"email":"alice@example.com"}`},
			{"malformed JSON", `{`},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				w := doJSON(t, router, http.MethodPost, "/auth/login", tc.body)
				assert.Equal(t, http.StatusBadRequest, w.Code)
			})
		}
	})
}
