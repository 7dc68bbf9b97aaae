package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passport/config"
	"passport/internal/delivery/http/middleware"
	"passport/internal/delivery/http/validator"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/errors"
	"passport/internal/infra/auth"
	"passport/internal/usecase"
)

// stubUsecase lets each test script the business layer's answers.
type stubUsecase struct {
	registerFn func(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error)
	loginFn    func(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error)
	listFn     func(ctx context.Context) ([]*usecase.UserOutput, error)
}

func (s *stubUsecase) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	return s.registerFn(ctx, input)
}

func (s *stubUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	return s.loginFn(ctx, input)
}

func (s *stubUsecase) ListUsers(ctx context.Context) ([]*usecase.UserOutput, error) {
	return s.listFn(ctx)
}

// newTestEcho mirrors the server wiring: validator, central error handler and
// the user routes.
func newTestEcho(t *testing.T, uc usecase.UserUsecase) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()

	cfg := &config.Config{}
	cfg.SecretKey.Session = "test_session_secret_key_very_long_for_testing"
	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	h := NewUserHandler(uc, logger)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	usersGroup := e.Group("/users")
	usersGroup.POST("/register", h.Register)
	usersGroup.POST("/login", h.Login)
	usersGroup.GET("/", h.ListUsers)
	usersGroup.GET("/me", h.Me, authMiddleware.Authenticate)

	return e
}

func doJSON(e *echo.Echo, method, path, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestUserHandler_Register(t *testing.T) {
	uc := &stubUsecase{
		registerFn: func(_ context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
			return &usecase.RegisterOutput{User: &usecase.UserOutput{
				ID:    uuid.New(),
				Name:  input.Name,
				Email: input.Email,
			}}, nil
		},
	}
	e := newTestEcho(t, uc)

	rec := doJSON(e, http.MethodPost, "/users/register",
		`{"name":"Ann","email":"ann@x.com","password":"secret123","passwordConfirmation":"secret123"}`, "")

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "User created with success", body["message"])
	// No token on registration.
	assert.NotContains(t, body, "accessToken")
}

func TestUserHandler_Register_DuplicateEmail(t *testing.T) {
	uc := &stubUsecase{
		registerFn: func(context.Context, *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
			return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "registration failed")
		},
	}
	e := newTestEcho(t, uc)

	rec := doJSON(e, http.MethodPost, "/users/register",
		`{"name":"Ann","email":"ann@x.com","password":"secret123","passwordConfirmation":"secret123"}`, "")

	assert.Equal(t, http.StatusConflict, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "User already registered with this email address", body["message"])
}

func TestUserHandler_Register_ValidationErrors(t *testing.T) {
	uc := &stubUsecase{
		registerFn: func(context.Context, *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
			t.Fatal("usecase must not be reached on validation failure")

			return nil, nil
		},
	}
	e := newTestEcho(t, uc)

	rec := doJSON(e, http.MethodPost, "/users/register",
		`{"name":"Ann","email":"not-an-email","password":"secret123","passwordConfirmation":"different"}`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Validation error", body["message"])

	fields, ok := body["errors"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "passwordConfirmation")
}

func TestUserHandler_Login(t *testing.T) {
	uc := &stubUsecase{
		loginFn: func(context.Context, *usecase.LoginInput) (*usecase.LoginOutput, error) {
			return &usecase.LoginOutput{AccessToken: "header.payload.signature"}, nil
		},
	}
	e := newTestEcho(t, uc)

	rec := doJSON(e, http.MethodPost, "/users/login",
		`{"email":"ann@x.com","password":"secret123"}`, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "header.payload.signature", body["accessToken"])
}

func TestUserHandler_Login_BadCredentials(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantMessage string
	}{
		{
			name:        "unknown email",
			err:         domainerrors.ErrUserNotRegistered,
			wantMessage: "User not registered with this email",
		},
		{
			name:        "wrong password",
			err:         domainerrors.ErrInvalidCredentials,
			wantMessage: "Invalid Email or password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &stubUsecase{
				loginFn: func(context.Context, *usecase.LoginInput) (*usecase.LoginOutput, error) {
					return nil, errors.Wrap(tt.err, "login failed")
				},
			}
			e := newTestEcho(t, uc)

			rec := doJSON(e, http.MethodPost, "/users/login",
				`{"email":"ann@x.com","password":"secret123"}`, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, tt.wantMessage, body["message"])
		})
	}
}

func TestUserHandler_ListUsers(t *testing.T) {
	uc := &stubUsecase{
		listFn: func(context.Context) ([]*usecase.UserOutput, error) {
			return []*usecase.UserOutput{
				{ID: uuid.New(), Name: "Ann", Email: "ann@x.com", CreatedAt: time.Now()},
				{ID: uuid.New(), Name: "Bob", Email: "bob@x.com", CreatedAt: time.Now()},
			}, nil
		},
	}
	e := newTestEcho(t, uc)

	rec := doJSON(e, http.MethodGet, "/users/", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Users registered", body["message"])

	users, ok := body["users"].([]any)
	require.True(t, ok)
	assert.Len(t, users, 2)

	first, ok := users[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Ann", first["name"])
	assert.NotContains(t, first, "passwordHash")
	assert.NotContains(t, first, "passwordSalt")
}

func TestUserHandler_ListUsers_Empty(t *testing.T) {
	uc := &stubUsecase{
		listFn: func(context.Context) ([]*usecase.UserOutput, error) {
			return nil, nil
		},
	}
	e := newTestEcho(t, uc)

	rec := doJSON(e, http.MethodGet, "/users/", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "No users registered", body["message"])
}

func TestUserHandler_Me(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Session = "test_session_secret_key_very_long_for_testing"
	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	user := &entity.User{ID: uuid.New(), Name: "Ann", Email: "ann@x.com"}
	token, err := tokenService.Issue(user)
	require.NoError(t, err)

	e := newTestEcho(t, &stubUsecase{})

	rec := doJSON(e, http.MethodGet, "/users/me", "", token)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, user.ID.String(), body["id"])
	assert.Equal(t, "Ann", body["name"])
	assert.Equal(t, "ann@x.com", body["email"])
}

func TestUserHandler_Me_Unauthorized(t *testing.T) {
	e := newTestEcho(t, &stubUsecase{})

	tests := []struct {
		name        string
		token       string
		header      string
		wantMessage string
	}{
		{
			name:        "missing header",
			wantMessage: "Authorization header is missing",
		},
		{
			name:        "not a bearer token",
			header:      "Basic abc123",
			wantMessage: "Invalid token format, must be Bearer token",
		},
		{
			name:        "garbage token",
			token:       "not.a.token",
			wantMessage: "Invalid or expired token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
			if tt.token != "" {
				req.Header.Set(echo.HeaderAuthorization, "Bearer "+tt.token)
			}
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, tt.wantMessage, body["message"])
		})
	}
}
