package handler

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"food_order/internal/model"
	"food_order/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var signupBody = map[string]string{
	"name":     "Asha",
	"email":    "a@x.com",
	"mobile":   "9998887770",
	"password": "secret1",
	"address":  "12 street, block B",
}

func TestAuthHandler_Signup(t *testing.T) {
	svc := new(mockAuthService)
	r := newAuthRouter(svc)

	user := &model.User{ID: 1, Name: "Asha", Email: "a@x.com", Mobile: "9998887770", Address: "12 street, block B", PasswordHash: "hash"}
	svc.On("Signup", mock.Anything, model.SignupRequest{
		Name: "Asha", Email: "a@x.com", Mobile: "9998887770", Password: "secret1", Address: "12 street, block B",
	}).Return(user, "tok", nil)

	w := doJSON(t, r, http.MethodPost, "/api/auth/signup", signupBody, "")

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, "tok", body["token"])
	assert.Equal(t, map[string]any{
		"id": float64(1), "name": "Asha", "email": "a@x.com", "mobile": "9998887770", "address": "12 street, block B",
	}, body["user"])
	assert.NotContains(t, w.Body.String(), "hash")
	svc.AssertExpectations(t)
}

func TestAuthHandler_Signup_MissingField(t *testing.T) {
	svc := new(mockAuthService)
	r := newAuthRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/api/auth/signup", map[string]string{"name": "Asha", "email": "a@x.com"}, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "All fields are required", decode(t, w)["error"])
	svc.AssertNotCalled(t, "Signup", mock.Anything, mock.Anything)
}

func TestAuthHandler_Signup_FieldTooLong(t *testing.T) {
	cases := []struct {
		field string
		value string
		want  string
	}{
		{"email", strings.Repeat("a", 95) + "@x.com", "email must be at most 100 characters"},
		{"mobile", strings.Repeat("9", 21), "mobile must be at most 20 characters"},
		{"name", strings.Repeat("n", 101), "name must be at most 100 characters"},
	}
	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			svc := new(mockAuthService)
			r := newAuthRouter(svc)
			body := map[string]string{}
			for k, v := range signupBody {
				body[k] = v
			}
			body[tc.field] = tc.value

			w := doJSON(t, r, http.MethodPost, "/api/auth/signup", body, "")

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tc.want, decode(t, w)["error"])
			svc.AssertNotCalled(t, "Signup", mock.Anything, mock.Anything)
		})
	}
}

func TestAuthHandler_Signup_Conflicts(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{service.ErrEmailAndMobileTaken, "Email and Mobile already registered"},
		{service.ErrEmailTaken, "Email already registered"},
		{service.ErrMobileTaken, "Mobile number already registered"},
	}
	for _, tc := range cases {
		t.Run(tc.want, func(t *testing.T) {
			svc := new(mockAuthService)
			r := newAuthRouter(svc)
			svc.On("Signup", mock.Anything, mock.Anything).Return(nil, "", tc.err)

			w := doJSON(t, r, http.MethodPost, "/api/auth/signup", signupBody, "")

			assert.Equal(t, http.StatusConflict, w.Code)
			assert.Equal(t, tc.want, decode(t, w)["error"])
		})
	}
}

func TestAuthHandler_Signup_ServerError(t *testing.T) {
	svc := new(mockAuthService)
	r := newAuthRouter(svc)
	svc.On("Signup", mock.Anything, mock.Anything).Return(nil, "", errors.New("db down"))

	w := doJSON(t, r, http.MethodPost, "/api/auth/signup", signupBody, "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Signup failed", decode(t, w)["error"])
}

func TestAuthHandler_Login(t *testing.T) {
	svc := new(mockAuthService)
	r := newAuthRouter(svc)
	user := &model.User{ID: 3, Name: "Asha", Email: "a@x.com", Mobile: "9998887770", Address: "12 street, block B"}
	svc.On("Login", mock.Anything, "9998887770", "secret1").Return(user, "tok", nil)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", map[string]string{"mobile": "9998887770", "password": "secret1"}, "")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "tok", body["token"])
	assert.Equal(t, map[string]any{
		"id": float64(3), "name": "Asha", "email": "a@x.com", "mobile": "9998887770",
	}, body["user"])
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	svc := new(mockAuthService)
	r := newAuthRouter(svc)
	svc.On("Login", mock.Anything, "9998887770", "wrong").Return(nil, "", service.ErrInvalidCredentials)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", map[string]string{"mobile": "9998887770", "password": "wrong"}, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", decode(t, w)["error"])
}

func TestAuthHandler_Login_MissingField(t *testing.T) {
	svc := new(mockAuthService)
	r := newAuthRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", map[string]string{"mobile": "9998887770"}, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthHandler_Profile(t *testing.T) {
	svc := new(mockAuthService)
	r := newAuthRouter(svc)
	svc.On("Profile", mock.Anything, int64(5)).Return(&model.User{ID: 5, Name: "Asha", Email: "a@x.com", Mobile: "9998887770"}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/profile", nil, tokenFor(t, 5, model.RoleUser))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{"id": float64(5), "name": "Asha", "email": "a@x.com"}, decode(t, w))
}

func TestAuthHandler_Profile_NoToken(t *testing.T) {
	svc := new(mockAuthService)
	r := newAuthRouter(svc)

	w := doJSON(t, r, http.MethodGet, "/api/profile", nil, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "No token provided", decode(t, w)["error"])
}

func TestAuthHandler_Profile_UserGone(t *testing.T) {
	svc := new(mockAuthService)
	r := newAuthRouter(svc)
	svc.On("Profile", mock.Anything, int64(9)).Return(nil, service.ErrUserNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/profile", nil, tokenFor(t, 9, model.RoleUser))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", decode(t, w)["error"])
}
