package handlers_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"account-service/app/domain"
	mock_port "account-service/app/mocks"
	"account-service/app/rest/handlers"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func postJSON(path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp handlers.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Message, "failure body must carry the message key")
	return resp.Message
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		setup       func(account *mock_port.MockAccountUsecase)
		wantStatus  int
		wantToken   string
		wantMessage string
	}{
		{
			name: "valid credentials return the token",
			body: `{"email":"user@example.com","password":"secret"}`,
			setup: func(account *mock_port.MockAccountUsecase) {
				account.EXPECT().
					Login(gomock.Any(), domain.Credentials{Email: "user@example.com", Password: "secret"}).
					Return("session-token", nil)
			},
			wantStatus: http.StatusOK,
			wantToken:  "session-token",
		},
		{
			name:        "missing password never reaches the backend",
			body:        `{"email":"user@example.com"}`,
			setup:       func(account *mock_port.MockAccountUsecase) {},
			wantStatus:  http.StatusBadRequest,
			wantMessage: handlers.MsgLoginFailed,
		},
		{
			name:        "malformed body never reaches the backend",
			body:        `{not json`,
			setup:       func(account *mock_port.MockAccountUsecase) {},
			wantStatus:  http.StatusBadRequest,
			wantMessage: handlers.MsgLoginFailed,
		},
		{
			name: "unknown email gets the dedicated message",
			body: `{"email":"ghost@example.com","password":"secret"}`,
			setup: func(account *mock_port.MockAccountUsecase) {
				account.EXPECT().
					Login(gomock.Any(), gomock.Any()).
					Return("", domain.NewGatewayError(domain.ErrUserNotFound, "sign_in", ""))
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: handlers.MsgLoginUserNotFound,
		},
		{
			name: "wrong password gets the dedicated message",
			body: `{"email":"user@example.com","password":"bad"}`,
			setup: func(account *mock_port.MockAccountUsecase) {
				account.EXPECT().
					Login(gomock.Any(), gomock.Any()).
					Return("", domain.NewGatewayError(domain.ErrWrongPassword, "sign_in", ""))
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: handlers.MsgLoginWrongPassword,
		},
		{
			name: "provider failure stays generic",
			body: `{"email":"user@example.com","password":"secret"}`,
			setup: func(account *mock_port.MockAccountUsecase) {
				account.EXPECT().
					Login(gomock.Any(), gomock.Any()).
					Return("", domain.NewGatewayError(domain.ErrIdentityProvider, "sign_in", "upstream 502"))
			},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: handlers.MsgLoginFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			account := mock_port.NewMockAccountUsecase(ctrl)
			tt.setup(account)

			handler := handlers.NewAuthHandler(account, newTestLogger())
			c, rec := postJSON("/login", tt.body)

			require.NoError(t, handler.Login(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantToken != "" {
				var resp handlers.TokenResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantToken, resp.Token)
			} else {
				assert.Equal(t, tt.wantMessage, decodeMessage(t, rec))
			}
		})
	}
}

func TestAuthHandler_Signup(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		setup       func(account *mock_port.MockAccountUsecase)
		wantStatus  int
		wantToken   string
		wantMessage string
	}{
		{
			name: "valid signup returns 201 with the token",
			body: `{"email":"new@example.com","password":"secret","confirmPassword":"secret"}`,
			setup: func(account *mock_port.MockAccountUsecase) {
				account.EXPECT().
					Signup(gomock.Any(), domain.SignupRequest{
						Email:           "new@example.com",
						Password:        "secret",
						ConfirmPassword: "secret",
					}).
					Return("fresh-token", nil)
			},
			wantStatus: http.StatusCreated,
			wantToken:  "fresh-token",
		},
		{
			name:        "invalid email never reaches the backend",
			body:        `{"email":"not-an-email","password":"secret","confirmPassword":"secret"}`,
			setup:       func(account *mock_port.MockAccountUsecase) {},
			wantStatus:  http.StatusBadRequest,
			wantMessage: handlers.MsgSignupInvalid,
		},
		{
			name:        "password mismatch never reaches the backend",
			body:        `{"email":"new@example.com","password":"secret","confirmPassword":"other"}`,
			setup:       func(account *mock_port.MockAccountUsecase) {},
			wantStatus:  http.StatusBadRequest,
			wantMessage: handlers.MsgSignupInvalid,
		},
		{
			name: "existing profile maps to the in-use message",
			body: `{"email":"taken@example.com","password":"secret","confirmPassword":"secret"}`,
			setup: func(account *mock_port.MockAccountUsecase) {
				account.EXPECT().
					Signup(gomock.Any(), gomock.Any()).
					Return("", domain.NewGatewayError(domain.ErrProfileExists, "signup", ""))
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: handlers.MsgSignupEmailInUse,
		},
		{
			name: "provider conflict gets the short conflict message",
			body: `{"email":"taken@example.com","password":"secret","confirmPassword":"secret"}`,
			setup: func(account *mock_port.MockAccountUsecase) {
				account.EXPECT().
					Signup(gomock.Any(), gomock.Any()).
					Return("", domain.NewGatewayError(domain.ErrEmailAlreadyInUse, "create_account", ""))
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: handlers.MsgSignupConflict,
		},
		{
			name: "store failure stays generic",
			body: `{"email":"new@example.com","password":"secret","confirmPassword":"secret"}`,
			setup: func(account *mock_port.MockAccountUsecase) {
				account.EXPECT().
					Signup(gomock.Any(), gomock.Any()).
					Return("", domain.NewGatewayError(domain.ErrProfileStore, "create", "insert failed"))
			},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: handlers.MsgSignupFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			account := mock_port.NewMockAccountUsecase(ctrl)
			tt.setup(account)

			handler := handlers.NewAuthHandler(account, newTestLogger())
			c, rec := postJSON("/signup", tt.body)

			require.NoError(t, handler.Signup(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantToken != "" {
				var resp handlers.TokenResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantToken, resp.Token)
			} else {
				assert.Equal(t, tt.wantMessage, decodeMessage(t, rec))
			}
		})
	}
}
