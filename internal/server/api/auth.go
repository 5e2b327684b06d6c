// HTTP-хендлеры регистрации, логина, logout, refresh и me
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/IvanChernomyrdin/go-record-book/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-record-book/internal/server/models"
	"github.com/IvanChernomyrdin/go-record-book/internal/server/validation"
	serr "github.com/IvanChernomyrdin/go-record-book/internal/shared/errors"
)

// RegisterRequest описывает тело запроса регистрации пользователя.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=191"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// RegisterResponse описывает успешный ответ регистрации.
//
// user сериализуется без хэша пароля (PasswordHash помечен json:"-").
type RegisterResponse struct {
	Message string      `json:"message"`
	User    models.User `json:"user"`
}

// LoginRequest описывает тело запроса входа пользователя.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// TokenResponse — ответ login и refresh: токен + данные пользователя.
type TokenResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"` // всегда "bearer"
	ExpiresIn   int64       `json:"expires_in"` // секунды
	User        models.User `json:"user"`
}

// LogoutResponse описывает успешный ответ logout.
type LogoutResponse struct {
	Message string `json:"message"`
}

// Register обрабатывает регистрацию пользователя.
//
// Ответы:
//   - 201 Created: регистрация успешна, в теле созданный пользователь;
//   - 400 Bad Request: неверный JSON или ошибки валидации ({"status":400,"errors":{...}});
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Register a new user
// @Description  Registers a new user with name, email and password.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Register request"
// @Success      201 {object} RegisterResponse
// @Failure      400 {object} ValidationErrorResponse "Validation errors"
// @Failure      500 {object} StatusMessageResponse "Internal server error"
// @Router       /auth/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteStatusMessage(w, http.StatusBadRequest, serr.ErrBadJSON.Error())
		return
	}

	if errs := validation.Struct(req); errs != nil {
		WriteValidationErrors(w, http.StatusBadRequest, errs)
		return
	}

	user, err := h.Svc.Auth.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			// занятый email приходит из сервиса той же формой, что и
			// остальные ошибки валидации
			WriteValidationErrors(w, http.StatusBadRequest, verrs)
			return
		}
		h.Log.Logger.Sugar().Errorw("register failed", "error", err)
		WriteStatusMessage(w, http.StatusInternalServerError, MsgSomethingWentWrong)
		return
	}

	WriteJSON(w, http.StatusCreated, RegisterResponse{
		Message: "User Successfully Registered",
		User:    user,
	})
}

// Login обрабатывает вход пользователя и выдачу access-токена.
//
// Ответы:
//   - 200 OK: {"access_token","token_type":"bearer","expires_in","user"};
//   - 400 Bad Request: неверный JSON или ошибки валидации;
//   - 401 Unauthorized: {"error":"Unauthorized"} — неверные учётные данные;
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Login
// @Description  Authenticates a user and returns a bearer token bundle.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login request"
// @Success      200 {object} TokenResponse
// @Failure      400 {object} ValidationErrorResponse "Validation errors"
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Router       /auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteStatusMessage(w, http.StatusBadRequest, serr.ErrBadJSON.Error())
		return
	}

	if errs := validation.Struct(req); errs != nil {
		WriteValidationErrors(w, http.StatusBadRequest, errs)
		return
	}

	user, token, expiresIn, err := h.Svc.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, serr.ErrInvalidCredentials) {
			WriteJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
			return
		}
		h.Log.Logger.Sugar().Errorw("login failed", "error", err)
		WriteStatusMessage(w, http.StatusInternalServerError, MsgSomethingWentWrong)
		return
	}

	WriteJSON(w, http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   expiresIn,
		User:        user,
	})
}

// Me возвращает данные текущего пользователя.
//
// Требует JWT-аутентификацию (userID берётся из контекста middleware).
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} models.User
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Router       /auth/me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	user, err := h.Svc.Auth.Me(r.Context(), userID)
	if err != nil {
		// пользователь из валидного токена должен существовать
		h.Log.Logger.Sugar().Errorw("me failed", "error", err, "user_id", userID.String())
		WriteStatusMessage(w, http.StatusInternalServerError, MsgSomethingWentWrong)
		return
	}

	WriteJSON(w, http.StatusOK, user)
}

// Refresh выдаёт новый access-токен взамен текущего.
//
// Текущий токен передаётся в Authorization и становится недействительным:
// refresh одноразовый. Токен принимается и чуть-чуть просроченным
// (grace-окно), поэтому маршрут стоит вне auth-middleware.
//
// Ответы:
//   - 200 OK: тот же формат, что и login;
//   - 401 Unauthorized: токен недействителен/просрочен сверх grace/отозван.
//
// @Summary      Refresh token
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} TokenResponse
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Router       /auth/refresh [post]
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	tokenStr := middleware.ExtractBearer(r.Header.Get("Authorization"))
	if tokenStr == "" {
		WriteJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	userID, token, expiresIn, err := h.Svc.Tokens.Refresh(r.Context(), tokenStr)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrUnauthorized),
			errors.Is(err, serr.ErrTokenExpired),
			errors.Is(err, serr.ErrTokenRevoked):
			WriteJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		default:
			h.Log.Logger.Sugar().Errorw("refresh failed", "error", err)
			WriteStatusMessage(w, http.StatusInternalServerError, MsgSomethingWentWrong)
		}
		return
	}

	user, err := h.Svc.Auth.Me(r.Context(), userID)
	if err != nil {
		h.Log.Logger.Sugar().Errorw("refresh: load user failed", "error", err, "user_id", userID.String())
		WriteStatusMessage(w, http.StatusInternalServerError, MsgSomethingWentWrong)
		return
	}

	WriteJSON(w, http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   expiresIn,
		User:        user,
	})
}

// Logout отзывает текущий access-токен.
//
// После logout токен не проходит ни Verify, ни Refresh — до конца своего
// срока jti лежит в хранилище отозванных.
//
// Ответы:
//   - 200 OK: {"message":"User Logged Out"};
//   - 401 Unauthorized: без валидного токена (middleware).
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} LogoutResponse
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Router       /auth/logout [post]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	tokenStr := middleware.ExtractBearer(r.Header.Get("Authorization"))
	if tokenStr == "" {
		WriteJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.Svc.Tokens.Revoke(r.Context(), tokenStr); err != nil {
		// токен уже прошёл middleware, так что здесь остаются только
		// внутренние ошибки хранилища
		h.Log.Logger.Sugar().Errorw("logout failed", "error", err)
		WriteStatusMessage(w, http.StatusInternalServerError, MsgSomethingWentWrong)
		return
	}

	WriteJSON(w, http.StatusOK, LogoutResponse{Message: "User Logged Out"})
}
