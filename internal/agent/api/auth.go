// В этом файле описаны методы клиента для работы
// с эндпоинтами аутентификации: регистрация, вход, выход, обновление токена
// и получение информации о текущем пользователе.
package api

// User описывает пользователя в ответах сервера.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

// RegisterRequest описывает тело запроса регистрации пользователя.
//
// Name, Email и Password передаются в JSON формате в эндпоинт /auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse описывает ответ сервера при успешной регистрации.
type RegisterResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

// LoginRequest описывает тело запроса входа пользователя.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse описывает ответ сервера с выданным access токеном.
//
// AccessToken используется для авторизации запросов к защищённым эндпоинтам.
// ExpiresIn содержит срок действия токена в секундах.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	User        User   `json:"user"`
}

// LogoutResponse описывает ответ сервера при выходе пользователя.
type LogoutResponse struct {
	Message string `json:"message"`
}

// Register выполняет регистрацию пользователя на сервере.
//
// Метод отправляет POST запрос на /auth/register и возвращает RegisterResponse.
// В случае ошибки возвращает непустую ошибку и пустой ответ.
func (c *Client) Register(name, email, password string) (RegisterResponse, error) {
	var resp RegisterResponse
	err := c.PostJSON("/auth/register", RegisterRequest{Name: name, Email: email, Password: password}, &resp, "")
	return resp, err
}

// Login выполняет вход пользователя и получает access токен.
//
// Метод отправляет POST запрос на /auth/login и возвращает TokenResponse.
// В случае ошибки возвращает непустую ошибку и пустой ответ.
func (c *Client) Login(email, password string) (TokenResponse, error) {
	var resp TokenResponse
	err := c.PostJSON("/auth/login", LoginRequest{Email: email, Password: password}, &resp, "")
	return resp, err
}

// Refresh обменивает текущий access токен на новый.
//
// Токен передаётся в заголовке Authorization: Bearer <token>.
// Сервер принимает и недавно истёкшие токены (в пределах grace-окна),
// поэтому команда работает даже если access токен только что истёк.
func (c *Client) Refresh(accessToken string) (TokenResponse, error) {
	var resp TokenResponse
	err := c.PostJSON("/auth/refresh", nil, &resp, accessToken)
	return resp, err
}

// Me запрашивает информацию о текущем пользователе.
//
// Метод отправляет GET запрос на /auth/me и использует accessToken для авторизации.
func (c *Client) Me(accessToken string) (User, error) {
	var resp User
	err := c.GetJSON("/auth/me", &resp, accessToken)
	return resp, err
}

// Logout отзывает текущий access токен на сервере.
//
// После выхода токен нельзя использовать ни для запросов, ни для refresh.
func (c *Client) Logout(accessToken string) (LogoutResponse, error) {
	var resp LogoutResponse
	err := c.PostJSON("/auth/logout", nil, &resp, accessToken)
	return resp, err
}
