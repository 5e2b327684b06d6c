// Package api содержит HTTP-клиент для взаимодействия с сервером Record Book.
//
// Клиент инкапсулирует базовый URL сервера и настроенный http.Client,
// предоставляя методы для отправки JSON-запросов (POST/GET/PUT/DELETE)
// с авторизацией через Bearer токен.
//
// Особенности:
//   - baseURL нормализуется (обрезаются завершающие "/").
//   - По умолчанию добавляется заголовок Accept: application/json.
//   - Заголовок Content-Type: application/json добавляется только при наличии тела запроса.
//   - При ответах 204 No Content тело не читается и это считается успехом.
//   - Пустое тело ответа (EOF при декодировании) не считается ошибкой.
//   - При ошибочных ответах (не 2xx) возвращается ошибка с текстом тела ответа
//     (если тело пустое — используется res.Status).
//
// ВНИМАНИЕ: NewClient включает InsecureSkipVerify=true (TLS сертификат не проверяется).
// Это допустимо только для разработки и локального окружения.
package api

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client реализует HTTP-клиент для общения с сервером Record Book.
//
// Поля:
//   - baseURL: базовый адрес сервера без завершающего слэша.
//   - http: настроенный http.Client (таймаут, транспорт, TLS).
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient создаёт новый HTTP-клиент для общения с сервером.
//
// Параметры:
//   - baseURL: базовый адрес сервера (например: "https://127.0.0.1:8080").
//
// ВНИМАНИЕ: InsecureSkipVerify=true отключает проверку сертификата и делает TLS
// уязвимым для MITM. Использовать только для локальной разработки/тестов.
func NewClient(baseURL string) *Client {
	tr := &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, // только для dev
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   10 * time.Second,
			Transport: tr,
		},
	}
}

// readAPIErrorBody читает тело ответа сервера и возвращает ошибку с текстом тела.
//
// Используется в случае HTTP-ошибок (не 2xx). Если тело пустое — возвращает
// error со строкой res.Status.
func readAPIErrorBody(res *http.Response) error {
	raw, _ := io.ReadAll(res.Body)
	msg := strings.TrimSpace(string(raw))
	if msg == "" {
		msg = res.Status
	}
	return errors.New(msg)
}

// decodeJSONOrOK декодирует JSON из r в resp.
//
// Если resp == nil — функция ничего не делает и возвращает nil.
// Если тело ответа пустое и json.Decoder вернул io.EOF, это НЕ считается
// ошибкой и возвращается nil.
func decodeJSONOrOK(r io.Reader, resp any) error {
	if resp == nil {
		return nil
	}
	err := json.NewDecoder(r).Decode(resp)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// do выполняет HTTP-запрос с JSON-телом и (опционально) декодирует JSON-ответ.
//
// Параметры:
//   - method: HTTP-метод (GET/POST/PUT/DELETE).
//   - path: путь относительно baseURL (например: "/auth/login").
//   - req: объект для сериализации в JSON. Если req == nil, тело не отправляется
//     и Content-Type не устанавливается.
//   - resp: указатель на структуру для декодирования JSON-ответа.
//     Если resp == nil, тело ответа не декодируется.
//   - authToken: access токен. Если непустой, добавляется заголовок:
//     Authorization: Bearer <token>.
//
// Обработка ответа:
//   - 204 No Content: успех без попытки декодирования тела
//   - прочие 2xx: декодирует JSON в resp (если resp != nil); EOF не ошибка
//   - не 2xx: возвращает ошибку с текстом тела ответа (или res.Status)
func (c *Client) do(method, path string, req any, resp any, authToken string) error {
	var buf bytes.Buffer
	if req != nil {
		if err := json.NewEncoder(&buf).Encode(req); err != nil {
			return err
		}
	}

	r, err := http.NewRequest(method, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	r.Header.Set("Accept", "application/json")
	if req != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	if authToken != "" {
		r.Header.Set("Authorization", "Bearer "+authToken)
	}

	res, err := c.http.Do(r)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return readAPIErrorBody(res)
	}

	// 204/пустое тело — ок
	if res.StatusCode == http.StatusNoContent {
		return nil
	}

	return decodeJSONOrOK(res.Body, resp)
}

// PostJSON выполняет POST-запрос к серверу, сериализуя req в JSON.
func (c *Client) PostJSON(path string, req any, resp any, authToken string) error {
	return c.do(http.MethodPost, path, req, resp, authToken)
}

// GetJSON выполняет GET-запрос к серверу и (опционально) декодирует JSON-ответ.
func (c *Client) GetJSON(path string, resp any, authToken string) error {
	return c.do(http.MethodGet, path, nil, resp, authToken)
}

// PutJSON выполняет PUT-запрос к серверу, сериализуя req в JSON.
func (c *Client) PutJSON(path string, req any, resp any, authToken string) error {
	return c.do(http.MethodPut, path, req, resp, authToken)
}

// DeleteJSON выполняет DELETE-запрос к серверу и (опционально) декодирует JSON-ответ.
func (c *Client) DeleteJSON(path string, resp any, authToken string) error {
	return c.do(http.MethodDelete, path, nil, resp, authToken)
}
