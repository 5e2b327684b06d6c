// В этом файле описаны методы клиента для работы с записями
// студентов: список, создание, просмотр, обновление и удаление.
//
// Эндпоинты /record/* не требуют авторизации, поэтому access токен
// в запросы не передаётся.
package api

import "fmt"

// Record описывает запись студента в ответах сервера.
type Record struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Course    string `json:"course"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// RecordPayload описывает тело запроса создания/обновления записи.
//
// Обновление выполняет полную замену: передаются все четыре поля.
type RecordPayload struct {
	Name   string `json:"name"`
	Course string `json:"course"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
}

// RecordListResponse описывает ответ сервера со списком записей.
type RecordListResponse struct {
	Status  int      `json:"status"`
	Records []Record `json:"records"`
}

// RecordResponse описывает ответ сервера с одной записью.
type RecordResponse struct {
	Status int    `json:"status"`
	Record Record `json:"record"`
}

// RecordEditResponse описывает ответ сервера для формы редактирования.
//
// Сервер кладёт одиночную запись под ключ "records".
type RecordEditResponse struct {
	Status  int    `json:"status"`
	Records Record `json:"records"`
}

// StatusMessageResponse описывает ответ сервера со статусом и сообщением.
type StatusMessageResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// ListRecords загружает все записи с сервера.
//
// Выполняет запрос GET /record. Если записей нет, сервер отвечает 404
// и метод возвращает ошибку с текстом тела ответа.
func (c *Client) ListRecords() (RecordListResponse, error) {
	var resp RecordListResponse
	err := c.GetJSON("/record", &resp, "")
	return resp, err
}

// CreateRecord создаёт новую запись на сервере.
//
// Выполняет запрос POST /record. При ошибках валидации сервер отвечает 422
// и метод возвращает ошибку с текстом тела ответа.
func (c *Client) CreateRecord(req RecordPayload) (StatusMessageResponse, error) {
	var resp StatusMessageResponse
	err := c.PostJSON("/record", req, &resp, "")
	return resp, err
}

// GetRecord загружает запись по ID.
//
// Выполняет запрос GET /record/{id}.
func (c *Client) GetRecord(id int64) (RecordResponse, error) {
	var resp RecordResponse
	err := c.GetJSON(fmt.Sprintf("/record/%d", id), &resp, "")
	return resp, err
}

// EditRecord загружает запись по ID для редактирования.
//
// Выполняет запрос GET /record/{id}/edit.
func (c *Client) EditRecord(id int64) (RecordEditResponse, error) {
	var resp RecordEditResponse
	err := c.GetJSON(fmt.Sprintf("/record/%d/edit", id), &resp, "")
	return resp, err
}

// UpdateRecord обновляет запись по ID (полная замена всех полей).
//
// Выполняет запрос PUT /record/{id}/edit.
func (c *Client) UpdateRecord(id int64, req RecordPayload) (StatusMessageResponse, error) {
	var resp StatusMessageResponse
	err := c.PutJSON(fmt.Sprintf("/record/%d/edit", id), req, &resp, "")
	return resp, err
}

// DeleteRecord удаляет запись по ID.
//
// Выполняет запрос DELETE /record/{id}.
func (c *Client) DeleteRecord(id int64) (StatusMessageResponse, error) {
	var resp StatusMessageResponse
	err := c.DeleteJSON(fmt.Sprintf("/record/%d", id), &resp, "")
	return resp, err
}
