// Package http отвечает за регистрацию HTTP-маршрутов сервера.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - логирование выполнения HTTP-запросов;
//   - подключение проверки JWT access-токенов к защищённым маршрутам.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/IvanChernomyrdin/go-record-book/internal/server/api"
	"github.com/IvanChernomyrdin/go-record-book/internal/server/middleware"
)

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Роутер использует chi.Router и регистрирует:
//   - публичные эндпоинты аутентификации под префиксом /auth;
//   - защищённые JWT маршруты /auth/me и /auth/logout;
//   - открытую CRUD-группу /record (аутентификация не требуется —
//     наблюдаемый контракт исходной системы);
//   - middleware логирования для всех запросов.
func NewRouter(h *api.Handler) http.Handler {
	r := chi.NewRouter()
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware())

	// добавляем swagger
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Публичные пути
	r.Post("/auth/register", h.Register)
	r.Post("/auth/login", h.Login)
	// refresh стоит вне auth-middleware: он должен принимать токен,
	// просроченный в пределах grace-окна. Токен всё равно обязателен.
	r.Post("/auth/refresh", h.Refresh)

	// Защищённые пути
	r.Group(func(r chi.Router) {
		// проверка access токена
		r.Use(h.Verifier.AuthMiddleware())
		r.Get("/auth/me", h.Me)
		r.Post("/auth/logout", h.Logout)
	})

	// CRUD запросы для записей
	r.Route("/record", func(r chi.Router) {
		r.Get("/", h.Index)      // Список всех записей
		r.Post("/", h.Store)     // Создание записи
		r.Get("/{id}", h.Show)   // Одна запись по id
		r.Get("/{id}/edit", h.Edit)
		r.Put("/{id}/edit", h.Update)   // полный update, передаём id в пути
		r.Patch("/{id}/edit", h.Update) // PATCH — алиас PUT, семантика та же (full replace)
		r.Delete("/{id}", h.Destroy)    // удаляем запись по id
	})

	return r
}
