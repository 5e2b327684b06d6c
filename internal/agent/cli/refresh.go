package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-record-book/internal/agent/config"
)

// NewRefreshCmd создаёт CLI-команду для обновления access токена.
//
// Команда обменивает сохранённый access токен на новый через /auth/refresh
// и сохраняет обновлённый токен в локальный конфигурационный файл.
// Старый токен после обмена становится недействительным (refresh одноразовый).
//
// Команда не принимает аргументов. Перед выполнением требуется,
// чтобы токен уже был сохранён (например, после выполнения команды login).
//
// Пример использования:
//
//	recordbook refresh
//
// Если токен отсутствует в конфигурации, команда завершится
// с ошибкой и предложит выполнить повторный вход (login).
func NewRefreshCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Обновить access токен",
		Long: `Обменивает текущий access токен на новый.

Пример:
  recordbook refresh
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds.AccessToken == "" {
				return fmt.Errorf("no access_token in config, run: recordbook login")
			}

			c := NewAPIClient(app.ServerURL)
			// генерирует новый jwt взамен текущего
			resp, err := c.Refresh(app.Creds.AccessToken)
			if err != nil {
				return err
			}
			// сохраняет в структуру
			app.Creds.AccessToken = resp.AccessToken
			app.Creds.ExpiresIn = resp.ExpiresIn
			// сохраняет локально
			if err := config.Save(app.CredsPath, app.Creds); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "refresh ok (token updated)")
			return nil
		},
	}

	return cmd
}
