package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-record-book/internal/agent/config"
)

// NewLogoutCmd создаёт CLI-команду для выхода пользователя.
//
// Команда отзывает сохранённый access токен на сервере и очищает
// локальный конфигурационный файл. После выхода токен нельзя
// использовать ни для запросов, ни для refresh.
//
// Пример использования:
//
//	recordbook logout
func NewLogoutCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Выход пользователя (отозвать access токен)",
		Long: `Отзывает access токен на сервере и удаляет его из локального конфига.

Пример:
  recordbook logout
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds.AccessToken == "" {
				return fmt.Errorf("no access_token in config, run: recordbook login")
			}

			c := NewAPIClient(app.ServerURL)
			resp, err := c.Logout(app.Creds.AccessToken)
			if err != nil {
				return err
			}

			// локальный токен очищаем в любом случае после успешного logout
			app.Creds.AccessToken = ""
			app.Creds.ExpiresIn = 0
			if err := config.Save(app.CredsPath, app.Creds); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
			return nil
		},
	}

	return cmd
}
