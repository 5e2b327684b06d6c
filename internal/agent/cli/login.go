package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-record-book/internal/agent/config"
)

// NewLoginCmd создаёт CLI-команду для входа пользователя в систему.
//
// Команда выполняет аутентификацию пользователя на сервере Record Book,
// получает access токен и сохраняет его в локальный конфигурационный файл.
//
// Обязателен флаг --email. Пароль запрашивается интерактивно (скрытый ввод)
// либо читается из STDIN при флаге --password-stdin.
//
// Пример использования:
//
//	recordbook login --email test@example.com
//
// В случае успешного выполнения токен сохраняется локально, а пользователю
// выводится сообщение об успешном входе.
func NewLoginCmd(app *App) *cobra.Command {
	var (
		email             string
		passwordFromStdin bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Логин пользователя (получить access токен)",
		Long: `Логин пользователя.

Пример:
  recordbook login --email test@example.com
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := ReadPassword(cmd, passwordFromStdin)
			if err != nil {
				return err
			}

			// создаём API-клиент для общения с сервером
			c := NewAPIClient(app.ServerURL)
			// выполняем логин пользователя
			resp, err := c.Login(email, password)
			if err != nil {
				return err
			}

			// сохраняем полученный токен в состоянии приложения
			app.Creds.AccessToken = resp.AccessToken
			app.Creds.ExpiresIn = resp.ExpiresIn

			// сохраняем токен в локальный конфигурационный файл
			if err := config.Save(app.CredsPath, app.Creds); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "login ok as %s (token saved)\n", resp.User.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email for login")
	cmd.Flags().BoolVar(&passwordFromStdin, "password-stdin", false, "read password from STDIN")
	cmd.MarkFlagRequired("email")

	return cmd
}
