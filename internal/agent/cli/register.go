package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRegisterCmd создаёт CLI-команду для регистрации нового пользователя.
//
// Команда выполняет регистрацию пользователя на сервере Record Book
// с использованием имени, email и пароля. Обязательны флаги --name и --email.
// Пароль запрашивается интерактивно (скрытый ввод) либо читается из STDIN
// при флаге --password-stdin.
//
// Пример использования:
//
//	recordbook register --name Ivan --email test@example.com
//	echo "StrongPass123" | recordbook register --name Ivan --email test@example.com --password-stdin
//
// В случае успешной регистрации пользователю выводится сообщение
// об успешном завершении операции.
func NewRegisterCmd(app *App) *cobra.Command {
	var (
		name              string
		email             string
		passwordFromStdin bool
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Регистрация нового пользователя",
		Long: `Регистрация нового пользователя на сервере.

Пример:
  recordbook register --name Ivan --email test@example.com
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := ReadPassword(cmd, passwordFromStdin)
			if err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			// выполняет добавление нового пользователя в бд
			resp, err := c.Register(name, email, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (id=%s)\n", resp.Message, resp.User.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "name for registration")
	cmd.Flags().StringVar(&email, "email", "", "email for registration")
	cmd.Flags().BoolVar(&passwordFromStdin, "password-stdin", false, "read password from STDIN")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")

	return cmd
}
