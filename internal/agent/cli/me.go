package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewMeCmd создаёт CLI-команду для получения информации о текущем пользователе.
//
// Команда использует сохранённый access токен и выводит id, имя и email
// пользователя, которому принадлежит токен.
//
// Пример использования:
//
//	recordbook me
func NewMeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "me",
		Short: "Показать текущего пользователя",
		Long: `Выводит информацию о пользователе, которому принадлежит access токен.

Пример:
  recordbook me
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds.AccessToken == "" {
				return fmt.Errorf("no access_token in config, run: recordbook login")
			}

			c := NewAPIClient(app.ServerURL)
			user, err := c.Me(app.Creds.AccessToken)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "id=%s\nname=%s\nemail=%s\n", user.ID, user.Name, user.Email)
			return nil
		},
	}

	return cmd
}
