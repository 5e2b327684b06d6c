package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-record-book/internal/agent/api"
)

// RecordAdd создаёт CLI-команду для создания новой записи на сервере.
//
// Обязательные флаги:
//
//	--name    — имя студента
//	--course  — курс
//	--email   — email студента
//	--phone   — телефон (ровно 10 цифр)
//
// Пример использования:
//
//	recordbook record add --name "Ivan Petrov" --course "Математика" --email ivan@example.com --phone 9001234567
//
// При ошибках валидации сервер возвращает 422 и команда завершается
// с ошибкой, содержащей список сообщений по полям.
func RecordAdd(app *App) *cobra.Command {
	var (
		name   string
		course string
		email  string
		phone  string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Создать новую запись",
		Long: `Создаёт новую запись на сервере.

Пример:
  recordbook record add --name "Ivan Petrov" --course "Математика" --email ivan@example.com --phone 9001234567
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := NewAPIClient(app.ServerURL)
			resp, err := c.CreateRecord(api.RecordPayload{
				Name:   name,
				Course: course,
				Email:  email,
				Phone:  phone,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "student name")
	cmd.Flags().StringVar(&course, "course", "", "course")
	cmd.Flags().StringVar(&email, "email", "", "student email")
	cmd.Flags().StringVar(&phone, "phone", "", "phone (10 digits)")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("course")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("phone")

	return cmd
}
