package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-record-book/internal/agent/api"
)

// RecordUpdate создаёт CLI-команду для обновления записи по id.
//
// Обновление выполняет полную замену: передаются все четыре поля.
// Флаги, которые пользователь не указал, подставляются из текущего
// состояния записи (команда сначала загружает запись через /record/{id}/edit).
//
// Пример использования:
//
//	recordbook record update 42 --phone 9007654321
//	recordbook record update 42 --name "Ivan Petrov" --course "Физика" --email ivan@example.com --phone 9001234567
//
// Если записи нет, сервер отвечает 404 и команда завершается с ошибкой.
func RecordUpdate(app *App) *cobra.Command {
	var (
		name   string
		course string
		email  string
		phone  string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Обновить запись по id",
		Long: `Обновляет запись на сервере (полная замена всех полей).

Не указанные флаги берутся из текущего состояния записи.

Пример:
  recordbook record update 42 --phone 9007654321
`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRecordID(args[0])
			if err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)

			// текущее состояние записи — база для полной замены
			current, err := c.EditRecord(id)
			if err != nil {
				return err
			}

			payload := api.RecordPayload{
				Name:   current.Records.Name,
				Course: current.Records.Course,
				Email:  current.Records.Email,
				Phone:  current.Records.Phone,
			}
			if cmd.Flags().Changed("name") {
				payload.Name = name
			}
			if cmd.Flags().Changed("course") {
				payload.Course = course
			}
			if cmd.Flags().Changed("email") {
				payload.Email = email
			}
			if cmd.Flags().Changed("phone") {
				payload.Phone = phone
			}

			resp, err := c.UpdateRecord(id, payload)
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

	return cmd
}
