package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RecordList создаёт CLI-команду для вывода всех записей.
//
// Команда загружает список записей с сервера и выводит их построчно
// в формате: id, имя, курс, email, телефон.
//
// Пример использования:
//
//	recordbook record list
//
// Если записей нет, сервер отвечает 404 и команда завершается с ошибкой
// с текстом ответа сервера.
func RecordList(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Список всех записей",
		Long: `Выводит все записи с сервера.

Пример:
  recordbook record list
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := NewAPIClient(app.ServerURL)
			resp, err := c.ListRecords()
			if err != nil {
				return err
			}

			for _, rec := range resp.Records {
				fmt.Fprintf(
					cmd.OutOrStdout(),
					"%d\t%s\t%s\t%s\t%s\n",
					rec.ID, rec.Name, rec.Course, rec.Email, rec.Phone,
				)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "total: %d records\n", len(resp.Records))
			return nil
		},
	}

	return cmd
}
