package cli

import (
	"github.com/spf13/cobra"
)

// RecordGet создаёт CLI-команду для просмотра одной записи по id.
//
// Пример использования:
//
//	recordbook record get 42
//
// Если записи нет, сервер отвечает 404 и команда завершается с ошибкой
// с текстом ответа сервера.
func RecordGet(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Показать запись по id",
		Long: `Загружает запись с сервера и выводит её поля.

Пример:
  recordbook record get 42
`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRecordID(args[0])
			if err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			resp, err := c.GetRecord(id)
			if err != nil {
				return err
			}

			printRecord(cmd, resp.Record)
			return nil
		},
	}

	return cmd
}
