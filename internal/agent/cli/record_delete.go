package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RecordDelete создаёт CLI-команду для удаления записи по id.
//
// Пример использования:
//
//	recordbook record delete 42
//
// Если записи нет, сервер отвечает 404 и команда завершается с ошибкой.
func RecordDelete(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Удалить запись по id",
		Long: `Удаляет запись на сервере.

Пример:
  recordbook record delete 42
`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRecordID(args[0])
			if err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			resp, err := c.DeleteRecord(id)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
			return nil
		},
	}

	return cmd
}
