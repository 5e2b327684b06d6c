package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-record-book/internal/agent/api"
)

// NewRecordCmd создаёт родительскую CLI-команду для работы с записями студентов.
//
// Подкоманды:
//
//	list    — список всех записей
//	add     — создать запись
//	get     — показать запись по id
//	update  — обновить запись по id (полная замена полей)
//	delete  — удалить запись по id
func NewRecordCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Работа с записями студентов",
	}

	cmd.AddCommand(RecordList(app))
	cmd.AddCommand(RecordAdd(app))
	cmd.AddCommand(RecordGet(app))
	cmd.AddCommand(RecordUpdate(app))
	cmd.AddCommand(RecordDelete(app))

	return cmd
}

// parseRecordID разбирает позиционный аргумент id записи.
func parseRecordID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid record id: %q", arg)
	}
	return id, nil
}

// printRecord выводит одну запись в виде строк key=value.
func printRecord(cmd *cobra.Command, rec api.Record) {
	fmt.Fprintf(
		cmd.OutOrStdout(),
		"id=%d\nname=%s\ncourse=%s\nemail=%s\nphone=%s\n",
		rec.ID, rec.Name, rec.Course, rec.Email, rec.Phone,
	)
}
