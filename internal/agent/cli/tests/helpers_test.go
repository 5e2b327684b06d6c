package tests

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-record-book/internal/agent/cli"
	"github.com/IvanChernomyrdin/go-record-book/internal/agent/config"
)

// newApp собирает cli.App с временным файлом учётных данных.
func newApp(t *testing.T, serverURL string, creds *config.Credentials) *cli.App {
	t.Helper()
	if creds == nil {
		creds = &config.Credentials{}
	}
	return &cli.App{
		ServerURL: serverURL,
		CredsPath: filepath.Join(t.TempDir(), "creds.json"),
		Creds:     creds,
	}
}

// stubPassword подменяет интерактивный ввод пароля фиксированным значением.
func stubPassword(t *testing.T, password string) {
	t.Helper()
	orig := cli.ReadPassword
	cli.ReadPassword = func(cmd *cobra.Command, fromStdin bool) (string, error) {
		return password, nil
	}
	t.Cleanup(func() { cli.ReadPassword = orig })
}

// execute запускает команду с перехватом вывода.
func execute(cmd *cobra.Command, args ...string) (string, error) {
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}
