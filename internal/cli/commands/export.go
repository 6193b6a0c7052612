package commands

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"FinKeeper/internal/cli/bootstrap"
	"FinKeeper/internal/config"
)

type exportCmd struct{}

func (exportCmd) Name() string { return "export" }
func (exportCmd) Description() string {
	return "Выгрузить снапшот данных в JSON"
}
func (exportCmd) Usage() string { return "export [--trashed] [file]" }

func (exportCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	trashed := fs.Bool("trashed", false, "включить содержимое корзины")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}

	services, err := bootstrap.OpenServices(cfg)
	if err != nil {
		return err
	}

	snap, err := services.Backup.Export(ctx, *trashed)
	if err != nil {
		return err
	}

	out := Out
	if rest := fs.Args(); len(rest) > 0 {
		f, err := os.Create(rest[0])
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return err
	}
	if out != Out {
		fmt.Fprintln(Out, "Экспорт завершён")
	}
	return nil
}

func init() { RegisterCmd(exportCmd{}) }
