package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"FinKeeper/internal/cli/bootstrap"
	"FinKeeper/internal/config"
	"FinKeeper/internal/service"
)

type importCmd struct{}

func (importCmd) Name() string { return "import" }
func (importCmd) Description() string {
	return "Восстановить данные из JSON-снапшота"
}
func (importCmd) Usage() string { return "import <file>" }

func (importCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	var snap service.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}

	services, err := bootstrap.OpenServices(cfg)
	if err != nil {
		return err
	}

	actor := cfg.OwnerUserID
	report, err := services.Backup.Import(ctx, &actor, &snap)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Импорт: создано %d, обновлено %d, пропущено %d\n",
		report.Created, report.Updated, report.Skipped)
	return nil
}

func init() { RegisterCmd(importCmd{}) }
