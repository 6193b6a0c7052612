package commands

import (
	"context"
	"fmt"

	"FinKeeper/internal/cli/bootstrap"
	"FinKeeper/internal/config"
	"FinKeeper/internal/model"
)

type trashCmd struct{}

func (trashCmd) Name() string        { return "trash" }
func (trashCmd) Description() string { return "Операции с корзиной" }
func (trashCmd) Usage() string {
	return "trash list | empty | restore <type> <id> | rm <type> <id>"
}

func (trashCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}

	services, err := bootstrap.OpenServices(cfg)
	if err != nil {
		return err
	}
	actor := cfg.OwnerUserID

	switch args[0] {
	case "list":
		bundle, err := services.Trash.DeletedItems(ctx)
		if err != nil {
			return err
		}
		items := services.Trash.Normalize(bundle)
		if len(items) == 0 {
			fmt.Fprintln(Out, "Корзина пуста")
			return nil
		}
		for _, it := range items {
			fmt.Fprintf(Out, "%-20s %-36s %-25s удалено %s\n",
				it.EntityType, it.ID, it.Name, it.DeletedAt.Format("2006-01-02 15:04"))
		}
		return nil

	case "empty":
		report := services.Trash.EmptyTrash(ctx, &actor)
		fmt.Fprintf(Out, "Удалено записей: %d\n", report.Deleted)
		for kind, msg := range report.Errors {
			fmt.Fprintf(Out, "  %s: %s\n", kind, msg)
		}
		return nil

	case "restore":
		if len(args) < 3 {
			return ErrUsage
		}
		res, err := services.Trash.RestoreByType(ctx, &actor, model.EntityType(args[1]), args[2])
		if err != nil {
			return err
		}
		if !res.Success {
			return fmt.Errorf("%s", res.Error)
		}
		fmt.Fprintln(Out, "Восстановлено")
		return nil

	case "rm":
		if len(args) < 3 {
			return ErrUsage
		}
		res, err := services.Trash.DeleteByType(ctx, &actor, model.EntityType(args[1]), args[2])
		if err != nil {
			return err
		}
		if !res.Success {
			return fmt.Errorf("%s", res.Error)
		}
		fmt.Fprintln(Out, "Удалено окончательно")
		return nil
	}
	return ErrUsage
}

func init() { RegisterCmd(trashCmd{}) }
