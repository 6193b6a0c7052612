package commands

import (
	"context"
	"fmt"

	"FinKeeper/internal/cli/bootstrap"
	"FinKeeper/internal/config"
)

type notifyCmd struct{}

func (notifyCmd) Name() string { return "notify" }
func (notifyCmd) Description() string {
	return "Один проход движка уведомлений"
}
func (notifyCmd) Usage() string { return "notify" }

func (notifyCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	services, err := bootstrap.OpenServices(cfg)
	if err != nil {
		return err
	}
	emitted, err := services.Notify.Run(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Эмитировано уведомлений: %d\n", emitted)
	return nil
}

func init() { RegisterCmd(notifyCmd{}) }
