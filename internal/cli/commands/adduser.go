package commands

import (
	"context"
	"errors"
	"fmt"

	"FinKeeper/internal/cli/bootstrap"
	"FinKeeper/internal/config"
	"FinKeeper/internal/service"
)

type addUserCmd struct{}

func (addUserCmd) Name() string        { return "adduser" }
func (addUserCmd) Description() string { return "Создать пользователя" }
func (addUserCmd) Usage() string       { return "adduser <login> <password>" }

func (addUserCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}

	services, err := bootstrap.OpenServices(cfg)
	if err != nil {
		return err
	}

	user, err := services.Users.Register(ctx, args[0], args[1])
	if err != nil {
		if errors.Is(err, service.ErrLoginTaken) {
			return fmt.Errorf("логин %q уже занят", args[0])
		}
		return err
	}
	fmt.Fprintf(Out, "Пользователь создан: id=%d login=%s\n", user.ID, user.Login)
	return nil
}

func init() { RegisterCmd(addUserCmd{}) }
