package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/Elena0909/AuctionsProduced/cmd/app/commands"
	"github.com/Elena0909/AuctionsProduced/internal/app"
	"github.com/Elena0909/AuctionsProduced/internal/config"
)

func getUserCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-user",
			Usage: "Register a marketplace user",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "name",
					Aliases:  []string{"n"},
					Required: true,
					Usage:    "User name (title-cased letter tokens, e.g., 'Ana Maria')",
				},
				&cli.StringFlag{
					Name:     "role",
					Aliases:  []string{"r"},
					Required: true,
					Usage:    "User role: 'bidder' or 'offerer'",
				},
				&cli.FloatFlag{
					Name:    "score",
					Aliases: []string{"s"},
					Value:   0,
					Usage:   "Initial score (omit for the configured default)",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				users, err := container.UserUseCase()
				if err != nil {
					return err
				}

				return commands.RunCreateUser(
					ctx,
					users,
					container.Logger(),
					cmd.String("name"),
					cmd.String("role"),
					cmd.Float("score"),
					cmd.String("format"),
					commands.DefaultIO(),
				)
			},
		},
	}
}
