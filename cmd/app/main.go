// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/bakhbk/seckit/cmd/app/commands"
)

const version = "1.0.0"

func main() {
	cmd := &cli.Command{
		Name:    "seckit",
		Usage:   "Searchable field encryption service",
		Version: version,
		Commands: []*cli.Command{
			{
				Name:  "server",
				Usage: "Start the HTTP server",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunServer(ctx, version)
				},
			},
			{
				Name:  "migrate",
				Usage: "Run database migrations",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunMigrations()
				},
			},
			{
				Name:  "generate-field-keys",
				Usage: "Generate field encryption key, hash key and salt",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunGenerateFieldKeys(os.Stdout)
				},
			},
			{
				Name:  "encrypt-value",
				Usage: "Encrypt a single value with the configured field encryption keys",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "value",
						Aliases:  []string{"v"},
						Required: true,
						Usage:    "Plaintext value to encrypt",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunEncryptValue(ctx, os.Stdout, cmd.String("value"))
				},
			},
			{
				Name:  "decrypt-value",
				Usage: "Decrypt an encoded record with the configured field encryption keys",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "record",
						Aliases:  []string{"r"},
						Required: true,
						Usage:    "Base64-encoded encrypted record",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunDecryptValue(ctx, os.Stdout, cmd.String("record"))
				},
			},
			{
				Name:  "hash-value",
				Usage: "Compute the deterministic lookup digest for a value",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "value",
						Aliases:  []string{"v"},
						Required: true,
						Usage:    "Plaintext value to hash",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunHashValue(ctx, os.Stdout, cmd.String("value"))
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}
