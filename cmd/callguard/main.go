package main

import (
	"callguard/internal/di"
	"callguard/internal/structures"
	"context"
	"errors"
	"fmt"
	"github.com/spf13/pflag"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (*structures.CliFlags, error) {
	var flags structures.CliFlags
	flagSet := pflag.NewFlagSet("callguard", pflag.ContinueOnError)
	flagSet.StringVarP(&flags.ConfigPath, "config", "c", "config/callguard.yaml", "path to the YAML config file")
	flagSet.BoolVarP(&flags.DebugMode, "debug", "d", false, "also log to the console")
	if err := flagSet.Parse(args); err != nil {
		return nil, err
	}
	return &flags, nil
}

func run(args []string) error {
	flags, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	app, err := di.InitApp(flags)
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return app.Run(ctx)
}
