package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/pressly/cli"
	"github.com/stefanvanburen/pols/internal/config"
	"github.com/stefanvanburen/pols/internal/lsp"
)

func main() {
	root := &cli.Command{
		Name:      "pols",
		ShortHelp: "A language server for PowerOn",
		SubCommands: []*cli.Command{
			{
				Name:      "serve",
				Usage:     "pols serve [flags]",
				ShortHelp: "Start the PowerOn language server (communicates over stdin/stdout)",
				Flags: cli.FlagsFunc(func(f *flag.FlagSet) {
					f.String("config", "", "path to a pols.toml that overrides the workspace configuration")
					f.String("log-level", "", "debug, info, warn or error (default from configuration)")
				}),
				Exec: serve,
			},
			inspectCommand(),
		},
	}
	if err := cli.ParseAndRun(context.Background(), root, os.Args[1:], nil); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func serve(ctx context.Context, s *cli.State) error {
	opts := lsp.Options{Version: version()}

	levelCfg := config.Default()
	if path := cli.GetFlag[string](s, "config"); path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		opts.Config = &cfg
		levelCfg = cfg
	}
	if lvl := cli.GetFlag[string](s, "log-level"); lvl != "" {
		levelCfg.Log.Level = lvl
	}
	level, err := levelCfg.SlogLevel()
	if err != nil {
		return err
	}

	// stdout carries the protocol.
	opts.Logger = slog.New(slog.NewTextHandler(s.Stderr, &slog.HandlerOptions{Level: level}))
	return lsp.Serve(ctx, opts)
}

func version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" {
		return "(devel)"
	}
	return info.Main.Version
}
