package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"text/tabwriter"

	"github.com/pressly/cli"
	"github.com/stefanvanburen/pols/internal/config"
	"github.com/stefanvanburen/pols/internal/resolve"
	"github.com/stefanvanburen/pols/internal/workspace"
)

func inspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "pols inspect [flags] <dir> [file...]",
		ShortHelp: "Scan a workspace and print each file's role, includes and symbols",
		Flags: cli.FlagsFunc(func(f *flag.FlagSet) {
			f.String("config", "", "path to a pols.toml (default <dir>/pols.toml)")
			f.Int("depth", 0, "include depth (default from configuration)")
		}),
		Exec: inspect,
	}
}

func inspect(ctx context.Context, s *cli.State) error {
	if len(s.Args) == 0 {
		return errors.New("inspect: missing workspace directory")
	}
	root, err := filepath.Abs(s.Args[0])
	if err != nil {
		return err
	}

	var cfg config.Config
	if path := cli.GetFlag[string](s, "config"); path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, _, err = config.Find(root)
	}
	if err != nil {
		return err
	}
	depth := cfg.Resolve.IncludeDepth
	if d := cli.GetFlag[int](s, "depth"); d > 0 {
		depth = d
	}

	logger := slog.New(slog.NewTextHandler(s.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	reg := workspace.NewRegistry(logger)
	if _, err := workspace.Scan(ctx, reg, root, cfg.Workspace, logger); err != nil {
		return err
	}
	snap := reg.Snapshot()

	uris := snap.URIs()
	if files := s.Args[1:]; len(files) > 0 {
		uris = uris[:0:0]
		for _, f := range files {
			path := f
			if !filepath.IsAbs(path) {
				path = filepath.Join(root, f)
			}
			uri := workspace.URIFromPath(path)
			if _, ok := snap.Document(uri); !ok {
				return fmt.Errorf("inspect: %s is not part of the workspace", f)
			}
			uris = append(uris, uri)
		}
	}

	return printReport(s.Stdout, root, snap, uris, depth)
}

func printReport(w io.Writer, root string, snap *workspace.Snapshot, uris []string, depth int) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	rel := func(uri string) string {
		path := workspace.PathFromURI(uri)
		if r, err := filepath.Rel(root, path); err == nil {
			return filepath.ToSlash(r)
		}
		return path
	}

	for _, uri := range uris {
		fmt.Fprintf(tw, "%s\t%s\n", rel(uri), snap.Role(uri))
		for _, inc := range snap.Includes(uri) {
			fmt.Fprintf(tw, "  include\t%s\n", rel(inc))
		}
		for _, sym := range resolve.Symbols(snap, uri, depth) {
			p := sym.Range.StartPoint
			fmt.Fprintf(tw, "  %s\t%s\t%s:%d:%d\n", sym.Kind, sym.Name, rel(sym.URI), p.Row+1, p.Column+1)
		}
	}
	return tw.Flush()
}
