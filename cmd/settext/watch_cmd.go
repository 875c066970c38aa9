package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mseforge/settext/pkg/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch [directory]...",
	Short: "Watch directories and lint documents on save",
	Long: "Watch monitors the given directories (default: the current one) and\n" +
		"re-lints any set document that changes. Press Ctrl-C to stop.",
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}

	w, err := watcher.New(watcher.Config{
		DebounceInterval: a.cfg.Watch.DebounceInterval,
		Extensions:       a.cfg.Watch.Extensions,
	}, a.logger)
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := w.Start(ctx, paths); err != nil {
		return err
	}

	fmt.Printf("Watching %d path(s) for %v files. Ctrl-C to stop.\n",
		len(paths), a.cfg.Watch.Extensions)

	for {
		select {
		case <-ctx.Done():
			fmt.Println("\nStopping.")
			return nil

		case event, ok := <-w.Events():
			if !ok {
				return nil
			}
			if event.Op == watcher.OpRemove || event.Op == watcher.OpRename {
				a.logger.Info("file went away", "path", event.Path, "op", event.Op.String())
				continue
			}

			report, lintErr := a.linter.LintFile(event.Path)
			if lintErr != nil {
				a.logger.Warn("failed to lint changed file",
					"path", event.Path, "error", lintErr)
				continue
			}
			if err := a.formatter.FormatReport(os.Stdout, report); err != nil {
				return err
			}

		case watchErr, ok := <-w.Errors():
			if !ok {
				return nil
			}
			a.logger.Error("watcher error", "error", watchErr)
		}
	}
}
