package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mseforge/settext/pkg/lint"
	"github.com/mseforge/settext/pkg/lintcache"
)

var (
	flagNoCache bool
	flagSummary bool
)

var lintCmd = &cobra.Command{
	Use:   "lint <file>...",
	Short: "Lint set documents",
	Long: "Lint reads each document, walks its structure and reports warnings\n" +
		"and parse errors. Files whose content is unchanged since a clean run\n" +
		"are skipped via the result cache.",
	Args: cobra.MinimumNArgs(1),
	RunE: runLint,
}

func init() {
	lintCmd.Flags().BoolVar(&flagNoCache, "no-cache", false, "lint every file even if cached")
	lintCmd.Flags().BoolVar(&flagSummary, "summary", false, "print a one-line-per-file summary only")
}

func runLint(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	var cache lintcache.Store
	if a.cfg.Cache.Enabled && !flagNoCache {
		cache, err = lintcache.Open(a.cfg.Cache.Path)
		if err != nil {
			// The cache is an optimization; lint without it.
			a.logger.Warn("lint cache unavailable", "error", err)
			cache = nil
		} else {
			defer cache.Close()
		}
	}

	reports := make([]*lint.Report, 0, len(args))
	failed := false

	for _, path := range args {
		report, lintErr := lintOne(a, cache, path)
		if lintErr != nil {
			return lintErr
		}
		reports = append(reports, report)
		if report.Error != "" {
			failed = true
		}
	}

	if flagSummary || len(reports) > 1 {
		if err := a.formatter.FormatSummary(os.Stdout, reports); err != nil {
			return err
		}
	}
	if !flagSummary {
		for _, report := range reports {
			if report.Clean() && len(reports) > 1 {
				continue
			}
			if err := a.formatter.FormatReport(os.Stdout, report); err != nil {
				return err
			}
		}
	}

	if failed {
		return fmt.Errorf("one or more files failed to parse")
	}
	return nil
}

// lintOne lints a single file, consulting the cache first.
//
// A file whose fingerprint matches a previous clean run is reported as
// clean without re-parsing. Files with prior warnings or errors are
// always re-linted so the details stay available.
func lintOne(a *app, cache lintcache.Store, path string) (*lint.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	hash := lintcache.Fingerprint(data)

	if cache != nil {
		entry, getErr := cache.Get(path)
		if getErr != nil {
			a.logger.Warn("cache lookup failed", "path", path, "error", getErr)
		} else if entry != nil && entry.Hash == hash && entry.Warnings == 0 && entry.Error == "" {
			a.logger.Debug("cache hit", "path", path)
			return &lint.Report{
				Path:     path,
				Keys:     entry.Keys,
				MaxDepth: entry.MaxDepth,
				Size:     int64(len(data)),
			}, nil
		}
	}

	report, err := a.linter.LintFile(path)
	if err != nil {
		return nil, err
	}

	if cache != nil {
		entry := &lintcache.Entry{
			Hash:      hash,
			Keys:      report.Keys,
			MaxDepth:  report.MaxDepth,
			Warnings:  len(report.Warnings),
			Error:     report.Error,
			CheckedAt: time.Now(),
		}
		if putErr := cache.Put(path, entry); putErr != nil {
			a.logger.Warn("cache update failed", "path", path, "error", putErr)
		}
	}

	return report, nil
}
