package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mseforge/settext/pkg/config"
	"github.com/mseforge/settext/pkg/lint"
	"github.com/mseforge/settext/pkg/lintcache"
	"github.com/mseforge/settext/pkg/logger"
)

func testApp() *app {
	return &app{
		cfg:    config.Default(),
		logger: logger.Noop(),
		linter: lint.New(lint.Config{AppVersion: appVersion}, logger.Noop()),
	}
}

// TestCommandRegistration checks the command tree is wired.
func TestCommandRegistration(t *testing.T) {
	want := map[string]bool{"lint": false, "watch": false, "version": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("command %q not registered", name)
		}
	}
}

// TestLintOneCachesCleanResult checks that a clean lint is cached and
// the cached entry short-circuits the next run.
func TestLintOneCachesCleanResult(t *testing.T) {
	a := testApp()
	cache := lintcache.NewMemoryStore()
	path := filepath.Join(t.TempDir(), "demo.mse-set")
	doc := "mse version: 2.0.0\ntitle: Hello\ncard:\n\tname: Goblin\n"
	if err := os.WriteFile(path, []byte(doc), 0600); err != nil {
		t.Fatal(err)
	}

	first, err := lintOne(a, cache, path)
	if err != nil {
		t.Fatalf("lintOne() error = %v", err)
	}
	if !first.Clean() || first.Keys != 3 {
		t.Fatalf("first report = %+v", first)
	}

	entry, err := cache.Get(path)
	if err != nil || entry == nil {
		t.Fatalf("cache entry = %v, err = %v", entry, err)
	}
	if entry.Keys != 3 || entry.Warnings != 0 {
		t.Errorf("cached entry = %+v", entry)
	}

	second, err := lintOne(a, cache, path)
	if err != nil {
		t.Fatalf("lintOne() second error = %v", err)
	}
	if second.Keys != 3 || !second.Clean() {
		t.Errorf("cached report = %+v", second)
	}
}

// TestLintOneRelintsChangedFile checks that editing a file invalidates
// its cache entry.
func TestLintOneRelintsChangedFile(t *testing.T) {
	a := testApp()
	cache := lintcache.NewMemoryStore()
	path := filepath.Join(t.TempDir(), "demo.mse-set")
	if err := os.WriteFile(path, []byte("mse version: 2.0.0\ntitle: A\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := lintOne(a, cache, path); err != nil {
		t.Fatal(err)
	}

	// Edit the file: the fingerprint changes and the warning shows up.
	if err := os.WriteFile(path, []byte("mse version: 2.0.0\ntitle no colon\n"), 0600); err != nil {
		t.Fatal(err)
	}

	report, err := lintOne(a, cache, path)
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Warnings) != 1 {
		t.Errorf("warnings = %+v, want the missing separator", report.Warnings)
	}
}
