package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"slidedeck/config"

	"github.com/spf13/cobra"
)

func resetFlags() {
	verbose, logDir = false, ""
	configPath, imagesDir, outPath, verifyDeck = "", "", "", false
	force = false
}

func TestInitCmd(t *testing.T) {
	appLog = quietLogger()
	defer resetFlags()

	path := filepath.Join(t.TempDir(), "deck.yaml")
	cmd := &cobra.Command{}
	var out bytes.Buffer
	cmd.SetOut(&out)

	if err := runInit(cmd, []string{path}); err != nil {
		t.Fatalf("runInit failed: %v", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("written deck does not load: %v", err)
	}
	if len(cfg.Slides) != 15 {
		t.Errorf("got %d slides, want 15", len(cfg.Slides))
	}

	// a second run must not overwrite without --force
	if err := runInit(cmd, []string{path}); err == nil {
		t.Error("runInit overwrote an existing file")
	}
	force = true
	if err := runInit(cmd, []string{path}); err != nil {
		t.Errorf("runInit --force failed: %v", err)
	}
}

func TestBuildCmd(t *testing.T) {
	appLog = quietLogger()
	defer resetFlags()

	ws := t.TempDir()
	deck := filepath.Join(ws, "deck.yaml")
	yaml := `
title: Weekly Status
output: ignored.pptx
images: charts
slides:
  - kind: title
    title: Weekly Status
  - kind: content
    title: Throughput
    image: throughput.png
    two_column: true
    bullets: [Up 4%]
`
	if err := os.WriteFile(deck, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}
	imgDir := filepath.Join(ws, "charts")
	if err := os.Mkdir(imgDir, 0755); err != nil {
		t.Fatal(err)
	}
	writeImage(t, filepath.Join(imgDir, "throughput.png"))

	configPath = deck
	imagesDir = imgDir
	outPath = filepath.Join(ws, "status.pptx")
	verifyDeck = true

	cmd := &cobra.Command{}
	var out bytes.Buffer
	cmd.SetOut(&out)
	if err := runBuild(cmd, nil); err != nil {
		t.Fatalf("runBuild failed: %v", err)
	}

	if _, err := os.Stat(outPath); err != nil {
		t.Fatalf("deck not written: %v", err)
	}
	if _, err := os.Stat(filepath.Join(ws, "ignored.pptx")); !os.IsNotExist(err) {
		t.Error("--out did not override the config output")
	}
	report := out.String()
	for _, want := range []string{"Presentation saved", outPath, "2", "Verified"} {
		if !bytes.Contains([]byte(report), []byte(want)) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}

func TestBuildCmd_ReportsPersistenceFailure(t *testing.T) {
	appLog = quietLogger()
	defer resetFlags()

	outPath = filepath.Join(t.TempDir(), "no", "such", "dir", "deck.pptx")
	imagesDir = t.TempDir()

	cmd := &cobra.Command{}
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	if err := runBuild(cmd, nil); err == nil {
		t.Fatal("expected a save failure")
	}
	if !bytes.Contains(stderr.Bytes(), []byte(outPath)) {
		t.Errorf("failure report does not name the path:\n%s", stderr.String())
	}
	if stdout.Len() != 0 {
		t.Errorf("unexpected success output: %s", stdout.String())
	}
}

func TestRootCmd_FailedBuildClosesRunLog(t *testing.T) {
	defer resetFlags()
	defer rootCmd.SetArgs(nil)

	logs := t.TempDir()
	out := filepath.Join(t.TempDir(), "no", "such", "dir", "deck.pptx")
	rootCmd.SetArgs([]string{"build", "--images", t.TempDir(), "--out", out, "--log-dir", logs})
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	defer rootCmd.SetOut(nil)
	defer rootCmd.SetErr(nil)

	if err := rootCmd.ExecuteContext(context.Background()); err == nil {
		t.Fatal("expected a save failure")
	}

	files, err := filepath.Glob(filepath.Join(logs, "*.log"))
	if err != nil || len(files) != 1 {
		t.Fatalf("expected one run log, got %v (%v)", files, err)
	}
	data, err := os.ReadFile(files[0])
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("run finished")) {
		t.Errorf("run log was not closed:\n%s", data)
	}
}

func TestBuildCmd_BadConfig(t *testing.T) {
	appLog = quietLogger()
	defer resetFlags()

	configPath = filepath.Join(t.TempDir(), "absent.yaml")
	if err := runBuild(&cobra.Command{}, nil); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}
