package adapter

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/locstat/internal/model"
)

func TestLocalReportStore_SaveReport_WritesYAML(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "reports")
	rs := &LocalReportStore{}

	report := m.NewReport([]m.Stats{
		{Path: "a.rs", Total: 7, Code: 3, CodeSymbols: 41, Empty: 1, Comment: 3},
		{Path: "b.rs", Total: 1, Code: 1, CodeSymbols: 3},
	})

	if err := rs.SaveReport(m.Path(dir), report); err != nil {
		t.Fatalf("SaveReport returned error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, reportFileName))
	if err != nil {
		t.Fatalf("read report file: %v", err)
	}

	var decoded reportYAML
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal YAML: %v", err)
	}

	if len(decoded.Files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(decoded.Files))
	}
	if decoded.Files[0].CodeSymbols != 41 {
		t.Fatalf("unexpected code_symbols: %d", decoded.Files[0].CodeSymbols)
	}
	if decoded.Total.Total != 8 || decoded.Total.Path != "total" {
		t.Fatalf("unexpected total: %+v", decoded.Total)
	}
	if !strings.Contains(string(data), "code_symbols: 41") {
		t.Fatalf("expected snake_case keys in %s", data)
	}
}

func TestLocalReportStore_RoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rs := &LocalReportStore{}

	report := m.NewReport([]m.Stats{{Path: "-", Total: 1, Empty: 1, CodeSymbols: 3}})

	if err := rs.SaveReport(m.Path(dir), report); err != nil {
		t.Fatalf("SaveReport returned error: %v", err)
	}

	got, err := rs.LoadReport(m.Path(dir))
	if err != nil {
		t.Fatalf("LoadReport returned error: %v", err)
	}

	if len(got.Files) != 1 || got.Files[0] != report.Files[0] || got.Total != report.Total {
		t.Fatalf("LoadReport() = %+v, want %+v", got, report)
	}
}

func TestLocalReportStore_LoadReport_Missing(t *testing.T) {
	t.Parallel()

	rs := &LocalReportStore{}

	_, err := rs.LoadReport(m.Path(t.TempDir()))
	if !errors.Is(err, ErrNoReport) {
		t.Fatalf("expected ErrNoReport, got %v", err)
	}
}

func TestLocalReportStore_EmptyPath_ReturnsError(t *testing.T) {
	t.Parallel()

	rs := &LocalReportStore{}

	if err := rs.SaveReport("", m.Report{}); err == nil || !strings.Contains(err.Error(), "reports directory path is required") {
		t.Fatalf("unexpected SaveReport error: %v", err)
	}

	if _, err := rs.LoadReport(""); err == nil || !strings.Contains(err.Error(), "reports directory path is required") {
		t.Fatalf("unexpected LoadReport error: %v", err)
	}
}

func TestLocalReportStore_PathIsFile_ReturnsError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	filePath := filepath.Join(dir, "not-a-dir")
	if err := os.WriteFile(filePath, []byte("x"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	rs := &LocalReportStore{}

	err := rs.SaveReport(m.Path(filePath), m.Report{})
	if err == nil || !strings.Contains(err.Error(), "path is not a directory") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLocalReportStore_LoadReport_Corrupt(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, reportFileName), []byte("files: [oops"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	rs := &LocalReportStore{}
	if _, err := rs.LoadReport(m.Path(dir)); err == nil || !strings.Contains(err.Error(), "unmarshal report") {
		t.Fatalf("unexpected error: %v", err)
	}
}
