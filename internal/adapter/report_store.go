package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/locstat/internal/model"
)

const reportFileName = "report.yaml"

// ErrNoReport is returned by LoadReport when the directory holds no saved report.
var ErrNoReport = errors.New("no saved report")

// ReportStore persists and retrieves analysis reports.
type ReportStore interface {
	SaveReport(dir m.Path, report m.Report) error
	LoadReport(dir m.Path) (m.Report, error)
}

// LocalReportStore keeps the last report as YAML inside a reports directory.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &LocalReportStore{}
}

type statsYAML struct {
	Path        string `yaml:"path"`
	Total       int    `yaml:"total"`
	Code        int    `yaml:"code"`
	CodeSymbols int    `yaml:"code_symbols"`
	Empty       int    `yaml:"empty"`
	Comment     int    `yaml:"comment"`
}

type reportYAML struct {
	Files []statsYAML `yaml:"files"`
	Total statsYAML   `yaml:"total"`
}

// SaveReport writes report to dir, creating the directory when needed.
func (rs *LocalReportStore) SaveReport(dir m.Path, report m.Report) error {
	if err := ensureReportsDir(dir); err != nil {
		return err
	}

	doc := reportYAML{
		Files: make([]statsYAML, 0, len(report.Files)),
		Total: toStatsYAML(report.Total),
	}
	for _, f := range report.Files {
		doc.Files = append(doc.Files, toStatsYAML(f))
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	path := filepath.Join(string(dir), reportFileName)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}

	return nil
}

// LoadReport reads the report saved in dir.
func (rs *LocalReportStore) LoadReport(dir m.Path) (m.Report, error) {
	if dir == "" {
		return m.Report{}, errors.New("reports directory path is required")
	}

	path := filepath.Join(string(dir), reportFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return m.Report{}, fmt.Errorf("%w in %s", ErrNoReport, dir)
		}

		return m.Report{}, fmt.Errorf("read report %s: %w", path, err)
	}

	var doc reportYAML
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return m.Report{}, fmt.Errorf("unmarshal report %s: %w", path, err)
	}

	report := m.Report{
		Files: make([]m.Stats, 0, len(doc.Files)),
		Total: fromStatsYAML(doc.Total),
	}
	for _, f := range doc.Files {
		report.Files = append(report.Files, fromStatsYAML(f))
	}

	return report, nil
}

func ensureReportsDir(dir m.Path) error {
	if dir == "" {
		return errors.New("reports directory path is required")
	}

	info, err := os.Stat(string(dir))
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("path is not a directory: %s", dir)
		}

		return nil
	}

	if !os.IsNotExist(err) {
		return err
	}

	return os.MkdirAll(string(dir), 0o750)
}

func toStatsYAML(s m.Stats) statsYAML {
	return statsYAML{
		Path:        string(s.Path),
		Total:       s.Total,
		Code:        s.Code,
		CodeSymbols: s.CodeSymbols,
		Empty:       s.Empty,
		Comment:     s.Comment,
	}
}

func fromStatsYAML(s statsYAML) m.Stats {
	return m.Stats{
		Path:        m.Path(s.Path),
		Total:       s.Total,
		Code:        s.Code,
		CodeSymbols: s.CodeSymbols,
		Empty:       s.Empty,
		Comment:     s.Comment,
	}
}
