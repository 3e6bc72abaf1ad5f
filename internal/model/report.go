package model

// Stats holds the line statistics of a single source.
type Stats struct {
	Path        Path `json:"path"`
	Total       int  `json:"total"`
	Code        int  `json:"code"`
	CodeSymbols int  `json:"code_symbols"`
	Empty       int  `json:"empty"`
	Comment     int  `json:"comment"`
}

// Add accumulates other into s. Path is left untouched.
func (s *Stats) Add(other Stats) {
	s.Total += other.Total
	s.Code += other.Code
	s.CodeSymbols += other.CodeSymbols
	s.Empty += other.Empty
	s.Comment += other.Comment
}

// Report is the result of analyzing one or more sources.
type Report struct {
	Files []Stats `json:"files"`
	Total Stats   `json:"total"`
}

// NewReport builds a report from per-file stats and computes the totals.
func NewReport(files []Stats) Report {
	report := Report{Files: files, Total: Stats{Path: "total"}}
	for _, f := range files {
		report.Total.Add(f)
	}

	return report
}
