// Package adapter contains infrastructure adapters for the locstat CLI.
package adapter

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	m "github.com/mouse-blink/locstat/internal/model"
)

// binarySniffLen is how many leading bytes are checked for NUL when walking directories.
const binarySniffLen = 8000

// SourceFSAdapter abstracts filesystem access so the workflow can be tested
// without touching the disk.
type SourceFSAdapter interface {
	// Get resolves roots into sources. Files matching any exclude regex are dropped.
	Get(roots []m.Path, exclude []string) ([]m.Source, error)

	// Walk traverses the provided root path. When recursive is false the
	// implementation limits itself to the root directory (no sub-dirs).
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// ReadStdin reads the whole standard input as a single source.
	ReadStdin() (m.Source, error)

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter reads sources from the local disk and standard input.
type LocalSourceFSAdapter struct {
	stdin io.Reader
}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter reading os.Stdin.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{stdin: os.Stdin}
}

// NewLocalSourceFSAdapterWithStdin constructs a LocalSourceFSAdapter reading r
// instead of os.Stdin.
func NewLocalSourceFSAdapterWithStdin(r io.Reader) *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{stdin: r}
}

// NewSource builds a Source for text, filling in its hash.
func NewSource(origin m.Path, text string) m.Source {
	return m.Source{
		Origin: origin,
		Text:   text,
		Hash:   fmt.Sprintf("%x", sha256.Sum256([]byte(text))),
	}
}

// Get collects text sources for the provided roots.
//
// A root may be a file, a directory (top level only) or a directory followed
// by "/..." (recursive). The pseudo path "-" reads standard input. Files
// named explicitly are always read; files found by walking are skipped when
// they look binary.
func (a *LocalSourceFSAdapter) Get(roots []m.Path, exclude []string) ([]m.Source, error) {
	if len(roots) == 0 {
		return []m.Source{}, nil
	}

	patterns, err := compileExcludes(exclude)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})

	var sources []m.Source

	add := func(path string, explicit bool) error {
		if isExcluded(path, patterns) {
			return nil
		}

		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}

		if _, exists := seen[abs]; exists {
			return nil
		}

		source, ok, err := a.processFilePath(path, explicit)
		if err != nil || !ok {
			return err
		}

		seen[abs] = struct{}{}
		sources = append(sources, source)

		return nil
	}

	for _, root := range roots {
		if root == m.StdinPath {
			if _, exists := seen[string(m.StdinPath)]; exists {
				continue
			}

			source, err := a.ReadStdin()
			if err != nil {
				return nil, err
			}

			seen[string(m.StdinPath)] = struct{}{}
			sources = append(sources, source)

			continue
		}

		rootPath, recursive, err := normalizeRootPath(string(root))
		if err != nil {
			return nil, err
		}

		info, err := a.FileInfo(m.Path(rootPath))
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		if !info.IsDir() {
			if err := add(rootPath, true); err != nil {
				return nil, err
			}

			continue
		}

		err = a.Walk(m.Path(rootPath), recursive, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() {
				if path != rootPath && skipDir(info.Name()) {
					return filepath.SkipDir
				}

				return nil
			}

			if !info.Mode().IsRegular() {
				return nil
			}

			return add(path, false)
		})
		if err != nil {
			return nil, err
		}
	}

	return sources, nil
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// ReadStdin reads all of standard input.
func (a *LocalSourceFSAdapter) ReadStdin() (m.Source, error) {
	if a.stdin == nil {
		return NewSource(m.StdinPath, ""), nil
	}

	data, err := io.ReadAll(a.stdin)
	if err != nil {
		return m.Source{}, fmt.Errorf("read stdin: %w", err)
	}

	return NewSource(m.StdinPath, string(data)), nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

func (a *LocalSourceFSAdapter) processFilePath(path string, explicit bool) (m.Source, bool, error) {
	data, err := a.ReadFile(m.Path(path))
	if err != nil {
		return m.Source{}, false, fmt.Errorf("read %s: %w", path, err)
	}

	if !explicit && looksBinary(data) {
		return m.Source{}, false, nil
	}

	return NewSource(displayPath(path), string(data)), true, nil
}

func normalizeRootPath(root string) (string, bool, error) {
	rootStr, recursive := parseRootPath(root)

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false, err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	return filepath.Clean(rootStr), recursive, nil
}

func parseRootPath(rootStr string) (path string, recursive bool) {
	if rootStr == "..." {
		return ".", true
	}

	if strings.HasSuffix(rootStr, "/...") {
		return strings.TrimSuffix(rootStr, "/..."), true
	}

	return rootStr, false
}

// displayPath keeps relative paths relative and strips a leading "./".
func displayPath(path string) m.Path {
	return m.Path(filepath.ToSlash(filepath.Clean(path)))
}

func skipDir(name string) bool {
	if strings.HasPrefix(name, ".") && name != "." && name != ".." {
		return true
	}

	return name == "vendor" || name == "node_modules"
}

func looksBinary(data []byte) bool {
	if len(data) > binarySniffLen {
		data = data[:binarySniffLen]
	}

	return bytes.IndexByte(data, 0) >= 0
}

func compileExcludes(exclude []string) ([]*regexp.Regexp, error) {
	patterns := make([]*regexp.Regexp, 0, len(exclude))

	for _, expr := range exclude {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", expr, err)
		}

		patterns = append(patterns, re)
	}

	return patterns, nil
}

func isExcluded(path string, patterns []*regexp.Regexp) bool {
	slashed := filepath.ToSlash(path)

	for _, re := range patterns {
		if re.MatchString(slashed) {
			return true
		}
	}

	return false
}
