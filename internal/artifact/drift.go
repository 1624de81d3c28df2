package artifact

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gonvenience/ytbx"
	"github.com/google/go-cmp/cmp"
	"github.com/homeport/dyff/pkg/dyff"

	"github.com/presidio-build/presidio-configs/internal/output"
)

// DriftReport describes how an output directory differs from a freshly
// rendered Set.
type DriftReport struct {
	// Added artifacts are missing on disk.
	Added []string

	// Modified artifacts exist but differ.
	Modified []output.ModifiedItem

	// Unchanged artifacts are byte-identical.
	Unchanged []string
}

// HasChanges reports whether any artifact would be added or rewritten.
func (r *DriftReport) HasChanges() bool {
	return len(r.Added) > 0 || len(r.Modified) > 0
}

// String renders the report for the terminal.
func (r *DriftReport) String() string {
	return output.RenderDrift(r.Added, r.Modified, r.Unchanged)
}

// Compare checks every artifact of s against the files in dir without
// modifying anything. YAML documents are compared structurally with dyff.
func Compare(s *Set, dir string, useColor bool) (*DriftReport, error) {
	report := &DriftReport{}

	for _, f := range s.Files {
		path := filepath.Join(dir, f.Name)

		existing, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				report.Added = append(report.Added, f.Name)
				continue
			}
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		if bytes.Equal(existing, f.Data) {
			report.Unchanged = append(report.Unchanged, f.Name)
			continue
		}

		var diff string
		if f.IsYAML() {
			diff, err = diffYAML(existing, f.Data, useColor)
			if err != nil {
				diff = fmt.Sprintf("existing file is not comparable: %v", err)
			}
			if diff == "" {
				diff = "formatting differs"
			}
		} else {
			diff = diffLines(existing, f.Data)
		}

		output.Debug("artifact drift", "file", f.Name)
		report.Modified = append(report.Modified, output.ModifiedItem{Name: f.Name, Diff: diff})
	}

	return report, nil
}

// diffYAML computes a YAML-aware diff using dyff. Empty means the
// documents are semantically equal.
func diffYAML(current, desired []byte, useColor bool) (string, error) {
	currentInput, err := parseYAMLInput("current", current)
	if err != nil {
		return "", fmt.Errorf("parsing current YAML: %w", err)
	}

	desiredInput, err := parseYAMLInput("desired", desired)
	if err != nil {
		return "", fmt.Errorf("parsing desired YAML: %w", err)
	}

	report, err := dyff.CompareInputFiles(currentInput, desiredInput)
	if err != nil {
		return "", fmt.Errorf("comparing YAML: %w", err)
	}

	if len(report.Diffs) == 0 {
		return "", nil
	}

	return renderDyffReport(report, useColor)
}

// parseYAMLInput parses YAML bytes into a dyff input file.
func parseYAMLInput(name string, data []byte) (ytbx.InputFile, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ytbx.InputFile{Location: name}, nil
	}

	docs, err := ytbx.LoadYAMLDocuments(data)
	if err != nil {
		return ytbx.InputFile{}, err
	}

	return ytbx.InputFile{
		Location:  name,
		Documents: docs,
	}, nil
}

// renderDyffReport renders a dyff report to a string.
func renderDyffReport(report dyff.Report, useColor bool) (string, error) {
	var buf bytes.Buffer

	reportWriter := &dyff.HumanReport{
		Report:            report,
		DoNotInspectCerts: true,
		NoTableStyle:      !useColor,
		OmitHeader:        true,
	}

	if err := reportWriter.WriteReport(io.Writer(&buf)); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	lines := strings.Split(buf.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

// diffLines renders a line diff for plain-text artifacts.
func diffLines(current, desired []byte) string {
	return cmp.Diff(
		strings.Split(string(current), "\n"),
		strings.Split(string(desired), "\n"),
	)
}
