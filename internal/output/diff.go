package output

import (
	"fmt"
	"strings"
)

// ModifiedItem is an artifact whose on-disk content differs from the
// freshly rendered one.
type ModifiedItem struct {
	Name string
	Diff string
}

// RenderDrift renders a drift report. It takes plain data rather than the
// artifact package types to keep output free of domain imports.
func RenderDrift(added []string, modified []ModifiedItem, unchanged []string) string {
	if len(added) == 0 && len(modified) == 0 {
		return "No changes detected."
	}

	var sb strings.Builder

	for _, name := range added {
		sb.WriteString("  + ")
		sb.WriteString(FormatStatusLine(name, StatusAdded))
		sb.WriteString("\n")
	}

	for _, mod := range modified {
		sb.WriteString("  ~ ")
		sb.WriteString(FormatStatusLine(mod.Name, StatusModified))
		sb.WriteString("\n")
		sb.WriteString(IndentDiff(mod.Diff, "    "))
	}

	for _, name := range unchanged {
		sb.WriteString("    ")
		sb.WriteString(FormatStatusLine(name, StatusUnchanged))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(StyleSummary.Render(driftSummary(len(added), len(modified))))

	return sb.String()
}

// IndentDiff indents a diff string for display under an artifact name.
// Blank lines are dropped.
func IndentDiff(diff string, indent string) string {
	if diff == "" {
		return ""
	}

	var sb strings.Builder
	for _, line := range strings.Split(diff, "\n") {
		if line != "" {
			sb.WriteString(indent)
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func driftSummary(added, modified int) string {
	parts := make([]string, 0, 2)
	if added > 0 {
		parts = append(parts, pluralize(added, "added"))
	}
	if modified > 0 {
		parts = append(parts, pluralize(modified, "modified"))
	}
	return "Drift: " + strings.Join(parts, ", ")
}

func pluralize(count int, label string) string {
	noun := "artifacts"
	if count == 1 {
		noun = "artifact"
	}
	return fmt.Sprintf("%d %s %s", count, noun, label)
}
