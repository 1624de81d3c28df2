package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/presidio-build/presidio-configs/internal/artifact"
	"github.com/presidio-build/presidio-configs/internal/output"
	"github.com/presidio-build/presidio-configs/internal/registry"
)

var languagesFormatFlag string

// languageEntry is one row of the languages listing in yaml and json form.
type languageEntry struct {
	Code         string   `json:"code" yaml:"code"`
	Name         string   `json:"name,omitempty" yaml:"name,omitempty"`
	Model        string   `json:"model" yaml:"model"`
	PhoneContext []string `json:"phoneContext,omitempty" yaml:"phone_context,omitempty"`
}

// NewLanguagesCmd creates the languages command.
func NewLanguagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List the languages available in the registry",
		Long: `List every language code in the registry with its spaCy model and
phone recognizer context words.

Examples:
  presidio-configs languages --registry=./languages.yaml

  # Machine-readable listing
  presidio-configs languages --format=json`,
		Args: cobra.NoArgs,
		RunE: runLanguages,
	}

	addRegistryFlag(cmd)
	cmd.Flags().StringVarP(&languagesFormatFlag, "format", "o", output.FormatTable.String(),
		fmt.Sprintf("Output format (%s)", strings.Join(output.ValidFormats(), ", ")))

	return cmd
}

func runLanguages(cmd *cobra.Command, _ []string) error {
	format := output.ParseOutputFormat(languagesFormatFlag)
	if !format.Valid() {
		return exitError(fmt.Errorf("invalid --format %q (valid: %s)",
			format.String(), strings.Join(output.ValidFormats(), ", ")))
	}

	settings, err := resolveSettings(cmd)
	if err != nil {
		return exitError(err)
	}

	reg, err := registry.Load(settings.RegistryPath)
	if err != nil {
		return exitError(err)
	}

	entries := make([]languageEntry, 0, len(reg.Languages))
	for _, code := range reg.Codes() {
		entry := reg.Lookup(code)
		entries = append(entries, languageEntry{
			Code:         code,
			Name:         languageName(code),
			Model:        entry.Model,
			PhoneContext: entry.PhoneContext,
		})
	}

	out := cmd.OutOrStdout()

	switch format {
	case output.FormatYAML:
		data, err := artifact.EncodeYAML(entries)
		if err != nil {
			return exitError(err)
		}
		fmt.Fprint(out, string(data))
	case output.FormatJSON:
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return exitError(err)
		}
		fmt.Fprintln(out, string(data))
	default:
		tbl := output.NewTable("CODE", "NAME", "MODEL", "PHONE CONTEXT")
		for _, e := range entries {
			tbl.Row(e.Code, e.Name, e.Model, strings.Join(e.PhoneContext, ", "))
		}
		fmt.Fprintln(out, tbl.String())
		fmt.Fprintf(out, "spaCy %s, %d languages\n", reg.SpacyVersion, tbl.Len())
	}

	return nil
}

// languageName returns the English display name of a BCP 47 code, or ""
// when the code is not recognized.
func languageName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return ""
	}
	return display.English.Tags().Name(tag)
}
