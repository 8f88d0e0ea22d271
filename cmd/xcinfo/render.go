package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/feather-lang/libxc"
)

const (
	formatTable = "table"
	formatPlain = "plain"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

func validFormat(format string) bool {
	switch format {
	case formatTable, formatPlain, formatJSON, formatYAML:
		return true
	}
	return false
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// renderer writes libxc records in one output format.
type renderer struct {
	w      io.Writer
	format string
	styled bool // terminal output: apply lipgloss styles
	width  int  // terminal width, 0 when unknown
}

// newRenderer styles table output and clips it to the terminal width only
// when w is a terminal.
func newRenderer(w io.Writer, format string) *renderer {
	r := &renderer{w: w, format: format}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		r.styled = true
		if width, _, err := term.GetSize(int(f.Fd())); err == nil {
			r.width = width
		}
	}
	return r
}

func (r *renderer) style(s lipgloss.Style, text string) string {
	if !r.styled {
		return text
	}
	return s.Render(text)
}

func (r *renderer) encode(v any) error {
	switch r.format {
	case formatJSON:
		enc := json.NewEncoder(r.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(r.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown format %q", r.format)
}

// clip shortens s to at most n runes, marking the cut with "...".
func clip(s string, n int) string {
	runes := []rune(s)
	if n <= 0 || len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

func (r *renderer) catalog(entries []libxc.Entry) error {
	switch r.format {
	case formatJSON, formatYAML:
		return r.encode(entries)
	case formatPlain:
		for _, e := range entries {
			if _, err := fmt.Fprintf(r.w, "%d\t%s\t%s\n", e.Number, e.Name, e.Family); err != nil {
				return err
			}
		}
		return nil
	}

	numberWidth, nameWidth, familyWidth := len("ID"), len("NAME"), len("FAMILY")
	for _, e := range entries {
		numberWidth = max(numberWidth, len(strconv.Itoa(int(e.Number))))
		nameWidth = max(nameWidth, len(e.Name))
		familyWidth = max(familyWidth, len(e.Family.String()))
	}
	if r.width > 0 {
		nameWidth = max(len("NAME"), min(nameWidth, r.width-numberWidth-familyWidth-4))
	}

	header := fmt.Sprintf("%*s  %-*s  %-*s", numberWidth, "ID", nameWidth, "NAME", familyWidth, "FAMILY")
	if _, err := fmt.Fprintln(r.w, r.style(headerStyle, header)); err != nil {
		return err
	}
	for _, e := range entries {
		family := fmt.Sprintf("%-*s", familyWidth, e.Family)
		if _, err := fmt.Fprintf(r.w, "%*d  %-*s  %s\n",
			numberWidth, e.Number, nameWidth, clip(e.Name, nameWidth), r.style(dimStyle, family)); err != nil {
			return err
		}
	}
	return nil
}

// field is one label/value row of a key-value block.
type field struct {
	label string
	value string
}

func (r *renderer) fields(fields []field) error {
	width := 0
	for _, f := range fields {
		width = max(width, len(f.label)+1)
	}
	for _, f := range fields {
		if r.format == formatPlain {
			if _, err := fmt.Fprintf(r.w, "%s\t%s\n", f.label, f.value); err != nil {
				return err
			}
			continue
		}
		label := fmt.Sprintf("%-*s", width, f.label+":")
		if _, err := fmt.Fprintf(r.w, "%s %s\n", r.style(labelStyle, label), f.value); err != nil {
			return err
		}
	}
	return nil
}

func (r *renderer) library(lib libxc.Library) error {
	if r.format == formatJSON || r.format == formatYAML {
		return r.encode(lib)
	}
	return r.fields([]field{
		{"version", fmt.Sprintf("%d.%d.%d", lib.Major, lib.Minor, lib.Micro)},
		{"version string", lib.Version},
		{"reference", lib.Reference},
		{"doi", lib.ReferenceDOI},
		{"functionals", strconv.Itoa(int(lib.Functionals))},
	})
}

func infoFields(info libxc.Info) []field {
	fields := []field{
		{"number", strconv.Itoa(int(info.Number))},
		{"name", info.Name},
		{"kind", info.Kind.String()},
		{"family", info.Family.String()},
		{"flags", fmt.Sprintf("%d (%s)", int32(info.Flags), info.Flags)},
		{"polarization", info.Polarization.String()},
	}
	for i, ref := range info.References {
		value := ref.Text
		if ref.DOI != "" {
			value += " doi:" + ref.DOI
		}
		fields = append(fields, field{"reference " + strconv.Itoa(i+1), value})
	}
	return fields
}

func (r *renderer) infos(infos []libxc.Info) error {
	if r.format == formatJSON || r.format == formatYAML {
		return r.encode(infos)
	}
	for i, info := range infos {
		if i > 0 {
			if _, err := fmt.Fprintln(r.w, strings.Repeat("-", max(20, min(r.width, 60)))); err != nil {
				return err
			}
		}
		if err := r.fields(infoFields(info)); err != nil {
			return err
		}
	}
	return nil
}
