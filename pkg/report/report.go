package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/somlint/somlint/pkg/games"
	"sigs.k8s.io/yaml"
)

const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Section selects which parts of a report are printed. The model name and
// the consistency verdict are always part of yaml and json output.
type Section int

const (
	SectionSOMs Section = 1 << iota
	SectionReduced
	SectionFindings

	SectionAll = SectionSOMs | SectionReduced | SectionFindings
)

func Render(w io.Writer, report *games.Report, format string, sections Section) error {
	switch format {
	case FormatText, "":
		return renderText(w, report, sections)
	case FormatYAML:
		data, err := yaml.Marshal(selectSections(report, sections))
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		_, err = w.Write(data)
		return err
	case FormatJSON:
		data, err := yaml.Marshal(selectSections(report, sections))
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		data, err = yaml.YAMLToJSON(data)
		if err != nil {
			return fmt.Errorf("failed to convert report to json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	default:
		return fmt.Errorf("unknown output format %q, expected one of %s, %s, %s", format, FormatText, FormatYAML, FormatJSON)
	}
}

func selectSections(report *games.Report, sections Section) *games.Report {
	selected := &games.Report{Model: report.Model, Consistent: report.Consistent}
	if sections&SectionSOMs != 0 {
		selected.SOMs = report.SOMs
		selected.Unordered = report.Unordered
	}
	if sections&SectionReduced != 0 {
		selected.Reduced = report.Reduced
	}
	if sections&SectionFindings != 0 {
		selected.Arcs = report.Arcs
		selected.Findings = report.Findings
		selected.Levels = report.Levels
	}
	return selected
}

func renderText(w io.Writer, report *games.Report, sections Section) error {
	if sections&SectionSOMs != 0 {
		t := newTable(w, fmt.Sprintf("SOMs of %s", report.Model))
		t.AppendHeader(table.Row{"#", "SOM", "Uni-uni reactions"})
		for i, s := range report.SOMs {
			t.AppendRow(table.Row{i + 1, s.Identifier, strings.Join(s.Reactions, ", ")})
		}
		t.Render()
		if len(report.Unordered) > 0 {
			_, _ = fmt.Fprintf(w, "Not ordered by any reaction: %s\n", strings.Join(report.Unordered, " "))
		}
	}

	if sections&SectionReduced != 0 {
		if len(report.Reduced) == 0 {
			_, _ = fmt.Fprintln(w, "No reaction was reduced.")
		} else {
			t := newTable(w, "Reduced reactions")
			t.AppendHeader(table.Row{"Reaction", "Original", "Reduced", "Merged"})
			for _, r := range report.Reduced {
				t.AppendRow(table.Row{r.Label, r.Original, r.Reduced, r.Merged})
			}
			t.Render()
		}
	}

	if sections&SectionFindings != 0 {
		if report.Consistent {
			_, _ = fmt.Fprintf(w, "%s is stoichiometrically consistent.\n", report.Model)
			return nil
		}
		t := newTable(w, "Findings")
		t.AppendHeader(table.Row{"Kind", "SOMs", "Reactions", "Message"})
		for _, f := range report.Findings {
			t.AppendRow(table.Row{f.Kind, strings.Join(f.SOMs, " "), strings.Join(f.Reactions, ", "), f.Message})
		}
		t.Render()
		_, _ = fmt.Fprintf(w, "%s is stoichiometrically inconsistent (%d findings).\n", report.Model, len(report.Findings))
	}
	return nil
}

func newTable(w io.Writer, title string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle(title)
	return t
}
