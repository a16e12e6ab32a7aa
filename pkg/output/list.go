package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/valyala/bytebufferpool"
	"gopkg.in/yaml.v3"
)

// ListDocument is the machine-readable form of a listed variable
type ListDocument struct {
	Variable  string   `json:"variable" yaml:"variable"`
	Separator string   `json:"separator" yaml:"separator"`
	Entries   []string `json:"entries" yaml:"entries"`
}

var (
	headerColor = lipgloss.AdaptiveColor{Light: "#005F87", Dark: "#5FAFD7"}
	indexColor  = lipgloss.AdaptiveColor{Light: "#8A8A8A", Dark: "#6C6C6C"}
	warnColor   = lipgloss.AdaptiveColor{Light: "#AF5F00", Dark: "#FFAF00"}
)

// RenderList writes the entries of variable to w in format f.
// FormatAuto must be resolved by the caller; it renders as text here.
func RenderList(w io.Writer, f Format, doc ListDocument) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if doc.Entries == nil {
		doc.Entries = []string{}
	}

	var err error
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(buf)
		enc.SetIndent("", "  ")
		err = enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(buf)
		enc.SetIndent(2)
		err = enc.Encode(doc)
		if cerr := enc.Close(); err == nil {
			err = cerr
		}
	case FormatTable:
		err = renderTable(buf, doc)
	case FormatTerminal:
		renderTerminal(buf, lipgloss.NewRenderer(w), doc)
	default:
		for _, e := range doc.Entries {
			_, _ = buf.WriteString(e)
			_ = buf.WriteByte('\n')
		}
	}
	if err != nil {
		return fmt.Errorf("failed to render %s output: %w", f, err)
	}

	_, err = buf.WriteTo(w)
	return err
}

func renderTable(w io.Writer, doc ListDocument) error {
	table := tablewriter.NewTable(w)
	table.Header("#", doc.Variable)

	rows := make([][]string, 0, len(doc.Entries))
	for i, e := range doc.Entries {
		rows = append(rows, []string{strconv.Itoa(i + 1), e})
	}
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

func renderTerminal(buf *bytebufferpool.ByteBuffer, r *lipgloss.Renderer, doc ListDocument) {
	header := r.NewStyle().Bold(true).Foreground(headerColor)
	index := r.NewStyle().Foreground(indexColor)
	warn := r.NewStyle().Foreground(warnColor).Italic(true)

	noun := "entries"
	if len(doc.Entries) == 1 {
		noun = "entry"
	}
	fmt.Fprintf(buf, "%s %s\n", header.Render(doc.Variable), index.Render(fmt.Sprintf("(%d %s)", len(doc.Entries), noun)))

	width := len(strconv.Itoa(len(doc.Entries)))
	first := make(map[string]int, len(doc.Entries))
	for i, e := range doc.Entries {
		n := fmt.Sprintf("%*d", width, i+1)
		line := e
		switch {
		case e == "":
			line = warn.Render("(empty entry)")
		case first[e] > 0:
			line = e + " " + warn.Render(fmt.Sprintf("(duplicate of #%d)", first[e]))
		default:
			first[e] = i + 1
		}
		fmt.Fprintf(buf, "  %s  %s\n", index.Render(n), line)
	}
}
