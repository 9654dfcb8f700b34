package markdown

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
)

const defaultWordWrap = 120

// PrintOptions configures where a document goes.
type PrintOptions struct {
	// Out receives the glamour-rendered document; nil skips terminal output.
	Out io.Writer
	// ToFile saves the raw markdown; empty skips it.
	ToFile string
	// Raw writes the markdown to Out without rendering.
	Raw bool
}

func DefaultPrintOptions() PrintOptions {
	return PrintOptions{Out: os.Stdout}
}

// Markdown is a document built up section by section.
type Markdown struct {
	content strings.Builder
}

func New() *Markdown {
	return &Markdown{}
}

// AddHeading adds a heading; levels outside 1-6 become 1.
func (m *Markdown) AddHeading(text string, level int) *Markdown {
	if level < 1 || level > 6 {
		level = 1
	}
	fmt.Fprintf(&m.content, "%s %s\n\n", strings.Repeat("#", level), text)
	return m
}

func (m *Markdown) AddParagraph(text string) *Markdown {
	fmt.Fprintf(&m.content, "%s\n\n", text)
	return m
}

// AddTable adds a table. Short rows are padded with empty cells. Columns
// listed in skipRepeatColumns show a value only when it differs from the
// row above.
func (m *Markdown) AddTable(headers []string, rows [][]string, skipRepeatColumns ...int) *Markdown {
	if len(headers) == 0 {
		return m
	}

	m.writeRow(headers)
	separators := make([]string, len(headers))
	for i := range separators {
		separators[i] = "---"
	}
	m.writeRow(separators)

	skip := map[int]bool{}
	for _, col := range skipRepeatColumns {
		skip[col] = true
	}
	previous := make([]string, len(headers))

	for _, row := range rows {
		cells := make([]string, len(headers))
		copy(cells, row)
		for col := range cells {
			if !skip[col] {
				continue
			}
			if cells[col] == previous[col] {
				cells[col] = ""
			} else {
				previous[col] = cells[col]
			}
		}
		m.writeRow(cells)
	}

	m.content.WriteString("\n")
	return m
}

func (m *Markdown) writeRow(cells []string) {
	escaped := make([]string, len(cells))
	for i, c := range cells {
		escaped[i] = strings.ReplaceAll(strings.ReplaceAll(c, "|", `\|`), "\n", " ")
	}
	m.content.WriteString("| " + strings.Join(escaped, " | ") + " |\n")
}

func (m *Markdown) String() string {
	return m.content.String()
}

// Render returns the document styled for a terminal by glamour.
func (m *Markdown) Render() (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(defaultWordWrap),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create renderer: %w", err)
	}
	out, err := renderer.Render(m.content.String())
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}

// Print outputs the document according to opts. Rendering problems fall back
// to the raw markdown.
func (m *Markdown) Print(opts ...PrintOptions) error {
	options := DefaultPrintOptions()
	if len(opts) > 0 {
		options = opts[0]
	}

	if options.Out != nil {
		text := m.content.String()
		if !options.Raw {
			if rendered, err := m.Render(); err == nil {
				text = rendered
			} else {
				slog.Debug("falling back to raw markdown", "error", err)
			}
		}
		if _, err := io.WriteString(options.Out, text); err != nil {
			return fmt.Errorf("failed to write markdown: %w", err)
		}
	}

	if options.ToFile != "" {
		if err := os.WriteFile(options.ToFile, []byte(m.content.String()), 0644); err != nil {
			return fmt.Errorf("failed to write markdown to %s: %w", options.ToFile, err)
		}
		slog.Info("📝 markdown saved", "file", options.ToFile)
	}

	return nil
}
