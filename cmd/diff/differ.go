package diff

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/confluentinc/cfnkit/internal/utils"
	"github.com/confluentinc/cfnkit/pkg/cfn"
)

// ErrChanges is returned with --exit-code when the templates differ.
var ErrChanges = errors.New("templates differ")

const (
	colorGreen = "#2ECC71"
	colorRed   = "#E74C3C"
	colorAmber = "#F5A623"
	colorSlate = "#8B9CB6"
)

var (
	addStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(colorGreen)).Bold(true)
	removeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(colorRed)).Bold(true)
	modifyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(colorAmber)).Bold(true)
	sectionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorSlate)).Underline(true)
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(colorSlate))
)

type DifferOpts struct {
	Before   string
	After    string
	JSON     bool
	ExitCode bool
}

type Differ struct {
	opts DifferOpts
	out  io.Writer
}

func NewDiffer(opts DifferOpts, out io.Writer) *Differ {
	return &Differ{opts: opts, out: out}
}

func (d *Differ) Run() error {
	var before *cfn.Template
	if d.opts.Before != "" {
		t, err := utils.LoadTemplate(d.opts.Before)
		if err != nil {
			return err
		}
		before = t
	}
	after, err := utils.LoadTemplate(d.opts.After)
	if err != nil {
		return err
	}

	changes, err := cfn.Diff(before, after)
	if err != nil {
		return fmt.Errorf("failed to diff templates: %w", err)
	}

	if d.opts.JSON {
		if changes == nil {
			changes = []cfn.Change{}
		}
		enc := json.NewEncoder(d.out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(changes); err != nil {
			return fmt.Errorf("failed to encode changes: %w", err)
		}
	} else {
		fmt.Fprint(d.out, Render(changes))
	}

	if d.opts.ExitCode && len(changes) > 0 {
		return fmt.Errorf("%w: %d change(s)", ErrChanges, len(changes))
	}
	return nil
}

// Render lists changes grouped by template section, one line per entry and
// one indented line per changed property.
func Render(changes []cfn.Change) string {
	if len(changes) == 0 {
		return "There were no differences\n"
	}

	var b strings.Builder
	section := ""
	for _, c := range changes {
		if c.Section != section {
			if section != "" {
				b.WriteString("\n")
			}
			section = c.Section
			b.WriteString(sectionStyle.Render(section) + "\n")
		}

		symbol, style := "[~]", modifyStyle
		switch c.Action {
		case cfn.ActionAdd:
			symbol, style = "[+]", addStyle
		case cfn.ActionRemove:
			symbol, style = "[-]", removeStyle
		}

		line := style.Render(symbol) + " " + c.LogicalID
		if c.Type != "" {
			line += " " + pathStyle.Render(c.Type)
		}
		b.WriteString(line + "\n")

		for _, p := range c.Properties {
			fmt.Fprintf(&b, "    %s %s → %s\n", pathStyle.Render(p.Path), value(p.From), value(p.To))
		}
	}
	return b.String()
}

func value(v any) string {
	if v == nil {
		return "(none)"
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}
