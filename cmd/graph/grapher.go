package graph

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/confluentinc/cfnkit/internal/utils"
)

const (
	FormatDOT   = "dot"
	FormatOrder = "order"
	FormatJSON  = "json"
)

type GrapherOpts struct {
	Template string
	Format   string
}

// Grapher prints the resource dependency graph of a template.
type Grapher struct {
	opts GrapherOpts
	out  io.Writer
}

func NewGrapher(opts GrapherOpts, out io.Writer) *Grapher {
	return &Grapher{opts: opts, out: out}
}

type graphJSON struct {
	Order []string    `json:"order"`
	Edges [][2]string `json:"edges"`
}

func (g *Grapher) Run() error {
	tmpl, err := utils.LoadTemplate(g.opts.Template)
	if err != nil {
		return err
	}
	deps, err := tmpl.Graph()
	if err != nil {
		return err
	}

	switch g.opts.Format {
	case FormatDOT, "":
		return deps.DOT(g.out)
	case FormatOrder:
		order, err := deps.DeployOrder()
		if err != nil {
			return err
		}
		for i, id := range order {
			fmt.Fprintf(g.out, "%d. %s (%s)\n", i+1, id, tmpl.Resources[id].Type)
		}
		return nil
	case FormatJSON:
		order, err := deps.DeployOrder()
		if err != nil {
			return err
		}
		edges, err := deps.Edges()
		if err != nil {
			return err
		}
		enc := json.NewEncoder(g.out)
		enc.SetIndent("", "  ")
		return enc.Encode(graphJSON{Order: order, Edges: edges})
	}
	return fmt.Errorf("unsupported graph format %q, expected one of: %s, %s, %s", g.opts.Format, FormatDOT, FormatOrder, FormatJSON)
}
