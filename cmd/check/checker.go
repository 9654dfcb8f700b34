package check

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/confluentinc/cfnkit/internal/generators/synth"
	"github.com/confluentinc/cfnkit/internal/services/markdown"
	"github.com/confluentinc/cfnkit/internal/services/nag"
	"github.com/confluentinc/cfnkit/internal/services/persistence"
	"github.com/confluentinc/cfnkit/internal/types"
	"github.com/confluentinc/cfnkit/pkg/cfn"
)

type CheckerOpts struct {
	DefinitionFile string
	Stacks         []string
	Packs          []string
	// IncludeCompliant overrides the definition's nag.include_compliant
	// when set.
	IncludeCompliant *bool
	FailOnError      bool
	ReportFile       string
	SarifFile        string
	Raw              bool
}

// Checker synthesizes a definition in memory and prints the nag findings
// as a markdown report.
type Checker struct {
	opts CheckerOpts
	out  io.Writer
}

func NewChecker(opts CheckerOpts, out io.Writer) *Checker {
	return &Checker{opts: opts, out: out}
}

func (c *Checker) Run(ctx context.Context) error {
	s := synth.NewSynthesizer(synth.SynthOpts{
		DefinitionFile:   c.opts.DefinitionFile,
		Stacks:           c.opts.Stacks,
		NagPacks:         c.opts.Packs,
		IncludeCompliant: c.opts.IncludeCompliant,
	})
	if err := s.Load(ctx); err != nil {
		return err
	}
	if err := s.Build(ctx); err != nil {
		return err
	}
	if err := s.Synthesize(ctx); err != nil {
		return err
	}

	var reports []*types.NagReport
	for _, stack := range sortedKeys(s.Reports()) {
		reports = append(reports, s.Reports()[stack]...)
	}
	if len(reports) == 0 {
		slog.Warn("⚠️ no nag packs configured", "available", nag.PackNames())
		return nil
	}

	md := nag.Summary(reports)
	if err := md.Print(markdown.PrintOptions{Out: c.out, ToFile: c.opts.ReportFile, Raw: c.opts.Raw}); err != nil {
		return err
	}

	if c.opts.SarifFile != "" {
		if err := c.writeSarif(reports, s.Templates(), s.Definition().OutputFormat()); err != nil {
			return err
		}
	}

	failOnError := c.opts.FailOnError || (s.Definition().Nag != nil && s.Definition().Nag.FailOnError)
	for _, r := range reports {
		if failOnError && r.HasErrors() {
			return fmt.Errorf("%w: %s in stack %s", synth.ErrNagFailed, r.Pack, r.Stack)
		}
	}
	return nil
}

// writeSarif saves the reports as a SARIF log. Nothing is synthesized to
// disk, so analysis targets name the template file synth would write.
func (c *Checker) writeSarif(reports []*types.NagReport, templates map[string]*cfn.Template, format types.OutputFormat) error {
	targets := make(map[string]nag.SarifTarget, len(templates))
	for name, tmpl := range templates {
		targets[name] = nag.SarifTarget{URI: synth.TemplateFileName(name, format), Template: tmpl}
	}

	sarifLog, err := nag.Sarif(reports, targets)
	if err != nil {
		return err
	}
	data, err := sarifLog.JSON()
	if err != nil {
		return err
	}
	if err := persistence.NewDirService(filepath.Dir(c.opts.SarifFile)).WriteFile(filepath.Base(c.opts.SarifFile), data); err != nil {
		return fmt.Errorf("failed to write sarif log: %w", err)
	}
	slog.Info("📝 wrote nag sarif log", "results", len(sarifLog.Runs[0].Results), "file", c.opts.SarifFile)
	return nil
}
