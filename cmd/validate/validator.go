package validate

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"

	"github.com/confluentinc/cfnkit/internal/generators/synth"
	"github.com/confluentinc/cfnkit/internal/utils"
)

type ValidatorOpts struct {
	Templates      []string
	DefinitionFile string
	Stacks         []string
}

// Validator checks templates on disk and, when a definition is given, that
// every stack of it synthesizes.
type Validator struct {
	opts ValidatorOpts
	out  io.Writer
}

func NewValidator(opts ValidatorOpts, out io.Writer) *Validator {
	return &Validator{opts: opts, out: out}
}

func (v *Validator) Run(ctx context.Context) error {
	failed := 0

	for _, path := range v.opts.Templates {
		errs := v.validateTemplate(path)
		v.print(path, errs)
		if len(errs) > 0 {
			failed++
		}
	}

	if v.opts.DefinitionFile != "" {
		s := synth.NewSynthesizer(synth.SynthOpts{DefinitionFile: v.opts.DefinitionFile, Stacks: v.opts.Stacks})
		err := s.Load(ctx)
		if err == nil {
			err = s.Build(ctx)
		}
		if err == nil {
			err = s.Synthesize(ctx)
		}
		if err != nil {
			v.print(v.opts.DefinitionFile, []error{err})
			failed++
		} else {
			v.print(v.opts.DefinitionFile, nil)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d input(s) failed validation", failed, v.inputs())
	}
	slog.Debug("✅ validation passed", "inputs", v.inputs())
	return nil
}

func (v *Validator) inputs() int {
	n := len(v.opts.Templates)
	if v.opts.DefinitionFile != "" {
		n++
	}
	return n
}

func (v *Validator) validateTemplate(path string) []error {
	tmpl, err := utils.LoadTemplate(path)
	if err != nil {
		return []error{err}
	}

	var errs []error
	if err := tmpl.Validate(); err != nil {
		errs = append(errs, err)
	}
	if _, err := tmpl.Graph(); err != nil {
		errs = append(errs, err)
	}
	return errs
}

func (v *Validator) print(name string, errs []error) {
	if len(errs) == 0 {
		fmt.Fprintf(v.out, "%s %s\n", color.GreenString("✔"), name)
		return
	}
	fmt.Fprintf(v.out, "%s %s\n", color.RedString("✘"), name)
	for _, err := range errs {
		fmt.Fprintf(v.out, "    %s\n", err)
	}
}
