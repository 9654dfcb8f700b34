package synth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/looplab/fsm"
	"golang.org/x/sync/errgroup"

	"github.com/confluentinc/cfnkit/internal/services/nag"
	"github.com/confluentinc/cfnkit/internal/services/persistence"
	"github.com/confluentinc/cfnkit/internal/types"
	"github.com/confluentinc/cfnkit/pkg/cfn"
)

// Synth phases
const (
	StatePending     = "pending"
	StateLoaded      = "loaded"
	StateBuilt       = "built"
	StateSynthesized = "synthesized"
	StateWritten     = "written"
)

const (
	EventLoad       = "load"
	EventBuild      = "build"
	EventSynthesize = "synthesize"
	EventWrite      = "write"
)

// ErrNagFailed is returned by Run when FailOnNagError is set and a nag pack
// reports an Error level finding. Everything has been written by then.
var ErrNagFailed = errors.New("nag reported errors")

type SynthOpts struct {
	DefinitionFile string
	OutDir         string
	// Format overrides the definition's format when set.
	Format types.OutputFormat
	// Stacks limits synthesis to the named stacks; empty means all.
	Stacks []string
	// Parameters overrides parameter defaults, by parameter name, in every
	// selected stack that declares the parameter.
	Parameters map[string]string

	// NagPacks adds rule packs to the ones named in the definition.
	NagPacks []string
	// IncludeCompliant overrides the definition's nag.include_compliant
	// when set.
	IncludeCompliant *bool
	FailOnNagError   bool
}

type Synthesizer struct {
	opts  SynthOpts
	fsm   *fsm.FSM
	store persistence.Service

	definition *types.Definition
	stacks     []*cfn.Stack
	templates  map[string]*cfn.Template
	reports    map[string][]*types.NagReport
	manifest   *types.Manifest
}

func NewSynthesizer(opts SynthOpts) *Synthesizer {
	s := &Synthesizer{
		opts:      opts,
		store:     persistence.NewDirService(opts.OutDir),
		templates: map[string]*cfn.Template{},
		reports:   map[string][]*types.NagReport{},
	}

	s.fsm = fsm.NewFSM(
		StatePending,
		fsm.Events{
			{Name: EventLoad, Src: []string{StatePending}, Dst: StateLoaded},
			{Name: EventBuild, Src: []string{StateLoaded}, Dst: StateBuilt},
			{Name: EventSynthesize, Src: []string{StateBuilt}, Dst: StateSynthesized},
			{Name: EventWrite, Src: []string{StateSynthesized}, Dst: StateWritten},
		},
		fsm.Callbacks{
			"after_event": func(_ context.Context, e *fsm.Event) {
				slog.Debug("🔁 synth phase changed", "from", e.Src, "to", e.Dst)
			},
		},
	)

	return s
}

// WithStore replaces the directory store the synthesizer writes to.
func (s *Synthesizer) WithStore(store persistence.Service) *Synthesizer {
	s.store = store
	return s
}

func (s *Synthesizer) Current() string {
	return s.fsm.Current()
}

func (s *Synthesizer) Definition() *types.Definition {
	return s.definition
}

// Templates returns the synthesized templates keyed by stack name.
func (s *Synthesizer) Templates() map[string]*cfn.Template {
	return s.templates
}

// Reports returns the nag reports keyed by stack name.
func (s *Synthesizer) Reports() map[string][]*types.NagReport {
	return s.reports
}

func (s *Synthesizer) Manifest() *types.Manifest {
	return s.manifest
}

// Run walks every phase: load, build, synthesize, write.
func (s *Synthesizer) Run(ctx context.Context) (*types.Manifest, error) {
	slog.Info("🏁 synthesizing stacks", "definition", s.opts.DefinitionFile, "out_dir", s.opts.OutDir)

	if err := s.Load(ctx); err != nil {
		return nil, err
	}
	if err := s.Build(ctx); err != nil {
		return nil, err
	}
	if err := s.Synthesize(ctx); err != nil {
		return nil, err
	}
	if err := s.Write(ctx); err != nil {
		return nil, err
	}

	slog.Info("✅ synthesis complete", "stacks", len(s.manifest.Stacks), "out_dir", s.opts.OutDir)

	if s.opts.FailOnNagError || (s.definition.Nag != nil && s.definition.Nag.FailOnError) {
		for _, name := range sortedKeys(s.reports) {
			for _, r := range s.reports[name] {
				if r.HasErrors() {
					return s.manifest, fmt.Errorf("%w: %s in stack %s", ErrNagFailed, r.Pack, name)
				}
			}
		}
	}
	return s.manifest, nil
}

// transition fires event after checking that it is allowed, so that no work
// is done for an invalid transition.
func (s *Synthesizer) transition(ctx context.Context, event string, work func() error) error {
	if !s.fsm.Can(event) {
		return fmt.Errorf("cannot %s while %s", event, s.fsm.Current())
	}
	if err := work(); err != nil {
		return err
	}
	return s.fsm.Event(ctx, event)
}

// Load reads and validates the definition file.
func (s *Synthesizer) Load(ctx context.Context) error {
	return s.transition(ctx, EventLoad, func() error {
		slog.Info("📖 reading definition", "file", s.opts.DefinitionFile)
		def, err := types.NewDefinitionFromFile(s.opts.DefinitionFile)
		if err != nil {
			return err
		}

		for _, name := range s.opts.Stacks {
			if _, ok := def.Stack(name); !ok {
				return fmt.Errorf("stack %q is not defined in %s", name, s.opts.DefinitionFile)
			}
		}
		s.definition = def
		return s.applyParameters()
	})
}

// Build turns every selected stack definition into a typed stack.
func (s *Synthesizer) Build(ctx context.Context) error {
	return s.transition(ctx, EventBuild, func() error {
		var errs []error
		for i := range s.definition.Stacks {
			sd := &s.definition.Stacks[i]
			if !s.selected(sd.Name) {
				continue
			}
			stack, err := BuildStack(s.definition, sd)
			if err != nil {
				errs = append(errs, fmt.Errorf("stack %s: %w", sd.Name, err))
				continue
			}
			slog.Debug("🧱 built stack", "stack", sd.Name, "resources", len(stack.Resources()))
			s.stacks = append(s.stacks, stack)
		}
		return errors.Join(errs...)
	})
}

func (s *Synthesizer) applyParameters() error {
	for _, name := range sortedKeys(s.opts.Parameters) {
		declared := false
		for i := range s.definition.Stacks {
			sd := &s.definition.Stacks[i]
			p, ok := sd.Parameters[name]
			if !ok || !s.selected(sd.Name) {
				continue
			}
			p.Default = s.opts.Parameters[name]
			sd.Parameters[name] = p
			declared = true
		}
		if !declared {
			return fmt.Errorf("parameter %s is not declared by any selected stack", name)
		}
	}
	return nil
}

func (s *Synthesizer) selected(name string) bool {
	if len(s.opts.Stacks) == 0 {
		return true
	}
	for _, n := range s.opts.Stacks {
		if n == name {
			return true
		}
	}
	return false
}

func (s *Synthesizer) nagPacks() ([]*nag.Pack, error) {
	seen := map[string]bool{}
	var names []string
	if s.definition.Nag != nil {
		names = append(names, s.definition.Nag.Packs...)
	}
	names = append(names, s.opts.NagPacks...)

	var packs []*nag.Pack
	for _, name := range names {
		pack, err := nag.PackByName(name)
		if err != nil {
			return nil, err
		}
		// aliases resolve to the same pack
		if seen[pack.Name] {
			continue
		}
		seen[pack.Name] = true
		packs = append(packs, pack)
	}
	return packs, nil
}

// Synthesize renders every stack and runs the nag packs, one goroutine per
// stack. Each goroutine owns its stack.
func (s *Synthesizer) Synthesize(ctx context.Context) error {
	return s.transition(ctx, EventSynthesize, func() error {
		packs, err := s.nagPacks()
		if err != nil {
			return err
		}
		includeCompliant := s.definition.Nag.IncludesCompliant()
		if s.opts.IncludeCompliant != nil {
			includeCompliant = *s.opts.IncludeCompliant
		}
		nagService := nag.NewNagService(includeCompliant)

		templates := make([]*cfn.Template, len(s.stacks))
		reports := make([][]*types.NagReport, len(s.stacks))

		g, _ := errgroup.WithContext(ctx)
		for i, stack := range s.stacks {
			g.Go(func() error {
				tmpl, err := stack.Synth()
				if err != nil {
					return fmt.Errorf("failed to synthesize stack %s: %w", stack.Name(), err)
				}
				templates[i] = tmpl

				for _, pack := range packs {
					report, err := nagService.Check(stack, pack)
					if err != nil {
						return fmt.Errorf("failed to run %s on stack %s: %w", pack.Name, stack.Name(), err)
					}
					reports[i] = append(reports[i], report)
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		for i, stack := range s.stacks {
			s.templates[stack.Name()] = templates[i]
			if len(reports[i]) > 0 {
				s.reports[stack.Name()] = reports[i]
			}
		}
		return nil
	})
}

// Write stores templates, nag reports and the manifest in the out dir.
func (s *Synthesizer) Write(ctx context.Context) error {
	return s.transition(ctx, EventWrite, func() error {
		format := s.opts.Format
		if format == "" {
			format = s.definition.OutputFormat()
		}

		manifest := types.NewManifest(s.definition.App)
		var reports []*types.NagReport
		targets := map[string]nag.SarifTarget{}
		for _, name := range sortedKeys(s.templates) {
			tmpl := s.templates[name]

			var data []byte
			var err error
			if format == types.OutputFormatYAML {
				data, err = tmpl.YAML()
			} else {
				data, err = tmpl.JSON()
			}
			if err != nil {
				return fmt.Errorf("failed to render stack %s: %w", name, err)
			}

			file := TemplateFileName(name, format)
			if err := s.store.WriteFile(file, data); err != nil {
				return fmt.Errorf("failed to write %s: %w", file, err)
			}
			slog.Info("📝 wrote template", "stack", name, "file", s.store.Path(file))

			sum := sha256.Sum256(data)
			entry := types.ManifestStack{
				Name:          name,
				TemplateFile:  file,
				TemplateHash:  hex.EncodeToString(sum[:]),
				ResourceCount: len(tmpl.Resources),
			}

			for _, report := range s.reports[name] {
				if err := s.store.SaveWithRetry(report.FileName(), report); err != nil {
					return err
				}
				entry.NagReports = append(entry.NagReports, report.FileName())
				reports = append(reports, report)
			}
			targets[name] = nag.SarifTarget{URI: file, Template: tmpl}
			manifest.Stacks = append(manifest.Stacks, entry)
		}

		if len(reports) > 0 {
			sarifLog, err := nag.Sarif(reports, targets)
			if err != nil {
				return err
			}
			data, err := sarifLog.JSON()
			if err != nil {
				return err
			}
			if err := s.store.WriteFile(types.NagSarifFile, data); err != nil {
				return fmt.Errorf("failed to write %s: %w", types.NagSarifFile, err)
			}
			manifest.NagSarif = types.NagSarifFile
			slog.Info("📝 wrote nag sarif log", "results", len(sarifLog.Runs[0].Results), "file", s.store.Path(types.NagSarifFile))
		}

		if err := s.store.SaveWithRetry(types.ManifestFile, manifest); err != nil {
			return err
		}
		s.manifest = manifest
		return nil
	})
}

// TemplateFileName is the file a stack's template is written to.
func TemplateFileName(stack string, format types.OutputFormat) string {
	return fmt.Sprintf("%s.template.%s", stack, format.Extension())
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
