package codegen

import (
	"bytes"
	"embed"
	"fmt"
	"go/format"
	"log/slog"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/Masterminds/sprig/v3"
	"github.com/iancoleman/strcase"

	"github.com/confluentinc/cfnkit/internal/services/persistence"
)

//go:embed assets
var assetsFS embed.FS

const docFile = "doc.go"

var (
	resourceTemplate = mustTemplate("assets/resource.go.tmpl")
	docTemplate      = mustTemplate("assets/doc.go.tmpl")
)

func mustTemplate(name string) *template.Template {
	content, err := assetsFS.ReadFile(name)
	if err != nil {
		panic(err)
	}
	return template.Must(template.New(filepath.Base(name)).
		Funcs(sprig.HermeticTxtFuncMap()).
		Parse(string(content)))
}

type GenerateOpts struct {
	SpecFile string
	Service  string
	// Package defaults to the lower cased service name.
	Package string
	// OutDir defaults to pkg/cfn/<package>.
	OutDir string
}

type CodeGenerator struct {
	opts  GenerateOpts
	store persistence.Service
}

func NewCodeGenerator(opts GenerateOpts) *CodeGenerator {
	if opts.Package == "" {
		opts.Package = strings.ToLower(opts.Service)
	}
	if opts.OutDir == "" {
		opts.OutDir = filepath.Join("pkg", "cfn", opts.Package)
	}
	return &CodeGenerator{opts: opts, store: persistence.NewDirService(opts.OutDir)}
}

func (g *CodeGenerator) Run() error {
	slog.Info("🏁 generating resource bindings", "service", g.opts.Service, "spec", g.opts.SpecFile)

	spec, err := LoadSpecification(g.opts.SpecFile)
	if err != nil {
		return err
	}

	files, err := Generate(spec, g.opts.Service, g.opts.Package)
	if err != nil {
		return err
	}

	for _, name := range sortedKeys(files) {
		if err := g.store.WriteFile(name, files[name]); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
		slog.Debug("📝 wrote binding", "file", g.store.Path(name))
	}

	slog.Info("✅ resource bindings generated",
		"service", g.opts.Service,
		"files", len(files),
		"directory", g.opts.OutDir,
		"spec_version", spec.ResourceSpecificationVersion,
	)
	return nil
}

// Generate renders one Go file per resource type of service, plus doc.go,
// keyed by file name.
func Generate(spec *Specification, service, pkg string) (map[string][]byte, error) {
	model, err := newServiceModel(spec, service, pkg)
	if err != nil {
		return nil, err
	}
	resources, err := model.files()
	if err != nil {
		return nil, err
	}

	out := make(map[string][]byte, len(resources)+1)

	doc, err := render(docTemplate, map[string]string{"Package": pkg, "Service": model.service})
	if err != nil {
		return nil, err
	}
	out[docFile] = doc

	for _, r := range resources {
		src, err := render(resourceTemplate, r)
		if err != nil {
			return nil, fmt.Errorf("failed to generate %s: %w", r.CFNType, err)
		}
		out[strcase.ToSnake(r.Name)+".go"] = src
	}
	return out, nil
}

func render(tmpl *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format generated code: %w", err)
	}
	return src, nil
}
