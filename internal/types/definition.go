package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
)

const DefaultDefinitionFile = "cfnkit.yaml"

var (
	stackNamePattern = regexp.MustCompile(`^[a-zA-Z][-a-zA-Z0-9]{0,127}$`)
	logicalIDPattern = regexp.MustCompile(`^[A-Za-z0-9]{1,255}$`)
	typeNamePattern  = regexp.MustCompile(`^([a-zA-Z0-9:]+)$`)
)

// Definition is the content of a cfnkit.yaml file: the stacks an app is made
// of, with resources in wire form.
type Definition struct {
	App    string            `yaml:"app" validate:"required"`
	Format OutputFormat      `yaml:"format,omitempty" validate:"omitempty,oneof=json yaml"`
	Nag    *NagSettings      `yaml:"nag,omitempty"`
	Stacks []StackDefinition `yaml:"stacks" validate:"required,min=1,unique=Name,dive"`

	// dir is the directory the definition was read from; includes resolve
	// against it
	dir string
}

type NagSettings struct {
	Packs []string `yaml:"packs" validate:"dive,oneof=AwsSolutions AwsSolutionsChecks HIPAA.Security HIPAASecurityChecks NIST.800.53.R4 NIST80053R4Checks NIST.800.53.R5 NIST80053R5Checks PCI.DSS.321 PCIDSS321Checks"`
	// IncludeCompliant defaults to true when unset.
	IncludeCompliant *bool `yaml:"include_compliant"`
	FailOnError      bool  `yaml:"fail_on_error"`
}

// IncludesCompliant reports whether nag reports keep Compliant and N/A lines.
func (n *NagSettings) IncludesCompliant() bool {
	if n == nil || n.IncludeCompliant == nil {
		return true
	}
	return *n.IncludeCompliant
}

type StackDefinition struct {
	Name        string                         `yaml:"name" validate:"required,stackname"`
	Description string                         `yaml:"description,omitempty"`
	Includes    []string                       `yaml:"includes,omitempty" validate:"dive,required"`
	Parameters  map[string]ParameterDefinition `yaml:"parameters,omitempty" validate:"dive,keys,logicalid,endkeys"`
	Conditions  map[string]any                 `yaml:"conditions,omitempty" validate:"dive,keys,logicalid,endkeys"`
	Resources   map[string]ResourceDefinition  `yaml:"resources,omitempty" validate:"dive,keys,logicalid,endkeys"`
	Outputs     map[string]OutputDefinition    `yaml:"outputs,omitempty" validate:"dive,keys,logicalid,endkeys"`
}

type ParameterDefinition struct {
	Type                  string   `yaml:"type" validate:"required"`
	Description           string   `yaml:"description,omitempty"`
	Default               any      `yaml:"default,omitempty"`
	AllowedValues         []any    `yaml:"allowed_values,omitempty"`
	AllowedPattern        string   `yaml:"allowed_pattern,omitempty"`
	ConstraintDescription string   `yaml:"constraint_description,omitempty"`
	MinLength             *int     `yaml:"min_length,omitempty"`
	MaxLength             *int     `yaml:"max_length,omitempty"`
	MinValue              *float64 `yaml:"min_value,omitempty"`
	MaxValue              *float64 `yaml:"max_value,omitempty"`
	NoEcho                bool     `yaml:"no_echo,omitempty"`
}

type ResourceDefinition struct {
	Type                string         `yaml:"type" validate:"required,typename"`
	Properties          map[string]any `yaml:"properties,omitempty"`
	DependsOn           []string       `yaml:"depends_on,omitempty" validate:"dive,logicalid"`
	Condition           string         `yaml:"condition,omitempty"`
	DeletionPolicy      string         `yaml:"deletion_policy,omitempty" validate:"omitempty,oneof=Delete Retain Snapshot RetainExceptOnCreate"`
	UpdateReplacePolicy string         `yaml:"update_replace_policy,omitempty" validate:"omitempty,oneof=Delete Retain Snapshot RetainExceptOnCreate"`
	Metadata            map[string]any `yaml:"metadata,omitempty"`
}

type OutputDefinition struct {
	Value       any    `yaml:"value" validate:"required"`
	Description string `yaml:"description,omitempty"`
	ExportName  any    `yaml:"export_name,omitempty"`
	Condition   string `yaml:"condition,omitempty"`
}

func NewDefinitionFromFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	def, err := ParseDefinition(data)
	if err != nil {
		return nil, fmt.Errorf("invalid definition %s: %w", path, err)
	}
	def.dir = filepath.Dir(path)

	return def, nil
}

// ParseDefinition unmarshals and validates a definition. Includes of a parsed
// definition resolve against the working directory.
func ParseDefinition(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to unmarshal YAML: %w", err)
	}

	if valid, errs := def.Validate(); !valid {
		return nil, errors.Join(errs...)
	}

	return &def, nil
}

// Validate checks the definition's structure. It does not check references
// between resources; synthesis does that.
func (d Definition) Validate() (bool, []error) {
	errs := []error{}

	validate := newValidator()
	if err := validate.Struct(d); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return false, []error{err}
		}
		for _, fe := range fieldErrs {
			errs = append(errs, fmt.Errorf("%s: failed %q validation", fe.Namespace(), fe.Tag()))
		}
	}

	// map values are not reached by dive once the keys are validated
	for _, stack := range d.Stacks {
		for _, id := range sortedKeys(stack.Parameters) {
			errs = append(errs, entryErrors(validate, stack.Name, "parameter", id, stack.Parameters[id])...)
		}
		for _, id := range sortedKeys(stack.Resources) {
			errs = append(errs, entryErrors(validate, stack.Name, "resource", id, stack.Resources[id])...)
		}
		for _, id := range sortedKeys(stack.Outputs) {
			errs = append(errs, entryErrors(validate, stack.Name, "output", id, stack.Outputs[id])...)
		}

		for id := range stack.Parameters {
			if _, clash := stack.Resources[id]; clash {
				errs = append(errs, fmt.Errorf("stack %s: %s is declared as both a parameter and a resource", stack.Name, id))
			}
		}
	}

	return len(errs) == 0, errs
}

func entryErrors(validate *validator.Validate, stack, kind, id string, entry any) []error {
	err := validate.Struct(entry)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []error{fmt.Errorf("stack %s: %s %s: %w", stack, kind, id, err)}
	}
	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, fmt.Errorf("stack %s: %s %s: %s failed %q validation", stack, kind, id, fe.Field(), fe.Tag()))
	}
	return errs
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IncludePath resolves an include path of the definition.
func (d *Definition) IncludePath(include string) string {
	if filepath.IsAbs(include) || d.dir == "" {
		return include
	}
	return filepath.Join(d.dir, include)
}

// OutputFormat returns the configured template format, JSON by default.
func (d *Definition) OutputFormat() OutputFormat {
	if d.Format == "" {
		return OutputFormatJSON
	}
	return d.Format
}

// Stack returns the stack definition with the given name.
func (d *Definition) Stack(name string) (*StackDefinition, bool) {
	for i := range d.Stacks {
		if d.Stacks[i].Name == name {
			return &d.Stacks[i], true
		}
	}
	return nil, false
}

// ResourceIDs returns the logical ids of the stack's resources, sorted.
func (s *StackDefinition) ResourceIDs() []string {
	ids := make([]string, 0, len(s.Resources))
	for id := range s.Resources {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// WireProperties returns the resource's properties with YAML scalars
// normalized to their JSON types, matching parsed templates.
func (r ResourceDefinition) WireProperties() (map[string]any, error) {
	if r.Properties == nil {
		return map[string]any{}, nil
	}
	normalized, err := NormalizeJSON(r.Properties)
	if err != nil {
		return nil, err
	}
	return normalized.(map[string]any), nil
}

// NormalizeJSON round-trips v through encoding/json so numbers become
// float64 and maps become map[string]any.
func NormalizeJSON(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal value: %w", err)
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal value: %w", err)
	}
	return out, nil
}

func newValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	_ = validate.RegisterValidation("stackname", func(fl validator.FieldLevel) bool {
		return stackNamePattern.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation("logicalid", func(fl validator.FieldLevel) bool {
		return logicalIDPattern.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation("typename", func(fl validator.FieldLevel) bool {
		return typeNamePattern.MatchString(fl.Field().String())
	})
	return validate
}
