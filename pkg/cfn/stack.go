package cfn

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"sort"
)

var (
	logicalIDPattern    = regexp.MustCompile(`^[A-Za-z0-9]{1,255}$`)
	stackNamePattern    = regexp.MustCompile(`^[a-zA-Z][-a-zA-Z0-9]{0,127}$`)
	resourceTypePattern = regexp.MustCompile(`^([a-zA-Z0-9:]+)$`)
)

// StackProps are the template-level settings of a stack.
type StackProps struct {
	Description string
	Transform   []string
	Metadata    map[string]any
}

// Stack collects resources, parameters, outputs, conditions and mappings and
// synthesizes them into a Template. A Stack is not safe for concurrent use.
type Stack struct {
	name  string
	props StackProps

	// ids holds every logical id in use; resources and parameters share one
	// namespace
	ids        map[string]string
	resources  []Resource
	parameters map[string]*Parameter
	outputs    map[string]*Output
	conditions map[string]Condition
	mappings   map[string]Mapping
}

// Mapping is a two-level lookup table used with FindInMap.
type Mapping map[string]map[string]any

// NewStack returns an empty stack. name must start with a letter and contain
// only letters, digits and hyphens (at most 128 characters).
func NewStack(name string, props *StackProps) (*Stack, error) {
	if !stackNamePattern.MatchString(name) {
		return nil, fmt.Errorf("invalid stack name %q", name)
	}

	s := &Stack{
		name:       name,
		ids:        map[string]string{},
		parameters: map[string]*Parameter{},
		outputs:    map[string]*Output{},
		conditions: map[string]Condition{},
		mappings:   map[string]Mapping{},
	}
	if props != nil {
		s.props = *props
	}
	return s, nil
}

func (s *Stack) Name() string { return s.name }

func (s *Stack) Description() string { return s.props.Description }

// Resources returns the stack's resources in the order they were added.
func (s *Stack) Resources() []Resource {
	return slices.Clone(s.resources)
}

// Resource returns the resource with the given logical id.
func (s *Stack) Resource(id string) (Resource, bool) {
	for _, r := range s.resources {
		if r.LogicalID() == id {
			return r, true
		}
	}
	return nil, false
}

func (s *Stack) claim(id, kind string) error {
	if !logicalIDPattern.MatchString(id) {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	if existing, ok := s.ids[id]; ok {
		return fmt.Errorf("%w: %q is already a %s in stack %s", ErrDuplicateID, id, existing, s.name)
	}
	s.ids[id] = kind
	return nil
}

// Add declares r in the stack under id. The resource's properties are
// validated first; a resource can only belong to one stack.
func (s *Stack) Add(id string, r Resource) error {
	if s == nil {
		return errors.New("stack is required")
	}
	if r.base().stack != nil {
		return fmt.Errorf("resource %q already belongs to stack %s", r.base().logicalID, r.base().stack.name)
	}
	if err := Validate(r.Properties()); err != nil {
		return fmt.Errorf("invalid %s %q: %w", r.CFNType(), id, err)
	}
	if err := s.claim(id, "resource"); err != nil {
		return err
	}

	b := r.base()
	b.stack = s
	b.logicalID = id
	s.resources = append(s.resources, r)
	return nil
}

// AddParameter declares a template parameter. An empty Type defaults to String.
func (s *Stack) AddParameter(id string, p *Parameter) (*Parameter, error) {
	if p == nil {
		p = &Parameter{}
	}
	if p.Type == "" {
		p.Type = "String"
	}
	if err := s.claim(id, "parameter"); err != nil {
		return nil, err
	}
	p.id = id
	s.parameters[id] = p
	return p, nil
}

// AddOutput declares a template output. Output ids live in their own namespace.
func (s *Stack) AddOutput(id string, o *Output) error {
	if !logicalIDPattern.MatchString(id) {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	if _, ok := s.outputs[id]; ok {
		return fmt.Errorf("%w: output %q", ErrDuplicateID, id)
	}
	if o == nil || o.Value == nil {
		return fmt.Errorf("output %q must have a value", id)
	}
	s.outputs[id] = o
	return nil
}

// AddCondition declares a named condition.
func (s *Stack) AddCondition(id string, c Condition) error {
	if !logicalIDPattern.MatchString(id) {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	if _, ok := s.conditions[id]; ok {
		return fmt.Errorf("%w: condition %q", ErrDuplicateID, id)
	}
	s.conditions[id] = c
	return nil
}

// AddMapping declares a mapping for use with FindInMap.
func (s *Stack) AddMapping(id string, m Mapping) error {
	if !logicalIDPattern.MatchString(id) {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	if _, ok := s.mappings[id]; ok {
		return fmt.Errorf("%w: mapping %q", ErrDuplicateID, id)
	}
	s.mappings[id] = m
	return nil
}

// Synth validates every resource against its current properties and renders
// the stack into a Template. References to undefined ids and dependency
// cycles are reported as errors.
func (s *Stack) Synth() (*Template, error) {
	var errs ValidationErrors

	t := &Template{
		AWSTemplateFormatVersion: TemplateFormatVersion,
		Description:              s.props.Description,
		Resources:                make(map[string]*TemplateResource, len(s.resources)),
	}
	switch len(s.props.Transform) {
	case 0:
	case 1:
		t.Transform = s.props.Transform[0]
	default:
		t.Transform = slices.Clone(s.props.Transform)
	}
	if len(s.props.Metadata) > 0 {
		t.Metadata = Resolve(s.props.Metadata).(map[string]any)
	}

	for _, r := range s.resources {
		if err := Validate(r.Properties()); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", r.LogicalID(), err))
			continue
		}
		t.Resources[r.LogicalID()] = renderResource(r)
	}
	if len(errs) > 0 {
		return nil, errs
	}

	if len(s.parameters) > 0 {
		t.Parameters = make(map[string]*Parameter, len(s.parameters))
		for id, p := range s.parameters {
			t.Parameters[id] = p
		}
	}
	if len(s.outputs) > 0 {
		t.Outputs = make(map[string]*Output, len(s.outputs))
		for id, o := range s.outputs {
			t.Outputs[id] = o.resolved()
		}
	}
	if len(s.conditions) > 0 {
		t.Conditions = make(map[string]any, len(s.conditions))
		for id, c := range s.conditions {
			t.Conditions[id] = Resolve(c)
		}
	}
	if len(s.mappings) > 0 {
		t.Mappings = make(map[string]any, len(s.mappings))
		for id, m := range s.mappings {
			t.Mappings[id] = normalizeJSON(m)
		}
	}

	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("stack %s: %w", s.name, err)
	}
	if _, err := t.Graph(); err != nil {
		return nil, fmt.Errorf("stack %s: %w", s.name, err)
	}
	return t, nil
}

// Graph synthesizes the stack and returns its resource dependency graph.
func (s *Stack) Graph() (*Graph, error) {
	t, err := s.Synth()
	if err != nil {
		return nil, err
	}
	return t.Graph()
}

func renderResource(r Resource) *TemplateResource {
	opts := r.Options()

	var props map[string]any
	switch p := r.Properties().(type) {
	case map[string]any:
		props = Resolve(p).(map[string]any)
	default:
		props = Render(p)
	}
	if len(props) == 0 {
		props = nil
	}

	tr := &TemplateResource{
		Type:                r.CFNType(),
		Properties:          props,
		DependsOn:           slices.Clone(opts.DependsOn),
		Condition:           opts.Condition,
		DeletionPolicy:      string(opts.DeletionPolicy),
		UpdateReplacePolicy: string(opts.UpdateReplacePolicy),
	}
	if len(opts.Metadata) > 0 {
		tr.Metadata = Resolve(opts.Metadata).(map[string]any)
	}
	return tr
}

// IncludeResult gives access to what Include imported.
type IncludeResult struct {
	Resources  map[string]Resource
	Parameters map[string]*Parameter
}

// Resource returns an imported resource by logical id.
func (r *IncludeResult) Resource(id string) (Resource, bool) {
	res, ok := r.Resources[id]
	return res, ok
}

// Include imports an existing template into the stack. Resources of
// registered types are decoded into their typed bindings; other types, and
// resources carrying properties the binding does not model, are kept as
// *Untyped so nothing is lost.
func (s *Stack) Include(t *Template) (*IncludeResult, error) {
	if t == nil {
		return nil, errors.New("template is required")
	}
	if errs := t.emptyEntries(); len(errs) > 0 {
		return nil, fmt.Errorf("failed to include template: %w", errs)
	}

	result := &IncludeResult{
		Resources:  map[string]Resource{},
		Parameters: map[string]*Parameter{},
	}

	if s.props.Description == "" {
		s.props.Description = t.Description
	}
	for _, tr := range transformsOf(t.Transform) {
		if !slices.Contains(s.props.Transform, tr) {
			s.props.Transform = append(s.props.Transform, tr)
		}
	}

	for _, id := range sortedMapKeys(t.Parameters) {
		p := *t.Parameters[id]
		added, err := s.AddParameter(id, &p)
		if err != nil {
			return nil, fmt.Errorf("failed to include parameter %s: %w", id, err)
		}
		result.Parameters[id] = added
	}
	for _, id := range sortedMapKeys(t.Conditions) {
		c, _ := t.Conditions[id].(map[string]any)
		if err := s.AddCondition(id, Condition(c)); err != nil {
			return nil, fmt.Errorf("failed to include condition %s: %w", id, err)
		}
	}
	for _, id := range sortedMapKeys(t.Mappings) {
		m, err := mappingOf(t.Mappings[id])
		if err != nil {
			return nil, fmt.Errorf("failed to include mapping %s: %w", id, err)
		}
		if err := s.AddMapping(id, m); err != nil {
			return nil, fmt.Errorf("failed to include mapping %s: %w", id, err)
		}
	}

	for _, id := range sortedMapKeys(t.Resources) {
		tr := t.Resources[id]
		r, err := includeResource(s, id, tr)
		if err != nil {
			return nil, fmt.Errorf("failed to include resource %s: %w", id, err)
		}
		opts := r.Options()
		opts.DependsOn = slices.Clone(tr.DependsOn)
		opts.Condition = tr.Condition
		opts.DeletionPolicy = DeletionPolicy(tr.DeletionPolicy)
		opts.UpdateReplacePolicy = DeletionPolicy(tr.UpdateReplacePolicy)
		opts.Metadata = tr.Metadata
		result.Resources[id] = r
	}

	for _, id := range sortedMapKeys(t.Outputs) {
		o := *t.Outputs[id]
		if err := s.AddOutput(id, &o); err != nil {
			return nil, fmt.Errorf("failed to include output %s: %w", id, err)
		}
	}

	return result, nil
}

func includeResource(s *Stack, id string, tr *TemplateResource) (Resource, error) {
	factory, ok := Lookup(tr.Type)
	if !ok {
		return NewUntyped(s, id, tr.Type, tr.Properties)
	}
	r, err := factory.New(s, id, tr.Properties)
	var unknown *UnknownPropertyError
	if errors.As(err, &unknown) || errors.Is(err, ErrUndecodable) {
		return NewUntyped(s, id, tr.Type, tr.Properties)
	}
	return r, err
}

func mappingOf(v any) (Mapping, error) {
	top, ok := v.(map[string]any)
	if !ok {
		return nil, errors.New("mapping must be an object")
	}
	m := make(Mapping, len(top))
	for key, second := range top {
		inner, ok := second.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("mapping key %q must hold an object", key)
		}
		m[key] = inner
	}
	return m, nil
}

func transformsOf(v any) []string {
	switch t := v.(type) {
	case string:
		return []string{t}
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func sortedMapKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
