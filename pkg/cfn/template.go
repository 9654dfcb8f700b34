package cfn

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// TemplateFormatVersion is the only template format version CloudFormation accepts.
const TemplateFormatVersion = "2010-09-09"

// Template is a synthesized CloudFormation template. Fields are declared in
// the canonical section order, which JSON and YAML output preserve.
type Template struct {
	AWSTemplateFormatVersion string                       `json:"AWSTemplateFormatVersion,omitempty"`
	Description              string                       `json:"Description,omitempty"`
	Transform                any                          `json:"Transform,omitempty"`
	Metadata                 map[string]any               `json:"Metadata,omitempty"`
	Parameters               map[string]*Parameter        `json:"Parameters,omitempty"`
	Mappings                 map[string]any               `json:"Mappings,omitempty"`
	Conditions               map[string]any               `json:"Conditions,omitempty"`
	Resources                map[string]*TemplateResource `json:"Resources"`
	Outputs                  map[string]*Output           `json:"Outputs,omitempty"`
}

// TemplateResource is one entry of the Resources section.
type TemplateResource struct {
	Type                string         `json:"Type"`
	Properties          map[string]any `json:"Properties,omitempty"`
	DependsOn           StringList     `json:"DependsOn,omitempty"`
	Condition           string         `json:"Condition,omitempty"`
	DeletionPolicy      string         `json:"DeletionPolicy,omitempty"`
	UpdateReplacePolicy string         `json:"UpdateReplacePolicy,omitempty"`
	Metadata            map[string]any `json:"Metadata,omitempty"`
}

// StringList accepts either a single string or a list of strings, as
// DependsOn does.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*l = StringList{single}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("expected a string or a list of strings: %w", err)
	}
	*l = list
	return nil
}

// Parameter is an entry of the Parameters section.
type Parameter struct {
	Type                  string   `json:"Type"`
	Description           string   `json:"Description,omitempty"`
	Default               any      `json:"Default,omitempty"`
	AllowedValues         []any    `json:"AllowedValues,omitempty"`
	AllowedPattern        string   `json:"AllowedPattern,omitempty"`
	ConstraintDescription string   `json:"ConstraintDescription,omitempty"`
	MinLength             *int     `json:"MinLength,omitempty"`
	MaxLength             *int     `json:"MaxLength,omitempty"`
	MinValue              *float64 `json:"MinValue,omitempty"`
	MaxValue              *float64 `json:"MaxValue,omitempty"`
	NoEcho                bool     `json:"NoEcho,omitempty"`

	id string
}

// Ref returns a token referencing the parameter's value.
func (p *Parameter) Ref() string { return Ref(p.id) }

// ValueAsList returns a list token for CommaDelimitedList and List<...>
// parameters, for use in []string fields.
func (p *Parameter) ValueAsList() []string {
	return []string{encodeToken(listTokenPrefix, "Ref", p.id)}
}

// Output is an entry of the Outputs section.
type Output struct {
	Description string  `json:"Description,omitempty"`
	Value       any     `json:"Value"`
	Export      *Export `json:"Export,omitempty"`
	Condition   string  `json:"Condition,omitempty"`
}

// Export names an output for cross-stack ImportValue.
type Export struct {
	Name any `json:"Name"`
}

func (o *Output) resolved() *Output {
	out := &Output{
		Description: o.Description,
		Value:       RenderValue(o.Value),
		Condition:   o.Condition,
	}
	if o.Export != nil {
		out.Export = &Export{Name: RenderValue(o.Export.Name)}
	}
	return out
}

// Validate checks the template's structure and that every reference points
// at something the template defines.
func (t *Template) Validate() error {
	var errs ValidationErrors

	if t.AWSTemplateFormatVersion != "" && t.AWSTemplateFormatVersion != TemplateFormatVersion {
		errs = append(errs, fmt.Errorf("AWSTemplateFormatVersion must be %s, got %q", TemplateFormatVersion, t.AWSTemplateFormatVersion))
	}
	if len(t.Resources) == 0 {
		errs = append(errs, errors.New("template must declare at least one resource"))
	}
	errs = append(errs, t.emptyEntries()...)

	for _, id := range sortedMapKeys(t.Resources) {
		r := t.Resources[id]
		if !logicalIDPattern.MatchString(id) {
			errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidID, id))
		}
		if r == nil {
			continue
		}
		if !resourceTypePattern.MatchString(r.Type) {
			errs = append(errs, fmt.Errorf("%s: invalid resource type %q", id, r.Type))
		}
		if !DeletionPolicy(r.DeletionPolicy).valid() {
			errs = append(errs, fmt.Errorf("%s: invalid DeletionPolicy %q", id, r.DeletionPolicy))
		}
		if !DeletionPolicy(r.UpdateReplacePolicy).valid() {
			errs = append(errs, fmt.Errorf("%s: invalid UpdateReplacePolicy %q", id, r.UpdateReplacePolicy))
		}
	}

	for _, ref := range t.references() {
		if !t.defines(ref) {
			errs = append(errs, &ReferenceError{From: ref.from, Target: ref.target, Kind: ref.kind})
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Document returns the template as plain maps and slices.
func (t *Template) Document() map[string]any {
	doc, _ := normalizeJSON(t).(map[string]any)
	return doc
}

// JSON renders the template with a two-space indent.
func (t *Template) JSON() ([]byte, error) {
	b, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal template: %w", err)
	}
	return append(b, '\n'), nil
}

// YAML renders the template in block style, keeping the section and key
// order of the JSON form.
func (t *Template) YAML() ([]byte, error) {
	b, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal template: %w", err)
	}

	// JSON is YAML; re-encoding the node tree keeps key order
	var node yaml.Node
	if err := yaml.Unmarshal(b, &node); err != nil {
		return nil, fmt.Errorf("failed to convert template to yaml: %w", err)
	}
	blockStyle(&node)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return nil, fmt.Errorf("failed to encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}

func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}

// ParseTemplate reads a JSON or YAML template. YAML may use the short-form
// intrinsic tags (!Ref, !GetAtt, !Sub, ...).
func ParseTemplate(data []byte) (*Template, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.New("template is empty")
	}

	if trimmed[0] != '{' {
		var node yaml.Node
		if err := yaml.Unmarshal(data, &node); err != nil {
			return nil, fmt.Errorf("failed to parse yaml template: %w", err)
		}
		v, err := nodeValue(&node)
		if err != nil {
			return nil, fmt.Errorf("failed to parse yaml template: %w", err)
		}
		if trimmed, err = json.Marshal(v); err != nil {
			return nil, fmt.Errorf("failed to parse yaml template: %w", err)
		}
	}

	var t Template
	if err := json.Unmarshal(trimmed, &t); err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}
	if errs := t.emptyEntries(); len(errs) > 0 {
		return nil, fmt.Errorf("failed to parse template: %w", errs)
	}
	return &t, nil
}

// emptyEntries reports Resources, Parameters and Outputs entries that are
// declared without a body.
func (t *Template) emptyEntries() ValidationErrors {
	var errs ValidationErrors
	for _, id := range sortedMapKeys(t.Resources) {
		if t.Resources[id] == nil {
			errs = append(errs, fmt.Errorf("%s: resource is empty", id))
		}
	}
	for _, id := range sortedMapKeys(t.Parameters) {
		if t.Parameters[id] == nil {
			errs = append(errs, fmt.Errorf("Parameters.%s: parameter is empty", id))
		}
	}
	for _, id := range sortedMapKeys(t.Outputs) {
		if t.Outputs[id] == nil {
			errs = append(errs, fmt.Errorf("Outputs.%s: output is empty", id))
		}
	}
	return errs
}

// nodeValue converts a YAML node into plain Go values, expanding short-form
// intrinsic tags into their long form.
func nodeValue(n *yaml.Node) (any, error) {
	if fn, ok := shortFormTag(n.Tag); ok {
		return shortFormValue(n, fn)
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return nodeValue(n.Content[0])
	case yaml.AliasNode:
		return nodeValue(n.Alias)
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := nodeValue(c)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.MappingNode:
		out := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, value := n.Content[i], n.Content[i+1]
			v, err := nodeValue(value)
			if err != nil {
				return nil, err
			}
			if key.Value == "<<" && key.Tag == "!!merge" {
				if merged, ok := v.(map[string]any); ok {
					for mk, mv := range merged {
						if _, exists := out[mk]; !exists {
							out[mk] = mv
						}
					}
					continue
				}
			}
			out[key.Value] = v
		}
		return out, nil
	default:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return v, nil
	}
}

func shortFormTag(tag string) (string, bool) {
	if !strings.HasPrefix(tag, "!") || strings.HasPrefix(tag, "!!") {
		return "", false
	}
	return tag[1:], true
}

func shortFormValue(n *yaml.Node, fn string) (any, error) {
	if n.Kind == yaml.ScalarNode {
		switch fn {
		case "Ref", "Condition":
			return map[string]any{fn: n.Value}, nil
		case "GetAtt":
			resource, attribute, ok := strings.Cut(n.Value, ".")
			if !ok {
				return nil, fmt.Errorf("line %d: !GetAtt %q must be of the form Resource.Attribute", n.Line, n.Value)
			}
			return map[string]any{"Fn::GetAtt": []any{resource, attribute}}, nil
		default:
			// scalar arguments of short-form functions are always strings
			return map[string]any{"Fn::" + fn: n.Value}, nil
		}
	}

	untagged := *n
	untagged.Tag = ""
	v, err := nodeValue(&untagged)
	if err != nil {
		return nil, err
	}
	switch fn {
	case "Ref", "Condition":
		return map[string]any{fn: v}, nil
	default:
		return map[string]any{"Fn::" + fn: v}, nil
	}
}
