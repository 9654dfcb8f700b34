package cfn

import (
	"fmt"
	"slices"
)

// DeletionPolicy is the value of a resource's DeletionPolicy or
// UpdateReplacePolicy attribute.
type DeletionPolicy string

const (
	DeletionPolicyDelete               DeletionPolicy = "Delete"
	DeletionPolicyRetain               DeletionPolicy = "Retain"
	DeletionPolicySnapshot             DeletionPolicy = "Snapshot"
	DeletionPolicyRetainExceptOnCreate DeletionPolicy = "RetainExceptOnCreate"
)

func (p DeletionPolicy) valid() bool {
	switch p {
	case "", DeletionPolicyDelete, DeletionPolicyRetain, DeletionPolicySnapshot, DeletionPolicyRetainExceptOnCreate:
		return true
	}
	return false
}

// ResourceOptions are the resource attributes that sit next to Properties in
// a template.
type ResourceOptions struct {
	DependsOn           []string
	DeletionPolicy      DeletionPolicy
	UpdateReplacePolicy DeletionPolicy
	Condition           string
	Metadata            map[string]any
}

// Resource is a CloudFormation resource declared in a Stack. Bindings
// implement it by embedding Base.
type Resource interface {
	Typed
	LogicalID() string
	// Properties returns the props struct (or map for Untyped).
	Properties() any
	Options() *ResourceOptions
	Stack() *Stack
	base() *Base
}

// Base holds what every resource shares: its stack, logical id and options.
type Base struct {
	stack     *Stack
	logicalID string
	options   ResourceOptions
}

func (b *Base) base() *Base { return b }

func (b *Base) LogicalID() string { return b.logicalID }

func (b *Base) Stack() *Stack { return b.stack }

func (b *Base) Options() *ResourceOptions { return &b.options }

// Ref returns a token for {"Ref": logicalID}. For most resources this is the
// physical id.
func (b *Base) Ref() string { return Ref(b.logicalID) }

// GetAtt returns a token for {"Fn::GetAtt": [logicalID, attribute]}.
func (b *Base) GetAtt(attribute string) string { return GetAtt(b.logicalID, attribute) }

// AddDependency adds explicit DependsOn entries.
func (b *Base) AddDependency(others ...Resource) {
	for _, o := range others {
		if !slices.Contains(b.options.DependsOn, o.LogicalID()) {
			b.options.DependsOn = append(b.options.DependsOn, o.LogicalID())
		}
	}
}

// ApplyRemovalPolicy sets both the DeletionPolicy and the UpdateReplacePolicy.
func (b *Base) ApplyRemovalPolicy(policy DeletionPolicy) {
	b.options.DeletionPolicy = policy
	b.options.UpdateReplacePolicy = policy
}

// AddMetadata sets a key in the resource's Metadata attribute.
func (b *Base) AddMetadata(key string, value any) {
	if b.options.Metadata == nil {
		b.options.Metadata = map[string]any{}
	}
	b.options.Metadata[key] = value
}

// Untyped is a resource whose type has no binding. Its properties are kept
// as a raw wire document.
type Untyped struct {
	Base
	Type  string
	Props map[string]any
}

// NewUntyped adds a resource of any type to the stack.
func NewUntyped(stack *Stack, id, typeName string, props map[string]any) (*Untyped, error) {
	if !resourceTypePattern.MatchString(typeName) {
		return nil, fmt.Errorf("invalid resource type %q", typeName)
	}
	if props == nil {
		props = map[string]any{}
	}
	r := &Untyped{Type: typeName, Props: props}
	if err := stack.Add(id, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (u *Untyped) CFNType() string { return u.Type }

func (u *Untyped) Properties() any { return u.Props }
