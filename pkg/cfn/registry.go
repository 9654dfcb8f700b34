package cfn

import (
	"fmt"
	"sort"
	"sync"
)

// Factory creates typed resources of one CloudFormation type.
type Factory interface {
	// New decodes props and declares the resource in stack under id.
	New(stack *Stack, id string, props map[string]any) (Resource, error)
	// Props returns a fresh, empty props value of the resource type.
	Props() any
}

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{}
)

// Register makes a resource type available to Lookup. Service packages call
// it from init. Registering the same type twice panics.
func Register(typeName string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[typeName]; exists {
		panic(fmt.Sprintf("cfn: resource type %s registered twice", typeName))
	}
	registry[typeName] = factory
}

// Lookup returns the factory for a registered resource type.
func Lookup(typeName string) (Factory, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	f, ok := registry[typeName]
	return f, ok
}

// Types returns every registered resource type, sorted.
func Types() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	types := make([]string, 0, len(registry))
	for t := range registry {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

type typedFactory[P any, R Resource] struct {
	newFn func(*Stack, string, *P) (R, error)
}

// FactoryFor adapts a typed constructor into a Factory: the document is
// decoded into a fresh P and handed to newFn.
func FactoryFor[P any, R Resource](newFn func(*Stack, string, *P) (R, error)) Factory {
	return typedFactory[P, R]{newFn: newFn}
}

func (f typedFactory[P, R]) New(stack *Stack, id string, doc map[string]any) (Resource, error) {
	props := new(P)
	if err := Decode(doc, props); err != nil {
		return nil, err
	}
	r, err := f.newFn(stack, id, props)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (f typedFactory[P, R]) Props() any { return new(P) }

// Build adds a resource of typeName to the stack, typed when the type is
// registered and Untyped otherwise.
func Build(stack *Stack, id, typeName string, props map[string]any) (Resource, error) {
	if factory, ok := Lookup(typeName); ok {
		return factory.New(stack, id, props)
	}
	return NewUntyped(stack, id, typeName, props)
}
