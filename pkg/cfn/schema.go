package cfn

import (
	"reflect"
)

// PropertyKind is the shape of a binding property on the wire.
type PropertyKind string

const (
	KindString  PropertyKind = "String"
	KindInteger PropertyKind = "Integer"
	KindDouble  PropertyKind = "Double"
	KindBoolean PropertyKind = "Boolean"
	KindList    PropertyKind = "List"
	KindMap     PropertyKind = "Map"
	KindObject  PropertyKind = "Object"
	KindJSON    PropertyKind = "Json"
)

// PropertyInfo describes one property of a binding type.
type PropertyInfo struct {
	Name     string       `json:"name"`
	Required bool         `json:"required"`
	Kind     PropertyKind `json:"kind"`
	// ItemKind is the kind of list items or map values.
	ItemKind PropertyKind `json:"itemKind,omitempty"`
	// Type is the property type name of Object properties and of List/Map
	// properties holding objects.
	Type string `json:"type,omitempty"`

	nested reflect.Type
}

// Nested returns a new empty value of the property's object type, or nil
// when the property does not hold objects.
func (p PropertyInfo) Nested() any {
	if p.nested == nil {
		return nil
	}
	return reflect.New(p.nested).Interface()
}

// Describe lists the properties of a binding value (a props struct or a
// nested property type) in declaration order. Non-binding values have none.
func Describe(v any) []PropertyInfo {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || !isBinding(t) {
		return nil
	}

	fields := fieldsOf(t)
	infos := make([]PropertyInfo, 0, len(fields))
	for _, f := range fields {
		info := PropertyInfo{Name: f.name, Required: f.required}
		ft := t.Field(f.index).Type
		info.Kind, info.nested = kindOf(ft)
		switch ft.Kind() {
		case reflect.Slice, reflect.Array, reflect.Map:
			info.ItemKind, info.nested = kindOf(ft.Elem())
		}
		if info.nested != nil {
			info.Type = typeNameOf(reflect.New(info.nested).Elem())
		}
		infos = append(infos, info)
	}
	return infos
}

func kindOf(t reflect.Type) (PropertyKind, reflect.Type) {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return KindString, nil
	case reflect.Bool:
		return KindBoolean, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return KindInteger, nil
	case reflect.Float32, reflect.Float64:
		return KindDouble, nil
	case reflect.Slice, reflect.Array:
		return KindList, nil
	case reflect.Map:
		return KindMap, nil
	case reflect.Struct:
		if isBinding(t) {
			return KindObject, t
		}
	}
	return KindJSON, nil
}
