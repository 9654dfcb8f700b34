package cfn

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strings"
	"sync"
)

// Typed is implemented by every binding; it returns the CloudFormation type
// name, e.g. AWS::S3::Bucket or AWS::S3::Bucket.CorsRule.
type Typed interface {
	CFNType() string
}

type field struct {
	index    int
	name     string
	required bool
}

var fieldCache sync.Map // reflect.Type -> []field

// fieldsOf returns the cfn-tagged fields of struct type t in declaration order.
func fieldsOf(t reflect.Type) []field {
	if cached, ok := fieldCache.Load(t); ok {
		return cached.([]field)
	}

	var fields []field
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		tag, ok := sf.Tag.Lookup("cfn")
		if !ok || tag == "-" || !sf.IsExported() {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		if name == "" {
			name = sf.Name
		}
		fields = append(fields, field{index: i, name: name, required: opts == "required"})
	}

	fieldCache.Store(t, fields)
	return fields
}

func isBinding(t reflect.Type) bool {
	return t.Kind() == reflect.Struct && len(fieldsOf(t)) > 0
}

// isAbsent reports whether a field value counts as "not set".
func isAbsent(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map:
		return v.IsNil()
	default:
		return false
	}
}

func typeNameOf(v reflect.Value) string {
	if v.CanAddr() {
		if t, ok := v.Addr().Interface().(Typed); ok {
			return t.CFNType()
		}
	}
	if v.CanInterface() {
		if t, ok := v.Interface().(Typed); ok {
			return t.CFNType()
		}
	}
	return v.Type().Name()
}

// TypeName returns the CloudFormation type name of a binding value, falling
// back to the Go type name.
func TypeName(v any) string {
	if t, ok := v.(Typed); ok {
		return t.CFNType()
	}
	rv := reflect.Indirect(reflect.ValueOf(v))
	if !rv.IsValid() {
		return "<nil>"
	}
	return typeNameOf(rv)
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

// Validate checks that every required property of v, and of every nested
// property value, is set. It returns ValidationErrors holding one
// *RequiredPropertyError per missing property, or nil.
func Validate(v any) error {
	var errs ValidationErrors
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() && isBinding(rv.Type().Elem()) {
		// a nil props pointer is validated as an empty value
		rv = reflect.New(rv.Type().Elem())
	}
	validateValue(rv, "", &errs)
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validateValue(v reflect.Value, path string, errs *ValidationErrors) {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return
		}
		validateValue(v.Elem(), path, errs)
	case reflect.Struct:
		typeName := typeNameOf(v)
		for _, f := range fieldsOf(v.Type()) {
			fv := v.Field(f.index)
			p := joinPath(path, f.name)
			if isAbsent(fv) {
				if f.required {
					*errs = append(*errs, &RequiredPropertyError{Type: typeName, Property: f.name, Path: p})
				}
				continue
			}
			validateValue(fv, p, errs)
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			validateValue(v.Index(i), fmt.Sprintf("%s[%d]", path, i), errs)
		}
	case reflect.Map:
		for _, k := range sortedKeys(v) {
			validateValue(v.MapIndex(k), joinPath(path, fmt.Sprint(k.Interface())), errs)
		}
	}
}

func sortedKeys(m reflect.Value) []reflect.Value {
	keys := m.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
	})
	return keys
}

// Render converts a binding value into its wire document: a map keyed by
// the properties' wire names. Absent optional properties are omitted and
// tokens are resolved into intrinsic objects. Render does not validate.
func Render(v any) map[string]any {
	doc, ok := toDocument(reflect.ValueOf(v)).(map[string]any)
	if !ok || doc == nil {
		return map[string]any{}
	}
	return Resolve(doc).(map[string]any)
}

// RenderValue is Render for values that are not bindings (lists, scalars,
// free-form JSON).
func RenderValue(v any) any {
	return Resolve(toDocument(reflect.ValueOf(v)))
}

func toDocument(v reflect.Value) any {
	switch v.Kind() {
	case reflect.Invalid:
		return nil
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return toDocument(v.Elem())
	case reflect.Struct:
		if !isBinding(v.Type()) {
			return normalizeJSON(v.Interface())
		}
		doc := map[string]any{}
		for _, f := range fieldsOf(v.Type()) {
			fv := v.Field(f.index)
			if isAbsent(fv) {
				continue
			}
			doc[f.name] = toDocument(fv)
		}
		return doc
	case reflect.Slice, reflect.Array:
		out := make([]any, v.Len())
		for i := 0; i < v.Len(); i++ {
			out[i] = toDocument(v.Index(i))
		}
		return out
	case reflect.Map:
		out := make(map[string]any, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out[fmt.Sprint(iter.Key().Interface())] = toDocument(iter.Value())
		}
		return out
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if u := v.Uint(); u <= math.MaxInt {
			return int(u)
		}
		return v.Uint()
	case reflect.Float32, reflect.Float64:
		return v.Float()
	default:
		return v.Interface()
	}
}

// normalizeJSON turns an arbitrary Go value (e.g. a policy document struct)
// into plain maps and slices so its tokens can be resolved.
func normalizeJSON(v any) any {
	b, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return v
	}
	return out
}

// Equal reports whether a and b are the same binding type and render to the
// same document.
func Equal(a, b any) bool {
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	return reflect.DeepEqual(Render(a), Render(b))
}

// Repr returns a compact, deterministic representation of a binding value:
// its type name followed by its rendered document.
func Repr(v any) string {
	b, err := json.Marshal(Render(v))
	if err != nil {
		return TypeName(v) + "{?}"
	}
	return TypeName(v) + string(b)
}
