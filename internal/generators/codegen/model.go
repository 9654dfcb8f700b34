package codegen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/iancoleman/strcase"
)

const tagType = "Tag"

type fileModel struct {
	Package       string
	Name          string
	CFNType       string
	Documentation string
	Attributes    []attributeModel
	Props         []fieldModel
	PropertyTypes []propertyTypeModel
}

type attributeModel struct {
	Name   string
	GoName string
}

type fieldModel struct {
	Name     string
	GoName   string
	GoType   string
	Required bool
}

type propertyTypeModel struct {
	GoName        string
	CFNType       string
	Documentation string
	Props         []fieldModel
}

// serviceModel resolves the Go names of every resource and property type of
// one service. Property type names that clash with another name in the
// package are prefixed with their resource name.
type serviceModel struct {
	spec    *Specification
	service string
	pkg     string

	resources     map[string]string // type name -> resource name
	propertyNames map[string]string // property type key -> Go name
}

func newServiceModel(spec *Specification, service, pkg string) (*serviceModel, error) {
	m := &serviceModel{
		spec:          spec,
		pkg:           pkg,
		resources:     map[string]string{},
		propertyNames: map[string]string{},
	}

	for typeName := range spec.ResourceTypes {
		svc, name, ok := splitTypeName(typeName)
		if !ok || !strings.EqualFold(svc, service) {
			continue
		}
		m.service = svc
		m.resources[typeName] = name
	}
	if len(m.resources) == 0 {
		return nil, fmt.Errorf("no resource types found for service %q", service)
	}

	taken := map[string]int{}
	for _, name := range m.resources {
		taken[name]++
		taken[name+"Props"]++
		taken[name+"Type"]++
	}
	short := map[string]string{}
	for key := range spec.PropertyTypes {
		owner, name, ok := strings.Cut(key, ".")
		if !ok {
			continue
		}
		if _, ours := m.resources[owner]; !ours {
			continue
		}
		short[key] = name
		taken[name]++
	}
	for key, name := range short {
		owner, _, _ := strings.Cut(key, ".")
		if taken[name] > 1 {
			name = m.resources[owner] + name
		}
		m.propertyNames[key] = name
	}
	return m, nil
}

func (m *serviceModel) files() ([]fileModel, error) {
	typeNames := make([]string, 0, len(m.resources))
	for typeName := range m.resources {
		typeNames = append(typeNames, typeName)
	}
	sort.Strings(typeNames)

	files := make([]fileModel, 0, len(typeNames))
	for _, typeName := range typeNames {
		f, err := m.file(typeName)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

func (m *serviceModel) file(typeName string) (fileModel, error) {
	rt := m.spec.ResourceTypes[typeName]
	f := fileModel{
		Package:       m.pkg,
		Name:          m.resources[typeName],
		CFNType:       typeName,
		Documentation: rt.Documentation,
	}

	for _, name := range sortedKeys(rt.Attributes) {
		f.Attributes = append(f.Attributes, attributeModel{Name: name, GoName: strcase.ToCamel(name)})
	}

	props, err := m.fields(typeName, rt.Properties)
	if err != nil {
		return f, fmt.Errorf("%s: %w", typeName, err)
	}
	f.Props = props

	for _, key := range sortedKeys(m.spec.PropertyTypes) {
		if !strings.HasPrefix(key, typeName+".") {
			continue
		}
		pt := m.spec.PropertyTypes[key]
		if pt.PrimitiveType != "" && len(pt.Properties) == 0 {
			continue
		}
		fields, err := m.fields(typeName, pt.Properties)
		if err != nil {
			return f, fmt.Errorf("%s: %w", key, err)
		}
		f.PropertyTypes = append(f.PropertyTypes, propertyTypeModel{
			GoName:        m.propertyNames[key],
			CFNType:       key,
			Documentation: pt.Documentation,
			Props:         fields,
		})
	}
	sort.Slice(f.PropertyTypes, func(i, j int) bool {
		return f.PropertyTypes[i].GoName < f.PropertyTypes[j].GoName
	})
	return f, nil
}

func (m *serviceModel) fields(owner string, props map[string]Property) ([]fieldModel, error) {
	fields := make([]fieldModel, 0, len(props))
	for _, name := range sortedKeys(props) {
		goType, err := m.goType(owner, props[name])
		if err != nil {
			return nil, fmt.Errorf("property %s: %w", name, err)
		}
		fields = append(fields, fieldModel{
			Name:     name,
			GoName:   strcase.ToCamel(name),
			GoType:   goType,
			Required: props[name].Required,
		})
	}
	return fields, nil
}

// goType maps a property to the Go type of its field. Scalars are pointers
// so that an unset field is omitted; Json is any.
func (m *serviceModel) goType(owner string, p Property) (string, error) {
	if p.PrimitiveType != "" {
		t, err := primitive(p.PrimitiveType)
		if err != nil || t == "any" {
			return t, err
		}
		return "*" + t, nil
	}

	switch p.Type {
	case "List", "Map":
		var elem string
		var err error
		switch {
		case p.PrimitiveItemType != "":
			elem, err = primitive(p.PrimitiveItemType)
		case p.ItemType != "":
			elem, err = m.named(owner, p.ItemType)
		default:
			elem = "any"
		}
		if err != nil {
			return "", err
		}
		if p.Type == "List" {
			return "[]" + elem, nil
		}
		return "map[string]" + elem, nil
	case "":
		// Polymorphic properties (PrimitiveTypes, Types) have no single type.
		return "any", nil
	}

	named, err := m.named(owner, p.Type)
	if err != nil {
		return "", err
	}
	return "*" + named, nil
}

func (m *serviceModel) named(owner, name string) (string, error) {
	if name == tagType {
		return "cfn.Tag", nil
	}
	key := owner + "." + name
	goName, ok := m.propertyNames[key]
	if !ok {
		return "", fmt.Errorf("unknown property type %s", key)
	}
	if pt := m.spec.PropertyTypes[key]; pt.PrimitiveType != "" && len(pt.Properties) == 0 {
		return primitive(pt.PrimitiveType)
	}
	return goName, nil
}

func primitive(name string) (string, error) {
	switch name {
	case "String", "Timestamp":
		return "string", nil
	case "Integer", "Long":
		return "int", nil
	case "Double":
		return "float64", nil
	case "Boolean":
		return "bool", nil
	case "Json":
		return "any", nil
	}
	return "", fmt.Errorf("unknown primitive type %q", name)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
