package cfn

import (
	"regexp"
	"sort"
	"strings"
)

type reference struct {
	from   string
	target string
	kind   string
	// resourceOnly is set for references that must name a resource
	// (GetAtt, DependsOn, Sub with an attribute)
	resourceOnly bool
	// condition is set when target names a condition
	condition bool
	// dependency is set for references that order resources
	dependency bool
}

var subVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// references lists every reference made by the template in a stable order.
func (t *Template) references() []reference {
	var refs []reference

	for _, id := range sortedMapKeys(t.Resources) {
		r := t.Resources[id]
		if r == nil {
			continue
		}
		collectRefs(id, r.Properties, true, &refs)
		for _, dep := range r.DependsOn {
			refs = append(refs, reference{from: id, target: dep, kind: "DependsOn", resourceOnly: true, dependency: true})
		}
		if r.Condition != "" {
			refs = append(refs, reference{from: id, target: r.Condition, kind: "Condition", condition: true})
		}
	}

	for _, id := range sortedMapKeys(t.Outputs) {
		o := t.Outputs[id]
		if o == nil {
			continue
		}
		from := "Outputs." + id
		collectRefs(from, o.Value, false, &refs)
		if o.Export != nil {
			collectRefs(from, o.Export.Name, false, &refs)
		}
		if o.Condition != "" {
			refs = append(refs, reference{from: from, target: o.Condition, kind: "Condition", condition: true})
		}
	}

	for _, id := range sortedMapKeys(t.Conditions) {
		collectRefs("Conditions."+id, t.Conditions[id], false, &refs)
	}

	return refs
}

func collectRefs(from string, v any, dependency bool, refs *[]reference) {
	switch val := v.(type) {
	case []any:
		for _, e := range val {
			collectRefs(from, e, dependency, refs)
		}
	case map[string]any:
		if IsIntrinsic(val) {
			for fn, arg := range val {
				intrinsicRefs(from, fn, arg, dependency, refs)
			}
			return
		}
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			collectRefs(from, val[k], dependency, refs)
		}
	}
}

func intrinsicRefs(from, fn string, arg any, dependency bool, refs *[]reference) {
	switch fn {
	case "Ref":
		if target, ok := arg.(string); ok {
			*refs = append(*refs, reference{from: from, target: target, kind: "Ref", dependency: dependency})
			return
		}
	case "Condition":
		if target, ok := arg.(string); ok {
			*refs = append(*refs, reference{from: from, target: target, kind: "Condition", condition: true})
			return
		}
	case "Fn::GetAtt":
		var target string
		switch a := arg.(type) {
		case string:
			target, _, _ = strings.Cut(a, ".")
		case []any:
			if len(a) > 0 {
				target, _ = a[0].(string)
			}
		}
		if target != "" {
			*refs = append(*refs, reference{from: from, target: target, kind: "Fn::GetAtt", resourceOnly: true, dependency: dependency})
		}
		if a, ok := arg.([]any); ok && len(a) > 1 {
			collectRefs(from, a[1:], dependency, refs)
		}
		return
	case "Fn::Sub":
		switch a := arg.(type) {
		case string:
			subRefs(from, a, nil, dependency, refs)
			return
		case []any:
			if len(a) == 0 {
				return
			}
			vars, _ := a[len(a)-1].(map[string]any)
			if s, ok := a[0].(string); ok {
				subRefs(from, s, vars, dependency, refs)
			}
			if vars != nil {
				collectRefs(from, vars, dependency, refs)
			}
			return
		}
	case "Fn::If":
		if a, ok := arg.([]any); ok && len(a) > 0 {
			if cond, ok := a[0].(string); ok {
				*refs = append(*refs, reference{from: from, target: cond, kind: "Fn::If", condition: true})
			}
			collectRefs(from, a[1:], dependency, refs)
			return
		}
	}
	collectRefs(from, arg, dependency, refs)
}

// subRefs collects the ${Name} and ${Resource.Attribute} variables of an
// Fn::Sub template. ${!Literal} escapes and names bound in vars are skipped.
func subRefs(from, template string, vars map[string]any, dependency bool, refs *[]reference) {
	for _, m := range subVarPattern.FindAllStringSubmatch(template, -1) {
		name := strings.TrimSpace(m[1])
		if strings.HasPrefix(name, "!") {
			continue
		}
		if _, bound := vars[name]; bound {
			continue
		}
		if target, _, isAttr := strings.Cut(name, "."); isAttr {
			*refs = append(*refs, reference{from: from, target: target, kind: "Fn::Sub", resourceOnly: true, dependency: dependency})
			continue
		}
		*refs = append(*refs, reference{from: from, target: name, kind: "Fn::Sub", dependency: dependency})
	}
}

// defines reports whether the target of ref exists in the template.
func (t *Template) defines(ref reference) bool {
	if ref.condition {
		_, ok := t.Conditions[ref.target]
		return ok
	}
	if _, ok := t.Resources[ref.target]; ok {
		return true
	}
	if ref.resourceOnly {
		return false
	}
	if strings.HasPrefix(ref.target, "AWS::") {
		return true
	}
	_, ok := t.Parameters[ref.target]
	return ok
}
