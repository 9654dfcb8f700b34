package hcl

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/confluentinc/cfnkit/internal/services/hcl/aws"
	"github.com/confluentinc/cfnkit/internal/utils"
	"github.com/confluentinc/cfnkit/pkg/cfn"
)

// UnsupportedError reports a template construct with no Terraform
// translation.
type UnsupportedError struct {
	Path   string
	Reason string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

var subVariablePattern = regexp.MustCompile(`\$\{([^}]*)\}`)

// converter turns template values into HCL expressions. It knows every
// address a reference can point at and records the data sources the
// expressions use.
type converter struct {
	resources  map[string]string // logical id -> terraform address
	counted    map[string]bool   // resources declared with count
	parameters map[string]string // logical id -> variable name
	conditions map[string]string // condition name -> local name
	dataUsed   map[aws.DataSource]bool
	stackName  bool
	mappings   bool
}

func newConverter() *converter {
	return &converter{
		resources:  map[string]string{},
		counted:    map[string]bool{},
		parameters: map[string]string{},
		conditions: map[string]string{},
		dataUsed:   map[aws.DataSource]bool{},
	}
}

func (c *converter) data(d aws.DataSource, attribute string) hclwrite.Tokens {
	c.dataUsed[d] = true
	return utils.TokensForResourceReference(d.Address(attribute))
}

// properties converts a props document. binding is an empty value of the
// props or property type the document belongs to, nil when unknown.
func (c *converter) properties(path string, doc map[string]any, binding any) ([]attribute, error) {
	infos := map[string]cfn.PropertyInfo{}
	var order []string
	for _, info := range cfn.Describe(binding) {
		infos[info.Name] = info
		if _, ok := doc[info.Name]; ok {
			order = append(order, info.Name)
		}
	}
	var extra []string
	for name := range doc {
		if _, known := infos[name]; !known {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	order = append(order, extra...)

	attrs := make([]attribute, 0, len(order))
	for _, name := range order {
		propPath := path + "." + name
		var tokens hclwrite.Tokens
		var err error
		if info, ok := infos[name]; ok {
			tokens, err = c.property(propPath, doc[name], info)
		} else {
			tokens, err = c.guess(propPath, doc[name])
		}
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, attribute{name: utils.FormatHclResourceName(name), tokens: tokens})
	}
	return attrs, nil
}

type attribute struct {
	name   string
	tokens hclwrite.Tokens
}

func objectTokens(attrs []attribute) hclwrite.Tokens {
	entries := make(map[string]hclwrite.Tokens, len(attrs))
	for _, a := range attrs {
		entries[a.name] = a.tokens
	}
	return utils.TokensForMap(entries)
}

func (c *converter) property(path string, v any, info cfn.PropertyInfo) (hclwrite.Tokens, error) {
	if m, ok := v.(map[string]any); ok && cfn.IsIntrinsic(m) {
		return c.intrinsic(path, m, func(p string, branch any) (hclwrite.Tokens, error) {
			return c.property(p, branch, info)
		})
	}

	switch info.Kind {
	case cfn.KindJSON:
		return c.jsonEncode(path, v)
	case cfn.KindObject:
		return c.object(path, v, info.Nested())
	case cfn.KindList:
		items, ok := v.([]any)
		if !ok {
			return c.guess(path, v)
		}
		list := make([]hclwrite.Tokens, len(items))
		for i, item := range items {
			itemPath := fmt.Sprintf("%s[%d]", path, i)
			var err error
			list[i], err = c.item(itemPath, item, info)
			if err != nil {
				return nil, err
			}
		}
		return utils.TokensForList(list), nil
	case cfn.KindMap:
		m, ok := v.(map[string]any)
		if !ok {
			return c.guess(path, v)
		}
		entries := make(map[string]hclwrite.Tokens, len(m))
		for k, item := range m {
			var err error
			entries[k], err = c.item(path+"."+k, item, info)
			if err != nil {
				return nil, err
			}
		}
		return utils.TokensForMap(entries), nil
	default:
		return c.scalar(path, v)
	}
}

// item converts a list element or map value of a property.
func (c *converter) item(path string, v any, info cfn.PropertyInfo) (hclwrite.Tokens, error) {
	switch info.ItemKind {
	case cfn.KindObject:
		if m, ok := v.(map[string]any); ok && cfn.IsIntrinsic(m) {
			return c.intrinsic(path, m, c.guess)
		}
		return c.object(path, v, info.Nested())
	case cfn.KindJSON:
		return c.jsonEncode(path, v)
	default:
		return c.guess(path, v)
	}
}

func (c *converter) object(path string, v any, binding any) (hclwrite.Tokens, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return c.guess(path, v)
	}
	attrs, err := c.properties(path, m, binding)
	if err != nil {
		return nil, err
	}
	return objectTokens(attrs), nil
}

// guess converts a value whose shape is unknown: objects get snake_case
// keys, except documents that look like IAM policies, which are
// JSON-encoded.
func (c *converter) guess(path string, v any) (hclwrite.Tokens, error) {
	switch val := v.(type) {
	case map[string]any:
		if cfn.IsIntrinsic(val) {
			return c.intrinsic(path, val, c.guess)
		}
		if isPolicyDocument(val) {
			return c.jsonEncode(path, val)
		}
		return c.object(path, val, nil)
	case []any:
		list := make([]hclwrite.Tokens, len(val))
		for i, item := range val {
			var err error
			list[i], err = c.guess(fmt.Sprintf("%s[%d]", path, i), item)
			if err != nil {
				return nil, err
			}
		}
		return utils.TokensForList(list), nil
	default:
		return c.scalar(path, v)
	}
}

func isPolicyDocument(m map[string]any) bool {
	_, hasStatement := m["Statement"]
	return hasStatement
}

func (c *converter) jsonEncode(path string, v any) (hclwrite.Tokens, error) {
	if s, ok := v.(string); ok {
		// already a JSON string
		return utils.TokensForStringLiteral(s), nil
	}
	inner, err := c.jsonValue(path, v)
	if err != nil {
		return nil, err
	}
	return utils.TokensForFunctionCall("jsonencode", inner), nil
}

// jsonValue converts a free-form document keeping its keys as they are.
func (c *converter) jsonValue(path string, v any) (hclwrite.Tokens, error) {
	switch val := v.(type) {
	case map[string]any:
		if cfn.IsIntrinsic(val) {
			return c.intrinsic(path, val, c.jsonValue)
		}
		entries := make(map[string]hclwrite.Tokens, len(val))
		for k, item := range val {
			var err error
			entries[k], err = c.jsonValue(path+"."+k, item)
			if err != nil {
				return nil, err
			}
		}
		return utils.TokensForMap(entries), nil
	case []any:
		list := make([]hclwrite.Tokens, len(val))
		for i, item := range val {
			var err error
			list[i], err = c.jsonValue(fmt.Sprintf("%s[%d]", path, i), item)
			if err != nil {
				return nil, err
			}
		}
		return utils.TokensForList(list), nil
	default:
		return c.scalar(path, v)
	}
}

func (c *converter) scalar(path string, v any) (hclwrite.Tokens, error) {
	switch val := v.(type) {
	case nil:
		return hclwrite.TokensForValue(cty.NullVal(cty.DynamicPseudoType)), nil
	case string:
		return utils.TokensForStringLiteral(val), nil
	case bool:
		return hclwrite.TokensForValue(cty.BoolVal(val)), nil
	case float64:
		return hclwrite.TokensForValue(cty.NumberFloatVal(val)), nil
	case int:
		return hclwrite.TokensForValue(cty.NumberIntVal(int64(val))), nil
	case map[string]any, []any:
		return c.guess(path, v)
	default:
		return nil, &UnsupportedError{Path: path, Reason: fmt.Sprintf("unsupported value of type %T", v)}
	}
}

type branchFunc func(path string, v any) (hclwrite.Tokens, error)

// intrinsic converts an intrinsic function object. branch converts the
// values Fn::If chooses between, so they keep the shape of the property.
func (c *converter) intrinsic(path string, m map[string]any, branch branchFunc) (hclwrite.Tokens, error) {
	for fn, arg := range m {
		fnPath := path + "." + fn
		switch fn {
		case "Ref":
			name, ok := arg.(string)
			if !ok {
				return nil, &UnsupportedError{Path: fnPath, Reason: "Ref needs a logical id"}
			}
			return c.ref(fnPath, name)
		case "Fn::GetAtt":
			id, attr, err := getAttArgs(arg)
			if err != nil {
				return nil, &UnsupportedError{Path: fnPath, Reason: err.Error()}
			}
			return c.getAtt(fnPath, id, attr)
		case "Fn::Join":
			args, ok := arg.([]any)
			if !ok || len(args) != 2 {
				return nil, &UnsupportedError{Path: fnPath, Reason: "Fn::Join needs a delimiter and a list"}
			}
			delimiter, ok := args[0].(string)
			if !ok {
				return nil, &UnsupportedError{Path: fnPath, Reason: "Fn::Join delimiter must be a string"}
			}
			list, err := c.guess(fnPath, args[1])
			if err != nil {
				return nil, err
			}
			return utils.TokensForFunctionCall("join", utils.TokensForStringLiteral(delimiter), list), nil
		case "Fn::Select":
			args, ok := arg.([]any)
			if !ok || len(args) != 2 {
				return nil, &UnsupportedError{Path: fnPath, Reason: "Fn::Select needs an index and a list"}
			}
			index, err := c.index(fnPath, args[0])
			if err != nil {
				return nil, err
			}
			list, err := c.guess(fnPath, args[1])
			if err != nil {
				return nil, err
			}
			return utils.TokensForFunctionCall("element", list, index), nil
		case "Fn::Split":
			args, ok := arg.([]any)
			if !ok || len(args) != 2 {
				return nil, &UnsupportedError{Path: fnPath, Reason: "Fn::Split needs a delimiter and a string"}
			}
			delimiter, ok := args[0].(string)
			if !ok {
				return nil, &UnsupportedError{Path: fnPath, Reason: "Fn::Split delimiter must be a string"}
			}
			source, err := c.guess(fnPath, args[1])
			if err != nil {
				return nil, err
			}
			return utils.TokensForFunctionCall("split", utils.TokensForStringLiteral(delimiter), source), nil
		case "Fn::Base64":
			value, err := c.guess(fnPath, arg)
			if err != nil {
				return nil, err
			}
			return utils.TokensForFunctionCall("base64encode", value), nil
		case "Fn::Sub":
			return c.sub(fnPath, arg)
		case "Fn::If":
			args, ok := arg.([]any)
			if !ok || len(args) != 3 {
				return nil, &UnsupportedError{Path: fnPath, Reason: "Fn::If needs a condition and two values"}
			}
			name, ok := args[0].(string)
			if !ok {
				return nil, &UnsupportedError{Path: fnPath, Reason: "Fn::If condition must be a name"}
			}
			cond, err := c.conditionRef(fnPath, name)
			if err != nil {
				return nil, err
			}
			whenTrue, err := c.branch(fnPath+"[1]", args[1], branch)
			if err != nil {
				return nil, err
			}
			whenFalse, err := c.branch(fnPath+"[2]", args[2], branch)
			if err != nil {
				return nil, err
			}
			return utils.TokensForConditional(cond, whenTrue, whenFalse), nil
		case "Fn::GetAZs":
			if region, ok := arg.(string); ok && region != "" {
				return nil, &UnsupportedError{Path: fnPath, Reason: "Fn::GetAZs is only supported for the current region"}
			}
			return c.data(aws.AvailabilityZones, "names"), nil
		case "Fn::FindInMap":
			return c.findInMap(fnPath, arg)
		case "Condition":
			name, _ := arg.(string)
			return c.conditionRef(fnPath, name)
		default:
			return nil, &UnsupportedError{Path: fnPath, Reason: fn + " has no Terraform equivalent"}
		}
	}
	return nil, &UnsupportedError{Path: path, Reason: "empty intrinsic"}
}

// branch converts an Fn::If value; AWS::NoValue becomes null.
func (c *converter) branch(path string, v any, convert branchFunc) (hclwrite.Tokens, error) {
	if m, ok := v.(map[string]any); ok && m["Ref"] == "AWS::NoValue" && len(m) == 1 {
		return hclwrite.TokensForValue(cty.NullVal(cty.DynamicPseudoType)), nil
	}
	return convert(path, v)
}

func (c *converter) index(path string, v any) (hclwrite.Tokens, error) {
	switch idx := v.(type) {
	case float64:
		return hclwrite.TokensForValue(cty.NumberIntVal(int64(idx))), nil
	case int:
		return hclwrite.TokensForValue(cty.NumberIntVal(int64(idx))), nil
	case string:
		n, err := strconv.Atoi(idx)
		if err != nil {
			return nil, &UnsupportedError{Path: path, Reason: fmt.Sprintf("invalid index %q", idx)}
		}
		return hclwrite.TokensForValue(cty.NumberIntVal(int64(n))), nil
	default:
		return c.guess(path, v)
	}
}

func getAttArgs(arg any) (string, string, error) {
	switch a := arg.(type) {
	case string:
		id, attr, ok := strings.Cut(a, ".")
		if !ok {
			return "", "", fmt.Errorf("Fn::GetAtt %q has no attribute", a)
		}
		return id, attr, nil
	case []any:
		if len(a) == 2 {
			id, idOK := a[0].(string)
			attr, attrOK := a[1].(string)
			if idOK && attrOK {
				return id, attr, nil
			}
		}
	}
	return "", "", fmt.Errorf("Fn::GetAtt needs a logical id and an attribute name")
}

func (c *converter) ref(path, name string) (hclwrite.Tokens, error) {
	switch name {
	case "AWS::AccountId":
		return c.data(aws.CallerIdentity, "account_id"), nil
	case "AWS::Region":
		return c.data(aws.Region, "name"), nil
	case "AWS::Partition":
		return c.data(aws.Partition, "partition"), nil
	case "AWS::URLSuffix":
		return c.data(aws.Partition, "dns_suffix"), nil
	case "AWS::StackName":
		c.stackName = true
		return utils.TokensForVarReference(stackNameVariable), nil
	case "AWS::NoValue":
		return hclwrite.TokensForValue(cty.NullVal(cty.DynamicPseudoType)), nil
	}
	if strings.HasPrefix(name, "AWS::") {
		return nil, &UnsupportedError{Path: path, Reason: "pseudo parameter " + name + " has no Terraform equivalent"}
	}
	if variable, ok := c.parameters[name]; ok {
		return utils.TokensForVarReference(variable), nil
	}
	if _, ok := c.resources[name]; ok {
		return utils.TokensForResourceReference(c.instance(name) + ".id"), nil
	}
	return nil, &UnsupportedError{Path: path, Reason: fmt.Sprintf("Ref to undefined %q", name)}
}

func (c *converter) getAtt(path, id, attr string) (hclwrite.Tokens, error) {
	if _, ok := c.resources[id]; !ok {
		return nil, &UnsupportedError{Path: path, Reason: fmt.Sprintf("Fn::GetAtt of undefined resource %q", id)}
	}
	segments := strings.Split(attr, ".")
	for i, s := range segments {
		segments[i] = utils.FormatHclResourceName(s)
	}
	return utils.TokensForResourceReference(c.instance(id) + "." + strings.Join(segments, ".")), nil
}

// instance is the address used to read a resource's attributes; resources
// created with count are indexed.
func (c *converter) instance(id string) string {
	if c.counted[id] {
		return c.resources[id] + "[0]"
	}
	return c.resources[id]
}

func (c *converter) sub(path string, arg any) (hclwrite.Tokens, error) {
	var template string
	vars := map[string]any{}
	switch a := arg.(type) {
	case string:
		template = a
	case []any:
		if len(a) != 2 {
			return nil, &UnsupportedError{Path: path, Reason: "Fn::Sub needs a string and a variable map"}
		}
		s, ok := a[0].(string)
		m, mOK := a[1].(map[string]any)
		if !ok || !mOK {
			return nil, &UnsupportedError{Path: path, Reason: "Fn::Sub needs a string and a variable map"}
		}
		template, vars = s, m
	default:
		return nil, &UnsupportedError{Path: path, Reason: "Fn::Sub needs a string"}
	}

	var parts []utils.TemplatePart
	last := 0
	for _, loc := range subVariablePattern.FindAllStringSubmatchIndex(template, -1) {
		literal := template[last:loc[0]]
		name := template[loc[2]:loc[3]]
		last = loc[1]

		if strings.HasPrefix(name, "!") {
			parts = append(parts, utils.TemplatePart{Literal: literal + "${" + name[1:] + "}"})
			continue
		}
		if literal != "" {
			parts = append(parts, utils.TemplatePart{Literal: literal})
		}

		var expr hclwrite.Tokens
		var err error
		if v, ok := vars[name]; ok {
			expr, err = c.guess(path+"."+name, v)
		} else if id, attr, isAttr := strings.Cut(name, "."); isAttr && !strings.HasPrefix(name, "AWS::") {
			expr, err = c.getAtt(path, id, attr)
		} else {
			expr, err = c.ref(path, name)
		}
		if err != nil {
			return nil, err
		}
		parts = append(parts, utils.TemplatePart{Expr: expr})
	}
	if rest := template[last:]; rest != "" {
		parts = append(parts, utils.TemplatePart{Literal: rest})
	}

	if len(parts) == 1 && parts[0].Expr != nil {
		return parts[0].Expr, nil
	}
	return utils.TokensForStringTemplate(parts), nil
}

func (c *converter) findInMap(path string, arg any) (hclwrite.Tokens, error) {
	args, ok := arg.([]any)
	if !ok || len(args) != 3 {
		return nil, &UnsupportedError{Path: path, Reason: "Fn::FindInMap needs a map name and two keys"}
	}
	c.mappings = true

	tokens := utils.TokensForResourceReference("local." + mappingsLocal)
	for i, key := range args {
		keyTokens, err := c.guess(fmt.Sprintf("%s[%d]", path, i), key)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, &hclwrite.Token{Type: hclsyntax.TokenOBrack, Bytes: []byte("[")})
		tokens = append(tokens, keyTokens...)
		tokens = append(tokens, &hclwrite.Token{Type: hclsyntax.TokenCBrack, Bytes: []byte("]")})
	}
	return tokens, nil
}
