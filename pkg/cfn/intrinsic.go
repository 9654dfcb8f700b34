package cfn

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Intrinsic values are carried through typed string fields as tokens: the
// intrinsic object is JSON encoded, base64 encoded and wrapped in a marker.
// Render turns tokens back into intrinsic objects. List tokens stand in for
// intrinsics that return a list (Fn::GetAZs, Fn::Split, Fn::Cidr) and are
// only meaningful as the sole element of a []string field.
const (
	tokenPrefix     = "${Token["
	listTokenPrefix = "${ListToken["
	tokenSuffix     = "]}"
)

var tokenPattern = regexp.MustCompile(`\$\{(Token|ListToken)\[([A-Za-z0-9_-]+)\]\}`)

// Condition is a condition function object (Fn::Equals, Fn::And, ...) used in
// the Conditions section of a template.
type Condition map[string]any

func encodeToken(prefix, fn string, arg any) string {
	b, err := json.Marshal(map[string]any{fn: arg})
	if err != nil {
		// args are built from strings, ints, slices and maps of those
		panic(fmt.Sprintf("cfn: cannot encode %s: %v", fn, err))
	}
	return prefix + base64.RawURLEncoding.EncodeToString(b) + tokenSuffix
}

func decodeToken(payload string) (map[string]any, error) {
	b, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("invalid token payload: %w", err)
	}
	var fn map[string]any
	if err := json.Unmarshal(b, &fn); err != nil {
		return nil, fmt.Errorf("invalid token payload: %w", err)
	}
	return fn, nil
}

// Ref returns a token for {"Ref": logicalID}.
func Ref(logicalID string) string {
	return encodeToken(tokenPrefix, "Ref", logicalID)
}

// GetAtt returns a token for {"Fn::GetAtt": [logicalID, attribute]}.
func GetAtt(logicalID, attribute string) string {
	return encodeToken(tokenPrefix, "Fn::GetAtt", []string{logicalID, attribute})
}

// Sub returns a token for {"Fn::Sub": template}.
func Sub(template string) string {
	return encodeToken(tokenPrefix, "Fn::Sub", template)
}

// SubWith returns a token for {"Fn::Sub": [template, variables]}.
func SubWith(template string, variables map[string]string) string {
	return encodeToken(tokenPrefix, "Fn::Sub", []any{template, variables})
}

// Join returns a token for {"Fn::Join": [delimiter, values]}.
func Join(delimiter string, values ...string) string {
	if values == nil {
		values = []string{}
	}
	return encodeToken(tokenPrefix, "Fn::Join", []any{delimiter, values})
}

// Select returns a token for {"Fn::Select": [index, list]}. list is either a
// []string or the result of a list intrinsic such as GetAZs.
func Select(index int, list []string) string {
	return encodeToken(tokenPrefix, "Fn::Select", []any{strconv.Itoa(index), list})
}

// Split returns a list token for {"Fn::Split": [delimiter, source]}.
func Split(delimiter, source string) []string {
	return []string{encodeToken(listTokenPrefix, "Fn::Split", []string{delimiter, source})}
}

// GetAZs returns a list token for {"Fn::GetAZs": region}. An empty region
// means the stack's region.
func GetAZs(region string) []string {
	return []string{encodeToken(listTokenPrefix, "Fn::GetAZs", region)}
}

// Cidr returns a list token for {"Fn::Cidr": [ipBlock, count, cidrBits]}.
func Cidr(ipBlock string, count, cidrBits int) []string {
	return []string{encodeToken(listTokenPrefix, "Fn::Cidr", []any{ipBlock, strconv.Itoa(count), strconv.Itoa(cidrBits)})}
}

// ImportValue returns a token for {"Fn::ImportValue": exportName}.
func ImportValue(exportName string) string {
	return encodeToken(tokenPrefix, "Fn::ImportValue", exportName)
}

// Base64 returns a token for {"Fn::Base64": value}.
func Base64(value string) string {
	return encodeToken(tokenPrefix, "Fn::Base64", value)
}

// FindInMap returns a token for {"Fn::FindInMap": [mapName, topLevelKey, secondLevelKey]}.
func FindInMap(mapName, topLevelKey, secondLevelKey string) string {
	return encodeToken(tokenPrefix, "Fn::FindInMap", []string{mapName, topLevelKey, secondLevelKey})
}

// If returns a token for {"Fn::If": [condition, whenTrue, whenFalse]}.
func If(condition, whenTrue, whenFalse string) string {
	return encodeToken(tokenPrefix, "Fn::If", []string{condition, whenTrue, whenFalse})
}

// Pseudo parameters.
func AccountID() string { return Ref("AWS::AccountId") }
func Region() string    { return Ref("AWS::Region") }
func Partition() string { return Ref("AWS::Partition") }
func StackName() string { return Ref("AWS::StackName") }
func StackID() string   { return Ref("AWS::StackId") }
func URLSuffix() string { return Ref("AWS::URLSuffix") }
func NoValue() string   { return Ref("AWS::NoValue") }

// Equals returns {"Fn::Equals": [a, b]}.
func Equals(a, b string) Condition {
	return Condition{"Fn::Equals": []any{a, b}}
}

// Not returns {"Fn::Not": [c]}.
func Not(c Condition) Condition {
	return Condition{"Fn::Not": []any{c}}
}

// And returns {"Fn::And": conditions}.
func And(conditions ...Condition) Condition {
	return Condition{"Fn::And": conditionList(conditions)}
}

// Or returns {"Fn::Or": conditions}.
func Or(conditions ...Condition) Condition {
	return Condition{"Fn::Or": conditionList(conditions)}
}

// ConditionRef returns {"Condition": name}, for use inside And/Or/Not.
func ConditionRef(name string) Condition {
	return Condition{"Condition": name}
}

func conditionList(conditions []Condition) []any {
	out := make([]any, len(conditions))
	for i, c := range conditions {
		out[i] = c
	}
	return out
}

// IsToken reports whether s contains at least one intrinsic token.
func IsToken(s string) bool {
	return tokenPattern.MatchString(s)
}

// IsIntrinsic reports whether v is a single-key intrinsic function object.
func IsIntrinsic(v any) bool {
	m, ok := v.(map[string]any)
	if !ok {
		if c, isCond := v.(Condition); isCond {
			m = c
		} else {
			return false
		}
	}
	if len(m) != 1 {
		return false
	}
	for k := range m {
		return k == "Ref" || k == "Condition" || strings.HasPrefix(k, "Fn::")
	}
	return false
}

// listIntrinsics return a list rather than a scalar.
var listIntrinsics = map[string]bool{
	"Fn::GetAZs": true,
	"Fn::Split":  true,
	"Fn::Cidr":   true,
}

// TokenFor encodes an intrinsic object as a token. List-valued intrinsics
// become list tokens.
func TokenFor(intrinsic map[string]any) (string, error) {
	if !IsIntrinsic(intrinsic) {
		return "", fmt.Errorf("not an intrinsic function: %v", intrinsic)
	}
	for fn, arg := range intrinsic {
		if listIntrinsics[fn] {
			return encodeToken(listTokenPrefix, fn, arg), nil
		}
		return encodeToken(tokenPrefix, fn, arg), nil
	}
	return "", nil
}

// ListTokenFor encodes any intrinsic object as a list token, for values
// decoded into []string fields (e.g. a Ref to a CommaDelimitedList parameter).
func ListTokenFor(intrinsic map[string]any) (string, error) {
	if !IsIntrinsic(intrinsic) {
		return "", fmt.Errorf("not an intrinsic function: %v", intrinsic)
	}
	for fn, arg := range intrinsic {
		return encodeToken(listTokenPrefix, fn, arg), nil
	}
	return "", nil
}

// Resolve replaces every token found in v with the intrinsic object it
// encodes. Strings mixing literal text and tokens become an Fn::Join with an
// empty delimiter. Maps and slices are copied; v is not modified.
func Resolve(v any) any {
	switch val := v.(type) {
	case string:
		return resolveString(val)
	case []string:
		if len(val) == 1 && isListToken(val[0]) {
			return resolveString(val[0])
		}
		out := make([]any, len(val))
		for i, s := range val {
			out[i] = resolveString(s)
		}
		return out
	case []any:
		if len(val) == 1 {
			if s, ok := val[0].(string); ok && isListToken(s) {
				return resolveString(s)
			}
		}
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = Resolve(e)
		}
		return out
	case Condition:
		return Resolve(map[string]any(val))
	case map[string]string:
		out := make(map[string]any, len(val))
		for k, e := range val {
			out[k] = resolveString(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, e := range val {
			out[k] = Resolve(e)
		}
		return out
	default:
		return v
	}
}

func isListToken(s string) bool {
	m := tokenPattern.FindStringSubmatchIndex(s)
	return m != nil && m[0] == 0 && m[1] == len(s) && s[m[2]:m[3]] == "ListToken"
}

func resolveString(s string) any {
	matches := tokenPattern.FindAllStringSubmatchIndex(s, -1)
	if matches == nil {
		return s
	}

	var parts []any
	last := 0
	for _, m := range matches {
		if m[0] > last {
			parts = append(parts, s[last:m[0]])
		}
		fn, err := decodeToken(s[m[4]:m[5]])
		if err != nil {
			// not one of ours; keep the text verbatim
			parts = append(parts, s[m[0]:m[1]])
		} else {
			parts = append(parts, Resolve(fn))
		}
		last = m[1]
	}
	if last < len(s) {
		parts = append(parts, s[last:])
	}

	if len(parts) == 1 {
		return parts[0]
	}
	return map[string]any{"Fn::Join": []any{"", mergeLiterals(parts)}}
}

// mergeLiterals joins adjacent literal strings so Fn::Join stays compact.
func mergeLiterals(parts []any) []any {
	out := make([]any, 0, len(parts))
	for _, p := range parts {
		if s, ok := p.(string); ok && len(out) > 0 {
			if prev, ok := out[len(out)-1].(string); ok {
				out[len(out)-1] = prev + s
				continue
			}
		}
		out = append(out, p)
	}
	return out
}
