package cfn

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"

	"github.com/mitchellh/mapstructure"
)

// Decode fills the binding pointed to by target from a wire document, the
// inverse of Render. Intrinsic objects decoded into string fields become
// tokens. Properties the binding does not model are reported as an
// *UnknownPropertyError after the known ones have been decoded.
func Decode(doc map[string]any, target any) error {
	var md mapstructure.Metadata
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "cfn",
		Result:           target,
		Metadata:         &md,
		WeaklyTypedInput: true,
		DecodeHook:       intrinsicHook,
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(doc); err != nil {
		return fmt.Errorf("%w of %s: %w", ErrUndecodable, TypeName(target), err)
	}

	if len(md.Unused) > 0 {
		sort.Strings(md.Unused)
		return &UnknownPropertyError{Type: TypeName(target), Properties: md.Unused}
	}
	return nil
}

func intrinsicHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	for to.Kind() == reflect.Pointer {
		to = to.Elem()
	}

	switch to.Kind() {
	case reflect.String:
		switch d := data.(type) {
		case map[string]any:
			if IsIntrinsic(d) {
				return TokenFor(d)
			}
		// scalars keep their literal spelling instead of the weak "1"/"0"
		case bool:
			return strconv.FormatBool(d), nil
		case int:
			return strconv.Itoa(d), nil
		case int64:
			return strconv.FormatInt(d, 10), nil
		case float64:
			return strconv.FormatFloat(d, 'f', -1, 64), nil
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if d, ok := data.(float64); ok && d != math.Trunc(d) {
			return nil, fmt.Errorf("%v is not an integer", d)
		}
	case reflect.Slice:
		if to.Elem().Kind() != reflect.String {
			break
		}
		if d, ok := data.(map[string]any); ok && IsIntrinsic(d) {
			token, err := ListTokenFor(d)
			if err != nil {
				return nil, err
			}
			return []string{token}, nil
		}
	}
	return data, nil
}
