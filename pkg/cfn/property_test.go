package cfn

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name          string
		props         *widgetProps
		expectedPaths []string
	}{
		{
			name:  "all required fields set",
			props: &widgetProps{Name: String("w")},
		},
		{
			name:          "missing top level field",
			props:         &widgetProps{Size: Int(1)},
			expectedPaths: []string{"Name"},
		},
		{
			name:          "nil props",
			props:         nil,
			expectedPaths: []string{"Name"},
		},
		{
			name: "missing nested field",
			props: &widgetProps{
				Name:   String("w"),
				Format: &widgetFormat{Delimiter: String(",")},
			},
			expectedPaths: []string{"Format.FormatType"},
		},
		{
			name: "missing field in list element",
			props: &widgetProps{
				Name:  String("w"),
				Parts: []widgetPart{{PartName: String("a")}, {Count: Int(2)}},
			},
			expectedPaths: []string{"Parts[1].PartName"},
		},
		{
			name: "every problem is reported",
			props: &widgetProps{
				Format: &widgetFormat{},
				Tags:   []Tag{{Key: String("k")}},
			},
			expectedPaths: []string{"Name", "Format.FormatType", "Tags[0].Value"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.props)
			if len(tt.expectedPaths) == 0 {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var errs ValidationErrors
			require.True(t, errors.As(err, &errs))

			var paths []string
			for _, e := range errs {
				var required *RequiredPropertyError
				require.True(t, errors.As(e, &required))
				paths = append(paths, required.Path)
				assert.Contains(t, err.Error(), required.Property)
			}
			assert.Equal(t, tt.expectedPaths, paths)
		})
	}
}

func TestValidateNamesTheNestedType(t *testing.T) {
	err := Validate(&widgetProps{Name: String("w"), Format: &widgetFormat{}})

	var required *RequiredPropertyError
	require.True(t, errors.As(err, &required))
	assert.Equal(t, "Test::Service::Widget.Format", required.Type)
	assert.Equal(t, "FormatType", required.Property)
}

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		props    *widgetProps
		expected map[string]any
	}{
		{
			name:     "optional fields are omitted",
			props:    &widgetProps{Name: String("w")},
			expected: map[string]any{"Name": "w"},
		},
		{
			name: "scalars keep their values",
			props: &widgetProps{
				Name:    String("w"),
				Size:    Int(3),
				Ratio:   Float64(0.5),
				Enabled: Bool(false),
			},
			expected: map[string]any{"Name": "w", "Size": 3, "Ratio": 0.5, "Enabled": false},
		},
		{
			name: "nested values render as nested documents",
			props: &widgetProps{
				Name:   String("w"),
				Format: &widgetFormat{FormatType: String("JSON")},
				Parts:  []widgetPart{{PartName: String("a"), Count: Int(1)}, {PartName: String("b")}},
				Tags:   []Tag{*NewTag("team", "data")},
			},
			expected: map[string]any{
				"Name":   "w",
				"Format": map[string]any{"FormatType": "JSON"},
				"Parts": []any{
					map[string]any{"PartName": "a", "Count": 1},
					map[string]any{"PartName": "b"},
				},
				"Tags": []any{map[string]any{"Key": "team", "Value": "data"}},
			},
		},
		{
			name: "empty but non-nil collections are kept",
			props: &widgetProps{
				Name:    String("w"),
				Targets: []string{},
			},
			expected: map[string]any{"Name": "w", "Targets": []any{}},
		},
		{
			name: "tokens are resolved",
			props: &widgetProps{
				Name:    String(Ref("Other")),
				Labels:  map[string]string{"arn": GetAtt("Other", "Arn")},
				Targets: GetAZs(""),
			},
			expected: map[string]any{
				"Name":    map[string]any{"Ref": "Other"},
				"Labels":  map[string]any{"arn": map[string]any{"Fn::GetAtt": []any{"Other", "Arn"}}},
				"Targets": map[string]any{"Fn::GetAZs": ""},
			},
		},
		{
			name: "free-form json is normalised",
			props: &widgetProps{
				Name: String("w"),
				Policy: struct {
					Version string `json:"Version"`
					Count   int    `json:"Count"`
				}{Version: "2012-10-17", Count: 2},
			},
			expected: map[string]any{
				"Name":   "w",
				"Policy": map[string]any{"Version": "2012-10-17", "Count": float64(2)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Render(tt.props))
		})
	}
}

func TestRenderNil(t *testing.T) {
	var props *widgetProps
	assert.Equal(t, map[string]any{}, Render(props))
}

func TestRenderUnsigned(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected any
	}{
		{name: "small", value: uint32(7), expected: 7},
		{name: "max int", value: uint64(math.MaxInt), expected: math.MaxInt},
		{name: "above max int", value: uint64(math.MaxUint64), expected: uint64(math.MaxUint64)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RenderValue(tt.value))
		})
	}
}

func TestEqual(t *testing.T) {
	build := func() *widgetProps {
		return &widgetProps{
			Name:   String("w"),
			Size:   Int(1),
			Format: &widgetFormat{FormatType: String("CSV"), Delimiter: String(",")},
		}
	}

	tests := []struct {
		name   string
		mutate func(p *widgetProps)
		equal  bool
	}{
		{name: "identical fields", mutate: func(p *widgetProps) {}, equal: true},
		{name: "different scalar", mutate: func(p *widgetProps) { p.Size = Int(2) }, equal: false},
		{name: "optional field removed", mutate: func(p *widgetProps) { p.Size = nil }, equal: false},
		{name: "different nested field", mutate: func(p *widgetProps) { p.Format.Delimiter = String(";") }, equal: false},
		{name: "extra list", mutate: func(p *widgetProps) { p.Targets = []string{"a"} }, equal: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := build(), build()
			tt.mutate(b)
			assert.Equal(t, tt.equal, Equal(a, b))
			assert.Equal(t, tt.equal, Equal(b, a))
		})
	}
}

func TestEqualDifferentTypes(t *testing.T) {
	assert.False(t, Equal(&widgetFormat{FormatType: String("x")}, &widgetPart{PartName: String("x")}))
}

func TestRepr(t *testing.T) {
	assert.Equal(t, `Test::Service::Widget.Format{"FormatType":"JSON"}`, Repr(&widgetFormat{FormatType: String("JSON")}))
	assert.Equal(t, `Tag{"Key":"a","Value":"b"}`, Repr(NewTag("a", "b")))
}
