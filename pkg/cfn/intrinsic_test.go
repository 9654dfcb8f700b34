package cfn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected any
	}{
		{
			name:     "plain string is untouched",
			input:    "my-bucket",
			expected: "my-bucket",
		},
		{
			name:     "ref",
			input:    Ref("Bucket"),
			expected: map[string]any{"Ref": "Bucket"},
		},
		{
			name:     "get att",
			input:    GetAtt("Function", "Arn"),
			expected: map[string]any{"Fn::GetAtt": []any{"Function", "Arn"}},
		},
		{
			name:  "literal text around a token becomes a join",
			input: "arn:aws:s3:::" + Ref("Bucket") + "/*",
			expected: map[string]any{"Fn::Join": []any{"", []any{
				"arn:aws:s3:::",
				map[string]any{"Ref": "Bucket"},
				"/*",
			}}},
		},
		{
			name:  "tokens nested in join arguments are resolved",
			input: Join(",", Ref("A"), "b"),
			expected: map[string]any{"Fn::Join": []any{",", []any{
				map[string]any{"Ref": "A"},
				"b",
			}}},
		},
		{
			name:     "sub keeps its template",
			input:    Sub("${AWS::Region}-${Bucket}"),
			expected: map[string]any{"Fn::Sub": "${AWS::Region}-${Bucket}"},
		},
		{
			name:     "list token as the only element collapses to the intrinsic",
			input:    GetAZs(""),
			expected: map[string]any{"Fn::GetAZs": ""},
		},
		{
			name:  "select over a list intrinsic",
			input: Select(0, GetAZs("")),
			expected: map[string]any{"Fn::Select": []any{
				"0",
				map[string]any{"Fn::GetAZs": ""},
			}},
		},
		{
			name:  "string list with tokens",
			input: []string{"a", AccountID()},
			expected: []any{
				"a",
				map[string]any{"Ref": "AWS::AccountId"},
			},
		},
		{
			name:  "condition",
			input: And(Equals(Region(), "us-east-1"), Not(ConditionRef("IsProd"))),
			expected: map[string]any{"Fn::And": []any{
				map[string]any{"Fn::Equals": []any{map[string]any{"Ref": "AWS::Region"}, "us-east-1"}},
				map[string]any{"Fn::Not": []any{map[string]any{"Condition": "IsProd"}}},
			}},
		},
		{
			name:  "if with pseudo parameter",
			input: If("IsProd", "big", NoValue()),
			expected: map[string]any{"Fn::If": []any{
				"IsProd", "big", map[string]any{"Ref": "AWS::NoValue"},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Resolve(tt.input))
		})
	}
}

func TestTokenFor(t *testing.T) {
	tests := []struct {
		name      string
		intrinsic map[string]any
		isList    bool
		wantErr   bool
	}{
		{
			name:      "ref",
			intrinsic: map[string]any{"Ref": "Bucket"},
		},
		{
			name:      "split is a list intrinsic",
			intrinsic: map[string]any{"Fn::Split": []any{",", "a,b"}},
			isList:    true,
		},
		{
			name:      "not an intrinsic",
			intrinsic: map[string]any{"Key": "Value"},
			wantErr:   true,
		},
		{
			name:      "two keys",
			intrinsic: map[string]any{"Ref": "A", "Fn::Sub": "b"},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := TokenFor(tt.intrinsic)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, IsToken(token))
			assert.Equal(t, tt.isList, isListToken(token))
			assert.Equal(t, tt.intrinsic, resolveString(token))
		})
	}
}

func TestTokenEncodingIsDeterministic(t *testing.T) {
	assert.Equal(t, Ref("Bucket"), Ref("Bucket"))
	assert.Equal(t, GetAtt("Fn", "Arn"), GetAtt("Fn", "Arn"))
	assert.NotEqual(t, Ref("A"), Ref("B"))

	token, err := TokenFor(map[string]any{"Ref": "Bucket"})
	require.NoError(t, err)
	assert.Equal(t, Ref("Bucket"), token)
}

func TestResolveLeavesForeignTokensAlone(t *testing.T) {
	s := "${Token[not!base64]}"
	assert.Equal(t, s, Resolve(s))
	assert.False(t, IsToken("${Bucket}"))
}
