package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeyValuePairs(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected map[string]string
		wantErr  bool
	}{
		{
			name:     "empty",
			input:    nil,
			expected: map[string]string{},
		},
		{
			name:     "values may contain equals signs",
			input:    []string{"Env=prod", "Filter=a=b"},
			expected: map[string]string{"Env": "prod", "Filter": "a=b"},
		},
		{
			name:     "empty value",
			input:    []string{"Suffix="},
			expected: map[string]string{"Suffix": ""},
		},
		{
			name:    "missing separator",
			input:   []string{"Env"},
			wantErr: true,
		},
		{
			name:    "empty key",
			input:   []string{"=prod"},
			wantErr: true,
		},
		{
			name:    "duplicate key",
			input:   []string{"Env=dev", "Env=prod"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseKeyValuePairs(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestBindEnvToFlags(t *testing.T) {
	var outDir, format string
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringVar(&outDir, "out-dir", "cfnkit.out", "")
	cmd.Flags().StringVar(&format, "format", "json", "")

	t.Setenv("OUT_DIR", "from-env")
	t.Setenv("FORMAT", "yaml")
	require.NoError(t, cmd.Flags().Set("format", "json"))

	require.NoError(t, BindEnvToFlags(cmd))
	assert.Equal(t, "from-env", outDir)
	assert.Equal(t, "json", format, "explicit flags win over the environment")
}

func TestCleanPathName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "templates/app.yaml", expected: "templates--app--yaml"},
		{input: "./a/../b.json", expected: "b--json"},
		{input: "/abs/dir/stack.template.json", expected: "abs--dir--stack--template--json"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanPathName(tt.input))
		})
	}
}

func TestLoadTemplate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "queue.yaml")
	require.NoError(t, os.WriteFile(path, []byte("Resources:\n  Queue:\n    Type: AWS::SQS::Queue\n"), 0644))

	tmpl, err := LoadTemplate(path)
	require.NoError(t, err)
	assert.Equal(t, "AWS::SQS::Queue", tmpl.Resources["Queue"].Type)

	_, err = LoadTemplate(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read template")
}

func TestFormatHclResourceName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "BucketName", expected: "bucket_name"},
		{input: "SSESpecification", expected: "sse_specification"},
		{input: "KmsMasterKeyId", expected: "kms_master_key_id"},
		{input: "S3Bucket", expected: "s3_bucket"},
		{input: "my-queue", expected: "my_queue"},
		{input: "Arn", expected: "arn"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatHclResourceName(tt.input))
		})
	}
}

func TestHclTokens(t *testing.T) {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	body.SetAttributeRaw("literal", TokensForStringLiteral(`say "${hi}"`))
	body.SetAttributeRaw("template", TokensForStringTemplate([]TemplatePart{
		{Literal: "arn:"},
		{Expr: TokensForResourceReference("data.aws_partition.current.partition")},
		{Literal: ":s3:::logs"},
	}))
	body.SetAttributeRaw("joined", TokensForFunctionCall("join",
		TokensForStringLiteral("-"),
		TokensForList([]hclwrite.Tokens{TokensForVarReference("env"), TokensForStringLiteral("app")}),
	))
	body.SetAttributeRaw("picked", TokensForConditional(
		TokensForVarReference("is_prod"), TokensForStringLiteral("a"), TokensForStringLiteral("b"),
	))
	body.SetAttributeRaw("tags", TokensForMap(map[string]hclwrite.Tokens{
		"team":     TokensForStringLiteral("data"),
		"cost-env": TokensForStringLiteral("dev"),
		"aws:team": TokensForStringLiteral("data"),
	}))
	AppendLifecycleBlock(body, true, false)

	out := string(hclwrite.Format(f.Bytes()))
	assert.Contains(t, out, `literal  = "say \"$${hi}\""`)
	assert.Contains(t, out, `template = "arn:${data.aws_partition.current.partition}:s3:::logs"`)
	assert.Contains(t, out, `joined   = join("-", [var.env, "app"])`)
	assert.Contains(t, out, `picked   = var.is_prod ? "a" : "b"`)
	assert.Regexp(t, `\n\s+cost-env\s+= "dev"`, out)
	assert.Regexp(t, `"aws:team"\s+= "data"`, out)
	assert.Contains(t, out, "lifecycle {\n  prevent_destroy = true\n}")
}
