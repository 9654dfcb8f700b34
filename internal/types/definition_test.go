package types

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ordersDefinition = `
app: orders
format: yaml
nag:
  packs: [AwsSolutions]
  include_compliant: true
stacks:
  - name: orders-dev
    description: order processing
    includes: [legacy/queue.yaml]
    parameters:
      Env:
        type: String
        default: dev
        allowed_values: [dev, prod]
    resources:
      Queue:
        type: AWS::SQS::Queue
        deletion_policy: Retain
        properties:
          DelaySeconds: 5
          QueueName:
            Fn::Sub: "${AWS::StackName}-orders"
      Topic:
        type: AWS::SNS::Topic
        depends_on: [Queue]
    outputs:
      QueueUrl:
        value:
          Ref: Queue
        export_name: orders-queue-url
`

func TestParseDefinition(t *testing.T) {
	def, err := ParseDefinition([]byte(ordersDefinition))
	require.NoError(t, err)

	assert.Equal(t, "orders", def.App)
	assert.Equal(t, OutputFormatYAML, def.OutputFormat())
	require.NotNil(t, def.Nag)
	assert.Equal(t, []string{"AwsSolutions"}, def.Nag.Packs)
	assert.True(t, def.Nag.IncludesCompliant())

	stack, ok := def.Stack("orders-dev")
	require.True(t, ok)
	assert.Equal(t, []string{"Queue", "Topic"}, stack.ResourceIDs())
	assert.Equal(t, "Retain", stack.Resources["Queue"].DeletionPolicy)
	assert.Equal(t, []string{"Queue"}, stack.Resources["Topic"].DependsOn)

	props, err := stack.Resources["Queue"].WireProperties()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"DelaySeconds": float64(5),
		"QueueName":    map[string]any{"Fn::Sub": "${AWS::StackName}-orders"},
	}, props)

	_, ok = def.Stack("missing")
	assert.False(t, ok)
}

func TestDefinitionValidate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains string
	}{
		{
			name:     "no app",
			input:    "stacks:\n  - name: a\n",
			contains: "Definition.App",
		},
		{
			name:     "no stacks",
			input:    "app: x\n",
			contains: "Definition.Stacks",
		},
		{
			name:     "invalid stack name",
			input:    "app: x\nstacks:\n  - name: 1bad\n",
			contains: "stackname",
		},
		{
			name:     "duplicate stack",
			input:    "app: x\nstacks:\n  - name: a\n  - name: a\n",
			contains: "unique",
		},
		{
			name:     "invalid logical id",
			input:    "app: x\nstacks:\n  - name: a\n    resources:\n      my-queue:\n        type: AWS::SQS::Queue\n",
			contains: "logicalid",
		},
		{
			name:     "resource without type",
			input:    "app: x\nstacks:\n  - name: a\n    resources:\n      Queue:\n        properties: {}\n",
			contains: "Type",
		},
		{
			name:     "unknown deletion policy",
			input:    "app: x\nstacks:\n  - name: a\n    resources:\n      Queue:\n        type: AWS::SQS::Queue\n        deletion_policy: Keep\n",
			contains: "DeletionPolicy",
		},
		{
			name:     "parameter without type",
			input:    "app: x\nstacks:\n  - name: a\n    parameters:\n      Env:\n        default: dev\n",
			contains: "parameter Env: Type failed \"required\"",
		},
		{
			name:     "output without value",
			input:    "app: x\nstacks:\n  - name: a\n    outputs:\n      Url:\n        description: queue url\n",
			contains: "output Url: Value failed \"required\"",
		},
		{
			name:     "unknown nag pack",
			input:    "app: x\nnag:\n  packs: [Bogus]\nstacks:\n  - name: a\n",
			contains: "oneof",
		},
		{
			name:     "unknown format",
			input:    "app: x\nformat: toml\nstacks:\n  - name: a\n",
			contains: "Format",
		},
		{
			name:     "parameter and resource share an id",
			input:    "app: x\nstacks:\n  - name: a\n    parameters:\n      Queue:\n        type: String\n    resources:\n      Queue:\n        type: AWS::SQS::Queue\n",
			contains: "both a parameter and a resource",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDefinition([]byte(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestNewDefinitionFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultDefinitionFile)
	require.NoError(t, os.WriteFile(path, []byte(ordersDefinition), 0644))

	def, err := NewDefinitionFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "legacy/queue.yaml"), def.IncludePath("legacy/queue.yaml"))
	assert.Equal(t, "/abs/t.yaml", def.IncludePath("/abs/t.yaml"))

	_, err = NewDefinitionFromFile(filepath.Join(dir, "nope.yaml"))
	assert.ErrorContains(t, err, "failed to read")
}

func TestToOutputFormat(t *testing.T) {
	f, err := ToOutputFormat("")
	require.NoError(t, err)
	assert.Equal(t, OutputFormatJSON, f)

	f, err = ToOutputFormat(" YAML ")
	require.NoError(t, err)
	assert.Equal(t, OutputFormatYAML, f)
	assert.Equal(t, "yaml", f.Extension())

	_, err = ToOutputFormat("toml")
	assert.ErrorContains(t, err, "json, yaml")
}

func TestTerraformFiles(t *testing.T) {
	files := TerraformFiles{MainTf: "main", ProvidersTf: "providers"}.Files()
	assert.Equal(t, map[string]string{"main.tf": "main", "providers.tf": "providers"}, files)
}

func TestNagSettingsIncludesCompliant(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "no nag section", input: "app: x\nstacks:\n  - name: a\n", want: true},
		{name: "unset", input: "app: x\nnag:\n  packs: [HIPAA.Security, PCIDSS321Checks]\nstacks:\n  - name: a\n", want: true},
		{name: "disabled", input: "app: x\nnag:\n  include_compliant: false\nstacks:\n  - name: a\n", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := ParseDefinition([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, def.Nag.IncludesCompliant())
		})
	}
}
