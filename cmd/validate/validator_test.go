package validate

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/confluentinc/cfnkit/pkg/cfn/all"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidator(t *testing.T) {
	color.NoColor = true
	dir := t.TempDir()

	good := writeFile(t, dir, "good.yaml", "Resources:\n  Queue:\n    Type: AWS::SQS::Queue\n")
	dangling := writeFile(t, dir, "dangling.yaml", "Resources:\n  Queue:\n    Type: AWS::SQS::Queue\n    Properties:\n      QueueName: !Ref Missing\n")
	cycle := writeFile(t, dir, "cycle.yaml", `
Resources:
  A:
    Type: AWS::SQS::Queue
    DependsOn: B
  B:
    Type: AWS::SQS::Queue
    DependsOn: A
`)
	definition := writeFile(t, dir, "cfnkit.yaml", "app: a\nstacks:\n  - name: s\n    resources:\n      Q:\n        type: AWS::SQS::Queue\n")

	tests := []struct {
		name     string
		opts     ValidatorOpts
		wantErr  string
		contains []string
	}{
		{
			name:     "valid template and definition",
			opts:     ValidatorOpts{Templates: []string{good}, DefinitionFile: definition},
			contains: []string{"✔ " + good, "✔ " + definition},
		},
		{
			name:     "dangling reference",
			opts:     ValidatorOpts{Templates: []string{good, dangling}},
			wantErr:  "1 of 2 input(s) failed validation",
			contains: []string{"✘ " + dangling, "Missing"},
		},
		{
			name:     "cycle",
			opts:     ValidatorOpts{Templates: []string{cycle}},
			wantErr:  "1 of 1 input(s) failed validation",
			contains: []string{"✘ " + cycle},
		},
		{
			name:     "missing file",
			opts:     ValidatorOpts{Templates: []string{filepath.Join(dir, "nope.yaml")}},
			wantErr:  "failed validation",
			contains: []string{"failed to read template"},
		},
		{
			name:     "unknown stack",
			opts:     ValidatorOpts{DefinitionFile: definition, Stacks: []string{"other"}},
			wantErr:  "failed validation",
			contains: []string{`stack "other" is not defined`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := NewValidator(tt.opts, &out).Run(context.Background())
			if tt.wantErr == "" {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
			for _, c := range tt.contains {
				assert.Contains(t, out.String(), c)
			}
		})
	}
}
