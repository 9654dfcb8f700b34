package check

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confluentinc/cfnkit/internal/generators/synth"
	"github.com/confluentinc/cfnkit/internal/services/nag"
	_ "github.com/confluentinc/cfnkit/pkg/cfn/all"
)

const definition = `
app: shop
stacks:
  - name: shop
    resources:
      Queue:
        type: AWS::SQS::Queue
        properties:
          SqsManagedSseEnabled: true
`

func writeDefinition(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfnkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(definition), 0o644))
	return path
}

func TestCheckerReportsFindings(t *testing.T) {
	reportFile := filepath.Join(t.TempDir(), "nag.md")
	var out bytes.Buffer

	err := NewChecker(CheckerOpts{
		DefinitionFile: writeDefinition(t),
		Packs:          []string{"AwsSolutions"},
		ReportFile:     reportFile,
		Raw:            true,
	}, &out).Run(context.Background())
	require.NoError(t, err)

	assert.Contains(t, out.String(), "# Nag Report")
	assert.Contains(t, out.String(), "shop/Queue")
	assert.Contains(t, out.String(), "AwsSolutions-SQS3")
	assert.NotContains(t, out.String(), "AwsSolutions-SQS2")

	saved, err := os.ReadFile(reportFile)
	require.NoError(t, err)
	assert.Equal(t, out.String(), string(saved))
}

func TestCheckerFailOnError(t *testing.T) {
	var out bytes.Buffer
	err := NewChecker(CheckerOpts{
		DefinitionFile: writeDefinition(t),
		Packs:          []string{"AwsSolutions"},
		FailOnError:    true,
		Raw:            true,
	}, &out).Run(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, synth.ErrNagFailed))
}

func TestCheckerWithoutPacks(t *testing.T) {
	var out bytes.Buffer
	err := NewChecker(CheckerOpts{DefinitionFile: writeDefinition(t)}, &out).Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out.String())
}

func TestCheckerUnknownPack(t *testing.T) {
	err := NewChecker(CheckerOpts{DefinitionFile: writeDefinition(t), Packs: []string{"PCI"}}, &bytes.Buffer{}).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown nag pack "PCI"`)
}

func TestCheckerSarifFile(t *testing.T) {
	sarifFile := filepath.Join(t.TempDir(), "out", "nag.sarif")
	exclude := false

	err := NewChecker(CheckerOpts{
		DefinitionFile:   writeDefinition(t),
		Packs:            []string{"AwsSolutions", "HIPAASecurityChecks"},
		IncludeCompliant: &exclude,
		SarifFile:        sarifFile,
		Raw:              true,
	}, &bytes.Buffer{}).Run(context.Background())
	require.NoError(t, err)

	raw, err := os.ReadFile(sarifFile)
	require.NoError(t, err)
	var log nag.SarifLog
	require.NoError(t, json.Unmarshal(raw, &log))

	require.Len(t, log.Runs, 1)
	require.Len(t, log.Runs[0].Results, 1)
	result := log.Runs[0].Results[0]
	assert.Equal(t, "AwsSolutions-SQS3", result.RuleID)
	assert.Equal(t, "error", result.Level)
	assert.Equal(t, "fail", result.Kind)
	assert.Equal(t, "shop.template.json", result.AnalysisTarget.URI)
	assert.Equal(t, "shop/Queue", result.Locations[0].PhysicalLocation.ArtifactLocation.URI)
	assert.Equal(t, []string{"aws", "cdk", "cdk-nag", "AwsSolutions", "AwsSolutions-SQS3", "Queue", "AWS::SQS::Queue"}, result.Properties.Tags)
}
