package synth

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confluentinc/cfnkit/internal/services/nag"
	"github.com/confluentinc/cfnkit/internal/types"
	"github.com/confluentinc/cfnkit/pkg/cfn"
	_ "github.com/confluentinc/cfnkit/pkg/cfn/all"
	"github.com/confluentinc/cfnkit/pkg/cfn/sqs"
)

const definition = `
app: orders
nag:
  packs: [AwsSolutions]
stacks:
  - name: orders
    description: order processing
    includes: [legacy/topic.yaml]
    parameters:
      Env:
        type: String
        default: dev
    conditions:
      IsProd:
        Fn::Equals: [{Ref: Env}, prod]
    resources:
      Queue:
        type: AWS::SQS::Queue
        deletion_policy: Retain
        metadata:
          cdk_nag:
            rules_to_suppress:
              - id: AwsSolutions-SQS3
                reason: consumers retry from the source system
        properties:
          VisibilityTimeout: 60
          SqsManagedSseEnabled: true
          QueueName:
            Fn::Sub: "${AWS::StackName}-${Env}"
      Replica:
        type: AWS::SQS::Queue
        condition: IsProd
        depends_on: [Queue]
    outputs:
      QueueArn:
        value:
          Fn::GetAtt: [Queue, Arn]
        export_name: orders-queue-arn
  - name: audit
    resources:
      Trail:
        type: AWS::Logs::LogGroup
        properties:
          RetentionInDays: 30
`

const legacyTopic = `
AWSTemplateFormatVersion: "2010-09-09"
Resources:
  Alarms:
    Type: AWS::SNS::Topic
    Properties:
      TopicName: alarms
`

func writeDefinition(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "legacy"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "legacy", "topic.yaml"), []byte(legacyTopic), 0o644))
	path := filepath.Join(dir, types.DefaultDefinitionFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSynthesizerRun(t *testing.T) {
	outDir := t.TempDir()
	s := NewSynthesizer(SynthOpts{DefinitionFile: writeDefinition(t, definition), OutDir: outDir})

	manifest, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateWritten, s.Current())

	assert.Equal(t, "orders", manifest.App)
	assert.NotEmpty(t, manifest.RunID)
	require.Len(t, manifest.Stacks, 2)
	assert.Equal(t, "audit", manifest.Stacks[0].Name)
	assert.Equal(t, "orders", manifest.Stacks[1].Name)
	assert.Equal(t, "orders.template.json", manifest.Stacks[1].TemplateFile)
	assert.Equal(t, 3, manifest.Stacks[1].ResourceCount)
	assert.Len(t, manifest.Stacks[1].TemplateHash, 64)
	assert.Equal(t, []string{"AwsSolutions-orders-NagReport.json"}, manifest.Stacks[1].NagReports)

	data, err := os.ReadFile(filepath.Join(outDir, "orders.template.json"))
	require.NoError(t, err)
	tmpl, err := cfn.ParseTemplate(data)
	require.NoError(t, err)

	assert.Equal(t, "order processing", tmpl.Description)
	assert.Equal(t, "AWS::SNS::Topic", tmpl.Resources["Alarms"].Type)
	queue := tmpl.Resources["Queue"]
	assert.Equal(t, "Retain", queue.DeletionPolicy)
	assert.Equal(t, float64(60), queue.Properties["VisibilityTimeout"])
	assert.Equal(t, map[string]any{"Fn::Sub": "${AWS::StackName}-${Env}"}, queue.Properties["QueueName"])
	assert.Equal(t, "IsProd", tmpl.Resources["Replica"].Condition)
	assert.Equal(t, cfn.StringList{"Queue"}, tmpl.Resources["Replica"].DependsOn)
	assert.Equal(t, map[string]any{"Fn::GetAtt": []any{"Queue", "Arn"}}, tmpl.Outputs["QueueArn"].Value)
	assert.Equal(t, "orders-queue-arn", tmpl.Outputs["QueueArn"].Export.Name)

	var report types.NagReport
	raw, err := os.ReadFile(filepath.Join(outDir, "AwsSolutions-orders-NagReport.json"))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &report))
	suppressed := 0
	for _, l := range report.Lines {
		if l.Compliance == types.NagSuppressed {
			suppressed++
			assert.Equal(t, "orders/Queue", l.ResourceID)
			assert.Equal(t, "AwsSolutions-SQS3", l.RuleID)
		}
	}
	assert.Equal(t, 1, suppressed)

	var written types.Manifest
	raw, err = os.ReadFile(filepath.Join(outDir, types.ManifestFile))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &written))
	assert.Equal(t, manifest.RunID, written.RunID)

	_, ok := s.Templates()["audit"]
	assert.True(t, ok)
	require.Len(t, s.Reports()["audit"], 1)
	audit := s.Reports()["audit"][0]
	assert.NotEmpty(t, audit.Lines)
	assert.Equal(t, 0, audit.Count(types.NagNonCompliant))
	assert.Equal(t, len(audit.Lines), audit.Count(types.NagNotApplicable))

	assert.Equal(t, types.NagSarifFile, written.NagSarif)
	var sarif nag.SarifLog
	raw, err = os.ReadFile(filepath.Join(outDir, types.NagSarifFile))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &sarif))
	assert.Equal(t, "2.1.0", sarif.Version)
	require.Len(t, sarif.Runs, 1)
	assert.NotEmpty(t, sarif.Runs[0].Tool.Driver.Rules)

	var queueDLQ *nag.SarifResult
	for i, r := range sarif.Runs[0].Results {
		if r.RuleID == "AwsSolutions-SQS3" && r.Properties.Finding.ResourceID == "orders/Queue" {
			queueDLQ = &sarif.Runs[0].Results[i]
		}
	}
	require.NotNil(t, queueDLQ)
	assert.Equal(t, "review", queueDLQ.Kind)
	assert.Equal(t, "note", queueDLQ.Level)
	assert.Equal(t, "orders.template.json", queueDLQ.AnalysisTarget.URI)
	assert.Contains(t, queueDLQ.Locations[0].PhysicalLocation.Region.Snippet.Text, "AWS::SQS::Queue")
	assert.Contains(t, queueDLQ.Properties.Tags, "AWS::SQS::Queue")
}

func TestSynthesizerIncludeCompliant(t *testing.T) {
	withSetting := func(setting string) string {
		return "app: a\nnag:\n  packs: [AwsSolutions]\n" + setting + "stacks:\n  - name: s\n    resources:\n      Q:\n        type: AWS::SQS::Queue\n        properties:\n          SqsManagedSseEnabled: true\n"
	}
	exclude, include := false, true

	tests := []struct {
		name       string
		definition string
		override   *bool
		compliant  bool
	}{
		{name: "default", definition: withSetting(""), compliant: true},
		{name: "definition excludes", definition: withSetting("  include_compliant: false\n"), compliant: false},
		{name: "flag excludes", definition: withSetting(""), override: &exclude, compliant: false},
		{name: "flag includes", definition: withSetting("  include_compliant: false\n"), override: &include, compliant: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSynthesizer(SynthOpts{
				DefinitionFile:   writeDefinition(t, tt.definition),
				OutDir:           t.TempDir(),
				IncludeCompliant: tt.override,
			})
			require.NoError(t, s.Load(context.Background()))
			require.NoError(t, s.Build(context.Background()))
			require.NoError(t, s.Synthesize(context.Background()))

			report := s.Reports()["s"][0]
			assert.Equal(t, tt.compliant, report.Count(types.NagCompliant) > 0)
			assert.Equal(t, 1, report.Count(types.NagNonCompliant))
		})
	}
}

func TestSynthesizerTypedResources(t *testing.T) {
	s := NewSynthesizer(SynthOpts{DefinitionFile: writeDefinition(t, definition), OutDir: t.TempDir(), Stacks: []string{"orders"}})
	require.NoError(t, s.Load(context.Background()))
	require.NoError(t, s.Build(context.Background()))

	require.Len(t, s.stacks, 1)
	r, ok := s.stacks[0].Resource("Queue")
	require.True(t, ok)
	queue, ok := r.(*sqs.Queue)
	require.True(t, ok)
	assert.Equal(t, 60, cfn.ToInt(queue.Props.VisibilityTimeout))
	assert.True(t, cfn.ToBool(queue.Props.SqsManagedSseEnabled))
}

func TestSynthesizerParameterOverrides(t *testing.T) {
	s := NewSynthesizer(SynthOpts{
		DefinitionFile: writeDefinition(t, definition),
		OutDir:         t.TempDir(),
		Parameters:     map[string]string{"Env": "prod"},
	})
	_, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "prod", s.Templates()["orders"].Parameters["Env"].Default)

	s = NewSynthesizer(SynthOpts{
		DefinitionFile: writeDefinition(t, definition),
		Stacks:         []string{"audit"},
		Parameters:     map[string]string{"Env": "prod"},
	})
	err = s.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parameter Env is not declared by any selected stack")
	assert.Equal(t, StatePending, s.Current())
}

func TestSynthesizerYAMLAndStackFilter(t *testing.T) {
	outDir := t.TempDir()
	s := NewSynthesizer(SynthOpts{
		DefinitionFile: writeDefinition(t, definition),
		OutDir:         outDir,
		Format:         types.OutputFormatYAML,
		Stacks:         []string{"audit"},
	})

	manifest, err := s.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, manifest.Stacks, 1)
	assert.Equal(t, "audit.template.yaml", manifest.Stacks[0].TemplateFile)

	data, err := os.ReadFile(filepath.Join(outDir, "audit.template.yaml"))
	require.NoError(t, err)
	assert.Regexp(t, `AWSTemplateFormatVersion: ["']?2010-09-09`, string(data))
	assert.NoFileExists(t, filepath.Join(outDir, "orders.template.yaml"))
}

func TestSynthesizerInvalidTransitions(t *testing.T) {
	s := NewSynthesizer(SynthOpts{DefinitionFile: writeDefinition(t, definition), OutDir: t.TempDir()})

	err := s.Build(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot build while pending")
	assert.Equal(t, StatePending, s.Current())

	require.NoError(t, s.Load(context.Background()))
	assert.Equal(t, StateLoaded, s.Current())

	err = s.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot load while loaded")

	err = s.Write(context.Background())
	require.Error(t, err)
	assert.Equal(t, StateLoaded, s.Current())
}

func TestSynthesizerErrors(t *testing.T) {
	tests := []struct {
		name     string
		opts     func(path string) SynthOpts
		content  string
		contains string
	}{
		{
			name:     "unknown stack",
			content:  definition,
			opts:     func(path string) SynthOpts { return SynthOpts{DefinitionFile: path, Stacks: []string{"nope"}} },
			contains: `stack "nope" is not defined`,
		},
		{
			name:     "missing required property",
			content:  "app: a\nstacks:\n  - name: s\n    resources:\n      Fn:\n        type: AWS::Lambda::Function\n",
			opts:     func(path string) SynthOpts { return SynthOpts{DefinitionFile: path} },
			contains: "Code",
		},
		{
			name:     "dangling reference",
			content:  "app: a\nstacks:\n  - name: s\n    resources:\n      Q:\n        type: AWS::SQS::Queue\n        properties:\n          QueueName:\n            Ref: Missing\n",
			opts:     func(path string) SynthOpts { return SynthOpts{DefinitionFile: path} },
			contains: "Missing",
		},
		{
			name:     "unknown nag pack",
			content:  "app: a\nstacks:\n  - name: s\n    resources:\n      Q:\n        type: AWS::SQS::Queue\n",
			opts:     func(path string) SynthOpts { return SynthOpts{DefinitionFile: path, NagPacks: []string{"Bogus"}} },
			contains: `unknown nag pack "Bogus"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts(writeDefinition(t, tt.content))
			opts.OutDir = t.TempDir()

			_, err := NewSynthesizer(opts).Run(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestSynthesizerFailOnNagError(t *testing.T) {
	path := writeDefinition(t, "app: a\nstacks:\n  - name: s\n    resources:\n      Q:\n        type: AWS::SQS::Queue\n")
	outDir := t.TempDir()

	manifest, err := NewSynthesizer(SynthOpts{
		DefinitionFile: path,
		OutDir:         outDir,
		NagPacks:       []string{"AwsSolutions"},
		FailOnNagError: true,
	}).Run(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNagFailed))
	require.NotNil(t, manifest)
	assert.FileExists(t, filepath.Join(outDir, "s.template.json"))
	assert.FileExists(t, filepath.Join(outDir, "AwsSolutions-s-NagReport.json"))
}
