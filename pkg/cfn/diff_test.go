package cfn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff(t *testing.T) {
	before := &Template{
		Description: "v1",
		Parameters:  map[string]*Parameter{"Env": {Type: "String"}},
		Resources: map[string]*TemplateResource{
			"Queue": {Type: "AWS::SQS::Queue", Properties: map[string]any{"DelaySeconds": 5, "QueueName": "orders"}},
			"Topic": {Type: "AWS::SNS::Topic"},
			"Same":  {Type: "AWS::SQS::Queue"},
		},
	}
	after := &Template{
		Description: "v1",
		Parameters:  map[string]*Parameter{"Env": {Type: "String", Default: "dev"}},
		Resources: map[string]*TemplateResource{
			"Queue":  {Type: "AWS::SQS::Queue", Properties: map[string]any{"DelaySeconds": 10, "QueueName": "orders"}},
			"Bucket": {Type: "AWS::S3::Bucket"},
			"Same":   {Type: "AWS::SQS::Queue"},
		},
	}

	changes, err := Diff(before, after)
	require.NoError(t, err)

	assert.Equal(t, []Change{
		{
			Section:    "Parameters",
			LogicalID:  "Env",
			Action:     ActionModify,
			Properties: []PropertyChange{{Path: "Default", From: nil, To: "dev"}},
		},
		{Section: "Resources", LogicalID: "Bucket", Type: "AWS::S3::Bucket", Action: ActionAdd},
		{
			Section:    "Resources",
			LogicalID:  "Queue",
			Type:       "AWS::SQS::Queue",
			Action:     ActionModify,
			Properties: []PropertyChange{{Path: "Properties.DelaySeconds", From: float64(5), To: float64(10)}},
		},
		{Section: "Resources", LogicalID: "Topic", Type: "AWS::SNS::Topic", Action: ActionRemove},
	}, changes)
}

func TestDiffNilTemplates(t *testing.T) {
	tmpl := &Template{Resources: map[string]*TemplateResource{"Queue": {Type: "AWS::SQS::Queue"}}}

	changes, err := Diff(nil, tmpl)
	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Equal(t, ActionAdd, changes[0].Action)
	assert.Equal(t, "Add Resources.Queue (AWS::SQS::Queue)", changes[0].String())

	changes, err = Diff(tmpl, tmpl)
	require.NoError(t, err)
	assert.Empty(t, changes)
}

func TestDiffLiteralToIntrinsic(t *testing.T) {
	before, err := ParseTemplate([]byte("Resources:\n  B:\n    Type: AWS::S3::Bucket\n    Properties:\n      BucketName: logs\n"))
	require.NoError(t, err)
	after, err := ParseTemplate([]byte("Parameters:\n  Name:\n    Type: String\nResources:\n  B:\n    Type: AWS::S3::Bucket\n    Properties:\n      BucketName: !Ref Name\n"))
	require.NoError(t, err)

	changes, err := Diff(before, after)
	require.NoError(t, err)

	var bucket *Change
	for i := range changes {
		if changes[i].Section == "Resources" && changes[i].LogicalID == "B" {
			bucket = &changes[i]
		}
	}
	require.NotNil(t, bucket)
	assert.Equal(t, ActionModify, bucket.Action)
	assert.Equal(t, []PropertyChange{{
		Path: "Properties.BucketName",
		From: "logs",
		To:   map[string]any{"Ref": "Name"},
	}}, bucket.Properties)

	changes, err = Diff(after, before)
	require.NoError(t, err)
	assert.NotEmpty(t, changes)
}
