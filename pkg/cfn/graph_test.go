package cfn

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph(t *testing.T) {
	tmpl, err := ParseTemplate([]byte(`
Resources:
  Role:
    Type: AWS::IAM::Role
  Queue:
    Type: AWS::SQS::Queue
  Function:
    Type: AWS::Lambda::Function
    Properties:
      Role: !GetAtt Role.Arn
      Environment:
        Variables:
          QUEUE: !Sub "${Queue}"
  Mapping:
    Type: AWS::Lambda::EventSourceMapping
    DependsOn: [Function]
    Properties:
      EventSourceArn: !GetAtt Queue.Arn
      FunctionName: !Ref Function
  Alarm:
    Type: AWS::CloudWatch::Alarm
`))
	require.NoError(t, err)

	g, err := tmpl.Graph()
	require.NoError(t, err)

	order, err := g.DeployOrder()
	require.NoError(t, err)
	assert.Equal(t, []string{"Alarm", "Queue", "Role", "Function", "Mapping"}, order)

	deps, err := g.Dependencies("Function")
	require.NoError(t, err)
	assert.Equal(t, []string{"Queue", "Role"}, deps)

	dependents, err := g.Dependents("Queue")
	require.NoError(t, err)
	assert.Equal(t, []string{"Function", "Mapping"}, dependents)

	edges, err := g.Edges()
	require.NoError(t, err)
	assert.Equal(t, [][2]string{
		{"Function", "Mapping"},
		{"Queue", "Function"},
		{"Queue", "Mapping"},
		{"Role", "Function"},
	}, edges)

	var buf bytes.Buffer
	require.NoError(t, g.DOT(&buf))
	assert.Contains(t, buf.String(), "digraph")
	assert.Contains(t, buf.String(), "Mapping")
}

func TestGraphCycleThroughDependsOn(t *testing.T) {
	tmpl := &Template{Resources: map[string]*TemplateResource{
		"A": {Type: "AWS::SQS::Queue", DependsOn: StringList{"B"}},
		"B": {Type: "AWS::SQS::Queue", DependsOn: StringList{"C"}},
		"C": {Type: "AWS::SQS::Queue", Properties: map[string]any{"Name": map[string]any{"Ref": "A"}}},
	}}

	_, err := tmpl.Graph()
	var cycle *CycleError
	assert.ErrorAs(t, err, &cycle)
}
