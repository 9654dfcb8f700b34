package lambda

import (
	"errors"
	"testing"

	"github.com/confluentinc/cfnkit/pkg/cfn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFunction(t *testing.T) {
	stack, err := cfn.NewStack("compute", nil)
	require.NoError(t, err)
	_, err = stack.AddParameter("ArtifactBucket", &cfn.Parameter{Type: "String"})
	require.NoError(t, err)

	fn, err := NewFunction(stack, "Handler", &FunctionProps{
		Code: &Code{
			S3Bucket: cfn.String(cfn.Ref("ArtifactBucket")),
			S3Key:    cfn.String("handler.zip"),
		},
		Role:       cfn.String("arn:aws:iam::123456789012:role/handler"),
		Runtime:    cfn.String("provided.al2023"),
		Handler:    cfn.String("bootstrap"),
		MemorySize: cfn.Int(256),
		Environment: &Environment{Variables: map[string]string{
			"REGION": cfn.Region(),
			"TABLE":  "orders",
		}},
		TracingConfig: &TracingConfig{Mode: cfn.String("Active")},
	})
	require.NoError(t, err)

	_, err = NewPermission(stack, "Invoke", &PermissionProps{
		Action:       cfn.String("lambda:InvokeFunction"),
		FunctionName: cfn.String(fn.AttrArn()),
		Principal:    cfn.String("s3.amazonaws.com"),
		SourceArn:    cfn.String(cfn.Sub("arn:${AWS::Partition}:s3:::uploads")),
	})
	require.NoError(t, err)

	_, err = NewEventSourceMapping(stack, "Stream", &EventSourceMappingProps{
		FunctionName:     cfn.String(fn.Ref()),
		EventSourceArn:   cfn.String("arn:aws:sqs:us-east-1:123456789012:orders"),
		BatchSize:        cfn.Int(10),
		FilterCriteria:   &FilterCriteria{Filters: []Filter{{Pattern: cfn.String(`{"body":{"type":["order"]}}`)}}},
		DestinationConfig: &DestinationConfig{OnFailure: &OnFailure{Destination: cfn.String("arn:aws:sqs:us-east-1:123456789012:dlq")}},
	})
	require.NoError(t, err)

	tmpl, err := stack.Synth()
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"Code": map[string]any{
			"S3Bucket": map[string]any{"Ref": "ArtifactBucket"},
			"S3Key":    "handler.zip",
		},
		"Role":       "arn:aws:iam::123456789012:role/handler",
		"Runtime":    "provided.al2023",
		"Handler":    "bootstrap",
		"MemorySize": 256,
		"Environment": map[string]any{"Variables": map[string]any{
			"REGION": map[string]any{"Ref": "AWS::Region"},
			"TABLE":  "orders",
		}},
		"TracingConfig": map[string]any{"Mode": "Active"},
	}, tmpl.Resources["Handler"].Properties)

	assert.Equal(t, map[string]any{"Fn::GetAtt": []any{"Handler", "Arn"}}, tmpl.Resources["Invoke"].Properties["FunctionName"])
	assert.Equal(t, map[string]any{
		"Filters": []any{map[string]any{"Pattern": `{"body":{"type":["order"]}}`}},
	}, tmpl.Resources["Stream"].Properties["FilterCriteria"])

	g, err := tmpl.Graph()
	require.NoError(t, err)
	dependents, err := g.Dependents("Handler")
	require.NoError(t, err)
	assert.Equal(t, []string{"Invoke", "Stream"}, dependents)
}

func TestFunctionRequiredProperties(t *testing.T) {
	tests := []struct {
		name         string
		props        *FunctionProps
		expectedPath []string
	}{
		{
			name:         "empty",
			props:        &FunctionProps{},
			expectedPath: []string{"Code", "Role"},
		},
		{
			name:         "role",
			props:        &FunctionProps{Code: &Code{ZipFile: cfn.String("exports.handler = () => {}")}},
			expectedPath: []string{"Role"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stack, err := cfn.NewStack("compute", nil)
			require.NoError(t, err)

			_, err = NewFunction(stack, "Fn", tt.props)
			var errs cfn.ValidationErrors
			require.True(t, errors.As(err, &errs))

			var paths []string
			for _, e := range errs {
				var required *cfn.RequiredPropertyError
				require.True(t, errors.As(e, &required))
				paths = append(paths, required.Path)
			}
			assert.Equal(t, tt.expectedPath, paths)
		})
	}
}

func TestFunctionRoundTrip(t *testing.T) {
	props := &FunctionProps{
		Code:          &Code{ImageUri: cfn.String("123456789012.dkr.ecr.us-east-1.amazonaws.com/app:1")},
		Role:          cfn.String(cfn.GetAtt("Role", "Arn")),
		PackageType:   cfn.String("Image"),
		Architectures: []string{"arm64"},
		Timeout:       cfn.Int(30),
		VpcConfig: &VpcConfig{
			SubnetIds:        []string{"subnet-1", "subnet-2"},
			SecurityGroupIds: cfn.Split(",", cfn.ImportValue("SecurityGroups")),
		},
	}

	var decoded FunctionProps
	require.NoError(t, cfn.Decode(cfn.Render(props), &decoded))
	assert.True(t, cfn.Equal(props, &decoded))

	decoded.Architectures = []string{"x86_64"}
	assert.False(t, cfn.Equal(props, &decoded))
}
