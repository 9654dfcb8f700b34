package kinesisanalytics

import (
	"errors"
	"testing"

	"github.com/confluentinc/cfnkit/pkg/cfn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() Input {
	return Input{
		NamePrefix: cfn.String("SOURCE_SQL_STREAM"),
		InputSchema: &InputSchema{
			RecordColumns: []RecordColumn{
				{Name: cfn.String("ticker"), SqlType: cfn.String("VARCHAR(4)"), Mapping: cfn.String("$.ticker")},
				{Name: cfn.String("price"), SqlType: cfn.String("DOUBLE")},
			},
			RecordFormat: &RecordFormat{
				RecordFormatType: cfn.String("JSON"),
				MappingParameters: &MappingParameters{
					JSONMappingParameters: &JSONMappingParameters{RecordRowPath: cfn.String("$")},
				},
			},
		},
		KinesisStreamsInput: &KinesisStreamsInput{
			ResourceARN: cfn.String("arn:aws:kinesis:us-east-1:123456789012:stream/ticks"),
			RoleARN:     cfn.String("arn:aws:iam::123456789012:role/reader"),
		},
	}
}

func TestNewApplicationRequiredProperties(t *testing.T) {
	tests := []struct {
		name         string
		props        *ApplicationProps
		expectedPath string
		expectedType string
	}{
		{
			name:         "inputs",
			props:        &ApplicationProps{ApplicationName: cfn.String("app")},
			expectedPath: "Inputs",
			expectedType: ApplicationType,
		},
		{
			name: "input name prefix",
			props: &ApplicationProps{Inputs: []Input{func() Input {
				in := validInput()
				in.NamePrefix = nil
				return in
			}()}},
			expectedPath: "Inputs[0].NamePrefix",
			expectedType: "AWS::KinesisAnalytics::Application.Input",
		},
		{
			name: "record format type",
			props: &ApplicationProps{Inputs: []Input{func() Input {
				in := validInput()
				in.InputSchema.RecordFormat.RecordFormatType = nil
				return in
			}()}},
			expectedPath: "Inputs[0].InputSchema.RecordFormat.RecordFormatType",
			expectedType: "AWS::KinesisAnalytics::Application.RecordFormat",
		},
		{
			name: "record column sql type",
			props: &ApplicationProps{Inputs: []Input{func() Input {
				in := validInput()
				in.InputSchema.RecordColumns[1].SqlType = nil
				return in
			}()}},
			expectedPath: "Inputs[0].InputSchema.RecordColumns[1].SqlType",
			expectedType: "AWS::KinesisAnalytics::Application.RecordColumn",
		},
		{
			name: "kinesis stream role",
			props: &ApplicationProps{Inputs: []Input{func() Input {
				in := validInput()
				in.KinesisStreamsInput.RoleARN = nil
				return in
			}()}},
			expectedPath: "Inputs[0].KinesisStreamsInput.RoleARN",
			expectedType: "AWS::KinesisAnalytics::Application.KinesisStreamsInput",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stack, err := cfn.NewStack("analytics", nil)
			require.NoError(t, err)

			app, err := NewApplication(stack, "Analytics", tt.props)
			assert.Nil(t, app)

			var required *cfn.RequiredPropertyError
			require.True(t, errors.As(err, &required))
			assert.Equal(t, tt.expectedPath, required.Path)
			assert.Equal(t, tt.expectedType, required.Type)
		})
	}
}

func TestApplicationRender(t *testing.T) {
	stack, err := cfn.NewStack("analytics", nil)
	require.NoError(t, err)

	app, err := NewApplication(stack, "Analytics", &ApplicationProps{
		ApplicationName: cfn.String("ticks"),
		Inputs:          []Input{validInput()},
	})
	require.NoError(t, err)

	expected := map[string]any{
		"ApplicationName": "ticks",
		"Inputs": []any{map[string]any{
			"NamePrefix": "SOURCE_SQL_STREAM",
			"InputSchema": map[string]any{
				"RecordColumns": []any{
					map[string]any{"Name": "ticker", "SqlType": "VARCHAR(4)", "Mapping": "$.ticker"},
					map[string]any{"Name": "price", "SqlType": "DOUBLE"},
				},
				"RecordFormat": map[string]any{
					"RecordFormatType": "JSON",
					"MappingParameters": map[string]any{
						"JSONMappingParameters": map[string]any{"RecordRowPath": "$"},
					},
				},
			},
			"KinesisStreamsInput": map[string]any{
				"ResourceARN": "arn:aws:kinesis:us-east-1:123456789012:stream/ticks",
				"RoleARN":     "arn:aws:iam::123456789012:role/reader",
			},
		}},
	}
	assert.Equal(t, expected, cfn.Render(app.Props))

	tmpl, err := stack.Synth()
	require.NoError(t, err)
	assert.Equal(t, ApplicationType, tmpl.Resources["Analytics"].Type)
	assert.Equal(t, expected, tmpl.Resources["Analytics"].Properties)
}

func TestRecordFormat(t *testing.T) {
	csv := &RecordFormat{
		RecordFormatType: cfn.String("CSV"),
		MappingParameters: &MappingParameters{
			CSVMappingParameters: &CSVMappingParameters{
				RecordColumnDelimiter: cfn.String(","),
				RecordRowDelimiter:    cfn.String("\n"),
			},
		},
	}

	t.Run("optional mapping parameters are omitted", func(t *testing.T) {
		assert.Equal(t, map[string]any{"RecordFormatType": "JSON"}, cfn.Render(&RecordFormat{RecordFormatType: cfn.String("JSON")}))
	})

	t.Run("round trip", func(t *testing.T) {
		var decoded RecordFormat
		require.NoError(t, cfn.Decode(cfn.Render(csv), &decoded))
		assert.True(t, cfn.Equal(csv, &decoded))
		assert.Equal(t, "CSV", cfn.ToString(decoded.RecordFormatType))
		assert.Equal(t, ",", cfn.ToString(decoded.MappingParameters.CSVMappingParameters.RecordColumnDelimiter))
	})

	t.Run("equality", func(t *testing.T) {
		other := &RecordFormat{RecordFormatType: cfn.String("CSV")}
		assert.False(t, cfn.Equal(csv, other))
		other.MappingParameters = &MappingParameters{CSVMappingParameters: &CSVMappingParameters{
			RecordColumnDelimiter: cfn.String(","),
			RecordRowDelimiter:    cfn.String("\n"),
		}}
		assert.True(t, cfn.Equal(csv, other))
	})

	t.Run("repr", func(t *testing.T) {
		assert.Equal(t, `AWS::KinesisAnalytics::Application.RecordFormat{"RecordFormatType":"JSON"}`,
			(&RecordFormat{RecordFormatType: cfn.String("JSON")}).String())
	})
}

func TestApplicationOutput(t *testing.T) {
	stack, err := cfn.NewStack("analytics", nil)
	require.NoError(t, err)

	app, err := NewApplication(stack, "Analytics", &ApplicationProps{Inputs: []Input{validInput()}})
	require.NoError(t, err)

	_, err = NewApplicationOutput(stack, "Sink", &ApplicationOutputProps{
		ApplicationName: cfn.String(app.Ref()),
		Output: &Output{
			Name:              cfn.String("DESTINATION_SQL_STREAM"),
			DestinationSchema: &DestinationSchema{RecordFormatType: cfn.String("JSON")},
		},
	})
	require.NoError(t, err)

	_, err = NewApplicationOutput(stack, "Broken", &ApplicationOutputProps{
		ApplicationName: cfn.String(app.Ref()),
		Output:          &Output{Name: cfn.String("x")},
	})
	var required *cfn.RequiredPropertyError
	require.True(t, errors.As(err, &required))
	assert.Equal(t, "Output.DestinationSchema", required.Path)

	tmpl, err := stack.Synth()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"Ref": "Analytics"}, tmpl.Resources["Sink"].Properties["ApplicationName"])

	g, err := tmpl.Graph()
	require.NoError(t, err)
	order, err := g.DeployOrder()
	require.NoError(t, err)
	assert.Equal(t, []string{"Analytics", "Sink"}, order)
}

func TestRegistered(t *testing.T) {
	for _, typeName := range []string{ApplicationType, ApplicationOutputType} {
		_, ok := cfn.Lookup(typeName)
		assert.True(t, ok, typeName)
	}
}
