package cfn

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStack(t *testing.T) *Stack {
	t.Helper()
	s, err := NewStack("test-stack", &StackProps{Description: "test"})
	require.NoError(t, err)
	return s
}

func TestNewStack(t *testing.T) {
	tests := []struct {
		name      string
		stackName string
		wantErr   bool
	}{
		{name: "simple", stackName: "orders"},
		{name: "with hyphens", stackName: "orders-prod-1"},
		{name: "leading digit", stackName: "1orders", wantErr: true},
		{name: "underscore", stackName: "orders_prod", wantErr: true},
		{name: "empty", stackName: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewStack(tt.stackName, nil)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.stackName, s.Name())
		})
	}
}

func TestStackAdd(t *testing.T) {
	t.Run("missing required property fails construction", func(t *testing.T) {
		s := newTestStack(t)
		w, err := newWidget(s, "Widget", &widgetProps{Size: Int(1)})
		assert.Nil(t, w)

		var required *RequiredPropertyError
		require.True(t, errors.As(err, &required))
		assert.Equal(t, "Name", required.Property)
		assert.Contains(t, err.Error(), "Name")
		assert.Empty(t, s.Resources())
	})

	t.Run("invalid logical id", func(t *testing.T) {
		s := newTestStack(t)
		_, err := newWidget(s, "my-widget", &widgetProps{Name: String("w")})
		assert.ErrorIs(t, err, ErrInvalidID)
	})

	t.Run("duplicate logical id", func(t *testing.T) {
		s := newTestStack(t)
		_, err := newWidget(s, "Widget", &widgetProps{Name: String("a")})
		require.NoError(t, err)
		_, err = newWidget(s, "Widget", &widgetProps{Name: String("b")})
		assert.ErrorIs(t, err, ErrDuplicateID)
	})

	t.Run("parameters share the resource namespace", func(t *testing.T) {
		s := newTestStack(t)
		_, err := s.AddParameter("Env", nil)
		require.NoError(t, err)
		_, err = newWidget(s, "Env", &widgetProps{Name: String("a")})
		assert.ErrorIs(t, err, ErrDuplicateID)
	})

	t.Run("resource belongs to one stack", func(t *testing.T) {
		s := newTestStack(t)
		w, err := newWidget(s, "Widget", &widgetProps{Name: String("a")})
		require.NoError(t, err)
		other := newTestStack(t)
		assert.Error(t, other.Add("Widget", w))
	})

	t.Run("accessors", func(t *testing.T) {
		s := newTestStack(t)
		w, err := newWidget(s, "Widget", &widgetProps{Name: String("a")})
		require.NoError(t, err)

		assert.Equal(t, "Widget", w.LogicalID())
		assert.Same(t, s, w.Stack())
		assert.Equal(t, Ref("Widget"), w.Ref())
		assert.Equal(t, GetAtt("Widget", "Arn"), w.GetAtt("Arn"))

		found, ok := s.Resource("Widget")
		require.True(t, ok)
		assert.Same(t, w, found)
	})
}

func TestStackSynth(t *testing.T) {
	s := newTestStack(t)

	env, err := s.AddParameter("Env", &Parameter{AllowedValues: []any{"dev", "prod"}})
	require.NoError(t, err)
	require.NoError(t, s.AddCondition("IsProd", Equals(env.Ref(), "prod")))

	first, err := newWidget(s, "First", &widgetProps{Name: String("first-" + env.Ref())})
	require.NoError(t, err)
	first.ApplyRemovalPolicy(DeletionPolicyRetain)

	second, err := newWidget(s, "Second", &widgetProps{
		Name:   String(first.Ref()),
		Labels: map[string]string{"arn": first.GetAtt("Arn")},
	})
	require.NoError(t, err)
	second.Options().Condition = "IsProd"
	second.AddMetadata("owner", "data")

	third, err := newWidget(s, "Third", &widgetProps{Name: String("third")})
	require.NoError(t, err)
	third.AddDependency(second, second)

	require.NoError(t, s.AddOutput("FirstArn", &Output{
		Value:  first.GetAtt("Arn"),
		Export: &Export{Name: Sub("${AWS::StackName}-FirstArn")},
	}))

	tmpl, err := s.Synth()
	require.NoError(t, err)

	assert.Equal(t, TemplateFormatVersion, tmpl.AWSTemplateFormatVersion)
	assert.Equal(t, "test", tmpl.Description)
	assert.Equal(t, "String", tmpl.Parameters["Env"].Type)
	assert.Equal(t, map[string]any{"Fn::Equals": []any{map[string]any{"Ref": "Env"}, "prod"}}, tmpl.Conditions["IsProd"])

	require.Len(t, tmpl.Resources, 3)
	assert.Equal(t, &TemplateResource{
		Type: widgetType,
		Properties: map[string]any{
			"Name": map[string]any{"Fn::Join": []any{"", []any{"first-", map[string]any{"Ref": "Env"}}}},
		},
		DeletionPolicy:      "Retain",
		UpdateReplacePolicy: "Retain",
	}, tmpl.Resources["First"])
	assert.Equal(t, &TemplateResource{
		Type: widgetType,
		Properties: map[string]any{
			"Name":   map[string]any{"Ref": "First"},
			"Labels": map[string]any{"arn": map[string]any{"Fn::GetAtt": []any{"First", "Arn"}}},
		},
		Condition: "IsProd",
		Metadata:  map[string]any{"owner": "data"},
	}, tmpl.Resources["Second"])
	assert.Equal(t, StringList{"Second"}, tmpl.Resources["Third"].DependsOn)

	assert.Equal(t, map[string]any{"Fn::GetAtt": []any{"First", "Arn"}}, tmpl.Outputs["FirstArn"].Value)
	assert.Equal(t, map[string]any{"Fn::Sub": "${AWS::StackName}-FirstArn"}, tmpl.Outputs["FirstArn"].Export.Name)
}

func TestStackSynthErrors(t *testing.T) {
	tests := []struct {
		name  string
		build func(t *testing.T, s *Stack)
		check func(t *testing.T, err error)
	}{
		{
			name: "no resources",
			build: func(t *testing.T, s *Stack) {
				_, err := s.AddParameter("Env", nil)
				require.NoError(t, err)
			},
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "at least one resource")
			},
		},
		{
			name: "props changed after construction",
			build: func(t *testing.T, s *Stack) {
				w, err := newWidget(s, "Widget", &widgetProps{Name: String("w")})
				require.NoError(t, err)
				w.Props.Name = nil
			},
			check: func(t *testing.T, err error) {
				var required *RequiredPropertyError
				require.True(t, errors.As(err, &required))
				assert.Equal(t, "Name", required.Path)
			},
		},
		{
			name: "ref to undefined resource",
			build: func(t *testing.T, s *Stack) {
				_, err := newWidget(s, "Widget", &widgetProps{Name: String(Ref("Missing"))})
				require.NoError(t, err)
			},
			check: func(t *testing.T, err error) {
				var ref *ReferenceError
				require.True(t, errors.As(err, &ref))
				assert.Equal(t, "Missing", ref.Target)
				assert.Equal(t, "Widget", ref.From)
			},
		},
		{
			name: "get att on a parameter",
			build: func(t *testing.T, s *Stack) {
				_, err := s.AddParameter("Env", nil)
				require.NoError(t, err)
				_, err = newWidget(s, "Widget", &widgetProps{Name: String(GetAtt("Env", "Value"))})
				require.NoError(t, err)
			},
			check: func(t *testing.T, err error) {
				var ref *ReferenceError
				require.True(t, errors.As(err, &ref))
				assert.Equal(t, "Fn::GetAtt", ref.Kind)
			},
		},
		{
			name: "undefined condition",
			build: func(t *testing.T, s *Stack) {
				w, err := newWidget(s, "Widget", &widgetProps{Name: String("w")})
				require.NoError(t, err)
				w.Options().Condition = "Nope"
			},
			check: func(t *testing.T, err error) {
				var ref *ReferenceError
				require.True(t, errors.As(err, &ref))
				assert.Equal(t, "Condition", ref.Kind)
			},
		},
		{
			name: "sub variable",
			build: func(t *testing.T, s *Stack) {
				_, err := newWidget(s, "Widget", &widgetProps{Name: String(Sub("${Missing.Arn}-${AWS::Region}-${!Literal}"))})
				require.NoError(t, err)
			},
			check: func(t *testing.T, err error) {
				var errs ValidationErrors
				require.True(t, errors.As(err, &errs))
				require.Len(t, errs, 1)
				var ref *ReferenceError
				require.True(t, errors.As(errs[0], &ref))
				assert.Equal(t, "Missing", ref.Target)
			},
		},
		{
			name: "dependency cycle",
			build: func(t *testing.T, s *Stack) {
				_, err := newWidget(s, "First", &widgetProps{Name: String(Ref("Second"))})
				require.NoError(t, err)
				_, err = newWidget(s, "Second", &widgetProps{Name: String(GetAtt("First", "Arn"))})
				require.NoError(t, err)
			},
			check: func(t *testing.T, err error) {
				var cycle *CycleError
				assert.True(t, errors.As(err, &cycle))
			},
		},
		{
			name: "self reference",
			build: func(t *testing.T, s *Stack) {
				_, err := newWidget(s, "Widget", &widgetProps{Name: String(Ref("Widget"))})
				require.NoError(t, err)
			},
			check: func(t *testing.T, err error) {
				var cycle *CycleError
				assert.True(t, errors.As(err, &cycle))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStack(t)
			tt.build(t, s)

			tmpl, err := s.Synth()
			assert.Nil(t, tmpl)
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestStackInclude(t *testing.T) {
	tmpl, err := ParseTemplate([]byte(`
AWSTemplateFormatVersion: "2010-09-09"
Description: imported
Parameters:
  Env:
    Type: String
Conditions:
  IsProd: !Equals [!Ref Env, prod]
Resources:
  Typed:
    Type: Test::Service::Widget
    Properties:
      Name: !Sub "${Env}-typed"
      Size: 3
  Loose:
    Type: Test::Service::Widget
    DependsOn: Typed
    Properties:
      Name: loose
      Unmodelled: true
  Topic:
    Type: AWS::Other::Thing
    Condition: IsProd
    DeletionPolicy: Retain
    Properties:
      DisplayName: !GetAtt Typed.Arn
Outputs:
  TopicRef:
    Value: !Ref Topic
`))
	require.NoError(t, err)

	s := newTestStack(t)
	result, err := s.Include(tmpl)
	require.NoError(t, err)

	typed, ok := result.Resource("Typed")
	require.True(t, ok)
	w, ok := typed.(*widget)
	require.True(t, ok, "registered types decode into their binding")
	assert.Equal(t, 3, ToInt(w.Props.Size))

	loose, ok := result.Resource("Loose")
	require.True(t, ok)
	assert.IsType(t, &Untyped{}, loose, "unmodelled properties fall back to untyped")

	topic, ok := result.Resource("Topic")
	require.True(t, ok)
	assert.Equal(t, "AWS::Other::Thing", topic.CFNType())
	assert.Equal(t, "IsProd", topic.Options().Condition)
	assert.Contains(t, result.Parameters, "Env")

	out, err := s.Synth()
	require.NoError(t, err)
	assert.Equal(t, "test", out.Description)
	assert.Equal(t, tmpl.Resources["Topic"], out.Resources["Topic"])
	assert.Equal(t, tmpl.Resources["Typed"].Properties["Name"], out.Resources["Typed"].Properties["Name"])
	assert.Equal(t, 3, out.Resources["Typed"].Properties["Size"])
	assert.Equal(t, StringList{"Typed"}, out.Resources["Loose"].DependsOn)
	assert.Equal(t, map[string]any{"Ref": "Topic"}, out.Outputs["TopicRef"].Value)
}

func TestStackIncludeEmptyEntries(t *testing.T) {
	tests := []struct {
		name     string
		template *Template
		contains string
	}{
		{
			name: "parameter",
			template: &Template{
				Parameters: map[string]*Parameter{"P": nil},
				Resources:  map[string]*TemplateResource{"Q": {Type: "AWS::Other::Thing"}},
			},
			contains: "Parameters.P",
		},
		{
			name: "output",
			template: &Template{
				Resources: map[string]*TemplateResource{"Q": {Type: "AWS::Other::Thing"}},
				Outputs:   map[string]*Output{"X": nil},
			},
			contains: "Outputs.X",
		},
		{
			name:     "resource",
			template: &Template{Resources: map[string]*TemplateResource{"Q": nil}},
			contains: "Q: resource is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestStack(t).Include(tt.template)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestBuildUnregisteredType(t *testing.T) {
	s := newTestStack(t)
	r, err := Build(s, "Thing", "Custom::Thing", map[string]any{"ServiceToken": "arn"})
	require.NoError(t, err)
	assert.IsType(t, &Untyped{}, r)

	_, err = Build(s, "Bad", "not a type!", nil)
	assert.Error(t, err)
}

func TestRegistry(t *testing.T) {
	_, ok := Lookup(widgetType)
	assert.True(t, ok)
	assert.Contains(t, Types(), widgetType)
	assert.Panics(t, func() { Register(widgetType, FactoryFor(newWidget)) })
}
