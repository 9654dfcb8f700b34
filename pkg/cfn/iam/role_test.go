package iam

import (
	"errors"
	"testing"

	"github.com/confluentinc/cfnkit/pkg/cfn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleWithPolicyDocuments(t *testing.T) {
	stack, err := cfn.NewStack("identity", nil)
	require.NoError(t, err)

	role, err := NewRole(stack, "Worker", &RoleProps{
		AssumeRolePolicyDocument: AssumeRolePolicy("lambda.amazonaws.com"),
		ManagedPolicyArns:        []string{"arn:aws:iam::aws:policy/service-role/AWSLambdaBasicExecutionRole"},
		Policies: []RolePolicy{{
			PolicyName:     cfn.String("read"),
			PolicyDocument: NewPolicyDocument(Allow([]string{"s3:GetObject"}, "arn:aws:s3:::data/*")),
		}},
	})
	require.NoError(t, err)

	tmpl, err := stack.Synth()
	require.NoError(t, err)

	props := tmpl.Resources["Worker"].Properties
	assert.Equal(t, map[string]any{
		"Version": "2012-10-17",
		"Statement": []any{map[string]any{
			"Effect":    "Allow",
			"Principal": map[string]any{"Service": "lambda.amazonaws.com"},
			"Action":    []any{"sts:AssumeRole"},
		}},
	}, props["AssumeRolePolicyDocument"])
	assert.Equal(t, []any{map[string]any{
		"PolicyName": "read",
		"PolicyDocument": map[string]any{
			"Version": "2012-10-17",
			"Statement": []any{map[string]any{
				"Effect":   "Allow",
				"Action":   []any{"s3:GetObject"},
				"Resource": []any{"arn:aws:s3:::data/*"},
			}},
		},
	}}, props["Policies"])

	assert.Equal(t, cfn.GetAtt("Worker", "Arn"), role.AttrArn())
}

func TestPolicyDocumentTokens(t *testing.T) {
	doc := NewPolicyDocument(Deny([]string{"sqs:*"}, cfn.GetAtt("Queue", "Arn")))

	assert.Equal(t, map[string]any{
		"Version": "2012-10-17",
		"Statement": []any{map[string]any{
			"Effect":   "Deny",
			"Action":   []any{"sqs:*"},
			"Resource": []any{map[string]any{"Fn::GetAtt": []any{"Queue", "Arn"}}},
		}},
	}, cfn.RenderValue(doc))
}

func TestIAMRequiredProperties(t *testing.T) {
	tests := []struct {
		name             string
		build            func(stack *cfn.Stack) error
		expectedProperty string
	}{
		{
			name: "role trust policy",
			build: func(stack *cfn.Stack) error {
				_, err := NewRole(stack, "R", &RoleProps{RoleName: cfn.String("r")})
				return err
			},
			expectedProperty: "AssumeRolePolicyDocument",
		},
		{
			name: "inline policy name",
			build: func(stack *cfn.Stack) error {
				_, err := NewRole(stack, "R", &RoleProps{
					AssumeRolePolicyDocument: AssumeRolePolicy("ec2.amazonaws.com"),
					Policies:                 []RolePolicy{{PolicyDocument: NewPolicyDocument()}},
				})
				return err
			},
			expectedProperty: "PolicyName",
		},
		{
			name: "policy document",
			build: func(stack *cfn.Stack) error {
				_, err := NewPolicy(stack, "P", &PolicyProps{PolicyName: cfn.String("p")})
				return err
			},
			expectedProperty: "PolicyDocument",
		},
		{
			name: "managed policy document",
			build: func(stack *cfn.Stack) error {
				_, err := NewManagedPolicy(stack, "M", nil)
				return err
			},
			expectedProperty: "PolicyDocument",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stack, err := cfn.NewStack("identity", nil)
			require.NoError(t, err)

			var required *cfn.RequiredPropertyError
			require.True(t, errors.As(tt.build(stack), &required))
			assert.Equal(t, tt.expectedProperty, required.Property)
		})
	}
}

func TestManagedPolicyEquality(t *testing.T) {
	a := &ManagedPolicyProps{PolicyDocument: NewPolicyDocument(Allow([]string{"logs:*"}, "*")), Roles: []string{"r"}}
	b := &ManagedPolicyProps{PolicyDocument: NewPolicyDocument(Allow([]string{"logs:*"}, "*")), Roles: []string{"r"}}
	assert.True(t, cfn.Equal(a, b))

	b.Roles = []string{"r", "s"}
	assert.False(t, cfn.Equal(a, b))
}
