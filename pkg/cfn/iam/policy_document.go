package iam

// PolicyVersion is the current IAM policy language version.
const PolicyVersion = "2012-10-17"

// PolicyDocument is an IAM policy. It can be assigned to any property that
// takes a policy document (PolicyDocument, AssumeRolePolicyDocument,
// KeyPolicy, ...) and renders as plain JSON. Strings may carry tokens.
type PolicyDocument struct {
	Version   string      `json:"Version,omitempty"`
	Id        string      `json:"Id,omitempty"`
	Statement []Statement `json:"Statement"`
}

// Statement is a single IAM policy statement.
type Statement struct {
	Sid          string         `json:"Sid,omitempty"`
	Effect       string         `json:"Effect"`
	Principal    any            `json:"Principal,omitempty"`
	NotPrincipal any            `json:"NotPrincipal,omitempty"`
	Action       []string       `json:"Action,omitempty"`
	NotAction    []string       `json:"NotAction,omitempty"`
	Resource     []string       `json:"Resource,omitempty"`
	NotResource  []string       `json:"NotResource,omitempty"`
	Condition    map[string]any `json:"Condition,omitempty"`
}

// NewPolicyDocument returns a document with the current version and the
// given statements.
func NewPolicyDocument(statements ...Statement) *PolicyDocument {
	return &PolicyDocument{Version: PolicyVersion, Statement: statements}
}

// Allow returns an Allow statement for actions on resources.
func Allow(actions []string, resources ...string) Statement {
	return Statement{Effect: "Allow", Action: actions, Resource: resources}
}

// Deny returns a Deny statement for actions on resources.
func Deny(actions []string, resources ...string) Statement {
	return Statement{Effect: "Deny", Action: actions, Resource: resources}
}

// ServicePrincipal returns a principal for an AWS service, e.g.
// "lambda.amazonaws.com".
func ServicePrincipal(service string) map[string]any {
	return map[string]any{"Service": service}
}

// AWSPrincipal returns a principal for an account or IAM entity ARN.
func AWSPrincipal(arn string) map[string]any {
	return map[string]any{"AWS": arn}
}

// AssumeRolePolicy returns a trust policy allowing service to assume a role.
func AssumeRolePolicy(service string) *PolicyDocument {
	return NewPolicyDocument(Statement{
		Effect:    "Allow",
		Principal: ServicePrincipal(service),
		Action:    []string{"sts:AssumeRole"},
	})
}
