// Package iam contains the bindings for AWS::IAM resources and a
// PolicyDocument helper for writing policy documents as Go values.
package iam
