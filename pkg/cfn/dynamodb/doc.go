// Package dynamodb contains the bindings for AWS::DynamoDB resources.
package dynamodb
