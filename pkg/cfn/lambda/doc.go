// Package lambda contains the bindings for AWS::Lambda resources.
package lambda
