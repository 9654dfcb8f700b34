// Package sns contains the bindings for AWS::SNS resources.
package sns
