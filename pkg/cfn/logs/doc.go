// Package logs contains the bindings for AWS::Logs resources.
package logs
