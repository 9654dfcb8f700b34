// Package sqs contains the bindings for AWS::SQS resources.
package sqs
