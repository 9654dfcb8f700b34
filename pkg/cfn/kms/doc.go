// Package kms contains the bindings for AWS::KMS resources.
package kms
