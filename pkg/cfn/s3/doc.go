// Package s3 contains the bindings for AWS::S3 resources.
package s3
