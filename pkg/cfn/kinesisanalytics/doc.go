// Package kinesisanalytics contains the bindings for AWS::KinesisAnalytics
// resources.
package kinesisanalytics
