package awscc

import (
	"fmt"
	"strings"

	"github.com/confluentinc/cfnkit/internal/utils"
)

// ResourceType maps a CloudFormation type to its awscc resource type, e.g.
// "AWS::S3::Bucket" -> "awscc_s3_bucket". The awscc provider only covers
// AWS:: types.
func ResourceType(cfnType string) (string, error) {
	parts := strings.Split(cfnType, "::")
	if len(parts) != 3 || parts[0] != "AWS" || parts[1] == "" || parts[2] == "" {
		return "", fmt.Errorf("resource type %s has no awscc equivalent", cfnType)
	}
	return fmt.Sprintf("awscc_%s_%s", strings.ToLower(parts[1]), utils.FormatHclResourceName(parts[2])), nil
}
