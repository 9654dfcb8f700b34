// Package all registers every resource binding shipped with cfnkit. Import it
// for its side effects when templates are decoded by type name:
//
//	import _ "github.com/confluentinc/cfnkit/pkg/cfn/all"
package all

import (
	_ "github.com/confluentinc/cfnkit/pkg/cfn/dynamodb"
	_ "github.com/confluentinc/cfnkit/pkg/cfn/iam"
	_ "github.com/confluentinc/cfnkit/pkg/cfn/kinesisanalytics"
	_ "github.com/confluentinc/cfnkit/pkg/cfn/kms"
	_ "github.com/confluentinc/cfnkit/pkg/cfn/lambda"
	_ "github.com/confluentinc/cfnkit/pkg/cfn/logs"
	_ "github.com/confluentinc/cfnkit/pkg/cfn/s3"
	_ "github.com/confluentinc/cfnkit/pkg/cfn/sns"
	_ "github.com/confluentinc/cfnkit/pkg/cfn/sqs"
)
