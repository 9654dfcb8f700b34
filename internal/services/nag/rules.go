package nag

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/confluentinc/cfnkit/internal/types"
	"github.com/confluentinc/cfnkit/pkg/cfn"
	"github.com/confluentinc/cfnkit/pkg/cfn/dynamodb"
	"github.com/confluentinc/cfnkit/pkg/cfn/iam"
	"github.com/confluentinc/cfnkit/pkg/cfn/kms"
	"github.com/confluentinc/cfnkit/pkg/cfn/lambda"
	"github.com/confluentinc/cfnkit/pkg/cfn/logs"
	"github.com/confluentinc/cfnkit/pkg/cfn/s3"
	"github.com/confluentinc/cfnkit/pkg/cfn/sns"
	"github.com/confluentinc/cfnkit/pkg/cfn/sqs"
)

const (
	AwsSolutionsPack  = "AwsSolutions"
	HIPAASecurityPack = "HIPAA.Security"
	NIST80053R4Pack   = "NIST.800.53.R4"
	NIST80053R5Pack   = "NIST.800.53.R5"
	PCIDSS321Pack     = "PCI.DSS.321"
)

// CheckFunc evaluates one resource. It returns NagCompliant, NagNonCompliant
// or NagNotApplicable.
type CheckFunc func(stack *cfn.Stack, r cfn.Resource) types.NagCompliance

type Rule struct {
	ID    string
	Level types.NagRuleLevel
	Info  string
	Check CheckFunc
}

type Pack struct {
	Name  string
	Rules []Rule
}

var packs = map[string]func() *Pack{
	AwsSolutionsPack:  AwsSolutions,
	HIPAASecurityPack: HIPAASecurity,
	NIST80053R4Pack:   NIST80053R4,
	NIST80053R5Pack:   NIST80053R5,
	PCIDSS321Pack:     PCIDSS321,
}

// packAliases maps the cdk-nag class names to pack names.
var packAliases = map[string]string{
	"AwsSolutionsChecks":  AwsSolutionsPack,
	"HIPAASecurityChecks": HIPAASecurityPack,
	"NIST80053R4Checks":   NIST80053R4Pack,
	"NIST80053R5Checks":   NIST80053R5Pack,
	"PCIDSS321Checks":     PCIDSS321Pack,
}

// PackNames lists the available rule packs.
func PackNames() []string {
	names := make([]string, 0, len(packs))
	for name := range packs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PackByName resolves a pack by name or by its cdk-nag class name.
func PackByName(name string) (*Pack, error) {
	if alias, ok := packAliases[name]; ok {
		name = alias
	}
	newPack, ok := packs[name]
	if !ok {
		return nil, fmt.Errorf("unknown nag pack %q, expected one of: %s", name, strings.Join(PackNames(), ", "))
	}
	return newPack(), nil
}

func newRule(pack, id string, level types.NagRuleLevel, info string, check CheckFunc) Rule {
	return Rule{ID: pack + "-" + id, Level: level, Info: info, Check: check}
}

// AwsSolutions is a subset of the AwsSolutions checks for the resource
// types cfnkit ships bindings for.
func AwsSolutions() *Pack {
	rule := func(id string, level types.NagRuleLevel, info string, check CheckFunc) Rule {
		return newRule(AwsSolutionsPack, id, level, info, check)
	}

	return &Pack{
		Name: AwsSolutionsPack,
		Rules: []Rule{
			rule("S1", types.NagLevelError, "The S3 Bucket has server access logs disabled.", checkBucketLogging),
			rule("S2", types.NagLevelError, "The S3 Bucket does not have public access restricted and blocked.", checkBucketPublicAccess),
			rule("S10", types.NagLevelError, "The S3 Bucket or bucket policy does not require requests to use SSL.", checkBucketSSL),
			rule("SQS2", types.NagLevelError, "The SQS Queue does not have server-side encryption enabled.", checkQueueEncryption),
			rule("SQS3", types.NagLevelError, "The SQS queue is not used as a dead-letter queue (DLQ) and does not have a DLQ enabled.", checkQueueDLQ),
			rule("SNS2", types.NagLevelError, "The SNS Topic does not have server-side encryption enabled.", checkTopicEncryption),
			rule("IAM4", types.NagLevelError, "The IAM user, role, or group uses AWS managed policies.", checkManagedPolicies),
			rule("IAM5", types.NagLevelError, "The IAM entity contains wildcard permissions and does not have a nag rule suppression with evidence for those permissions.", checkWildcardPermissions),
			rule("L1", types.NagLevelError, "The non-container Lambda function is not configured to use the latest runtime version.", checkLambdaRuntime),
			rule("KMS5", types.NagLevelError, "The KMS Symmetric key does not have automatic key rotation enabled.", checkKeyRotation),
			rule("DDB3", types.NagLevelWarning, "The DynamoDB table does not have Point-in-time Recovery enabled.", checkTablePITR),
		},
	}
}

// compliancePack builds the packs that share the named rules of the
// compliance frameworks. Every rule of these packs is error level.
func compliancePack(name string, ids ...string) *Pack {
	pack := &Pack{Name: name}
	for _, id := range ids {
		r := complianceRules[id]
		pack.Rules = append(pack.Rules, newRule(name, id, types.NagLevelError, r.info, r.check))
	}
	return pack
}

var complianceRules = map[string]struct {
	info  string
	check CheckFunc
}{
	"CloudWatchLogGroupEncrypted":          {"The CloudWatch Log Group is not encrypted with an AWS KMS key.", checkLogGroupEncryption},
	"CloudWatchLogGroupRetentionPeriod":    {"The CloudWatch Log Group does not have an explicit retention period configured.", checkLogGroupRetention},
	"DynamoDBPITREnabled":                  {"The DynamoDB table does not have Point-in-time Recovery enabled.", checkTablePITR},
	"IAMNoInlinePolicy":                    {"The IAM Group, User, or Role contains an inline policy.", checkInlinePolicy},
	"IAMPolicyNoStatementsWithAdminAccess": {"The IAM policy grants admin access, meaning the policy allows a principal to perform all actions on all resources.", checkAdminAccess},
	"KMSBackingKeyRotationEnabled":         {"The KMS Symmetric key does not have automatic key rotation enabled.", checkKeyRotation},
	"LambdaInsideVPC":                      {"The Lambda function is not VPC enabled.", checkLambdaVPC},
	"S3BucketLevelPublicAccessProhibited":  {"The S3 bucket does not prohibit public access through bucket level settings.", checkBucketPublicAccess},
	"S3BucketLoggingEnabled":               {"The S3 Bucket does not have server access logs enabled.", checkBucketLogging},
	"S3BucketServerSideEncryptionEnabled":  {"The S3 Bucket does not have default server-side encryption enabled.", checkBucketEncryption},
	"S3BucketSSLRequestsOnly":              {"The S3 Bucket or bucket policy does not require requests to use SSL.", checkBucketSSL},
	"SNSEncryptedKMS":                      {"The SNS topic does not have KMS encryption enabled.", checkTopicEncryption},
}

func HIPAASecurity() *Pack {
	return compliancePack(HIPAASecurityPack,
		"CloudWatchLogGroupEncrypted",
		"CloudWatchLogGroupRetentionPeriod",
		"DynamoDBPITREnabled",
		"IAMNoInlinePolicy",
		"IAMPolicyNoStatementsWithAdminAccess",
		"LambdaInsideVPC",
		"S3BucketLevelPublicAccessProhibited",
		"S3BucketLoggingEnabled",
		"S3BucketServerSideEncryptionEnabled",
		"S3BucketSSLRequestsOnly",
	)
}

func NIST80053R4() *Pack {
	return compliancePack(NIST80053R4Pack,
		"CloudWatchLogGroupRetentionPeriod",
		"DynamoDBPITREnabled",
		"IAMNoInlinePolicy",
		"IAMPolicyNoStatementsWithAdminAccess",
		"LambdaInsideVPC",
		"S3BucketLevelPublicAccessProhibited",
		"S3BucketLoggingEnabled",
		"S3BucketServerSideEncryptionEnabled",
		"S3BucketSSLRequestsOnly",
	)
}

func NIST80053R5() *Pack {
	return compliancePack(NIST80053R5Pack,
		"CloudWatchLogGroupEncrypted",
		"CloudWatchLogGroupRetentionPeriod",
		"DynamoDBPITREnabled",
		"IAMNoInlinePolicy",
		"IAMPolicyNoStatementsWithAdminAccess",
		"KMSBackingKeyRotationEnabled",
		"LambdaInsideVPC",
		"S3BucketLevelPublicAccessProhibited",
		"S3BucketLoggingEnabled",
		"S3BucketServerSideEncryptionEnabled",
		"S3BucketSSLRequestsOnly",
		"SNSEncryptedKMS",
	)
}

func PCIDSS321() *Pack {
	return compliancePack(PCIDSS321Pack,
		"CloudWatchLogGroupEncrypted",
		"CloudWatchLogGroupRetentionPeriod",
		"IAMNoInlinePolicy",
		"IAMPolicyNoStatementsWithAdminAccess",
		"KMSBackingKeyRotationEnabled",
		"LambdaInsideVPC",
		"S3BucketLevelPublicAccessProhibited",
		"S3BucketLoggingEnabled",
		"S3BucketServerSideEncryptionEnabled",
		"S3BucketSSLRequestsOnly",
	)
}

func compliantIf(ok bool) types.NagCompliance {
	if ok {
		return types.NagCompliant
	}
	return types.NagNonCompliant
}

func isTrue(b *bool) bool {
	return b != nil && *b
}

func checkBucketLogging(_ *cfn.Stack, r cfn.Resource) types.NagCompliance {
	bucket, ok := r.(*s3.Bucket)
	if !ok {
		return types.NagNotApplicable
	}
	return compliantIf(bucket.Props.LoggingConfiguration != nil)
}

func checkBucketPublicAccess(_ *cfn.Stack, r cfn.Resource) types.NagCompliance {
	bucket, ok := r.(*s3.Bucket)
	if !ok {
		return types.NagNotApplicable
	}
	block := bucket.Props.PublicAccessBlockConfiguration
	return compliantIf(block != nil &&
		isTrue(block.BlockPublicAcls) &&
		isTrue(block.BlockPublicPolicy) &&
		isTrue(block.IgnorePublicAcls) &&
		isTrue(block.RestrictPublicBuckets))
}

// checkBucketSSL looks for a bucket policy on the bucket that denies requests
// made without aws:SecureTransport.
func checkBucketSSL(stack *cfn.Stack, r cfn.Resource) types.NagCompliance {
	bucket, ok := r.(*s3.Bucket)
	if !ok {
		return types.NagNotApplicable
	}

	for _, other := range stack.Resources() {
		policy, ok := other.(*s3.BucketPolicy)
		if !ok || policy.Props.Bucket == nil || !refersTo(*policy.Props.Bucket, bucket) {
			continue
		}
		for _, st := range statements(policy.Props.PolicyDocument) {
			if st.effect == "Deny" && deniesInsecureTransport(st.condition) {
				return types.NagCompliant
			}
		}
	}
	return types.NagNonCompliant
}

func refersTo(value string, r cfn.Resource) bool {
	resolved := cfn.Resolve(value)
	if reflect.DeepEqual(resolved, cfn.Resolve(cfn.Ref(r.LogicalID()))) {
		return true
	}
	if bucket, ok := r.(*s3.Bucket); ok && bucket.Props.BucketName != nil {
		return value == *bucket.Props.BucketName
	}
	return false
}

func deniesInsecureTransport(condition any) bool {
	conditions, ok := condition.(map[string]any)
	if !ok {
		return false
	}
	boolCondition, ok := conditions["Bool"].(map[string]any)
	if !ok {
		return false
	}
	return fmt.Sprint(boolCondition["aws:SecureTransport"]) == "false"
}

func checkQueueEncryption(_ *cfn.Stack, r cfn.Resource) types.NagCompliance {
	queue, ok := r.(*sqs.Queue)
	if !ok {
		return types.NagNotApplicable
	}
	return compliantIf(queue.Props.KmsMasterKeyId != nil || isTrue(queue.Props.SqsManagedSseEnabled))
}

// checkQueueDLQ passes queues with a redrive policy and queues that another
// queue or function in the stack uses as its dead-letter target.
func checkQueueDLQ(stack *cfn.Stack, r cfn.Resource) types.NagCompliance {
	queue, ok := r.(*sqs.Queue)
	if !ok {
		return types.NagNotApplicable
	}
	if queue.Props.RedrivePolicy != nil {
		return types.NagCompliant
	}

	for _, other := range stack.Resources() {
		var target any
		switch o := other.(type) {
		case *sqs.Queue:
			if policy, ok := cfn.RenderValue(o.Props.RedrivePolicy).(map[string]any); ok {
				target = policy["deadLetterTargetArn"]
			}
		case *lambda.Function:
			if o.Props.DeadLetterConfig != nil && o.Props.DeadLetterConfig.TargetArn != nil {
				target = cfn.Resolve(*o.Props.DeadLetterConfig.TargetArn)
			}
		}
		if target != nil && mentions(target, queue.LogicalID()) {
			return types.NagCompliant
		}
	}
	return types.NagNonCompliant
}

// mentions reports whether a rendered value references id through Ref or
// Fn::GetAtt.
func mentions(v any, id string) bool {
	switch val := v.(type) {
	case map[string]any:
		if ref, ok := val["Ref"]; ok && ref == id {
			return true
		}
		if att, ok := val["Fn::GetAtt"].([]any); ok && len(att) > 0 && att[0] == id {
			return true
		}
		for _, e := range val {
			if mentions(e, id) {
				return true
			}
		}
	case []any:
		for _, e := range val {
			if mentions(e, id) {
				return true
			}
		}
	}
	return false
}

func checkTopicEncryption(_ *cfn.Stack, r cfn.Resource) types.NagCompliance {
	topic, ok := r.(*sns.Topic)
	if !ok {
		return types.NagNotApplicable
	}
	return compliantIf(topic.Props.KmsMasterKeyId != nil)
}

func checkManagedPolicies(_ *cfn.Stack, r cfn.Resource) types.NagCompliance {
	role, ok := r.(*iam.Role)
	if !ok {
		return types.NagNotApplicable
	}
	for _, arn := range role.Props.ManagedPolicyArns {
		if anyString(cfn.Resolve(arn), func(s string) bool { return strings.Contains(s, ":iam::aws:policy/") }) {
			return types.NagNonCompliant
		}
	}
	return types.NagCompliant
}

// policyDocuments returns the policy documents attached to an IAM resource.
func policyDocuments(r cfn.Resource) ([]any, bool) {
	var documents []any
	switch res := r.(type) {
	case *iam.Role:
		for _, p := range res.Props.Policies {
			documents = append(documents, p.PolicyDocument)
		}
	case *iam.Policy:
		documents = append(documents, res.Props.PolicyDocument)
	case *iam.ManagedPolicy:
		documents = append(documents, res.Props.PolicyDocument)
	default:
		return nil, false
	}
	return documents, true
}

func checkWildcardPermissions(_ *cfn.Stack, r cfn.Resource) types.NagCompliance {
	documents, ok := policyDocuments(r)
	if !ok {
		return types.NagNotApplicable
	}

	wildcard := func(s string) bool { return strings.Contains(s, "*") }
	for _, doc := range documents {
		for _, st := range statements(doc) {
			if st.effect != "Allow" {
				continue
			}
			if anyString(st.action, wildcard) || anyString(st.resource, wildcard) {
				return types.NagNonCompliant
			}
		}
	}
	return types.NagCompliant
}

// checkAdminAccess fails statements that allow every action on every
// resource.
func checkAdminAccess(_ *cfn.Stack, r cfn.Resource) types.NagCompliance {
	documents, ok := policyDocuments(r)
	if !ok {
		return types.NagNotApplicable
	}

	star := func(s string) bool { return s == "*" }
	for _, doc := range documents {
		for _, st := range statements(doc) {
			if st.effect == "Allow" && anyString(st.action, star) && anyString(st.resource, star) {
				return types.NagNonCompliant
			}
		}
	}
	return types.NagCompliant
}

// checkInlinePolicy fails roles with embedded policies and every
// AWS::IAM::Policy, which is inline by definition.
func checkInlinePolicy(_ *cfn.Stack, r cfn.Resource) types.NagCompliance {
	switch res := r.(type) {
	case *iam.Role:
		return compliantIf(len(res.Props.Policies) == 0)
	case *iam.Policy:
		return types.NagNonCompliant
	}
	return types.NagNotApplicable
}

// latestRuntimes holds the newest Lambda runtime of each family.
var latestRuntimes = map[string]string{
	"nodejs":   "nodejs22.x",
	"python":   "python3.13",
	"java":     "java21",
	"dotnet":   "dotnet8",
	"ruby":     "ruby3.3",
	"go":       "provided.al2023",
	"provided": "provided.al2023",
}

func checkLambdaRuntime(_ *cfn.Stack, r cfn.Resource) types.NagCompliance {
	fn, ok := r.(*lambda.Function)
	if !ok || fn.Props.Runtime == nil {
		return types.NagNotApplicable
	}
	runtime := *fn.Props.Runtime
	if cfn.IsToken(runtime) {
		return types.NagNotApplicable
	}

	family := strings.TrimRight(strings.SplitN(runtime, ".", 2)[0], "0123456789x")
	latest, ok := latestRuntimes[family]
	if !ok {
		return types.NagNotApplicable
	}
	return compliantIf(runtime == latest)
}

func checkKeyRotation(_ *cfn.Stack, r cfn.Resource) types.NagCompliance {
	key, ok := r.(*kms.Key)
	if !ok {
		return types.NagNotApplicable
	}
	if key.Props.KeySpec != nil && *key.Props.KeySpec != "SYMMETRIC_DEFAULT" {
		return types.NagNotApplicable
	}
	return compliantIf(isTrue(key.Props.EnableKeyRotation))
}

func checkTablePITR(_ *cfn.Stack, r cfn.Resource) types.NagCompliance {
	table, ok := r.(*dynamodb.Table)
	if !ok {
		return types.NagNotApplicable
	}
	spec := table.Props.PointInTimeRecoverySpecification
	return compliantIf(spec != nil && isTrue(spec.PointInTimeRecoveryEnabled))
}

func checkBucketEncryption(_ *cfn.Stack, r cfn.Resource) types.NagCompliance {
	bucket, ok := r.(*s3.Bucket)
	if !ok {
		return types.NagNotApplicable
	}
	enc := bucket.Props.BucketEncryption
	return compliantIf(enc != nil && len(enc.ServerSideEncryptionConfiguration) > 0)
}

func checkLambdaVPC(_ *cfn.Stack, r cfn.Resource) types.NagCompliance {
	fn, ok := r.(*lambda.Function)
	if !ok {
		return types.NagNotApplicable
	}
	vpc := fn.Props.VpcConfig
	return compliantIf(vpc != nil && len(vpc.SubnetIds) > 0)
}

func checkLogGroupEncryption(_ *cfn.Stack, r cfn.Resource) types.NagCompliance {
	group, ok := r.(*logs.LogGroup)
	if !ok {
		return types.NagNotApplicable
	}
	return compliantIf(group.Props.KmsKeyId != nil)
}

func checkLogGroupRetention(_ *cfn.Stack, r cfn.Resource) types.NagCompliance {
	group, ok := r.(*logs.LogGroup)
	if !ok {
		return types.NagNotApplicable
	}
	return compliantIf(group.Props.RetentionInDays != nil)
}

type statement struct {
	effect    string
	action    any
	resource  any
	condition any
}

// statements returns the statements of a policy document given either as an
// *iam.PolicyDocument or as free-form JSON.
func statements(doc any) []statement {
	rendered, ok := cfn.RenderValue(doc).(map[string]any)
	if !ok {
		return nil
	}

	var raw []any
	switch s := rendered["Statement"].(type) {
	case []any:
		raw = s
	case map[string]any:
		raw = []any{s}
	}

	out := make([]statement, 0, len(raw))
	for _, s := range raw {
		m, ok := s.(map[string]any)
		if !ok {
			continue
		}
		effect, _ := m["Effect"].(string)
		out = append(out, statement{
			effect:    effect,
			action:    m["Action"],
			resource:  m["Resource"],
			condition: m["Condition"],
		})
	}
	return out
}

// anyString reports whether match holds for any string literal inside v.
func anyString(v any, match func(string) bool) bool {
	switch val := v.(type) {
	case string:
		return match(val)
	case []any:
		for _, e := range val {
			if anyString(e, match) {
				return true
			}
		}
	case map[string]any:
		for _, e := range val {
			if anyString(e, match) {
				return true
			}
		}
	}
	return false
}
