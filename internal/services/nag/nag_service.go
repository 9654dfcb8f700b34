package nag

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/confluentinc/cfnkit/internal/services/markdown"
	"github.com/confluentinc/cfnkit/internal/types"
	"github.com/confluentinc/cfnkit/pkg/cfn"
)

const (
	metadataKey       = "cdk_nag"
	minimumReasonSize = 10
)

type suppression struct {
	ID     string `mapstructure:"id"`
	Reason string `mapstructure:"reason"`
}

type suppressionMetadata struct {
	RulesToSuppress []suppression `mapstructure:"rules_to_suppress"`
}

type NagService struct {
	// IncludeCompliant adds Compliant and N/A lines to reports; otherwise
	// only findings and suppressions are kept.
	IncludeCompliant bool
}

func NewNagService(includeCompliant bool) *NagService {
	return &NagService{IncludeCompliant: includeCompliant}
}

// Check evaluates every rule of pack against every resource of stack.
func (s *NagService) Check(stack *cfn.Stack, pack *Pack) (*types.NagReport, error) {
	report := &types.NagReport{Pack: pack.Name, Stack: stack.Name(), Lines: []types.NagReportLine{}}

	for _, r := range stack.Resources() {
		suppressions, err := suppressionsOf(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read suppressions of %s: %w", r.LogicalID(), err)
		}

		for _, rule := range pack.Rules {
			line := types.NagReportLine{
				RuleID:          rule.ID,
				ResourceID:      stack.Name() + "/" + r.LogicalID(),
				Compliance:      rule.Check(stack, r),
				ExceptionReason: types.NoExceptionReason,
				RuleLevel:       rule.Level,
				RuleInfo:        rule.Info,
			}
			if reason, ok := suppressions[rule.ID]; ok && line.Compliance == types.NagNonCompliant {
				line.Compliance = types.NagSuppressed
				line.ExceptionReason = reason
			}

			if !s.IncludeCompliant && (line.Compliance == types.NagCompliant || line.Compliance == types.NagNotApplicable) {
				continue
			}
			report.Lines = append(report.Lines, line)
		}
	}

	slog.Debug("🔎 nag pack evaluated",
		"pack", pack.Name,
		"stack", stack.Name(),
		"non_compliant", report.Count(types.NagNonCompliant),
		"suppressed", report.Count(types.NagSuppressed),
	)
	return report, nil
}

// suppressionsOf reads metadata.cdk_nag.rules_to_suppress, keyed by rule id.
// Every suppression needs a reason of at least ten characters.
func suppressionsOf(r cfn.Resource) (map[string]string, error) {
	raw, ok := r.Options().Metadata[metadataKey]
	if !ok {
		return nil, nil
	}

	var meta suppressionMetadata
	if err := mapstructure.Decode(raw, &meta); err != nil {
		return nil, fmt.Errorf("invalid %s metadata: %w", metadataKey, err)
	}

	out := make(map[string]string, len(meta.RulesToSuppress))
	for _, sup := range meta.RulesToSuppress {
		if sup.ID == "" {
			return nil, fmt.Errorf("%s suppression without an id", metadataKey)
		}
		if len(strings.TrimSpace(sup.Reason)) < minimumReasonSize {
			return nil, fmt.Errorf("suppression of %s needs a reason of at least %d characters", sup.ID, minimumReasonSize)
		}
		out[sup.ID] = sup.Reason
	}
	return out, nil
}

// Summary renders reports as a markdown document: totals per stack, then
// every finding and suppression.
func Summary(reports []*types.NagReport) *markdown.Markdown {
	md := markdown.New()
	md.AddHeading("Nag Report", 1)

	totals := make([][]string, 0, len(reports))
	var findings, suppressed [][]string
	for _, r := range reports {
		errs, warnings := 0, 0
		for _, l := range r.Lines {
			switch l.Level() {
			case "error":
				errs++
				findings = append(findings, []string{r.Stack, l.ResourceID, l.RuleID, string(l.RuleLevel), l.RuleInfo})
			case "warning":
				warnings++
				findings = append(findings, []string{r.Stack, l.ResourceID, l.RuleID, string(l.RuleLevel), l.RuleInfo})
			}
			if l.Compliance == types.NagSuppressed {
				suppressed = append(suppressed, []string{r.Stack, l.ResourceID, l.RuleID, l.ExceptionReason})
			}
		}
		totals = append(totals, []string{
			r.Stack,
			r.Pack,
			strconv.Itoa(errs),
			strconv.Itoa(warnings),
			strconv.Itoa(r.Count(types.NagSuppressed)),
			strconv.Itoa(r.Count(types.NagCompliant)),
		})
	}

	md.AddTable([]string{"Stack", "Pack", "Errors", "Warnings", "Suppressed", "Compliant"}, totals)

	md.AddHeading("Findings", 2)
	if len(findings) == 0 {
		md.AddParagraph("No findings.")
	} else {
		md.AddTable([]string{"Stack", "Resource", "Rule", "Level", "Info"}, findings, 0)
	}

	if len(suppressed) > 0 {
		md.AddHeading("Suppressions", 2)
		md.AddTable([]string{"Stack", "Resource", "Rule", "Reason"}, suppressed, 0)
	}

	return md
}
