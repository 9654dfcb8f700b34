package types

import "fmt"

type NagCompliance string

const (
	NagCompliant     NagCompliance = "Compliant"
	NagNonCompliant  NagCompliance = "Non-Compliant"
	NagSuppressed    NagCompliance = "Suppressed"
	NagNotApplicable NagCompliance = "N/A"
)

type NagRuleLevel string

const (
	NagLevelError   NagRuleLevel = "Error"
	NagLevelWarning NagRuleLevel = "Warning"
)

// NoExceptionReason is the exception reason of lines that are not suppressed.
const NoExceptionReason = "N/A"

// NagReportLine is one rule evaluated against one resource.
type NagReportLine struct {
	RuleID          string        `json:"ruleId"`
	ResourceID      string        `json:"resourceId"`
	Compliance      NagCompliance `json:"compliance"`
	ExceptionReason string        `json:"exceptionReason"`
	RuleLevel       NagRuleLevel  `json:"ruleLevel"`
	RuleInfo        string        `json:"ruleInfo"`
}

// Level is the severity of the line as a finding.
func (l NagReportLine) Level() string {
	switch {
	case l.Compliance == NagNonCompliant && l.RuleLevel == NagLevelError:
		return "error"
	case l.Compliance == NagNonCompliant:
		return "warning"
	default:
		return "note"
	}
}

// Kind classifies the line: failures, suppressions that need a human to
// review the reason, and everything else.
func (l NagReportLine) Kind() string {
	switch {
	case l.Compliance == NagNonCompliant && l.RuleLevel == NagLevelError:
		return "fail"
	case l.Compliance == NagSuppressed && l.ExceptionReason != NoExceptionReason:
		return "review"
	default:
		return "informational"
	}
}

// NagReport is the content of a <Pack>-<Stack>-NagReport.json file.
type NagReport struct {
	Pack  string          `json:"-"`
	Stack string          `json:"-"`
	Lines []NagReportLine `json:"lines"`
}

func (r *NagReport) FileName() string {
	return fmt.Sprintf("%s-%s-NagReport.json", r.Pack, r.Stack)
}

// Count returns the number of lines with the given compliance.
func (r *NagReport) Count(compliance NagCompliance) int {
	n := 0
	for _, l := range r.Lines {
		if l.Compliance == compliance {
			n++
		}
	}
	return n
}

// HasErrors reports whether any Error level rule is not complied with.
func (r *NagReport) HasErrors() bool {
	for _, l := range r.Lines {
		if l.Level() == "error" {
			return true
		}
	}
	return false
}
