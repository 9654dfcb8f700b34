package nag

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/confluentinc/cfnkit/internal/build_info"
	"github.com/confluentinc/cfnkit/internal/types"
	"github.com/confluentinc/cfnkit/pkg/cfn"
)

const (
	sarifVersion = "2.1.0"
	sarifSchema  = "https://json.schemastore.org/sarif-2.1.0.json"
	rulesURI     = "https://github.com/cdklabs/cdk-nag/blob/main/RULES.md"
)

type SarifLog struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []SarifRun `json:"runs"`
}

type SarifRun struct {
	Tool    SarifTool     `json:"tool"`
	Results []SarifResult `json:"results"`
}

type SarifTool struct {
	Driver SarifDriver `json:"driver"`
}

type SarifDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version,omitempty"`
	InformationURI string      `json:"informationUri,omitempty"`
	Rules          []SarifRule `json:"rules"`
}

type SarifRule struct {
	ID               string         `json:"id"`
	ShortDescription SarifMessage   `json:"shortDescription"`
	HelpURI          string         `json:"helpUri,omitempty"`
	Properties       map[string]any `json:"properties,omitempty"`
}

type SarifMessage struct {
	Text string `json:"text"`
}

type SarifResult struct {
	RuleID         string              `json:"ruleId"`
	Level          string              `json:"level"`
	Kind           string              `json:"kind"`
	Message        SarifMessage        `json:"message"`
	AnalysisTarget *SarifArtifact      `json:"analysisTarget,omitempty"`
	Locations      []SarifLocation     `json:"locations"`
	Properties     SarifResultProperty `json:"properties"`
}

type SarifArtifact struct {
	URI string `json:"uri"`
}

type SarifLocation struct {
	ID               int                   `json:"id"`
	PhysicalLocation SarifPhysicalLocation `json:"physicalLocation"`
}

type SarifPhysicalLocation struct {
	ArtifactLocation SarifArtifact `json:"artifactLocation"`
	Region           SarifRegion   `json:"region"`
}

type SarifRegion struct {
	StartLine int           `json:"startLine"`
	EndLine   int           `json:"endLine"`
	Snippet   *SarifMessage `json:"snippet,omitempty"`
}

type SarifResultProperty struct {
	Finding     sarifFinding   `json:"cdk_nag_finding"`
	CfnResource map[string]any `json:"cfn_resource,omitempty"`
	Tags        []string       `json:"tags"`
}

type sarifFinding struct {
	RuleID          string `json:"rule_id"`
	ResourceID      string `json:"resource_id"`
	Compliance      string `json:"compliance"`
	ExceptionReason string `json:"exception_reason"`
	RuleLevel       string `json:"rule_level"`
	RuleInfo        string `json:"rule_info"`
}

// SarifTarget is the synthesized template a stack's findings point at.
type SarifTarget struct {
	// URI is the template file, relative to the output directory.
	URI      string
	Template *cfn.Template
}

// Sarif converts nag reports into a single-run SARIF 2.1.0 log. targets is
// keyed by stack name; a stack without a target gets results without an
// analysis target or snippet.
func Sarif(reports []*types.NagReport, targets map[string]SarifTarget) (*SarifLog, error) {
	rules := map[string]SarifRule{}
	results := []SarifResult{}

	for _, report := range reports {
		target, hasTarget := targets[report.Stack]
		for _, line := range report.Lines {
			logicalID := line.ResourceID[strings.LastIndex(line.ResourceID, "/")+1:]

			result := SarifResult{
				RuleID:  line.RuleID,
				Level:   line.Level(),
				Kind:    line.Kind(),
				Message: SarifMessage{Text: fmt.Sprintf("%s\n\nException Reason: %s", line.RuleInfo, line.ExceptionReason)},
				Locations: []SarifLocation{{
					ID: 1,
					PhysicalLocation: SarifPhysicalLocation{
						ArtifactLocation: SarifArtifact{URI: line.ResourceID},
						Region:           SarifRegion{StartLine: 1, EndLine: 1},
					},
				}},
				Properties: SarifResultProperty{
					Finding: sarifFinding{
						RuleID:          line.RuleID,
						ResourceID:      line.ResourceID,
						Compliance:      string(line.Compliance),
						ExceptionReason: line.ExceptionReason,
						RuleLevel:       string(line.RuleLevel),
						RuleInfo:        line.RuleInfo,
					},
					Tags: []string{"aws", "cdk", "cdk-nag", report.Pack, line.RuleID, logicalID},
				},
			}

			if hasTarget && target.Template != nil {
				result.AnalysisTarget = &SarifArtifact{URI: target.URI}
				if res, ok := target.Template.Resources[logicalID]; ok && res != nil {
					snippet, doc, err := resourceSnippet(logicalID, res)
					if err != nil {
						return nil, fmt.Errorf("failed to render %s for %s: %w", line.ResourceID, line.RuleID, err)
					}
					result.Locations[0].PhysicalLocation.Region.Snippet = &SarifMessage{Text: snippet}
					result.Properties.CfnResource = doc
					result.Properties.Tags = append(result.Properties.Tags, res.Type)
				}
			}
			results = append(results, result)

			if _, ok := rules[line.RuleID]; !ok {
				rules[line.RuleID] = SarifRule{
					ID:               line.RuleID,
					ShortDescription: SarifMessage{Text: line.RuleInfo},
					HelpURI:          rulesURI + "#" + strings.ToLower(report.Pack),
					Properties:       map[string]any{"rule_level": string(line.RuleLevel), "pack": report.Pack},
				}
			}
		}
	}

	driver := SarifDriver{
		Name:           "cfnkit-nag",
		Version:        build_info.Version,
		InformationURI: rulesURI,
		Rules:          make([]SarifRule, 0, len(rules)),
	}
	for _, id := range sortedKeys(rules) {
		driver.Rules = append(driver.Rules, rules[id])
	}

	return &SarifLog{
		Schema:  sarifSchema,
		Version: sarifVersion,
		Runs:    []SarifRun{{Tool: SarifTool{Driver: driver}, Results: results}},
	}, nil
}

// resourceSnippet renders {"Resources": {id: res}} as YAML for the region
// snippet and as a plain document for the result properties.
func resourceSnippet(id string, res *cfn.TemplateResource) (string, map[string]any, error) {
	tmpl := &cfn.Template{Resources: map[string]*cfn.TemplateResource{id: res}}
	snippet, err := tmpl.YAML()
	if err != nil {
		return "", nil, err
	}
	doc := tmpl.Document()
	return string(snippet), map[string]any{"Resources": doc["Resources"]}, nil
}

// JSON renders the log with a two-space indent.
func (l *SarifLog) JSON() ([]byte, error) {
	b, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sarif log: %w", err)
	}
	return append(b, '\n'), nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
