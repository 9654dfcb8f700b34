package hcl

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/confluentinc/cfnkit/internal/services/hcl/aws"
	"github.com/confluentinc/cfnkit/internal/services/hcl/awscc"
	"github.com/confluentinc/cfnkit/internal/types"
	"github.com/confluentinc/cfnkit/internal/utils"
	"github.com/confluentinc/cfnkit/pkg/cfn"
)

// TerraformExportService converts CloudFormation templates into Terraform
// configurations for the awscc provider.
type TerraformExportService struct {
	// Region becomes the default of the aws_region variable.
	Region string
	// StackName becomes the default of the stack_name variable, which
	// replaces AWS::StackName.
	StackName string
}

func NewTerraformExportService(region, stackName string) *TerraformExportService {
	return &TerraformExportService{Region: region, StackName: stackName}
}

// GenerateTerraformFiles translates tmpl. Every construct without a Terraform
// equivalent is reported; nothing is silently dropped.
func (s *TerraformExportService) GenerateTerraformFiles(tmpl *cfn.Template) (types.TerraformFiles, error) {
	if tmpl == nil {
		return types.TerraformFiles{}, errors.New("template is required")
	}

	conv, err := s.newConverterFor(tmpl)
	if err != nil {
		return types.TerraformFiles{}, err
	}

	mainTf, err := s.generateMainTf(tmpl, conv)
	if err != nil {
		return types.TerraformFiles{}, err
	}
	outputsTf, err := s.generateOutputsTf(tmpl, conv)
	if err != nil {
		return types.TerraformFiles{}, err
	}
	// variables last: only now is it known whether stack_name is referenced
	variablesTf, err := s.generateVariablesTf(tmpl, conv)
	if err != nil {
		return types.TerraformFiles{}, err
	}

	slog.Debug("🏗️ generated terraform files", "resources", len(tmpl.Resources), "parameters", len(tmpl.Parameters))

	return types.TerraformFiles{
		MainTf:      mainTf,
		ProvidersTf: s.generateProvidersTf(conv),
		VariablesTf: variablesTf,
		OutputsTf:   outputsTf,
	}, nil
}

func (s *TerraformExportService) newConverterFor(tmpl *cfn.Template) (*converter, error) {
	conv := newConverter()
	var errs []error

	for id := range tmpl.Parameters {
		conv.parameters[id] = utils.FormatHclResourceName(id)
	}
	for name := range tmpl.Conditions {
		conv.conditions[name] = utils.FormatHclResourceName(name)
	}
	for id, r := range tmpl.Resources {
		resourceType, err := awscc.ResourceType(r.Type)
		if err != nil {
			errs = append(errs, fmt.Errorf("resource %s: %w", id, err))
			continue
		}
		conv.resources[id] = resourceType + "." + utils.FormatHclResourceName(id)
		if r.Condition != "" {
			conv.counted[id] = true
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return conv, nil
}

func (s *TerraformExportService) generateMainTf(tmpl *cfn.Template, conv *converter) (string, error) {
	resources := hclwrite.NewEmptyFile()
	var errs []error

	ids := sortedKeys(tmpl.Resources)
	for i, id := range ids {
		block, err := s.generateResource(id, tmpl.Resources[id], conv)
		if err != nil {
			errs = append(errs, fmt.Errorf("resource %s: %w", id, err))
			continue
		}
		if i > 0 {
			resources.Body().AppendNewline()
		}
		resources.Body().AppendBlock(block)
	}

	locals, err := s.generateLocals(tmpl, conv)
	if err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return "", err
	}

	f := hclwrite.NewEmptyFile()
	rootBody := f.Body()
	for _, d := range aws.AllDataSources() {
		if conv.dataUsed[d] {
			rootBody.AppendBlock(aws.GenerateDataSource(d))
			rootBody.AppendNewline()
		}
	}
	if locals != nil {
		rootBody.AppendBlock(locals)
		rootBody.AppendNewline()
	}

	return string(hclwrite.Format(append(f.Bytes(), resources.Bytes()...))), nil
}

func (s *TerraformExportService) generateResource(id string, r *cfn.TemplateResource, conv *converter) (*hclwrite.Block, error) {
	resourceType, name := splitAddress(conv.resources[id])
	block := hclwrite.NewBlock("resource", []string{resourceType, name})
	body := block.Body()

	if r.Condition != "" {
		cond, err := conv.conditionRef("Condition", r.Condition)
		if err != nil {
			return nil, err
		}
		body.SetAttributeRaw("count", utils.TokensForConditional(
			cond,
			hclwrite.TokensForValue(cty.NumberIntVal(1)),
			hclwrite.TokensForValue(cty.NumberIntVal(0)),
		))
		body.AppendNewline()
	}

	var binding any
	if factory, ok := cfn.Lookup(r.Type); ok {
		binding = factory.Props()
	}
	attrs, err := conv.properties("Properties", r.Properties, binding)
	if err != nil {
		return nil, err
	}
	for _, a := range attrs {
		body.SetAttributeRaw(a.name, a.tokens)
	}

	if len(r.DependsOn) > 0 {
		deps := make([]hclwrite.Tokens, 0, len(r.DependsOn))
		for _, dep := range r.DependsOn {
			addr, ok := conv.resources[dep]
			if !ok {
				return nil, &UnsupportedError{Path: "DependsOn", Reason: fmt.Sprintf("undefined resource %q", dep)}
			}
			deps = append(deps, utils.TokensForResourceReference(addr))
		}
		body.AppendNewline()
		body.SetAttributeRaw("depends_on", utils.TokensForList(deps))
	}

	retain := r.DeletionPolicy == string(cfn.DeletionPolicyRetain) || r.DeletionPolicy == string(cfn.DeletionPolicyRetainExceptOnCreate)
	if retain {
		body.AppendNewline()
		utils.AppendLifecycleBlock(body, true, false)
	}

	return block, nil
}

// generateLocals translates conditions and mappings. It returns nil when
// there is nothing to declare.
func (s *TerraformExportService) generateLocals(tmpl *cfn.Template, conv *converter) (*hclwrite.Block, error) {
	if len(tmpl.Conditions) == 0 && !conv.mappings {
		return nil, nil
	}

	block := hclwrite.NewBlock("locals", nil)
	body := block.Body()
	var errs []error

	for _, name := range sortedKeys(tmpl.Conditions) {
		expr, err := conv.condition("Conditions."+name, tmpl.Conditions[name])
		if err != nil {
			errs = append(errs, fmt.Errorf("condition %s: %w", name, err))
			continue
		}
		body.SetAttributeRaw(conv.conditions[name], expr)
	}

	if conv.mappings {
		mappings, err := conv.jsonValue("Mappings", map[string]any(tmpl.Mappings))
		if err != nil {
			errs = append(errs, err)
		} else {
			body.SetAttributeRaw(mappingsLocal, mappings)
		}
	}

	return block, errors.Join(errs...)
}

func (s *TerraformExportService) generateProvidersTf(conv *converter) string {
	f := hclwrite.NewEmptyFile()
	rootBody := f.Body()

	requiredProviders := map[string]hclwrite.Tokens{}
	name, tokens := awscc.GenerateRequiredProviderTokens()
	requiredProviders[name] = tokens

	needsAWS := len(conv.dataUsed) > 0
	if needsAWS {
		name, tokens := aws.GenerateRequiredProviderTokens()
		requiredProviders[name] = tokens
	}

	terraformBlock := rootBody.AppendNewBlock("terraform", nil)
	requiredProvidersBlock := terraformBlock.Body().AppendNewBlock("required_providers", nil)
	for _, name := range sortedKeys(requiredProviders) {
		requiredProvidersBlock.Body().SetAttributeRaw(name, requiredProviders[name])
	}
	rootBody.AppendNewline()

	rootBody.AppendBlock(awscc.GenerateProviderBlock(regionVariable))
	if needsAWS {
		rootBody.AppendNewline()
		rootBody.AppendBlock(aws.GenerateProviderBlock(regionVariable))
	}

	return string(hclwrite.Format(f.Bytes()))
}

func (s *TerraformExportService) generateOutputsTf(tmpl *cfn.Template, conv *converter) (string, error) {
	if len(tmpl.Outputs) == 0 {
		return "", nil
	}

	f := hclwrite.NewEmptyFile()
	rootBody := f.Body()
	var errs []error

	for i, id := range sortedKeys(tmpl.Outputs) {
		output := tmpl.Outputs[id]
		value, err := conv.guess("Outputs."+id+".Value", output.Value)
		if err != nil {
			errs = append(errs, fmt.Errorf("output %s: %w", id, err))
			continue
		}
		if output.Condition != "" {
			cond, err := conv.conditionRef("Outputs."+id+".Condition", output.Condition)
			if err != nil {
				errs = append(errs, fmt.Errorf("output %s: %w", id, err))
				continue
			}
			value = utils.TokensForConditional(cond, value, hclwrite.TokensForValue(cty.NullVal(cty.DynamicPseudoType)))
		}

		if i > 0 {
			rootBody.AppendNewline()
		}
		if output.Export != nil {
			if exportName, ok := output.Export.Name.(string); ok {
				rootBody.AppendUnstructuredTokens(utils.TokensForComment("# exported as " + exportName))
			}
		}
		body := rootBody.AppendNewBlock("output", []string{utils.FormatHclResourceName(id)}).Body()
		if output.Description != "" {
			body.SetAttributeValue("description", cty.StringVal(output.Description))
		}
		body.SetAttributeRaw("value", value)
	}

	if err := errors.Join(errs...); err != nil {
		return "", err
	}
	return string(hclwrite.Format(f.Bytes())), nil
}

func splitAddress(addr string) (string, string) {
	for i := 0; i < len(addr); i++ {
		if addr[i] == '.' {
			return addr[:i], addr[i+1:]
		}
	}
	return addr, ""
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
