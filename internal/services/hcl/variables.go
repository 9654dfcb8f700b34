package hcl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/confluentinc/cfnkit/internal/utils"
	"github.com/confluentinc/cfnkit/pkg/cfn"
)

const (
	regionVariable    = "aws_region"
	stackNameVariable = "stack_name"
	mappingsLocal     = "mappings"
)

// variableType maps a CloudFormation parameter type to a Terraform type
// constraint.
func variableType(paramType string) string {
	switch {
	case paramType == "Number":
		return "number"
	case paramType == "List<Number>":
		return "list(number)"
	case paramType == "CommaDelimitedList", strings.HasPrefix(paramType, "List<"):
		return "list(string)"
	case strings.HasPrefix(paramType, "AWS::SSM::Parameter::Value<List<"):
		return "list(string)"
	default:
		return "string"
	}
}

// variableValue converts a parameter default or allowed value to the
// variable's type. CloudFormation writes list defaults as comma separated
// strings and accepts numbers as strings.
func variableValue(tfType string, v any) (cty.Value, error) {
	switch tfType {
	case "number":
		switch n := v.(type) {
		case float64:
			return cty.NumberFloatVal(n), nil
		case int:
			return cty.NumberIntVal(int64(n)), nil
		case string:
			f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
			if err != nil {
				return cty.NilVal, fmt.Errorf("%q is not a number", n)
			}
			return cty.NumberFloatVal(f), nil
		}
	case "list(string)", "list(number)":
		var items []string
		switch l := v.(type) {
		case string:
			items = strings.Split(l, ",")
		case []any:
			for _, item := range l {
				items = append(items, fmt.Sprint(item))
			}
		}
		if len(items) == 0 {
			if tfType == "list(number)" {
				return cty.ListValEmpty(cty.Number), nil
			}
			return cty.ListValEmpty(cty.String), nil
		}
		values := make([]cty.Value, len(items))
		for i, item := range items {
			item = strings.TrimSpace(item)
			if tfType == "list(number)" {
				f, err := strconv.ParseFloat(item, 64)
				if err != nil {
					return cty.NilVal, fmt.Errorf("%q is not a number", item)
				}
				values[i] = cty.NumberFloatVal(f)
				continue
			}
			values[i] = cty.StringVal(item)
		}
		return cty.ListVal(values), nil
	}
	return cty.StringVal(fmt.Sprint(v)), nil
}

func (s *TerraformExportService) generateVariablesTf(tmpl *cfn.Template, conv *converter) (string, error) {
	f := hclwrite.NewEmptyFile()
	rootBody := f.Body()

	regionBlock := rootBody.AppendNewBlock("variable", []string{regionVariable})
	regionBlock.Body().SetAttributeRaw("type", utils.TokensForResourceReference("string"))
	regionBlock.Body().SetAttributeValue("description", cty.StringVal("The AWS region to deploy to"))
	if s.Region != "" {
		regionBlock.Body().SetAttributeValue("default", cty.StringVal(s.Region))
	}

	if conv.stackName {
		rootBody.AppendNewline()
		stackBlock := rootBody.AppendNewBlock("variable", []string{stackNameVariable})
		stackBlock.Body().SetAttributeRaw("type", utils.TokensForResourceReference("string"))
		stackBlock.Body().SetAttributeValue("description", cty.StringVal("Stands in for the AWS::StackName pseudo parameter"))
		if s.StackName != "" {
			stackBlock.Body().SetAttributeValue("default", cty.StringVal(s.StackName))
		}
	}

	for _, id := range sortedKeys(tmpl.Parameters) {
		param := tmpl.Parameters[id]
		name := conv.parameters[id]
		tfType := variableType(param.Type)

		rootBody.AppendNewline()
		body := rootBody.AppendNewBlock("variable", []string{name}).Body()
		body.SetAttributeRaw("type", utils.TokensForResourceReference(tfType))
		if param.Description != "" {
			body.SetAttributeValue("description", cty.StringVal(param.Description))
		}
		if param.Default != nil {
			value, err := variableValue(tfType, param.Default)
			if err != nil {
				return "", fmt.Errorf("parameter %s default: %w", id, err)
			}
			body.SetAttributeValue("default", value)
		}
		if param.NoEcho {
			body.SetAttributeValue("sensitive", cty.True)
		}

		if len(param.AllowedValues) > 0 && !strings.HasPrefix(tfType, "list") {
			allowed := make([]cty.Value, len(param.AllowedValues))
			for i, v := range param.AllowedValues {
				value, err := variableValue(tfType, v)
				if err != nil {
					return "", fmt.Errorf("parameter %s allowed value: %w", id, err)
				}
				allowed[i] = value
			}
			validation := body.AppendNewBlock("validation", nil).Body()
			validation.SetAttributeRaw("condition", utils.TokensForFunctionCall("contains",
				hclwrite.TokensForValue(cty.ListVal(allowed)),
				utils.TokensForVarReference(name),
			))
			validation.SetAttributeValue("error_message", cty.StringVal(fmt.Sprintf("%s must be one of the allowed values.", name)))
		}

		if param.AllowedPattern != "" && tfType == "string" {
			validation := body.AppendNewBlock("validation", nil).Body()
			validation.SetAttributeRaw("condition", utils.TokensForFunctionCall("can",
				utils.TokensForFunctionCall("regex",
					utils.TokensForStringLiteral("^(?:"+param.AllowedPattern+")$"),
					utils.TokensForVarReference(name),
				),
			))
			message := param.ConstraintDescription
			if message == "" {
				message = fmt.Sprintf("%s must match %s.", name, param.AllowedPattern)
			}
			validation.SetAttributeValue("error_message", cty.StringVal(message))
		}
	}

	return string(hclwrite.Format(f.Bytes())), nil
}
