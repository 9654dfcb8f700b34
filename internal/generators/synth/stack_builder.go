package synth

import (
	"fmt"
	"os"

	"github.com/confluentinc/cfnkit/internal/types"
	"github.com/confluentinc/cfnkit/pkg/cfn"
)

// BuildStack turns one stack of a definition into a typed stack. Includes
// are imported first, then parameters, conditions, resources (in logical id
// order) and outputs.
func BuildStack(def *types.Definition, sd *types.StackDefinition) (*cfn.Stack, error) {
	stack, err := cfn.NewStack(sd.Name, &cfn.StackProps{Description: sd.Description})
	if err != nil {
		return nil, err
	}

	for _, include := range sd.Includes {
		path := def.IncludePath(include)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read include %s: %w", include, err)
		}
		tmpl, err := cfn.ParseTemplate(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse include %s: %w", include, err)
		}
		if _, err := stack.Include(tmpl); err != nil {
			return nil, fmt.Errorf("failed to include %s: %w", include, err)
		}
	}

	for _, id := range sortedKeys(sd.Parameters) {
		p := sd.Parameters[id]
		_, err := stack.AddParameter(id, &cfn.Parameter{
			Type:                  p.Type,
			Description:           p.Description,
			Default:               p.Default,
			AllowedValues:         p.AllowedValues,
			AllowedPattern:        p.AllowedPattern,
			ConstraintDescription: p.ConstraintDescription,
			MinLength:             p.MinLength,
			MaxLength:             p.MaxLength,
			MinValue:              p.MinValue,
			MaxValue:              p.MaxValue,
			NoEcho:                p.NoEcho,
		})
		if err != nil {
			return nil, fmt.Errorf("parameter %s: %w", id, err)
		}
	}

	for _, id := range sortedKeys(sd.Conditions) {
		normalized, err := types.NormalizeJSON(sd.Conditions[id])
		if err != nil {
			return nil, fmt.Errorf("condition %s: %w", id, err)
		}
		condition, ok := normalized.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("condition %s: must be a condition function", id)
		}
		if err := stack.AddCondition(id, cfn.Condition(condition)); err != nil {
			return nil, fmt.Errorf("condition %s: %w", id, err)
		}
	}

	for _, id := range sd.ResourceIDs() {
		rd := sd.Resources[id]
		props, err := rd.WireProperties()
		if err != nil {
			return nil, fmt.Errorf("resource %s: %w", id, err)
		}

		r, err := cfn.Build(stack, id, rd.Type, props)
		if err != nil {
			return nil, fmt.Errorf("resource %s: %w", id, err)
		}

		opts := r.Options()
		opts.DependsOn = rd.DependsOn
		opts.Condition = rd.Condition
		opts.DeletionPolicy = cfn.DeletionPolicy(rd.DeletionPolicy)
		opts.UpdateReplacePolicy = cfn.DeletionPolicy(rd.UpdateReplacePolicy)
		if len(rd.Metadata) > 0 {
			metadata, err := types.NormalizeJSON(rd.Metadata)
			if err != nil {
				return nil, fmt.Errorf("resource %s: %w", id, err)
			}
			opts.Metadata = metadata.(map[string]any)
		}
	}

	for _, id := range sortedKeys(sd.Outputs) {
		od := sd.Outputs[id]
		value, err := types.NormalizeJSON(od.Value)
		if err != nil {
			return nil, fmt.Errorf("output %s: %w", id, err)
		}
		output := &cfn.Output{Description: od.Description, Value: value, Condition: od.Condition}
		if od.ExportName != nil {
			name, err := types.NormalizeJSON(od.ExportName)
			if err != nil {
				return nil, fmt.Errorf("output %s: %w", id, err)
			}
			output.Export = &cfn.Export{Name: name}
		}
		if err := stack.AddOutput(id, output); err != nil {
			return nil, fmt.Errorf("output %s: %w", id, err)
		}
	}

	return stack, nil
}
