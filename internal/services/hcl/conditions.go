package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"

	"github.com/confluentinc/cfnkit/internal/utils"
)

func (c *converter) conditionRef(path, name string) (hclwrite.Tokens, error) {
	local, ok := c.conditions[name]
	if !ok {
		return nil, &UnsupportedError{Path: path, Reason: fmt.Sprintf("undefined condition %q", name)}
	}
	return utils.TokensForResourceReference("local." + local), nil
}

// condition converts a condition function into a boolean expression.
func (c *converter) condition(path string, v any) (hclwrite.Tokens, error) {
	m, ok := v.(map[string]any)
	if !ok || len(m) != 1 {
		return nil, &UnsupportedError{Path: path, Reason: "a condition must be a single condition function"}
	}

	for fn, arg := range m {
		fnPath := path + "." + fn
		switch fn {
		case "Condition":
			name, _ := arg.(string)
			return c.conditionRef(fnPath, name)
		case "Fn::Equals":
			args, ok := arg.([]any)
			if !ok || len(args) != 2 {
				return nil, &UnsupportedError{Path: fnPath, Reason: "Fn::Equals needs two values"}
			}
			left, err := c.guess(fnPath+"[0]", args[0])
			if err != nil {
				return nil, err
			}
			right, err := c.guess(fnPath+"[1]", args[1])
			if err != nil {
				return nil, err
			}
			return binary(left, hclsyntax.TokenEqualOp, "==", right), nil
		case "Fn::Not":
			args, ok := arg.([]any)
			if !ok || len(args) != 1 {
				return nil, &UnsupportedError{Path: fnPath, Reason: "Fn::Not needs one condition"}
			}
			inner, err := c.condition(fnPath+"[0]", args[0])
			if err != nil {
				return nil, err
			}
			tokens := hclwrite.Tokens{&hclwrite.Token{Type: hclsyntax.TokenBang, Bytes: []byte("!")}}
			return append(tokens, inner...), nil
		case "Fn::And", "Fn::Or":
			args, ok := arg.([]any)
			if !ok || len(args) < 2 {
				return nil, &UnsupportedError{Path: fnPath, Reason: fn + " needs at least two conditions"}
			}
			opType, op := hclsyntax.TokenAnd, "&&"
			if fn == "Fn::Or" {
				opType, op = hclsyntax.TokenOr, "||"
			}
			var tokens hclwrite.Tokens
			for i, a := range args {
				operand, err := c.condition(fmt.Sprintf("%s[%d]", fnPath, i), a)
				if err != nil {
					return nil, err
				}
				if i == 0 {
					tokens = operand
					continue
				}
				tokens = binary(tokens, opType, op, operand)
			}
			return tokens, nil
		default:
			return nil, &UnsupportedError{Path: fnPath, Reason: fn + " is not a condition function"}
		}
	}
	return nil, nil
}

// binary joins two operands with an operator, parenthesized.
func binary(left hclwrite.Tokens, opType hclsyntax.TokenType, op string, right hclwrite.Tokens) hclwrite.Tokens {
	tokens := hclwrite.Tokens{&hclwrite.Token{Type: hclsyntax.TokenOParen, Bytes: []byte("(")}}
	tokens = append(tokens, left...)
	tokens = append(tokens, &hclwrite.Token{Type: opType, Bytes: []byte(op)})
	tokens = append(tokens, right...)
	return append(tokens, &hclwrite.Token{Type: hclsyntax.TokenCParen, Bytes: []byte(")")})
}
