package utils

import (
	"regexp"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/iancoleman/strcase"
	"github.com/zclconf/go-cty/cty"
)

// a single letter split from its digits ("s_3_bucket") is joined back up
var letterDigit = regexp.MustCompile(`(^|_)([a-z])_([0-9]+)`)

// FormatHclResourceName ensures that resource and attribute names are all
// 'snake_case', e.g. "BucketName" -> "bucket_name", "SSESpecification" ->
// "sse_specification", "S3Bucket" -> "s3_bucket".
func FormatHclResourceName(resourceName string) string {
	snake := strcase.ToSnake(strings.ReplaceAll(resourceName, "-", "_"))
	return letterDigit.ReplaceAllString(snake, "$1$2$3")
}

// TokensForStringLiteral creates tokens for a quoted string with HCL escaping
// applied, so "${" and "%{" in the input are not interpolated.
func TokensForStringLiteral(s string) hclwrite.Tokens {
	return hclwrite.TokensForValue(cty.StringVal(s))
}

// TemplatePart is one piece of a string template: literal text or an
// interpolated expression.
type TemplatePart struct {
	Literal string
	Expr    hclwrite.Tokens
}

// TokensForStringTemplate creates tokens for a string with ${} interpolations,
// e.g. "arn:${data.aws_partition.current.partition}:s3:::logs".
func TokensForStringTemplate(parts []TemplatePart) hclwrite.Tokens {
	tokens := hclwrite.Tokens{
		&hclwrite.Token{Type: hclsyntax.TokenOQuote, Bytes: []byte(`"`)},
	}

	for _, part := range parts {
		if part.Expr == nil {
			if part.Literal != "" {
				tokens = append(tokens, &hclwrite.Token{Type: hclsyntax.TokenQuotedLit, Bytes: escapeQuotedLit(part.Literal)})
			}
			continue
		}
		tokens = append(tokens, &hclwrite.Token{Type: hclsyntax.TokenTemplateInterp, Bytes: []byte("${")})
		tokens = append(tokens, part.Expr...)
		tokens = append(tokens, &hclwrite.Token{Type: hclsyntax.TokenTemplateSeqEnd, Bytes: []byte("}")})
	}

	tokens = append(tokens, &hclwrite.Token{Type: hclsyntax.TokenCQuote, Bytes: []byte(`"`)})
	return tokens
}

// escapeQuotedLit reuses the escaping hclwrite applies to string values and
// strips the surrounding quotes.
func escapeQuotedLit(s string) []byte {
	quoted := hclwrite.TokensForValue(cty.StringVal(s)).Bytes()
	return quoted[1 : len(quoted)-1]
}

// TokensForResourceReference creates tokens for a resource reference (e.g., "awscc_s3_bucket.logs.arn")
func TokensForResourceReference(ref string) hclwrite.Tokens {
	return hclwrite.Tokens{
		&hclwrite.Token{Type: hclsyntax.TokenIdent, Bytes: []byte(ref)},
	}
}

// TokensForVarReference creates tokens for a Terraform variable reference (e.g., "var.my_variable")
func TokensForVarReference(varName string) hclwrite.Tokens {
	return TokensForResourceReference("var." + varName)
}

// TokensForList creates tokens for a list of arbitrary expressions.
func TokensForList(items []hclwrite.Tokens) hclwrite.Tokens {
	tokens := hclwrite.Tokens{
		&hclwrite.Token{Type: hclsyntax.TokenOBrack, Bytes: []byte("[")},
	}

	for i, item := range items {
		if i > 0 {
			tokens = append(tokens, &hclwrite.Token{Type: hclsyntax.TokenComma, Bytes: []byte(",")})
		}
		tokens = append(tokens, item...)
	}

	tokens = append(tokens, &hclwrite.Token{Type: hclsyntax.TokenCBrack, Bytes: []byte("]")})
	return tokens
}

// TokensForFunctionCall creates tokens for a function call, e.g. join("-", [a, b])
func TokensForFunctionCall(functionName string, args ...hclwrite.Tokens) hclwrite.Tokens {
	tokens := hclwrite.Tokens{
		&hclwrite.Token{Type: hclsyntax.TokenIdent, Bytes: []byte(functionName)},
		&hclwrite.Token{Type: hclsyntax.TokenOParen, Bytes: []byte("(")},
	}

	for i, arg := range args {
		if i > 0 {
			tokens = append(tokens, &hclwrite.Token{Type: hclsyntax.TokenComma, Bytes: []byte(",")})
		}
		tokens = append(tokens, arg...)
	}

	tokens = append(tokens, &hclwrite.Token{Type: hclsyntax.TokenCParen, Bytes: []byte(")")})
	return tokens
}

// TokensForConditional creates tokens for "cond ? a : b".
func TokensForConditional(cond, whenTrue, whenFalse hclwrite.Tokens) hclwrite.Tokens {
	tokens := append(hclwrite.Tokens{}, cond...)
	tokens = append(tokens, &hclwrite.Token{Type: hclsyntax.TokenQuestion, Bytes: []byte("?")})
	tokens = append(tokens, whenTrue...)
	tokens = append(tokens, &hclwrite.Token{Type: hclsyntax.TokenColon, Bytes: []byte(":")})
	tokens = append(tokens, whenFalse...)
	return tokens
}

// TokensForMap creates tokens for an object with the given keys and token
// values, one entry per line, keys sorted. Keys that are not valid
// identifiers are quoted.
func TokensForMap(entries map[string]hclwrite.Tokens) hclwrite.Tokens {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tokens := hclwrite.Tokens{
		&hclwrite.Token{Type: hclsyntax.TokenOBrace, Bytes: []byte("{")},
		&hclwrite.Token{Type: hclsyntax.TokenNewline, Bytes: []byte("\n")},
	}

	for _, key := range keys {
		if hclsyntax.ValidIdentifier(key) {
			tokens = append(tokens, &hclwrite.Token{Type: hclsyntax.TokenIdent, Bytes: []byte(key)})
		} else {
			tokens = append(tokens, TokensForStringLiteral(key)...)
		}
		tokens = append(tokens, &hclwrite.Token{Type: hclsyntax.TokenEqual, Bytes: []byte("=")})
		tokens = append(tokens, entries[key]...)
		tokens = append(tokens, &hclwrite.Token{Type: hclsyntax.TokenNewline, Bytes: []byte("\n")})
	}

	tokens = append(tokens, &hclwrite.Token{Type: hclsyntax.TokenCBrace, Bytes: []byte("}")})
	return tokens
}

// TokensForComment creates a comment line.
func TokensForComment(comment string) hclwrite.Tokens {
	if !strings.HasSuffix(comment, "\n") {
		comment += "\n"
	}
	return hclwrite.Tokens{
		&hclwrite.Token{Type: hclsyntax.TokenComment, Bytes: []byte(comment)},
	}
}

// AppendLifecycleBlock adds a lifecycle block. Only 'prevent_destroy' and
// 'create_before_destroy' are meaningful to the exporter.
func AppendLifecycleBlock(body *hclwrite.Body, preventDestroy, createBeforeDestroy bool) {
	if !preventDestroy && !createBeforeDestroy {
		return
	}
	lifecycle := body.AppendNewBlock("lifecycle", nil).Body()
	if preventDestroy {
		lifecycle.SetAttributeValue("prevent_destroy", cty.True)
	}
	if createBeforeDestroy {
		lifecycle.SetAttributeValue("create_before_destroy", cty.True)
	}
}
