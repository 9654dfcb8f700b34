package awscc

import (
	"github.com/hashicorp/hcl/v2/hclwrite"

	"github.com/confluentinc/cfnkit/internal/utils"
)

const ProviderVersion = "~> 1.0"

func GenerateRequiredProviderTokens() (string, hclwrite.Tokens) {
	awsccProvider := map[string]hclwrite.Tokens{
		"source":  utils.TokensForStringLiteral("hashicorp/awscc"),
		"version": utils.TokensForStringLiteral(ProviderVersion),
	}

	return "awscc", utils.TokensForMap(awsccProvider)
}

func GenerateProviderBlock(regionVar string) *hclwrite.Block {
	providerBlock := hclwrite.NewBlock("provider", []string{"awscc"})
	providerBlock.Body().SetAttributeRaw("region", utils.TokensForVarReference(regionVar))

	return providerBlock
}
