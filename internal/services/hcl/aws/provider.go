package aws

import (
	"github.com/hashicorp/hcl/v2/hclwrite"

	"github.com/confluentinc/cfnkit/internal/utils"
)

const ProviderVersion = "~> 5.0"

func GenerateRequiredProviderTokens() (string, hclwrite.Tokens) {
	awsProvider := map[string]hclwrite.Tokens{
		"source":  utils.TokensForStringLiteral("hashicorp/aws"),
		"version": utils.TokensForStringLiteral(ProviderVersion),
	}

	return "aws", utils.TokensForMap(awsProvider)
}

// GenerateProviderBlock configures the provider from the region variable.
func GenerateProviderBlock(regionVar string) *hclwrite.Block {
	providerBlock := hclwrite.NewBlock("provider", []string{"aws"})
	providerBlock.Body().SetAttributeRaw("region", utils.TokensForVarReference(regionVar))

	return providerBlock
}
