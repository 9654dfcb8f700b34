//go:build integration

package hcl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gruntwork-io/terratest/modules/terraform"
	"github.com/stretchr/testify/require"

	"github.com/confluentinc/cfnkit/pkg/cfn"
	_ "github.com/confluentinc/cfnkit/pkg/cfn/all"
)

// Runs terraform init and validate over the exported files. Needs a
// terraform binary on PATH and registry access for the providers.
func TestTerraformExportValidates(t *testing.T) {
	tmpl, err := cfn.ParseTemplate([]byte(ordersTemplate))
	require.NoError(t, err)

	files, err := NewTerraformExportService("eu-west-1", "orders").GenerateTerraformFiles(tmpl)
	require.NoError(t, err)

	dir := t.TempDir()
	for name, content := range files.Files() {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	opts := terraform.WithDefaultRetryableErrors(t, &terraform.Options{
		TerraformDir: dir,
		NoColor:      true,
		Vars: map[string]interface{}{
			"subnets":     []string{"subnet-0123456789abcdef0"},
			"db_password": "hunter22",
		},
	})
	terraform.InitAndValidate(t, opts)
}
