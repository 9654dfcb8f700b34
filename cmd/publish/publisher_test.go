package publish

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confluentinc/cfnkit/internal/mocks"
	"github.com/confluentinc/cfnkit/internal/services/persistence"
	"github.com/confluentinc/cfnkit/internal/services/s3"
	"github.com/confluentinc/cfnkit/internal/types"
)

const queueTemplate = "Resources:\n  Queue:\n    Type: AWS::SQS::Queue\n"

func newService(uploads *[]string) *s3.S3Service {
	client := &mocks.MockS3Client{
		HeadObjectFunc: func(ctx context.Context, params *awss3.HeadObjectInput) (*awss3.HeadObjectOutput, error) {
			return nil, &s3types.NotFound{}
		},
		PutObjectFunc: func(ctx context.Context, params *awss3.PutObjectInput) (*awss3.PutObjectOutput, error) {
			*uploads = append(*uploads, *params.Key)
			return &awss3.PutObjectOutput{}, nil
		},
	}
	return s3.NewS3Service(client, "eu-west-1")
}

func TestPublisherTemplates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "queue.yaml")
	require.NoError(t, os.WriteFile(path, []byte(queueTemplate), 0o644))

	var uploads []string
	results, err := NewPublisher(newService(&uploads), PublisherOpts{
		Templates: []string{path},
		S3URI:     "s3://bucket/templates/",
	}).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, path, results[0].Source)
	assert.True(t, results[0].Uploaded)
	assert.Equal(t, "bucket", results[0].Bucket)
	assert.Regexp(t, `^templates/[0-9a-f]{64}\.json$`, results[0].Key)
	assert.Equal(t, "https://bucket.s3.eu-west-1.amazonaws.com/"+results[0].Key, results[0].URL)
	assert.Equal(t, []string{results[0].Key}, uploads)
}

func TestPublisherManifest(t *testing.T) {
	outDir := t.TempDir()
	store := persistence.NewDirService(outDir)
	require.NoError(t, store.WriteFile("a.template.yaml", []byte(queueTemplate)))
	require.NoError(t, store.WriteFile("b.template.yaml", []byte("Resources:\n  Topic:\n    Type: AWS::SNS::Topic\n")))

	manifest := types.NewManifest("app")
	manifest.Stacks = []types.ManifestStack{{Name: "a", TemplateFile: "a.template.yaml"}, {Name: "b", TemplateFile: "b.template.yaml"}}
	require.NoError(t, store.Save(types.ManifestFile, manifest))

	var uploads []string
	results, err := NewPublisher(newService(&uploads), PublisherOpts{OutDir: outDir, S3URI: "s3://bucket"}).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, filepath.Join(outDir, "a.template.yaml"), results[0].Source)
	assert.Len(t, uploads, 2)
	assert.NotEqual(t, uploads[0], uploads[1])
}

func TestPublisherErrors(t *testing.T) {
	var uploads []string

	_, err := NewPublisher(newService(&uploads), PublisherOpts{Templates: []string{"x"}, S3URI: "bucket"}).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must start with 's3://'")

	_, err = NewPublisher(newService(&uploads), PublisherOpts{S3URI: "s3://bucket"}).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no templates to publish")

	_, err = NewPublisher(newService(&uploads), PublisherOpts{OutDir: t.TempDir(), S3URI: "s3://bucket"}).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read manifest")

	failing := &mocks.MockS3Client{
		HeadObjectFunc: func(ctx context.Context, params *awss3.HeadObjectInput) (*awss3.HeadObjectOutput, error) {
			return nil, errors.New("access denied")
		},
	}
	path := filepath.Join(t.TempDir(), "queue.yaml")
	require.NoError(t, os.WriteFile(path, []byte(queueTemplate), 0o644))
	_, err = NewPublisher(s3.NewS3Service(failing, "eu-west-1"), PublisherOpts{Templates: []string{path}, S3URI: "s3://bucket"}).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}
