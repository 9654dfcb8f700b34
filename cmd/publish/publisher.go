package publish

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/confluentinc/cfnkit/internal/services/persistence"
	"github.com/confluentinc/cfnkit/internal/services/s3"
	"github.com/confluentinc/cfnkit/internal/types"
	"github.com/confluentinc/cfnkit/internal/utils"
)

type S3Service interface {
	ParseS3URI(s3Uri string) (string, string, error)
	PublishTemplate(ctx context.Context, bucket, prefix string, body []byte) (s3.PublishedTemplate, error)
}

type PublisherOpts struct {
	Templates []string
	// OutDir is a synth output directory; every template of its manifest
	// is published.
	OutDir string
	S3URI  string
}

// Published pairs a template file with where it ended up.
type Published struct {
	Source string `json:"source"`
	s3.PublishedTemplate
}

type Publisher struct {
	s3Service S3Service
	opts      PublisherOpts
}

func NewPublisher(s3Service S3Service, opts PublisherOpts) *Publisher {
	return &Publisher{s3Service: s3Service, opts: opts}
}

func (p *Publisher) Run(ctx context.Context) ([]Published, error) {
	bucket, prefix, err := p.s3Service.ParseS3URI(p.opts.S3URI)
	if err != nil {
		return nil, err
	}

	sources, err := p.sources()
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no templates to publish")
	}

	results := make([]Published, 0, len(sources))
	for _, source := range sources {
		tmpl, err := utils.LoadTemplate(source)
		if err != nil {
			return results, err
		}
		body, err := tmpl.JSON()
		if err != nil {
			return results, fmt.Errorf("failed to render %s: %w", source, err)
		}

		published, err := p.s3Service.PublishTemplate(ctx, bucket, prefix, body)
		if err != nil {
			return results, fmt.Errorf("failed to publish %s: %w", source, err)
		}
		results = append(results, Published{Source: source, PublishedTemplate: published})
	}

	slog.Info("✅ templates published", "bucket", bucket, "count", len(results))
	return results, nil
}

func (p *Publisher) sources() ([]string, error) {
	sources := append([]string{}, p.opts.Templates...)
	if p.opts.OutDir == "" {
		return sources, nil
	}

	store := persistence.NewDirService(p.opts.OutDir)
	var manifest types.Manifest
	if err := store.Load(types.ManifestFile, &manifest); err != nil {
		return nil, fmt.Errorf("failed to read manifest of %s: %w", p.opts.OutDir, err)
	}
	for _, s := range manifest.Stacks {
		sources = append(sources, store.Path(s.TemplateFile))
	}
	return sources, nil
}
