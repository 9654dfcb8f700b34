package serve

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/confluentinc/cfnkit/internal/build_info"
	"github.com/confluentinc/cfnkit/internal/services/hcl"
	"github.com/confluentinc/cfnkit/internal/types"
	"github.com/confluentinc/cfnkit/pkg/cfn"
)

const (
	defaultRegion   = "us-east-1"
	shutdownTimeout = 10 * time.Second
)

type ServeOpts struct {
	Host string
	Port string
	// Region is the default provider region of Terraform exports.
	Region string
}

type Server struct {
	opts ServeOpts
	echo *echo.Echo
}

func NewServer(opts ServeOpts) *Server {
	if opts.Region == "" {
		opts.Region = defaultRegion
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	s := &Server{opts: opts, echo: e}

	e.GET("/health", s.handleHealth)
	e.GET("/types", s.handleTypes)
	e.POST("/validate", s.handleValidate)
	e.POST("/render", s.handleRender)
	e.POST("/diff", s.handleDiff)
	e.POST("/terraform", s.handleTerraform)

	return s
}

// Handler exposes the routes without starting a listener.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%s", s.opts.Host, s.opts.Port)
	slog.Info("🚀 starting api server", "address", addr)

	errCh := make(chan error, 1)
	go func() {
		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start api server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("🛑 stopping api server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop api server: %w", err)
	}
	return nil
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":    "healthy",
		"service":   "cfnkit",
		"version":   build_info.Version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleTypes(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"types": cfn.Types()})
}

func (s *Server) handleValidate(c echo.Context) error {
	var req types.TemplateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}

	tmpl, err := parseTemplate(req.Template)
	if err != nil {
		return c.JSON(http.StatusOK, types.ValidateResponse{Valid: false, Errors: []string{err.Error()}})
	}
	if err := tmpl.Validate(); err != nil {
		return c.JSON(http.StatusOK, types.ValidateResponse{Valid: false, Errors: errorList(err)})
	}
	return c.JSON(http.StatusOK, types.ValidateResponse{Valid: true})
}

// handleRender returns the template normalized, as JSON by default or as
// YAML with ?format=yaml.
func (s *Server) handleRender(c echo.Context) error {
	var req types.TemplateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}
	tmpl, err := parseTemplate(req.Template)
	if err != nil {
		return badRequest(c, err)
	}

	format, err := types.ToOutputFormat(c.QueryParam("format"))
	if err != nil {
		return badRequest(c, err)
	}

	if format == types.OutputFormatYAML {
		data, err := tmpl.YAML()
		if err != nil {
			return internalError(c, err)
		}
		return c.Blob(http.StatusOK, "application/yaml", data)
	}
	data, err := tmpl.JSON()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSONBlob(http.StatusOK, data)
}

func (s *Server) handleDiff(c echo.Context) error {
	var req types.DiffRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}

	var before, after *cfn.Template
	var err error
	if len(req.Before) > 0 && !isNull(req.Before) {
		if before, err = parseTemplate(req.Before); err != nil {
			return badRequest(c, fmt.Errorf("before: %w", err))
		}
	}
	if len(req.After) > 0 && !isNull(req.After) {
		if after, err = parseTemplate(req.After); err != nil {
			return badRequest(c, fmt.Errorf("after: %w", err))
		}
	}

	changes, err := cfn.Diff(before, after)
	if err != nil {
		return internalError(c, err)
	}
	if changes == nil {
		changes = []cfn.Change{}
	}
	return c.JSON(http.StatusOK, map[string]any{"changes": changes})
}

func (s *Server) handleTerraform(c echo.Context) error {
	var req types.TemplateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}
	tmpl, err := parseTemplate(req.Template)
	if err != nil {
		return badRequest(c, err)
	}

	region := c.QueryParam("region")
	if region == "" {
		region = s.opts.Region
	}
	stack := req.Stack
	if stack == "" {
		stack = "stack"
	}

	files, err := hcl.NewTerraformExportService(region, stack).GenerateTerraformFiles(tmpl)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, types.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, files)
}

// parseTemplate accepts a template as a JSON object or as a JSON string
// holding the JSON or YAML text.
func parseTemplate(raw json.RawMessage) (*cfn.Template, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || isNull(raw) {
		return nil, errors.New("template is required")
	}
	if raw[0] == '"' {
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return nil, fmt.Errorf("invalid template string: %w", err)
		}
		return cfn.ParseTemplate([]byte(text))
	}
	return cfn.ParseTemplate(raw)
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func errorList(err error) []string {
	var verrs cfn.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]string, len(verrs))
		for i, e := range verrs {
			out[i] = e.Error()
		}
		return out
	}
	return []string{err.Error()}
}

func badRequest(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
}

func internalError(c echo.Context, err error) error {
	slog.Error("❌ api request failed", "path", c.Path(), "error", err)
	return c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: err.Error()})
}
