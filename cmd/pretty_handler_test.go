package cmd

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrettyHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewPrettyHandler(&buf, PrettyHandlerOptions{SlogOpts: slog.HandlerOptions{Level: slog.LevelInfo}}))

	logger.With("stack", "orders").Info("📝 wrote template", "file", "orders.template.json")
	logger.Debug("hidden")

	out := buf.String()
	assert.Regexp(t, `^\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2} INFO 📝 wrote template stack=orders file=orders.template.json\n$`, out)
}
