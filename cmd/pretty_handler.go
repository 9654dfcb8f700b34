package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"strings"
)

type PrettyHandlerOptions struct {
	SlogOpts slog.HandlerOptions
}

// PrettyHandler prints one line per record: time, level, message, then the
// attributes as key=value pairs.
type PrettyHandler struct {
	slog.Handler
	l     *log.Logger
	attrs []slog.Attr
}

func NewPrettyHandler(out io.Writer, opts PrettyHandlerOptions) *PrettyHandler {
	return &PrettyHandler{
		Handler: slog.NewTextHandler(out, &opts.SlogOpts),
		l:       log.New(out, "", 0),
	}
}

func (h *PrettyHandler) Handle(ctx context.Context, r slog.Record) error {
	values := make([]string, 0, len(h.attrs)+r.NumAttrs())
	for _, a := range h.attrs {
		values = append(values, formatAttr(a))
	}
	r.Attrs(func(a slog.Attr) bool {
		values = append(values, formatAttr(a))
		return true
	})

	h.l.Printf("%s %s %s %s", r.Time.Format("2006/01/02 15:04:05"), r.Level.String(), r.Message, strings.Join(values, " "))
	return nil
}

func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &PrettyHandler{
		Handler: h.Handler.WithAttrs(attrs),
		l:       h.l,
		attrs:   append(append([]slog.Attr{}, h.attrs...), attrs...),
	}
}

func formatAttr(a slog.Attr) string {
	return fmt.Sprintf("%s=%v", a.Key, a.Value.Any())
}
