// Copyright (c) 2024, The Mash Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] that writes one line per record,
// with the level colored according to the terminal capabilities
// of its output. Records below [UserLevel] are dropped.
type Handler struct {
	mu     *sync.Mutex
	out    *termenv.Output
	attrs  []slog.Attr
	prefix string
}

// NewHandler returns a new [Handler] writing to the given writer.
// The color profile is detected from w unless overridden in opts.
func NewHandler(w io.Writer, opts ...termenv.OutputOption) *Handler {
	return &Handler{mu: &sync.Mutex{}, out: termenv.NewOutput(w, opts...)}
}

// SetDefaultLogger sets the default [slog] logger to one
// using a [Handler] that writes to [os.Stderr].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= UserLevel
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	sb := &strings.Builder{}
	sb.WriteString(h.levelString(r.Level))
	sb.WriteByte(' ')
	sb.WriteString(r.Message)
	for _, a := range h.attrs {
		writeAttr(sb, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(sb, h.prefix, a)
		return true
	})
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, sb.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = slices.Clone(h.attrs)
	for _, a := range attrs {
		a.Key = h.prefix + a.Key
		nh.attrs = append(nh.attrs, a)
	}
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.prefix = h.prefix + name + "."
	return &nh
}

func (h *Handler) levelString(level slog.Level) string {
	st := h.out.String(level.String())
	switch {
	case level >= slog.LevelError:
		st = st.Foreground(termenv.ANSIRed).Bold()
	case level >= slog.LevelWarn:
		st = st.Foreground(termenv.ANSIYellow)
	case level >= slog.LevelInfo:
		st = st.Foreground(termenv.ANSICyan)
	default:
		st = st.Foreground(termenv.ANSIBrightBlack)
	}
	return st.String()
}

func writeAttr(sb *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			writeAttr(sb, prefix+a.Key+".", ga)
		}
		return
	}
	fmt.Fprintf(sb, " %s%s=%v", prefix, a.Key, a.Value)
}
