//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of OrgPress.
//
// OrgPress is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package logger_test

import (
	"strings"
	"testing"
	"time"

	"orgpress.de/op/logger"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		text string
		exp  logger.Level
	}{
		{"tra", logger.TraceLevel},
		{"deb", logger.DebugLevel},
		{"info", logger.InfoLevel},
		{"warn", logger.WarnLevel},
		{"err", logger.ErrorLevel},
		{"fata", logger.FatalLevel},
		{"manda", logger.MandatoryLevel},
		{"dis", logger.NeverLevel},
		{"d", logger.Level(0)},
	}
	for i, tc := range testcases {
		got := logger.ParseLevel(tc.text)
		if got != tc.exp {
			t.Errorf("%d: ParseLevel(%q) == %q, but got %q", i, tc.text, tc.exp, got)
		}
	}
}

type collectLogWriter struct {
	messages []string
}

func (w *collectLogWriter) WriteMessage(level logger.Level, _ time.Time, prefix, msg string, details []byte) error {
	var sb strings.Builder
	sb.WriteString(level.Format())
	sb.WriteByte(' ')
	sb.WriteString(prefix)
	sb.WriteByte(' ')
	sb.WriteString(msg)
	sb.Write(details)
	w.messages = append(w.messages, sb.String())
	return nil
}

func TestLoggerLevel(t *testing.T) {
	t.Parallel()
	lw := &collectLogWriter{}
	log := logger.New(lw, "").SetLevel(logger.WarnLevel)
	log.Debug().Msg("dropped")
	log.Info().Msg("dropped")
	log.Warn().Str("key", "val").Msg("kept")
	log.Error().Msg("kept too")
	if got := len(lw.messages); got != 2 {
		t.Fatalf("expected 2 messages, got %d: %v", got, lw.messages)
	}
	if !strings.Contains(lw.messages[0], "key=val") {
		t.Errorf("first message misses detail: %q", lw.messages[0])
	}
}

func TestChildContext(t *testing.T) {
	t.Parallel()
	lw := &collectLogWriter{}
	log := logger.New(lw, "build").Clone().Str("doc", "index.org").Child()
	log.Info().Msg("started")
	if len(lw.messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(lw.messages))
	}
	if !strings.Contains(lw.messages[0], "doc=index.org") {
		t.Errorf("message misses context: %q", lw.messages[0])
	}
}

type testLogWriter struct{}

func (*testLogWriter) WriteMessage(logger.Level, time.Time, string, string, []byte) error {
	return nil
}

func BenchmarkDisabled(b *testing.B) {
	log := logger.New(&testLogWriter{}, "").SetLevel(logger.NeverLevel)
	for n := 0; n < b.N; n++ {
		log.Info().Str("key", "val").Msg("Benchmark")
	}
}

func BenchmarkStrMessage(b *testing.B) {
	log := logger.New(&testLogWriter{}, "")
	for n := 0; n < b.N; n++ {
		log.Info().Str("key", "val").Msg("Benchmark")
	}
}

func BenchmarkMessage(b *testing.B) {
	log := logger.New(&testLogWriter{}, "")
	for n := 0; n < b.N; n++ {
		log.Info().Msg("Benchmark")
	}
}
