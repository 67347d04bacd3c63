package pipeline_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "go.codegraph.dev/jsoncodegen/backend/rustlike"
	_ "go.codegraph.dev/jsoncodegen/backend/verbose"

	"go.codegraph.dev/jsoncodegen/internal/stringtest"
	"go.codegraph.dev/jsoncodegen/pipeline"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), nil))
}

func TestRunEachRegisteredBackend(t *testing.T) {
	t.Parallel()

	for _, lang := range []string{"rustlike", "verbose"} {
		t.Run(lang, func(t *testing.T) {
			t.Parallel()

			p := pipeline.New(pipeline.WithLang(lang), pipeline.WithLogger(discardLogger()))

			out, err := p.Run([]byte(`{"x": 1, "y": null}`))
			require.NoError(t, err)
			assert.NotEmpty(t, out)
		})
	}
}

func TestRunUnsupportedLanguage(t *testing.T) {
	t.Parallel()

	p := pipeline.New(pipeline.WithLang("cobol"), pipeline.WithLogger(discardLogger()))

	_, err := p.Run([]byte(`{}`))
	assert.ErrorIs(t, err, pipeline.ErrUnsupportedLanguage)
}

func TestRunInvalidJSON(t *testing.T) {
	t.Parallel()

	p := pipeline.New(pipeline.WithLang("rustlike"), pipeline.WithLogger(discardLogger()))

	_, err := p.Run([]byte(`not json`))
	assert.Error(t, err)
}

func TestRunReportsStageEvents(t *testing.T) {
	t.Parallel()

	events := make(chan pipeline.StageEvent, len(pipeline.Stages()))

	p := pipeline.New(
		pipeline.WithLang("rustlike"),
		pipeline.WithLogger(discardLogger()),
		pipeline.WithEvents(events),
	)

	_, err := p.Run([]byte(`{"x": 1, "y": null}`))
	require.NoError(t, err)

	close(events)

	var got []pipeline.Stage
	for ev := range events {
		got = append(got, ev.Stage)
	}

	assert.Equal(t, pipeline.Stages(), got)
}

func TestRunEventsNeverBlockOnFullChannel(t *testing.T) {
	t.Parallel()

	events := make(chan pipeline.StageEvent) // unbuffered, never drained

	p := pipeline.New(
		pipeline.WithLang("rustlike"),
		pipeline.WithLogger(discardLogger()),
		pipeline.WithEvents(events),
	)

	_, err := p.Run([]byte(`{"x": 1}`))
	require.NoError(t, err)
}

func TestRunAppliesRunConfigCasing(t *testing.T) {
	t.Parallel()

	rc, err := pipeline.LoadRunConfig([]byte("casing: snake\n"))
	require.NoError(t, err)

	p := pipeline.New(
		pipeline.WithLang("rustlike"),
		pipeline.WithLogger(discardLogger()),
		pipeline.WithRunConfig(rc),
	)

	out, err := p.Run([]byte(`{"x": 1, "y": null}`))
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestRunRustlikeSingleFieldObject(t *testing.T) {
	t.Parallel()

	p := pipeline.New(pipeline.WithLang("rustlike"), pipeline.WithLogger(discardLogger()))

	out, err := p.Run([]byte(`{"count": 3}`))
	require.NoError(t, err)

	want := stringtest.JoinLF(
		"use serde::{Deserialize, Serialize};",
		"",
		"#[derive(Debug, Clone, Serialize, Deserialize)]",
		"pub struct Root {",
		"    pub count: i64,",
		"}",
		"",
		"pub type Document = Root;",
		"",
	)

	assert.Equal(t, want, string(out))
}

func TestStageShareSumsToOne(t *testing.T) {
	t.Parallel()

	var total float64
	for _, s := range pipeline.Stages() {
		total += pipeline.StageShare(s)
	}

	assert.InDelta(t, 1.0, total, 1e-9)
}
