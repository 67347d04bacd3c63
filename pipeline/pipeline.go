package pipeline

import (
	"bytes"
	"fmt"
	"log/slog"

	"go.codegraph.dev/jsoncodegen/backend"
	"go.codegraph.dev/jsoncodegen/names"
	"go.codegraph.dev/jsoncodegen/schema"
	"go.codegraph.dev/jsoncodegen/typegraph"
)

// Pipeline runs the full schema-inference-to-source-code path for one
// backend. Create instances with [New] and run them with [Pipeline.Run].
type Pipeline struct {
	logger    *slog.Logger
	events    chan<- StageEvent
	runConfig *RunConfig
	lang      string
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// New creates a Pipeline with the given options.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{logger: slog.Default()}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// WithLang selects the registered backend this pipeline emits through.
func WithLang(lang string) Option {
	return func(p *Pipeline) {
		p.lang = lang
	}
}

// WithLogger sets the logger the pipeline reports stage progress to.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithRunConfig layers a parsed run configuration's identifier rules on
// top of the selected backend's own Preference.
func WithRunConfig(rc *RunConfig) Option {
	return func(p *Pipeline) {
		p.runConfig = rc
	}
}

// WithEvents sets the channel stage completions are reported on. Sends are
// best-effort: a full or nil channel never blocks Run.
func WithEvents(ch chan<- StageEvent) Option {
	return func(p *Pipeline) {
		p.events = ch
	}
}

// Run infers a schema from data, builds and reduces its TypeGraph, assigns
// names, and emits source through the selected backend, returning the
// emitted bytes.
func (p *Pipeline) Run(data []byte) ([]byte, error) {
	be, ok := backend.Lookup(p.lang)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, p.lang)
	}

	ft, err := schema.FromJSON(data)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("schema inferred")
	p.report(StageEvent{Stage: StageSchemaInferred})

	g := typegraph.Build(ft)
	p.logger.Debug("graph built", slog.Int("nodes", len(g.Nodes)))
	p.report(StageEvent{Stage: StageGraphBuilt, Nodes: len(g.Nodes)})

	g = g.Reduce()
	p.logger.Debug("graph reduced", slog.Int("nodes", len(g.Nodes)))
	p.report(StageEvent{Stage: StageGraphReduced, Nodes: len(g.Nodes)})

	pref := be.Preference()
	if p.runConfig != nil {
		pref = p.runConfig.wrap(pref)
	}

	registry := names.AssignWithRootAliases(g, pref, "Root")
	p.warnUncovered(g, registry)
	p.logger.Debug("names assigned", slog.Int("covered", len(registry)))
	p.report(StageEvent{Stage: StageNamesAssigned, Nodes: len(registry)})

	var buf bytes.Buffer

	if err := be.Emit(g, registry, &buf); err != nil {
		return nil, err
	}

	p.logger.Debug("backend emission done", slog.Int("bytes", buf.Len()))
	p.report(StageEvent{Stage: StageEmitted, Nodes: buf.Len()})

	return buf.Bytes(), nil
}

// warnUncovered logs every named node the matching failed to cover, since
// those fall back to a synthesized structural name rather than one drawn
// from the input.
func (p *Pipeline) warnUncovered(g *typegraph.Graph, registry names.Registry) {
	for id, node := range g.Nodes {
		switch node.(type) {
		case typegraph.Object, typegraph.Union:
		default:
			continue
		}

		if _, covered := registry[id]; !covered {
			p.logger.Warn("name assignment did not cover node",
				slog.Int("nodeID", int(id)),
				slog.String("fallback", names.FallbackName(g, id)),
			)
		}
	}
}

func (p *Pipeline) report(ev StageEvent) {
	if p.events == nil {
		return
	}

	select {
	case p.events <- ev:
	default:
	}
}
