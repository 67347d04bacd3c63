package progress

import (
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"
	"golang.org/x/term"

	"go.codegraph.dev/jsoncodegen/pipeline"
)

// Run drives a progress display from events until the channel closes. On a
// terminal it renders the bubbletea bar view; otherwise it falls back to
// plain log lines on logger, matching how ansi_video_renderer requires a
// real terminal but a batch CLI run should still report progress somehow.
func Run(events <-chan pipeline.StageEvent, logger *slog.Logger) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		runPlain(events, logger)

		return nil
	}

	p := tea.NewProgram(newModel(events))

	_, err := p.Run()

	return err
}

func runPlain(events <-chan pipeline.StageEvent, logger *slog.Logger) {
	for ev := range events {
		logger.Info(ev.Stage.String(), slog.Int("nodes", ev.Nodes))
	}
}
