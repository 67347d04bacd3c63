// Package progress renders a live bar for each pipeline phase as
// pipeline.StageEvent values arrive, turning a blocking event channel into
// a stream of tea.Msg values. Run falls back to plain log lines when
// stdout is not a terminal.
package progress
