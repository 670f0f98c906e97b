package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

const (
	StyleAuto = "auto" // detect the terminal background
	StyleRaw  = "raw"  // print markdown as is
)

// printMarkdown renders markdown on the session output.
func (s *Session) printMarkdown(md string) {
	if s.Style == StyleRaw {
		fmt.Fprintln(s.Out, md)
		return
	}
	style := glamour.WithAutoStyle()
	if s.Style != "" && s.Style != StyleAuto {
		style = glamour.WithStandardStyle(s.Style)
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(120))
	if err != nil {
		s.Logger.Warn().Err(err).Msg("cannot create markdown renderer")
		fmt.Fprintln(s.Out, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		s.Logger.Warn().Err(err).Msg("cannot render markdown")
		fmt.Fprintln(s.Out, md)
		return
	}
	fmt.Fprint(s.Out, out)
}
