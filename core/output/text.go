package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// textFormatter renders a Summary as plain text for the CLI.
type textFormatter struct{}

func (f *textFormatter) Format() Format {
	return FormatText
}

func (f *textFormatter) Render(w io.Writer, s *Summary) error {
	lines := []string{
		s.Headline,
		"  " + s.Equipment,
		"  " + s.DevicesLine,
	}
	if s.ServicesLine != "" {
		lines = append(lines, "  "+s.ServicesLine)
	}
	if s.Note != "" {
		lines = append(lines, "  "+s.Note)
	}
	lines = append(lines, "", s.CallToAction)

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// jsonFormatter renders a Summary as indented JSON.
type jsonFormatter struct{}

func (f *jsonFormatter) Format() Format {
	return FormatJSON
}

func (f *jsonFormatter) Render(w io.Writer, s *Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
