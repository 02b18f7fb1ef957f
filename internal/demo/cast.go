package demo

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// castHeader is the first line of an asciinema v2 recording.
type castHeader struct {
	Version int               `json:"version"`
	Width   int               `json:"width"`
	Height  int               `json:"height"`
	Title   string            `json:"title,omitempty"`
	Env     map[string]string `json:"env,omitempty"`
}

const clearScreen = "\x1b[2J\x1b[H"

// GenerateASCIICast writes frames as an asciinema v2 cast. Each frame
// redraws the whole screen after its delay.
func GenerateASCIICast(w io.Writer, frames []Frame, width, height int) error {
	enc := json.NewEncoder(w)

	header := castHeader{
		Version: 2,
		Width:   width,
		Height:  height,
		Title:   "simshare",
		Env:     map[string]string{"TERM": "xterm-256color"},
	}
	if err := enc.Encode(header); err != nil {
		return fmt.Errorf("writing cast header: %w", err)
	}

	var elapsed float64
	for i, f := range frames {
		elapsed += f.Delay.Seconds()
		// Terminals expect CRLF in raw output
		data := clearScreen + strings.ReplaceAll(f.Content, "\n", "\r\n")
		if err := enc.Encode([]any{elapsed, "o", data}); err != nil {
			return fmt.Errorf("writing frame %d: %w", i, err)
		}
	}
	return nil
}
