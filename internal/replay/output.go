package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// WriteText prints one line per frame, then one line per failed expectation.
func WriteText(w io.Writer, results []Result) error {
	for _, r := range results {
		line := fmt.Sprintf("#%d t=%.3f top=%s click=%s drag=%s hovered=[%s] contains=[%s] clicked=%s started=%s dragged=%s ended=%s",
			r.Frame, r.Time,
			orDash(r.Top), orDash(r.HitClick), orDash(r.HitDrag),
			strings.Join(r.Hovered, " "), strings.Join(r.ContainsPointer, " "),
			clicked(r), orDash(r.DragStarted), orDash(r.Dragged), orDash(r.DragEnded))
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		for _, f := range r.Failures {
			if _, err := fmt.Fprintf(w, "#%d FAIL %s\n", r.Frame, f); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteJSON prints one JSON object per frame.
func WriteJSON(w io.Writer, results []Result) error {
	enc := json.NewEncoder(w)
	for _, r := range results {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func clicked(r Result) string {
	if r.Clicked == "" {
		return "-"
	}
	if r.ClickCount > 1 {
		return fmt.Sprintf("%s(x%d)", r.Clicked, r.ClickCount)
	}
	return r.Clicked
}
