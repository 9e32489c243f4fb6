// Package export contains the stateless side-effect adapters for a finished
// letter: clipboard copy, document download, and email composition. Adapters
// report success as a bool and never propagate failures; the letter text is
// left untouched so the caller can try another method.
package export

import (
	"log/slog"

	"github.com/atotto/clipboard"
)

// CopyToClipboard writes the letter text to the system clipboard. On
// platforms without a native clipboard API the library shells out to the
// platform copy command (pbcopy, xclip/xsel, clip.exe).
func CopyToClipboard(text string) bool {
	if err := clipboard.WriteAll(text); err != nil {
		slog.Warn("clipboard copy failed", "error", err)
		return false
	}
	return true
}

// ReadClipboard returns the clipboard contents where the platform supports
// reads.
func ReadClipboard() (string, bool) {
	s, err := clipboard.ReadAll()
	if err != nil {
		return "", false
	}
	return s, true
}
