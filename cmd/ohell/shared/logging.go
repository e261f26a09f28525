package shared

import (
	"io"

	"github.com/charmbracelet/log"
)

// SetupFileLogger configures a timestamped logger writing to w. The TUI owns
// the terminal, so interactive commands log to a file.
func SetupFileLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "ohell",
		Level:           level,
	})
}
