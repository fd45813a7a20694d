// Package output provides the verbose diagnostics logger.
package output

import (
	"os"

	"github.com/charmbracelet/log"
)

// Logger is the shared diagnostics logger. It writes to stderr and stays
// silent below warn level, so the rewrite report on stdout remains the
// primary user-facing output.
var Logger = log.NewWithOptions(os.Stderr, log.Options{
	Level:           log.WarnLevel,
	ReportTimestamp: false,
})

// SetupLogging lowers the logger to debug level when verbose is set.
func SetupLogging(verbose bool) {
	if verbose {
		Logger.SetLevel(log.DebugLevel)
		Logger.SetReportTimestamp(true)
	}
}
