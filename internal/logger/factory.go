package logger

import (
	"github.com/charmbracelet/log"
)

// Setup configures the package level charm logger used across typehint.
// Debug mode adds timestamps and caller info; otherwise only warnings and
// errors are shown.
func Setup(debug bool) {
	log.SetOutput(Output)
	if debug {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
		log.SetReportCaller(true)
		return
	}
	log.SetLevel(log.WarnLevel)
	log.SetReportTimestamp(false)
	log.SetReportCaller(false)
}
