package spinner

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// StartSpinner starts a terminal spinner on stderr with the given message.
// Returns a stop function to halt and clear the spinner.
//
// Usage: assign the spinner to a 'stop' variable, run some code, then call stop().
// i.e.:
//
//	stop := spinner.StartSpinner("Your message here ")
//	err := lib.SomeOperation()
//	stop()
//	if err != nil { return err }
func StartSpinner(message string) func() {
	// stdout is reserved for command output
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + message
	s.Start()

	return s.Stop
}
