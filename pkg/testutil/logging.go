package testutil

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Tests log at trace level, but the output only surfaces under -v so a
// quiet `go test` run stays quiet.
func init() {
	logrus.SetLevel(logrus.TraceLevel)

	if !verboseRun() {
		logrus.StandardLogger().Out = io.Discard
	}
}

func verboseRun() bool {
	for _, arg := range os.Args {
		if arg == "-test.v=true" {
			return true
		}
	}

	return false
}
