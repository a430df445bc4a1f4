package triadchain

import (
	"fmt"
	"os"
	"runtime/debug"

	jsoniter "github.com/json-iterator/go"
	"github.com/mborders/logmatic"
)

const defaultLogLevel = 2

// Logs to the terminal. Level options are: 0 fatal error (exits), 1 serious error (stack dump), 2 warning, 3 debug, 4 info, 5 trace (stack dump).
// Anything above the configured logLevel is dropped so that a normal run only prints the visualization.
func LogCLI(message interface{}, level int) {
	if level > logLevel() {
		return
	}
	l := logmatic.NewLogger()
	l.SetLevel(logmatic.TRACE)
	message = fmt.Sprint(message)
	switch level {
	case 5:
		debug.PrintStack()
		l.Trace("%v", message)
	case 4:
		l.Info("%v", message)
	case 3:
		l.Debug("%v", message)
	case 2:
		l.Warn("%v", message)
	case 1:
		debug.PrintStack()
		l.Error("%v", message)
	case 0:
		l.Error("%v", message)
		os.Exit(1)
	}
}

func logLevel() int {
	if conf == nil {
		return defaultLogLevel
	}
	return conf.GetInt("logLevel")
}

// LogSettings dumps the effective configuration at trace level.
func LogSettings() {
	if conf == nil || logLevel() < 5 {
		return
	}
	settings, err := jsoniter.MarshalToString(conf.AllSettings())
	if err != nil {
		LogCLI(err, 2)
		return
	}
	LogCLI("settings: "+settings, 5)
}
