package log

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/op/go-logging"
)

// Level is a logging verbosity, from most to least verbose
type Level int

const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

var levels = []struct {
	name    string
	backend logging.Level
}{
	Debug:   {"debug", logging.DEBUG},
	Info:    {"info", logging.INFO},
	Notice:  {"notice", logging.NOTICE},
	Warning: {"warning", logging.WARNING},
	Error:   {"error", logging.ERROR},
}

// String returns the name used in config files
func (l Level) String() string {
	if l < Debug || l > Error {
		return fmt.Sprintf("level(%d)", int(l))
	}
	return levels[l].name
}

var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

var (
	mu      sync.Mutex
	backend logging.LeveledBackend
	current = Notice
)

// Logger is a named leveled logger. Renderer workers share loggers, so
// implementations must be safe for concurrent use.
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New returns the logger for a module; the module name prefixes every line.
func New(module string) Logger {
	return logging.MustGetLogger(module)
}

// SetSink sends all log output to sink, keeping the current level.
func SetSink(sink io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	formatted := logging.NewBackendFormatter(logging.NewLogBackend(sink, "", 0), format)
	backend = logging.AddModuleLevel(formatted)
	backend.SetLevel(levels[current].backend, "")
	logging.SetBackend(backend)
}

// SetLevel hides messages below level for every module. Out of range
// levels are ignored.
func SetLevel(level Level) {
	if level < Debug || level > Error {
		return
	}

	mu.Lock()
	defer mu.Unlock()
	current = level
	backend.SetLevel(levels[level].backend, "")
}

// ParseLevel maps a config file level name to a Level. The empty name and
// unknown names yield Notice; unknown names also return an error.
func ParseLevel(name string) (Level, error) {
	if name == "" {
		return Notice, nil
	}
	if name == "warn" {
		return Warning, nil
	}
	for l, entry := range levels {
		if entry.name == name {
			return Level(l), nil
		}
	}
	return Notice, fmt.Errorf("log: unknown level %q", name)
}

// Printer adapts a Logger to the Printf interface used for progress output.
type Printer struct {
	Logger Logger
}

// Printf logs a progress message at info level.
func (p Printer) Printf(format string, args ...interface{}) {
	p.Logger.Infof(format, args...)
}

func init() {
	SetSink(os.Stderr)
}
