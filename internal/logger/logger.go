package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

type LogLevel int

type Logger struct {
	name     string
	logLevel LogLevel
	logDir   string
	logger   *log.Logger
}

const (
	ERROR LogLevel = iota
	INFO
	DEBUG
)

var (
	registryMu sync.RWMutex
	registry   = map[string]*Logger{}
)

func ParseLevel(level string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "error", "":
		return ERROR, nil
	case "info":
		return INFO, nil
	case "debug":
		return DEBUG, nil
	}
	return ERROR, fmt.Errorf("unknown log level %q", level)
}

func (l LogLevel) String() string {
	switch l {
	case ERROR:
		return "error"
	case INFO:
		return "info"
	case DEBUG:
		return "debug"
	}
	return fmt.Sprintf("LogLevel(%d)", int(l))
}

// Get returns the registered logger, or a discarding one so callers never
// have to nil-check.
func Get(name string) *Logger {
	registryMu.RLock()
	defer registryMu.RUnlock()

	if ln, ok := registry[name]; ok {
		return ln
	}

	return Discard(name)
}

// New registers a logger writing to the daily file in logDir. The first
// registration of a name wins.
func New(name string, logDir string, logLevel LogLevel) (*Logger, error) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if logger, exists := registry[name]; exists {
		return logger, nil
	}

	logger := &Logger{name: name, logLevel: logLevel, logDir: logDir}
	if err := logger.init(); err != nil {
		return nil, err
	}

	registry[name] = logger
	return logger, nil
}

// NewWriter registers a logger that writes to w instead of a log file.
func NewWriter(name string, w io.Writer, logLevel LogLevel) *Logger {
	registryMu.Lock()
	defer registryMu.Unlock()

	logger := &Logger{
		name:     name,
		logLevel: logLevel,
		logger:   log.New(w, "", log.Ldate|log.Ltime),
	}
	registry[name] = logger
	return logger
}

func Discard(name string) *Logger {
	return &Logger{name: name, logLevel: ERROR, logger: log.New(io.Discard, "", 0)}
}

func (l *Logger) init() error {
	if err := os.MkdirAll(l.logDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02")

	logFile, err := os.OpenFile(
		filepath.Join(l.logDir, fmt.Sprintf("fcn-%s.log", timestamp)),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY,
		0644,
	)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	l.logger = log.New(logFile, "", log.Ldate|log.Ltime|log.Lshortfile)

	return nil
}

func (l *Logger) Name() string {
	return l.name
}

func (l *Logger) Info(format string, v ...any) {
	if l.logLevel >= INFO {
		l.output("INFO", format, v...)
	}
}

func (l *Logger) Debug(format string, v ...any) {
	if l.logLevel >= DEBUG {
		l.output("DEBUG", format, v...)
	}
}

func (l *Logger) Error(format string, v ...any) {
	if l.logLevel >= ERROR {
		l.output("ERROR", format, v...)
	}
}

func (l *Logger) output(level, format string, v ...any) {
	// calldepth 3 attributes the line to the caller of Info/Debug/Error.
	_ = l.logger.Output(3, fmt.Sprintf("%s: [%s] %s", level, l.name, fmt.Sprintf(format, v...)))
}

func ResetRegistry() {
	registryMu.Lock()
	defer registryMu.Unlock()

	registry = map[string]*Logger{}
}
