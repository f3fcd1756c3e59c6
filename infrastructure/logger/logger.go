package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Logger interface {
	Info(msg string)
	Error(msg string, err error)
	Warning(msg string)
	Debug(msg string)
	Close()
}

type LogData struct {
	Timestamp string `json:"timestamp"`
	RunID     string `json:"run_id"`
	Level     string `json:"level"`
	File      string `json:"file"`
	Function  string `json:"function"`
	Message   string `json:"message"`
	Err       string `json:"err,omitempty"`
}

type Options struct {
	Dir    string
	Prefix string
	Debug  bool
}

type fileLogger struct {
	mu      sync.Mutex
	out     io.WriteCloser
	encoder *json.Encoder
	runID   string
	debug   bool
}

// NewFileLogger opens <dir>/<prefix>_<timestamp>.json and tags every entry
// with a fresh run id.
func NewFileLogger(opts Options) (Logger, error) {
	if opts.Dir == "" {
		opts.Dir = "logs"
	}
	if opts.Prefix == "" {
		opts.Prefix = "comment_export"
	}

	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		return nil, fmt.Errorf("falha ao criar o diretório de log '%s': %w", opts.Dir, err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	logFilePath := filepath.Join(opts.Dir, fmt.Sprintf("%s_%s.json", opts.Prefix, timestamp))

	file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir/criar o arquivo de log '%s': %w", logFilePath, err)
	}

	return newLogger(file, opts.Debug), nil
}

func newLogger(out io.WriteCloser, debug bool) *fileLogger {
	return &fileLogger{
		out:     out,
		encoder: json.NewEncoder(out),
		runID:   uuid.NewString(),
		debug:   debug,
	}
}

func (l *fileLogger) RunID() string {
	return l.runID
}

func (l *fileLogger) writeLogInternal(level string, msg string, errIn error, skip int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.out == nil {
		fmt.Fprintf(os.Stderr, "Logger está fechado, não é possível escrever log: %s\n", msg)
		return
	}

	shortFileName, funcName := "???", "???"
	if pc, filePath, _, ok := runtime.Caller(skip); ok {
		shortFileName = filepath.Base(filePath)
		if fn := runtime.FuncForPC(pc); fn != nil {
			parts := strings.Split(fn.Name(), ".")
			funcName = parts[len(parts)-1]
		}
	}

	logEntry := LogData{
		Timestamp: time.Now().Format(time.RFC3339),
		RunID:     l.runID,
		Level:     level,
		File:      shortFileName,
		Function:  funcName,
		Message:   msg,
	}

	if errIn != nil {
		logEntry.Err = errIn.Error()
	}

	if err := l.encoder.Encode(logEntry); err != nil {
		fmt.Fprintf(os.Stderr, "Falha ao escrever log no arquivo: %v\n", err)
	}
}

func (l *fileLogger) Info(msg string) {
	l.writeLogInternal("INFO", msg, nil, 2)
}

func (l *fileLogger) Error(msg string, err error) {
	l.writeLogInternal("ERROR", msg, err, 2)
}

func (l *fileLogger) Warning(msg string) {
	l.writeLogInternal("WARNING", msg, nil, 2)
}

func (l *fileLogger) Debug(msg string) {
	if !l.debug {
		return
	}
	l.writeLogInternal("DEBUG", msg, nil, 2)
}

func (l *fileLogger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.out != nil {
		if err := l.out.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Erro ao fechar arquivo de log: %v\n", err)
		}
		l.out = nil
	}
}
