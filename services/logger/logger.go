package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Level định nghĩa các mức độ log
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// Logger interface định nghĩa các phương thức logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// DefaultLogger implement Logger interface sử dụng log package
type DefaultLogger struct {
	level Level
	out   *log.Logger
}

// NewDefaultLogger tạo một instance mới của DefaultLogger ghi ra stderr
func NewDefaultLogger(level Level) *DefaultLogger {
	return NewWriterLogger(level, os.Stderr)
}

// NewWriterLogger tạo logger ghi ra writer tùy ý
func NewWriterLogger(level Level, w io.Writer) *DefaultLogger {
	return &DefaultLogger{
		level: level,
		out:   log.New(w, "", log.Ldate|log.Ltime|log.Lshortfile),
	}
}

// NewFileLogger ghi log vừa ra stderr vừa ra file logs/app-YYYY-MM-DD.log
func NewFileLogger(level Level, dir string) (*DefaultLogger, io.Closer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, nil, err
	}
	name := filepath.Join(dir, fmt.Sprintf("app-%s.log", time.Now().Format("2006-01-02")))
	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, err
	}
	return NewWriterLogger(level, io.MultiWriter(os.Stderr, f)), f, nil
}

// ParseLevel đọc mức log từ chuỗi, mặc định là info
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// Info log thông tin
func (l *DefaultLogger) Info(format string, v ...interface{}) {
	l.print(InfoLevel, "[INFO] ", format, v...)
}

// Warn log cảnh báo
func (l *DefaultLogger) Warn(format string, v ...interface{}) {
	l.print(WarnLevel, "[WARN] ", format, v...)
}

// Error log lỗi
func (l *DefaultLogger) Error(format string, v ...interface{}) {
	l.print(ErrorLevel, "[ERROR] ", format, v...)
}

// Debug log debug
func (l *DefaultLogger) Debug(format string, v ...interface{}) {
	l.print(DebugLevel, "[DEBUG] ", format, v...)
}

func (l *DefaultLogger) print(level Level, prefix, format string, v ...interface{}) {
	if l.level > level {
		return
	}
	l.out.Output(3, prefix+fmt.Sprintf(format, v...))
}

// NopLogger bỏ qua mọi log
type NopLogger struct{}

func (NopLogger) Info(string, ...interface{})  {}
func (NopLogger) Warn(string, ...interface{})  {}
func (NopLogger) Error(string, ...interface{}) {}
func (NopLogger) Debug(string, ...interface{}) {}
