package utils

import (
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewApplicationLogger(t *testing.T) {
	logger, loggerError := NewApplicationLogger()
	if loggerError != nil {
		t.Fatalf("NewApplicationLogger: %v", loggerError)
	}
	if !logger.Core().Enabled(zapcore.WarnLevel) {
		t.Fatalf("expected warnings to be enabled")
	}
	if logger.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug messages to be disabled")
	}
}

func TestConsoleEncoderWritesPlainMessages(t *testing.T) {
	encoder := zapcore.NewConsoleEncoder(consoleEncoderConfig())
	entry := zapcore.Entry{Level: zapcore.WarnLevel, Message: "skipping data.bin (binary content)"}
	encoded, encodeError := encoder.EncodeEntry(entry, []zapcore.Field{zap.String("reason", "binary")})
	if encodeError != nil {
		t.Fatalf("encode: %v", encodeError)
	}
	written := encoded.String()
	if !strings.HasPrefix(written, "skipping data.bin (binary content)") {
		t.Fatalf("expected message first, got %q", written)
	}
	if strings.Contains(written, "WARN") {
		t.Fatalf("expected level key to be suppressed, got %q", written)
	}
}
