// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package log

import (
	"fmt"
	"io"
	"sort"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// SimpleLogger writes messages with structured fields using zap.
type SimpleLogger struct {
	logger *zap.Logger
}

// Log writes the message at info level.
// Fields are written in lexicographical order of their keys.
func (s *SimpleLogger) Log(msg string, fields ...map[string]interface{}) error {
	s.logger.Info(msg, zapFields(fields)...)
	return nil
}

// Error writes the message and error at error level, including a stack trace.
func (s *SimpleLogger) Error(msg string, err error, fields ...map[string]interface{}) {
	f := append(zapFields(fields), zap.Error(err), zap.Stack("stack"))
	s.logger.Error(msg, f...)
}

func (s *SimpleLogger) Sync() error {
	return s.logger.Sync()
}

func zapFields(fields []map[string]interface{}) []zap.Field {
	zf := []zap.Field{}
	for _, m := range fields {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			zf = append(zf, zap.Any(k, m[k]))
		}
	}
	return zf
}

// CheckFormat returns an error if the log format is not supported.
func CheckFormat(format string) error {
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("unknown log format %q, expecting %q or %q", format, FormatText, FormatJSON)
	}
	return nil
}

func NewSimpleLogger(w io.Writer, format string) *SimpleLogger {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.RFC3339TimeEncoder
	cfg.EncodeDuration = zapcore.StringDurationEncoder
	var encoder zapcore.Encoder
	if format == FormatJSON {
		encoder = zapcore.NewJSONEncoder(cfg)
	} else {
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(cfg)
	}
	return &SimpleLogger{
		logger: zap.New(zapcore.NewCore(encoder, zapcore.AddSync(w), zapcore.DebugLevel)),
	}
}
