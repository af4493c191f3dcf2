// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

// Logger writes a message with optional structured fields.
type Logger interface {
	Log(msg string, fields ...map[string]interface{}) error
}

// log is a nil-safe helper for optional loggers.
func log(logger Logger, msg string, fields map[string]interface{}) {
	if logger != nil {
		_ = logger.Log(msg, fields)
	}
}
