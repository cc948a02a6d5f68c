package errors

// ErrorCode identifies a failure category in API responses
type ErrorCode int32

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1003

	ErrorCode_UPLOAD_FAILED     ErrorCode = 2000
	ErrorCode_STORAGE_FAILED    ErrorCode = 2001
	ErrorCode_MISSING_VIDEO_URL ErrorCode = 2002

	ErrorCode_ANALYSIS_FAILED    ErrorCode = 3000
	ErrorCode_ENGINE_UNAVAILABLE ErrorCode = 3001
	ErrorCode_MALFORMED_RESULT   ErrorCode = 3002

	ErrorCode_SESSION_NOT_FOUND ErrorCode = 4000
	ErrorCode_SESSION_NOT_READY ErrorCode = 4001
	ErrorCode_SESSION_INVALID   ErrorCode = 4002

	ErrorCode_REPORT_EXPORT_FAILED ErrorCode = 5000
)

var codeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:              "HTTP_OK",
	ErrorCode_INTERNAL:             "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:     "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:            "NOT_FOUND",
	ErrorCode_INVALID_PAYLOAD:      "INVALID_PAYLOAD",
	ErrorCode_UPLOAD_FAILED:        "UPLOAD_FAILED",
	ErrorCode_STORAGE_FAILED:       "STORAGE_FAILED",
	ErrorCode_MISSING_VIDEO_URL:    "MISSING_VIDEO_URL",
	ErrorCode_ANALYSIS_FAILED:      "ANALYSIS_FAILED",
	ErrorCode_ENGINE_UNAVAILABLE:   "ENGINE_UNAVAILABLE",
	ErrorCode_MALFORMED_RESULT:     "MALFORMED_RESULT",
	ErrorCode_SESSION_NOT_FOUND:    "SESSION_NOT_FOUND",
	ErrorCode_SESSION_NOT_READY:    "SESSION_NOT_READY",
	ErrorCode_SESSION_INVALID:      "SESSION_INVALID",
	ErrorCode_REPORT_EXPORT_FAILED: "REPORT_EXPORT_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
