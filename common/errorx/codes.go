package errorx

// Error code layout:
// 0       - success
// 1xxx    - generic errors
// 3xxx    - activities service errors

const (
	CodeSuccess       = 0    // success
	CodeInternalError = 1000 // internal server error
	CodeInvalidParams = 1001 // request validation failed
	CodeNotFound      = 1004 // resource missing

	// Activities service 3001-3010
	CodeActivityNotFound = 3001 // referenced activity is not in the registry
	CodeAlreadySignedUp  = 3002 // email already in the participant list
	CodeNotRegistered    = 3003 // email not in the participant list
)

// codeMessages holds the default client-facing message per code. The activity
// messages are load-bearing: the frontend and the test-suite match on
// "Activity not found", "already signed up" and "not registered".
var codeMessages = map[int]string{
	CodeSuccess:          "success",
	CodeInternalError:    "internal server error",
	CodeInvalidParams:    "request validation failed",
	CodeNotFound:         "resource not found",
	CodeActivityNotFound: "Activity not found",
	CodeAlreadySignedUp:  "Student is already signed up",
	CodeNotRegistered:    "Student is not registered for this activity",
}

// GetMessage returns the default message for a code.
func GetMessage(code int) string {
	if msg, ok := codeMessages[code]; ok {
		return msg
	}
	return "unknown error"
}
