package vectorapi

// StatusError marks a failure outcome.
const StatusError = "erro"

// Failure builds a normalized failure outcome. A zero code means the
// failure never reached the remote service (or carried no status).
func Failure(code int, detail any) map[string]any {
	outcome := map[string]any{
		"status":  StatusError,
		"detalhe": detail,
	}
	if code != 0 {
		outcome["codigo"] = code
	}
	return outcome
}

// IsFailure reports whether value is a failure outcome.
func IsFailure(value any) bool {
	outcome, ok := value.(map[string]any)
	if !ok {
		return false
	}
	return outcome["status"] == StatusError
}
