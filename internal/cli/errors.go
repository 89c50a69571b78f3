package cli

// ExitError carries a specific process exit code up to main, so os.Exit
// happens only at the process boundary.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}
