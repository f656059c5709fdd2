package app

// Messages written to the log. Keeping them in one place keeps the wording
// consistent between the command and its tests.
const (
	// MsgResolutionFailed prefixes hard resolution failures.
	MsgResolutionFailed = "resolution failed"

	// MsgFallbackEmpty is logged when a failure is downgraded to an empty
	// mapping.
	MsgFallbackEmpty = "resolution failed, falling back to an empty mapping"

	// MsgInit opens the diagnostic trace.
	MsgInit = "init"

	// MsgRegisteringDefinitions precedes the per-variable trace.
	MsgRegisteringDefinitions = "registering definitions"

	// MsgRegisteringSystemVars is logged when the process environment is
	// merged into the result.
	MsgRegisteringSystemVars = "registering system environment variables"

	// MsgCompleted closes the diagnostic trace.
	MsgCompleted = "initialization completed"

	// MsgCopyFailed is returned when the clipboard cannot be written.
	MsgCopyFailed = "error copying output to the clipboard"
)
