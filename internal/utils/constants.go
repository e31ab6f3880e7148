package utils

const (
	// LoggerInitializationFailedMessageFormat reports a logger that could not be built.
	LoggerInitializationFailedMessageFormat = "initialize logger: %w"
	// ApplicationExecutionFailedMessage prefixes fatal errors returned by the CLI.
	ApplicationExecutionFailedMessage = "code2clipboard failed"
)
