package domain

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// StepState is the last known state of a recorded step.
type StepState string

const (
	// StepRunning marks a step that was started but never finished.
	StepRunning StepState = "running"
	// StepDone marks a step that finished successfully.
	StepDone StepState = "done"
	// StepCached marks a step that had nothing to do.
	StepCached StepState = "cached"
	// StepFailed marks a step that finished with an error.
	StepFailed StepState = "failed"
)

// StepRecord summarises one recorded step of a command.
type StepRecord struct {
	Name  string    `json:"name"`
	State StepState `json:"state"`
	Error string    `json:"error,omitempty"`
	Logs  []string  `json:"logs,omitempty"`
}
