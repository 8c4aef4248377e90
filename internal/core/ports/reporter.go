package ports

// Reporter is the console sink for progress messages shown to the user.
//
//go:generate go run go.uber.org/mock/mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// Step announces work that is about to start.
	Step(msg string)
	// Success reports a completed step.
	Success(msg string)
	// Info reports a neutral note, such as work that was not needed.
	Info(msg string)
	// Warn reports a non-fatal problem.
	Warn(msg string)
	// Fail reports a step that could not be completed.
	Fail(msg string)
}
