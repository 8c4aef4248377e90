// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"github.com/cpavlidis/nx-monorepo/internal/core/domain"
)

// Executor defines the interface for running external commands.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Run executes the command synchronously with the process's standard streams.
	//
	// It returns an error if the command cannot be started or exits non-zero.
	Run(ctx context.Context, cmd domain.Command) error
}
