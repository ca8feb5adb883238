package ports

import (
	"context"
	"io"

	"go.trai.ch/jig/internal/core/domain"
)

// Executor defines the interface for running external commands.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Run starts the command and waits for it to finish.
	//
	// A non-zero exit is reported as domain.ErrCommandFailed with the
	// child's exit status attached as "exit_code" metadata. The command's
	// semantics are opaque to the runner; nothing it prints is interpreted.
	Run(ctx context.Context, command *domain.Command, stdout, stderr io.Writer) error
}
