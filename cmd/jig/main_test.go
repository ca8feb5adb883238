package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/jig/internal/app"
	"go.trai.ch/jig/internal/core/domain"
	"go.trai.ch/jig/internal/core/ports/mocks"
	"go.trai.ch/jig/internal/engine/dispatch"
	"go.uber.org/mock/gomock"
)

func newTestComponents(ctrl *gomock.Controller) (*app.Components, *mocks.MockManifestLoader) {
	manifests := mocks.NewMockManifestLoader(ctrl)
	settings := mocks.NewMockSettingsLoader(ctrl)
	environ := mocks.NewMockEnvironmentLoader(ctrl)
	executor := mocks.NewMockExecutor(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Error(gomock.Any()).AnyTimes()

	dispatcher := dispatch.NewDispatcher(executor, logger)
	application := app.New(manifests, settings, environ, dispatcher, logger)

	return &app.Components{
		App:    application,
		Logger: logger,
	}, manifests
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	components, _ := newTestComponents(ctrl)
	provider := func(_ context.Context) (*app.Components, error) {
		return components, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, domain.ExitOK, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component
// initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, error) {
		return nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, domain.ExitFailure, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_MissingManifest verifies the distinguished exit code for manifest
// errors.
func TestRun_MissingManifest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	components, manifests := newTestComponents(ctrl)
	manifests.EXPECT().LoadFile("jigfile").Return(nil, domain.ErrManifestNotFound)

	provider := func(_ context.Context) (*app.Components, error) {
		return components, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"build", "-f", "jigfile"}, stderr, provider)

	assert.Equal(t, domain.ExitUsage, exitCode)
}
