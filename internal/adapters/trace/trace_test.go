package trace_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/distroeng/eebuild/internal/adapters/trace"
	"github.com/distroeng/eebuild/internal/core/domain"
	"github.com/distroeng/eebuild/internal/core/ports/mocks"
)

func TestExecutor_PrintsWithoutRunning(t *testing.T) {
	var out bytes.Buffer
	e := trace.NewExecutor(&out)

	cmd := &domain.Command{Line: "exit 1", Dir: "/nonexistent"}
	err := e.Execute(context.Background(), cmd, nil, nil)

	require.NoError(t, err, "a dry run reports success even for a failing command")
	assert.Equal(t, "exit 1\n", out.String())
}

func TestWorkspace_LogsOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).Times(2)

	w := trace.NewWorkspace(logger)
	require.NoError(t, w.Remove("/obj"))
	require.NoError(t, w.Ensure("/obj"))
}
