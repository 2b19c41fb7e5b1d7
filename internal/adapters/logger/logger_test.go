package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/distroeng/eebuild/internal/adapters/logger"
)

func TestLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithWriter(&buf)

	l.Info("configuring build")

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "configuring build")
}

func TestLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithWriter(&buf)

	l.Error(errors.New("configure command failed"))

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "configure command failed")
}
