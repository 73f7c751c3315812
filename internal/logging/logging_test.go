package logging_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sagikazarmark/upset-launcher/internal/logging"
)

func TestNew_Silent(t *testing.T) {
	var buf bytes.Buffer

	logger := logging.New(logging.Config{Output: &buf})
	logger.Info("hello")
	logger.Debug("hello")

	assert.Empty(t, buf.String())
}

func TestNew_Debug(t *testing.T) {
	var buf bytes.Buffer

	logger := logging.New(logging.Config{Output: &buf, Debug: true})
	logger.Debug("starting test run", "dir", "/work")

	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), `msg="starting test run"`)
	assert.Contains(t, buf.String(), "component=upset-launcher")
	assert.Contains(t, buf.String(), "dir=/work")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer

	logger := logging.New(logging.Config{Output: &buf, Debug: true, JSON: true})
	logger.Debug("starting test run")

	assert.Contains(t, buf.String(), `"msg":"starting test run"`)
}
