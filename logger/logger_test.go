package logger

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLogger_ConsoleLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, false)
	l.Zap().Debug("hidden detail")
	l.Logf("built %d slides", 15)
	l.Close()

	assert.NotContains(t, buf.String(), "hidden detail")
	assert.Contains(t, buf.String(), "built 15 slides")
	assert.Contains(t, buf.String(), "INFO")

	buf.Reset()
	verbose := NewLogger(&buf, true)
	verbose.Named("layout").Debug("image unresolved", zap.String("ref", "viz1.png"))
	assert.Contains(t, buf.String(), "DEBUG")
	assert.Contains(t, buf.String(), "layout")
	assert.Contains(t, buf.String(), "viz1.png")
}

func TestLogger_InitCreatesNumberedRunFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	date := time.Now().Format("2006-01-02")

	var buf bytes.Buffer
	first := NewLogger(&buf, false)
	require.NoError(t, first.Init(dir))
	assert.Equal(t, filepath.Join(dir, fmt.Sprintf("slidedeck_%s_1.log", date)), first.Path())
	first.Log("deck saved")
	first.Close()
	assert.Empty(t, first.Path())

	data, err := os.ReadFile(filepath.Join(dir, fmt.Sprintf("slidedeck_%s_1.log", date)))
	require.NoError(t, err)
	assert.Contains(t, string(data), "run started")
	assert.Contains(t, string(data), "deck saved")
	assert.Contains(t, string(data), "run finished")
	assert.Contains(t, buf.String(), "deck saved")

	second := NewLogger(&buf, false)
	require.NoError(t, second.Init(dir))
	defer second.Close()
	assert.Equal(t, filepath.Join(dir, fmt.Sprintf("slidedeck_%s_2.log", date)), second.Path())
}
