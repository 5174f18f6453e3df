package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rgehrsitz/contribgo/internal/calculation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ calculation.Logger = Adapter{}

func TestAdapter_JSONLevels(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewAdapter(New(&buf, false, true), "engine")

	adapter.Debugf("hidden %d", 1)
	adapter.Infof("planned %d periods", 20)
	adapter.Warnf("fallback to %d", 2026)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2, "debug should be filtered at info level")

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "info", first["level"])
	assert.Equal(t, "planned 20 periods", first["message"])
	assert.Equal(t, "engine", first["component"])

	var second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "warn", second["level"])
}

func TestAdapter_DebugEnabled(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewAdapter(New(&buf, true, true), "engine")

	adapter.Debugf("visible")
	adapter.Errorf("boom")

	out := buf.String()
	assert.Contains(t, out, `"level":"debug"`)
	assert.Contains(t, out, `"level":"error"`)
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false, false)
	log.Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
	assert.NotContains(t, buf.String(), `"level"`)
}
