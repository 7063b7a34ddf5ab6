// Released under an MIT license. See LICENSE.

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/jsi/internal/system/config"
)

func TestDefaults(t *testing.T) {
	c, err := config.Parse([]byte("strict: true\n"))
	require.NoError(t, err)

	assert.True(t, c.Strict)
	assert.Equal(t, 10000, c.MaxDepth)
	assert.Zero(t, c.MaxSteps)

	l, err := c.Level()
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, l)
}

func TestParse(t *testing.T) {
	c, err := config.Parse([]byte("log-level: debug\nmax-depth: 50\nmax-steps: 1000\nhistory: /tmp/h\n"))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/h", c.History)
	assert.Equal(t, 50, c.MaxDepth)
	assert.Equal(t, int64(1000), c.MaxSteps)
}

func TestInvalid(t *testing.T) {
	for _, doc := range []string{
		"log-level: loud\n",
		"max-depth: -1\n",
		"max-steps: many\n",
	} {
		_, err := config.Parse([]byte(doc))
		assert.Error(t, err, doc)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	_, err := config.Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max-depth: 7\n"), 0o600))

	c, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, c.MaxDepth)
}
