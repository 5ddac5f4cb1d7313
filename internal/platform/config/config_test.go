package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Setenv("CLASSIFIER_TIMEOUT", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 15*time.Second, cfg.ClassifierTimeout)
	assert.Equal(t, int64(5*1024*1024), cfg.ImportMaxBytes)
	assert.Equal(t, 10000, cfg.ImportMaxRows)
	assert.True(t, cfg.LearnRules)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	viper.Reset()
	t.Setenv("CLASSIFIER_TIMEOUT", "3s")
	t.Setenv("IMPORT_MAX_ROWS", "500")
	t.Setenv("CATEGORISATION_LEARN_RULES", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 3*time.Second, cfg.ClassifierTimeout)
	assert.Equal(t, 500, cfg.ImportMaxRows)
	assert.False(t, cfg.LearnRules)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(" , "))
	assert.Equal(t, []string{"x"}, splitList("x,"))
}
