package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/logger"
)

func TestParseLogLevel(t *testing.T) {
	tests := map[string]logger.LogLevel{
		"silent": logger.Silent,
		"ERROR":  logger.Error,
		" info ": logger.Info,
		"warn":   logger.Warn,
		"":       logger.Warn,
		"bogus":  logger.Warn,
	}

	for in, want := range tests {
		assert.Equal(t, want, parseLogLevel(in), "level %q", in)
	}
}

func TestEnsureDatabase_SkipsNonURLDSN(t *testing.T) {
	assert.NoError(t, ensureDatabase("host=localhost user=postgres dbname=linkhub"))
	assert.NoError(t, ensureDatabase("postgres://localhost:5432"))
}
