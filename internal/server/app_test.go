package server

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/dmitrijs2005/zkpauth/internal/logging"
	"github.com/dmitrijs2005/zkpauth/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()

	app, err := NewApp(cfg)
	require.NoError(t, err)
	assert.NotNil(t, app.authService)
	assert.Same(t, cfg, app.config)
}

func TestRun_ListenErrorIsReturned(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.EndpointAddrGRPC = "bad address"

	app, err := NewApp(cfg)
	require.NoError(t, err)

	assert.Error(t, app.Run(context.Background()))
}

func TestWarnInsecureConfig(t *testing.T) {
	tests := []struct {
		name     string
		secret   string
		wantWarn bool
	}{
		{"default secret", config.DefaultSecretKey, true},
		{"overridden secret", "rotated", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.LoadDefaults()
			cfg.SecretKey = tt.secret

			var buf bytes.Buffer
			app := &App{config: cfg, logger: logging.NewJSONLogger(&buf, slog.LevelDebug)}
			app.warnInsecureConfig(context.Background())

			if tt.wantWarn {
				assert.Contains(t, buf.String(), `"level":"WARN"`)
				assert.Contains(t, buf.String(), "default secret key")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}
