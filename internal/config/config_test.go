package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validBase returns the minimum configuration that passes validation.
func validBase() *StructuredConfig {
	return &StructuredConfig{
		App:     App{TokenSignKey: "secret"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost:5432/vaantra"}},
		Server:  Server{HTTPAddress: "localhost:8080"},
	}
}

func TestParseEnv(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:9090")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "45s")
	t.Setenv("SERVER_STRICT_STATUS_CODES", "true")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://env:env@db:5432/vaantra")
	t.Setenv("STORAGE_FILES_UPLOAD_DIR", "/var/uploads")
	t.Setenv("APP_TOKEN_SIGN_KEY", "env-secret")
	t.Setenv("APP_TOKEN_DURATION", "24h")
	t.Setenv("ADAPTER_BASE_URL", "http://answers:8000")
	t.Setenv("WORKERS_ROLLUP_INTERVAL", "30m")

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, "0.0.0.0:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.True(t, cfg.Server.StrictStatusCodes)
	assert.Equal(t, "postgres://env:env@db:5432/vaantra", cfg.Storage.DB.DSN)
	assert.Equal(t, "/var/uploads", cfg.Storage.Files.UploadDir)
	assert.Equal(t, "env-secret", cfg.App.TokenSignKey)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "http://answers:8000", cfg.Adapter.BaseURL)
	assert.Equal(t, 30*time.Minute, cfg.Workers.RollupInterval)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("APP_TOKEN_DURATION", "not-a-duration")

	var cfg StructuredConfig
	assert.Error(t, parseEnv(&cfg))
}

func TestBuild_MergePrecedence(t *testing.T) {
	// mergo keeps the first non-zero value, so earlier sources win.
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			App:    App{TokenSignKey: "first"},
			Server: Server{HTTPAddress: "localhost:8080"},
		},
		&StructuredConfig{
			App:     App{TokenSignKey: "second", TokenIssuer: "from-second"},
			Storage: Storage{DB: DB{DSN: "postgres://localhost:5432/vaantra"}},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "first", cfg.App.TokenSignKey)
	assert.Equal(t, "from-second", cfg.App.TokenIssuer)
	assert.Equal(t, "postgres://localhost:5432/vaantra", cfg.Storage.DB.DSN)
}

func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, validBase())

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, defaultTokenDuration, cfg.App.TokenDuration)
	assert.Equal(t, defaultUploadDir, cfg.Storage.Files.UploadDir)
	assert.Equal(t, defaultAnswerBaseURL, cfg.Adapter.BaseURL)
	assert.Equal(t, defaultAnswerTimeout, cfg.Adapter.Timeout)
	assert.Equal(t, defaultRetryWait, cfg.Adapter.RetryWait)
	assert.Equal(t, defaultRollupInterval, cfg.Workers.RollupInterval)
	assert.Equal(t, "vaantra-server", cfg.App.TokenIssuer)
}

func TestBuild_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *StructuredConfig)
		want   error
	}{
		{
			name:   "missing address",
			mutate: func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			want:   errNoServerAddress,
		},
		{
			name:   "missing dsn",
			mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			want:   errNoDatabaseDSN,
		},
		{
			name:   "missing sign key",
			mutate: func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" },
			want:   errNoTokenSignKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validBase()
			tt.mutate(cfg)

			b := newConfigBuilder()
			b.configs = append(b.configs, cfg)

			_, err := b.build()
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"app": {"token_sign_key": "json-secret", "token_duration": "72h"},
		"storage": {"db": {"dsn": "postgres://json:json@db:5432/vaantra"}, "files": {"upload_dir": "/srv/uploads"}},
		"server": {"http_address": "localhost:3000", "request_timeout": "1m", "strict_status_codes": true},
		"adapter": {"base_url": "http://answers:8000", "timeout": "10s"},
		"workers": {"rollup_interval": "2h"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "json-secret", cfg.App.TokenSignKey)
	assert.Equal(t, 72*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "postgres://json:json@db:5432/vaantra", cfg.Storage.DB.DSN)
	assert.Equal(t, "/srv/uploads", cfg.Storage.Files.UploadDir)
	assert.Equal(t, "localhost:3000", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
	assert.True(t, cfg.Server.StrictStatusCodes)
	assert.Equal(t, 10*time.Second, cfg.Adapter.Timeout)
	assert.Equal(t, 2*time.Hour, cfg.Workers.RollupInterval)
}

func TestParseJSON_Errors(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	_, err = parseJSON(path)
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string form", input: `"1h30m"`, want: 90 * time.Minute},
		{name: "numeric nanoseconds", input: `1000000000`, want: time.Second},
		{name: "bad string", input: `"soon"`, wantErr: true},
		{name: "wrong type", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "localhost", input: "localhost:8080", want: "localhost:8080"},
		{name: "ip", input: "127.0.0.1:9090", want: "127.0.0.1:9090"},
		{name: "no port", input: "localhost", wantErr: true},
		{name: "bad port", input: "localhost:http", wantErr: true},
		{name: "negative port", input: "localhost:-1", wantErr: true},
		{name: "bad host", input: "not-an-ip:8080", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr.String())
		})
	}
}

func TestNetAddress_StringEmpty(t *testing.T) {
	var addr NetAddress
	assert.Empty(t, addr.String())
}
