package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Clickhouse
	Kafka
	Metrics
	Name string `long:"name" env:"SYSCLIENT_TEST_NAME" default:"sync"`
}

func writeEnvFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		envFile string
		env     map[string]string
		args    []string
		wantOK  bool
		wantErr bool
		check   func(t *testing.T, cfg testConfig)
	}{
		{
			name:   "flags",
			args:   []string{"cmd", "--clickhouse-dsn", "clickhouse://ch:9000/db", "--kafka-broker", "k1:9092", "--kafka-broker", "k2:9092"},
			wantOK: true,
			check: func(t *testing.T, cfg testConfig) {
				assert.Equal(t, "clickhouse://ch:9000/db", cfg.DSN)
				assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Brokers)
				assert.True(t, cfg.Kafka.Enabled())
				assert.Equal(t, "sysclient-transactions", cfg.Topic)
				assert.Equal(t, time.Second, cfg.BatchTimeout)
				assert.Equal(t, ":2112", cfg.Addr)
			},
		},
		{
			name:    "dotenv file",
			envFile: "SYSCLIENT_CLICKHOUSE_DSN=clickhouse://env:9000/db\nSYSCLIENT_TEST_NAME=gateway\n",
			args:    []string{"cmd"},
			wantOK:  true,
			check: func(t *testing.T, cfg testConfig) {
				assert.Equal(t, "clickhouse://env:9000/db", cfg.DSN)
				assert.Equal(t, "gateway", cfg.Name)
				assert.False(t, cfg.Kafka.Enabled())
			},
		},
		{
			name:    "environment wins over dotenv file",
			envFile: "SYSCLIENT_CLICKHOUSE_DSN=clickhouse://file:9000/db\n",
			env:     map[string]string{"SYSCLIENT_CLICKHOUSE_DSN": "clickhouse://process:9000/db"},
			args:    []string{"cmd"},
			wantOK:  true,
			check: func(t *testing.T, cfg testConfig) {
				assert.Equal(t, "clickhouse://process:9000/db", cfg.DSN)
			},
		},
		{
			name:    "missing required",
			args:    []string{"cmd"},
			wantErr: true,
		},
		{
			name: "help",
			args: []string{"cmd", "--help"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SYSCLIENT_CLICKHOUSE_DSN", "")
			require.NoError(t, os.Unsetenv("SYSCLIENT_CLICKHOUSE_DSN"))
			t.Setenv("SYSCLIENT_TEST_NAME", "")
			require.NoError(t, os.Unsetenv("SYSCLIENT_TEST_NAME"))
			if tt.envFile != "" {
				t.Setenv(EnvFileVariable, writeEnvFile(t, tt.envFile))
			} else {
				t.Chdir(t.TempDir())
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			var cfg testConfig
			ok, err := Parse(&cfg, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestLoadEnv_ExplicitMissingFile(t *testing.T) {
	t.Setenv(EnvFileVariable, filepath.Join(t.TempDir(), "absent.env"))

	require.Error(t, LoadEnv())
}
