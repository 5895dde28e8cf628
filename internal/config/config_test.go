package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apiclient "github.com/iudanet/sdgb/internal/client/api"
	"github.com/iudanet/sdgb/internal/crypto"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, apiclient.DefaultBaseURL, cfg.Server.BaseURL)
	assert.Equal(t, "MaimaiChn", cfg.Server.Salt)
	assert.Equal(t, "B44df8yT", cfg.Server.ObfuscateParam)
	assert.Equal(t, crypto.DefaultTransportKey, cfg.Server.AESKey)
	assert.Equal(t, "1.50", cfg.Server.EncodingVersion)
	assert.Equal(t, "1.51.00", cfg.Server.GameVersion)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
	assert.Equal(t, 3, cfg.Server.MaxAttempts)
	assert.Equal(t, 2*time.Second, cfg.Server.RetryDelay)
	assert.True(t, cfg.Server.InsecureSkipVerify)
	assert.Equal(t, "A63E01C2805", cfg.Client.Keychip)
	assert.Equal(t, 1403, cfg.Client.PlaceID)
	assert.Equal(t, BackendBolt, cfg.Recovery.Backend)
	assert.Equal(t, "sdgb.db", cfg.Recovery.Path)
	assert.Equal(t, "dev", cfg.Log.Env)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  base_url: http://127.0.0.1:9000/Maimai2Servlet/
  timeout: 5s
  max_attempts: 5
client:
  place_id: 2000
  rating_offset: 12
recovery:
  backend: sqlite
  path: /tmp/sdgb.sqlite
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("SDGB_SERVER_MAX_ATTEMPTS", "7")
	t.Setenv("SDGB_LOG_ENV", "prod")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:9000/Maimai2Servlet/", cfg.Server.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Server.Timeout)
	assert.Equal(t, 7, cfg.Server.MaxAttempts, "env overrides file")
	assert.Equal(t, 2000, cfg.Client.PlaceID)
	assert.Equal(t, 12, cfg.Client.RatingOffset)
	assert.Equal(t, "A63E01C2805", cfg.Client.Keychip, "unset keys keep defaults")
	assert.Equal(t, BackendSQLite, cfg.Recovery.Backend)
	assert.Equal(t, "prod", cfg.Log.Env)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_UnknownBackend(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SDGB_RECOVERY_BACKEND", "mongo")

	_, err := Load(viper.New(), "")
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server:   Server{BaseURL: "http://x/", MaxAttempts: 1},
			Recovery: Recovery{Backend: BackendRedis},
		}
	}

	cfg := valid()
	assert.NoError(t, cfg.Validate())

	cfg = valid()
	cfg.Server.BaseURL = ""
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Server.MaxAttempts = 0
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Server.RateLimit = -1
	assert.Error(t, cfg.Validate())
}

func TestConfig_Conversions(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	api := cfg.API()
	assert.Equal(t, apiclient.DefaultConfig(), api)

	sess := cfg.Session(10086)
	assert.Equal(t, int64(10086), sess.UserID)
	assert.Equal(t, "1.51.00", sess.GameVersion)
	assert.Equal(t, cfg.Client.Keychip, sess.Identity.Keychip)
	assert.Equal(t, cfg.Client.RegionName, sess.Identity.RegionName)

	d := cfg.DeliveryClient()
	assert.Equal(t, "http://at.sys-allnet.cn/net/delivery/instruction", d.Endpoint)
	assert.Equal(t, "A63E01C2805", d.ClientID)
	assert.Equal(t, "SDGB", d.TitleID)
}
