package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("STORAGE_DRIVER", "memory")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 5*time.Minute, cfg.OTP.TTL)
	assert.Equal(t, 24*time.Hour, cfg.JWT.TTL)
	assert.Equal(t, int64(5*1024*1024), cfg.Storage.ChunkSize)
	assert.Equal(t, 32, cfg.Storage.MaxCompose)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Server.AllowedOrigins)
	assert.False(t, cfg.UsesFirebase())
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("STORAGE_DRIVER", "memory")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidateFirebaseSettings(t *testing.T) {
	cfg := Config{
		JWT:     JWTConfig{Secret: "s"},
		Store:   StoreConfig{Driver: StoreFirestore},
		Storage: StorageConfig{Driver: StorageGCS, ChunkSize: 1, MaxCompose: 32},
		OTP:     OTPConfig{Store: OTPStoreFirestore},
	}
	assert.ErrorContains(t, cfg.Validate(), "FIREBASE_PROJECT_ID")

	cfg.Firebase.ProjectID = "p"
	assert.ErrorContains(t, cfg.Validate(), "FIREBASE_STORAGE_BUCKET")

	cfg.Firebase.StorageBucket = "b"
	assert.NoError(t, cfg.Validate())
}

func TestValidateRedisOTPStore(t *testing.T) {
	cfg := Config{
		JWT:     JWTConfig{Secret: "s"},
		Store:   StoreConfig{Driver: StoreMemory},
		Storage: StorageConfig{Driver: StorageMemory, ChunkSize: 1, MaxCompose: 32},
		OTP:     OTPConfig{Store: OTPStoreRedis},
	}
	assert.ErrorContains(t, cfg.Validate(), "REDIS")

	cfg.Redis.Address = "localhost:6379"
	assert.NoError(t, cfg.Validate())
}
