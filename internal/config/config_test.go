package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("flags and defaults", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")

		conf, err := LoadConfig([]string{"-a", ":9090", "-d", "postgres://flags"})
		require.NoError(t, err)

		assert.Equal(t, ":9090", conf.RunAddress)
		assert.Equal(t, "postgres://flags", conf.DatabaseDSN)
		assert.Equal(t, "internal/db/migrations", conf.MigrationsDir)
		assert.Equal(t, "sandbox", conf.Mpesa.Environment)
		assert.InDelta(t, 5.0, conf.AuthRateLimit, 0.001)
		assert.Equal(t, 10, conf.AuthRateBurst)
		assert.Equal(t, uint(4), conf.Dispatch.Workers)
		assert.Equal(t, uint(50), conf.Dispatch.Batch)
		assert.Equal(t, "payments", conf.Kafka.Topic)
		assert.False(t, conf.EmailEnabled())
		assert.False(t, conf.WebhookEnabled())
		assert.False(t, conf.KafkaEnabled())
	})

	t.Run("env has priority", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("DATABASE_URI", "postgres://env")
		t.Setenv("RUN_ADDRESS", ":8000")
		t.Setenv("MPESA_SHORTCODE", "174379")
		t.Setenv("MPESA_ENVIRONMENT", "production")
		t.Setenv("RESEND_API_KEY", "re_123")
		t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
		t.Setenv("DISPATCH_WORKERS", "8")
		t.Setenv("OUTBOUND_WEBHOOK_URL", "https://hooks.example.com/payments")

		conf, err := LoadConfig([]string{"-d", "postgres://flags", "-a", ":9090"})
		require.NoError(t, err)

		assert.Equal(t, "postgres://env", conf.DatabaseDSN)
		assert.Equal(t, ":8000", conf.RunAddress)
		assert.Equal(t, "174379", conf.Mpesa.ShortCode)
		assert.Equal(t, "production", conf.Mpesa.Environment)
		assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, conf.Kafka.Brokers)
		assert.Equal(t, uint(8), conf.Dispatch.Workers)
		assert.True(t, conf.EmailEnabled())
		assert.True(t, conf.WebhookEnabled())
		assert.True(t, conf.KafkaEnabled())
	})

	t.Run("mandatory values", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		_, err := LoadConfig(nil)
		require.Error(t, err)

		t.Setenv("JWT_SECRET", "")
		_, err = LoadConfig([]string{"-d", "postgres://flags"})
		require.Error(t, err)
	})

	t.Run("unknown flag", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		_, err := LoadConfig([]string{"-x"})
		require.Error(t, err)
	})
}
