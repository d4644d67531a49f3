package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_OnEmptyYAML_ShouldApplyDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	conf, err := Parse(nil)
	require.NoError(t, err)

	assert.Equal(t, ":8000", conf.HTTP().Address())
	assert.Equal(t, "http://localhost:8000", conf.HTTP().BackendURL())
	assert.Equal(t, "INR", conf.App().BaseCurrency())
	assert.Equal(t, 1000, conf.App().MaxTokens())
	assert.Equal(t, 0.7, conf.App().Temperature())
	assert.Equal(t, "student", conf.App().FilePrefix())
	assert.Equal(t, time.Minute, conf.App().RequestTimeout())
	assert.Equal(t, "gemini-2.5-flash-lite", conf.Gemini().Model())
	assert.False(t, conf.Gemini().Configured())
	assert.False(t, conf.Postgres().Enabled())
	assert.False(t, conf.Kafka().Enabled())
	assert.Equal(t, "expenses", conf.Kafka().ExpensesTopic())
	assert.Equal(t, 8090, conf.Recorder().GRPCPort())
}

func Test_OnYAML_ShouldReadSections(t *testing.T) {
	raw := []byte(`
app:
  base-currency: USD
  file-prefix: team
postgres:
  host: db
  db: finance
  username: u
  password: p
kafka:
  brokers: ["k1:9092", "k2:9092"]
memcached:
  hosts: ["mc:11211"]
`)
	conf, err := Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "USD", conf.App().BaseCurrency())
	assert.Equal(t, "team", conf.App().FilePrefix())
	assert.True(t, conf.Postgres().Enabled())
	assert.Equal(t, "user=u password=p host=db dbname=finance sslmode=disable", conf.Postgres().DSN())
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, conf.Kafka().Brokers())
	assert.True(t, conf.Memcached().Enabled())
}

func Test_OnEnvOverride_ShouldPreferEnvironment(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("BACKEND_URL", "http://backend:9000")

	conf, err := Parse([]byte("gemini:\n  api-key: from-file\n"))
	require.NoError(t, err)

	assert.Equal(t, "secret", conf.Gemini().ApiKey())
	assert.True(t, conf.Gemini().Configured())
	assert.Equal(t, "http://backend:9000", conf.HTTP().BackendURL())
}

func Test_OnUnknownCurrency_ShouldFail(t *testing.T) {
	_, err := Parse([]byte("app:\n  base-currency: XYZ\n"))
	assert.Error(t, err)
}

func Test_OnBrokenYAML_ShouldFail(t *testing.T) {
	_, err := Parse([]byte("app: ["))
	assert.Error(t, err)
}
