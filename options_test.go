package resilient

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/resilient/cache"
	"github.com/viant/resilient/executor"
)

func TestLoadOptions(t *testing.T) {
	var testCases = []struct {
		description string
		content     string
		env         map[string]string
		expect      func(t *testing.T, options *Options)
		expectErr   bool
	}{
		{
			description: "defaults",
			content:     "logLevel: debug\n",
			expect: func(t *testing.T, options *Options) {
				assert.Equal(t, "debug", options.LogLevel)
				require.NotNil(t, options.Executor.MaxRetries)
				assert.Equal(t, executor.DefaultMaxRetries, *options.Executor.MaxRetries)
				assert.Equal(t, 30, options.Executor.RequestTimeoutSeconds)
				assert.Equal(t, 60, options.Executor.ResourceTimeoutSeconds)
				assert.Equal(t, cache.DefaultMaxEntries, options.Cache.MaxEntries)
				assert.EqualValues(t, cache.DefaultMaxCost, options.Cache.MaxCost)
				assert.Equal(t, StoreTypeMemory, options.Store.Type)
				assert.Equal(t, "ios", options.Promotion.DeviceType)
			},
		},
		{
			description: "explicit zero retries",
			content: `executor:
  maxRetries: 0
cache:
  maxEntries: 5
  maxCost: 1024
store:
  type: SQLite
  url: /tmp/kv.db
`,
			expect: func(t *testing.T, options *Options) {
				require.NotNil(t, options.Executor.MaxRetries)
				assert.Equal(t, 0, *options.Executor.MaxRetries)
				assert.Equal(t, 5, options.Cache.MaxEntries)
				assert.EqualValues(t, 1024, options.Cache.MaxCost)
				assert.Equal(t, StoreTypeSQLite, options.Store.Type)
			},
		},
		{
			description: "env overrides file",
			content: `promotion:
  appId: file-app
`,
			env: map[string]string{
				"RESILIENT_APP_ID":      "env-app",
				"RESILIENT_USER_ID":     "user-1",
				"RESILIENT_MAX_RETRIES": "5",
			},
			expect: func(t *testing.T, options *Options) {
				assert.Equal(t, "env-app", options.Promotion.AppID)
				assert.Equal(t, "user-1", options.Promotion.UserID)
				assert.Equal(t, 5, *options.Executor.MaxRetries)
			},
		},
		{
			description: "file store without url",
			content:     "store:\n  type: file\n",
			expectErr:   true,
		},
		{
			description: "unsupported store",
			content:     "store:\n  type: redis\n",
			expectErr:   true,
		},
		{
			description: "malformed yaml",
			content:     "executor: [",
			expectErr:   true,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			for k, v := range testCase.env {
				t.Setenv(k, v)
			}
			location := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(location, []byte(testCase.content), 0o600))
			options, err := LoadOptions(context.Background(), location)
			if testCase.expectErr {
				assert.Error(t, err, testCase.description)
				return
			}
			require.NoError(t, err, testCase.description)
			testCase.expect(t, options)
		})
	}
}

func TestLoadOptions_Missing(t *testing.T) {
	_, err := LoadOptions(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestOptions_Validate(t *testing.T) {
	negative := -1
	options := &Options{Executor: ExecutorOptions{MaxRetries: &negative}}
	options.Init()
	assert.Error(t, options.Validate())
}
