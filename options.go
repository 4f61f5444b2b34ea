package resilient

import (
	"context"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/viant/afs"
	"github.com/viant/resilient/cache"
	"github.com/viant/resilient/catalog"
	"github.com/viant/resilient/coordinator"
	"github.com/viant/resilient/executor"
	"gopkg.in/yaml.v3"
)

// Options defines options for configuring the data access service
type Options struct {
	LogLevel  string           `yaml:"logLevel,omitempty" json:"logLevel,omitempty" env:"RESILIENT_LOG_LEVEL" long:"log-level" description:"log level: debug, info, warning, error, off"`
	Executor  ExecutorOptions  `yaml:"executor,omitempty" json:"executor,omitempty"`
	Cache     CacheOptions     `yaml:"cache,omitempty" json:"cache,omitempty"`
	Store     StoreOptions     `yaml:"store,omitempty" json:"store,omitempty"`
	Catalog   CatalogOptions   `yaml:"catalog,omitempty" json:"catalog,omitempty"`
	Promotion PromotionOptions `yaml:"promotion,omitempty" json:"promotion,omitempty"`
}

// ExecutorOptions defines retry and timeout options
type ExecutorOptions struct {
	MaxRetries             *int `yaml:"maxRetries,omitempty" json:"maxRetries,omitempty" env:"RESILIENT_MAX_RETRIES"`
	RequestTimeoutSeconds  int  `yaml:"requestTimeoutSeconds,omitempty" json:"requestTimeoutSeconds,omitempty" env:"RESILIENT_REQUEST_TIMEOUT"`
	ResourceTimeoutSeconds int  `yaml:"resourceTimeoutSeconds,omitempty" json:"resourceTimeoutSeconds,omitempty" env:"RESILIENT_RESOURCE_TIMEOUT"`
}

// CacheOptions defines content cache limits
type CacheOptions struct {
	MaxEntries int   `yaml:"maxEntries,omitempty" json:"maxEntries,omitempty" env:"RESILIENT_CACHE_MAX_ENTRIES" long:"cache-entries" description:"max cached entries"`
	MaxCost    int64 `yaml:"maxCost,omitempty" json:"maxCost,omitempty" env:"RESILIENT_CACHE_MAX_COST" long:"cache-cost" description:"max cached bytes"`
}

// StoreOptions defines durable store backend
type StoreOptions struct {
	Type string `yaml:"type,omitempty" json:"type,omitempty" env:"RESILIENT_STORE_TYPE" choice:"memory" choice:"file" choice:"sqlite"`
	// URL is an afs URL for file store or a DSN for sqlite store
	URL string `yaml:"url,omitempty" json:"url,omitempty" env:"RESILIENT_STORE_URL"`
}

// CatalogOptions defines collection API options
type CatalogOptions struct {
	BaseURL      string `yaml:"baseURL,omitempty" json:"baseURL,omitempty" env:"RESILIENT_CATALOG_URL"`
	BearerToken  string `yaml:"bearerToken,omitempty" json:"-" env:"RESILIENT_CATALOG_TOKEN"`
	CollectionID string `yaml:"collectionId,omitempty" json:"collectionId,omitempty" env:"RESILIENT_COLLECTION_ID"`
}

// PromotionOptions defines promotion SDK credentials
type PromotionOptions struct {
	AppID      string `yaml:"appId,omitempty" json:"appId,omitempty" env:"RESILIENT_APP_ID"`
	UserID     string `yaml:"userId,omitempty" json:"userId,omitempty" env:"RESILIENT_USER_ID"`
	DeviceType string `yaml:"deviceType,omitempty" json:"deviceType,omitempty" env:"RESILIENT_DEVICE_TYPE"`
}

const (
	StoreTypeMemory = "memory"
	StoreTypeFile   = "file"
	StoreTypeSQLite = "sqlite"
)

// Init fills defaults
func (o *Options) Init() {
	if o.LogLevel == "" {
		o.LogLevel = "info"
	}
	if o.Executor.MaxRetries == nil {
		maxRetries := executor.DefaultMaxRetries
		o.Executor.MaxRetries = &maxRetries
	}
	if o.Executor.RequestTimeoutSeconds <= 0 {
		o.Executor.RequestTimeoutSeconds = int(executor.DefaultRequestTimeout.Seconds())
	}
	if o.Executor.ResourceTimeoutSeconds <= 0 {
		o.Executor.ResourceTimeoutSeconds = int(executor.DefaultResourceTimeout.Seconds())
	}
	if o.Cache.MaxEntries <= 0 {
		o.Cache.MaxEntries = cache.DefaultMaxEntries
	}
	if o.Cache.MaxCost <= 0 {
		o.Cache.MaxCost = cache.DefaultMaxCost
	}
	if o.Store.Type == "" {
		o.Store.Type = StoreTypeMemory
	}
	o.Store.Type = strings.ToLower(o.Store.Type)
	if o.Catalog.BaseURL == "" {
		o.Catalog.BaseURL = catalog.DefaultBaseURL
	}
	if o.Promotion.DeviceType == "" {
		o.Promotion.DeviceType = coordinator.DefaultDeviceType
	}
}

// Validate checks option consistency
func (o *Options) Validate() error {
	switch o.Store.Type {
	case StoreTypeMemory:
	case StoreTypeFile, StoreTypeSQLite:
		if o.Store.URL == "" {
			return fmt.Errorf("store url was empty for %v store", o.Store.Type)
		}
	default:
		return fmt.Errorf("unsupported store type: %v", o.Store.Type)
	}
	if o.Executor.MaxRetries != nil && *o.Executor.MaxRetries < 0 {
		return fmt.Errorf("invalid max retries: %v", *o.Executor.MaxRetries)
	}
	return nil
}

// ParseEnv overrides options with environment variables
func (o *Options) ParseEnv() error {
	if err := env.Parse(o); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadOptions reads YAML (or JSON) options from an afs URL, applies environment overrides and defaults
func LoadOptions(ctx context.Context, URL string) (*Options, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load options %v: %w", URL, err)
	}
	ret := &Options{}
	if err = yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to decode options %v: %w", URL, err)
	}
	if err = ret.ParseEnv(); err != nil {
		return nil, err
	}
	ret.Init()
	return ret, ret.Validate()
}
