package resilient

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/viant/resilient/cache"
	"github.com/viant/resilient/catalog"
	"github.com/viant/resilient/coordinator"
	"github.com/viant/resilient/executor"
	"github.com/viant/resilient/gate"
	"github.com/viant/resilient/logger"
	"github.com/viant/resilient/promotion"
	"github.com/viant/resilient/store"
)

// Service holds explicitly constructed, process scoped instances shared by consumers
type Service struct {
	Options  *Options
	Logger   logger.Logger
	Executor *executor.Executor
	Cache    *cache.Cache
	Gate     *gate.Gate
	Store    store.Store
	Catalog  *catalog.Client
}

// ServiceOption represents service option
type ServiceOption func(s *serviceConfig)

type serviceConfig struct {
	logger    logger.Logger
	transport executor.Transport
	sleeper   executor.Sleeper
	store     store.Store
}

// WithLogger sets service logger
func WithLogger(log logger.Logger) ServiceOption {
	return func(s *serviceConfig) {
		s.logger = log
	}
}

// WithTransport replaces HTTP transport for all executors
func WithTransport(transport executor.Transport) ServiceOption {
	return func(s *serviceConfig) {
		s.transport = transport
	}
}

// WithSleeper replaces backoff sleeper
func WithSleeper(sleeper executor.Sleeper) ServiceOption {
	return func(s *serviceConfig) {
		s.sleeper = sleeper
	}
}

// WithStore injects a store instead of the configured backend
func WithStore(s store.Store) ServiceOption {
	return func(c *serviceConfig) {
		c.store = s
	}
}

// New assembles executor, cache, gate, store and catalog client from options
func New(ctx context.Context, options *Options, serviceOptions ...ServiceOption) (*Service, error) {
	if options == nil {
		options = &Options{}
	}
	options.Init()
	if err := options.Validate(); err != nil {
		return nil, err
	}
	config := &serviceConfig{}
	for _, opt := range serviceOptions {
		opt(config)
	}
	if config.logger == nil {
		config.logger = logger.New("resilient", logger.ParseLevel(options.LogLevel), nil)
	}
	ret := &Service{Options: options, Logger: config.logger}

	requestTimeout := time.Duration(options.Executor.RequestTimeoutSeconds) * time.Second
	resourceTimeout := time.Duration(options.Executor.ResourceTimeoutSeconds) * time.Second
	newExecutor := func(name string, transport executor.Transport) *executor.Executor {
		execOptions := []executor.Option{
			executor.WithTransport(transport),
			executor.WithMaxRetries(*options.Executor.MaxRetries),
			executor.WithLogger(config.logger.Logger(name)),
		}
		if config.sleeper != nil {
			execOptions = append(execOptions, executor.WithSleeper(config.sleeper))
		}
		return executor.New(execOptions...)
	}

	contentTransport := config.transport
	catalogTransport := config.transport
	if contentTransport == nil {
		roundTripper := executor.NewRoundTripper(requestTimeout)
		contentTransport = executor.NewHTTPTransport(
			executor.WithRoundTripper(roundTripper),
			executor.WithResourceTimeout(resourceTimeout),
		)
		catalogRoundTripper := roundTripper
		if token := options.Catalog.BearerToken; token != "" {
			catalogRoundTripper = catalog.BearerTransport(token, roundTripper)
		}
		catalogTransport = executor.NewHTTPTransport(
			executor.WithRoundTripper(catalogRoundTripper),
			executor.WithResourceTimeout(resourceTimeout),
		)
	}
	ret.Executor = newExecutor("executor", contentTransport)
	ret.Cache = cache.New(ret.Executor,
		cache.WithMaxEntries(options.Cache.MaxEntries),
		cache.WithMaxCost(options.Cache.MaxCost),
		cache.WithLogger(config.logger.Logger("cache")),
	)
	ret.Catalog = catalog.New(newExecutor("catalog", catalogTransport), catalog.WithBaseURL(options.Catalog.BaseURL))
	ret.Gate = gate.New(gate.WithLogger(config.logger.Logger("gate")))

	var err error
	if ret.Store = config.store; ret.Store == nil {
		if ret.Store, err = newStore(ctx, &options.Store); err != nil {
			return nil, err
		}
	}
	return ret, nil
}

func newStore(ctx context.Context, options *StoreOptions) (store.Store, error) {
	switch options.Type {
	case StoreTypeFile:
		return store.NewFileStore(ctx, options.URL)
	case StoreTypeSQLite:
		return store.NewSQLiteStore(ctx, options.URL)
	case StoreTypeMemory:
		return store.NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("unsupported store type: %v", options.Type)
}

// Coordinator creates a coordinator bound to the service gate and store
func (s *Service) Coordinator(service promotion.Service, navigator coordinator.Navigator) (*coordinator.Coordinator, error) {
	return coordinator.New(s.Gate, s.Store, service, navigator,
		coordinator.WithLogger(s.Logger.Logger("coordinator")),
		coordinator.WithDeviceType(s.Options.Promotion.DeviceType),
	)
}

// InitRequest returns promotion init request from options
func (s *Service) InitRequest() promotion.InitRequest {
	return promotion.InitRequest{
		AppID:      s.Options.Promotion.AppID,
		UserID:     s.Options.Promotion.UserID,
		DeviceType: s.Options.Promotion.DeviceType,
	}
}

// Close releases store resources
func (s *Service) Close() error {
	if closer, ok := s.Store.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
