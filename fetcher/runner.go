package fetcher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/viant/afs"
	"github.com/viant/resilient"
)

// Run parses args and executes fetch writing to stdout
func Run(args []string) error {
	return RunWithWriter(context.Background(), args, os.Stdout)
}

// RunWithWriter parses args and executes fetch writing to w when no output URL is set
func RunWithWriter(ctx context.Context, args []string, w io.Writer) error {
	options := &Options{}
	if _, err := flags.ParseArgs(options, args); err != nil {
		return err
	}
	serviceOptions, err := options.serviceOptions(ctx)
	if err != nil {
		return err
	}
	srv, err := resilient.New(ctx, serviceOptions)
	if err != nil {
		return err
	}
	defer srv.Close()
	return fetch(ctx, srv, options, w)
}

// serviceOptions merges config file (or environment) options with command line flags, flags take precedence
func (o *Options) serviceOptions(ctx context.Context) (*resilient.Options, error) {
	ret := &resilient.Options{}
	if o.ConfigURL != "" {
		loaded, err := resilient.LoadOptions(ctx, o.ConfigURL)
		if err != nil {
			return nil, err
		}
		ret = loaded
	} else if err := ret.ParseEnv(); err != nil {
		return nil, err
	}
	if o.LogLevel != "" {
		ret.LogLevel = o.LogLevel
	}
	if o.Cache.MaxEntries > 0 {
		ret.Cache.MaxEntries = o.Cache.MaxEntries
	}
	if o.Cache.MaxCost > 0 {
		ret.Cache.MaxCost = o.Cache.MaxCost
	}
	if o.Retries >= 0 {
		retries := o.Retries
		ret.Executor.MaxRetries = &retries
	}
	return ret, nil
}

func fetch(ctx context.Context, srv *resilient.Service, options *Options, w io.Writer) error {
	repeat := options.Repeat
	if repeat < 1 {
		repeat = 1
	}
	var data []byte
	var err error
	for i := 0; i < repeat; i++ {
		if data, err = srv.Cache.Load(ctx, options.URL); err != nil {
			return err
		}
	}
	if options.JSON && !json.Valid(data) {
		return fmt.Errorf("response from %v is not valid JSON", options.URL)
	}
	if options.Output != "" {
		fs := afs.New()
		if err = fs.Upload(ctx, options.Output, 0o644, bytes.NewReader(data)); err != nil {
			return fmt.Errorf("failed to write %v: %w", options.Output, err)
		}
	} else if _, err = w.Write(data); err != nil {
		return err
	}
	if options.Stats {
		stats := srv.Cache.Stats()
		_, err = fmt.Fprintf(os.Stderr, "hits: %d, misses: %d, evictions: %d, entries: %d, cost: %d\n",
			stats.Hits, stats.Misses, stats.Evictions, stats.Entries, stats.Cost)
	}
	return err
}
