package fetcher

import "github.com/viant/resilient"

// Options defines command line options
type Options struct {
	URL       string `short:"u" long:"url" description:"resource url" required:"true"`
	ConfigURL string `short:"c" long:"config" description:"options file (yaml or json), any afs URL"`
	Output    string `short:"o" long:"output" description:"destination afs URL, stdout when empty"`
	Retries   int    `short:"r" long:"retries" description:"max retries, overrides config" default:"-1"`
	Repeat    int    `short:"n" long:"repeat" description:"number of loads through the cache" default:"1"`
	JSON      bool   `short:"j" long:"json" description:"validate response as JSON"`
	Stats     bool   `short:"s" long:"stats" description:"print cache stats"`
	resilient.Options
}
