package filter

import (
	"time"

	"profanity/internal/core/wordlist"
)

// Defaults
const (
	DefaultGrawlix     = "@#$%&!"
	DefaultGrawlixChar = "*"
)

// Config is a plain settings record. Zero value is not useful; start from DefaultConfig
type Config struct {
	// WholeWord requires boundary-respecting matches; false matches substrings
	WholeWord bool
	// Grawlix replaces a whole match under CensorWord
	Grawlix string
	// GrawlixChar replaces single characters under the other censor types
	GrawlixChar string
	// Languages used when a call names none
	Languages []string
	// UnicodeWordBoundaries switches boundary detection from ASCII to Unicode classes
	UnicodeWordBoundaries bool
}

// DefaultConfig returns the stock settings
func DefaultConfig() Config {
	return Config{
		WholeWord:   true,
		Grawlix:     DefaultGrawlix,
		GrawlixChar: DefaultGrawlixChar,
		Languages:   []string{"en"},
	}
}

func (c Config) clone() Config {
	c.Languages = append([]string(nil), c.Languages...)
	return c
}

// CompileHook observes pattern compilation (metrics, tracing)
type CompileHook func(languages string, phrases int, took time.Duration)

type options struct {
	cfg       Config
	corpus    wordlist.Corpus
	onCompile CompileHook
}

// Option configures a Filter at construction
type Option func(*options)

// WithConfig replaces the whole config
func WithConfig(c Config) Option {
	return func(o *options) { o.cfg = c.clone() }
}

// WithWholeWord toggles boundary-respecting matching
func WithWholeWord(v bool) Option {
	return func(o *options) { o.cfg.WholeWord = v }
}

// WithGrawlix sets the whole-match replacement
func WithGrawlix(s string) Option {
	return func(o *options) { o.cfg.Grawlix = s }
}

// WithGrawlixChar sets the single-character replacement
func WithGrawlixChar(s string) Option {
	return func(o *options) { o.cfg.GrawlixChar = s }
}

// WithLanguages sets the default language list
func WithLanguages(codes ...string) Option {
	return func(o *options) { o.cfg.Languages = append([]string(nil), codes...) }
}

// WithUnicodeWordBoundaries toggles Unicode-aware boundaries
func WithUnicodeWordBoundaries(v bool) Option {
	return func(o *options) { o.cfg.UnicodeWordBoundaries = v }
}

// WithCorpus swaps the embedded corpus for c
func WithCorpus(c wordlist.Corpus) Option {
	return func(o *options) { o.corpus = c }
}

// WithCompileHook registers fn to run after every pattern compilation
func WithCompileHook(fn CompileHook) Option {
	return func(o *options) { o.onCompile = fn }
}
