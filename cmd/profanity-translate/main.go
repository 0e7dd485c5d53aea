// Command profanity-translate regenerates the per-language word files from
// the English list using a LibreTranslate compatible server.
//
//	docker run -p 5000:5000 libretranslate/libretranslate
//	profanity-translate -out internal/core/wordlist/data
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"strings"
	"syscall"

	"profanity/internal/core/wordlist"
	"profanity/internal/platform/config"
	"profanity/internal/platform/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

type opts struct {
	url     string
	apiKey  string
	targets string
	out     string
	workers int
}

func parse(args []string, stderr io.Writer) (opts, error) {
	cfg := config.New().Prefix("TRANSLATE_")
	var o opts
	fs := flag.NewFlagSet("profanity-translate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.url, "url", cfg.MayString("URL", baseURLDefault), "translation server base URL")
	fs.StringVar(&o.apiKey, "api-key", cfg.MayString("API_KEY", ""), "translation server API key")
	fs.StringVar(&o.targets, "targets", cfg.MayString("TARGETS", ""), "comma separated target codes (default all the server offers)")
	fs.StringVar(&o.out, "out", cfg.MayString("OUT", filepath.Join("internal", "core", "wordlist", "data")), "directory for <lang>.json files")
	fs.IntVar(&o.workers, "workers", cfg.MayInt("WORKERS", 8), "concurrent requests per batch")
	err := fs.Parse(args)
	return o, err
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	o, err := parse(args, stderr)
	if err != nil {
		return 2
	}
	log := logger.Named("profanity-translate")

	source := wordlist.MustDefault()[sourceLang]
	if len(source) == 0 {
		fmt.Fprintln(stderr, "no English words to translate")
		return 1
	}
	fmt.Fprintf(stdout, "%d English words to translate\n", len(source))

	c := NewClient(Options{BaseURL: o.url, APIKey: o.apiKey})
	langs, err := c.WaitLanguages(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "fetch languages: %v\n", err)
		return 1
	}
	dst, err := targets(langs, sourceLang)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if want := pick(o.targets); len(want) > 0 {
		dst = slices.DeleteFunc(want, func(code string) bool {
			if slices.Contains(dst, code) {
				return false
			}
			log.Warn().Str("target", code).Msg("server cannot translate into target, skipping")
			return true
		})
	}
	slices.Sort(dst)
	fmt.Fprintf(stdout, "Found %d target languages: %s\n", len(dst), strings.Join(dst, ","))

	if err := os.MkdirAll(o.out, 0o755); err != nil {
		fmt.Fprintf(stderr, "create %s: %v\n", o.out, err)
		return 1
	}

	tr := NewTranslator(c, o.workers)
	tr.progress = func(target string, done, total int) {
		log.Info().Str("target", target).Int("done", done).Int("total", total).Msg("batch translated")
	}
	for i, lang := range dst {
		fmt.Fprintf(stdout, "[%d/%d] Translating %s...\n", i+1, len(dst), lang)
		got, err := tr.Words(ctx, source, lang)
		if err != nil {
			fmt.Fprintf(stderr, "translate %s: %v\n", lang, err)
			return 1
		}
		words := tidy(got)
		if err := write(o.out, lang, words); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		fmt.Fprintf(stdout, "Removed %d duplicates\n", len(got)-len(words))
	}
	fmt.Fprintln(stdout, "Translation complete")
	return 0
}

func pick(s string) []string {
	var out []string
	for p := range strings.SplitSeq(s, ",") {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" && p != sourceLang && !slices.Contains(out, p) {
			out = append(out, p)
		}
	}
	return out
}

func write(dir, lang string, words []string) error {
	b, err := wordlist.Marshal(lang, words)
	if err != nil {
		return fmt.Errorf("render %s: %w", lang, err)
	}
	p := filepath.Join(dir, lang+".json")
	if err := os.WriteFile(p, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", p, err)
	}
	return nil
}
