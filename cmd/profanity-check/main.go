// Command profanity-check reports or censors profanity in text given as
// arguments or read line by line from stdin.
//
//	profanity-check "some text"            exit 1 when anything matched
//	echo "some text" | profanity-check -censor -type first_vowel
//	profanity-check -bench
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"profanity/internal/core/filter"
	"profanity/internal/core/normalize"
	"profanity/internal/platform/logger"
)

// exit codes
const (
	exitClean = 0
	exitFound = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type opts struct {
	censor    bool
	ctype     string
	langs     string
	partial   bool
	unicode   bool
	add       string
	remove    string
	whitelist string
	matches   bool
	bench     bool
}

func parse(args []string, stderr io.Writer) (opts, []string, error) {
	var o opts
	fs := flag.NewFlagSet("profanity-check", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&o.censor, "censor", false, "print censored text instead of checking")
	fs.StringVar(&o.ctype, "type", "word", "censor type: word, first_char, first_vowel, all_vowels")
	fs.StringVar(&o.langs, "lang", "", "comma separated language codes (default en)")
	fs.BoolVar(&o.partial, "partial", false, "match inside words")
	fs.BoolVar(&o.unicode, "unicode", false, "use unicode word boundaries")
	fs.StringVar(&o.add, "add", "", "comma separated phrases to blacklist")
	fs.StringVar(&o.remove, "remove", "", "comma separated phrases to drop")
	fs.StringVar(&o.whitelist, "whitelist", "", "comma separated phrases to never report")
	fs.BoolVar(&o.matches, "matches", false, "print each match with its byte offsets")
	fs.BoolVar(&o.bench, "bench", false, "run the benchmark scenarios and exit")
	if err := fs.Parse(args); err != nil {
		return o, nil, err
	}
	return o, fs.Args(), nil
}

func csv(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func build(o opts) (*filter.Filter, error) {
	fo := []filter.Option{
		filter.WithWholeWord(!o.partial),
		filter.WithUnicodeWordBoundaries(o.unicode),
	}
	if langs := csv(o.langs); len(langs) > 0 {
		fo = append(fo, filter.WithLanguages(langs...))
	}
	f, err := filter.New(fo...)
	if err != nil {
		return nil, err
	}
	if ws := csv(o.add); len(ws) > 0 {
		f.AddWords(ws...)
	}
	if ws := csv(o.remove); len(ws) > 0 {
		f.RemoveWords(ws...)
	}
	if ws := csv(o.whitelist); len(ws) > 0 {
		f.Whitelist().AddWords(ws...)
	}
	return f, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	o, rest, err := parse(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitClean
		}
		return exitUsage
	}
	if o.bench {
		bench(stdout)
		return exitClean
	}

	ct, err := filter.ParseCensorType(o.ctype)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	f, err := build(o)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	lines := rest
	if len(lines) == 0 {
		sc := bufio.NewScanner(stdin)
		sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
		for sc.Scan() {
			lines = append(lines, sc.Text())
		}
		if err := sc.Err(); err != nil {
			fmt.Fprintln(stderr, err)
			return exitUsage
		}
	}

	found := false
	for i, line := range lines {
		switch {
		case o.censor:
			out, err := f.Censor(line, ct)
			if err != nil {
				fmt.Fprintln(stderr, err)
				return exitUsage
			}
			found = found || out != line
			fmt.Fprintln(stdout, out)
		case o.matches:
			ms, err := f.Matches(line)
			if err != nil {
				fmt.Fprintln(stderr, err)
				return exitUsage
			}
			for _, m := range ms {
				fmt.Fprintf(stdout, "%d:%d-%d\t%s\n", i+1, m.Start, m.End, m.Text)
			}
			found = found || len(ms) > 0
		default:
			ok, err := f.Exists(normalize.Clean(line))
			if err != nil {
				fmt.Fprintln(stderr, err)
				return exitUsage
			}
			if ok {
				fmt.Fprintf(stdout, "%d: profane\n", i+1)
				found = true
			}
		}
	}

	logger.Named("check").Debug().Int("lines", len(lines)).Bool("found", found).Msg("check done")
	if found && !o.censor {
		return exitFound
	}
	return exitClean
}
