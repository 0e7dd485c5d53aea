package service

import (
	"profanity/internal/core/filter"
	"profanity/internal/platform/config"
)

// ConfigFromEnv reads WHOLE_WORD, GRAWLIX, GRAWLIX_CHAR, LANGUAGES and
// UNICODE_BOUNDARIES under cfg, e.g. CORE_FILTER_*
func ConfigFromEnv(cfg config.Conf) filter.Config {
	d := filter.DefaultConfig()
	return filter.Config{
		WholeWord:             cfg.MayBool("WHOLE_WORD", d.WholeWord),
		Grawlix:               cfg.MayString("GRAWLIX", d.Grawlix),
		GrawlixChar:           cfg.MayString("GRAWLIX_CHAR", d.GrawlixChar),
		Languages:             cfg.MayCSV("LANGUAGES", d.Languages),
		UnicodeWordBoundaries: cfg.MayBool("UNICODE_BOUNDARIES", d.UnicodeWordBoundaries),
	}
}
