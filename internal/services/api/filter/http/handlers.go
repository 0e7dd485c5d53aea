// Package http exposes the filter over JSON
package http

import (
	stdhttp "net/http"

	"profanity/internal/modkit/httpkit"
	"profanity/internal/services/api/filter/domain"
)

// Register mounts the filter endpoints
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.TextInput](r, "/exists", h.exists)
	httpkit.PostJSON[domain.CensorInput](r, "/censor", h.censor)
	httpkit.PostJSON[domain.TextInput](r, "/matches", h.matches)

	httpkit.PostJSON[domain.WordsInput](r, "/words", h.addWords)
	httpkit.PostJSON[domain.WordsInput](r, "/words/remove", h.removeWords)
	httpkit.PostJSON[domain.WordsInput](r, "/whitelist", h.addWhitelist)
	httpkit.PostJSON[domain.WordsInput](r, "/whitelist/remove", h.removeWhitelist)

	httpkit.Get(r, "/lists", h.lists)
}

type handlers struct{ svc domain.ServicePort }

// @Summary Does the text contain profanity
// @Tags Filter
// @Accept json
// @Produce json
// @Param payload body domain.TextInput true "Text and optional languages"
// @Success 200 {object} domain.ExistsResult
// @Failure 422 {object} ErrorResponse "unknown language"
// @Router /filter/exists [post]
func (h *handlers) exists(r *stdhttp.Request, in domain.TextInput) (any, error) {
	return h.svc.Exists(r.Context(), in)
}

// @Summary Censor profanity in the text
// @Tags Filter
// @Accept json
// @Produce json
// @Param payload body domain.CensorInput true "Text, censor type and optional languages"
// @Success 200 {object} domain.CensorResult
// @Failure 422 {object} ErrorResponse "unknown language or censor type"
// @Router /filter/censor [post]
func (h *handlers) censor(r *stdhttp.Request, in domain.CensorInput) (any, error) {
	return h.svc.Censor(r.Context(), in)
}

// @Summary List matches with byte offsets
// @Tags Filter
// @Accept json
// @Produce json
// @Param payload body domain.TextInput true "Text and optional languages"
// @Success 200 {object} domain.MatchesResult
// @Router /filter/matches [post]
func (h *handlers) matches(r *stdhttp.Request, in domain.TextInput) (any, error) {
	return h.svc.Matches(r.Context(), in)
}

// @Summary Blacklist phrases
// @Tags Filter
// @Accept json
// @Produce json
// @Param payload body domain.WordsInput true "Phrases"
// @Success 200 {object} domain.WordsResult
// @Router /filter/words [post]
func (h *handlers) addWords(r *stdhttp.Request, in domain.WordsInput) (any, error) {
	return h.svc.AddWords(r.Context(), in.Words)
}

// @Summary Remove blacklisted or corpus phrases
// @Tags Filter
// @Router /filter/words/remove [post]
func (h *handlers) removeWords(r *stdhttp.Request, in domain.WordsInput) (any, error) {
	return h.svc.RemoveWords(r.Context(), in.Words)
}

// @Summary Whitelist phrases
// @Tags Filter
// @Router /filter/whitelist [post]
func (h *handlers) addWhitelist(r *stdhttp.Request, in domain.WordsInput) (any, error) {
	return h.svc.AddWhitelist(r.Context(), in.Words)
}

// @Summary Remove whitelisted phrases
// @Tags Filter
// @Router /filter/whitelist/remove [post]
func (h *handlers) removeWhitelist(r *stdhttp.Request, in domain.WordsInput) (any, error) {
	return h.svc.RemoveWhitelist(r.Context(), in.Words)
}

// @Summary Current word lists and defaults
// @Tags Filter
// @Produce json
// @Success 200 {object} domain.Lists
// @Router /filter/lists [get]
func (h *handlers) lists(r *stdhttp.Request) (any, error) {
	return h.svc.Lists(r.Context()), nil
}
