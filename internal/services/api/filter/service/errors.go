package service

import (
	"errors"

	"profanity/internal/core/filter"
	perr "profanity/internal/platform/errors"
)

// mapErr turns core filter errors into coded invalid-argument errors naming
// the request field at fault. Anything else passes through
func mapErr(err error) error {
	var (
		lang *filter.InvalidLanguageError
		ct   *filter.InvalidCensorTypeError
	)
	switch {
	case errors.As(err, &lang):
		return perr.WithField(perr.Wrapf(err, perr.CodeInvalidArgument, "unknown language %q", lang.Code), "languages")
	case errors.Is(err, filter.ErrEmptyLanguageSet):
		return perr.WithField(perr.Wrap(err, perr.CodeInvalidArgument, "no language selected"), "languages")
	case errors.As(err, &ct):
		return perr.WithField(perr.Wrapf(err, perr.CodeInvalidArgument, "unknown censor type %q", ct.Value), "censor_type")
	}
	return err
}
