package registry

import (
	oerrors "github.com/presidio-build/presidio-configs/internal/errors"
)

// Validate checks that every requested code exists in the registry and
// names a model. On success the input slice is returned unchanged.
// Unknown codes take precedence: the error lists every one of them, in
// request order, and all available codes.
func Validate(langs []string, reg *Registry) ([]string, error) {
	var unknown, modelless []string
	for _, lang := range langs {
		switch {
		case !reg.Has(lang):
			unknown = append(unknown, lang)
		case reg.Lookup(lang).Model == "":
			modelless = append(modelless, lang)
		}
	}

	if len(unknown) > 0 {
		return nil, oerrors.NewUnknownLanguageError(unknown, reg.Codes())
	}
	if len(modelless) > 0 {
		return nil, oerrors.NewMissingModelError(modelless)
	}

	return langs, nil
}
