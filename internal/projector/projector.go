package projector

import (
	"github.com/presidio-build/presidio-configs/internal/registry"
)

// NewNLPConfig projects the languages onto the NLP engine configuration.
func NewNLPConfig(langs []string, reg *registry.Registry) NLPConfig {
	models := make([]Model, 0, len(langs))
	for _, lang := range langs {
		models = append(models, Model{
			LangCode:  lang,
			ModelName: reg.Lookup(lang).Model,
		})
	}

	return NLPConfig{
		NLPEngineName: nlpEngineName,
		Models:        models,
		NERModelConfiguration: NERModelConfiguration{
			ModelToPresidioEntityMapping: EntityMappingTable(),
			LowConfidenceScoreMultiplier: lowConfidenceScoreMultiplier,
			LowScoreEntityNames:          append([]string(nil), lowScoreEntityNames...),
			LabelsToIgnore:               append([]string(nil), labelsToIgnore...),
		},
	}
}

// NewAnalyzerConfig projects the languages onto the analyzer configuration.
func NewAnalyzerConfig(langs []string) AnalyzerConfig {
	return AnalyzerConfig{
		SupportedLanguages:    langs,
		DefaultScoreThreshold: defaultScoreThreshold,
	}
}

// NewRecognizersConfig projects the languages onto the predefined
// recognizer set. The phone recognizer carries registry context words.
func NewRecognizersConfig(langs []string, reg *registry.Registry) RecognizersConfig {
	plain := make([]RecognizerLanguage, 0, len(langs))
	phone := make([]RecognizerLanguage, 0, len(langs))
	for _, lang := range langs {
		plain = append(plain, RecognizerLanguage{Language: lang})
		phone = append(phone, RecognizerLanguage{
			Language: lang,
			Context:  reg.Lookup(lang).PhoneContext,
		})
	}

	recognizers := make([]Recognizer, 0, len(recognizerTable))
	for _, r := range recognizerTable {
		view := plain
		if r.view == viewPhone {
			view = phone
		}
		recognizers = append(recognizers, Recognizer{
			Name:               r.name,
			SupportedLanguages: view,
			Type:               recognizerTypePredefined,
		})
	}

	return RecognizersConfig{
		SupportedLanguages: langs,
		GlobalRegexFlags:   globalRegexFlags,
		Recognizers:        recognizers,
	}
}
