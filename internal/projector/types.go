// Package projector turns a validated language list and the registry into
// the Presidio configuration documents.
//
// Every projection is pure: the same inputs always produce the same value,
// and struct field order is the serialized key order.
package projector

import (
	"gopkg.in/yaml.v3"
)

// NLPConfig is the nlp-config.yaml document.
type NLPConfig struct {
	NLPEngineName         string                `yaml:"nlp_engine_name"`
	Models                []Model               `yaml:"models"`
	NERModelConfiguration NERModelConfiguration `yaml:"ner_model_configuration"`
}

// Model pairs a language code with its spaCy model.
type Model struct {
	LangCode  string `yaml:"lang_code"`
	ModelName string `yaml:"model_name"`
}

// NERModelConfiguration is the static NER envelope.
type NERModelConfiguration struct {
	ModelToPresidioEntityMapping EntityMapping `yaml:"model_to_presidio_entity_mapping"`
	LowConfidenceScoreMultiplier float64       `yaml:"low_confidence_score_multiplier"`
	LowScoreEntityNames          []string      `yaml:"low_score_entity_names"`
	LabelsToIgnore               []string      `yaml:"labels_to_ignore"`
}

// LabelMapping maps one NER label to a Presidio entity.
type LabelMapping struct {
	Label  string
	Entity string
}

// EntityMapping is an ordered label → entity table.
type EntityMapping []LabelMapping

// MarshalYAML emits the table as a mapping with insertion order intact.
func (m EntityMapping) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, lm := range m {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: lm.Label},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: lm.Entity},
		)
	}
	return node, nil
}

// AnalyzerConfig is the analyzer-config.yaml document.
type AnalyzerConfig struct {
	SupportedLanguages    []string `yaml:"supported_languages"`
	DefaultScoreThreshold int      `yaml:"default_score_threshold"`
}

// RecognizersConfig is the recognizers-config.yaml document.
type RecognizersConfig struct {
	SupportedLanguages []string     `yaml:"supported_languages"`
	GlobalRegexFlags   int          `yaml:"global_regex_flags"`
	Recognizers        []Recognizer `yaml:"recognizers"`
}

// Recognizer is one predefined recognizer entry.
type Recognizer struct {
	Name               string               `yaml:"name"`
	SupportedLanguages []RecognizerLanguage `yaml:"supported_languages"`
	Type               string               `yaml:"type"`
}

// RecognizerLanguage is a per-language entry of a recognizer.
// Context is emitted only when non-nil; an empty non-nil slice is
// emitted as an empty list.
type RecognizerLanguage struct {
	Language string
	Context  []string
}

type plainLanguage struct {
	Language string `yaml:"language"`
}

type contextLanguage struct {
	Language string   `yaml:"language"`
	Context  []string `yaml:"context"`
}

// MarshalYAML drops the context key when the registry had none.
func (l RecognizerLanguage) MarshalYAML() (interface{}, error) {
	if l.Context == nil {
		return plainLanguage{Language: l.Language}, nil
	}
	return contextLanguage{Language: l.Language, Context: l.Context}, nil
}
