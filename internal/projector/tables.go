package projector

// Canonical Presidio entity categories.
const (
	EntityPerson       = "PERSON"
	EntityLocation     = "LOCATION"
	EntityOrganization = "ORGANIZATION"
)

// entityMapping maps NER labels from the supported spaCy tagsets onto
// Presidio entities. Order is part of the output.
var entityMapping = EntityMapping{
	// Standard labels (most languages)
	{Label: "PER", Entity: EntityPerson},
	{Label: "PERSON", Entity: EntityPerson},
	{Label: "LOC", Entity: EntityLocation},
	{Label: "GPE", Entity: EntityLocation},
	{Label: "ORG", Entity: EntityOrganization},
	// Polish (NKJP corpus)
	{Label: "persName", Entity: EntityPerson},
	{Label: "placeName", Entity: EntityLocation},
	{Label: "geogName", Entity: EntityLocation},
	{Label: "orgName", Entity: EntityOrganization},
	// Korean
	{Label: "PS", Entity: EntityPerson},
	{Label: "LC", Entity: EntityLocation},
	{Label: "OG", Entity: EntityOrganization},
	// Swedish
	{Label: "PRS", Entity: EntityPerson},
	// Norwegian
	{Label: "GPE_LOC", Entity: EntityLocation},
}

const (
	nlpEngineName                = "spacy"
	lowConfidenceScoreMultiplier = 0.4
	defaultScoreThreshold        = 0
	globalRegexFlags             = 26
	recognizerTypePredefined     = "predefined"
)

var lowScoreEntityNames = []string{"ORG"}

var labelsToIgnore = []string{
	"O",
	"CARDINAL",
	"EVENT",
	"LANGUAGE",
	"LAW",
	"MONEY",
	"ORDINAL",
	"PERCENT",
	"PRODUCT",
	"QUANTITY",
	"WORK_OF_ART",
}

// recognizerView selects which per-language list a recognizer receives.
type recognizerView int

const (
	viewPlain recognizerView = iota
	viewPhone
)

// recognizerTable is the fixed set of predefined recognizers, in output order.
var recognizerTable = []struct {
	name string
	view recognizerView
}{
	{"SpacyRecognizer", viewPlain},
	{"EmailRecognizer", viewPlain},
	{"PhoneRecognizer", viewPhone},
	{"CreditCardRecognizer", viewPlain},
	{"IbanRecognizer", viewPlain},
	{"IpRecognizer", viewPlain},
}

// EntityMappingTable returns a copy of the NER label mapping.
func EntityMappingTable() EntityMapping {
	return append(EntityMapping(nil), entityMapping...)
}
