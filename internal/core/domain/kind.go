package domain

// ServiceKind identifies a generation service and keys its artefact
// on the document record. The set is closed: attaching artefacts under
// arbitrary runtime strings trades away compile-time safety for
// nothing, so new kinds are added here.
type ServiceKind string

// Known service kinds.
const (
	// KindSummarization produces a summary of the document text.
	KindSummarization ServiceKind = "summarization"

	// KindDescription produces a short description of the document.
	KindDescription ServiceKind = "description"

	// KindTagging produces a list of topical tags.
	KindTagging ServiceKind = "tagging"

	// KindTranslation produces a translation into a target language.
	KindTranslation ServiceKind = "translation"
)

// AllServiceKinds returns every known kind in a stable order.
func AllServiceKinds() []ServiceKind {
	return []ServiceKind{KindSummarization, KindDescription, KindTagging, KindTranslation}
}

// IsValid returns true if the kind is recognised.
func (k ServiceKind) IsValid() bool {
	switch k {
	case KindSummarization, KindDescription, KindTagging, KindTranslation:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k ServiceKind) String() string {
	return string(k)
}

// ParseServiceKind converts a string to a ServiceKind.
// Returns ErrUnsupportedKind for unknown values.
func ParseServiceKind(s string) (ServiceKind, error) {
	kind := ServiceKind(s)
	if !kind.IsValid() {
		return "", ErrUnsupportedKind
	}
	return kind, nil
}
