package docpg

// SourceType classifies where a document came from (mirrors the values
// stored in docpg_documents.source_type).
type SourceType string

const (
	// SourceTypeNote is a user-authored Markdown note.
	SourceTypeNote SourceType = "note"

	// SourceTypeTranscript is an imported voice-call transcription.
	SourceTypeTranscript SourceType = "transcript"

	// SourceTypeUpload is a Markdown file imported from an external system.
	SourceTypeUpload SourceType = "upload"
)

// String returns the string representation of the source type.
func (s SourceType) String() string {
	return string(s)
}

// Valid reports whether the source type is one of the known values.
func (s SourceType) Valid() bool {
	switch s {
	case SourceTypeNote, SourceTypeTranscript, SourceTypeUpload:
		return true
	}
	return false
}

// DefaultCollection is the collection documents land in when none is given.
const DefaultCollection = "default"
