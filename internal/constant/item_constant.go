package constant

const (
	// Synthetic URL schemes marking non-navigable bookmarks.
	NoteURLScheme     = "note://"
	ChatNoteURLScheme = "chat-note://"

	// Suffix appended to the name/title of duplicated items.
	DuplicateSuffix = " (Copia)"

	// Stored when summarization fails so bookmark creation never blocks on AI availability.
	FallbackSummary = "Nessun riepilogo disponibile."
)
