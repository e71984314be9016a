package service

import "disha/entities"

type NoteService interface {
	UpsertDocument(userID, title, tags, text, sourceURL string) (*entities.NoteDocument, int, error)
	Search(query string, k int) ([]entities.NoteChunk, error)
	DocsMeta(ids []uint) (map[uint]entities.NoteDocument, error)
	// Summarize runs the LLM over a stored document's text and persists the
	// result on the document.
	Summarize(docID uint) (*entities.NoteDocument, error)
}
