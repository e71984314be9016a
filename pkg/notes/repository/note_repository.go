package repository

import "disha/entities"

type NoteRepository interface {
	CreateDoc(d *entities.NoteDocument) error
	BulkInsertChunks(rows []entities.NoteChunk) error
	AllChunks() ([]entities.NoteChunk, error)
	DocsMeta(ids []uint) (map[uint]entities.NoteDocument, error)
	GetDoc(id uint) (*entities.NoteDocument, error)
	SetSummary(docID uint, summary string) error
	ChunksByDoc(docID uint) ([]entities.NoteChunk, error)
}
