package entities

import "time"

type NoteDocument struct {
	DocID     uint   `gorm:"primaryKey" json:"doc_id"`
	UserID    string `gorm:"index" json:"user_id"`
	Title     string `json:"title"`
	Tags      string `json:"tags"`
	SourceURL string `json:"source_url"`
	Summary   string `json:"summary"`
	CreatedAt time.Time
}

type NoteChunk struct {
	ChunkID   uint   `gorm:"primaryKey" json:"chunk_id"`
	DocID     uint   `gorm:"index" json:"doc_id"`
	Ord       int    `json:"ord"`
	Text      string `json:"text"`
	Embedding []byte `json:"-"` // little-endian float32 vector, may be nil
}
