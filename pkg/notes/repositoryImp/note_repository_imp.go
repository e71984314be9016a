package repositoryImp

import (
	"gorm.io/gorm"

	"disha/entities"
	"disha/pkg/notes/repository"
)

type noteRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.NoteRepository { return &noteRepo{db} }

func (r *noteRepo) CreateDoc(d *entities.NoteDocument) error { return r.db.Create(d).Error }

func (r *noteRepo) BulkInsertChunks(rows []entities.NoteChunk) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.Create(&rows).Error
}

func (r *noteRepo) AllChunks() ([]entities.NoteChunk, error) {
	var out []entities.NoteChunk
	if err := r.db.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *noteRepo) DocsMeta(ids []uint) (map[uint]entities.NoteDocument, error) {
	var docs []entities.NoteDocument
	if err := r.db.Where("doc_id IN ?", ids).Find(&docs).Error; err != nil {
		return nil, err
	}
	out := make(map[uint]entities.NoteDocument, len(docs))
	for _, d := range docs {
		out[d.DocID] = d
	}
	return out, nil
}

func (r *noteRepo) GetDoc(id uint) (*entities.NoteDocument, error) {
	var d entities.NoteDocument
	if err := r.db.First(&d, "doc_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *noteRepo) SetSummary(docID uint, summary string) error {
	return r.db.Model(&entities.NoteDocument{}).Where("doc_id = ?", docID).
		Update("summary", summary).Error
}

func (r *noteRepo) ChunksByDoc(docID uint) ([]entities.NoteChunk, error) {
	var out []entities.NoteChunk
	if err := r.db.Where("doc_id = ?", docID).Order("ord ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
