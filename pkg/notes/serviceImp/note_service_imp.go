package serviceImp

import (
	"math"
	"sort"
	"strings"

	"disha/entities"
	"disha/pkg/ai"
	"disha/pkg/notes/embedder"
	"disha/pkg/notes/repository"
)

type Svc struct {
	r   repository.NoteRepository
	emb *embedder.Client
	llm ai.Client
}

func New(r repository.NoteRepository, e *embedder.Client, llm ai.Client) *Svc {
	return &Svc{r: r, emb: e, llm: llm}
}

func chunkText(text string, maxRunes int) []string {
	if maxRunes <= 0 {
		maxRunes = 1000
	}
	parts := []string{}
	cur := strings.Builder{}
	count := 0
	for _, r := range text {
		cur.WriteRune(r)
		count++
		if count >= maxRunes && r == '\n' {
			parts = append(parts, cur.String())
			cur.Reset()
			count = 0
		}
	}
	if cur.Len() > 0 {
		parts = append(parts, cur.String())
	}
	return parts
}

func (s *Svc) UpsertDocument(userID, title, tags, text, sourceURL string) (*entities.NoteDocument, int, error) {
	d := &entities.NoteDocument{UserID: userID, Title: title, Tags: tags, SourceURL: sourceURL}
	if err := s.r.CreateDoc(d); err != nil {
		return nil, 0, err
	}

	chs := chunkText(text, 1000)
	if len(chs) == 0 {
		return d, 0, nil
	}

	var embs [][]float32
	if s.emb != nil {
		var err error
		embs, err = s.emb.Embed(chs)
		if err != nil {
			// degrade gracefully: keep chunks with empty embeddings
			embs = nil
		}
	}

	rows := make([]entities.NoteChunk, len(chs))
	for i := range chs {
		var embBytes []byte
		if embs != nil && i < len(embs) {
			embBytes = embedder.FloatsToBytes(embs[i])
		}
		rows[i] = entities.NoteChunk{
			DocID:     d.DocID,
			Ord:       i,
			Text:      chs[i],
			Embedding: embBytes,
		}
	}

	if err := s.r.BulkInsertChunks(rows); err != nil {
		return nil, 0, err
	}
	return d, len(rows), nil
}

func (s *Svc) Search(query string, k int) ([]entities.NoteChunk, error) {
	q := strings.TrimSpace(query)
	if q == "" || k <= 0 {
		return nil, nil
	}

	var qvec []float32
	if s.emb != nil {
		if vec, err := s.emb.Embed([]string{q}); err == nil && len(vec) > 0 {
			qvec = vec[0]
		}
	}

	chunks, err := s.r.AllChunks()
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, nil
	}

	type scored struct {
		ch entities.NoteChunk
		sc float64
	}
	list := make([]scored, 0, len(chunks))

	if len(qvec) > 0 {
		for _, ch := range chunks {
			cv := embedder.BytesToFloats(ch.Embedding)
			if len(cv) == 0 || len(cv) != len(qvec) {
				continue
			}
			var dot, nq, nd float64
			for i := range qvec {
				v, w := float64(qvec[i]), float64(cv[i])
				dot += v * w
				nq += v * v
				nd += w * w
			}
			if nq == 0 || nd == 0 {
				continue
			}
			list = append(list, scored{ch: ch, sc: dot / (math.Sqrt(nq) * math.Sqrt(nd))})
		}
	} else {
		// keyword fallback
		qlow := strings.ToLower(q)
		for _, ch := range chunks {
			score := 0.0
			for _, term := range strings.Fields(qlow) {
				if strings.Contains(strings.ToLower(ch.Text), term) {
					score++
				}
			}
			if score > 0 {
				list = append(list, scored{ch: ch, sc: score})
			}
		}
	}

	sort.Slice(list, func(i, j int) bool { return list[i].sc > list[j].sc })
	if k > len(list) {
		k = len(list)
	}
	out := make([]entities.NoteChunk, 0, k)
	for _, s := range list[:k] {
		out = append(out, s.ch)
	}
	return out, nil
}

func (s *Svc) DocsMeta(ids []uint) (map[uint]entities.NoteDocument, error) {
	return s.r.DocsMeta(ids)
}

func (s *Svc) Summarize(docID uint) (*entities.NoteDocument, error) {
	d, err := s.r.GetDoc(docID)
	if err != nil {
		return nil, err
	}
	chunks, err := s.r.ChunksByDoc(docID)
	if err != nil {
		return nil, err
	}
	var text strings.Builder
	for _, ch := range chunks {
		if text.Len() > 12000 {
			break
		}
		text.WriteString(ch.Text)
	}

	summary, err := s.llm.SummarizeNotes(d.Title, text.String())
	if err != nil {
		return nil, err
	}
	if err := s.r.SetSummary(d.DocID, summary); err != nil {
		return nil, err
	}
	d.Summary = summary
	return d, nil
}
