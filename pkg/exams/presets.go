package exams

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Preset holds per-exam defaults used to enrich the generation prompt.
type Preset struct {
	Exam       string
	Subjects   []string
	DailyHours float64
	Notes      string
	Books      []Book
}

type Book struct {
	Subject string
	Title   string
	Author  string
}

type PresetEngine interface {
	Lookup(exam string) (Preset, bool)
	Exams() []string
	// PromptHint renders preset context for the generation prompt, empty when
	// the exam is unknown.
	PromptHint(exam string) string
}

type presets struct {
	byExam map[string]Preset
	order  []string
}

// LoadFromFiles reads exam presets from a CSV and, optionally, recommended
// books from an xlsx workbook. The books file failing to load is a warning
// condition, not fatal; the presets CSV is required.
func LoadFromFiles(presetsCSV, booksXLSX string) (PresetEngine, error) {
	p := &presets{byExam: map[string]Preset{}}

	if presetsCSV != "" {
		if err := p.loadPresetsCSV(presetsCSV); err != nil {
			return nil, err
		}
	}
	if booksXLSX != "" {
		_ = p.loadBooksXLSX(booksXLSX)
	}

	if len(p.byExam) == 0 {
		return nil, errors.New("no exam presets loaded")
	}
	return p, nil
}

func (p *presets) loadPresetsCSV(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	head, err := cr.Read()
	if err != nil {
		return err
	}

	norm := func(s string) string {
		s = strings.TrimSpace(s)
		s = strings.TrimPrefix(s, "\uFEFF") // BOM
		s = strings.ToLower(s)
		s = strings.ReplaceAll(s, " ", "")
		s = strings.ReplaceAll(s, "-", "")
		s = strings.ReplaceAll(s, "_", "")
		return s
	}
	hmap := map[string]int{}
	for i, h := range head {
		hmap[norm(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[norm(k)]; ok {
				return idx
			}
		}
		return -1
	}

	cExam := findAny("Exam", "exam_name", "examname")
	cSubj := findAny("Subjects", "subject_list", "subjectlist")
	cHrs := findAny("DailyHours", "daily_study_hrs", "hours_per_day", "hoursperday")
	cNote := findAny("Notes", "note", "remark", "tips")

	if cExam == -1 || cSubj == -1 {
		return fmt.Errorf("ExamPresets.csv missing required columns. Found headers: %v\nNeed at least: Exam, Subjects", head)
	}

	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		get := func(idx int) string {
			if idx < 0 || idx >= len(rec) {
				return ""
			}
			return rec[idx]
		}

		exam := strings.TrimSpace(get(cExam))
		if exam == "" {
			continue // skip invalid rows
		}
		var subjects []string
		for _, s := range strings.Split(get(cSubj), ";") {
			if s = strings.TrimSpace(s); s != "" {
				subjects = append(subjects, s)
			}
		}
		hrs, _ := strconv.ParseFloat(strings.TrimSpace(get(cHrs)), 64)
		if hrs <= 0 {
			hrs = 6
		}

		key := normKey(exam)
		p.byExam[key] = Preset{
			Exam:       exam,
			Subjects:   subjects,
			DailyHours: hrs,
			Notes:      strings.TrimSpace(get(cNote)),
		}
		p.order = append(p.order, key)
	}
	return nil
}

func (p *presets) loadBooksXLSX(path string) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		return err
	}
	// expected columns: Exam | Subject | Title | Author
	for _, row := range rows[1:] {
		get := func(i int) string {
			if i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}
		exam, subject, title := get(0), get(1), get(2)
		if exam == "" || title == "" {
			continue
		}
		key := normKey(exam)
		pr, ok := p.byExam[key]
		if !ok {
			continue
		}
		pr.Books = append(pr.Books, Book{Subject: subject, Title: title, Author: get(3)})
		p.byExam[key] = pr
	}
	return nil
}

func normKey(exam string) string {
	return strings.ToLower(strings.TrimSpace(exam))
}

func (p *presets) Lookup(exam string) (Preset, bool) {
	pr, ok := p.byExam[normKey(exam)]
	return pr, ok
}

func (p *presets) Exams() []string {
	out := make([]string, 0, len(p.order))
	for _, k := range p.order {
		out = append(out, p.byExam[k].Exam)
	}
	return out
}

func (p *presets) PromptHint(exam string) string {
	pr, ok := p.Lookup(exam)
	if !ok {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "EXAM PRESET for %s:\n- core subjects: %s\n- suggested study time: %.1f hours/day\n",
		pr.Exam, strings.Join(pr.Subjects, ", "), pr.DailyHours)
	if pr.Notes != "" {
		fmt.Fprintf(&b, "- note: %s\n", pr.Notes)
	}
	for _, bk := range pr.Books {
		fmt.Fprintf(&b, "- recommended: %s", bk.Title)
		if bk.Author != "" {
			fmt.Fprintf(&b, " (%s)", bk.Author)
		}
		if bk.Subject != "" {
			fmt.Fprintf(&b, " [%s]", bk.Subject)
		}
		b.WriteString("\n")
	}
	return b.String()
}
