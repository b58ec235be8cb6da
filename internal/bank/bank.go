// Package bank reads and writes portable question bank documents. A bank
// groups questions under category types so it can be loaded into an empty
// store, where category ids are not known in advance.
package bank

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid bank")

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
)

var csvHeader = []string{"category", "question", "answer", "difficulty"}

type Bank struct {
	Categories []Category `json:"categories" yaml:"categories"`
}

type Category struct {
	Type      string     `json:"type" yaml:"type"`
	Questions []Question `json:"questions" yaml:"questions"`
}

type Question struct {
	Question   string `json:"question" yaml:"question"`
	Answer     string `json:"answer" yaml:"answer"`
	Difficulty int    `json:"difficulty" yaml:"difficulty"`
}

// QuestionCount is the number of questions across all categories.
func (b Bank) QuestionCount() int {
	n := 0
	for _, c := range b.Categories {
		n += len(c.Questions)
	}
	return n
}

// Validate rejects blank category types, blank questions or answers, and
// difficulties outside 1..5.
func (b Bank) Validate() error {
	for i, c := range b.Categories {
		if strings.TrimSpace(c.Type) == "" {
			return fmt.Errorf("%w: category %d has no type", ErrInvalid, i+1)
		}
		for j, q := range c.Questions {
			switch {
			case strings.TrimSpace(q.Question) == "":
				return fmt.Errorf("%w: %s question %d has no text", ErrInvalid, c.Type, j+1)
			case strings.TrimSpace(q.Answer) == "":
				return fmt.Errorf("%w: %s question %d has no answer", ErrInvalid, c.Type, j+1)
			case q.Difficulty < 1 || q.Difficulty > 5:
				return fmt.Errorf("%w: %s question %d difficulty %d outside 1..5", ErrInvalid, c.Type, j+1, q.Difficulty)
			}
		}
	}
	return nil
}

// FormatFromFilename picks a format by extension.
func FormatFromFilename(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".csv":
		return FormatCSV, nil
	}
	return "", fmt.Errorf("%w: unsupported file %q", ErrInvalid, name)
}

func ReadFile(path string) (Bank, error) {
	format, err := FormatFromFilename(path)
	if err != nil {
		return Bank{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return Bank{}, err
	}
	defer f.Close()
	return Decode(f, format)
}

// Decode parses and validates a bank document.
func Decode(r io.Reader, format Format) (Bank, error) {
	var (
		b   Bank
		err error
	)
	switch format {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&b)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&b)
	case FormatCSV:
		b, err = decodeCSV(r)
	default:
		return Bank{}, fmt.Errorf("%w: unsupported format %q", ErrInvalid, format)
	}
	if err != nil {
		if errors.Is(err, ErrInvalid) {
			return Bank{}, err
		}
		return Bank{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := b.Validate(); err != nil {
		return Bank{}, err
	}
	return b, nil
}

func decodeCSV(r io.Reader) (Bank, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return Bank{}, err
	}
	if len(records) < 2 {
		return Bank{}, fmt.Errorf("%w: CSV must have header + at least 1 row", ErrInvalid)
	}

	if !isCSVHeader(records[0]) {
		return Bank{}, fmt.Errorf("%w: CSV header must be %s", ErrInvalid, strings.Join(csvHeader, ","))
	}

	var b Bank
	index := make(map[string]int)
	for i, row := range records[1:] {
		if len(row) != len(csvHeader) {
			return Bank{}, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalid, i+2, len(row), len(csvHeader))
		}
		difficulty, err := strconv.Atoi(strings.TrimSpace(row[3]))
		if err != nil {
			return Bank{}, fmt.Errorf("%w: row %d difficulty %q", ErrInvalid, i+2, row[3])
		}

		categoryType := strings.TrimSpace(row[0])
		pos, ok := index[categoryType]
		if !ok {
			pos = len(b.Categories)
			index[categoryType] = pos
			b.Categories = append(b.Categories, Category{Type: categoryType})
		}
		b.Categories[pos].Questions = append(b.Categories[pos].Questions, Question{
			Question:   row[1],
			Answer:     row[2],
			Difficulty: difficulty,
		})
	}
	return b, nil
}

func isCSVHeader(row []string) bool {
	if len(row) != len(csvHeader) {
		return false
	}
	for i, col := range row {
		if !strings.EqualFold(strings.TrimSpace(col), csvHeader[i]) {
			return false
		}
	}
	return true
}

// WriteCSV writes one row per question under a fixed header.
func WriteCSV(w io.Writer, b Bank) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, c := range b.Categories {
		for _, q := range c.Questions {
			if err := cw.Write([]string{c.Type, q.Question, q.Answer, strconv.Itoa(q.Difficulty)}); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
