// Package excel imports vocabulary lists from Excel or CSV files, used to
// seed a deck with an external word set.
package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/example/vocabsrs/pkg/models"
)

// ImportConfig defines the import configuration
type ImportConfig struct {
	FilePath          string // Path to the Excel or CSV file
	WordColumn        string // Column with the English word
	MeaningColumn     string // Column with the meaning
	TranslationColumn string // Column with the Hindi translation
	SheetName         string // Name of the sheet to import
	StartRow          int    // The row to start importing from (1-based index)
}

// DefaultImportConfig returns the default import configuration
func DefaultImportConfig(filePath string) ImportConfig {
	return ImportConfig{
		FilePath:          filePath,
		WordColumn:        "A",
		MeaningColumn:     "B",
		TranslationColumn: "C",
		SheetName:         "Sheet1",
		StartRow:          2, // By default, start from the second row (skip header)
	}
}

// ImportResult holds the result of an import operation
type ImportResult struct {
	TotalProcessed int
	Imported       int
	Skipped        int
	Errors         []string
}

// ImportEntries reads vocabulary entries from an Excel or CSV file.
func ImportEntries(config ImportConfig) ([]models.VocabEntry, *ImportResult, error) {
	ext := strings.ToLower(filepath.Ext(config.FilePath))
	if ext == ".csv" {
		return importFromCSV(config)
	}
	return importFromExcel(config)
}

func importFromExcel(config ImportConfig) ([]models.VocabEntry, *ImportResult, error) {
	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open Excel file: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get rows: %v", err)
	}

	result := &ImportResult{Errors: make([]string, 0)}
	var entries []models.VocabEntry

	wordIdx := columnIndex(config.WordColumn)
	meaningIdx := columnIndex(config.MeaningColumn)
	translationIdx := columnIndex(config.TranslationColumn)

	for i, row := range rows {
		if i < config.StartRow-1 {
			continue
		}
		result.TotalProcessed++

		entry, err := entryFromRow(row, wordIdx, meaningIdx, translationIdx)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
			continue
		}
		entries = append(entries, entry)
		result.Imported++
	}

	return entries, result, nil
}

func importFromCSV(config ImportConfig) ([]models.VocabEntry, *ImportResult, error) {
	f, err := os.Open(config.FilePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open CSV file: %v", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	result := &ImportResult{Errors: make([]string, 0)}
	var entries []models.VocabEntry

	wordIdx := columnIndex(config.WordColumn)
	meaningIdx := columnIndex(config.MeaningColumn)
	translationIdx := columnIndex(config.TranslationColumn)

	line := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", line, err))
			continue
		}
		if line < config.StartRow {
			continue
		}
		result.TotalProcessed++

		entry, err := entryFromRow(row, wordIdx, meaningIdx, translationIdx)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", line, err))
			continue
		}
		entries = append(entries, entry)
		result.Imported++
	}

	return entries, result, nil
}

func entryFromRow(row []string, wordIdx, meaningIdx, translationIdx int) (models.VocabEntry, error) {
	word := cell(row, wordIdx)
	if word == "" {
		return models.VocabEntry{}, fmt.Errorf("empty word")
	}
	meaning := cell(row, meaningIdx)
	if meaning == "" {
		return models.VocabEntry{}, fmt.Errorf("empty meaning for %q", word)
	}
	return models.VocabEntry{
		Word:        word,
		Meaning:     meaning,
		Translation: cell(row, translationIdx),
	}, nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// columnIndex converts a column letter ("A", "B", ...) to a 0-based index.
func columnIndex(col string) int {
	col = strings.ToUpper(strings.TrimSpace(col))
	if col == "" {
		return -1
	}
	idx := 0
	for _, r := range col {
		if r < 'A' || r > 'Z' {
			return -1
		}
		idx = idx*26 + int(r-'A') + 1
	}
	return idx - 1
}
