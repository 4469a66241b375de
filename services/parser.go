package services

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"path"
	"strings"

	"rozklad-api/models"
	"rozklad-api/parser"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// ParserService розбирає завантажені файли розкладу.
// Формат визначається за розширенням; усі шляхи сходяться
// у спільному конвеєрі пакета parser.
type ParserService struct{}

func NewParserService() *ParserService {
	return &ParserService{}
}

// ParseUpload розбирає файл розкладу у нормалізовану колекцію занять
func (s *ParserService) ParseUpload(fileName string, r io.Reader) (models.ParseResult, error) {
	switch strings.ToLower(path.Ext(fileName)) {
	case ".xlsx":
		return s.parseXLSX(r)
	case ".xls":
		return s.parseXLS(r)
	case ".csv", ".txt":
		data, err := io.ReadAll(r)
		if err != nil {
			return models.ParseResult{}, fmt.Errorf("failed to read csv: %w", err)
		}
		return parser.Parse(string(data)), nil
	default:
		return models.ParseResult{}, fmt.Errorf("unsupported file format: %s", fileName)
	}
}

func (s *ParserService) parseXLSX(r io.Reader) (models.ParseResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return models.ParseResult{}, fmt.Errorf("failed to open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return models.ParseResult{}, fmt.Errorf("no sheets found")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return models.ParseResult{}, fmt.Errorf("failed to read sheet: %w", err)
	}

	log.Printf("XLSX: аркуш %q, рядків: %d", sheets[0], len(rows))
	return parser.ParseRows(rows), nil
}

// parseXLS читає застарілий бінарний формат Excel
func (s *ParserService) parseXLS(r io.Reader) (models.ParseResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return models.ParseResult{}, fmt.Errorf("failed to read xls: %w", err)
	}

	book, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return models.ParseResult{}, fmt.Errorf("failed to open xls: %w", err)
	}

	sheet := book.GetSheet(0)
	if sheet == nil {
		return models.ParseResult{}, fmt.Errorf("no sheets found")
	}

	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		cells := make([]string, 0, row.LastCol())
		for j := 0; j < row.LastCol(); j++ {
			cells = append(cells, row.Col(j))
		}
		rows = append(rows, cells)
	}

	log.Printf("XLS: рядків: %d", len(rows))
	return parser.ParseRows(rows), nil
}
