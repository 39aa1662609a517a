package glossary

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Spreadsheet header names recognized by ImportXLSX.
const (
	ColumnVietnamese = "Vietnamese"
	ColumnEnglish    = "English"
	ColumnSource     = "Source"
)

// ImportXLSX reads entries from the first sheet of an .xlsx workbook. The
// first row is a header naming the Vietnamese and English columns and,
// optionally, a Source column. Rows with a blank Vietnamese cell are skipped.
func ImportXLSX(path string) (Glossary, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Glossary{}, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	return entriesFromRows(rows)
}

func entriesFromRows(rows [][]string) (Glossary, error) {
	if len(rows) == 0 {
		return Glossary{}, nil
	}

	cols := map[string]int{}
	for i, name := range rows[0] {
		cols[strings.TrimSpace(name)] = i
	}
	vn, ok := cols[ColumnVietnamese]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, ColumnVietnamese)
	}
	en, ok := cols[ColumnEnglish]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, ColumnEnglish)
	}
	src, hasSrc := cols[ColumnSource]

	out := make(Glossary, 0, len(rows)-1)
	for _, row := range rows[1:] {
		e := Entry{
			SourceTerm: cell(row, vn),
			TargetTerm: cell(row, en),
		}
		if hasSrc {
			e.Origin = cell(row, src)
		}
		e = e.Normalized()
		if e.SourceTerm == "" {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// cell returns row[i], or "" for short rows (GetRows trims trailing blanks).
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
