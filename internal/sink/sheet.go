package sink

import (
	"fmt"
	"os"
	"sync"

	"github.com/xuri/excelize/v2"

	"mediform/internal/extract"
)

// Sheet is the append-only spreadsheet the extracted records land in. The
// workbook is created with the schema header row on first use; after that,
// every Append writes one row below the current last one.
type Sheet struct {
	path string
	mu   sync.Mutex
}

func NewSheet(path string) *Sheet {
	return &Sheet{path: path}
}

// Append writes one record as the next row. The mutex serializes the
// read-row-count/write-row critical section so concurrent completions never
// land on the same row.
func (s *Sheet) Append(rec *extract.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, created, err := s.open()
	if err != nil {
		return err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("failed to read sheet: %w", err)
	}
	next := len(rows) + 1

	for i, v := range rec.Values() {
		cell, err := excelize.CoordinatesToCellName(i+1, next)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("failed to write cell %s: %w", cell, err)
		}
	}

	if created {
		if err := f.SaveAs(s.path); err != nil {
			return fmt.Errorf("failed to save sheet: %w", err)
		}
		return nil
	}
	if err := f.Save(); err != nil {
		return fmt.Errorf("failed to save sheet: %w", err)
	}
	return nil
}

// open returns the workbook, creating it with the header row when it does
// not exist yet.
func (s *Sheet) open() (*excelize.File, bool, error) {
	if _, err := os.Stat(s.path); err != nil {
		if !os.IsNotExist(err) {
			return nil, false, fmt.Errorf("failed to stat sheet: %w", err)
		}
		f := excelize.NewFile()
		sheet := f.GetSheetName(0)
		for i, name := range extract.Columns() {
			cell, err := excelize.CoordinatesToCellName(i+1, 1)
			if err != nil {
				f.Close()
				return nil, false, err
			}
			if err := f.SetCellValue(sheet, cell, name); err != nil {
				f.Close()
				return nil, false, fmt.Errorf("failed to write header: %w", err)
			}
		}
		return f, true, nil
	}

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, false, fmt.Errorf("failed to open sheet: %w", err)
	}
	return f, false, nil
}
