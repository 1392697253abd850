// Package sheetstore is the migration adapter for the legacy spreadsheet that
// used to be the system of record. It speaks the workbook's native dialect:
// positional columns, a header on row 1, "deleted" rows blanked in place, and
// range reads served through a short-lived cache. The database replaced it as
// the primary store; this package remains so existing workbooks can be
// imported and current data exported back for the old tooling.
//
// Known limitation, inherited by design: locate-then-write is not atomic. Two
// writers racing on the same sheet can both compute a row index that a third
// write has made stale. Appends never shift existing rows, so this stays
// harmless today, but any future compaction of tombstoned rows would break it.
package sheetstore

import (
	"errors"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/xuri/excelize/v2"
)

// ErrNotFound reports that no live row carries the requested id. It is always
// raised before anything is written.
var ErrNotFound = errors.New("sheetstore: row not found")

const cacheTTL = 5 * time.Minute

// Store reads and writes one xlsx workbook. All access goes through the mutex;
// excelize handles are opened per operation, never kept across calls.
type Store struct {
	path  string
	mu    sync.Mutex
	cache *rangeCache
}

func New(path string) *Store {
	return &Store{path: path, cache: newRangeCache(cacheTTL)}
}

// sheetOf extracts the sheet name from a range key like "Members!A2:R".
func sheetOf(rangeKey string) string {
	if i := strings.Index(rangeKey, "!"); i >= 0 {
		return rangeKey[:i]
	}
	return rangeKey
}

// ReadRange returns the data rows of the range's sheet, header row excluded.
// Results are cached per range key for five minutes. Any failure, including a
// missing or unconfigured workbook, degrades to an empty slice: the read path
// never surfaces an error, so callers cannot tell "no data" from "fetch
// failed". That trade-off is inherited from the legacy system.
func (s *Store) ReadRange(rangeKey string) [][]string {
	if rows, ok := s.cache.get(rangeKey); ok {
		return rows
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return [][]string{}
	}
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		log.Printf("sheetstore: cannot open workbook %s: %v", s.path, err)
		return [][]string{}
	}
	defer f.Close()

	all, err := f.GetRows(sheetOf(rangeKey))
	if err != nil {
		log.Printf("sheetstore: cannot read sheet %s: %v", sheetOf(rangeKey), err)
		return [][]string{}
	}

	rows := [][]string{}
	if len(all) > 1 {
		rows = all[1:]
	}
	s.cache.set(rangeKey, rows)
	return rows
}

// AppendRows adds logical rows after the last used row of the sheet and drops
// every cached range under that sheet. Returns false instead of an error so
// callers decide how to surface the failure.
func (s *Store) AppendRows(rangeKey string, rows [][]string) bool {
	sheet := sheetOf(rangeKey)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return false
	}
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		log.Printf("sheetstore: cannot open workbook for append: %v", err)
		return false
	}
	defer f.Close()

	existing, err := f.GetRows(sheet)
	if err != nil {
		log.Printf("sheetstore: cannot read sheet %s for append: %v", sheet, err)
		return false
	}

	next := len(existing) + 1
	for i, row := range rows {
		if err := f.SetSheetRow(sheet, "A"+strconv.Itoa(next+i), rowValues(row)); err != nil {
			log.Printf("sheetstore: append to %s failed: %v", sheet, err)
			return false
		}
	}
	if err := f.Save(); err != nil {
		log.Printf("sheetstore: save after append failed: %v", err)
		return false
	}

	s.cache.invalidateSheet(sheet)
	return true
}

// OverwriteRow replaces a single 1-based sheet row. Used for in-place updates
// and, with an all-empty row, for tombstoning a deleted record: the blanked
// row keeps its slot so positional math for the rest of the sheet stays valid.
func (s *Store) OverwriteRow(sheet string, sheetRow int, row []string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return false
	}
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		log.Printf("sheetstore: cannot open workbook for update: %v", err)
		return false
	}
	defer f.Close()

	if err := f.SetSheetRow(sheet, "A"+strconv.Itoa(sheetRow), rowValues(row)); err != nil {
		log.Printf("sheetstore: overwrite row %d on %s failed: %v", sheetRow, sheet, err)
		return false
	}
	if err := f.Save(); err != nil {
		log.Printf("sheetstore: save after overwrite failed: %v", err)
		return false
	}

	s.cache.invalidateSheet(sheet)
	return true
}

// LocateRow scans the sheet for the first live row whose first column equals
// id and returns its 1-based sheet row number (data starts at row 2, after the
// header). Tombstoned rows have an empty first column and never match.
func (s *Store) LocateRow(rangeKey, id string) (int, error) {
	rows := s.ReadRange(rangeKey)
	for i, row := range rows {
		if len(row) > 0 && row[0] != "" && row[0] == id {
			return i + 2, nil
		}
	}
	return 0, ErrNotFound
}

// Tombstone blanks the row carrying id. The not-found check happens before
// any write; a failed locate leaves the workbook untouched.
func (s *Store) Tombstone(rangeKey, id string, width int) error {
	sheetRow, err := s.LocateRow(rangeKey, id)
	if err != nil {
		return err
	}
	if !s.OverwriteRow(sheetOf(rangeKey), sheetRow, make([]string, width)) {
		return errors.New("sheetstore: tombstone write failed")
	}
	return nil
}

// RewriteSheet replaces the sheet's entire contents with a header row followed
// by the given rows. Used by the exporter; tombstones do not survive a
// rewrite.
func (s *Store) RewriteSheet(sheet string, header []string, rows [][]string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return false
	}
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		// Export may target a fresh workbook.
		f = excelize.NewFile()
	}
	defer f.Close()

	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		if _, err := f.NewSheet(sheet); err != nil {
			log.Printf("sheetstore: cannot create sheet %s: %v", sheet, err)
			return false
		}
	}
	previous, _ := f.GetRows(sheet)

	if err := f.SetSheetRow(sheet, "A1", rowValues(header)); err != nil {
		log.Printf("sheetstore: cannot write header on %s: %v", sheet, err)
		return false
	}
	for i, row := range rows {
		if err := f.SetSheetRow(sheet, "A"+strconv.Itoa(i+2), rowValues(row)); err != nil {
			log.Printf("sheetstore: cannot write row %d on %s: %v", i+2, sheet, err)
			return false
		}
	}
	// Blank any leftover rows from the previous contents.
	for r := len(rows) + 2; r <= len(previous); r++ {
		if err := f.SetSheetRow(sheet, "A"+strconv.Itoa(r), rowValues(make([]string, len(header)))); err != nil {
			log.Printf("sheetstore: cannot blank row %d on %s: %v", r, sheet, err)
			return false
		}
	}

	if err := f.SaveAs(s.path); err != nil {
		log.Printf("sheetstore: save after rewrite failed: %v", err)
		return false
	}

	s.cache.invalidateSheet(sheet)
	return true
}

func rowValues(row []string) *[]interface{} {
	values := make([]interface{}, len(row))
	for i, v := range row {
		values[i] = v
	}
	return &values
}
