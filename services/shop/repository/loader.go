package repository

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/piresc/coffeeshop/internal/pkg/logger"
	"github.com/piresc/coffeeshop/internal/pkg/models"
	"github.com/xuri/excelize/v2"
)

const shopFieldCount = 5

var errMalformedRow = errors.New("malformed row")

// Loader fills a Store from the startup source file
type Loader struct {
	store *Store
	log   *logger.ZapLogger
}

// NewLoader creates a loader writing into store. A nil logger discards
// warnings about skipped rows.
func NewLoader(store *Store, log *logger.ZapLogger) *Loader {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &Loader{store: store, log: log}
}

// LoadFile reads path into the store and returns how many rows were kept.
// Files ending in .xlsx are read as spreadsheets from sheet, or the first
// sheet when sheet is empty. Anything else is treated as comma-space text.
func (l *Loader) LoadFile(path, sheet string) (int, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return l.loadSpreadsheet(path, sheet)
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open shop source: %w", err)
	}
	defer f.Close()

	return l.Load(f)
}

// Load reads comma-separated rows from r. Malformed rows are skipped with a
// warning; read errors abort the load.
func (l *Loader) Load(r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	loaded := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				l.log.Warn("Skipping unreadable shop row",
					logger.Int("line", parseErr.StartLine),
					logger.Err(err))
				continue
			}
			return loaded, fmt.Errorf("failed to read shop source: %w", err)
		}

		line, _ := reader.FieldPos(0)
		if l.keep(line, record) {
			loaded++
		}
	}

	return loaded, nil
}

func (l *Loader) loadSpreadsheet(path, sheet string) (int, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open shop spreadsheet: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return 0, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	loaded := 0
	for i, row := range rows {
		line := i + 1
		if i == 0 && isHeaderRow(row) {
			continue
		}
		if isBlankRow(row) {
			continue
		}
		if l.keep(line, row) {
			loaded++
		}
	}

	return loaded, nil
}

// keep parses one row and stores it, logging why it was dropped otherwise
func (l *Loader) keep(line int, fields []string) bool {
	item, err := parseShopRow(fields)
	if err != nil {
		l.log.Warn("Skipping malformed shop row",
			logger.Int("line", line),
			logger.Err(err))
		return false
	}

	if _, err := l.store.Get(item.ID); err == nil {
		l.log.Warn("Duplicate shop id, later row wins",
			logger.Int("line", line),
			logger.Int("id", item.ID))
	}
	l.store.Put(item)

	return true
}

func parseShopRow(fields []string) (models.Shop, error) {
	if len(fields) != shopFieldCount {
		return models.Shop{}, fmt.Errorf("%w: expected %d fields, got %d", errMalformedRow, shopFieldCount, len(fields))
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	id, err := strconv.Atoi(fields[0])
	if err != nil || id <= 0 {
		return models.Shop{}, fmt.Errorf("%w: invalid id %q", errMalformedRow, fields[0])
	}
	if fields[1] == "" {
		return models.Shop{}, fmt.Errorf("%w: empty name", errMalformedRow)
	}
	if fields[2] == "" {
		return models.Shop{}, fmt.Errorf("%w: empty address", errMalformedRow)
	}

	lat, err := parseCoordinate(fields[3], 90)
	if err != nil {
		return models.Shop{}, fmt.Errorf("%w: latitude: %v", errMalformedRow, err)
	}
	lng, err := parseCoordinate(fields[4], 180)
	if err != nil {
		return models.Shop{}, fmt.Errorf("%w: longitude: %v", errMalformedRow, err)
	}

	return models.Shop{
		ID:        id,
		Name:      fields[1],
		Address:   fields[2],
		Latitude:  lat,
		Longitude: lng,
	}, nil
}

func parseCoordinate(raw string, limit float64) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", raw)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < -limit || v > limit {
		return 0, fmt.Errorf("out of range: %v", v)
	}
	return v, nil
}

func isHeaderRow(row []string) bool {
	if len(row) == 0 {
		return false
	}
	_, err := strconv.Atoi(strings.TrimSpace(row[0]))
	return err != nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
