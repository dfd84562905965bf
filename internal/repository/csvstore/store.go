// Package csvstore persists the three tables as flat CSV files: a header
// row, comma-separated, UTF-8. Each repository keeps the full table in
// memory and rewrites the whole file after every mutation.
package csvstore

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gusau-brt/ticketing-service/internal/infrastructure/observability"
)

var (
	UserColumns   = []string{"user_id", "first_name", "role", "phone", "bus_stop"}
	WalletColumns = []string{"user_id", "balance"}
	TicketColumns = []string{"ticket_id", "buyer_id", "ticket_type", "amount", "issue_time", "expiry_time", "terminal", "qr_path"}
)

// EnsureTable creates an empty table with the given columns if nothing
// exists at path. An existing file is left untouched: no migration, no
// schema check.
func EnsureTable(path string, columns []string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat table %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}
	return SaveTable(path, columns, nil)
}

// LoadTable reads the full table into memory, returning the header row and
// the data rows.
func LoadTable(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open table %s: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read table %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil, nil
	}
	return records[0], records[1:], nil
}

// SaveTable overwrites the table with the full row set. The write goes to a
// temp file in the same directory and lands via rename, so readers never
// observe a torn file.
func SaveTable(path string, header []string, rows [][]string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp table: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(header); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write rows: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to flush table: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp table: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace table %s: %w", path, err)
	}
	return nil
}

func observe(method string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	observability.RepositoryCalls.WithLabelValues(method, status).Inc()
	observability.RepositoryDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
}
