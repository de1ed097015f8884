package flatfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/gofrs/flock"
	"go.uber.org/zap"
)

// Table is one append-only, file-backed record store with a fixed header.
// Every read is a full re-read of the backing file; there is no cache. All
// operations are serialized by an in-process mutex, and mutations additionally
// hold a file lock so a concurrently running process (the ETL, a second server)
// cannot interleave a partial write.
type Table struct {
	name   string
	path   string
	fields []string

	mu  sync.Mutex
	flk *flock.Flock
	log *zap.Logger
}

func NewTable(path string, fields []string, log *zap.Logger) *Table {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return &Table{
		name:   name,
		path:   path,
		fields: fields,
		flk:    flock.New(path + ".lock"),
		log:    log.With(zap.String("table", name)),
	}
}

// Name returns the table name derived from the backing file.
func (t *Table) Name() string { return t.name }

// Fields returns the table's header in column order.
func (t *Table) Fields() []string { return t.fields }

// EnsureExists creates the backing file containing only the header line when
// it is absent. A missing or unusable storage root is a startup precondition
// failure, not a per-request error.
func (t *Table) EnsureExists() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	root := filepath.Dir(t.path)
	if _, err := os.Stat(root); err != nil {
		return fmt.Errorf("%w: storage root %s: %v", ErrPrecondition, root, err)
	}

	if _, err := os.Stat(t.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("%w: stat %s: %v", ErrPrecondition, t.path, err)
	}

	header, err := Encode(headerRecord(t.fields), t.fields)
	if err != nil {
		return err
	}
	if err := os.WriteFile(t.path, []byte(header+"\n"), 0o644); err != nil {
		return fmt.Errorf("%w: create %s: %v", ErrPrecondition, t.path, err)
	}

	t.log.Info("Table file created", zap.String("path", t.path))
	return nil
}

// ReadAll returns every persisted record in file order. The backing file is
// re-read on every call.
func (t *Table) ReadAll() ([]Record, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.readAll()
}

// Append serializes the record using the table's header order and appends it
// as one new line. Existing content is never re-read or rewritten.
func (t *Table) Append(rec Record) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.flk.Lock(); err != nil {
		return fmt.Errorf("lock table %s: %w", t.name, err)
	}
	defer t.flk.Unlock()

	return t.append(rec)
}

// AppendAssign allocates the next id, stores it in the record's id field and
// appends, all under one lock, so allocation and append cannot interleave with
// another writer on the same table. Returns the assigned id.
func (t *Table) AppendAssign(rec Record) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.flk.Lock(); err != nil {
		return 0, fmt.Errorf("lock table %s: %w", t.name, err)
	}
	defer t.flk.Unlock()

	id, err := t.nextID()
	if err != nil {
		return 0, err
	}
	rec[FieldID] = strconv.Itoa(id)
	if err := t.append(rec); err != nil {
		return 0, err
	}
	return id, nil
}

// RewriteAll replaces the entire backing file with the header plus the given
// records, in the given order.
func (t *Table) RewriteAll(records []Record) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.flk.Lock(); err != nil {
		return fmt.Errorf("lock table %s: %w", t.name, err)
	}
	defer t.flk.Unlock()

	var b strings.Builder
	header, err := Encode(headerRecord(t.fields), t.fields)
	if err != nil {
		return err
	}
	b.WriteString(header + "\n")
	for _, rec := range records {
		line, err := Encode(rec, t.fields)
		if err != nil {
			return fmt.Errorf("encode row for %s: %w", t.name, err)
		}
		b.WriteString(line + "\n")
	}

	if err := os.WriteFile(t.path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("rewrite %s: %w", t.path, err)
	}

	tableRewrites.WithLabelValues(t.name).Inc()
	t.log.Debug("Table rewritten", zap.Int("rows", len(records)))
	return nil
}

// NextID scans all records and returns max(id)+1, or 1 for an empty table.
// The full scan is acceptable because tables are expected to stay small;
// callers needing several ids in one request should use AppendAssign per row
// rather than calling NextID up front.
func (t *Table) NextID() (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.nextID()
}

func (t *Table) readAll() ([]Record, error) {
	content, err := os.ReadFile(t.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", t.path, err)
	}

	_, records := DecodeTable(string(content))
	tableReads.WithLabelValues(t.name).Inc()
	return records, nil
}

func (t *Table) append(rec Record) error {
	line, err := Encode(rec, t.fields)
	if err != nil {
		return fmt.Errorf("encode row for %s: %w", t.name, err)
	}

	f, err := os.OpenFile(t.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", t.path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("append to %s: %w", t.path, err)
	}

	tableAppends.WithLabelValues(t.name).Inc()
	return nil
}

func (t *Table) nextID() (int, error) {
	records, err := t.readAll()
	if err != nil {
		return 0, err
	}

	max := 0
	for _, rec := range records {
		id, err := strconv.Atoi(strings.TrimSpace(rec[FieldID]))
		if err != nil {
			return 0, fmt.Errorf("%w: table %s has non-numeric id %q", ErrCorruptData, t.name, rec[FieldID])
		}
		if id > max {
			max = id
		}
	}
	return max + 1, nil
}

// FieldID is the allocation column present in every table.
const FieldID = "id"

func headerRecord(fields []string) Record {
	rec := make(Record, len(fields))
	for _, f := range fields {
		rec[f] = f
	}
	return rec
}
