// Package results reads renderer conformance results from CSV.
//
// The file starts with a header row whose first field is "title", followed
// by one row per test document:
//
//	title,batik,jsvg,svgsalamander,echosvg
//	structure/svg/zero-size.svg,1,2,1,1
//
// The first field is the test identifier (a relative, slash-separated path).
// The remaining four fields are outcome codes, one per renderer slot.
package results

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Slots is the number of renderers compared in one results file.
const Slots = 4

// HeaderMarker is the first field of the header row.
const HeaderMarker = "title"

// Outcome is the result of rendering one test with one renderer.
type Outcome int

const (
	Unknown Outcome = iota
	Passed
	Failed
	Crashed
)

func (o Outcome) String() string {
	switch o {
	case Unknown:
		return "unknown"
	case Passed:
		return "passed"
	case Failed:
		return "failed"
	case Crashed:
		return "crashed"
	default:
		return "outcome(" + strconv.Itoa(int(o)) + ")"
	}
}

var (
	// ErrArity is returned for a row without exactly 1+Slots fields.
	ErrArity = errors.New("wrong number of fields")
	// ErrOutcome is returned for a code that is not an integer in [0,3].
	ErrOutcome = errors.New("invalid outcome code")
)

// Row is one test identifier with its per-renderer outcomes.
type Row struct {
	Name     string
	Outcomes [Slots]Outcome
}

// Group returns the first path segment of the identifier.
func (r Row) Group() string {
	return GroupOf(r.Name)
}

// GroupOf returns name up to (not including) the first '/'.
// A name without a separator is its own group.
func GroupOf(name string) string {
	group, _, _ := strings.Cut(name, "/")
	return group
}

// ReadFile opens path and reads every row from it.
func ReadFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening results: %w", err)
	}
	defer f.Close()

	rows, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// Read parses CSV results from r. Header rows are dropped. Any row with the
// wrong number of fields or a bad outcome code aborts the read; rows are
// never partially accepted.
func Read(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // header width differs between suites
	cr.ReuseRecord = true
	cr.LazyQuotes = true

	var rows []Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if record[0] == HeaderMarker {
			continue
		}
		line, _ := cr.FieldPos(0)
		row, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseRecord(record []string) (Row, error) {
	if len(record) != 1+Slots {
		return Row{}, fmt.Errorf("%w: want %d, got %d", ErrArity, 1+Slots, len(record))
	}
	row := Row{Name: record[0]}
	for i, field := range record[1:] {
		code, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil || code < int(Unknown) || code > int(Crashed) {
			return Row{}, fmt.Errorf("%w %q in column %d", ErrOutcome, field, i+2)
		}
		row.Outcomes[i] = Outcome(code)
	}
	return row, nil
}
