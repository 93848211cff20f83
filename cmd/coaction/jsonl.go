package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/coactgraph/event"
)

const maxLineBytes = 4 << 20

var errMissingField = errors.New("missing required field")

// record is one normalized event line.
type record struct {
	AccountID *int64   `json:"account_id"`
	TS        *int64   `json:"ts"`
	URLs      []string `json:"urls"`
}

// jsonlSource streams events from newline-delimited JSON. Lines are trimmed,
// so CRLF input works and whitespace-only lines are skipped; a malformed line
// stops iteration with an error.
type jsonlSource struct {
	closer  io.Closer
	scanner *bufio.Scanner
	line    int
	cur     event.Event
	err     error
}

func openJSONL(path string) (*jsonlSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open events: %w", err)
	}
	return newJSONLSource(f, f), nil
}

func newJSONLSource(r io.Reader, c io.Closer) *jsonlSource {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)
	return &jsonlSource{closer: c, scanner: sc}
}

func (s *jsonlSource) Next() bool {
	if s.err != nil {
		return false
	}
	for s.scanner.Scan() {
		s.line++
		raw := bytes.TrimSpace(s.scanner.Bytes())
		if len(raw) == 0 {
			continue
		}
		var rec record
		if err := json.Unmarshal(raw, &rec); err != nil {
			s.err = fmt.Errorf("line %d: %w", s.line, err)
			return false
		}
		if rec.AccountID == nil || rec.TS == nil {
			s.err = fmt.Errorf("line %d: account_id/ts: %w", s.line, errMissingField)
			return false
		}
		s.cur = event.Event{ActorID: *rec.AccountID, Timestamp: *rec.TS, Keys: rec.URLs}
		return true
	}
	s.err = s.scanner.Err()

	return false
}

func (s *jsonlSource) Event() event.Event { return s.cur }

func (s *jsonlSource) Error() error { return s.err }

func (s *jsonlSource) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
