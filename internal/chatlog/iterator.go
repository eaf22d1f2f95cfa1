package chatlog

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/classline/backend/internal/domain"
)

// Iterator is a lazy forward-only scan over one conversation log, in append
// order. Each Iter call starts a fresh scan from the beginning. Usage follows
// bufio.Scanner:
//
//	it, err := store.Iter(conversationID)
//	if err != nil { ... }
//	defer it.Close()
//	for it.Next() {
//		msg := it.Message()
//		...
//	}
//	if err := it.Err(); err != nil { ... }
type Iterator struct {
	file    *os.File
	scanner *bufio.Scanner
	current *domain.Message
	err     error
}

// Iter opens a fresh scan over the conversation's log.
// Returns domain.ErrConversationLogNotFound if the log does not exist.
func (s *Store) Iter(conversationID int64) (*Iterator, error) {
	f, err := os.Open(s.path(conversationID))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("conversation log %d: %w", conversationID, domain.ErrConversationLogNotFound)
		}
		return nil, fmt.Errorf("open conversation log %d: %w", conversationID, err)
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxRecordSize)

	return &Iterator{file: f, scanner: scanner}, nil
}

// Next advances to the next message. It returns false at end of log or on
// the first error; Err distinguishes the two.
func (it *Iterator) Next() bool {
	if it.err != nil {
		return false
	}

	for it.scanner.Scan() {
		line := it.scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		msg, err := unmarshalRecord(line)
		if err != nil {
			it.err = err
			return false
		}

		it.current = msg
		return true
	}

	it.err = it.scanner.Err()
	return false
}

// Message returns the message at the current position. Only valid after a
// Next call that returned true.
func (it *Iterator) Message() *domain.Message { return it.current }

// Err returns the first error encountered during the scan, if any.
func (it *Iterator) Err() error { return it.err }

// Close releases the underlying file.
func (it *Iterator) Close() error { return it.file.Close() }
