// Package chatlog implements the append-only conversation log: one
// newline-delimited file of JSON records per conversation, with strictly
// increasing per-conversation message ids.
//
// Records are immutable once written. An append is a single write to a file
// opened with O_APPEND; prior bytes are never rewritten. Message ids are
// assigned as max(existing ids)+1 under a per-conversation lock, so two
// concurrent appends to the same conversation can never produce duplicate
// ids, while appends to different conversations do not block each other.
//
// Readers may run concurrently with appends: a scan started before a
// concurrent append may or may not observe the new entry. No snapshot
// isolation is provided or needed — records are only ever added at the end.
package chatlog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/classline/backend/internal/domain"
)

// maxRecordSize bounds a single log line during scans.
const maxRecordSize = 1 << 20

// Store manages the conversation log files under one root directory.
type Store struct {
	dir string

	mu    sync.Mutex
	locks map[int64]*sync.Mutex // per-conversation append locks
}

// NewStore creates the root directory if needed and returns a Store.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create chat log dir: %w", err)
	}

	return &Store{
		dir:   dir,
		locks: make(map[int64]*sync.Mutex),
	}, nil
}

// path returns the log file path for a conversation id.
func (s *Store) path(conversationID int64) string {
	return filepath.Join(s.dir, strconv.FormatInt(conversationID, 10)+".chat")
}

// appendLock returns the mutex serializing appends to one conversation.
func (s *Store) appendLock(conversationID int64) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[conversationID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[conversationID] = lock
	}
	return lock
}

// Create creates an empty log for the conversation.
// Returns domain.ErrAlreadyExists if a log is already present for this id.
func (s *Store) Create(conversationID int64) error {
	f, err := os.OpenFile(s.path(conversationID), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("conversation log %d: %w", conversationID, domain.ErrAlreadyExists)
		}
		return fmt.Errorf("create conversation log %d: %w", conversationID, err)
	}

	return f.Close()
}

// Exists reports whether a log is present for the conversation.
func (s *Store) Exists(conversationID int64) bool {
	_, err := os.Stat(s.path(conversationID))
	return err == nil
}

// Append assigns the next message id and writes the record as a single
// appended line. The read-ids-then-append sequence runs under the
// per-conversation lock.
// Returns domain.ErrConversationLogNotFound if the log does not exist.
func (s *Store) Append(conversationID, senderID int64, text string, mediaRefs []int64, now time.Time) (*domain.Message, error) {
	lock := s.appendLock(conversationID)
	lock.Lock()
	defer lock.Unlock()

	nextID, err := s.nextID(conversationID)
	if err != nil {
		return nil, err
	}

	msg := &domain.Message{
		ID:        nextID,
		SenderID:  senderID,
		Text:      text,
		MediaRefs: mediaRefs,
		SentAt:    now.UTC(),
	}

	line, err := marshalRecord(msg)
	if err != nil {
		return nil, fmt.Errorf("conversation log %d: %w", conversationID, err)
	}

	f, err := os.OpenFile(s.path(conversationID), os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("conversation log %d: %w", conversationID, domain.ErrConversationLogNotFound)
		}
		return nil, fmt.Errorf("open conversation log %d: %w", conversationID, err)
	}
	defer f.Close()

	if _, err := f.Write(line); err != nil {
		return nil, fmt.Errorf("append to conversation log %d: %w", conversationID, err)
	}
	if err := f.Sync(); err != nil {
		return nil, fmt.Errorf("sync conversation log %d: %w", conversationID, err)
	}

	return msg, nil
}

// Get returns the message with the given id.
// Returns domain.ErrEntryNotFound if the scan finishes without a match.
func (s *Store) Get(conversationID, messageID int64) (*domain.Message, error) {
	it, err := s.Iter(conversationID)
	if err != nil {
		return nil, err
	}
	defer it.Close()

	for it.Next() {
		if msg := it.Message(); msg.ID == messageID {
			return msg, nil
		}
	}
	if err := it.Err(); err != nil {
		return nil, err
	}

	return nil, fmt.Errorf("conversation log %d entry %d: %w", conversationID, messageID, domain.ErrEntryNotFound)
}

// RowCount returns the number of messages in the log.
func (s *Store) RowCount(conversationID int64) (int, error) {
	it, err := s.Iter(conversationID)
	if err != nil {
		return 0, err
	}
	defer it.Close()

	count := 0
	for it.Next() {
		count++
	}
	if err := it.Err(); err != nil {
		return 0, err
	}

	return count, nil
}

// Destroy removes the log file. Irreversible.
// Returns domain.ErrConversationLogNotFound if the log does not exist.
func (s *Store) Destroy(conversationID int64) error {
	if err := os.Remove(s.path(conversationID)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("conversation log %d: %w", conversationID, domain.ErrConversationLogNotFound)
		}
		return fmt.Errorf("remove conversation log %d: %w", conversationID, err)
	}

	s.mu.Lock()
	delete(s.locks, conversationID)
	s.mu.Unlock()

	return nil
}

// nextID scans the log and returns max(existing ids)+1, or 1 for an empty
// log. Caller must hold the conversation's append lock.
func (s *Store) nextID(conversationID int64) (int64, error) {
	it, err := s.Iter(conversationID)
	if err != nil {
		return 0, err
	}
	defer it.Close()

	var maxID int64
	for it.Next() {
		if id := it.Message().ID; id > maxID {
			maxID = id
		}
	}
	if err := it.Err(); err != nil {
		return 0, err
	}

	return maxID + 1, nil
}
