package chatlog

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/classline/backend/internal/domain"
)

// record is the wire form of one log line. Field names are single-letter
// aliases to keep lines short; the format is shared with earlier versions of
// the platform, so the aliases are load-bearing.
//
// Domain types have no json tags, so the storage layer handles serialization.
type record struct {
	ID        int64     `json:"i"`
	Sender    int64     `json:"s"`
	Text      string    `json:"t"`
	MediaRefs []int64   `json:"m"`
	Date      time.Time `json:"d"`
	Edited    bool      `json:"e"`
	Removed   bool      `json:"r"`
}

// marshalRecord converts a message into one newline-terminated JSON line.
func marshalRecord(msg *domain.Message) ([]byte, error) {
	rec := record{
		ID:        msg.ID,
		Sender:    msg.SenderID,
		Text:      msg.Text,
		MediaRefs: msg.MediaRefs,
		Date:      msg.SentAt,
		Edited:    msg.Edited,
		Removed:   msg.Removed,
	}
	if rec.MediaRefs == nil {
		rec.MediaRefs = []int64{}
	}

	line, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("marshal record: %w", err)
	}

	return append(line, '\n'), nil
}

// unmarshalRecord parses one log line into a message.
func unmarshalRecord(line []byte) (*domain.Message, error) {
	var rec record
	if err := json.Unmarshal(line, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal record: %w", err)
	}

	return &domain.Message{
		ID:        rec.ID,
		SenderID:  rec.Sender,
		Text:      rec.Text,
		MediaRefs: rec.MediaRefs,
		SentAt:    rec.Date,
		Edited:    rec.Edited,
		Removed:   rec.Removed,
	}, nil
}
