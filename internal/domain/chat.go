package domain

import "time"

// Conversation is the relational side of a chat: its id, optional display
// name and membership rows. The messages themselves live in the append-only
// conversation log, keyed by the same id.
type Conversation struct {
	ID        int64
	Name      *string
	CreatedAt time.Time
}

// Member is one conversation membership row.
type Member struct {
	ConversationID int64
	AccountID      int64
	Admin          bool
}

// Message is one immutable entry of a conversation log. IDs are unique
// within one conversation, strictly increasing, assigned as max(existing)+1
// and never reused after deletion.
//
// Edited and Removed are carried in the storage format but no operation sets
// them yet: the log is append-only, so an edit or removal would have to be
// written as a new overlay entry referencing the original id.
type Message struct {
	ID        int64
	SenderID  int64
	Text      string
	MediaRefs []int64
	SentAt    time.Time
	Edited    bool
	Removed   bool
}
