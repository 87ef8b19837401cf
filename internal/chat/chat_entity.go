package chat

import "time"

type Group struct {
	ID        string
	Name      string
	Avatar    string
	CreatedBy string
	Members   []string
}

func (g *Group) HasMember(userID string) bool {
	for _, m := range g.Members {
		if m == userID {
			return true
		}
	}
	return false
}

// Message kinds. Image and file messages may carry an empty content body.
const (
	MessageText  = "text"
	MessageImage = "image"
	MessageFile  = "file"
)

// Message is addressed to a ReceiverID that is either a user id (direct
// conversation) or a group id.
type Message struct {
	ID         string
	SenderID   string
	ReceiverID string
	Content    string
	Type       string
	FileURL    string
	FileName   string
	Read       bool
	Timestamp  time.Time
}

func validMessageType(t string) bool {
	switch t {
	case MessageText, MessageImage, MessageFile:
		return true
	}
	return false
}
