package chat

import "time"

type CreateGroupRequest struct {
	Name    string   `json:"name" binding:"required"`
	Avatar  string   `json:"avatar"`
	Members []string `json:"members" binding:"required"`
}

type AddMembersRequest struct {
	Members []string `json:"members" binding:"required"`
}

type SendMessageRequest struct {
	Content  string `json:"content"`
	Type     string `json:"type"`
	FileURL  string `json:"fileUrl"`
	FileName string `json:"fileName"`
}

type GroupResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Avatar    string   `json:"avatar,omitempty"`
	CreatedBy string   `json:"createdBy"`
	Members   []string `json:"members"`
}

type MessageResponse struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId"`
	SenderName string    `json:"senderName"`
	ReceiverID string    `json:"receiverId"`
	Content    string    `json:"content"`
	Type       string    `json:"type"`
	FileURL    string    `json:"fileUrl,omitempty"`
	FileName   string    `json:"fileName,omitempty"`
	Read       bool      `json:"read"`
	Timestamp  time.Time `json:"timestamp"`
}

func mapGroupToResponse(g Group) GroupResponse {
	return GroupResponse{
		ID:        g.ID,
		Name:      g.Name,
		Avatar:    g.Avatar,
		CreatedBy: g.CreatedBy,
		Members:   g.Members,
	}
}

func mapMessageToResponse(m Message, senderName string) MessageResponse {
	return MessageResponse{
		ID:         m.ID,
		SenderID:   m.SenderID,
		SenderName: senderName,
		ReceiverID: m.ReceiverID,
		Content:    m.Content,
		Type:       m.Type,
		FileURL:    m.FileURL,
		FileName:   m.FileName,
		Read:       m.Read,
		Timestamp:  m.Timestamp,
	}
}
