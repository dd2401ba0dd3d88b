package models

import (
	"sparrc-service/internal/pkg/dto/responses"
)

type ChatMessage struct {
	ID        int64
	PatientID int64
	Sender    string
	Message   string
}

func (m ChatMessage) ConvertIntoResponse() responses.ChatMessage {
	return responses.ChatMessage{
		ID:      m.ID,
		Sender:  m.Sender,
		Message: m.Message,
	}
}
