package model

// ChatTurn is one prior exchange in a conversation. The client resends the
// full history on every request; nothing is stored server-side.
type ChatTurn struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

// PromptMessage is one role-tagged turn sent to the completion service.
type PromptMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest represents a request for an assistant reply.
type ChatRequest struct {
	UserMessage    string     `json:"userMessage"`
	MessageHistory []ChatTurn `json:"messageHistory"`
	Category       string     `json:"category"`
}

// ChatResponse carries the generated assistant reply.
type ChatResponse struct {
	TherapistResponse string `json:"therapistResponse"`
}

// SpeechRequest represents a text-to-speech request.
type SpeechRequest struct {
	Text string `json:"text"`
}
