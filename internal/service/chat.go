package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/puresoul/puresoul-go/internal/model"
)

// ErrUpstream is returned when the external completion or synthesis service
// fails. Handlers must show the caller a generic message and nothing else;
// upstream details are logged server-side only.
var ErrUpstream = errors.New("upstream service failure")

// CompletionClient generates an assistant reply for an ordered prompt.
type CompletionClient interface {
	CreateChatCompletion(ctx context.Context, messages []model.PromptMessage) (string, error)
}

// DefaultCategory is the persona used when the requested category is unknown.
const DefaultCategory = "Mental Health"

// fallbackReply is used when the upstream returns no usable content.
const fallbackReply = "I'm here to listen. Could you tell me more?"

// personaPrompts maps each support category to the system instruction that
// shapes the assistant's tone. Unknown categories fall back to DefaultCategory.
var personaPrompts = map[string]string{
	"Academic / Exam": `
You are **Dost**, a compassionate Indian mentor specializing in Academic/Exam pressure.
Mirror the user's language (English or Hinglish).
Focus on exam anxiety, lack of focus, and study pressure.
Arre dost, tension mat lo! Help them manage stress and build confidence.
Keep it warm, empathetic, and under 3-4 sentences. Use emojis like 📚, ✍️, ✨.
NO asterisks (*).
`,
	"Career & Jobs": `
You are **Dost**, a career coach who understands the job market struggle in India.
Mirror the user's language (English or Hinglish).
Focus on career confusion, job search stress, and workplace politics.
Dost, career stress real hai, but we will find a way. Provide professional yet emotional support.
Keep it natural and under 4 sentences. Use emojis like 💼, 🚀, 🤞.
NO asterisks (*).
`,
	"Relationship": `
You are **Dost**, an empathetic friend who listens to relationship problems.
Mirror the user's language (English or Hinglish).
Focus on heartbreaks, family issues, or friendship drama.
Relationship issues dil se connected hoti hain. Give them a safe space to vent.
Keep it very gentle and validating. Under 4 sentences. Use emojis like ❤️, 🤗, 🤝.
NO asterisks (*).
`,
	"Health & Wellness": `
You are **Dost**, a wellness companion focusing on physical and mental health.
Mirror the user's language (English or Hinglish).
Focus on recovery stress, sleep issues, or general fatigue.
Health sabse pehle hai dost. Encourage healthy habits without being preachy.
Keep it soothing and encouraging. Under 4 sentences. Use emojis like 🏥, 🧘, 🌿.
NO asterisks (*).
`,
	"Personal Growth": `
You are **Dost**, a motivation-focused friend for personal expansion.
Mirror the user's language (English or Hinglish).
Focus on self-doubt, building habits, and finding purpose.
Apne aap ko grow karna ek safar hai dost. Celebrate small wins.
Keep it inspiring and positive. Under 4 sentences. Use emojis like 🌱, ⭐, 📈.
NO asterisks (*).
`,
	"Mental Health": `
You are **Dost**, a supportive companion for general mental wellness.
Mirror the user's language (English or Hinglish).
Focus on anxiety, low mood, or just needing to be heard.
Main hoon na dost, sab discuss karte hain. Provide a non-judgmental ear.
Keep it empathetic and safe. Under 4 sentences. Use emojis like 🧠, 🫂, 🕊️.
NO asterisks (*).
`,
	"Financial Stress": `
You are **Dost**, a practical friend who understands financial anxiety.
Mirror the user's language (English or Hinglish).
Focus on money worries, loan stress, or stability.
Paisa aur stress ka gehra rishta hai, but tension mat lo. Help them stay calm.
Keep it grounded and supportive. Under 4 sentences. Use emojis like 💰, 🏦, ⚓.
NO asterisks (*).
`,
}

// ChatService assembles conversation prompts and relays them to the
// completion service.
type ChatService struct {
	completions CompletionClient
}

// NewChatService creates a new ChatService.
func NewChatService(completions CompletionClient) *ChatService {
	return &ChatService{completions: completions}
}

// BuildPrompt produces the ordered prompt: one system turn carrying the
// persona for the category, the history in original order mapped by sender
// (anything other than "user" becomes "assistant"), then the new message as
// the final user turn. History length is not capped here.
func (s *ChatService) BuildPrompt(category string, history []model.ChatTurn, userMessage string) []model.PromptMessage {
	persona, ok := personaPrompts[category]
	if !ok {
		persona = personaPrompts[DefaultCategory]
	}

	prompt := make([]model.PromptMessage, 0, len(history)+2)
	prompt = append(prompt, model.PromptMessage{Role: "system", Content: persona})
	for _, turn := range history {
		role := "assistant"
		if turn.Sender == "user" {
			role = "user"
		}
		prompt = append(prompt, model.PromptMessage{Role: role, Content: turn.Text})
	}
	return append(prompt, model.PromptMessage{Role: "user", Content: userMessage})
}

// GetResponse returns the assistant reply for the request. The balance is
// checked but not debited here; the client calls the credit endpoint
// separately.
func (s *ChatService) GetResponse(ctx context.Context, user *model.User, req model.ChatRequest) (string, error) {
	if user.Credits <= 0 {
		return "", ErrInsufficientCredits
	}

	prompt := s.BuildPrompt(req.Category, req.MessageHistory, req.UserMessage)

	reply, err := s.completions.CreateChatCompletion(ctx, prompt)
	if err != nil {
		slog.Error("completion request failed", "error", err)
		return "", ErrUpstream
	}
	if reply == "" {
		reply = fallbackReply
	}
	return reply, nil
}
