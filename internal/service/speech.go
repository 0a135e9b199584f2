package service

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"
)

// ErrTextRequired is returned when a synthesis request has no text after
// trimming.
var ErrTextRequired = errors.New("text is required")

// SynthesisClient converts text to speech and returns the full audio bytes.
type SynthesisClient interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// AudioMIMEType is the media type of synthesized audio.
const AudioMIMEType = "audio/mpeg"

var (
	// stageDirections matches asterisk-delimited spans like *waves*,
	// non-greedy so separate pairs each form their own span.
	stageDirections = regexp.MustCompile(`\*.*?\*`)
	// emoticons covers the expressive emoji block the chat persona uses.
	emoticons = regexp.MustCompile(`[\x{1F600}-\x{1F64F}]`)
)

// CleanText removes stage directions and emoticons the synthesis voice
// cannot speak. Surrounding whitespace is left intact.
func CleanText(text string) string {
	return emoticons.ReplaceAllString(stageDirections.ReplaceAllString(text, ""), "")
}

// SpeechService relays cleaned text to the synthesis service.
type SpeechService struct {
	synth SynthesisClient
}

// NewSpeechService creates a new SpeechService.
func NewSpeechService(synth SynthesisClient) *SpeechService {
	return &SpeechService{synth: synth}
}

// Synthesize cleans the text and returns the complete audio byte sequence
// tagged with its MIME type. The audio is fully buffered; utterances are
// short enough that incremental streaming is not worth the complexity.
func (s *SpeechService) Synthesize(ctx context.Context, text string) ([]byte, string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, "", ErrTextRequired
	}

	audio, err := s.synth.Synthesize(ctx, CleanText(text))
	if err != nil {
		slog.Error("speech synthesis failed", "error", err)
		return nil, "", ErrUpstream
	}

	return audio, AudioMIMEType, nil
}
