package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
)

// fakeSynth records the cleaned text it receives.
type fakeSynth struct {
	audio    []byte
	err      error
	lastText string
	called   bool
}

func (f *fakeSynth) Synthesize(_ context.Context, text string) ([]byte, error) {
	f.called = true
	f.lastText = text
	return f.audio, f.err
}

func TestCleanText(t *testing.T) {
	cases := map[string]string{
		"Hello *waves* friend 😊":   "Hello  friend ",
		"plain text":               "plain text",
		"*smiles* twice *nods* ok": " twice  ok",
		"😄😅 emoji only 🙏":          " emoji only ",
	}
	for input, want := range cases {
		if got := CleanText(input); got != want {
			t.Errorf("CleanText(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestSynthesize_EmptyText(t *testing.T) {
	synth := &fakeSynth{}
	svc := NewSpeechService(synth)

	for _, text := range []string{"", "   ", "\n\t"} {
		_, _, err := svc.Synthesize(context.Background(), text)
		if !errors.Is(err, ErrTextRequired) {
			t.Errorf("Synthesize(%q) error = %v, want ErrTextRequired", text, err)
		}
	}
	if synth.called {
		t.Error("upstream was called for empty text")
	}
}

func TestSynthesize_CleansBeforeForwarding(t *testing.T) {
	synth := &fakeSynth{audio: []byte("mp3-bytes")}
	svc := NewSpeechService(synth)

	audio, mime, err := svc.Synthesize(context.Background(), "Hello *waves* friend 😊")
	if err != nil {
		t.Fatalf("Synthesize() unexpected error: %v", err)
	}
	if synth.lastText != "Hello  friend " {
		t.Errorf("forwarded text = %q, want %q", synth.lastText, "Hello  friend ")
	}
	if !bytes.Equal(audio, []byte("mp3-bytes")) {
		t.Errorf("audio = %q, want upstream bytes", audio)
	}
	if mime != AudioMIMEType {
		t.Errorf("mime = %q, want %q", mime, AudioMIMEType)
	}
}

func TestSynthesize_UpstreamFailureIsGeneric(t *testing.T) {
	synth := &fakeSynth{err: errors.New("voice server melted")}
	svc := NewSpeechService(synth)

	_, _, err := svc.Synthesize(context.Background(), "hello")
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("Synthesize() error = %v, want ErrUpstream", err)
	}
	if err.Error() != ErrUpstream.Error() {
		t.Error("upstream error detail leaked to the caller")
	}
}
