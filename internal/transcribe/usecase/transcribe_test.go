package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"voice-to-jira/internal/transcribe"
	pkgLog "voice-to-jira/pkg/log"
)

type stubTranscriber struct {
	out string
	err error

	gotLanguage string
}

func (s *stubTranscriber) Transcribe(ctx context.Context, filename, language string, audio io.Reader) (string, error) {
	s.gotLanguage = language
	return s.out, s.err
}

func TestTranscribe(t *testing.T) {
	uc := New(pkgLog.NewNop(), &stubTranscriber{out: "  купить молоко  "})

	out, err := uc.Transcribe(context.Background(), transcribe.TranscribeInput{
		Filename: "note.OGG",
		Audio:    strings.NewReader("audio"),
	})
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if out.Text != "купить молоко" {
		t.Errorf("text = %q", out.Text)
	}
}

func TestTranscribe_LanguageHintForwarded(t *testing.T) {
	stub := &stubTranscriber{out: "сәлем"}
	uc := New(pkgLog.NewNop(), stub)

	_, err := uc.Transcribe(context.Background(), transcribe.TranscribeInput{
		Filename: "note.wav",
		Audio:    strings.NewReader("audio"),
		Language: " KK ",
	})
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if stub.gotLanguage != "kk" {
		t.Errorf("language = %q, want kk", stub.gotLanguage)
	}
}

func TestTranscribe_UnsupportedFormat(t *testing.T) {
	uc := New(pkgLog.NewNop(), &stubTranscriber{out: "x"})

	for _, name := range []string{"doc.pdf", "note.txt", "noext", ""} {
		_, err := uc.Transcribe(context.Background(), transcribe.TranscribeInput{
			Filename: name,
			Audio:    strings.NewReader("audio"),
		})
		if !errors.Is(err, transcribe.ErrUnsupportedFormat) {
			t.Errorf("Transcribe(%q) err = %v, want ErrUnsupportedFormat", name, err)
		}
	}
}

func TestTranscribe_EmptyResult(t *testing.T) {
	uc := New(pkgLog.NewNop(), &stubTranscriber{out: "   \n"})

	_, err := uc.Transcribe(context.Background(), transcribe.TranscribeInput{
		Filename: "note.wav",
		Audio:    strings.NewReader("audio"),
	})
	if !errors.Is(err, transcribe.ErrEmptyResult) {
		t.Fatalf("err = %v, want ErrEmptyResult", err)
	}
}

func TestTranscribe_ClientError(t *testing.T) {
	boom := errors.New("backend down")
	uc := New(pkgLog.NewNop(), &stubTranscriber{err: boom})

	_, err := uc.Transcribe(context.Background(), transcribe.TranscribeInput{
		Filename: "note.wav",
		Audio:    strings.NewReader("audio"),
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want backend error", err)
	}
}

func TestTranscribe_NilAudio(t *testing.T) {
	uc := New(pkgLog.NewNop(), &stubTranscriber{out: "x"})

	_, err := uc.Transcribe(context.Background(), transcribe.TranscribeInput{Filename: "note.wav"})
	if !errors.Is(err, transcribe.ErrEmptyAudio) {
		t.Fatalf("err = %v, want ErrEmptyAudio", err)
	}
}
