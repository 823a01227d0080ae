package whisper

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestTranscribe_JSONResponse(t *testing.T) {
	var gotFilename, gotModel, gotLanguage string
	var gotBody []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		gotModel = r.FormValue("model")
		gotLanguage = r.FormValue("language")
		f, hdr, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		defer f.Close()
		gotFilename = hdr.Filename
		gotBody, _ = io.ReadAll(f)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text": " купить молоко завтра "}`))
	}))
	defer srv.Close()

	c, err := New(Config{URL: srv.URL, Model: "whisper-1"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	text, err := c.Transcribe(context.Background(), "note.ogg", "ru", strings.NewReader("fake-audio-bytes"))
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if text != "купить молоко завтра" {
		t.Errorf("text = %q", text)
	}
	if gotFilename != "note.ogg" || gotModel != "whisper-1" {
		t.Errorf("filename/model = %q/%q", gotFilename, gotModel)
	}
	if gotLanguage != "ru" {
		t.Errorf("language = %q, want ru", gotLanguage)
	}
	if string(gotBody) != "fake-audio-bytes" {
		t.Errorf("uploaded body = %q", gotBody)
	}
}

func TestTranscribe_AutoLanguageOmitted(t *testing.T) {
	var hadLanguage bool

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		_, hadLanguage = r.MultipartForm.Value["language"]
		w.Write([]byte(`{"text": "ok"}`))
	}))
	defer srv.Close()

	c, _ := New(Config{URL: srv.URL})
	if _, err := c.Transcribe(context.Background(), "a.wav", LanguageAuto, strings.NewReader("x")); err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if hadLanguage {
		t.Error("auto must leave the language field out of the form")
	}
}

func TestTranscribe_PlainTextResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("plain transcript\n"))
	}))
	defer srv.Close()

	c, _ := New(Config{URL: srv.URL})
	text, err := c.Transcribe(context.Background(), "a.wav", "", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if text != "plain transcript" {
		t.Errorf("text = %q", text)
	}
}

func TestTranscribe_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c, _ := New(Config{URL: srv.URL})
	_, err := c.Transcribe(context.Background(), "a.wav", "", strings.NewReader("x"))

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status = %d", apiErr.StatusCode)
	}
	if !strings.Contains(apiErr.Body, "model overloaded") {
		t.Errorf("body = %q", apiErr.Body)
	}
}

func TestConfigValidate(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Error("expected error for missing URL")
	}
}
