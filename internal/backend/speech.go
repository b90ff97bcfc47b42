package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"strings"
)

// speechPath serves both directions: multipart upload for transcription,
// form-encoded text for synthesis.
const speechPath = "/nlp/text-to-speech"

// ErrNoSpeech is returned when transcription succeeded but recognised no
// usable text.
var ErrNoSpeech = errors.New("backend: no speech recognised")

// transcribeResponse is the response from a transcription upload.
type transcribeResponse struct {
	Text string `json:"text"`
}

// Transcribe uploads a recorded audio file and returns the recognised text,
// trimmed. An empty recognition result is ErrNoSpeech.
func (c *Client) Transcribe(ctx context.Context, audioPath string) (string, error) {
	f, err := os.Open(audioPath)
	if err != nil {
		return "", fmt.Errorf("open audio file: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	// The backend identifies uploads by the fixed field and filename, not
	// by the local path.
	part, err := mw.CreateFormFile("file", "speech.wav")
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", fmt.Errorf("copy audio: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("close multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+speechPath, &buf)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("backend: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out transcribeResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	text := strings.TrimSpace(out.Text)
	if text == "" {
		return "", ErrNoSpeech
	}
	return text, nil
}

// Synthesize converts text to speech and returns the raw audio bytes. The
// text must be non-empty; that is the caller's contract.
func (c *Client) Synthesize(ctx context.Context, text string) ([]byte, error) {
	form := url.Values{"text": {text}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+speechPath, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("backend: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if len(body) == 0 {
		return nil, ErrEmptyResponse
	}
	return body, nil
}
