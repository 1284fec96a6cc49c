// Package datapush posts cleaning reports to a configured webhook.
package datapush

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	RetryTimes    = 5
	RetryInterval = 2 * time.Second
)

type reportMessage struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Pusher sends markdown report payloads to one webhook URL.
type Pusher struct {
	url    string
	client *http.Client
}

func NewPusher(url string) *Pusher {
	return &Pusher{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// PushReport posts the report, retrying transient failures a bounded
// number of times.
func (p *Pusher) PushReport(title, text string) error {
	if p.url == "" {
		return nil // webhook not configured
	}

	payload, err := json.Marshal(reportMessage{Title: title, Text: text})
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt < RetryTimes; attempt++ {
		if attempt > 0 {
			time.Sleep(RetryInterval)
		}

		lastErr = p.post(payload)
		if lastErr == nil {
			return nil
		}
	}
	return fmt.Errorf("report push failed after %d attempts: %w", RetryTimes, lastErr)
}

func (p *Pusher) post(payload []byte) error {
	resp, err := p.client.Post(p.url, "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("webhook returned %s: %s", resp.Status, body)
	}
	return nil
}
