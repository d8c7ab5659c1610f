package email

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// DevSender writes messages to a directory instead of sending them. Each
// message produces a .json metadata file plus .txt and .html bodies when
// present.
type DevSender struct {
	dir string
	now func() time.Time
}

func NewDevSender(dir string) *DevSender {
	return &DevSender{dir: dir, now: time.Now}
}

type devRecord struct {
	Message
	Timestamp string `json:"timestamp"`
}

func (d *DevSender) Send(_ context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("%w: %w", ErrSendFailed, err)
	}

	now := d.now()
	label := msg.Tag
	if label == "" {
		label = msg.Subject
	}
	base := filepath.Join(d.dir, now.Format("2006_01_02_150405.000000")+"_"+filename(label))

	meta, err := json.MarshalIndent(devRecord{Message: msg, Timestamp: now.Format(time.RFC3339)}, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSendFailed, err)
	}
	files := map[string]string{".json": string(meta)}
	if msg.Text != "" {
		files[".txt"] = msg.Text
	}
	if msg.HTML != "" {
		files[".html"] = msg.HTML
	}
	for ext, body := range files {
		if err := os.WriteFile(base+ext, []byte(body), 0o644); err != nil {
			return fmt.Errorf("%w: %w", ErrSendFailed, err)
		}
	}
	return nil
}

var unsafeChars = regexp.MustCompile(`[^a-z0-9\-_.]`)

func filename(s string) string {
	s = unsafeChars.ReplaceAllString(strings.ReplaceAll(strings.ToLower(s), " ", "_"), "")
	if len(s) > 80 {
		s = s[:80]
	}
	if s == "" {
		return "email"
	}
	return s
}
