package player

import (
	"fmt"
	"net/url"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/miru-cli/miru/log"
)

// MPV plays media in an mpv window.
type MPV struct {
	// Binary defaults to "mpv" on PATH.
	Binary string

	mu     sync.Mutex
	cmd    *exec.Cmd
	exited chan struct{}
}

func NewMPV() *MPV {
	return &MPV{Binary: "mpv"}
}

func mpvArgs(target, title string) []string {
	return []string{
		"--no-terminal",
		"--really-quiet",
		"--force-window=yes",
		fmt.Sprintf("--force-media-title=%s", title),
		fmt.Sprintf("--title=%s", title),
		"--",
		target,
	}
}

// Play starts mpv, replacing a running instance.
func (m *MPV) Play(media Media) error {
	target, err := sanitizeMediaTarget(media.URL)
	if err != nil {
		return fmt.Errorf("invalid media target: %w", err)
	}

	if err := m.Close(); err != nil {
		return err
	}

	cmd := exec.Command(m.Binary, mpvArgs(target, sanitizeTitle(media.Title))...)
	cmd.SysProcAttr = detached()

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start mpv: %w", err)
	}

	exited := make(chan struct{})
	go func() {
		if err := cmd.Wait(); err != nil {
			log.Debugf("mpv exited: %s", err)
		}
		close(exited)
	}()

	m.mu.Lock()
	m.cmd, m.exited = cmd, exited
	m.mu.Unlock()

	return nil
}

func (m *MPV) Wait() <-chan struct{} {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.exited
}

// Close stops the running instance, if any.
func (m *MPV) Close() error {
	m.mu.Lock()
	cmd, exited := m.cmd, m.exited
	m.cmd = nil
	m.mu.Unlock()

	if cmd == nil {
		return nil
	}

	select {
	case <-exited:
		return nil
	default:
	}

	if err := terminate(cmd); err != nil {
		return fmt.Errorf("stop mpv: %w", err)
	}

	select {
	case <-exited:
	case <-time.After(3 * time.Second):
	}

	return nil
}

// sanitizeMediaTarget accepts http(s) URLs and rejects anything mpv could read as a flag.
func sanitizeMediaTarget(link string) (string, error) {
	l := strings.TrimSpace(link)
	if l == "" {
		return "", fmt.Errorf("empty URL")
	}

	if strings.ContainsAny(l, "\x00\n\r") {
		return "", fmt.Errorf("invalid control characters in URL")
	}

	if strings.HasPrefix(l, "-") {
		return "", fmt.Errorf("url must not start with '-'")
	}

	u, err := url.Parse(l)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return l, nil
	default:
		return "", fmt.Errorf("unsupported URL scheme: %q", u.Scheme)
	}
}

func sanitizeTitle(title string) string {
	t := strings.NewReplacer("\n", " ", "\r", " ", "\t", " ", "\x00", "").Replace(title)
	return strings.TrimSpace(t)
}
