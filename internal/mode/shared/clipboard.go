package shared

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"

	"github.com/aymanbagabas/go-osc52/v2"

	"github.com/zjrosen/gitpanes/internal/panel"
)

// ErrNoClipboard is returned when no clipboard tool is installed and the
// session cannot use OSC 52.
var ErrNoClipboard = errors.New("no clipboard tool found")

// SystemClipboard copies through OSC 52 over SSH and inside GNU screen, and
// through the platform clipboard tool otherwise.
type SystemClipboard struct {
	// Getenv and LookPath default to os.Getenv and exec.LookPath.
	Getenv   func(string) string
	LookPath func(string) (string, error)
	// TTY opens the terminal for OSC 52 writes. Defaults to /dev/tty.
	TTY func() (io.WriteCloser, error)
}

var _ panel.Clipboard = SystemClipboard{}

func (c SystemClipboard) getenv(k string) string {
	if c.Getenv != nil {
		return c.Getenv(k)
	}
	return os.Getenv(k)
}

func (c SystemClipboard) lookPath(name string) (string, error) {
	if c.LookPath != nil {
		return c.LookPath(name)
	}
	return exec.LookPath(name)
}

func (c SystemClipboard) tty() (io.WriteCloser, error) {
	if c.TTY != nil {
		return c.TTY()
	}
	return os.OpenFile("/dev/tty", os.O_WRONLY, 0)
}

// Copy puts text on the clipboard.
func (c SystemClipboard) Copy(text string) error {
	if c.remote() || c.getenv("STY") != "" {
		return c.copyOSC52(text)
	}
	name, args, err := c.nativeTool()
	if err != nil {
		// Terminals without a clipboard tool often still honor OSC 52.
		return c.copyOSC52(text)
	}
	return copyWith(text, name, args...)
}

func (c SystemClipboard) remote() bool {
	return c.getenv("SSH_TTY") != "" ||
		c.getenv("SSH_CLIENT") != "" ||
		c.getenv("SSH_CONNECTION") != ""
}

// nativeTool picks the clipboard command for this platform.
func (c SystemClipboard) nativeTool() (string, []string, error) {
	var candidates [][]string
	switch runtime.GOOS {
	case "darwin":
		candidates = [][]string{{"pbcopy"}}
	case "windows":
		candidates = [][]string{{"clip"}}
	default:
		if c.getenv("WAYLAND_DISPLAY") != "" {
			candidates = append(candidates, []string{"wl-copy"})
		}
		candidates = append(candidates,
			[]string{"xclip", "-selection", "clipboard"},
			[]string{"xsel", "--clipboard", "--input"})
	}
	for _, cand := range candidates {
		if _, err := c.lookPath(cand[0]); err == nil {
			return cand[0], cand[1:], nil
		}
	}
	return "", nil, ErrNoClipboard
}

// osc52Sequence builds the escape sequence, wrapped in a DCS passthrough
// under tmux.
func osc52Sequence(text string, tmux bool) string {
	seq := osc52.New(text)
	if tmux {
		seq = seq.Tmux()
	}
	return seq.String()
}

// copyOSC52 writes to the tty directly so the sequence survives the alt screen.
func (c SystemClipboard) copyOSC52(text string) (err error) {
	tty, err := c.tty()
	if err != nil {
		return fmt.Errorf("failed to open tty: %w", err)
	}
	defer func() {
		if closeErr := tty.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	_, err = io.WriteString(tty, osc52Sequence(text, c.getenv("TMUX") != ""))
	return err
}

func copyWith(text, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	pipe, err := cmd.StdinPipe()
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	if _, err := io.WriteString(pipe, text); err != nil {
		return err
	}
	if err := pipe.Close(); err != nil {
		return err
	}
	return cmd.Wait()
}
