package ui

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/gravitrone/kbase/internal/kb"
)

// Copier puts text on the clipboard.
type Copier interface {
	Copy(text string) error
}

// Opener hands a link or file path to the system viewer.
type Opener func(target string) error

// --- Messages ---

type copiedMsg struct {
	link bool
	err  error
}

type downloadedMsg struct {
	path string
	err  error
}

type openedMsg struct {
	target string
	err    error
}

// effects runs the side effects of the browse tab as commands.
type effects struct {
	clip        Copier
	src         kb.Source
	downloadDir string
	open        Opener
	logger      *zap.Logger
}

func (e *effects) copyCmd(text string, link bool) tea.Cmd {
	return func() tea.Msg {
		if e.clip == nil {
			return copiedMsg{link: link, err: fmt.Errorf("clipboard unavailable")}
		}
		err := e.clip.Copy(text)
		if err != nil {
			e.logger.Warn("copy failed", zap.Error(err))
		}
		return copiedMsg{link: link, err: err}
	}
}

// link is what copy-link puts on the clipboard: an absolute URL for web
// sites, a file path for local ones.
func (e *effects) link(res kb.Resource) string {
	if e.src == nil {
		return res.Path
	}
	return e.src.Resolve(res.Path)
}

func (e *effects) downloadCmd(res kb.Resource) tea.Cmd {
	return func() tea.Msg {
		if e.src == nil {
			return downloadedMsg{err: fmt.Errorf("no site to download from")}
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		path, err := kb.Download(ctx, e.src, res, e.downloadDir)
		if err != nil {
			e.logger.Warn("download failed", zap.String("path", res.Path), zap.Error(err))
		} else {
			e.logger.Info("downloaded", zap.String("path", path))
		}
		return downloadedMsg{path: path, err: err}
	}
}

func (e *effects) openCmd(res kb.Resource) tea.Cmd {
	target := e.link(res)
	return func() tea.Msg {
		if e.open == nil {
			return openedMsg{target: target, err: fmt.Errorf("no viewer configured")}
		}
		return openedMsg{target: target, err: e.open(target)}
	}
}

// SystemOpener opens targets with the platform's default handler.
func SystemOpener(target string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", target)
	case "linux", "freebsd", "openbsd":
		cmd = exec.Command("xdg-open", target)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", target)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
	return cmd.Start()
}
