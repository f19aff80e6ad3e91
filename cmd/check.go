package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/miru-cli/miru/color"
	"github.com/miru-cli/miru/constant"
	"github.com/miru-cli/miru/icon"
	"github.com/miru-cli/miru/style"
)

// checkMPV exits with install hints when mpv is not on PATH.
func checkMPV() {
	if _, err := exec.LookPath("mpv"); err == nil {
		return
	}

	fmt.Println(missingDependency("mpv", installHint(runtime.GOOS)))
	os.Exit(1)
}

func installHint(goos string) string {
	switch goos {
	case constant.Darwin:
		return "brew install mpv"
	case constant.Linux:
		return "sudo apt install mpv"
	case constant.Windows:
		return "scoop install mpv"
	case constant.Android:
		return "pkg install mpv"
	default:
		return ""
	}
}

func missingDependency(name, hint string) string {
	lines := []string{
		style.ErrorTitle(icon.Get(icon.Fail) + " Missing dependency"),
		"",
		style.Fg(color.Red)(name + " was not found in your PATH"),
		style.Faint("Install it or run with --player browser."),
	}

	if hint != "" {
		lines = append(lines, "", "Try: "+style.New().Bold(true).Foreground(color.Accent).Render(hint))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color.Red).
		Padding(1, 2).
		Margin(1, 0).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
