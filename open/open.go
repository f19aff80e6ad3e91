// Package open hands URLs to the desktop's default handler.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/miru-cli/miru/constant"
)

// Start opens target without waiting for the handler to exit.
func Start(target string) error {
	name, args, err := command(runtime.GOOS, target)
	if err != nil {
		return err
	}

	return exec.Command(name, args...).Start()
}

func command(goos, target string) (name string, args []string, err error) {
	switch goos {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return rundll, []string{"url.dll,FileProtocolHandler", target}, nil
	case constant.Darwin:
		return "open", []string{target}, nil
	case constant.Linux:
		return "xdg-open", []string{target}, nil
	case constant.Android:
		return "termux-open-url", []string{target}, nil
	default:
		return "", nil, fmt.Errorf("unsupported OS: %s", goos)
	}
}
