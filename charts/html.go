package charts

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// WriteHTML renders the figure into an HTML file at path. When path is
// empty, a temporary file is created. The written path is returned.
func WriteHTML(fig Figure, path string) (string, error) {
	var f *os.File
	var err error
	if path == "" {
		f, err = os.CreateTemp("", "fenn-chart-*.html")
	} else {
		f, err = os.Create(path)
	}
	if err != nil {
		return "", fmt.Errorf("cannot create chart file: %w", err)
	}
	defer f.Close()

	if err := fig.Render(f); err != nil {
		return "", fmt.Errorf("cannot render chart to %q: %w", f.Name(), err)
	}
	return f.Name(), nil
}

// OpenBrowser opens the given file in the platform's default browser.
func OpenBrowser(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("cannot open browser for %q: %w", path, err)
	}
	return nil
}
