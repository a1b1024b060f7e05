package safari

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/tabtidy/tabtidy/internal/pattern"
)

//go:embed scripts/*.applescript
var scriptFS embed.FS

var scripts = template.Must(template.ParseFS(scriptFS, "scripts/*.applescript"))

type scriptData struct {
	App        string
	Conditions []pattern.Condition
}

func renderScript(name string, data scriptData) (string, error) {
	var b strings.Builder
	if err := scripts.ExecuteTemplate(&b, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return b.String(), nil
}

func getURLScript(app string, window, tab int) string {
	switch {
	case window > 0 && tab > 0:
		return fmt.Sprintf("tell application %q to get URL of tab %d of window %d", app, tab, window)
	case window > 0:
		return fmt.Sprintf("tell application %q to get URL of document %d", app, window)
	default:
		return fmt.Sprintf("tell application %q to get URL of document 1", app)
	}
}
