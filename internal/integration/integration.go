// Package integration embeds the shell snippet printed by --init.
package integration

import (
	"bytes"
	_ "embed"
	"fmt"
	"os/exec"
	"path/filepath"
	"text/template"
)

// zshFzf is the zsh widget definition; its shebang is filled in with
// the local zsh path at render time.
//
//go:embed zsh-fzf.sh
var zshFzf string

// Render produces the integration script for the running machine.
func Render() (string, error) {
	zsh, err := exec.LookPath("zsh")
	if err != nil {
		return "", fmt.Errorf("locating zsh: %w", err)
	}

	return render(filepath.ToSlash(zsh))
}

// render substitutes the zsh path into the embedded script.
func render(zsh string) (string, error) {
	tmpl, err := template.New("zsh-fzf").Parse(zshFzf)
	if err != nil {
		return "", fmt.Errorf("parsing integration script: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]any{"ZSH": zsh}); err != nil {
		return "", fmt.Errorf("rendering integration script: %w", err)
	}

	return buf.String(), nil
}
