package integration

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	out, err := render("/usr/bin/zsh")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if !strings.HasPrefix(out, "#!/usr/bin/zsh") {
		t.Errorf("expected zsh shebang, got %q", strings.SplitN(out, "\n", 2)[0])
	}

	for _, want := range []string{"topsize-pick", "zle -N", "bindkey"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered script is missing %q", want)
		}
	}

	if strings.Contains(out, "{{") {
		t.Error("rendered script still contains template markers")
	}
}
