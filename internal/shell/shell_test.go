package shell

import (
	"slices"
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	for _, name := range []string{"bash", "zsh", "fish"} {
		sh := Get(name)
		if sh == nil {
			t.Fatalf("Get(%q) = nil", name)
		}
		if got := sh.Name(); got != name {
			t.Errorf("Get(%q).Name() = %q", name, got)
		}
	}

	if sh := Get("powershell"); sh != nil {
		t.Errorf("Get(powershell) = %v, want nil", sh)
	}
}

func TestSupported(t *testing.T) {
	want := []string{"bash", "fish", "zsh"}
	if got := Supported(); !slices.Equal(got, want) {
		t.Errorf("Supported() = %v, want %v", got, want)
	}
}

func TestValidName(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"FOO", true},
		{"_private", true},
		{"GIT_SSH_PORT2", true},
		{"", false},
		{"2FA", false},
		{"foo.bar", false},
		{"FOO-BAR", false},
	}

	for _, tt := range tests {
		if got := ValidName(tt.key); got != tt.want {
			t.Errorf("ValidName(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestExport(t *testing.T) {
	e := make(Exports)
	e.Set("PATH", "/usr/bin")
	e.Unset("OLD_VAR")
	e.Set("MSG", `hello "world" $HOME`)
	e.Set("QUOTE", "it's")
	e.Set("bad.name", "x")

	tests := []struct {
		shell    Shell
		contains []string
	}{
		{
			shell: Bash,
			contains: []string{
				`export PATH="/usr/bin";`,
				`unset OLD_VAR;`,
				`export MSG="hello \"world\" \$HOME";`,
				`export QUOTE="it's";`,
				`# skipped "bad.name"`,
			},
		},
		{
			shell: Zsh,
			contains: []string{
				`export PATH="/usr/bin";`,
				`unset OLD_VAR;`,
			},
		},
		{
			shell: Fish,
			contains: []string{
				`set -gx PATH '/usr/bin';`,
				`set -e OLD_VAR;`,
				`set -gx MSG 'hello "world" $HOME';`,
				`set -gx QUOTE 'it\'s';`,
				`# skipped "bad.name"`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.shell.Name(), func(t *testing.T) {
			got := tt.shell.Export(e)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("Export() = %q, should contain %q", got, want)
				}
			}
		})
	}
}

func TestExportEmpty(t *testing.T) {
	for _, name := range Supported() {
		if got := Get(name).Export(Exports{}); got != "" {
			t.Errorf("%s Export(empty) = %q, want empty", name, got)
		}
	}
}

func TestDumpDeterministic(t *testing.T) {
	env := map[string]string{
		"Z_VAR": "last",
		"A_VAR": "first",
		"M_VAR": "middle",
	}

	for _, name := range Supported() {
		got := Get(name).Dump(env)

		// Check that A comes before M comes before Z
		aIdx := strings.Index(got, "A_VAR")
		mIdx := strings.Index(got, "M_VAR")
		zIdx := strings.Index(got, "Z_VAR")

		if aIdx < 0 || aIdx > mIdx || mIdx > zIdx {
			t.Errorf("%s Dump() output not sorted: A at %d, M at %d, Z at %d", name, aIdx, mIdx, zIdx)
		}
	}
}

func TestBashEscape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{`a\b`, `a\\b`},
		{"`cmd`", "\\`cmd\\`"},
		{"line1\nline2", `line1\nline2`},
		{"tab\there", `tab\there`},
	}

	for _, tt := range tests {
		if got := BashEscape(tt.in); got != tt.want {
			t.Errorf("BashEscape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFishEscape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"it's", `it\'s`},
		{`a\b`, `a\\b`},
		{"$HOME", "$HOME"},
	}

	for _, tt := range tests {
		if got := FishEscape(tt.in); got != tt.want {
			t.Errorf("FishEscape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
