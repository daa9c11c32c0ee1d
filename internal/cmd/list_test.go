package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/unrss/shenv/internal/config"
	"github.com/unrss/shenv/internal/export"
	"github.com/unrss/shenv/internal/value"
)

const listFixture = `DEBUG=off
HOME=/home/octocat
GIT_MERGE_VERBOSITY=3
GH_TOKEN=ghp_abcdef123
DATABASE_URL=postgres://app:hunter2@db:5432/app
EMPTY=
`

func listNames(t *testing.T, out []byte) []string {
	t.Helper()
	var rows []struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(out, &rows); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
	names := make([]string, 0, len(rows))
	for _, r := range rows {
		names = append(names, r.Name)
	}
	return names
}

func TestRunList(t *testing.T) {
	useConfig(t, config.Default())
	path := writeTestFile(t, "fixture.env", listFixture)

	tests := []struct {
		name string
		opts listOptions
		want []string
	}{
		{
			name: "everything sorted",
			opts: listOptions{},
			want: []string{"DATABASE_URL", "DEBUG", "EMPTY", "GH_TOKEN", "GIT_MERGE_VERBOSITY", "HOME"},
		},
		{
			name: "documented only",
			opts: listOptions{documented: true},
			want: []string{"GH_TOKEN", "GIT_MERGE_VERBOSITY", "HOME"},
		},
		{
			name: "category",
			opts: listOptions{category: "git"},
			want: []string{"GIT_MERGE_VERBOSITY"},
		},
		{
			name: "where on kind",
			opts: listOptions{where: `kind == "bool" || kind == "int"`},
			want: []string{"DEBUG", "GIT_MERGE_VERBOSITY"},
		},
		{
			name: "where on value",
			opts: listOptions{where: `kind == "int" && value > 2`},
			want: []string{"GIT_MERGE_VERBOSITY"},
		},
		{
			name: "where on raw",
			opts: listOptions{where: `raw startsWith "/"`},
			want: []string{"HOME"},
		},
		{
			name: "where on categories",
			opts: listOptions{where: `"unix" in categories`},
			want: []string{"HOME"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts
			opts.clean = true
			opts.envFiles = []string{path}
			opts.format = "json"

			var buf bytes.Buffer
			if err := runList(&buf, opts); err != nil {
				t.Fatalf("runList() error = %v", err)
			}
			got := listNames(t, buf.Bytes())
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("runList() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRunListRedaction(t *testing.T) {
	path := writeTestFile(t, "fixture.env", listFixture)

	for _, redact := range []bool{true, false} {
		c := config.Default()
		c.Redact = redact
		useConfig(t, c)

		var buf bytes.Buffer
		if err := runList(&buf, listOptions{clean: true, envFiles: []string{path}, format: "text"}); err != nil {
			t.Fatalf("runList() error = %v", err)
		}
		out := buf.String()

		if got := strings.Contains(out, "ghp_abcdef123"); got == redact {
			t.Errorf("redact=%v: token visible = %v\n%s", redact, got, out)
		}
		// URL passwords are always hidden.
		if strings.Contains(out, "hunter2") {
			t.Errorf("redact=%v: URL password visible\n%s", redact, out)
		}
	}
}

func TestRunListRaw(t *testing.T) {
	useConfig(t, config.Default())
	path := writeTestFile(t, "fixture.env", "PORT=8080\nFLAG=yes\n")

	var buf bytes.Buffer
	if err := runList(&buf, listOptions{clean: true, raw: true, envFiles: []string{path}, format: "json"}); err != nil {
		t.Fatalf("runList() error = %v", err)
	}

	var rows []struct {
		Kind  string `json:"kind"`
		Value any    `json:"value"`
	}
	if err := json.Unmarshal(buf.Bytes(), &rows); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	for _, r := range rows {
		if r.Kind != "string" {
			t.Errorf("raw listing kind = %q, want string", r.Kind)
		}
		if _, ok := r.Value.(string); !ok {
			t.Errorf("raw listing value = %#v, want a string", r.Value)
		}
	}
}

func TestRunListErrors(t *testing.T) {
	useConfig(t, config.Default())

	tests := []struct {
		name string
		opts listOptions
		want string
	}{
		{name: "unknown format", opts: listOptions{format: "xml"}, want: "unknown format"},
		{name: "unknown category", opts: listOptions{format: "text", category: "nope"}, want: "unknown category"},
		{name: "bad expression", opts: listOptions{format: "text", where: "kind =="}, want: "compile filter"},
		{name: "non-bool expression", opts: listOptions{format: "text", where: "name"}, want: "compile filter"},
		{name: "missing env file", opts: listOptions{format: "text", envFiles: []string{"/nonexistent/.env"}}, want: "open env file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runList(&bytes.Buffer{}, tt.opts)
			if err == nil {
				t.Fatal("runList() expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("runList() error = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestMatchFilter(t *testing.T) {
	t.Parallel()

	rec := export.Record{Name: "PORT", Value: value.Classify("8080")}

	tests := []struct {
		source string
		want   bool
	}{
		{"", true},
		{`name == "PORT"`, true},
		{`kind == "int" && value == 8080`, true},
		{`documented`, false},
		{`raw matches "^[0-9]+$"`, true},
	}

	for _, tt := range tests {
		program, err := compileFilter(tt.source)
		if err != nil {
			t.Fatalf("compileFilter(%q) error = %v", tt.source, err)
		}
		got, err := matchFilter(program, rec)
		if err != nil {
			t.Fatalf("matchFilter(%q) error = %v", tt.source, err)
		}
		if got != tt.want {
			t.Errorf("matchFilter(%q) = %v, want %v", tt.source, got, tt.want)
		}
	}
}
