package env

import (
	"maps"
	"slices"
	"testing"
)

func TestFromGoEnv(t *testing.T) {
	tests := []struct {
		name    string
		environ []string
		want    Env
	}{
		{
			name:    "empty",
			environ: nil,
			want:    Env{},
		},
		{
			name:    "single var",
			environ: []string{"FOO=bar"},
			want:    Env{"FOO": "bar"},
		},
		{
			name:    "multiple vars",
			environ: []string{"FOO=bar", "BAZ=qux"},
			want:    Env{"FOO": "bar", "BAZ": "qux"},
		},
		{
			name:    "empty value",
			environ: []string{"FOO="},
			want:    Env{"FOO": ""},
		},
		{
			name:    "value with equals",
			environ: []string{"FOO=bar=baz"},
			want:    Env{"FOO": "bar=baz"},
		},
		{
			name:    "no equals ignored",
			environ: []string{"INVALID", "FOO=bar"},
			want:    Env{"FOO": "bar"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromGoEnv(tt.environ)
			if len(got) != len(tt.want) {
				t.Errorf("FromGoEnv() len = %d, want %d", len(got), len(tt.want))
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("FromGoEnv()[%q] = %q, want %q", k, got[k], v)
				}
			}
		})
	}
}

func TestToGoEnv(t *testing.T) {
	tests := []struct {
		name string
		env  Env
		want []string
	}{
		{
			name: "nil",
			env:  nil,
			want: nil,
		},
		{
			name: "empty",
			env:  Env{},
			want: []string{},
		},
		{
			name: "single var",
			env:  Env{"FOO": "bar"},
			want: []string{"FOO=bar"},
		},
		{
			name: "sorted output",
			env:  Env{"ZZZ": "last", "AAA": "first", "MMM": "middle"},
			want: []string{"AAA=first", "MMM=middle", "ZZZ=last"},
		},
		{
			name: "empty value",
			env:  Env{"FOO": ""},
			want: []string{"FOO="},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.env.ToGoEnv()
			if !slices.Equal(got, tt.want) {
				t.Errorf("ToGoEnv() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	original := []string{"FOO=bar", "BAZ=qux", "EMPTY="}
	env := FromGoEnv(original)
	result := env.ToGoEnv()

	slices.Sort(original)
	if !slices.Equal(result, original) {
		t.Errorf("round-trip failed: got %v, want %v", result, original)
	}
}

func TestEnvCopy(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		var env Env
		got := env.Copy()
		if got != nil {
			t.Errorf("Copy() of nil = %v, want nil", got)
		}
	})

	t.Run("deep copy", func(t *testing.T) {
		env := Env{"FOO": "bar"}
		cp := env.Copy()

		// Modify original
		env["FOO"] = "modified"
		env["NEW"] = "value"

		// Copy should be unchanged
		if cp["FOO"] != "bar" {
			t.Errorf("Copy was modified: FOO = %q, want %q", cp["FOO"], "bar")
		}
		if _, exists := cp["NEW"]; exists {
			t.Error("Copy has NEW key that was added after copy")
		}
	})
}

func TestEnvFiltered(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		var env Env
		got := env.Filtered()
		if got != nil {
			t.Errorf("Filtered() of nil = %v, want nil", got)
		}
	})

	t.Run("removes ignored keys", func(t *testing.T) {
		env := Env{
			"FOO":             "bar",
			"PWD":             "/home/user",
			"OLDPWD":          "/tmp",
			"SHLVL":           "2",
			"_":               "/bin/ls",
			"TERM_SESSION_ID": "abc123",
			"SHENV_FORMAT":    "json",
			"SHENV_RAW":       "1",
		}
		got := env.Filtered()

		if len(got) != 1 {
			t.Errorf("Filtered() len = %d, want 1", len(got))
		}
		if got["FOO"] != "bar" {
			t.Errorf("Filtered()[FOO] = %q, want %q", got["FOO"], "bar")
		}
	})
}


func TestIgnoredEnv(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"PWD", true},
		{"OLDPWD", true},
		{"SHLVL", true},
		{"_", true},
		{"TERM_SESSION_ID", true},
		{"SHENV_FORMAT", true},
		{"SHENV_", true},
		{"PATH", false},
		{"HOME", false},
		{"USER", false},
		{"SHENVY", false}, // Not SHENV_ prefix
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := IgnoredEnv(tt.key); got != tt.want {
				t.Errorf("IgnoredEnv(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestEnvMerge(t *testing.T) {
	base := Env{"A": "1", "B": "2"}
	got := base.Merge(Env{"B": "20", "C": "30"}, Env{"C": "300"})

	want := Env{"A": "1", "B": "20", "C": "300"}
	if !maps.Equal(got, want) {
		t.Errorf("Merge() = %v, want %v", got, want)
	}
	if base["B"] != "2" {
		t.Errorf("Merge() modified receiver: B = %q", base["B"])
	}

	var empty Env
	if got := empty.Merge(); got == nil || len(got) != 0 {
		t.Errorf("nil Merge() = %v, want empty non-nil map", got)
	}
}

func TestEnvKeys(t *testing.T) {
	got := Env{"ZZZ": "", "AAA": "", "MMM": ""}.Keys()
	want := []string{"AAA", "MMM", "ZZZ"}
	if !slices.Equal(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}
