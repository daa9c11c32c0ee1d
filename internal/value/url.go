package value

import (
	"net/url"
	"strings"
)

// URLValue is a URL-like value. It keeps the original text so that
// scheme-less forms such as "git@github.com" or "git@host:owner/repo.git"
// survive unchanged.
type URLValue struct {
	raw    string
	parsed *url.URL
}

// ParseURL builds a URLValue from s. It never fails: text that net/url
// rejects is kept verbatim and SSH-style "user@host:path" remotes are
// decomposed by hand.
func ParseURL(s string) URLValue {
	u := URLValue{raw: s}
	if strings.Contains(s, "://") {
		if parsed, err := url.Parse(s); err == nil {
			u.parsed = parsed
		}
		return u
	}
	u.parsed = parseSCP(s)
	return u
}

// parseSCP handles the scp-like syntax [user@]host[:path] used by git and ssh.
func parseSCP(s string) *url.URL {
	user, rest, ok := strings.Cut(s, "@")
	if !ok || user == "" || rest == "" {
		return nil
	}
	host, path, _ := strings.Cut(rest, ":")
	if host == "" || strings.ContainsAny(host, "/@") {
		return nil
	}
	return &url.URL{
		Scheme: "ssh",
		User:   url.User(user),
		Host:   host,
		Path:   path,
	}
}

// String returns the original text.
func (u URLValue) String() string { return u.raw }

// Parsed returns the structured form, or nil when the text could not be
// interpreted.
func (u URLValue) Parsed() *url.URL { return u.parsed }

// Scheme returns the URL scheme. SSH remotes report "ssh".
func (u URLValue) Scheme() string {
	if u.parsed == nil {
		return ""
	}
	return u.parsed.Scheme
}

// Host returns the host (with port, if any).
func (u URLValue) Host() string {
	if u.parsed == nil {
		return ""
	}
	return u.parsed.Host
}

// Username returns the user part, if present.
func (u URLValue) Username() string {
	if u.parsed == nil || u.parsed.User == nil {
		return ""
	}
	return u.parsed.User.Username()
}

// Redacted returns the text with any password replaced by "xxxxx".
func (u URLValue) Redacted() string {
	if u.parsed == nil || u.parsed.User == nil {
		return u.raw
	}
	if _, ok := u.parsed.User.Password(); !ok {
		return u.raw
	}
	return u.parsed.Redacted()
}

// MarshalText implements encoding.TextMarshaler.
func (u URLValue) MarshalText() ([]byte, error) {
	return []byte(u.raw), nil
}
