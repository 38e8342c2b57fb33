// Package specgen turns the Last.fm HTML API documentation into a JSON
// method spec and renders the client's method surface from that spec.
//
// It is an offline tool: nothing in pkg/lastfm imports it at runtime.
package specgen

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"time"
)

// GeneratedKey is the top-level spec key holding the generation time.
const GeneratedKey = "__generated__"

// ErrNoMethods is returned when a spec or a scrape yields no methods.
var ErrNoMethods = errors.New("specgen: no API methods found")

// ParamSpec describes one documented parameter.
type ParamSpec struct {
	Description string `json:"description"`
	Required    bool   `json:"required"`
	Boolean     bool   `json:"boolean"`
	Multiple    bool   `json:"multiple"`
}

// MethodSpec describes one documented API method.
type MethodSpec struct {
	Documentation string               `json:"documentation"`
	Description   string               `json:"description"`
	Auth          bool                 `json:"auth"`
	HTTP          string               `json:"http"`
	Params        map[string]ParamSpec `json:"params"`
}

// Spec is the whole method spec: package name => method name => MethodSpec.
//
// On disk it is a single JSON object keyed by package name plus
// "__generated__" holding an RFC 3339 timestamp.
type Spec struct {
	Generated time.Time
	Packages  map[string]map[string]MethodSpec
}

// NewSpec returns an empty spec stamped with the current time.
func NewSpec() *Spec {
	return &Spec{
		Generated: time.Now().UTC().Truncate(time.Second),
		Packages:  make(map[string]map[string]MethodSpec),
	}
}

// Add records a method under its package.
func (s *Spec) Add(pkg, method string, m MethodSpec) {
	if s.Packages[pkg] == nil {
		s.Packages[pkg] = make(map[string]MethodSpec)
	}
	s.Packages[pkg][method] = m
}

// PackageNames returns the package names in sorted order.
func (s *Spec) PackageNames() []string {
	names := make([]string, 0, len(s.Packages))
	for name := range s.Packages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MethodCount returns the number of methods across all packages.
func (s *Spec) MethodCount() int {
	n := 0
	for _, methods := range s.Packages {
		n += len(methods)
	}
	return n
}

// MarshalJSON writes the flat on-disk layout.
func (s *Spec) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(s.Packages)+1)
	out[GeneratedKey] = s.Generated.UTC().Format(time.RFC3339)
	for name, methods := range s.Packages {
		out[name] = methods
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads the flat on-disk layout.
func (s *Spec) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	s.Packages = make(map[string]map[string]MethodSpec, len(raw))
	for key, val := range raw {
		if key == GeneratedKey {
			var ts string
			if err := json.Unmarshal(val, &ts); err != nil {
				return fmt.Errorf("invalid %s: %w", GeneratedKey, err)
			}
			t, err := time.Parse(time.RFC3339, ts)
			if err != nil {
				return fmt.Errorf("invalid %s: %w", GeneratedKey, err)
			}
			s.Generated = t
			continue
		}

		var methods map[string]MethodSpec
		if err := json.Unmarshal(val, &methods); err != nil {
			return fmt.Errorf("package %s: %w", key, err)
		}
		s.Packages[key] = methods
	}
	return nil
}

// Validate checks the spec is usable for code generation.
func (s *Spec) Validate() error {
	if s.MethodCount() == 0 {
		return ErrNoMethods
	}
	for pkg, methods := range s.Packages {
		for name, m := range methods {
			if m.HTTP != "GET" && m.HTTP != "POST" {
				return fmt.Errorf("specgen: %s.%s: unsupported http verb %q", pkg, name, m.HTTP)
			}
		}
	}
	return nil
}

// Load reads a spec file.
func Load(path string) (*Spec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open spec: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read decodes a spec from r.
func Read(r io.Reader) (*Spec, error) {
	var s Spec
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to decode spec: %w", err)
	}
	return &s, nil
}

// WriteTo encodes the spec as indented JSON with sorted keys.
func (s *Spec) WriteTo(w io.Writer) (int64, error) {
	b, err := json.MarshalIndent(s, "", "    ")
	if err != nil {
		return 0, err
	}
	b = append(b, '\n')
	n, err := w.Write(b)
	return int64(n), err
}
