package job

import (
	"fmt"
	"strconv"
	"strings"
)

// Spec describes one task to load into a scheduler.
type Spec struct {
	Name  string `yaml:"name"`
	Burst int64  `yaml:"burst"`
}

// Demo returns a small mixed workload: two medium tasks, a short one that
// finishes in its first turn and a long one.
func Demo() []Spec {
	return []Spec{
		{Name: "Chrome_Tab1", Burst: 50},
		{Name: "Spotify_Core", Burst: 30},
		{Name: "Notepad", Burst: 10},
		{Name: "VS_Code", Burst: 85},
	}
}

// Parse reads a "name:burst" argument. The name may itself contain colons;
// the burst is taken after the last one.
func Parse(arg string) (Spec, error) {
	i := strings.LastIndex(arg, ":")
	if i <= 0 || i == len(arg)-1 {
		return Spec{}, fmt.Errorf("task %q: want name:burst", arg)
	}
	burst, err := strconv.ParseInt(arg[i+1:], 10, 64)
	if err != nil {
		return Spec{}, fmt.Errorf("task %q: bad burst: %w", arg, err)
	}
	return Spec{Name: arg[:i], Burst: burst}, nil
}

// ParseAll parses every argument, stopping at the first bad one.
func ParseAll(args []string) ([]Spec, error) {
	specs := make([]Spec, 0, len(args))
	for _, a := range args {
		s, err := Parse(a)
		if err != nil {
			return nil, err
		}
		specs = append(specs, s)
	}
	return specs, nil
}
