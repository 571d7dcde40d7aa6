// Package catalog holds the built-in exercise library, the sport detector
// that scans free-form requests, and the sampler that draws exercise hints
// for prompt building. All data is fixed at startup; nothing here touches
// the network or disk.
package catalog

import "strings"

// DefaultLabel is the entry used when a requested label has no entry of its
// own. It is always present in the default catalog.
const DefaultLabel = "full body"

// Group is one catalog entry: a lowercase focus label and its exercises in
// display order.
type Group struct {
	Label     string
	Exercises []string
}

// Catalog maps focus labels to exercise lists. Lookups are case-insensitive
// and never fail; unknown labels resolve to DefaultLabel. The catalog is
// immutable after construction and safe for concurrent use.
type Catalog struct {
	labels  []string
	entries map[string][]string
}

// New builds a catalog from groups, preserving declaration order for Labels.
func New(groups []Group) *Catalog {
	c := &Catalog{entries: make(map[string][]string, len(groups))}
	for _, g := range groups {
		label := normalizeLabel(g.Label)
		if _, exists := c.entries[label]; !exists {
			c.labels = append(c.labels, label)
		}
		c.entries[label] = g.Exercises
	}
	return c
}

// Default returns the built-in library: the four body areas plus one entry
// per detectable sport, so every detector outcome has exercises to draw from.
func Default() *Catalog {
	return New(defaultGroups)
}

// Lookup returns a copy of the exercises for label, falling back to the
// DefaultLabel entry when the label is unknown. Callers may freely reorder
// or truncate the result.
func (c *Catalog) Lookup(label string) []string {
	entry, ok := c.entries[normalizeLabel(label)]
	if !ok {
		entry = c.entries[DefaultLabel]
	}
	out := make([]string, len(entry))
	copy(out, entry)
	return out
}

// Has reports whether label has its own entry, without the default fallback.
func (c *Catalog) Has(label string) bool {
	_, ok := c.entries[normalizeLabel(label)]
	return ok
}

// Labels returns every catalog label in declaration order.
func (c *Catalog) Labels() []string {
	out := make([]string, len(c.labels))
	copy(out, c.labels)
	return out
}

func normalizeLabel(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

var defaultGroups = []Group{
	{
		Label: "legs",
		Exercises: []string{
			"Bodyweight Squats",
			"Walking Lunges",
			"Glute Bridges",
			"Romanian Deadlifts (dumbbells or barbell)",
			"Calf Raises",
		},
	},
	{
		Label: "upper body",
		Exercises: []string{
			"Push-Ups",
			"Dumbbell Rows",
			"Shoulder Press",
			"Bench Press",
			"Lat Pulldown or Assisted Pull-Up",
		},
	},
	{
		Label: "core",
		Exercises: []string{
			"Plank",
			"Dead Bug",
			"Side Plank",
			"Russian Twists",
			"Bird Dogs",
		},
	},
	{
		Label: "full body",
		Exercises: []string{
			"Burpees",
			"Kettlebell Swings",
			"Thrusters",
			"Mountain Climbers",
			"Farmer's Carry",
		},
	},
	{
		Label: "basketball",
		Exercises: []string{
			"Jump Squats",
			"Lateral Lunges",
			"Box Jumps",
			"Medicine Ball Slams",
			"Defensive Slide Shuffles",
		},
	},
	{
		Label: "soccer",
		Exercises: []string{
			"Split Squats",
			"Nordic Hamstring Curls",
			"Lateral Band Walks",
			"Single-Leg Romanian Deadlifts",
			"Carioca Drills",
		},
	},
	{
		Label: "running",
		Exercises: []string{
			"High Knees",
			"Single-Leg Glute Bridges",
			"Calf Raises",
			"Ankle Hops",
			"Hill Stride Repeats",
		},
	},
	{
		Label: "tennis",
		Exercises: []string{
			"Lateral Lunges",
			"Medicine Ball Rotational Throws",
			"Band Pull-Aparts",
			"Split-Step Hops",
			"Forearm Curls",
		},
	},
	{
		Label: "volleyball",
		Exercises: []string{
			"Block Jumps",
			"Depth Jumps",
			"Overhead Medicine Ball Throws",
			"Shoulder External Rotations",
			"Broad Jumps",
		},
	},
}
