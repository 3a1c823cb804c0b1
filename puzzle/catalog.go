package puzzle

import "math/rand/v2"

// RandomSource is the randomness the catalog consumes. *rand.Rand from
// math/rand/v2 satisfies it; tests substitute a seeded or scripted source.
type RandomSource interface {
	IntN(n int) int
}

// NewRandom returns a PCG-backed source. A zero seed pair draws seeds from
// the runtime generator.
func NewRandom(seed1, seed2 uint64) RandomSource {
	if seed1 == 0 && seed2 == 0 {
		seed1, seed2 = rand.Uint64(), rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed1, seed2))
}

// Template is one catalog entry: a base shape and its fill color.
type Template struct {
	Name  string
	Shape Shape
	Color Color
}

var defaultTemplates = []Template{
	{Name: "O", Shape: MustShape("##", "##"), Color: Yellow},
	{Name: "domino", Shape: MustShape("##"), Color: Yellow},
	{Name: "I4", Shape: MustShape("####"), Color: Cyan},
	{Name: "I3", Shape: MustShape("###"), Color: Cyan},
	{Name: "T", Shape: MustShape("###", ".#."), Color: Purple},
	{Name: "Z", Shape: MustShape("##.", ".##"), Color: Red},
	{Name: "S", Shape: MustShape(".##", "##."), Color: Green},
	{Name: "mono", Shape: MustShape("#"), Color: Emerald},
	{Name: "block3", Shape: MustShape("###", "###", "###"), Color: Pink},
	{Name: "L", Shape: MustShape("#.", "#.", "##"), Color: Indigo},
	{Name: "diagonal", Shape: MustShape("#.", ".#"), Color: Indigo},
	{Name: "block2x3", Shape: MustShape("##", "##", "##"), Color: Indigo},
	{Name: "corner", Shape: MustShape("#.", "##"), Color: Indigo},
	{Name: "I5", Shape: MustShape("#####"), Color: Blue},
	{Name: "J", Shape: MustShape("###", "#.."), Color: Orange},
}

// DefaultTemplates returns a copy of the built-in catalog.
func DefaultTemplates() []Template {
	out := make([]Template, len(defaultTemplates))
	copy(out, defaultTemplates)
	return out
}

// CatalogOption configures a Catalog.
type CatalogOption func(*Catalog)

// WithRandom sets the randomness used for template choice and transforms.
func WithRandom(rng RandomSource) CatalogOption {
	return func(c *Catalog) {
		if rng != nil {
			c.rng = rng
		}
	}
}

// WithMirroring enables an optional horizontal flip before rotation.
func WithMirroring(enabled bool) CatalogOption {
	return func(c *Catalog) {
		c.mirror = enabled
	}
}

// Catalog produces randomly chosen, randomly transformed pieces from a
// fixed set of templates.
type Catalog struct {
	templates []Template
	rng       RandomSource
	mirror    bool
}

// NewCatalog creates a catalog over the given templates, or over
// DefaultTemplates when none are given.
func NewCatalog(templates []Template, opts ...CatalogOption) *Catalog {
	if len(templates) == 0 {
		templates = defaultTemplates
	}
	c := &Catalog{
		templates: make([]Template, len(templates)),
	}
	copy(c.templates, templates)
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = NewRandom(0, 0)
	}
	return c
}

// Templates returns a copy of the catalog entries.
func (c *Catalog) Templates() []Template {
	out := make([]Template, len(c.templates))
	copy(out, c.templates)
	return out
}

// Mirroring reports whether generated pieces may be flipped.
func (c *Catalog) Mirroring() bool {
	return c.mirror
}

// GenerateBatch returns n new pieces, each with a fresh id.
func (c *Catalog) GenerateBatch(n int) []Piece {
	if n <= 0 {
		return []Piece{}
	}
	batch := make([]Piece, 0, n)
	for range n {
		batch = append(batch, c.generate())
	}
	return batch
}

func (c *Catalog) generate() Piece {
	t := c.templates[c.rng.IntN(len(c.templates))]
	shape := t.Shape
	if c.mirror && c.rng.IntN(2) == 1 {
		shape = shape.Mirror()
	}
	shape = shape.RotateN(c.rng.IntN(4))
	return Piece{
		Id:       nextPieceId(),
		Shape:    shape,
		Color:    t.Color,
		Template: t.Name,
	}
}
