package molecule

import (
	"fmt"
	"sort"
)

// MissingTemplateError is returned when a block isn't in the force field
type MissingTemplateError struct {
	// Name of the block that was looked up
	Name string

	// ForceField the lookup was made against
	ForceField string
}

func (e *MissingTemplateError) Error() string {
	return fmt.Sprintf("no block named %q in force field %q", e.Name, e.ForceField)
}

// ForceField is a library of blocks, keyed by name
type ForceField struct {
	// Name of the force field, eg "martini3"
	Name string

	// Blocks by their name
	Blocks map[string]*Block
}

// NewForceField returns an empty force field
func NewForceField(name string) *ForceField {
	return &ForceField{Name: name, Blocks: make(map[string]*Block)}
}

// Add a block to the force field, replacing any block with the same name
func (ff *ForceField) Add(b *Block) {
	ff.Blocks[b.Name] = b
}

// Block returns the block with the name passed
func (ff *ForceField) Block(name string) (*Block, error) {
	b, ok := ff.Blocks[name]
	if !ok {
		return nil, &MissingTemplateError{Name: name, ForceField: ff.Name}
	}
	return b, nil
}

// Names returns the block names, sorted
func (ff *ForceField) Names() []string {
	names := make([]string, 0, len(ff.Blocks))
	for name := range ff.Blocks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Subset returns a new force field with deep copies of the named blocks.
// Changes to the subset don't reach the blocks of ff.
func (ff *ForceField) Subset(names []string) (*ForceField, error) {
	sub := NewForceField(ff.Name)
	for _, name := range names {
		if _, copied := sub.Blocks[name]; copied {
			continue
		}
		b, err := ff.Block(name)
		if err != nil {
			return nil, err
		}
		sub.Add(b.Copy())
	}
	return sub, nil
}
