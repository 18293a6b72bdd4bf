package curriculum

import (
	"errors"
	"fmt"
	"strings"
)

// ErrLessonNotFound is returned when a lesson id is not in the catalog.
var ErrLessonNotFound = errors.New("lesson not found")

// ErrEndOfCourse signals that a lesson is the last unit. A boundary
// marker, not a failure.
var ErrEndOfCourse = errors.New("end of course")

// ErrStartOfCourse signals that a lesson is the first unit. A boundary
// marker, not a failure.
var ErrStartOfCourse = errors.New("start of course")

// Catalog is the ordered, immutable list of lesson units. Built once at
// startup; there is no mutation API.
type Catalog struct {
	units []Unit
	index map[string]int
}

// New builds a Catalog from an ordered unit slice, validating it first.
func New(units []Unit) (*Catalog, error) {
	if err := validateUnits(units); err != nil {
		return nil, err
	}

	c := &Catalog{
		units: make([]Unit, len(units)),
		index: make(map[string]int, len(units)),
	}
	copy(c.units, units)
	for i, u := range c.units {
		c.index[u.ID] = i
	}
	return c, nil
}

// List returns the units in catalog order. The returned slice is a copy.
func (c *Catalog) List() []Unit {
	out := make([]Unit, len(c.units))
	copy(out, c.units)
	return out
}

// Size returns the number of units.
func (c *Catalog) Size() int {
	return len(c.units)
}

// Get returns the unit with the given id.
func (c *Catalog) Get(id string) (Unit, error) {
	i, ok := c.index[id]
	if !ok {
		return Unit{}, fmt.Errorf("%w: %q", ErrLessonNotFound, id)
	}
	return c.units[i], nil
}

// First returns the first unit in catalog order.
func (c *Catalog) First() Unit {
	return c.units[0]
}

// Last returns the last unit in catalog order.
func (c *Catalog) Last() Unit {
	return c.units[len(c.units)-1]
}

// Next returns the unit after id. Returns ErrEndOfCourse when id is the
// last unit, ErrLessonNotFound when id is unknown.
func (c *Catalog) Next(id string) (Unit, error) {
	i, ok := c.index[id]
	if !ok {
		return Unit{}, fmt.Errorf("%w: %q", ErrLessonNotFound, id)
	}
	if i == len(c.units)-1 {
		return Unit{}, ErrEndOfCourse
	}
	return c.units[i+1], nil
}

// Previous returns the unit before id. Returns ErrStartOfCourse when id
// is the first unit, ErrLessonNotFound when id is unknown.
func (c *Catalog) Previous(id string) (Unit, error) {
	i, ok := c.index[id]
	if !ok {
		return Unit{}, fmt.Errorf("%w: %q", ErrLessonNotFound, id)
	}
	if i == 0 {
		return Unit{}, ErrStartOfCourse
	}
	return c.units[i-1], nil
}

// Position returns the zero-based position of id in catalog order.
func (c *Catalog) Position(id string) (int, error) {
	i, ok := c.index[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrLessonNotFound, id)
	}
	return i, nil
}

// validateUnits performs all structural checks on the given unit list.
// Returns a combined error describing all problems found, or nil if valid.
func validateUnits(units []Unit) error {
	var errs []string

	if len(units) == 0 {
		errs = append(errs, "catalog is empty")
	}

	idSet := make(map[string]bool, len(units))
	for _, u := range units {
		if u.ID == "" {
			errs = append(errs, "unit with empty ID")
			continue
		}
		if idSet[u.ID] {
			errs = append(errs, fmt.Sprintf("duplicate lesson ID: %q", u.ID))
		}
		idSet[u.ID] = true

		if u.Question.Prompt == "" {
			errs = append(errs, fmt.Sprintf("lesson %q has no question prompt", u.ID))
		}
		if u.Question.Answer == "" {
			errs = append(errs, fmt.Sprintf("lesson %q has no canonical answer", u.ID))
		}

		switch u.Question.Mode {
		case ModeChoice:
			if len(u.Question.Options) < 2 {
				errs = append(errs, fmt.Sprintf("lesson %q: choice question needs at least 2 options", u.ID))
			}
			found := false
			for _, opt := range u.Question.Options {
				if strings.EqualFold(opt, u.Question.Answer) {
					found = true
					break
				}
			}
			if !found && len(u.Question.Options) >= 2 {
				errs = append(errs, fmt.Sprintf("lesson %q: answer %q is not among options", u.ID, u.Question.Answer))
			}
		case ModeFreeText:
			if len(u.Question.Options) != 0 {
				errs = append(errs, fmt.Sprintf("lesson %q: freetext question must not have options", u.ID))
			}
		default:
			errs = append(errs, fmt.Sprintf("lesson %q: unknown question mode %q", u.ID, u.Question.Mode))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid curriculum:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
