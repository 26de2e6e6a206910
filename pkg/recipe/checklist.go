package recipe

import "fmt"

// Checklist tracks which ingredients the cook has ticked off.
// It is owned by a single view and is not safe for concurrent use.
type Checklist struct {
	items   []string
	checked []bool
}

// NewChecklist creates an unchecked list for the recipe's ingredients.
func NewChecklist(r Recipe) *Checklist {
	items := make([]string, len(r.Ingredients))
	copy(items, r.Ingredients)
	return &Checklist{
		items:   items,
		checked: make([]bool, len(items)),
	}
}

// Len returns the number of ingredients.
func (c *Checklist) Len() int {
	return len(c.items)
}

// Item returns the ingredient text at index i.
func (c *Checklist) Item(i int) (string, error) {
	if err := c.check(i); err != nil {
		return "", err
	}
	return c.items[i], nil
}

// Toggle flips the checked state of ingredient i and returns the new state.
func (c *Checklist) Toggle(i int) (bool, error) {
	if err := c.check(i); err != nil {
		return false, err
	}
	c.checked[i] = !c.checked[i]
	return c.checked[i], nil
}

// Checked reports whether ingredient i is ticked off.
// Out-of-range indexes report false.
func (c *Checklist) Checked(i int) bool {
	if i < 0 || i >= len(c.checked) {
		return false
	}
	return c.checked[i]
}

// Remaining returns the number of unchecked ingredients.
func (c *Checklist) Remaining() int {
	n := 0
	for _, done := range c.checked {
		if !done {
			n++
		}
	}
	return n
}

func (c *Checklist) check(i int) error {
	if i < 0 || i >= len(c.items) {
		return fmt.Errorf("%w: %d (have %d ingredients)", ErrIndexOutOfRange, i, len(c.items))
	}
	return nil
}
