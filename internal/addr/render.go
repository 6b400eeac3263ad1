package addr

import (
	"github.com/pkg/errors"

	"FLOWADDR/internal/pager"
)

// Item is one rendered page of one screen.
type Item struct {
	Index     int
	Page      int
	PageCount int
	Label     string
	Value     string
}

// Render is GetItem with freshly allocated buffers of the given capacities.
func Render(c Context, index, page, labelCap, valueCap int) (Item, error) {
	label := make([]byte, labelCap)
	value := make([]byte, valueCap)
	n, err := GetItem(c, index, label, value, page)
	if err != nil {
		return Item{}, err
	}
	return Item{
		Index:     index,
		Page:      page,
		PageCount: n,
		Label:     pager.Text(label),
		Value:     pager.Text(value),
	}, nil
}

// Walk drives the menu the way the device UI loop does: count the screens
// once, then for every screen fetch page 0 to learn the page count and
// continue through the remaining pages. fn sees every page in order; a
// non-nil return stops the walk and is returned unchanged.
func Walk(c Context, labelCap, valueCap int, fn func(Item) error) error {
	label := make([]byte, labelCap)
	value := make([]byte, valueCap)
	count := NumItems(c)
	for i := 0; i < count; i++ {
		pageCount := 1
		for p := 0; p < pageCount; p++ {
			n, err := GetItem(c, i, label, value, p)
			if err != nil {
				return errors.Wrapf(err, "item %d page %d", i, p)
			}
			pageCount = n
			it := Item{Index: i, Page: p, PageCount: n, Label: pager.Text(label), Value: pager.Text(value)}
			if err := fn(it); err != nil {
				return err
			}
		}
	}
	return nil
}
