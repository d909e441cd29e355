package commands

import (
	"context"

	"priolist/internal/domain"
	"priolist/internal/ports"
)

// CategoryInfo pairs a category with the number of parent items it holds.
type CategoryInfo struct {
	domain.Category
	Items int
}

// ListCategoriesCommand lists the categories of a document with their
// shortcuts and item counts.
type ListCategoriesCommand struct {
	buf   ports.Buffer
	rules domain.Rules
}

// NewListCategoriesCommand creates a new ListCategoriesCommand
func NewListCategoriesCommand(buf ports.Buffer, rules domain.Rules) *ListCategoriesCommand {
	return &ListCategoriesCommand{buf: buf, rules: rules}
}

// Execute runs the list categories command
func (c *ListCategoriesCommand) Execute(ctx context.Context) ([]CategoryInfo, error) {
	lines := c.buf.Lines()
	cats := domain.ScanCategories(c.rules, lines)

	infos := make([]CategoryInfo, 0, len(cats))
	for _, cat := range cats {
		info := CategoryInfo{Category: cat}
		for pos := cat.Start + 1; pos < cat.End; pos++ {
			l := domain.ParseLine(c.rules, lines[pos])
			if l.IsSubItem() || l.Content == "" {
				continue
			}
			info.Items++
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// ListItemsCommand lists the parent item lines of one category.
type ListItemsCommand struct {
	buf   ports.Buffer
	rules domain.Rules

	Category string // name or shortcut
}

// NewListItemsCommand creates a new ListItemsCommand
func NewListItemsCommand(buf ports.Buffer, rules domain.Rules, category string) *ListItemsCommand {
	return &ListItemsCommand{buf: buf, rules: rules, Category: category}
}

// Execute returns the item groups of the category in document order.
func (c *ListItemsCommand) Execute(ctx context.Context) ([]domain.ItemGroup, error) {
	lines := c.buf.Lines()
	cats := domain.ScanCategories(c.rules, lines)

	cat, ok := resolveCategory(cats, c.Category)
	if !ok {
		return nil, errUnknownCategory(c.Category)
	}

	var groups []domain.ItemGroup
	for pos := cat.Start + 1; pos < cat.End; {
		l := domain.ParseLine(c.rules, lines[pos])
		if l.IsSubItem() || l.Content == "" {
			pos++
			continue
		}
		g := domain.ItemGroup{Parent: l, Pos: pos, Subtree: domain.CollectSubtree(lines, pos)}
		groups = append(groups, g)
		pos += g.Size()
	}
	return groups, nil
}
