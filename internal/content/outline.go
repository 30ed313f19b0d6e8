package content

import (
	"sort"

	"github.com/fekuna/omnipos-storefront-service/internal/apperror"
	"github.com/fekuna/omnipos-storefront-service/internal/model"
)

// Outline indexes one product's content items for traversal. It never
// touches storage.
type Outline struct {
	byID     map[string]*model.ContentItem
	topLevel []*model.ContentItem
	children map[string][]*model.ContentItem
}

func NewOutline(items []model.ContentItem) *Outline {
	o := &Outline{
		byID:     make(map[string]*model.ContentItem, len(items)),
		children: make(map[string][]*model.ContentItem),
	}
	for i := range items {
		it := &items[i]
		o.byID[it.ID] = it
		if it.ParentID == nil {
			o.topLevel = append(o.topLevel, it)
		} else {
			o.children[*it.ParentID] = append(o.children[*it.ParentID], it)
		}
	}

	byOrder := func(list []*model.ContentItem) {
		sort.SliceStable(list, func(i, j int) bool { return list[i].Order < list[j].Order })
	}
	byOrder(o.topLevel)
	for _, list := range o.children {
		byOrder(list)
	}
	return o
}

func (o *Outline) siblings(it *model.ContentItem) []*model.ContentItem {
	if it.ParentID == nil {
		return o.topLevel
	}
	return o.children[*it.ParentID]
}

// Previous returns the item played before id, or nil at the start of the
// course. Sections have no neighbours.
func (o *Outline) Previous(id string) (*model.ContentItem, error) {
	return o.step(id, -1)
}

// Next returns the item played after id, or nil at the end of the course.
func (o *Outline) Next(id string) (*model.ContentItem, error) {
	return o.step(id, +1)
}

func (o *Outline) step(id string, dir int) (*model.ContentItem, error) {
	it, ok := o.byID[id]
	if !ok {
		return nil, apperror.NotFound("content item %s not found", id)
	}
	if it.IsSection() {
		return nil, nil
	}

	if sib := nearest(o.siblings(it), it.Order, dir, nil); sib != nil {
		return sib, nil
	}
	// Only children can continue into a neighbouring section.
	if it.ParentID == nil {
		return nil, nil
	}

	parent, ok := o.byID[*it.ParentID]
	if !ok {
		return nil, nil
	}
	section := nearest(o.topLevel, parent.Order, dir, (*model.ContentItem).IsSection)
	if section == nil {
		return nil, nil
	}
	kids := o.children[section.ID]
	if len(kids) == 0 {
		return nil, nil
	}
	if dir < 0 {
		return kids[len(kids)-1], nil
	}
	return kids[0], nil
}

// nearest finds the closest member of an order-sorted list strictly below
// (dir < 0) or above (dir > 0) order, optionally filtered by keep.
func nearest(list []*model.ContentItem, order, dir int, keep func(*model.ContentItem) bool) *model.ContentItem {
	if dir < 0 {
		for i := len(list) - 1; i >= 0; i-- {
			if list[i].Order < order && (keep == nil || keep(list[i])) {
				return list[i]
			}
		}
		return nil
	}
	for _, c := range list {
		if c.Order > order && (keep == nil || keep(c)) {
			return c
		}
	}
	return nil
}

// Tree returns the top-level items in order with their children attached.
func (o *Outline) Tree() []model.ContentItem {
	out := make([]model.ContentItem, 0, len(o.topLevel))
	for _, top := range o.topLevel {
		node := *top
		node.Children = nil
		for _, c := range o.children[top.ID] {
			node.Children = append(node.Children, *c)
		}
		out = append(out, node)
	}
	return out
}
