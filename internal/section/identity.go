package section

import (
	"github.com/fekuna/omnipos-storefront-service/internal/apperror"
)

// attributeIDs keys every attribute id of sec by its place in the section.
// Attributes of nested elements are keyed under the element's own id.
func attributeIDs(sec Section) map[string]string {
	out := map[string]string{}
	for _, f := range sec.fields() {
		if _, nested := nestedLists[f.name]; nested {
			continue
		}
		id, _ := f.attr.meta()
		out[f.name] = id
	}

	switch s := sec.(type) {
	case *TestimonialsSection:
		for _, t := range s.Testimonials {
			out["testimonials."+t.ID+".name"] = t.Name.ID
			out["testimonials."+t.ID+".text"] = t.Text.ID
			out["testimonials."+t.ID+".photo"] = t.Photo.ID
		}
	case *FAQSection:
		for _, q := range s.Questions {
			out["questions."+q.ID+".question"] = q.Question.ID
			out["questions."+q.ID+".answer"] = q.Answer.ID
		}
	}
	return out
}

// nestedLists names the flattened fields that belong to list elements.
var nestedLists = map[string]struct{}{
	"testimonials.name": {}, "testimonials.text": {}, "testimonials.photo": {},
	"questions.question": {}, "questions.answer": {},
}

// sameIdentity reports a validation error when next does not keep the
// identifiers of prev. Elements added to nested lists may bring new ids;
// anything already present must keep the ids it had.
func sameIdentity(prev, next Section) error {
	if prev.SectionType() != next.SectionType() {
		return apperror.Validation("section %s is %s and cannot become %s",
			prev.SectionID(), prev.SectionType(), next.SectionType())
	}

	before := attributeIDs(prev)
	for key, id := range attributeIDs(next) {
		if old, ok := before[key]; ok && old != id {
			return apperror.Validation("section %s: %s must keep attribute id %s", prev.SectionID(), key, old)
		}
	}

	oldCols, ok := prev.(*ColumnsSection)
	if !ok {
		return nil
	}
	nested := map[string]Section{}
	for _, col := range oldCols.Columns {
		for _, sec := range col.Content {
			nested[sec.SectionID()] = sec
		}
	}
	for _, col := range next.(*ColumnsSection).Columns {
		for _, sec := range col.Content {
			if old, ok := nested[sec.SectionID()]; ok {
				if err := sameIdentity(old, sec); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// sectionIDs returns the id of sec followed by the ids of every section
// nested in its columns.
func sectionIDs(sec Section) []string {
	ids := []string{sec.SectionID()}
	if c, ok := sec.(*ColumnsSection); ok {
		for _, col := range c.Columns {
			for _, n := range col.Content {
				ids = append(ids, sectionIDs(n)...)
			}
		}
	}
	return ids
}

// claimIDs adds the section ids of sec to taken, failing on the first one
// already present.
func claimIDs(taken map[string]bool, sec Section) error {
	for _, id := range sectionIDs(sec) {
		if taken[id] {
			return apperror.Validation("section %s already exists", id)
		}
		taken[id] = true
	}
	return nil
}

// takenIDs collects the section ids used anywhere in s except at index skip.
func (s Schema) takenIDs(skip int) map[string]bool {
	taken := map[string]bool{}
	for i, sec := range s {
		if i == skip {
			continue
		}
		for _, id := range sectionIDs(sec) {
			taken[id] = true
		}
	}
	return taken
}
