package section

import (
	"github.com/fekuna/omnipos-storefront-service/internal/apperror"
)

// expectedTypes maps field name to attribute type for each section type.
// Derived once from the factory so the two can never disagree.
var expectedTypes = func() map[SectionType]map[string]AttributeType {
	out := make(map[SectionType]map[string]AttributeType, len(Types))
	for _, t := range Types {
		sec, err := Build(t)
		if err != nil {
			panic(err)
		}
		m := map[string]AttributeType{}
		for _, f := range sec.fields() {
			_, at := f.attr.meta()
			m[f.name] = at
		}
		out[t] = m
	}
	return out
}()

// Validate checks that sec has identifiers everywhere and that every
// attribute carries the type fixed for its field.
func Validate(sec Section) error {
	if sec.SectionID() == "" {
		return apperror.Validation("section is missing data_section_uuid")
	}
	want, ok := expectedTypes[sec.SectionType()]
	if !ok {
		return apperror.Validation("unsupported section type %q", sec.SectionType())
	}

	if g, ok := sec.(*GlobalSection); ok && !g.Global {
		return apperror.Validation("section %s must be a global section", sec.SectionID())
	}

	seen := map[string]bool{}
	for _, f := range sec.fields() {
		id, at := f.attr.meta()
		if id == "" {
			return apperror.Validation("section %s: %s is missing data_attribute_uuid", sec.SectionID(), f.name)
		}
		if seen[id] {
			return apperror.Validation("section %s: duplicate attribute id %s", sec.SectionID(), id)
		}
		seen[id] = true
		if want[f.name] != at {
			return apperror.Validation("section %s: %s must be %s, got %s", sec.SectionID(), f.name, want[f.name], at)
		}
	}
	for _, id := range sec.nestedIDs() {
		if id == "" {
			return apperror.Validation("section %s has a nested element without id", sec.SectionID())
		}
	}

	if c, ok := sec.(*ColumnsSection); ok {
		for _, col := range c.Columns {
			if err := col.Content.Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Validate checks every section and that section ids are unique across the
// list and the column content nested in it.
func (s Schema) Validate() error {
	seen := make(map[string]bool, len(s))
	for _, sec := range s {
		if err := Validate(sec); err != nil {
			return err
		}
		for _, id := range sectionIDs(sec) {
			if seen[id] {
				return apperror.Validation("duplicate section id %s", id)
			}
			seen[id] = true
		}
	}
	return nil
}
