package section

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/fekuna/omnipos-storefront-service/internal/apperror"
)

// Schema is an ordered list of section documents, as stored in the schema and
// schema_draft JSONB columns.
type Schema []Section

func (s Schema) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Section(s))
}

func (s *Schema) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*s = Schema{}
		return nil
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return apperror.Validation("schema must be an array of sections: %v", err)
	}

	out := make(Schema, 0, len(raws))
	for i, raw := range raws {
		sec, err := Decode(raw)
		if err != nil {
			return fmt.Errorf("section %d: %w", i, err)
		}
		out = append(out, sec)
	}
	*s = out
	return nil
}

func (s Schema) Value() (driver.Value, error) {
	return s.MarshalJSON()
}

func (s *Schema) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*s = Schema{}
		return nil
	case []byte:
		return s.UnmarshalJSON(v)
	case string:
		return s.UnmarshalJSON([]byte(v))
	default:
		return fmt.Errorf("section: cannot scan %T into Schema", src)
	}
}

// Decode reads one section document, choosing the variant by section_type.
// Fields not belonging to the variant are rejected.
func Decode(raw []byte) (Section, error) {
	var h Header
	if err := json.Unmarshal(raw, &h); err != nil {
		return nil, apperror.Validation("malformed section document: %v", err)
	}

	sec, err := newVariant(h.Type)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(sec); err != nil {
		return nil, apperror.Validation("section %s does not match the %s shape: %v", h.ID, h.Type, err)
	}
	return sec, nil
}

func newVariant(t SectionType) (Section, error) {
	switch t {
	case TypeText:
		return &TextSection{}, nil
	case TypeBio:
		return &BioSection{}, nil
	case TypeTestimonials:
		return &TestimonialsSection{}, nil
	case TypeFAQ:
		return &FAQSection{}, nil
	case TypeImageWithText:
		return &ImageWithTextSection{}, nil
	case TypeVideoWithText:
		return &VideoWithTextSection{}, nil
	case TypeNewsletter:
		return &NewsletterSection{}, nil
	case TypeProducts, TypeCategories:
		return &GlobalSection{}, nil
	case TypeColumns:
		return &ColumnsSection{}, nil
	default:
		return nil, apperror.Validation("unsupported section type %q", t)
	}
}

// IndexOf returns the position of the section with id, or -1.
func (s Schema) IndexOf(id string) int {
	for i, sec := range s {
		if sec.SectionID() == id {
			return i
		}
	}
	return -1
}

// Clone copies the slice; section documents are shared.
func (s Schema) Clone() Schema {
	out := make(Schema, len(s))
	copy(out, s)
	return out
}

// Append returns s with sec added at the end. No section id of sec, nested
// ones included, may already be used in s.
func (s Schema) Append(sec Section) (Schema, error) {
	if err := claimIDs(s.takenIDs(-1), sec); err != nil {
		return nil, err
	}
	return append(s.Clone(), sec), nil
}

// Replace swaps the section sharing sec's id, keeping its index. sec must
// keep the type and identifiers of the section it replaces.
func (s Schema) Replace(sec Section) (Schema, error) {
	idx := s.IndexOf(sec.SectionID())
	if idx < 0 {
		return nil, apperror.NotFound("section %s not found", sec.SectionID())
	}
	if err := sameIdentity(s[idx], sec); err != nil {
		return nil, err
	}
	if err := claimIDs(s.takenIDs(idx), sec); err != nil {
		return nil, err
	}
	out := s.Clone()
	out[idx] = sec
	return out, nil
}

// Remove drops the section with id and returns it.
func (s Schema) Remove(id string) (Schema, Section, error) {
	idx := s.IndexOf(id)
	if idx < 0 {
		return nil, nil, apperror.NotFound("section %s not found", id)
	}
	removed := s[idx]
	out := make(Schema, 0, len(s)-1)
	out = append(out, s[:idx]...)
	out = append(out, s[idx+1:]...)
	return out, removed, nil
}

// Move pops the section at src and inserts it at dst, where dst indexes the
// list after removal. src must be in [0, len-1] and dst in [0, len].
func (s Schema) Move(src, dst int) (Schema, error) {
	if src < 0 || src >= len(s) {
		return nil, apperror.Validation("source index %d out of range [0, %d]", src, len(s)-1)
	}
	if dst < 0 || dst > len(s) {
		return nil, apperror.Validation("destination index %d out of range [0, %d]", dst, len(s))
	}

	moved := s[src]
	rest := make(Schema, 0, len(s))
	rest = append(rest, s[:src]...)
	rest = append(rest, s[src+1:]...)

	if dst > len(rest) {
		dst = len(rest)
	}
	out := make(Schema, 0, len(s))
	out = append(out, rest[:dst]...)
	out = append(out, moved)
	out = append(out, rest[dst:]...)
	return out, nil
}
