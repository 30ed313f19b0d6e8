package section

import (
	"encoding/json"
	"testing"

	"github.com/fekuna/omnipos-storefront-service/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildText(t *testing.T) {
	sec, err := Build(TypeText)
	require.NoError(t, err)

	text, ok := sec.(*TextSection)
	require.True(t, ok)
	require.Equal(t, TypeText, text.SectionType())
	require.Equal(t, AttrText, text.Title.Type)
	require.Equal(t, AttrText, text.Body.Type)
	require.Equal(t, "Text Title", text.Title.Value)
	require.Equal(t, "Text Body", text.Body.Value)

	ids := map[string]bool{text.ID: true, text.Title.ID: true, text.Body.ID: true}
	require.Len(t, ids, 3)

	var doc map[string]any
	raw, err := json.Marshal(sec)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &doc))
	require.ElementsMatch(t, []string{"section_type", "data_section_uuid", "title", "body"}, keys(doc))
}

func TestBuildAllTypes(t *testing.T) {
	for _, st := range Types {
		t.Run(string(st), func(t *testing.T) {
			a, err := Build(st)
			require.NoError(t, err)
			b, err := Build(st)
			require.NoError(t, err)

			require.Equal(t, st, a.SectionType())
			require.NotEqual(t, a.SectionID(), b.SectionID())
			require.NoError(t, Validate(a))
		})
	}
}

func TestBuildGlobalSections(t *testing.T) {
	for _, st := range []SectionType{TypeProducts, TypeCategories} {
		sec, err := Build(st)
		require.NoError(t, err)

		raw, err := json.Marshal(sec)
		require.NoError(t, err)
		var doc map[string]any
		require.NoError(t, json.Unmarshal(raw, &doc))
		require.Equal(t, true, doc["global_section"])
		require.ElementsMatch(t, []string{"section_type", "data_section_uuid", "global_section"}, keys(doc))
	}
}

func TestBuildColumns(t *testing.T) {
	sec, err := Build(TypeColumns)
	require.NoError(t, err)

	raw, err := json.Marshal(sec)
	require.NoError(t, err)
	require.Contains(t, string(raw), `"content":[]`)

	cols := sec.(*ColumnsSection)
	require.Len(t, cols.Columns, 2)
	require.Equal(t, 2, cols.NumColumns.Value)
	require.NotEqual(t, cols.Columns[0].ID, cols.Columns[1].ID)
}

func TestBuildUnsupported(t *testing.T) {
	_, err := Build("CAROUSEL")
	require.True(t, apperror.IsValidation(err))
}

func TestDecodeRoundTrip(t *testing.T) {
	for _, st := range Types {
		sec, err := Build(st)
		require.NoError(t, err)
		raw, err := json.Marshal(sec)
		require.NoError(t, err)

		got, err := Decode(raw)
		require.NoError(t, err)
		assert.Equal(t, sec, got)
	}
}

func TestDecodeRejectsBadShapes(t *testing.T) {
	cases := map[string]string{
		"unknown_type":  `{"section_type":"CAROUSEL","data_section_uuid":"a"}`,
		"unknown_field": `{"section_type":"TEXT","data_section_uuid":"a","subtitle":{}}`,
		"wrong_value":   `{"section_type":"TEXT","data_section_uuid":"a","title":{"value":3}}`,
		"not_object":    `[1,2]`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode([]byte(doc))
			require.True(t, apperror.IsValidation(err), "got %v", err)
		})
	}
}

func TestValidateAttributeTypes(t *testing.T) {
	sec, err := Build(TypeImageWithText)
	require.NoError(t, err)
	img := sec.(*ImageWithTextSection)

	img.ButtonURL.Type = AttrText
	require.True(t, apperror.IsValidation(Validate(img)))

	img.ButtonURL.Type = AttrURL
	img.Title.ID = ""
	require.True(t, apperror.IsValidation(Validate(img)))
}

func TestSchemaJSON(t *testing.T) {
	var nilSchema Schema
	raw, err := json.Marshal(nilSchema)
	require.NoError(t, err)
	require.JSONEq(t, `[]`, string(raw))

	a, _ := Build(TypeText)
	b, _ := Build(TypeFAQ)
	s := Schema{a, b}

	val, err := s.Value()
	require.NoError(t, err)

	var back Schema
	require.NoError(t, back.Scan(val))
	require.Equal(t, s, back)

	require.NoError(t, back.Scan(nil))
	require.Empty(t, back)
	require.Error(t, back.Scan(42))
}

func TestSchemaReplaceRemove(t *testing.T) {
	a, _ := Build(TypeText)
	b, _ := Build(TypeBio)
	s := Schema{a, b}

	edited := *(a.(*TextSection))
	edited.Title.Value = "Welcome"
	out, err := s.Replace(&edited)
	require.NoError(t, err)
	require.Equal(t, "Welcome", out[0].(*TextSection).Title.Value)
	require.Equal(t, "Text Title", s[0].(*TextSection).Title.Value)

	missing, _ := Build(TypeText)
	_, err = s.Replace(missing)
	require.True(t, apperror.IsNotFound(err))

	out, removed, err := s.Remove(b.SectionID())
	require.NoError(t, err)
	require.Equal(t, b, removed)
	require.Equal(t, Schema{a}, out)

	_, _, err = s.Remove("nope")
	require.True(t, apperror.IsNotFound(err))

	_, err = s.Append(a)
	require.True(t, apperror.IsValidation(err))
}

func TestSchemaMove(t *testing.T) {
	a, _ := Build(TypeText)
	b, _ := Build(TypeBio)
	c, _ := Build(TypeFAQ)
	s := Schema{a, b, c}

	cases := []struct {
		name     string
		src, dst int
		want     Schema
	}{
		{"first_to_last", 0, 2, Schema{b, c, a}},
		{"last_to_first", 2, 0, Schema{c, a, b}},
		{"same_index", 1, 1, Schema{a, b, c}},
		{"dst_len_appends", 0, 3, Schema{b, c, a}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := s.Move(tc.src, tc.dst)
			require.NoError(t, err)
			require.Equal(t, tc.want, out)
		})
	}

	t.Run("single_element_noop", func(t *testing.T) {
		one := Schema{a}
		out, err := one.Move(0, 0)
		require.NoError(t, err)
		require.Equal(t, one, out)
	})

	t.Run("out_of_range", func(t *testing.T) {
		_, err := s.Move(3, 0)
		require.True(t, apperror.IsValidation(err))
		_, err = s.Move(-1, 0)
		require.True(t, apperror.IsValidation(err))
		_, err = s.Move(0, 4)
		require.True(t, apperror.IsValidation(err))
	})
}

func TestSchemaValidateDuplicates(t *testing.T) {
	a, _ := Build(TypeText)
	require.NoError(t, Schema{a}.Validate())
	require.True(t, apperror.IsValidation(Schema{a, a}.Validate()))
}

func TestSchemaReplaceKeepsIdentity(t *testing.T) {
	text, _ := Build(TypeText)
	faq, _ := Build(TypeFAQ)
	s := Schema{text, faq}

	t.Run("type_change", func(t *testing.T) {
		news, _ := Build(TypeNewsletter)
		news.(*NewsletterSection).ID = text.SectionID()
		_, err := s.Replace(news)
		require.True(t, apperror.IsValidation(err))
	})

	t.Run("fresh_attribute_ids", func(t *testing.T) {
		fresh, _ := Build(TypeText)
		fresh.(*TextSection).ID = text.SectionID()
		_, err := s.Replace(fresh)
		require.True(t, apperror.IsValidation(err))
	})

	t.Run("nested_attribute_id_change", func(t *testing.T) {
		edited := *(faq.(*FAQSection))
		edited.Questions = append([]Question(nil), edited.Questions...)
		edited.Questions[0].Answer.ID = "rewritten"
		_, err := s.Replace(&edited)
		require.True(t, apperror.IsValidation(err))
	})

	t.Run("added_and_removed_questions", func(t *testing.T) {
		extra, _ := Build(TypeFAQ)
		edited := *(faq.(*FAQSection))
		edited.Questions = []Question{extra.(*FAQSection).Questions[0]}
		edited.Questions[0].Answer.Value = "Ask us anything."

		out, err := s.Replace(&edited)
		require.NoError(t, err)
		require.Equal(t, "Ask us anything.", out[1].(*FAQSection).Questions[0].Answer.Value)
	})

	t.Run("column_content_keeps_identity", func(t *testing.T) {
		cols, _ := Build(TypeColumns)
		inner, _ := Build(TypeText)
		c := cols.(*ColumnsSection)
		c.Columns[0].Content = Schema{inner}
		withCols := Schema{c}

		edited := *c
		edited.Columns = []Column{{ID: c.Columns[0].ID}, c.Columns[1]}
		swapped, _ := Build(TypeText)
		swapped.(*TextSection).ID = inner.SectionID()
		edited.Columns[0].Content = Schema{swapped}
		_, err := withCols.Replace(&edited)
		require.True(t, apperror.IsValidation(err))

		kept := *(inner.(*TextSection))
		kept.Body.Value = "Column body"
		edited.Columns[0].Content = Schema{&kept}
		_, err = withCols.Replace(&edited)
		require.NoError(t, err)
	})
}

func TestSchemaNestedIDsAreUnique(t *testing.T) {
	top, _ := Build(TypeText)
	cols, _ := Build(TypeColumns)
	c := cols.(*ColumnsSection)
	c.Columns[0].Content = Schema{top}

	t.Run("append", func(t *testing.T) {
		_, err := Schema{top}.Append(c)
		require.True(t, apperror.IsValidation(err))
	})

	t.Run("validate", func(t *testing.T) {
		require.True(t, apperror.IsValidation(Schema{top, c}.Validate()))
	})

	t.Run("replace", func(t *testing.T) {
		plain, _ := Build(TypeColumns)
		p := plain.(*ColumnsSection)
		s := Schema{top, p}

		edited := *p
		edited.Columns = []Column{{ID: p.Columns[0].ID, Content: Schema{top}}, p.Columns[1]}
		_, err := s.Replace(&edited)
		require.True(t, apperror.IsValidation(err))
	})

	t.Run("distinct_ids_pass", func(t *testing.T) {
		inner, _ := Build(TypeText)
		fresh, _ := Build(TypeColumns)
		fresh.(*ColumnsSection).Columns[0].Content = Schema{inner}
		out, err := Schema{top}.Append(fresh)
		require.NoError(t, err)
		require.NoError(t, out.Validate())
	})
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
