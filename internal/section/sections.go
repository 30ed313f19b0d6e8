package section

type TextSection struct {
	Header
	Title Attribute[string] `json:"title"`
	Body  Attribute[string] `json:"body"`
}

func (s *TextSection) fields() []field {
	return []field{{"title", s.Title}, {"body", s.Body}}
}

func (s *TextSection) nestedIDs() []string { return nil }

type BioSection struct {
	Header
	Layout          Attribute[string]  `json:"layout"`
	Style           Attribute[string]  `json:"style"`
	Title           Attribute[string]  `json:"title"`
	Text            Attribute[string]  `json:"text"`
	Avatar          Attribute[*string] `json:"avatar"`
	BackgroundImage Attribute[*string] `json:"background_image"`
	Twitter         Attribute[*string] `json:"twitter"`
	Instagram       Attribute[*string] `json:"instagram"`
	Facebook        Attribute[*string] `json:"facebook"`
	Website         Attribute[*string] `json:"website"`
}

func (s *BioSection) fields() []field {
	return []field{
		{"layout", s.Layout}, {"style", s.Style}, {"title", s.Title}, {"text", s.Text},
		{"avatar", s.Avatar}, {"background_image", s.BackgroundImage},
		{"twitter", s.Twitter}, {"instagram", s.Instagram}, {"facebook", s.Facebook}, {"website", s.Website},
	}
}

func (s *BioSection) nestedIDs() []string { return nil }

type Testimonial struct {
	ID    string             `json:"data_testimonial_uuid"`
	Name  Attribute[string]  `json:"name"`
	Text  Attribute[string]  `json:"text"`
	Photo Attribute[*string] `json:"photo"`
}

type TestimonialsSection struct {
	Header
	Style        Attribute[string] `json:"style"`
	Title        Attribute[string] `json:"title"`
	Testimonials []Testimonial     `json:"testimonials"`
}

func (s *TestimonialsSection) fields() []field {
	out := []field{{"style", s.Style}, {"title", s.Title}}
	for _, t := range s.Testimonials {
		out = append(out,
			field{"testimonials.name", t.Name},
			field{"testimonials.text", t.Text},
			field{"testimonials.photo", t.Photo},
		)
	}
	return out
}

func (s *TestimonialsSection) nestedIDs() []string {
	ids := make([]string, 0, len(s.Testimonials))
	for _, t := range s.Testimonials {
		ids = append(ids, t.ID)
	}
	return ids
}

type Question struct {
	ID       string            `json:"data_faq_uuid"`
	Question Attribute[string] `json:"question"`
	Answer   Attribute[string] `json:"answer"`
}

type FAQSection struct {
	Header
	Style     Attribute[string] `json:"style"`
	Title     Attribute[string] `json:"title"`
	Questions []Question        `json:"questions"`
}

func (s *FAQSection) fields() []field {
	out := []field{{"style", s.Style}, {"title", s.Title}}
	for _, q := range s.Questions {
		out = append(out,
			field{"questions.question", q.Question},
			field{"questions.answer", q.Answer},
		)
	}
	return out
}

func (s *FAQSection) nestedIDs() []string {
	ids := make([]string, 0, len(s.Questions))
	for _, q := range s.Questions {
		ids = append(ids, q.ID)
	}
	return ids
}

type ImageWithTextSection struct {
	Header
	Style         Attribute[string]  `json:"style"`
	Title         Attribute[string]  `json:"title"`
	Text          Attribute[string]  `json:"text"`
	Image         Attribute[*string] `json:"image"`
	ImagePosition Attribute[string]  `json:"image_position"`
	ButtonText    Attribute[string]  `json:"button_text"`
	ButtonURL     Attribute[string]  `json:"button_url"`
}

func (s *ImageWithTextSection) fields() []field {
	return []field{
		{"style", s.Style}, {"title", s.Title}, {"text", s.Text}, {"image", s.Image},
		{"image_position", s.ImagePosition}, {"button_text", s.ButtonText}, {"button_url", s.ButtonURL},
	}
}

func (s *ImageWithTextSection) nestedIDs() []string { return nil }

type VideoWithTextSection struct {
	Header
	Style         Attribute[string]  `json:"style"`
	Title         Attribute[string]  `json:"title"`
	Text          Attribute[string]  `json:"text"`
	Video         Attribute[*string] `json:"video"`
	VideoPosition Attribute[string]  `json:"video_position"`
	ButtonText    Attribute[string]  `json:"button_text"`
	ButtonURL     Attribute[string]  `json:"button_url"`
}

func (s *VideoWithTextSection) fields() []field {
	return []field{
		{"style", s.Style}, {"title", s.Title}, {"text", s.Text}, {"video", s.Video},
		{"video_position", s.VideoPosition}, {"button_text", s.ButtonText}, {"button_url", s.ButtonURL},
	}
}

func (s *VideoWithTextSection) nestedIDs() []string { return nil }

type NewsletterSection struct {
	Header
	Style            Attribute[string] `json:"style"`
	Title            Attribute[string] `json:"title"`
	Text             Attribute[string] `json:"text"`
	ButtonText       Attribute[string] `json:"button_text"`
	CaptureFirstName Attribute[bool]   `json:"capture_first_name"`
	UseRecaptcha     Attribute[bool]   `json:"use_recaptcha"`
	FooterText       Attribute[string] `json:"footer_text"`
	ThankYouText     Attribute[string] `json:"thank_you_text"`
}

func (s *NewsletterSection) fields() []field {
	return []field{
		{"style", s.Style}, {"title", s.Title}, {"text", s.Text}, {"button_text", s.ButtonText},
		{"capture_first_name", s.CaptureFirstName}, {"use_recaptcha", s.UseRecaptcha},
		{"footer_text", s.FooterText}, {"thank_you_text", s.ThankYouText},
	}
}

func (s *NewsletterSection) nestedIDs() []string { return nil }

// GlobalSection renders store-wide data (all products, all categories) and
// has nothing to edit.
type GlobalSection struct {
	Header
	Global bool `json:"global_section"`
}

func (s *GlobalSection) fields() []field     { return nil }
func (s *GlobalSection) nestedIDs() []string { return nil }

type Column struct {
	ID      string `json:"data_column_uuid"`
	Content Schema `json:"content"`
}

type ColumnsSection struct {
	Header
	Style      Attribute[string] `json:"style"`
	NumColumns Attribute[int]    `json:"num_columns"`
	Columns    []Column          `json:"columns"`
}

func (s *ColumnsSection) fields() []field {
	return []field{{"style", s.Style}, {"num_columns", s.NumColumns}}
}

func (s *ColumnsSection) nestedIDs() []string {
	ids := make([]string, 0, len(s.Columns))
	for _, c := range s.Columns {
		ids = append(ids, c.ID)
	}
	return ids
}
