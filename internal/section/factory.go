package section

import (
	"github.com/fekuna/omnipos-storefront-service/internal/apperror"
	"github.com/google/uuid"
)

func newID() string { return uuid.New().String() }

func attr[T any](t AttributeType, v T) Attribute[T] {
	return Attribute[T]{ID: newID(), Type: t, Value: v}
}

func empty(t AttributeType) Attribute[*string] {
	return Attribute[*string]{ID: newID(), Type: t}
}

func header(t SectionType) Header {
	return Header{Type: t, ID: newID()}
}

func normalStyle() Attribute[string] { return attr(AttrStyle, "NORMAL") }

// Build returns a new section of type t with default content and fresh
// identifiers on the section and every attribute.
func Build(t SectionType) (Section, error) {
	switch t {
	case TypeText:
		return &TextSection{
			Header: header(t),
			Title:  attr(AttrText, "Text Title"),
			Body:   attr(AttrText, "Text Body"),
		}, nil

	case TypeBio:
		return &BioSection{
			Header:          header(t),
			Layout:          attr(AttrLayout, "VERTICAL"),
			Style:           normalStyle(),
			Title:           attr(AttrText, "Bio"),
			Text:            attr(AttrText, "All about me..."),
			Avatar:          empty(AttrAvatarImage),
			BackgroundImage: empty(AttrBackgroundImage),
			Twitter:         empty(AttrLinkIcon),
			Instagram:       empty(AttrLinkIcon),
			Facebook:        empty(AttrLinkIcon),
			Website:         empty(AttrLinkIcon),
		}, nil

	case TypeTestimonials:
		return &TestimonialsSection{
			Header: header(t),
			Style:  normalStyle(),
			Title:  attr(AttrText, "Testimonials"),
			Testimonials: []Testimonial{{
				ID:    newID(),
				Name:  attr(AttrText, "Jane Doe"),
				Text:  attr(AttrText, "Write something here."),
				Photo: empty(AttrTestimonialPhoto),
			}},
		}, nil

	case TypeFAQ:
		return &FAQSection{
			Header: header(t),
			Style:  normalStyle(),
			Title:  attr(AttrText, "FAQ"),
			Questions: []Question{{
				ID:       newID(),
				Question: attr(AttrText, "How do I sign up?"),
				Answer:   attr(AttrText, "Just click the buy button."),
			}},
		}, nil

	case TypeImageWithText:
		return &ImageWithTextSection{
			Header:        header(t),
			Style:         normalStyle(),
			Title:         attr(AttrText, "Title"),
			Text:          attr(AttrText, "Lorem ipsum dolor sit amet..."),
			Image:         empty(AttrImage),
			ImagePosition: attr(AttrImagePosition, "LEFT"),
			ButtonText:    attr(AttrText, "Click me"),
			ButtonURL:     attr(AttrURL, ""),
		}, nil

	case TypeVideoWithText:
		return &VideoWithTextSection{
			Header:        header(t),
			Style:         normalStyle(),
			Title:         attr(AttrText, "Title"),
			Text:          attr(AttrText, "Lorem ipsum dolor sit amet..."),
			Video:         empty(AttrVideo),
			VideoPosition: attr(AttrVideoPosition, "LEFT"),
			ButtonText:    attr(AttrText, "Click me"),
			ButtonURL:     attr(AttrURL, ""),
		}, nil

	case TypeNewsletter:
		return &NewsletterSection{
			Header:           header(t),
			Style:            normalStyle(),
			Title:            attr(AttrText, "Sign up to our newsletter!"),
			Text:             attr(AttrText, "We'll send you all kinds of exciting stuff."),
			ButtonText:       attr(AttrText, "Subscribe"),
			CaptureFirstName: attr(AttrBoolean, false),
			UseRecaptcha:     attr(AttrBoolean, false),
			FooterText:       attr(AttrText, "100% spam free."),
			ThankYouText:     attr(AttrText, "Thank you for subscribing."),
		}, nil

	case TypeProducts, TypeCategories:
		return &GlobalSection{Header: header(t), Global: true}, nil

	case TypeColumns:
		return &ColumnsSection{
			Header:     header(t),
			Style:      normalStyle(),
			NumColumns: attr(AttrInteger, 2),
			Columns: []Column{
				{ID: newID(), Content: Schema{}},
				{ID: newID(), Content: Schema{}},
			},
		}, nil
	}

	return nil, apperror.Validation("unsupported section type %q", t)
}
