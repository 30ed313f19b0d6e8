package section

// SectionType tags a builder section document.
type SectionType string

const (
	TypeBio           SectionType = "BIO"
	TypeFAQ           SectionType = "FAQ"
	TypeText          SectionType = "TEXT"
	TypeImageWithText SectionType = "IMAGE_WITH_TEXT"
	TypeVideoWithText SectionType = "VIDEO_WITH_TEXT"
	TypeNewsletter    SectionType = "NEWSLETTER"
	TypeTestimonials  SectionType = "TESTIMONIALS"
	TypeProducts      SectionType = "PRODUCTS"
	TypeCategories    SectionType = "CATEGORIES"
	TypeColumns       SectionType = "COLUMNS"
)

// Types lists every section type the builder can create.
var Types = []SectionType{
	TypeBio, TypeFAQ, TypeText, TypeImageWithText, TypeVideoWithText,
	TypeNewsletter, TypeTestimonials, TypeProducts, TypeCategories, TypeColumns,
}

// AttributeType tells the editor how an attribute value is edited and rendered.
type AttributeType string

const (
	AttrText             AttributeType = "TEXT"
	AttrVideo            AttributeType = "VIDEO"
	AttrImage            AttributeType = "IMAGE"
	AttrImageWithText    AttributeType = "IMAGE_WITH_TEXT"
	AttrVideoWithText    AttributeType = "VIDEO_WITH_TEXT"
	AttrNewsletter       AttributeType = "NEWSLETTER"
	AttrProducts         AttributeType = "PRODUCTS"
	AttrCategories       AttributeType = "CATEGORIES"
	AttrColumns          AttributeType = "COLUMNS"
	AttrLinkIcon         AttributeType = "LINK_ICON"
	AttrLayout           AttributeType = "LAYOUT"
	AttrStyle            AttributeType = "STYLE"
	AttrAvatarImage      AttributeType = "AVATAR_IMAGE"
	AttrBackgroundImage  AttributeType = "BACKGROUND_IMAGE"
	AttrTestimonialPhoto AttributeType = "TESTIMONIAL_PHOTO"
	AttrURL              AttributeType = "URL"
	AttrImagePosition    AttributeType = "IMAGE_POSITION"
	AttrVideoPosition    AttributeType = "VIDEO_POSITION"
	AttrBoolean          AttributeType = "BOOLEAN"
	AttrInteger          AttributeType = "INTEGER"
)

// Attribute is one editable leaf of a section. Its ID and Type never change
// after creation; only Value is edited.
type Attribute[T any] struct {
	ID    string        `json:"data_attribute_uuid"`
	Type  AttributeType `json:"attribute_type"`
	Value T             `json:"value"`
}

func (a Attribute[T]) meta() (string, AttributeType) { return a.ID, a.Type }

type attribute interface {
	meta() (string, AttributeType)
}

// field is a named attribute within a section, flattened for validation.
// Elements of nested lists share the name of their list, e.g. "questions.answer".
type field struct {
	name string
	attr attribute
}

// Section is implemented by every section variant.
type Section interface {
	SectionType() SectionType
	SectionID() string
	fields() []field
	nestedIDs() []string
}

// Header is embedded by every variant and carries the identity fields.
type Header struct {
	Type SectionType `json:"section_type"`
	ID   string      `json:"data_section_uuid"`
}

func (h Header) SectionType() SectionType { return h.Type }
func (h Header) SectionID() string        { return h.ID }
