package dto

type AddSectionInput struct {
	StoreID     string
	Owner       Owner
	SectionType string
}

type UpdateSectionInput struct {
	StoreID  string
	Owner    Owner
	Document []byte // Raw JSON section document
}

type DeleteSectionInput struct {
	StoreID   string
	Owner     Owner
	SectionID string
}

type MoveSectionInput struct {
	StoreID          string
	Owner            Owner
	SourceIndex      int
	DestinationIndex int
}
