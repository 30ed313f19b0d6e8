package dto

type MoveInput struct {
	StoreID  string
	Kind     string
	ID       string
	Position int
	// ParentSet distinguishes "leave the parent alone" from "move to top level"
	// (ParentSet with a nil ParentID). Only content items have parents.
	ParentSet bool
	ParentID  *string
}
