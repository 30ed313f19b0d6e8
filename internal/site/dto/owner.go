package dto

import "github.com/fekuna/omnipos-storefront-service/internal/apperror"

type OwnerKind string

const (
	OwnerHome    OwnerKind = "home"
	OwnerPage    OwnerKind = "page"
	OwnerProduct OwnerKind = "product"
)

// Owner names the entity whose schema_draft is edited. Home is the store
// itself and carries no ID.
type Owner struct {
	Kind OwnerKind
	ID   string
}

func ParseOwner(kind string, id *string) (Owner, error) {
	switch k := OwnerKind(kind); k {
	case OwnerHome:
		return Owner{Kind: k}, nil
	case OwnerPage, OwnerProduct:
		if id == nil || *id == "" {
			return Owner{}, apperror.Validation("owner_id is required for %s", k)
		}
		return Owner{Kind: k, ID: *id}, nil
	}
	return Owner{}, apperror.Validation("unknown owner kind %q", kind)
}
