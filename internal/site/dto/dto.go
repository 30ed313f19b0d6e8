package dto

type PublishResult struct {
	Pages    int64 `json:"pages"`
	Products int64 `json:"products"`
}
