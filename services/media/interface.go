package media

import "context"

// AssetRef points at an uploaded file on the external media host.
type AssetRef struct {
	URL     string `json:"url"`
	AssetID string `json:"assetId"`
}

// UploadTicket is a short-lived signed authorization for one direct upload to
// a specific folder at the media host. The timestamp binds it to the narrow
// validity window the provider enforces.
type UploadTicket struct {
	Timestamp int64  `json:"timestamp"`
	Signature string `json:"signature"`
	APIKey    string `json:"apiKey"`
	CloudName string `json:"cloudName"`
	Folder    string `json:"folder"`
}

// MediaService brokers uploads to and deletions at the external media host.
// It holds no state and never decides which catalog record an asset belongs
// to; the caller creates that association only after a successful upload.
type MediaService interface {
	IssueUploadTicket(folder string) (*UploadTicket, error)
	Upload(ctx context.Context, localFilePath, folder string) (*AssetRef, error)
	Remove(ctx context.Context, assetID string) error
}
