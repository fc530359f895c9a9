package media

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"time"

	"carcare/utils"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryMediaService implements MediaService against Cloudinary.
type CloudinaryMediaService struct {
	cld       *cloudinary.Cloudinary
	cloudName string
	apiKey    string
	apiSecret string
}

// NewCloudinaryMediaService builds the broker from account credentials. With
// empty credentials it still returns a usable value whose operations fail
// with ConfigurationError, so the server can boot without a media account.
func NewCloudinaryMediaService(cloudName, apiKey, apiSecret string) (*CloudinaryMediaService, error) {
	svc := &CloudinaryMediaService{
		cloudName: cloudName,
		apiKey:    apiKey,
		apiSecret: apiSecret,
	}
	if !svc.configured() {
		return svc, nil
	}

	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}
	svc.cld = cld
	return svc, nil
}

func (s *CloudinaryMediaService) configured() bool {
	return s.cloudName != "" && s.apiKey != "" && s.apiSecret != ""
}

// IssueUploadTicket signs the exact parameter set the provider re-verifies:
// the folder and a timestamp, hashed with the API secret. The secret itself
// is never included in the ticket.
func (s *CloudinaryMediaService) IssueUploadTicket(folder string) (*UploadTicket, error) {
	if !s.configured() {
		return nil, &utils.ConfigurationError{Message: "cloudinary credentials not configured"}
	}

	timestamp := time.Now().Unix()
	stringToSign := fmt.Sprintf("folder=%s&timestamp=%d%s", folder, timestamp, s.apiSecret)

	return &UploadTicket{
		Timestamp: timestamp,
		Signature: computeSHA1(stringToSign),
		APIKey:    s.apiKey,
		CloudName: s.cloudName,
		Folder:    folder,
	}, nil
}

// Upload transmits a local file into the given folder and returns the asset
// reference. Any provider-side rejection surfaces as ExternalServiceError.
func (s *CloudinaryMediaService) Upload(ctx context.Context, localFilePath, folder string) (*AssetRef, error) {
	if !s.configured() {
		return nil, &utils.ConfigurationError{Message: "cloudinary credentials not configured"}
	}

	result, err := s.cld.Upload.Upload(ctx, localFilePath, uploader.UploadParams{Folder: folder})
	if err != nil {
		return nil, &utils.ExternalServiceError{Provider: "cloudinary", Err: err}
	}
	if result.PublicID == "" || result.SecureURL == "" {
		return nil, &utils.ExternalServiceError{Provider: "cloudinary", Err: fmt.Errorf("upload rejected: no public ID returned")}
	}
	return &AssetRef{URL: result.SecureURL, AssetID: result.PublicID}, nil
}

// Remove requests deletion of an asset. An asset that is already gone counts
// as success; the provider reports "not found" rather than an error.
func (s *CloudinaryMediaService) Remove(ctx context.Context, assetID string) error {
	if !s.configured() {
		return &utils.ConfigurationError{Message: "cloudinary credentials not configured"}
	}

	result, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: assetID})
	if err != nil {
		return &utils.ExternalServiceError{Provider: "cloudinary", Err: err}
	}
	if result.Result != "" && result.Result != "ok" && result.Result != "not found" {
		return &utils.ExternalServiceError{Provider: "cloudinary", Err: fmt.Errorf("destroy rejected: %s", result.Result)}
	}
	return nil
}

// computeSHA1 computes the SHA-1 hash of the input and returns its hex encoding.
func computeSHA1(input string) string {
	h := sha1.New()
	h.Write([]byte(input))
	return hex.EncodeToString(h.Sum(nil))
}
