package storage

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const callArchiveFolder = "roomi/call-audio"

// CloudinaryArchive implements ArchiveService on Cloudinary.
type CloudinaryArchive struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryArchive builds the archive from a CLOUDINARY_URL-style URL.
func NewCloudinaryArchive(cloudinaryURL string) (*CloudinaryArchive, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	return &CloudinaryArchive{cld: cld}, nil
}

// ArchiveCallAudio uploads one audio clip and returns its permanent identifier.
func (s *CloudinaryArchive) ArchiveCallAudio(ctx context.Context, localFilePath, sessionID string) (string, error) {
	uploadParams := uploader.UploadParams{
		Folder:       callArchiveFolder,
		PublicID:     sessionID,
		ResourceType: "video", // Cloudinary files audio under the video resource type
	}
	result, err := s.cld.Upload.Upload(ctx, localFilePath, uploadParams)
	if err != nil {
		return "", fmt.Errorf("failed to archive call audio: %w", err)
	}
	if result.PublicID == "" {
		return "", fmt.Errorf("no public ID returned for archived audio")
	}
	return result.PublicID, nil
}

// DeleteClip removes an archived clip by its public ID.
func (s *CloudinaryArchive) DeleteClip(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID, ResourceType: "video"})
	if err != nil {
		return fmt.Errorf("failed to delete archived clip: %w", err)
	}
	return nil
}
