package usecases

import (
	"YT_comment_export/internal/core/domain"
	"context"
	"fmt"
)

func (uc *scrapeUseCase) GetVideoDetails(ctx context.Context, videoID string) (domain.VideoLookup, error) {
	uc.log.Info("Init Get Video Details")

	if videoID == "" {
		return domain.NotFound(), fmt.Errorf("video ID cannot be empty")
	}

	lookup, err := uc.service.GetVideoDetails(ctx, videoID)
	if err != nil {
		uc.log.Error("Failed to get video details", err)
		return domain.NotFound(), fmt.Errorf("error while getting video details: %w", err)
	}

	if !lookup.Found {
		uc.log.Warning(fmt.Sprintf("Video %s not found", videoID))
		return lookup, nil
	}

	local, err := uc.normalizer.ToLocal(lookup.Metadata.UploadedAt)
	if err != nil {
		uc.log.Error("Failed to convert upload date", err)
		return domain.NotFound(), fmt.Errorf("error while converting upload date: %w", err)
	}
	lookup.Metadata.UploadedAtLocal = local

	uc.log.Info("Get Video Details Completed")

	return lookup, nil
}
