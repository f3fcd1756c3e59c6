package usecases

import (
	"YT_comment_export/internal/core/domain"
	"YT_comment_export/internal/core/ports"
	"context"
	"fmt"
)

// ExportVideo runs metadata fetch, comment fetch and export for one link. The
// metadata is fetched first so a missing video is skipped before any comment
// page is requested.
func (uc *scrapeUseCase) ExportVideo(ctx context.Context, link ports.VideoLink) domain.VideoResult {
	result := domain.VideoResult{URL: link.URL, VideoID: link.VideoID}

	if link.Err != nil {
		result.Err = link.Err
		return result
	}

	lookup, err := uc.GetVideoDetails(ctx, link.VideoID)
	if err != nil {
		result.Err = err
		return result
	}

	if !lookup.Found {
		result.Err = fmt.Errorf("%w: %s", domain.ErrVideoNotFound, link.VideoID)
		return result
	}
	result.Title = lookup.Metadata.TitleOriginal

	comments, err := uc.FetchComments(ctx, link.VideoID)
	if err != nil {
		result.Err = err
		return result
	}

	path, err := uc.sheet.Export(lookup.Metadata, comments)
	if err != nil {
		uc.log.Error("Failed to export video", err)
		result.Err = fmt.Errorf("error while exporting %s: %w", link.VideoID, err)
		return result
	}
	result.Path = path

	uc.log.Info(fmt.Sprintf("Saved all data to %s", path))

	return result
}
