package usecases

import (
	"YT_comment_export/internal/core/domain"
	"YT_comment_export/internal/core/ports"
	"context"
	"fmt"
)

// RunBatch exports every link in order. report, when not nil, is called after
// each video. With ContinueOnError disabled the batch stops at the first
// failed video.
func (uc *scrapeUseCase) RunBatch(ctx context.Context, links []ports.VideoLink, report func(domain.VideoResult)) domain.BatchSummary {
	uc.log.Info(fmt.Sprintf("Init batch of %d videos", len(links)))

	summary := domain.BatchSummary{Results: make([]domain.VideoResult, 0, len(links))}

	for _, link := range links {
		result := uc.ExportVideo(ctx, link)
		summary.Results = append(summary.Results, result)

		if report != nil {
			report(result)
		}

		if result.Err != nil {
			uc.log.Error(fmt.Sprintf("Video %q failed", link.URL), result.Err)
			if !uc.opts.ContinueOnError {
				uc.log.Warning("Stopping batch after first failure")
				break
			}
		}
	}

	uc.log.Info(fmt.Sprintf("Batch done: %d exported, %d failed", summary.Exported(), summary.Failed()))

	return summary
}
