package tui

import (
	"YT_comment_export/internal/core/domain"
	"YT_comment_export/internal/core/ports"
	"YT_comment_export/internal/core/usecases"
	"context"
	"fmt"
	"io"
)

// RunPlain runs the batch and writes one line per video to out, for
// terminals where the progress view is not wanted.
func RunPlain(ctx context.Context, uc usecases.ScrapeUseCase, links []ports.VideoLink, out io.Writer) domain.BatchSummary {
	summary := uc.RunBatch(ctx, links, func(r domain.VideoResult) {
		fmt.Fprintln(out, ResultLine(r))
	})
	fmt.Fprintln(out, SummaryLine(summary))
	return summary
}
