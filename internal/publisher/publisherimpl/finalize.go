package publisherimpl

import (
	"context"

	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/domain"
)

// finalize applies the moderation actions to whatever handles the record
// carries: distinguish and approve the submission, then distinguish (stickied)
// and approve the comment. All of it is best-effort; the mirrored content is
// already public.
func (p *PublisherImpl) finalize(ctx context.Context, record *domain.SubmissionRecord) {
	if record.Submission.Fullname != "" {
		if err := p.Reddit.Distinguish(ctx, record.Submission.Fullname, false); err != nil {
			p.Logger.Warn("Failed to distinguish submission", "fullname", record.Submission.Fullname, "error", err)
		}
		if err := p.Reddit.Approve(ctx, record.Submission.Fullname); err != nil {
			p.Logger.Warn("Failed to approve submission", "fullname", record.Submission.Fullname, "error", err)
		}
	}

	if record.Comment.Fullname != "" {
		if err := p.Reddit.Distinguish(ctx, record.Comment.Fullname, true); err != nil {
			p.Logger.Warn("Failed to distinguish comment", "fullname", record.Comment.Fullname, "error", err)
		}
		if err := p.Reddit.Approve(ctx, record.Comment.Fullname); err != nil {
			p.Logger.Warn("Failed to approve comment", "fullname", record.Comment.Fullname, "error", err)
		}
	}
}
