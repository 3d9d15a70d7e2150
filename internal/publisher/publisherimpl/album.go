package publisherimpl

import (
	"context"

	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/domain"
)

// updateAlbum prepends the fresh uploads to the running album so the newest
// mirror shows first, then promotes the newest image to album cover. Every
// step is best-effort: the submission is already live and an album that is
// one refresh behind beats a failed run.
func (p *PublisherImpl) updateAlbum(ctx context.Context, uploads []domain.UploadResult) {
	albumID := p.Config.Imgur.AlbumID

	existing, err := p.Imgur.ListAlbum(ctx, albumID)
	if err != nil {
		p.Logger.Error("Failed to list album, skipping album update", "album", albumID, "error", err)
		return
	}

	newIDs := make([]string, 0, len(uploads))
	for _, upload := range uploads {
		newIDs = append(newIDs, upload.ID)
	}
	ordered := append(newIDs, existing...)

	if err := p.Imgur.SetAlbumOrder(ctx, albumID, ordered); err != nil {
		p.Logger.Error("Failed to reorder album", "album", albumID, "error", err)
		return
	}
	p.Logger.Info("Album reordered", "album", albumID, "added", len(newIDs), "total", len(ordered))

	if err := p.Imgur.SetAlbumCover(ctx, albumID, newIDs[0]); err != nil {
		p.Logger.Error("Failed to set album cover", "album", albumID, "cover", newIDs[0], "error", err)
		return
	}
	p.Logger.Info("Album cover updated", "album", albumID, "cover", newIDs[0])
}
