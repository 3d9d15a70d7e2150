package encoderimpl

import (
	"context"
	"fmt"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/encoder"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/pkg/config"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type EncoderImpl struct {
	ffmpegPath string
	logger     logger.Logger
}

func New(opts Opts) *EncoderImpl {
	return &EncoderImpl{
		ffmpegPath: opts.Config.Encoder.FFmpegPath,
		logger:     opts.Logger.WithComponent("Encoder"),
	}
}

var _ encoder.Client = (*EncoderImpl)(nil)

// Encode runs the equivalent of:
//
//	ffmpeg -loop 1 -framerate 1/{perImageSeconds} -t {clipSeconds} -i {pattern} {out}
func (e *EncoderImpl) Encode(ctx context.Context, imagePattern string, perImageSeconds, clipSeconds int, outPath string) (string, error) {
	e.logger.Info("Encoding video from image sequence",
		"pattern", imagePattern,
		"seconds_per_image", perImageSeconds,
		"clip_seconds", clipSeconds,
	)

	stream := ffmpeg.Input(imagePattern, ffmpeg.KwArgs{
		"loop":      1,
		"t":         clipSeconds,
		"framerate": fmt.Sprintf("1/%d", perImageSeconds),
	}).Output(outPath).OverWriteOutput()

	if e.ffmpegPath != "" {
		stream = stream.SetFfmpegPath(e.ffmpegPath)
	}

	if err := stream.Run(); err != nil {
		return "", fmt.Errorf("ffmpeg encoding failed: %w", err)
	}

	e.logger.Info("Encoded video", "path", outPath)
	return outPath, nil
}
