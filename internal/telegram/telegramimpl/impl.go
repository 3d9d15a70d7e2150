package telegramimpl

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/telegram"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/pkg/config"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type TelegramImpl struct {
	TgBot   *tgbotapi.BotAPI
	Logger  logger.Logger
	AdminID int64
}

// New creates the operator notifier. Without a configured token it degrades
// to a no-op and the bot keeps running on logs alone.
func New(opts Opts) (*TelegramImpl, error) {
	impl := &TelegramImpl{
		Logger:  opts.Logger.WithComponent("TelegramNotifier"),
		AdminID: opts.Config.Telegram.AdminID,
	}

	if opts.Config.Telegram.Token == "" {
		impl.Logger.Info("Telegram token not configured, operator notifications disabled")
		return impl, nil
	}

	tgBot, err := tgbotapi.NewBotAPI(opts.Config.Telegram.Token)
	if err != nil {
		opts.Logger.Error("Error creating bot", "Error", err)
		return nil, err
	}
	impl.TgBot = tgBot
	return impl, nil
}

var _ telegram.Client = (*TelegramImpl)(nil)

func (tg *TelegramImpl) NotifyError(msg string) {
	tg.send("❌ " + msg)
}

func (tg *TelegramImpl) NotifyInfo(msg string) {
	tg.send(msg)
}

func (tg *TelegramImpl) send(msg string) {
	if tg.TgBot == nil || tg.AdminID == 0 {
		return
	}

	if _, err := tg.TgBot.Send(tgbotapi.NewMessage(tg.AdminID, msg)); err != nil {
		tg.Logger.Error("Error sending message to admin",
			"adminID", tg.AdminID,
			"error", err)
		return
	}
	tg.Logger.Info("Notified admin", "adminID", tg.AdminID)
}
