package gateway

import (
	"context"
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/edithqa/edith/internal/observability"
)

// TelegramGateway accepts goals as chat messages, runs them through the
// pipeline, and replies with the verdict.
type TelegramGateway struct {
	Bot     *tgbotapi.BotAPI
	Runner  Runner
	History History
}

func NewTelegramGateway(token string, runner Runner, history History) (*TelegramGateway, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Printf("Authorized on account %s", bot.Self.UserName)

	return &TelegramGateway{
		Bot:     bot,
		Runner:  runner,
		History: history,
	}, nil
}

func (tg *TelegramGateway) Start() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := tg.Bot.GetUpdatesChan(u)

	for update := range updates {
		observability.Heartbeat()
		if update.Message == nil {
			continue
		}

		log.Printf("[%s] %s", update.Message.From.UserName, update.Message.Text)

		chatID := fmt.Sprintf("%d", update.Message.Chat.ID)
		reply := tg.handle(context.Background(), update.Message.Text)
		if err := tg.Send(chatID, reply); err != nil {
			log.Printf("Error sending reply: %v", err)
		}
	}
	return nil
}

func (tg *TelegramGateway) handle(ctx context.Context, text string) string {
	switch {
	case strings.HasPrefix(text, "/history"):
		return tg.formatHistory()
	case strings.HasPrefix(text, "/status"):
		role, goal, lastHB := observability.GetStatus()
		if role == observability.RoleIdle {
			return fmt.Sprintf("Idle. Send a goal to start a run. Last activity %s.",
				lastHB.Format("15:04:05"))
		}
		return fmt.Sprintf("%s: %s", role, goal)
	default:
		return tg.runGoal(ctx, text)
	}
}

func (tg *TelegramGateway) runGoal(ctx context.Context, goal string) string {
	report, err := tg.Runner.Run(ctx, goal)
	if err != nil {
		log.Printf("Error running task: %v", err)
		return fmt.Sprintf("Run failed: %v", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", report.Verdict)
	fmt.Fprintf(&b, "*Steps executed:* %d\n", len(report.Outcomes))
	fmt.Fprintf(&b, "*Matched keywords:* %s", strings.Join(report.Matched, ", "))
	return b.String()
}

func (tg *TelegramGateway) formatHistory() string {
	runs, err := tg.History.Recent(5)
	if err != nil {
		return fmt.Sprintf("Could not load history: %v", err)
	}
	if len(runs) == 0 {
		return "No runs recorded yet."
	}

	var b strings.Builder
	b.WriteString("*Recent runs:*\n")
	for _, r := range runs {
		mark := "❌"
		if r.Success {
			mark = "✅"
		}
		fmt.Fprintf(&b, "%s %s (%s)\n", mark, r.Goal, r.CreatedAt)
	}
	return b.String()
}

func (tg *TelegramGateway) Send(chatID string, text string) error {
	id := 0
	fmt.Sscanf(chatID, "%d", &id)
	if id == 0 {
		return fmt.Errorf("invalid chat ID: %s", chatID)
	}

	msg := tgbotapi.NewMessage(int64(id), text)
	msg.ParseMode = "Markdown" // Enable markdown for better alerts
	_, err := tg.Bot.Send(msg)
	return err
}

func (tg *TelegramGateway) Stop() error {
	tg.Bot.StopReceivingUpdates()
	return nil
}
