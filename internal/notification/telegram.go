package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const dateFormat = "02.01.2006"

type messageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramNotifier struct {
	bot    messageSender
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, user *domain.User, listing *domain.Listing, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Бронирование создано!*\n\n"+"Объект: %s\n"+"Даты: %s – %s\n"+"Стоимость: %s\n"+"Оплатите бронь, чтобы она была подтверждена.",
		escape(listing.Name),
		booking.StartDate.Format(dateFormat),
		booking.EndDate.Format(dateFormat),
		booking.TotalPrice.StringFixed(domain.MoneyPlaces),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingStatusChanged(ctx context.Context, user *domain.User, listing *domain.Listing, booking *domain.Booking) {
	var title string
	switch booking.Status {
	case domain.BookingStatusConfirmed:
		title = "*Бронирование подтверждено!*"
	case domain.BookingStatusCanceled:
		title = "*Бронирование отменено*"
	default:
		title = "*Статус бронирования изменён*"
	}

	text := fmt.Sprintf(
		"%s\n\n"+"Объект: %s\n"+"Даты: %s – %s",
		title,
		escape(listing.Name),
		booking.StartDate.Format(dateFormat),
		booking.EndDate.Format(dateFormat),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyPaymentSettled(ctx context.Context, user *domain.User, booking *domain.Booking, payment *domain.Payment) {
	var text string
	if payment.Status == domain.PaymentStatusCompleted {
		text = fmt.Sprintf(
			"*Оплата получена!*\n\n"+"Сумма: %s\n"+"Даты: %s – %s\n"+"Статус брони: %s",
			payment.Amount.StringFixed(domain.MoneyPlaces),
			booking.StartDate.Format(dateFormat),
			booking.EndDate.Format(dateFormat),
			booking.Status,
		)
	} else {
		text = fmt.Sprintf(
			"*Оплата не прошла*\n\n"+"Сумма: %s\n"+"Даты: %s – %s\n"+"Вы можете повторить оплату.",
			payment.Amount.StringFixed(domain.MoneyPlaces),
			booking.StartDate.Format(dateFormat),
			booking.EndDate.Format(dateFormat),
		)
	}
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}

func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}
