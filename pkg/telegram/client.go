package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Client отправляет уведомления о записях в чат администратора спа
type Client struct {
	Bot    *tgbotapi.BotAPI
	ChatID int64
}

func NewClient(token string, chatID int64, debug bool) (*Client, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	bot.Debug = debug

	return &Client{
		Bot:    bot,
		ChatID: chatID,
	}, nil
}

// Notify отправляет текстовое сообщение в чат
func (c *Client) Notify(text string) error {
	msg := tgbotapi.NewMessage(c.ChatID, text)
	_, err := c.Bot.Send(msg)
	return err
}

// Username имя бота, под которым идёт отправка
func (c *Client) Username() string {
	return c.Bot.Self.UserName
}
