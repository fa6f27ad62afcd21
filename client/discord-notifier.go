package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

type channelMessenger interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// DiscordNotifier tells the organisers' channel about new registrations.
// Status changes are not announced.
type DiscordNotifier struct {
	session   channelMessenger
	channelId string
}

func NewDiscordNotifier(token string, channelId string) (*DiscordNotifier, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}
	return &DiscordNotifier{session: session, channelId: channelId}, nil
}

func (n *DiscordNotifier) Name() string {
	return "discord"
}

func (n *DiscordNotifier) Publish(ctx context.Context, message *RegistrationMessage) error {
	if message.Type != RegistrationSubmitted {
		return nil
	}
	_, err := n.session.ChannelMessageSendEmbed(n.channelId, registrationEmbed(message), discordgo.WithContext(ctx))
	return err
}

func registrationEmbed(message *RegistrationMessage) *discordgo.MessageEmbed {
	titles := make([]string, 0, len(message.Registrations))
	for _, registration := range message.Registrations {
		titles = append(titles, "• "+registration.CompetitionTitle)
	}
	fields := []*discordgo.MessageEmbedField{
		{Name: "Institution", Value: message.Institution, Inline: true},
		{Name: "Competitions", Value: strings.Join(titles, "\n")},
	}
	color := 0x2ecc71
	if message.TotalFee != nil && *message.TotalFee > 0 {
		color = 0xf1c40f
		transaction := "missing"
		if message.TransactionId != nil {
			transaction = *message.TransactionId
		}
		fields = append(fields,
			&discordgo.MessageEmbedField{Name: "Fee", Value: fmt.Sprintf("%.2f", *message.TotalFee), Inline: true},
			&discordgo.MessageEmbedField{Name: "Transaction", Value: transaction, Inline: true},
		)
	}
	return &discordgo.MessageEmbed{
		Title:     "New registration: " + message.ParticipantName,
		Color:     color,
		Fields:    fields,
		Timestamp: message.Timestamp.Format("2006-01-02T15:04:05Z07:00"),
	}
}
