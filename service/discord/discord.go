package discord

import (
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/xerrors"

	"github.com/x-xyz/artmint/base/ctx"
	"github.com/x-xyz/artmint/base/mist"
	"github.com/x-xyz/artmint/domain/mint"
	"github.com/x-xyz/artmint/domain/trait"
)

const explorerUrl = "https://suiscan.xyz/%s/object/%s"

type Config struct {
	BotKey    string `mapstructure:"botKey"`
	ChannelId string `mapstructure:"channelId"`
}

// sender is the part of discordgo.Session the announcer uses
type sender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error)
}

type announcer struct {
	channelId string
	discord   sender
}

// New returns nil when no bot is configured, which disables announcements.
func New(cfg Config) (mint.Announcer, error) {
	if cfg.BotKey == "" || cfg.ChannelId == "" {
		return nil, nil
	}
	discord, err := discordgo.New(fmt.Sprintf("Bot %s", cfg.BotKey))
	if err != nil {
		return nil, xerrors.Errorf("discordgo.New: %w", err)
	}
	return &announcer{cfg.ChannelId, discord}, nil
}

func (a *announcer) Announce(c ctx.Ctx, s *mint.Session) error {
	if _, err := a.discord.ChannelMessageSendEmbed(a.channelId, toEmbed(s)); err != nil {
		c.WithField("err", err).WithField("session", s.Id).Error("ChannelMessageSendEmbed failed")
		return err
	}
	return nil
}

func toEmbed(s *mint.Session) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{
		{Name: "Minter", Value: s.Sender.String()},
		{Name: "Rarity", Value: fmt.Sprintf("%s (%s)", strconv.Itoa(s.RarityScore), s.ScoreTier)},
		{Name: "Price", Value: fmt.Sprintf("%s SUI", mist.Format(s.MintPrice))},
	}
	for _, w := range s.Attributes {
		if w.Key == trait.ReservedScoreKey {
			continue
		}
		fields = append(fields, &discordgo.MessageEmbedField{Name: w.Key, Value: w.Value, Inline: true})
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s minted!", s.Name),
		Description: fmt.Sprintf(explorerUrl, s.Network, s.NftId),
		URL:         fmt.Sprintf(explorerUrl, s.Network, s.NftId),
		Image: &discordgo.MessageEmbedImage{
			URL: s.ImageUrl,
		},
		Fields: fields,
	}
}
