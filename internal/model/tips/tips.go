package tips

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"go.uber.org/zap"

	"max.ks1230/finance-assistant/internal/entity/chat"
	"max.ks1230/finance-assistant/internal/logger"
)

const (
	CategoryGeneral = "general"

	tipMaxTokens = 80
	tipTTL       = 24 * time.Hour
	keyPrefix    = "daily-tip:"
)

var FallbackTips = []string{
	"Save ₹50 daily to have ₹18,250 in a year! Small habits matter.",
	"Track every expense for a week to understand your spending patterns.",
	"Use the 50/30/20 rule: 50% needs, 30% wants, 20% savings.",
	"Start a SIP with just ₹500 monthly to begin your investment journey.",
	"Review and cut one unnecessary subscription to save money monthly.",
	"Cook meals at home to save ₹100+ daily compared to ordering food.",
	"Compare prices before buying anything above ₹1000.",
	"Keep a piggy bank for loose change - it adds up surprisingly fast!",
	"Set a spending limit before going shopping to avoid overspending.",
	"Learn one new financial concept every week to improve money skills.",
}

// Indexed by time.Weekday.
var weekdayPrompts = []string{
	"Provide advice on smart money habits for teenagers in 1-2 sentences.",
	"Provide one short actionable personal finance tip for students about saving money in 1-2 sentences.",
	"Give a quick budgeting tip for college students in 1-2 sentences.",
	"Share a simple investment tip for beginners in India in 1-2 sentences.",
	"Suggest a practical way for students to track expenses in 1-2 sentences.",
	"Give advice on avoiding unnecessary spending for young people in 1-2 sentences.",
	"Share a tip about building an emergency fund for students in 1-2 sentences.",
}

var categoryPrompts = map[string]string{
	"saving":    "Give a practical money-saving tip for students in India in 1-2 sentences. Focus on daily savings habits.",
	"budgeting": "Provide a budgeting tip for college students in 1-2 sentences. Make it actionable and simple.",
	"investing": "Share an investment tip for beginners in India in 1-2 sentences. Keep it simple and safe.",
	"goals":     "Give advice on setting and achieving financial goals for young people in 1-2 sentences.",
	"quick_tip": "Provide a quick money management hack for students in 1-2 sentences.",
	"spending":  "Share advice on smart spending habits for young adults in 1-2 sentences.",
	"banking":   "Give a banking or digital payments tip for students in India in 1-2 sentences.",
}

type generator interface {
	Generate(ctx context.Context, prompt string, cfg chat.GenerationConfig) (string, error)
}

type tipCache interface {
	GetTip(ctx context.Context, key string) (chat.Tip, bool, error)
	SetTip(ctx context.Context, key string, tip chat.Tip, ttl time.Duration) error
}

type clock interface {
	Now() time.Time
}

type Service struct {
	generator generator
	cache     tipCache
	clock     clock
}

// NewService builds the tip service. A nil generator always serves fallback tips.
func NewService(generator generator, cache tipCache, clock clock) *Service {
	return &Service{
		generator: generator,
		cache:     cache,
		clock:     clock,
	}
}

// Daily returns the tip of the day for the category. General tips are cached
// for the UTC day; every other category gets a fresh one.
func (s *Service) Daily(ctx context.Context, category string) (tip chat.Tip, cached bool) {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		category = CategoryGeneral
	}

	now := s.clock.Now().UTC()
	today := now.Format(time.DateOnly)

	if category != CategoryGeneral {
		prompt, ok := categoryPrompts[category]
		if !ok {
			prompt = categoryPrompts["saving"]
		}
		return chat.Tip{
			Date:        today,
			Tip:         s.generate(ctx, prompt),
			Category:    category,
			GeneratedAt: now.Format(time.RFC3339),
		}, false
	}

	key := Key(now)
	hit, ok, err := s.cache.GetTip(ctx, key)
	if err != nil {
		logger.Warn("tip cache read failed", zap.String("key", key), zap.Error(err))
	}
	if ok && hit.Date == today {
		return hit, true
	}

	tip = chat.Tip{
		Date:        today,
		Tip:         s.generate(ctx, weekdayPrompts[now.Weekday()]),
		GeneratedAt: now.Format(time.RFC3339),
	}
	if err = s.cache.SetTip(ctx, key, tip, tipTTL); err != nil {
		logger.Warn("tip cache write failed", zap.String("key", key), zap.Error(err))
	}
	return tip, false
}

func (s *Service) generate(ctx context.Context, prompt string) string {
	if s.generator == nil {
		return fallback()
	}
	text, err := s.generator.Generate(ctx, prompt, chat.GenerationConfig{
		MaxTokens:   tipMaxTokens,
		Temperature: chat.DefaultTemperature,
	})
	if err != nil {
		logger.Warn("tip generation failed, using fallback", zap.Error(err))
		return fallback()
	}
	if text = strings.TrimSpace(text); text == "" {
		return fallback()
	}
	return text
}

func fallback() string {
	return FallbackTips[rand.Intn(len(FallbackTips))]
}

// Key is the cache key of the general tip for a day.
func Key(day time.Time) string {
	return keyPrefix + day.UTC().Format(time.DateOnly)
}
