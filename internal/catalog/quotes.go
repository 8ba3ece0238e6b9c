package catalog

import (
	"math/rand"
	"time"

	"coachbot/internal/models"
)

// Quotes - мотивационные цитаты для раздела Mindset
var Quotes = []models.Quote{
	{
		ID:          "aurelius-001",
		Text:        "You have power over your mind — not outside events. Realize this, and you will find strength.",
		Author:      "Marcus Aurelius",
		Attribution: "Meditations (Public Domain)",
		Category:    "resilience",
	},
	{
		ID:          "aurelius-002",
		Text:        "Waste no more time arguing about what a good man should be. Be one.",
		Author:      "Marcus Aurelius",
		Attribution: "Meditations (Public Domain)",
		Category:    "discipline",
	},
	{
		ID:          "aurelius-003",
		Text:        "The impediment to action advances action. What stands in the way becomes the way.",
		Author:      "Marcus Aurelius",
		Attribution: "Meditations (Public Domain)",
		Category:    "resilience",
	},
	{
		ID:          "seneca-001",
		Text:        "It is not that we have a short time to live, but that we waste a lot of it.",
		Author:      "Seneca",
		Attribution: "On the Shortness of Life (Public Domain)",
		Category:    "discipline",
	},
	{
		ID:          "seneca-002",
		Text:        "Difficulties strengthen the mind, as labor does the body.",
		Author:      "Seneca",
		Attribution: "Letters from a Stoic (Public Domain)",
		Category:    "growth",
	},
	{
		ID:          "epictetus-001",
		Text:        "First say to yourself what you would be; and then do what you have to do.",
		Author:      "Epictetus",
		Attribution: "Discourses (Public Domain)",
		Category:    "focus",
	},
	{
		ID:          "epictetus-002",
		Text:        "No man is free who is not master of himself.",
		Author:      "Epictetus",
		Attribution: "Discourses (Public Domain)",
		Category:    "discipline",
	},
	{
		ID:          "lao-tzu-001",
		Text:        "A journey of a thousand miles begins with a single step.",
		Author:      "Lao Tzu",
		Attribution: "Tao Te Ching (Public Domain)",
		Category:    "motivation",
	},
	{
		ID:          "lao-tzu-002",
		Text:        "He who conquers others is strong; he who conquers himself is mighty.",
		Author:      "Lao Tzu",
		Attribution: "Tao Te Ching (Public Domain)",
		Category:    "discipline",
	},
	{
		ID:          "confucius-001",
		Text:        "It does not matter how slowly you go as long as you do not stop.",
		Author:      "Confucius",
		Attribution: "Analects (Public Domain)",
		Category:    "resilience",
	},
	{
		ID:          "buddha-001",
		Text:        "The mind is everything. What you think you become.",
		Author:      "Buddha",
		Attribution: "Dhammapada (Public Domain)",
		Category:    "focus",
	},
	{
		ID:          "buddha-002",
		Text:        "Health is the greatest gift, contentment the greatest wealth.",
		Author:      "Buddha",
		Attribution: "Dhammapada (Public Domain)",
		Category:    "growth",
	},
	{
		ID:          "plato-001",
		Text:        "Lack of activity destroys the good condition of every human being.",
		Author:      "Plato",
		Attribution: "Theaetetus (Public Domain)",
		Category:    "motivation",
	},
	{
		ID:          "aristotle-001",
		Text:        "We are what we repeatedly do. Excellence, then, is not an act, but a habit.",
		Author:      "Aristotle",
		Attribution: "Nicomachean Ethics (Public Domain)",
		Category:    "discipline",
	},
	{
		ID:          "emerson-001",
		Text:        "What lies behind us and what lies before us are tiny matters compared to what lies within us.",
		Author:      "Ralph Waldo Emerson",
		Attribution: "Essays (Public Domain)",
		Category:    "resilience",
	},
	{
		ID:          "thoreau-001",
		Text:        "Go confidently in the direction of your dreams. Live the life you have imagined.",
		Author:      "Henry David Thoreau",
		Attribution: "Walden (Public Domain)",
		Category:    "motivation",
	},
	{
		ID:          "roosevelt-001",
		Text:        "Do what you can, with what you have, where you are.",
		Author:      "Theodore Roosevelt",
		Attribution: "Public Domain",
		Category:    "motivation",
	},
	{
		ID:          "musashi-001",
		Text:        "There is nothing outside of yourself that can ever enable you to get better, stronger, richer, quicker, or smarter. Everything is within.",
		Author:      "Miyamoto Musashi",
		Attribution: "The Book of Five Rings (Public Domain)",
		Category:    "growth",
	},
	{
		ID:          "musashi-002",
		Text:        "Today is victory over yourself of yesterday; tomorrow is your victory over lesser men.",
		Author:      "Miyamoto Musashi",
		Attribution: "The Book of Five Rings (Public Domain)",
		Category:    "discipline",
	},
	{
		ID:          "sun-tzu-001",
		Text:        "Victorious warriors win first and then go to war, while defeated warriors go to war first and then seek to win.",
		Author:      "Sun Tzu",
		Attribution: "The Art of War (Public Domain)",
		Category:    "focus",
	},
	{
		ID:          "proverb-001",
		Text:        "Fall seven times, stand up eight.",
		Author:      "Japanese Proverb",
		Attribution: "Traditional (Public Domain)",
		Category:    "resilience",
	},
	{
		ID:          "proverb-002",
		Text:        "The best time to plant a tree was twenty years ago. The second best time is now.",
		Author:      "Chinese Proverb",
		Attribution: "Traditional (Public Domain)",
		Category:    "motivation",
	},
}

// PreWorkoutMantras показываются перед началом тренировки
var PreWorkoutMantras = []string{
	"Breathe. Brace. Control.",
	"Slow. Strong. Stable.",
	"Focus. Flow. Finish.",
	"Present. Powerful. Patient.",
	"Calm. Clear. Committed.",
}

// PostWorkoutReflections показываются после завершения тренировки
var PostWorkoutReflections = []string{
	"You showed up today. That is everything.",
	"Stronger than yesterday. Preparing for tomorrow.",
	"The work is done. The growth is earned.",
	"Rest now. Rise again.",
	"One step closer to your peak.",
}

// DailyQuote возвращает цитату дня: выбор детерминирован
// по номеру дня в году, в течение суток не меняется
func DailyQuote(t time.Time) models.Quote {
	return Quotes[t.YearDay()%len(Quotes)]
}

// RandomQuote возвращает случайную цитату
func RandomQuote() models.Quote {
	return Quotes[rand.Intn(len(Quotes))]
}

// RandomMantra возвращает случайную предтренировочную мантру
func RandomMantra() string {
	return PreWorkoutMantras[rand.Intn(len(PreWorkoutMantras))]
}

// RandomReflection возвращает случайную фразу после тренировки
func RandomReflection() string {
	return PostWorkoutReflections[rand.Intn(len(PostWorkoutReflections))]
}
