package vocab

import "englex/internal/domain"

// FallbackFacts are shown when the random fact API is unavailable
var FallbackFacts = []domain.Fact{
	{Title: "Brain", Text: "Your brain weighs about 1.4 kg and consumes 20% of your energy.", Emoji: "🧠"},
	{Title: "Space", Text: "The Milky Way galaxy contains over 100 billion stars.", Emoji: "🌌"},
	{Title: "Honey", Text: "Honey never spoils. Archaeologists have found edible honey in Egyptian tombs over 3,000 years old.", Emoji: "🍯"},
	{Title: "Lightning", Text: "Lightning strikes the Earth about 100 times per second.", Emoji: "⚡"},
}

// FallbackNumberFacts are shown when the number fact API is unavailable
var FallbackNumberFacts = []domain.Fact{
	{Title: "Number Fact", Text: "The number 1 is the only number that is neither prime nor composite.", Emoji: "🔢"},
	{Title: "Math Fact", Text: "A circle has 360 degrees.", Emoji: "📐"},
}
