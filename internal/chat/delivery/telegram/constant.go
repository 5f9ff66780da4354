package telegram

import "time"

const (
	commandStart = "/start"
	commandHelp  = "/help"
	commandClear = "/clear"

	sessionPrefix = "telegram_"

	processTimeout = 2 * time.Minute
)

const (
	welcomeMessage = "✈️ *Travel Assistant* - your AI travel companion\n\n" +
		"I can help with:\n" +
		"• 🌍 Destination recommendations\n" +
		"• 🎒 Packing suggestions\n" +
		"• 🌤️ Real-time weather info\n" +
		"• 🏛️ Local attractions\n" +
		"• 🧠 Smart reasoning\n\n" +
		"_Example: \"What should I pack for Tokyo in December?\"_"

	helpMessage = "*Available commands:*\n\n" +
		"/clear - Clear conversation history\n" +
		"/help - Show this help message\n\n" +
		"Any other text: ask a travel question."

	clearedMessage = "Conversation history cleared!"
	failureMessage = "Something went wrong while answering. Please try again in a moment."
)
