package prompt

// MotivationalQuotes returns the static pool served by the quotes endpoint.
func MotivationalQuotes() []string {
	return []string{
		"Push yourself, because no one else is going to do it for you.",
		"Your body can stand almost anything. It's your mind you have to convince.",
		"Success starts with self-discipline.",
		"No pain, no gain. Shut up and train.",
		"Small progress is still progress.",
		"Don't limit your challenges. Challenge your limits.",
		"Sweat is just fat crying.",
		"Train insane or remain the same.",
		"Discipline is choosing between what you want now and what you want most.",
		"The hard part isn't getting your body in shape. The hard part is getting your mind in shape.",
	}
}
