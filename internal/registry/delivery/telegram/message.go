package telegram

import "fmt"

const (
	welcomeText = "You want push notifications of your GitHub repositories posted in this chat?\n\n" +
		"I can help you with that by giving you a URL for GitHub webhooks."

	statusUnregisteredText = "*Status:*\n\n" +
		"❌ This chat is not registered yet. 😥\n\n" +
		"Go ahead and /register it so I can post GitHub notifications here! 😃"

	guideUnregisteredText = "*Guide:*\n\n" +
		"*First you need to* /register *this chat, then come back to the* /guide."

	saveFailedText = "Sorry, I could not save that change. Please try again in a moment."
)

func statusRegisteredText(url string) string {
	return fmt.Sprintf("*Status:*\n\n"+
		"✔ This chat is registered. 😃\n\n"+
		"Use this URL for your GitHub webhooks:\n`%s`\n"+
		"See the /guide on how to do that.\n\n"+
		"You can /unregister this chat at any time. 😉", url)
}

func guideRegisteredText(url string) string {
	return fmt.Sprintf("*Guide:*\n\n"+
		"The URL for this chat is:\n`%s`\n\n"+
		"One URL can serve many repositories, every push to any of them is posted here. "+
		"Repeat these steps for each repository:\n\n"+
		"1. Open the repository settings.\n"+
		"2. Click on \"Webhooks\".\n"+
		"3. Select \"Add webhook\".\n"+
		"4. Enter the URL above as \"Payload URL\".\n"+
		"5. Select \"application/json\" as content type.\n"+
		"6. Choose \"Just the push event\".\n"+
		"7. Click \"Add webhook\".", url)
}
