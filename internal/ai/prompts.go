package ai

import "fmt"

const cleanupInstructions = "You are a transcript editor. Clean up the following YouTube transcript: " +
	"fix grammar, add punctuation, remove filler words (um, uh, like, you know), " +
	"merge broken sentences, and make it readable. Return ONLY the cleaned text, no explanation.\n\n"

const cleanupInstructionsShort = "Fix this transcript grammar and formatting. Return ONLY the cleaned text:\n\n"

const summaryTemplate = "You are a content summarizer. Given a YouTube video transcript, write a clear and " +
	"concise summary with: 1) A one-sentence overview, 2) 3-5 key points as bullet points, " +
	"3) Main takeaway. Be brief and informative.\n\nVideo: \"%s\"\n\nTranscript:\n%s"

// cleanupPrompt builds the cleanup prompt. The secondary provider gets the
// terser instruction.
func cleanupPrompt(r role, text string) string {
	if r == roleSecondary {
		return cleanupInstructionsShort + text
	}
	return cleanupInstructions + text
}

func summaryPrompt(text, title string) string {
	if title == "" {
		title = "YouTube Video"
	}
	return fmt.Sprintf(summaryTemplate, title, text)
}
