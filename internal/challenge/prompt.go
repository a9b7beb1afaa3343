package challenge

import "fmt"

const textFormat = "Format response exactly as:\n" +
	"Question: <your question>\n" +
	"Choices:\n" +
	"a) <option1>\n" +
	"b) <option2>\n" +
	"c) <option3>\n" +
	"d) <option4>\n" +
	"Answer: <correct choice letter>"

const jsonFormat = "Respond with a JSON object with the fields \"question\" (the question text), " +
	"\"choices\" (exactly 4 option strings, in order a, b, c, d) and " +
	"\"answer\" (the letter of the correct choice: a, b, c or d)."

// BuildPrompt returns the text-mode prompt for topic. The same topic always
// yields the same prompt.
func BuildPrompt(topic Topic) string {
	return buildPrompt(topic, ModeText)
}

func buildPrompt(topic Topic, mode Mode) string {
	format := textFormat
	if mode == ModeJSON {
		format = jsonFormat
	}
	return fmt.Sprintf("Generate a beginner-friendly multiple-choice coding challenge for %s. %s", topic, format)
}
