package coach

import (
	"fmt"
	"strings"
)

const explainSystemPrompt = `You are a friendly Python tutor helping a beginner. A student just answered a quiz question incorrectly. Explain, in 2-4 short sentences, why their answer is wrong and what the right way to think about the question is. Use simple language and plain ASCII text. Do not ask follow-up questions.`

func buildExplainUserMessage(input ExplainInput) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Lesson: %s\n", input.Lesson.Title))
	b.WriteString(fmt.Sprintf("Question: %s\n", input.Lesson.Question.Prompt))
	if len(input.Lesson.Question.Options) > 0 {
		b.WriteString(fmt.Sprintf("Options: %s\n", strings.Join(input.Lesson.Question.Options, ", ")))
	}
	b.WriteString(fmt.Sprintf("Correct answer: %s\n", input.Lesson.Question.Answer))
	b.WriteString(fmt.Sprintf("Student's answer: %s\n", input.Submitted))

	return b.String()
}

const askSystemPrompt = `You are a friendly Python tutor for beginners. Answer the student's question in a few short sentences. Include a tiny code example when it helps. Use plain ASCII text only. If the question is not about Python or programming, gently steer the student back to Python.`
