package coach

import (
	"fmt"
	"strings"
)

// Canned replies used when no LLM provider is configured. Keyed by
// keywords found in the student's question.
var cannedAnswers = []struct {
	keywords []string
	reply    string
}{
	{
		keywords: []string{"list"},
		reply:    "A list holds an ordered collection of values: nums = [1, 2, 3]. You can index it with nums[0] and add to it with nums.append(4).",
	},
	{
		keywords: []string{"dict", "dictionary"},
		reply:    "A dict maps keys to values: ages = {\"ada\": 36}. Look values up with ages[\"ada\"] and add pairs with ages[\"bob\"] = 41.",
	},
	{
		keywords: []string{"loop", "for", "while"},
		reply:    "Use a for loop to repeat over a sequence: for x in [1, 2, 3]: print(x). Use while when you only have a stopping condition.",
	},
	{
		keywords: []string{"function", "def"},
		reply:    "Define a function with def: def greet(name): return \"hi \" + name. Call it with greet(\"ada\").",
	},
	{
		keywords: []string{"string", "str"},
		reply:    "Strings are text in quotes: s = \"hello\". Join them with +, and use s.upper() or s.split() for common transformations.",
	},
}

func fallbackAnswer(question string) string {
	q := strings.ToLower(question)
	for _, c := range cannedAnswers {
		for _, kw := range c.keywords {
			if strings.Contains(q, kw) {
				return c.reply
			}
		}
	}
	return "I don't have a coach configured right now, so I can only cover the basics. Try rereading the current lesson, or ask about lists, dicts, loops, functions, or strings."
}

func fallbackExplanation(input ExplainInput) string {
	return fmt.Sprintf(
		"Not quite. The expected answer was %q, but you wrote %q. Reread the lesson %q and look for the part that covers this question, then try again.",
		input.Lesson.Question.Answer, input.Submitted, input.Lesson.Title,
	)
}
