package curriculum

// Default returns the built-in Python curriculum used when no curriculum
// file is supplied.
func Default() *Catalog {
	c, err := New(defaultUnits())
	if err != nil {
		// The built-in curriculum is validated by tests; a failure here
		// is a programming error.
		panic("built-in curriculum invalid: " + err.Error())
	}
	return c
}

func defaultUnits() []Unit {
	return []Unit{
		{
			ID:    "basics",
			Title: "Python Basics",
			Content: "Python is a high-level programming language. Basics include " +
				"variables and data types like int, str, list.\n\n" +
				"Example:\n    x = 5\n    print(x)",
			Question: Question{
				Prompt: "What is the output of print(2 + 2)?",
				Mode:   ModeFreeText,
				Answer: "4",
			},
		},
		{
			ID:    "loops",
			Title: "Loops in Python",
			Content: "For loops iterate over a sequence:\n    for i in range(5):\n        print(i)\n\n" +
				"While loops repeat until a condition turns false:\n    while condition:\n        ...",
			Question: Question{
				Prompt:  "Which loop iterates over a sequence?",
				Mode:    ModeChoice,
				Options: []string{"for", "while", "goto"},
				Answer:  "for",
			},
		},
		{
			ID:    "functions",
			Title: "Functions",
			Content: "Functions bundle reusable logic:\n    def my_func(arg):\n        return arg * 2\n\n" +
				"Call them by name:\n    my_func(3)",
			Question: Question{
				Prompt: "What keyword defines a function in Python?",
				Mode:   ModeFreeText,
				Answer: "def",
			},
		},
	}
}
