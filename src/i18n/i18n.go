package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Supported lists the report languages, the first one is the fallback.
var Supported = []language.Tag{language.English, language.Russian}

var matcher = language.NewMatcher(Supported)

// Match returns the supported language closest to locale ("ru-RU", "en",
// "russian" ...). Unknown or empty locales give English.
func Match(locale string) language.Tag {
	tag, err := language.Parse(locale)
	if err != nil {
		return Supported[0]
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return Supported[0]
	}
	return Supported[index]
}

// Lang returns the two letter code of tag, which is also the name of the
// lexicon used to render operators in that language.
func Lang(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}

type translation struct {
	en string
	ru string
}

// Message keys. Keys are the English text.
const (
	Title             = "Discrete Mathematics Expression Solver"
	AvailableOps      = "Available operators:"
	ExampleLine       = "Example: %s"
	Prompt            = "Enter logical expression (or 'q' to quit): "
	ResultHeading     = "Result:"
	ExpressionLabel   = "Expression"
	TableLabel        = "Truth table"
	StepsLabel        = "Steps"
	SummaryLabel      = "Summary"
	ExplanationLabel  = "Explanation"
	ResultColumn      = "Result"
	TautologyText     = "The expression is a tautology: it is true in every row."
	ContradictionText = "The expression is a contradiction: it is false in every row."
	ContingentText    = "The expression is true in %d of %d rows (%.0f%%)."
	FinalStep         = "Finally, %s gives the value of the whole expression"
	ExplanationFailed = "Could not generate explanation: %v"
	ErrorLine         = "Error solving expression: %v"
)

var translations = map[string]translation{
	Title:             {ru: "Решатель выражений дискретной математики"},
	AvailableOps:      {ru: "Доступные операции:"},
	ExampleLine:       {ru: "Пример: %s"},
	Prompt:            {ru: "Введите логическое выражение (или 'q' для выхода): "},
	ResultHeading:     {ru: "Результат:"},
	ExpressionLabel:   {ru: "Выражение"},
	TableLabel:        {ru: "Таблица истинности"},
	StepsLabel:        {ru: "Шаги"},
	SummaryLabel:      {ru: "Итог"},
	ExplanationLabel:  {ru: "Объяснение"},
	ResultColumn:      {ru: "Результат"},
	TautologyText:     {ru: "Выражение является тавтологией: оно истинно в каждой строке."},
	ContradictionText: {ru: "Выражение является противоречием: оно ложно в каждой строке."},
	ContingentText:    {ru: "Выражение истинно в %d из %d строк (%.0f%%)."},
	FinalStep:         {ru: "Наконец, %s даёт значение всего выражения"},
	ExplanationFailed: {ru: "Не удалось получить объяснение: %v"},
	ErrorLine:         {ru: "Ошибка при решении выражения: %v"},
}

var stepPhrases = map[string][]string{
	"en": {
		"First, compute %s",
		"Next, compute %s",
		"Then compute %s",
		"After that, compute %s",
		"Now compute %s",
	},
	"ru": {
		"Сначала вычислим %s",
		"Далее вычислим %s",
		"Затем вычислим %s",
		"После этого вычислим %s",
		"Теперь вычислим %s",
	},
}

var languageNames = map[string]string{
	"en": "English",
	"ru": "Russian",
}

var defaultCatalog = mustBuildCatalog()

func mustBuildCatalog() catalog.Catalog {
	builder := catalog.NewBuilder(catalog.Fallback(Supported[0]))
	for key, t := range translations {
		en := t.en
		if en == "" {
			en = key
		}
		if err := builder.SetString(language.English, key, en); err != nil {
			panic(fmt.Sprintf("failed to add %q to catalog: %v", key, err))
		}
		if err := builder.SetString(language.Russian, key, t.ru); err != nil {
			panic(fmt.Sprintf("failed to add %q to catalog: %v", key, err))
		}
	}
	return builder
}

// Printer formats message keys in the language of tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(defaultCatalog))
}

// StepPhrases returns the sentences used to narrate evaluation steps. Each
// phrase takes the sub-expression as its only argument.
func StepPhrases(tag language.Tag) []string {
	if phrases, ok := stepPhrases[Lang(tag)]; ok {
		return phrases
	}
	return stepPhrases["en"]
}

// LanguageName is the English name of the language, used in prompts sent to
// the explainer.
func LanguageName(tag language.Tag) string {
	if name, ok := languageNames[Lang(tag)]; ok {
		return name
	}
	return languageNames["en"]
}
