package prompt

import (
	"fmt"
	"sort"
)

// Messages is the user-facing text of one language.
type Messages struct {
	Prompt      string
	ReadFailure string
	Invalid     string
	// Result is a format string taking the parsed number.
	Result string
}

var (
	English = Messages{
		Prompt:      "Please enter a number:",
		ReadFailure: "failed to read line",
		Invalid:     "You did not enter a valid number.",
		Result:      "The number you entered was: %d",
	}

	Portuguese = Messages{
		Prompt:      "Por favor, introduz um número:",
		ReadFailure: "Falha ao ler a linha",
		Invalid:     "Não foi introduzido um número válido.",
		Result:      "O número que introduziste foi: %d",
	}

	catalog = map[string]Messages{
		"en": English,
		"pt": Portuguese,
	}
)

// DefaultLanguage is used when no language is configured.
const DefaultLanguage = "en"

// MessagesFor returns the catalog entry for lang. An empty lang selects
// DefaultLanguage.
func MessagesFor(lang string) (Messages, error) {
	if lang == "" {
		lang = DefaultLanguage
	}
	msgs, ok := catalog[lang]
	if !ok {
		return Messages{}, fmt.Errorf("unsupported language %q (available: %v)", lang, Languages())
	}
	return msgs, nil
}

// Languages lists the supported language codes in sorted order.
func Languages() []string {
	langs := make([]string, 0, len(catalog))
	for lang := range catalog {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

func (m Messages) resultFor(n int32) string {
	return fmt.Sprintf(m.Result, n)
}
