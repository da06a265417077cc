package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("asm51: locale: %v", err)
	}

	Use(locales...)
}

// Use selects the printer language from a list of BCP 47 tags, in order of
// preference. An empty list selects en-US.
//
// The printer is process-wide: Use is setup for a command, called before any
// messages are formatted, and never concurrently with From.
func Use(tags ...string) {
	if len(tags) == 0 {
		tags = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(tags...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
