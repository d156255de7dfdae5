package sim

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer renders amounts with thousands separators, matching the
// narration style of the original game text.
var printer = message.NewPrinter(language.SimplifiedChinese)
