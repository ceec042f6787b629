package reconcile

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// knownPrefixes are the symbolic-name prefixes stripped before
// humanization.
var knownPrefixes = []string{"KC_", "QK_"}

// Humanize converts a symbolic keycode name into a human-readable label:
// strip a known prefix if present, split the remainder on underscores,
// title-case each segment, and join with single spaces.
//
//	Humanize("QK_MOD_TAP")     == "Mod Tap"
//	Humanize("KC_A")           == "A"
//	Humanize("CUSTOM_FOO_BAR") == "Custom Foo Bar"
func Humanize(name string) string {
	for _, prefix := range knownPrefixes {
		if strings.HasPrefix(name, prefix) {
			name = strings.TrimPrefix(name, prefix)
			break
		}
	}

	caser := cases.Title(language.English)
	segments := strings.Split(name, "_")
	for i, segment := range segments {
		segments[i] = caser.String(strings.ToLower(segment))
	}

	return strings.Join(segments, " ")
}
