package braciole

import (
	"embed"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/braciole/pkg/braciole/internal"
)

//go:embed locales/active.*.toml
var localeFS embed.FS

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle
)

func getBundle() *i18n.Bundle {
	bundleOnce.Do(func() {
		bundle = i18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

		entries, err := localeFS.ReadDir("locales")
		if err != nil {
			internal.GetInternalLogger().Error("Failed to read embedded locales", "error", err)
			return
		}

		for _, entry := range entries {
			if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+entry.Name()); err != nil {
				internal.GetInternalLogger().Warn("Failed to load message file", "file", entry.Name(), "error", err)
			}
		}
	})
	return bundle
}

// Localizer resolves framework UI strings (footer hints) for the requested
// languages, falling back to English.
type Localizer struct {
	loc *i18n.Localizer
}

// NewLocalizer creates a localizer preferring the given language tags in
// order (e.g. "it", "en-US"). With no arguments it resolves to English.
func NewLocalizer(langs ...string) *Localizer {
	return &Localizer{
		loc: i18n.NewLocalizer(getBundle(), langs...),
	}
}

// T returns the translated message for the given ID.
// Unknown IDs return the ID itself so rendering never blocks on a missing
// translation.
func (l *Localizer) T(id string) string {
	msg, err := l.loc.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return msg
}

// Message IDs used by the framework's render sinks.
const (
	MsgFooterNavigate = "FooterNavigate"
	MsgFooterSelect   = "FooterSelect"
	MsgFooterBack     = "FooterBack"
)
