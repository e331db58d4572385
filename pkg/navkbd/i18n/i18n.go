package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"path"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed messages/*.toml
var embedded embed.FS

var (
	mu sync.RWMutex
	i  *I18N
)

type I18N struct {
	localizer *i18n.Localizer
	bundle    *i18n.Bundle
}

type MessageFile struct {
	Name    string
	Content []byte
}

// Message is an alias for i18n.Message so callers need not import go-i18n.
type Message = i18n.Message

func newBundle() *i18n.Bundle {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	return bundle
}

// Init loads the built-in translations and selects lang.
func Init(lang string) error {
	entries, err := embedded.ReadDir("messages")
	if err != nil {
		return err
	}

	files := make([]MessageFile, 0, len(entries))
	for _, entry := range entries {
		content, err := embedded.ReadFile(path.Join("messages", entry.Name()))
		if err != nil {
			return err
		}
		files = append(files, MessageFile{Name: entry.Name(), Content: content})
	}

	if err := InitI18NFromBytes(files); err != nil {
		return err
	}
	if lang == "" {
		return nil
	}
	return SetWithCode(lang)
}

func InitI18NFromBytes(messageFiles []MessageFile) error {
	bundle := newBundle()
	for _, messageFile := range messageFiles {
		if _, err := bundle.ParseMessageFileBytes(messageFile.Content, messageFile.Name); err != nil {
			return fmt.Errorf("parsing %s: %w", messageFile.Name, err)
		}
	}
	set(bundle, language.English.String())
	return nil
}

func set(bundle *i18n.Bundle, langs ...string) {
	mu.Lock()
	defer mu.Unlock()
	i = &I18N{localizer: i18n.NewLocalizer(bundle, langs...), bundle: bundle}
}

func current() *I18N {
	mu.RLock()
	defer mu.RUnlock()
	return i
}

func SetLanguage(lang language.Tag) {
	set(current().bundle, lang.String(), language.English.String())
}

// SetWithCode selects a language from a BCP 47 or POSIX style code, e.g.
// "de" or "ru_RU.UTF-8".
func SetWithCode(code string) error {
	lang, err := language.Parse(normalize(code))
	if err != nil {
		return err
	}
	SetLanguage(lang)
	return nil
}

// normalize strips the encoding suffix of POSIX locales and turns the
// underscore into a BCP 47 separator.
func normalize(code string) string {
	for idx, r := range code {
		if r == '.' || r == '@' {
			code = code[:idx]
			break
		}
	}
	out := []byte(code)
	for idx, c := range out {
		if c == '_' {
			out[idx] = '-'
		}
	}
	return string(out)
}

// GetString returns the localized message for key, or "I18N Error".
func GetString(key string) string {
	msg, err := current().localizer.Localize(&i18n.LocalizeConfig{
		MessageID: key,
	})
	if err != nil {
		return "I18N Error"
	}
	return msg
}

func GetStringWithData(key string, templateData map[string]any) string {
	msg, err := current().localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: templateData,
	})
	if err != nil {
		return "I18N Error"
	}
	return msg
}

// Localize returns the translation of message, falling back to its Other
// text when no translation exists.
func Localize(message *Message, templateData map[string]any) string {
	if message == nil {
		return "I18N Error: nil message"
	}

	config := &i18n.LocalizeConfig{
		DefaultMessage: message,
	}
	if templateData != nil {
		config.TemplateData = templateData
	}

	msg, err := current().localizer.Localize(config)
	if err != nil {
		if message.Other != "" {
			return message.Other
		}
		return "I18N Error"
	}
	return msg
}
