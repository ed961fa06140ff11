// Package catalog loads the embedded translation catalogs and registers them
// with golang.org/x/text/message.
//
// Catalog files live at locales/<locale>/<namespace>.yaml. Every locale must
// define the same keys as BaseLocale, and core.* keys belong to the core
// namespace.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the source locale other catalogs are checked against.
const BaseLocale = "ru-RU"

const corePrefix = "core."

type catalogFile struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

// Bundle holds the messages of every loaded locale.
type Bundle struct {
	messages map[string]map[string]string
}

//go:embed locales/*/*.yaml
var embeddedCatalogFS embed.FS

var defaultBundle = mustLoadAndRegisterEmbedded()

// Default returns the process-wide embedded bundle. It is registered with
// x/text/message at package init.
func Default() *Bundle {
	return defaultBundle
}

// LoadEmbedded loads the catalog files embedded in this package.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedCatalogFS)
}

// LoadFromFS loads and validates catalog files from catalogFS.
func LoadFromFS(catalogFS fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(catalogFS, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	b := &Bundle{messages: map[string]map[string]string{}}
	for _, p := range paths {
		data, err := fs.ReadFile(catalogFS, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		file, err := parseCatalogFile(data)
		if err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}
		if err := b.add(p, file); err != nil {
			return nil, err
		}
	}
	if err := b.checkKeyParity(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Bundle) add(p string, file catalogFile) error {
	dir, name := path.Split(p)
	wantLocale := path.Base(dir)
	wantNamespace := strings.TrimSuffix(name, path.Ext(name))

	locale := strings.TrimSpace(file.Locale)
	if locale != wantLocale {
		return fmt.Errorf("catalog %s: locale %q must match directory %q", p, locale, wantLocale)
	}
	namespace := strings.TrimSpace(file.Namespace)
	if namespace != wantNamespace {
		return fmt.Errorf("catalog %s: namespace %q must match file name %q", p, namespace, wantNamespace)
	}

	messages, ok := b.messages[locale]
	if !ok {
		messages = map[string]string{}
		b.messages[locale] = messages
	}
	for rawKey, value := range file.Messages {
		key := strings.TrimSpace(rawKey)
		switch {
		case key == "":
			return fmt.Errorf("catalog %s: blank message key", p)
		case strings.HasPrefix(key, corePrefix) && namespace != "core":
			return fmt.Errorf("catalog %s: key %q belongs in core.yaml", p, key)
		}
		if _, dup := messages[key]; dup {
			return fmt.Errorf("catalog %s: duplicate key %q in locale %s", p, key, locale)
		}
		messages[key] = value
	}
	return nil
}

// checkKeyParity requires every locale to define exactly the base keys.
func (b *Bundle) checkKeyParity() error {
	base, ok := b.messages[BaseLocale]
	if !ok {
		return fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}
	for _, locale := range b.Locales() {
		messages := b.messages[locale]
		for key := range base {
			if _, ok := messages[key]; !ok {
				return fmt.Errorf("locale %s is missing key %q", locale, key)
			}
		}
		for key := range messages {
			if _, ok := base[key]; !ok {
				return fmt.Errorf("locale %s defines key %q missing from %s", locale, key, BaseLocale)
			}
		}
	}
	return nil
}

// Register adds every message to the x/text/message default catalog under
// the locale tag and its base language, so "en" resolves like "en-US".
func (b *Bundle) Register() error {
	if b == nil {
		return nil
	}
	for _, locale := range b.Locales() {
		tag, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("parse locale tag %q: %w", locale, err)
		}
		tags := []language.Tag{tag}
		if base, conf := tag.Base(); conf != language.No {
			if baseTag, err := language.Parse(base.String()); err == nil && baseTag.String() != tag.String() {
				tags = append(tags, baseTag)
			}
		}
		messages := b.messages[locale]
		for _, key := range sortedKeys(messages) {
			for _, t := range tags {
				if err := message.SetString(t, key, messages[key]); err != nil {
					return fmt.Errorf("register %s %q: %w", t, key, err)
				}
			}
		}
	}
	return nil
}

// Locales returns the loaded locale identifiers in sorted order.
func (b *Bundle) Locales() []string {
	if b == nil {
		return nil
	}
	return sortedKeys(b.messages)
}

// Message looks key up in locale, falling back to BaseLocale.
func (b *Bundle) Message(locale string, key string) (string, bool) {
	if b == nil {
		return "", false
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", false
	}
	if value, ok := b.messages[strings.TrimSpace(locale)][key]; ok {
		return value, true
	}
	value, ok := b.messages[BaseLocale][key]
	return value, ok
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func mustLoadAndRegisterEmbedded() *Bundle {
	b, err := LoadEmbedded()
	if err != nil {
		panic(err)
	}
	if err := b.Register(); err != nil {
		panic(err)
	}
	return b
}

func parseCatalogFile(data []byte) (catalogFile, error) {
	var out catalogFile
	if err := yaml.Unmarshal(data, &out); err != nil {
		return catalogFile{}, fmt.Errorf("decode yaml: %w", err)
	}
	if strings.TrimSpace(out.Locale) == "" {
		return catalogFile{}, fmt.Errorf("missing locale")
	}
	if strings.TrimSpace(out.Namespace) == "" {
		return catalogFile{}, fmt.Errorf("missing namespace")
	}
	if len(out.Messages) == 0 {
		return catalogFile{}, fmt.Errorf("missing messages")
	}
	return out, nil
}
