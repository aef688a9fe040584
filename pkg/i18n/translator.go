package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// DefaultLanguage is used when negotiation finds no match.
const DefaultLanguage = "en"

//go:embed locales/*.yaml
var builtin embed.FS

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// Translator resolves dotted keys to localized strings.
// It is safe for concurrent use.
type Translator struct {
	mu           sync.RWMutex
	translations map[string]map[string]any
	defaultLang  string
	matcher      language.Matcher
	tags         []language.Tag
	langs        []string
	logger       *slog.Logger
}

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the fallback language.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = strings.ToLower(lang)
		}
	}
}

// WithLogger reports missing keys at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(t *Translator) {
		if l != nil {
			t.logger = l
		}
	}
}

// New creates an empty translator.
func New(opts ...Option) *Translator {
	t := &Translator{
		translations: make(map[string]map[string]any),
		defaultLang:  DefaultLanguage,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Default returns a translator with the built-in validation messages.
func Default(opts ...Option) *Translator {
	t := New(opts...)
	data, err := builtin.ReadFile("locales/validation.yaml")
	if err != nil {
		panic(fmt.Errorf("i18n: built-in locales: %w", err))
	}
	if err := t.LoadYAML(strings.NewReader(string(data))); err != nil {
		panic(fmt.Errorf("i18n: built-in locales: %w", err))
	}
	return t
}

// LoadFile merges translations from a YAML file.
func (t *Translator) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return t.LoadYAML(f)
}

// LoadYAML merges translations from r. Keys already loaded are overwritten.
func (t *Translator) LoadYAML(r io.Reader) error {
	var data map[string]any
	if err := yaml.NewDecoder(r).Decode(&data); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty document", ErrInvalidStructure)
		}
		return errors.Join(ErrFailedToParseYAML, err)
	}

	parsed := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		tag, err := language.Parse(lang)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidLanguage, lang)
		}
		m, ok := val.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: language %q: expected map, got %T", ErrInvalidStructure, lang, val)
		}
		parsed[strings.ToLower(tag.String())] = m
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	for lang, m := range parsed {
		if existing, ok := t.translations[lang]; ok {
			mergeMaps(existing, m)
			continue
		}
		t.translations[lang] = m
	}
	t.rebuildMatcher()
	return nil
}

// rebuildMatcher must be called with mu held. The default language is listed
// first so it wins when nothing matches.
func (t *Translator) rebuildMatcher() {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Slice(langs, func(i, j int) bool {
		if langs[i] == t.defaultLang {
			return true
		}
		if langs[j] == t.defaultLang {
			return false
		}
		return langs[i] < langs[j]
	})

	tags := make([]language.Tag, 0, len(langs))
	for _, lang := range langs {
		tags = append(tags, language.Make(lang))
	}
	t.langs = langs
	t.tags = tags
	t.matcher = language.NewMatcher(tags)
}

// Languages returns loaded language codes, default language first.
func (t *Translator) Languages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]string(nil), t.langs...)
}

// Negotiate picks the best loaded language for an Accept-Language header.
func (t *Translator) Negotiate(acceptLanguage string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.matcher == nil || acceptLanguage == "" {
		return t.defaultLang
	}
	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return t.defaultLang
	}
	_, idx, conf := t.matcher.Match(prefs...)
	if conf == language.No {
		return t.defaultLang
	}
	return t.langs[idx]
}

// Translate returns the message for key in lang, falling back to the default
// language. It returns "" when the key is missing everywhere.
func (t *Translator) Translate(lang, key string, values map[string]any) string {
	t.mu.RLock()
	tmpl, ok := t.lookup(strings.ToLower(lang), key)
	if !ok && lang != t.defaultLang {
		tmpl, ok = t.lookup(t.defaultLang, key)
	}
	t.mu.RUnlock()

	if !ok {
		t.logger.Debug("missing translation", slog.String("lang", lang), slog.String("key", key))
		return ""
	}
	return interpolate(tmpl, values)
}

// T is Translate with key fallback: a missing key is returned as-is.
func (t *Translator) T(lang, key string, values map[string]any) string {
	if s := t.Translate(lang, key, values); s != "" {
		return s
	}
	return key
}

func (t *Translator) lookup(lang, key string) (string, bool) {
	current, ok := t.translations[lang]
	if !ok {
		return "", false
	}
	parts := strings.Split(key, ".")
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return "", false
		}
		if i == len(parts)-1 {
			s, ok := val.(string)
			return s, ok
		}
		if current, ok = val.(map[string]any); !ok {
			return "", false
		}
	}
	return "", false
}

func interpolate(tmpl string, values map[string]any) string {
	if len(values) == 0 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(m string) string {
		name := m[2 : len(m)-1]
		if v, ok := values[name]; ok {
			return fmt.Sprint(v)
		}
		return m
	})
}

func mergeMaps(dst, src map[string]any) {
	for k, v := range src {
		if sm, ok := v.(map[string]any); ok {
			if dm, ok := dst[k].(map[string]any); ok {
				mergeMaps(dm, sm)
				continue
			}
		}
		dst[k] = v
	}
}
