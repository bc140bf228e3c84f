// Package locale loads per-locale translation dictionaries from static files
// keyed by the database-enabled code list, and negotiates a locale for each
// request.
package locale

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/aveslog/backend/internal/db"
	"github.com/aveslog/backend/internal/model"
)

// MissSink receives translation lookups that had no dictionary entry. It is
// advisory: implementations must be safe for concurrent use, and losing a
// report is acceptable.
type MissSink interface {
	Report(localeCode, text string)
}

// RecordingMissSink keeps misses in memory behind a mutex.
type RecordingMissSink struct {
	mu     sync.Mutex
	misses map[string][]string
}

func NewRecordingMissSink() *RecordingMissSink {
	return &RecordingMissSink{misses: make(map[string][]string)}
}

func (s *RecordingMissSink) Report(localeCode, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.misses[localeCode] = append(s.misses[localeCode], text)
}

// Misses returns a copy of the recorded misses for a locale.
func (s *RecordingMissSink) Misses(localeCode string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.misses[localeCode]...)
}

// LogMissSink reports misses to the application log.
type LogMissSink struct {
	Logger *zap.Logger
}

func (s *LogMissSink) Report(localeCode, text string) {
	s.Logger.Warn("locale dictionary miss",
		zap.String("locale", localeCode),
		zap.String("text", text),
	)
}

// Empty returns a locale that translates nothing and reports nothing.
func Empty() *LoadedLocale {
	return &LoadedLocale{}
}

// LoadedLocale is a locale with its dictionaries resolved from disk.
type LoadedLocale struct {
	Locale         model.Locale
	dictionary     map[string]string
	birdDictionary map[string]string
	misses         MissSink
}

// Text translates s, substituting each {{}} placeholder with the next
// variable. Untranslated text is reported to the miss sink and returned
// as-is.
func (l *LoadedLocale) Text(s string, variables ...string) string {
	translated, ok := l.dictionary[s]
	if !ok {
		if l.misses != nil {
			l.misses.Report(l.Locale.Code, s)
		}
		translated = s
	}
	for _, variable := range variables {
		if !strings.Contains(translated, "{{}}") {
			break
		}
		translated = strings.Replace(translated, "{{}}", variable, 1)
	}
	return translated
}

// Name returns the localized bird name for a binomial name, falling back to
// the binomial name itself.
func (l *LoadedLocale) Name(binomialName string) string {
	if name, ok := l.birdDictionary[binomialName]; ok {
		return name
	}
	return binomialName
}

// Loader reads locale dictionaries from {path}/{code}/{code}.json and
// {path}/{code}/{code}-bird-names.json. Missing files leave the dictionary
// empty rather than failing the load.
type Loader struct {
	path   string
	misses MissSink
}

func NewLoader(path string, misses MissSink) *Loader {
	return &Loader{path: path, misses: misses}
}

func (l *Loader) Load(locale model.Locale) *LoadedLocale {
	loaded := &LoadedLocale{
		Locale: locale,
		misses: l.misses,
	}
	loaded.dictionary = readDictionary(
		filepath.Join(l.path, locale.Code, locale.Code+".json"))
	loaded.birdDictionary = readDictionary(
		filepath.Join(l.path, locale.Code, locale.Code+"-bird-names.json"))
	return loaded
}

func readDictionary(path string) map[string]string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var dictionary map[string]string
	if err := json.Unmarshal(data, &dictionary); err != nil {
		return nil
	}
	return dictionary
}

// Repository resolves locales against both the filesystem (available) and
// the database code list (enabled).
type Repository struct {
	path   string
	store  *db.Postgres
	loader *Loader
}

func NewRepository(path string, store *db.Postgres, loader *Loader) *Repository {
	return &Repository{path: path, store: store, loader: loader}
}

// AvailableCodes lists the 2-letter locale directories on disk.
func (r *Repository) AvailableCodes() []string {
	entries, err := os.ReadDir(r.path)
	if err != nil {
		return nil
	}
	var codes []string
	for _, entry := range entries {
		if entry.IsDir() && len(entry.Name()) == 2 {
			codes = append(codes, entry.Name())
		}
	}
	return codes
}

func (r *Repository) EnabledCodes(ctx context.Context) ([]string, error) {
	locales, err := r.store.Locales(ctx)
	if err != nil {
		return nil, err
	}
	codes := make([]string, 0, len(locales))
	for _, locale := range locales {
		codes = append(codes, locale.Code)
	}
	return codes, nil
}

// LoadByCode loads an enabled locale. The bool result is false when the code
// is not enabled.
func (r *Repository) LoadByCode(ctx context.Context, code string) (*LoadedLocale, bool, error) {
	locale, err := r.store.LocaleByCode(ctx, code)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return r.loader.Load(*locale), true, nil
}

const localeCookieKey = "user_locale_code"

// Determiner picks a locale code for a request: cookie first, then
// Accept-Language, then the first known code.
type Determiner struct {
	codes []string
}

func NewDeterminer(codes []string) *Determiner {
	return &Determiner{codes: codes}
}

func (d *Determiner) Determine(r *http.Request) string {
	if len(d.codes) == 0 {
		return ""
	}
	if cookie, err := r.Cookie(localeCookieKey); err == nil && d.isKnown(cookie.Value) {
		return cookie.Value
	}
	if code := d.fromAcceptLanguage(r.Header.Get("Accept-Language")); code != "" {
		return code
	}
	return d.codes[0]
}

func (d *Determiner) fromAcceptLanguage(header string) string {
	if header == "" {
		return ""
	}
	for _, part := range strings.Split(header, ",") {
		code := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if d.isKnown(code) {
			return code
		}
	}
	return ""
}

func (d *Determiner) isKnown(code string) bool {
	for _, known := range d.codes {
		if known == code {
			return true
		}
	}
	return false
}
