package lexicon

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/warrenjonahb/bible-study-app/internal/domain"
)

var (
	greekKey  = regexp.MustCompile(`^G\d+$`)
	hebrewKey = regexp.MustCompile(`^H\d+$`)

	blockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
	varPrefix    = regexp.MustCompile(`var\s+\w+\s*=\s*`)
)

// ErrEmptyDictionary is returned when a dictionary source holds no entries.
var ErrEmptyDictionary = errors.New("dictionary has no entries")

// Load reads the Greek and Hebrew dictionaries from disk. Files ending in .js
// are treated as the JavaScript distribution of the Strong's dictionaries
// ("var strongsGreekDictionary = {...};"); anything else must be a JSON object.
// Any malformed input fails the whole load.
func Load(greekPath, hebrewPath string) (*Store, error) {
	greek, err := loadFile(greekPath, greekKey)
	if err != nil {
		return nil, fmt.Errorf("load greek lexicon: %w", err)
	}

	hebrew, err := loadFile(hebrewPath, hebrewKey)
	if err != nil {
		return nil, fmt.Errorf("load hebrew lexicon: %w", err)
	}

	return New(greek, hebrew), nil
}

func loadFile(path string, key *regexp.Regexp) (map[string]domain.LexiconEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".js") {
		data, err = unwrapJS(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	entries, err := parse(bytes.NewReader(data), key)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

// parse decodes a JSON object of Strong's code -> entry fields. Every key must
// match key, and the fields the store uses must be strings or null. Other
// fields (e.g. "derivation") are ignored.
func parse(r io.Reader, key *regexp.Regexp) (map[string]domain.LexiconEntry, error) {
	var raw map[string]map[string]any
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if len(raw) == 0 {
		return nil, ErrEmptyDictionary
	}

	entries := make(map[string]domain.LexiconEntry, len(raw))
	for code, fields := range raw {
		if !key.MatchString(code) {
			return nil, fmt.Errorf("invalid strong's code %q", code)
		}
		entry, err := toEntry(code, fields)
		if err != nil {
			return nil, err
		}
		entries[code] = entry
	}
	return entries, nil
}

func toEntry(code string, fields map[string]any) (domain.LexiconEntry, error) {
	entry := domain.LexiconEntry{Code: code}

	for name, v := range fields {
		if !knownField(name) || v == nil {
			continue
		}
		s, ok := v.(string)
		if !ok {
			return domain.LexiconEntry{}, fmt.Errorf("%s: field %q is %T, want string", code, name, v)
		}

		switch name {
		case "lemma":
			entry.Lemma = &s
		case "strongs_def":
			entry.StrongsDef = &s
		case "kjv_def":
			entry.KJVDef = &s
		default:
			if entry.Transliterations == nil {
				entry.Transliterations = make(map[string]string, len(domain.TransliterationFields))
			}
			entry.Transliterations[name] = s
		}
	}

	return entry, nil
}

func knownField(name string) bool {
	switch name {
	case "lemma", "strongs_def", "kjv_def":
		return true
	}
	return slices.Contains(domain.TransliterationFields, name)
}

// unwrapJS turns "var x = {...}; module.exports = x;" into the bare object.
func unwrapJS(data []byte) ([]byte, error) {
	data = blockComment.ReplaceAll(data, nil)

	if loc := varPrefix.FindIndex(data); loc != nil {
		data = data[loc[1]:]
	}

	start := bytes.IndexByte(data, '{')
	end := bytes.LastIndexByte(data, '}')
	if start < 0 || end < start {
		return nil, errors.New("no object literal found")
	}
	return data[start : end+1], nil
}
