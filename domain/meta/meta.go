//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of OrgPress.
//
// OrgPress is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package meta provides the domain specific type 'meta'.
package meta

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

type keyUsage int

const (
	_             keyUsage = iota
	usageUser              // Key will be manipulated by the user
	usageComputed          // Key is computed by OrgPress
	usageProperty          // Key is computed and not stored by OrgPress
)

// DescriptionKey formally describes each supported metadata key.
type DescriptionKey struct {
	Name  string
	Type  *DescriptionType
	usage keyUsage
}

// IsComputed returns true, if metadata is computed and not set by the user.
func (kd *DescriptionKey) IsComputed() bool { return kd.usage >= usageComputed }

// IsProperty returns true, if metadata is a computed property.
func (kd *DescriptionKey) IsProperty() bool { return kd.usage >= usageProperty }

var registeredKeys = make(map[string]*DescriptionKey)

func registerKey(name string, t *DescriptionType, usage keyUsage) string {
	if _, ok := registeredKeys[name]; ok {
		panic("Key '" + name + "' already defined")
	}
	registeredKeys[name] = &DescriptionKey{name, t, usage}
	return name
}

// IsComputed returns true, if key denotes a computed metadata key.
func IsComputed(name string) bool {
	if kd, ok := registeredKeys[name]; ok {
		return kd.IsComputed()
	}
	return false
}

// GetDescription returns the key description object of the given key name.
func GetDescription(name string) DescriptionKey {
	if d, ok := registeredKeys[name]; ok {
		return *d
	}
	return DescriptionKey{Type: TypeEmpty}
}

// GetSortedKeyDescriptions delivers all metadata key descriptions as a slice,
// sorted by name.
func GetSortedKeyDescriptions() []*DescriptionKey {
	names := make([]string, 0, len(registeredKeys))
	for n := range registeredKeys {
		names = append(names, n)
	}
	sort.Strings(names)
	result := make([]*DescriptionKey, 0, len(names))
	for _, n := range names {
		result = append(result, registeredKeys[n])
	}
	return result
}

// Supported keys.
var (
	KeyName             = registerKey("name", TypeWord, usageComputed)
	KeyTitle            = registerKey("title", TypeMarkup, usageUser)
	KeyTags             = registerKey("tags", TypeTagSet, usageUser)
	KeyKeywords         = registerKey("keywords", TypeWordSet, usageUser)
	KeySummary          = registerKey("summary", TypeMarkup, usageUser)
	KeySyntax           = registerKey("syntax", TypeWord, usageUser)
	KeyLang             = registerKey("lang", TypeWord, usageUser)
	KeyDate             = registerKey("date", TypeTimestamp, usageUser)
	KeyAuthor           = registerKey("author", TypeString, usageUser)
	KeyURL              = registerKey("url", TypeURL, usageUser)
	KeyDraft            = registerKey("draft", TypeBool, usageUser)
	KeyCopyright        = registerKey("copyright", TypeString, usageUser)
	KeyLicense          = registerKey("license", TypeEmpty, usageUser)
	KeySiteName         = registerKey("site-name", TypeString, usageUser)
	KeyDefaultCopyright = registerKey("default-copyright", TypeString, usageUser)
	KeyDefaultLang      = registerKey("default-lang", TypeWord, usageUser)
	KeyDefaultLicense   = registerKey("default-license", TypeEmpty, usageUser)
	KeyDefaultSyntax    = registerKey("default-syntax", TypeWord, usageUser)
	KeyDefaultTitle     = registerKey("default-title", TypeMarkup, usageUser)
	KeyModified         = registerKey("modified", TypeTimestamp, usageComputed)
	KeyPublished        = registerKey("published", TypeTimestamp, usageProperty)
)

// Important values for some keys.
const (
	ValueSyntaxNone = "none"
	ValueSyntaxOrg  = "org"
	ValueSyntaxMD   = "markdown"
	ValueSyntaxText = "text"
	ValueTrue       = "true"
	ValueFalse      = "false"
	ValueLangEN     = "en"
)

// Meta contains all meta-data of a document.
type Meta struct {
	Name    string
	pairs   map[string]string
	YamlSep bool
}

// New creates a new chunk for storing meta-data.
func New(name string) *Meta {
	return &Meta{Name: name, pairs: make(map[string]string, 5)}
}

// Clone returns a new copy of the metadata.
func (m *Meta) Clone() *Meta {
	return &Meta{
		Name:    m.Name,
		pairs:   m.Map(),
		YamlSep: m.YamlSep,
	}
}

// Map returns a copy of the meta data as a string map.
func (m *Meta) Map() map[string]string {
	pairs := make(map[string]string, len(m.pairs))
	for k, v := range m.pairs {
		pairs[k] = v
	}
	return pairs
}

var reKey = regexp.MustCompile("^[0-9a-z][-0-9a-z]{0,254}$")

// KeyIsValid returns true, if the key is a valid string.
func KeyIsValid(key string) bool {
	return reKey.MatchString(key)
}

// Pair is one key-value-pair of a document meta.
type Pair struct {
	Key   string
	Value string
}

var firstKeys = []string{KeyTitle, KeyTags, KeySyntax}
var firstKeySet map[string]bool

func init() {
	firstKeySet = make(map[string]bool, len(firstKeys))
	for _, k := range firstKeys {
		firstKeySet[k] = true
	}
}

// Set stores the given string value under the given key.
func (m *Meta) Set(key, value string) {
	if key != KeyName {
		m.pairs[key] = trimValue(value)
	}
}

func trimValue(value string) string {
	return strings.TrimFunc(value, unicode.IsSpace)
}

// Get retrieves the string value of a given key. The bool value signals,
// whether there was a value stored or not.
func (m *Meta) Get(key string) (string, bool) {
	if key == KeyName {
		return m.Name, true
	}
	value, ok := m.pairs[key]
	return value, ok
}

// GetDefault retrieves the string value of the given key. If no value was
// stored, the given default value is returned.
func (m *Meta) GetDefault(key, def string) string {
	if value, ok := m.Get(key); ok {
		return value
	}
	return def
}

// Pairs returns all key/values pairs stored, in a specific order. First come
// the pairs with predefined keys, then all other pairs, ordered by key.
func (m *Meta) Pairs() []Pair {
	return m.doPairs(true)
}

// PairsRest returns all key/values pairs stored, except the values with
// predefined keys. The pairs are ordered by key.
func (m *Meta) PairsRest() []Pair {
	return m.doPairs(false)
}

func (m *Meta) doPairs(first bool) []Pair {
	result := make([]Pair, 0, len(m.pairs))
	if first {
		for _, key := range firstKeys {
			if value, ok := m.pairs[key]; ok {
				result = append(result, Pair{key, value})
			}
		}
	}

	keys := make([]string, 0, len(m.pairs)-len(result))
	for k := range m.pairs {
		if !firstKeySet[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, k := range keys {
		result = append(result, Pair{k, m.pairs[k]})
	}
	return result
}

// Delete removes a key from the data.
func (m *Meta) Delete(key string) {
	if key != KeyName {
		delete(m.pairs, key)
	}
}

// Equal compares two metas for equality.
func (m *Meta) Equal(o *Meta) bool {
	if m == nil && o == nil {
		return true
	}
	if m == nil || o == nil || m.Name != o.Name || len(m.pairs) != len(o.pairs) {
		return false
	}
	for k, v := range m.pairs {
		if vo, ok := o.pairs[k]; !ok || v != vo {
			return false
		}
	}
	return true
}
