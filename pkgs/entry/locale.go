package entry

import "strings"

// Locale-suffix helpers. The core lookup functions treat a suffixed key such
// as "GenericName[es]" as one opaque string; everything in this file is a
// convenience layered on top of exact-key lookup, not part of the parsing
// contract.

// SplitKey splits a suffixed attribute key into its base name and parameter:
// SplitKey("GenericName[es]") returns ("GenericName", "es", true). ok is
// false when the key carries no well-formed suffix.
func SplitKey(key string) (name, param string, ok bool) {
	open := strings.IndexByte(key, '[')
	if open <= 0 || !strings.HasSuffix(key, "]") {
		return "", "", false
	}
	param = key[open+1 : len(key)-1]
	if param == "" {
		return "", "", false
	}
	return key[:open], param, true
}

// Param returns the locale/parameter suffix of the attribute key, if any.
func (a Attribute) Param() (string, bool) {
	_, param, ok := SplitKey(a.Key)
	return param, ok
}

// AttrWithParam returns the value stored under the exact key name[param]:
// AttrWithParam("GenericName", "es") reads the GenericName[es] attribute.
func (s *Section) AttrWithParam(name, param string) (string, bool) {
	return s.Attr(name + "[" + param + "]")
}

// LocalizedAttr resolves name against a POSIX-style locale with fallback:
// name[lang_COUNTRY], then name[lang], then the bare key. Codeset and
// modifier parts of the locale ("en_US.UTF-8@latin") are ignored.
func (s *Section) LocalizedAttr(name, locale string) (string, bool) {
	for _, probe := range localeProbes(locale) {
		if v, ok := s.AttrWithParam(name, probe); ok {
			return v, true
		}
	}
	return s.Attr(name)
}

// localeProbes expands "en_US.UTF-8@latin" into ["en_US", "en"].
func localeProbes(locale string) []string {
	if i := strings.IndexByte(locale, '@'); i >= 0 {
		locale = locale[:i]
	}
	if i := strings.IndexByte(locale, '.'); i >= 0 {
		locale = locale[:i]
	}
	if locale == "" {
		return nil
	}
	probes := []string{locale}
	if i := strings.IndexByte(locale, '_'); i >= 0 {
		probes = append(probes, locale[:i])
	}
	return probes
}
