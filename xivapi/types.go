package xivapi

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Language is a locale code supported by XIVAPI
type Language string

const (
	// LangEnglish is the English locale
	LangEnglish Language = "en"
	// LangFrench is the French locale
	LangFrench Language = "fr"
	// LangGerman is the German locale
	LangGerman Language = "de"
	// LangJapanese is the Japanese locale
	LangJapanese Language = "ja"
)

// Valid reports whether the language is one of the supported locale codes
func (l Language) Valid() bool {
	switch l {
	case LangEnglish, LangFrench, LangGerman, LangJapanese:
		return true
	}
	return false
}

// orDefault resolves the zero value to English, the documented default.
func (l Language) orDefault() Language {
	if l == "" {
		return LangEnglish
	}
	return l
}

func validateLanguage(l Language) (Language, error) {
	resolved := l.orDefault()
	if !resolved.Valid() {
		return "", newValidationError("language", fmt.Sprintf("%q is not a supported language code", string(l)))
	}
	return resolved, nil
}

// StringAlgo selects the server-side string matching algorithm for searches
type StringAlgo string

const (
	AlgoCustom            StringAlgo = "custom"
	AlgoWildcard          StringAlgo = "wildcard"
	AlgoWildcardPlus      StringAlgo = "wildcard_plus"
	AlgoFuzzy             StringAlgo = "fuzzy"
	AlgoTerm              StringAlgo = "term"
	AlgoPrefix            StringAlgo = "prefix"
	AlgoMatch             StringAlgo = "match"
	AlgoMatchPhrase       StringAlgo = "match_phrase"
	AlgoMatchPhrasePrefix StringAlgo = "match_phrase_prefix"
	AlgoMultiMatch        StringAlgo = "multi_match"
	AlgoQueryString       StringAlgo = "query_string"
)

// Valid reports whether the algorithm is one XIVAPI supports
func (a StringAlgo) Valid() bool {
	switch a {
	case AlgoCustom, AlgoWildcard, AlgoWildcardPlus, AlgoFuzzy, AlgoTerm,
		AlgoPrefix, AlgoMatch, AlgoMatchPhrase, AlgoMatchPhrasePrefix,
		AlgoMultiMatch, AlgoQueryString:
		return true
	}
	return false
}

// Comparison is a filter comparison operator
type Comparison string

const (
	ComparisonGT  Comparison = "gt"
	ComparisonGTE Comparison = "gte"
	ComparisonLT  Comparison = "lt"
	ComparisonLTE Comparison = "lte"
)

// symbol returns the operator as it appears in the filters query parameter.
func (c Comparison) symbol() string {
	switch c {
	case ComparisonGT:
		return ">"
	case ComparisonGTE:
		return ">="
	case ComparisonLT:
		return "<"
	case ComparisonLTE:
		return "<="
	}
	return ""
}

// Filter is a single server-side column filter, e.g. LevelItem >= 100
type Filter struct {
	Field      string
	Comparison Comparison
	Value      int64
}

// String serializes the filter into its query-parameter form, e.g. "LevelItem>=100"
func (f Filter) String() string {
	return f.Field + f.Comparison.symbol() + strconv.FormatInt(f.Value, 10)
}

func (f Filter) validate() error {
	if f.Field == "" {
		return newValidationError("filter", "filter field must not be empty")
	}
	if f.Comparison.symbol() == "" {
		return newValidationError("filter", fmt.Sprintf("%q is not a valid filter comparison", string(f.Comparison)))
	}
	return nil
}

// FormatFilters serializes filters into the semicolon-joined query value,
// preserving order. The result round-trips through ParseFilters.
func FormatFilters(filters []Filter) string {
	if len(filters) == 0 {
		return ""
	}
	parts := make([]string, 0, len(filters))
	for _, f := range filters {
		parts = append(parts, f.String())
	}
	return strings.Join(parts, ";")
}

// ParseFilters parses a semicolon-joined filter string such as
// "LevelItem>=50;LevelItem<=100" back into filters, preserving order.
func ParseFilters(s string) ([]Filter, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	// Longest operators first so ">=" is not parsed as ">".
	operators := []struct {
		symbol     string
		comparison Comparison
	}{
		{">=", ComparisonGTE},
		{"<=", ComparisonLTE},
		{">", ComparisonGT},
		{"<", ComparisonLT},
	}

	var filters []Filter
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		var parsed *Filter
		for _, op := range operators {
			idx := strings.Index(part, op.symbol)
			if idx <= 0 {
				continue
			}
			field := strings.TrimSpace(part[:idx])
			rawValue := strings.TrimSpace(part[idx+len(op.symbol):])
			value, err := strconv.ParseInt(rawValue, 10, 64)
			if err != nil {
				return nil, newValidationError("filter", fmt.Sprintf("%q is not a numeric filter value", rawValue))
			}
			parsed = &Filter{Field: field, Comparison: op.comparison, Value: value}
			break
		}

		if parsed == nil {
			return nil, newValidationError("filter", fmt.Sprintf("%q is not a valid filter expression", part))
		}
		filters = append(filters, *parsed)
	}

	return filters, nil
}

// Sort names the column to sort search results on
type Sort struct {
	Field     string
	Ascending bool
}

// Pagination describes the paging state of a search response
type Pagination struct {
	Page           int `json:"Page"`
	PageNext       int `json:"PageNext"`
	PagePrev       int `json:"PagePrev"`
	PageTotal      int `json:"PageTotal"`
	Results        int `json:"Results"`
	ResultsPerPage int `json:"ResultsPerPage"`
	ResultsTotal   int `json:"ResultsTotal"`
}

// Row is a single result record. Column selection varies per request, so
// rows are returned as decoded JSON objects rather than fixed structs.
type Row map[string]any

// SearchPage is the common shape of paginated search responses
type SearchPage struct {
	Pagination Pagination `json:"Pagination"`
	Results    []Row      `json:"Results"`
}

// CharacterOptions configures a CharacterByID request. Each Include flag
// requests an extra embedded document from the API.
type CharacterOptions struct {
	// Extended requests the extended character document
	Extended bool
	// IncludeAchievements adds the AC data set
	IncludeAchievements bool
	// IncludeMinionsMounts adds the MIMO data set
	IncludeMinionsMounts bool
	// IncludeFriends adds the FR data set
	IncludeFriends bool
	// IncludeClassJobs adds the CJ data set
	IncludeClassJobs bool
	// IncludeFreeCompany adds the FC data set
	IncludeFreeCompany bool
	// IncludeFreeCompanyMembers adds the FCM data set
	IncludeFreeCompanyMembers bool
	// IncludePvPTeam adds the PVP data set
	IncludePvPTeam bool
	// Language selects the response locale, defaulting to English
	Language Language
}

// data builds the data= CSV value. The set order is fixed so request
// parameters stay a deterministic function of the options.
func (o CharacterOptions) data() string {
	var sets []string
	if o.IncludeAchievements {
		sets = append(sets, "AC")
	}
	if o.IncludeMinionsMounts {
		sets = append(sets, "MIMO")
	}
	if o.IncludeFriends {
		sets = append(sets, "FR")
	}
	if o.IncludeClassJobs {
		sets = append(sets, "CJ")
	}
	if o.IncludeFreeCompany {
		sets = append(sets, "FC")
	}
	if o.IncludeFreeCompanyMembers {
		sets = append(sets, "FCM")
	}
	if o.IncludePvPTeam {
		sets = append(sets, "PVP")
	}
	return strings.Join(sets, ",")
}

// FreeCompanyOptions configures a FreeCompanyByID request
type FreeCompanyOptions struct {
	Extended bool
	// IncludeMembers adds the FCM data set
	IncludeMembers bool
}

// CharacterResult is the response of a character lookup. Embedded documents
// are returned as raw JSON so callers decode only what they asked for.
type CharacterResult struct {
	Character          json.RawMessage `json:"Character"`
	Achievements       json.RawMessage `json:"Achievements,omitempty"`
	FreeCompany        json.RawMessage `json:"FreeCompany,omitempty"`
	FreeCompanyMembers json.RawMessage `json:"FreeCompanyMembers,omitempty"`
	Friends            json.RawMessage `json:"Friends,omitempty"`
	Minions            json.RawMessage `json:"Minions,omitempty"`
	Mounts             json.RawMessage `json:"Mounts,omitempty"`
	PvPTeam            json.RawMessage `json:"PvPTeam,omitempty"`
	Info               json.RawMessage `json:"Info,omitempty"`
}

// FreeCompanyResult is the response of a free company lookup
type FreeCompanyResult struct {
	FreeCompany        json.RawMessage `json:"FreeCompany"`
	FreeCompanyMembers json.RawMessage `json:"FreeCompanyMembers,omitempty"`
	Info               json.RawMessage `json:"Info,omitempty"`
}

// LinkshellResult is the response of a linkshell lookup
type LinkshellResult struct {
	Linkshell json.RawMessage `json:"Linkshell"`
	Info      json.RawMessage `json:"Info,omitempty"`
}

// PvPTeamResult is the response of a PvP team lookup
type PvPTeamResult struct {
	PvPTeam json.RawMessage `json:"PvPTeam"`
	Info    json.RawMessage `json:"Info,omitempty"`
}

// SearchOptions configures an IndexSearch request
type SearchOptions struct {
	// Columns to return; the API applies its defaults when empty
	Columns []string
	// Filters are serialized into the semicolon-joined filters parameter
	Filters []Filter
	// Sort names the column to sort on
	Sort *Sort
	// StringAlgo selects the matching algorithm; empty leaves the server default
	StringAlgo StringAlgo
	// Language selects the response locale, defaulting to English
	Language Language
	// Page of results to return; zero requests the first page
	Page int
	// Limit caps results per page; zero leaves the server default
	Limit int
}

// ContentOptions configures an IndexByID request
type ContentOptions struct {
	Columns  []string
	Language Language
}
