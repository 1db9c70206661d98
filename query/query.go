// Package query remembers schedule filter keywords and suggests them back.
package query

import (
	"strings"

	"github.com/lectern-cli/lectern/filesystem"
	"github.com/lectern-cli/lectern/key"
	"github.com/lectern-cli/lectern/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

type keywordRecord struct {
	Rank    int    `json:"rank"`
	Keyword string `json:"keyword"`
}

var cacher = gache.New[map[string]*keywordRecord](
	&gache.Options{
		Path:       where.Queries(),
		FileSystem: &filesystem.GacheFs{},
	},
)

var suggestionCache = make(map[string][]*keywordRecord)

// Remember records a filter keyword in the persistent history or bumps its rank.
// Blank keywords are not worth remembering and are dropped silently.
func Remember(keyword string, weight int) error {
	keyword = sanitize(keyword)
	if keyword == "" {
		return nil
	}

	cached, expired, err := cacher.Get()
	if expired || err != nil || cached == nil {
		cached = make(map[string]*keywordRecord)
	}

	if record, ok := cached[keyword]; ok {
		record.Rank += weight
	} else {
		cached[keyword] = &keywordRecord{Rank: weight, Keyword: keyword}
	}

	return cacher.Set(cached)
}

// Suggest returns the most relevant remembered keyword for a partial input.
func Suggest(keyword string) mo.Option[string] {
	suggestions := SuggestMany(keyword)
	if len(suggestions) == 0 {
		return mo.None[string]()
	}
	return mo.Some(suggestions[0])
}

// SuggestMany returns remembered keywords matching the partial input, most used first.
func SuggestMany(keyword string) []string {
	if !viper.GetBool(key.SearchShowQuerySuggestions) {
		return []string{}
	}

	keyword = sanitize(keyword)
	var records []*keywordRecord

	if prev, ok := suggestionCache[keyword]; ok {
		records = prev
	} else {
		cached, expired, err := cacher.Get()
		if err != nil || expired || cached == nil {
			return []string{}
		}

		for _, record := range cached {
			if fuzzy.Match(keyword, record.Keyword) {
				records = append(records, record)
			}
		}

		slices.SortFunc(records, func(a, b *keywordRecord) int {
			return b.Rank - a.Rank // Descending rank
		})

		suggestionCache[keyword] = records
	}

	return lo.Map(records, func(r *keywordRecord, _ int) string {
		return r.Keyword
	})
}

func sanitize(keyword string) string {
	return strings.TrimSpace(strings.ToLower(keyword))
}
