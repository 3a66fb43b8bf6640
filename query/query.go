// Package query manages the persistence and retrieval of REPL statement history and suggestions.
package query

import (
	"cmp"
	"strings"

	"github.com/lifo-cli/lifo/filesystem"
	"github.com/lifo-cli/lifo/key"
	"github.com/lifo-cli/lifo/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

type queryRecord struct {
	Rank  int    `json:"rank"`
	Query string `json:"query"`
}

var cacher = gache.New[map[string]*queryRecord](
	&gache.Options{
		Path:       where.Queries(),
		FileSystem: &filesystem.GacheFs{},
	},
)

var suggestionCache = make(map[string][]*queryRecord)

// Remember records a statement in the persistent history or increments its rank.
// The history keeps at most repl.history_size entries, evicting the lowest ranked ones.
func Remember(q string) error {
	q = sanitize(q)
	if q == "" {
		return nil
	}

	cached, expired, err := cacher.Get()
	if expired || err != nil || cached == nil {
		cached = make(map[string]*queryRecord)
	}

	if record, ok := cached[q]; ok {
		record.Rank++
	} else {
		cached[q] = &queryRecord{Rank: 1, Query: q}
	}

	if limit := viper.GetInt(key.REPLHistorySize); limit > 0 && len(cached) > limit {
		records := ranked(lo.Values(cached))
		for _, r := range records[limit:] {
			delete(cached, r.Query)
		}
	}

	clear(suggestionCache)
	return cacher.Set(cached)
}

// Suggest returns the highest ranked statement that completes q.
func Suggest(q string) mo.Option[string] {
	suggestions := SuggestMany(q)
	if len(suggestions) == 0 {
		return mo.None[string]()
	}
	return mo.Some(suggestions[0])
}

// SuggestMany returns remembered statements fuzzily matching q, highest rank first.
// Statements equal to q are left out.
func SuggestMany(q string) []string {
	if !viper.GetBool(key.REPLShowSuggestions) {
		return []string{}
	}

	q = sanitize(q)
	if q == "" {
		return []string{}
	}

	records, ok := suggestionCache[q]
	if !ok {
		cached, expired, err := cacher.Get()
		if err != nil || expired || cached == nil {
			return []string{}
		}

		records = ranked(lo.Filter(lo.Values(cached), func(r *queryRecord, _ int) bool {
			return r.Query != q && fuzzy.Match(q, r.Query)
		}))
		suggestionCache[q] = records
	}

	return lo.Map(records, func(r *queryRecord, _ int) string {
		return r.Query
	})
}

// ranked sorts records by descending rank, then alphabetically.
func ranked(records []*queryRecord) []*queryRecord {
	slices.SortFunc(records, func(a, b *queryRecord) int {
		if c := cmp.Compare(b.Rank, a.Rank); c != 0 {
			return c
		}
		return strings.Compare(a.Query, b.Query)
	})
	return records
}

func sanitize(q string) string {
	return strings.Join(strings.Fields(q), " ")
}
