package entity

import (
	"sort"
	"strings"
)

// FilterAll disables a dropdown filter
const FilterAll = "all"

// TransactionFilter is the client-side filter on the transactions page
type TransactionFilter struct {
	Search string
	Type   string
	Status string
}

func matchesOption(value, option string) bool {
	return option == "" || option == FilterAll || strings.EqualFold(value, option)
}

// Matches reports whether tx passes the filter
func (f TransactionFilter) Matches(tx Transaction) bool {
	if !matchesOption(tx.Type, f.Type) || !matchesOption(tx.Status, f.Status) {
		return false
	}

	term := strings.ToLower(strings.TrimSpace(f.Search))
	if term == "" {
		return true
	}
	for _, field := range []string{tx.ID, tx.Type, tx.Description} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// Apply returns the matching transactions, newest first
func (f TransactionFilter) Apply(txs []Transaction) []Transaction {
	out := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		if f.Matches(tx) {
			out = append(out, tx)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// DistinctValues lists the distinct values of a field for dropdown options
func DistinctValues(txs []Transaction, field func(Transaction) string) []string {
	seen := make(map[string]struct{})
	var values []string
	for _, tx := range txs {
		v := field(tx)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
