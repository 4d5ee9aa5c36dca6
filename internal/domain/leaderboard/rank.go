package leaderboard

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Rank is a competition rank. Tied marks an entry that shares its metric with an
// earlier entry and renders as "T-<n>".
type Rank struct {
	Position int
	Tied     bool
}

func (r Rank) String() string {
	if r.Tied {
		return "T-" + strconv.Itoa(r.Position)
	}
	return strconv.Itoa(r.Position)
}

func (r Rank) MarshalJSON() ([]byte, error) {
	if r.Tied {
		return []byte(strconv.Quote(r.String())), nil
	}
	return []byte(strconv.Itoa(r.Position)), nil
}

func (r *Rank) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" || raw == "" {
		*r = Rank{}
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		unquoted, err := strconv.Unquote(raw)
		if err != nil {
			return fmt.Errorf("decode rank %s: %w", raw, err)
		}
		parsed, err := ParseRank(unquoted)
		if err != nil {
			return err
		}
		*r = parsed
		return nil
	}

	position, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("decode rank %s: %w", raw, err)
	}
	*r = Rank{Position: position}
	return nil
}

// ParseRank accepts "3" or "T-3".
func ParseRank(value string) (Rank, error) {
	value = strings.TrimSpace(value)
	tied := strings.HasPrefix(value, "T-")
	position, err := strconv.Atoi(strings.TrimPrefix(value, "T-"))
	if err != nil {
		return Rank{}, fmt.Errorf("parse rank %q: %w", value, err)
	}
	return Rank{Position: position, Tied: tied}, nil
}

// Dedupe keeps the first entry for every player.
func Dedupe(entries []Entry) []Entry {
	seen := make(map[int64]struct{}, len(entries))
	out := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if _, ok := seen[entry.PlayerID]; ok {
			continue
		}
		seen[entry.PlayerID] = struct{}{}
		out = append(out, entry)
	}
	return out
}

// AssignRanks sorts by home runs descending, keeping upstream order for equal
// values, and assigns competition ranks. The input slice is not modified.
func AssignRanks(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool { return out[i].HomeRuns > out[j].HomeRuns })

	firstIndex := make(map[int]int, len(out))
	rank := 1
	for i := range out {
		hr := out[i].HomeRuns
		if i > 0 && hr != out[i-1].HomeRuns {
			rank = i + 1
		}
		if _, ok := firstIndex[hr]; !ok {
			firstIndex[hr] = i
		}
		out[i].Rank = Rank{Position: rank, Tied: firstIndex[hr] < i}
	}
	return out
}
