package assembler

import "uikit/internal/descriptor"

// MemberGroup is one category bucket of a member table. Category is empty
// for the implicit uncategorized group.
type MemberGroup struct {
	Category string
	Members  []descriptor.Member
}

// GroupByCategory partitions members by their category label.
//
// Group order is the first-appearance order of each distinct category across
// the member sequence, not alphabetical, so a curated "Behavior before
// Appearance" narrative survives grouping. Members without a category form a
// single unlabeled group emitted after all labeled groups. Member order
// within a group follows the input sequence.
func GroupByCategory(members []descriptor.Member) []MemberGroup {
	var groups []MemberGroup
	index := make(map[string]int)
	var uncategorized []descriptor.Member

	for _, m := range members {
		if m.Category == "" {
			uncategorized = append(uncategorized, m)
			continue
		}
		i, ok := index[m.Category]
		if !ok {
			i = len(groups)
			index[m.Category] = i
			groups = append(groups, MemberGroup{Category: m.Category})
		}
		groups[i].Members = append(groups[i].Members, m)
	}

	if len(uncategorized) > 0 {
		groups = append(groups, MemberGroup{Members: uncategorized})
	}
	return groups
}
