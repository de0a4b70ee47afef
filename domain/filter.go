package domain

import "strings"

// FilterZones computes the visible subset of the top-level collection.
// A zone is included when it passes both the area test (AreaAll or an
// exact match) and the text test (empty query, or a case-insensitive
// substring of name, type, tags and sun). Order is preserved.
//
// Subzones are intentionally never matched on their own: a subzone whose
// fields match the query is only visible nested under a matching parent.
func FilterZones(zones []Zone, area Area, query string) []Zone {
	q := strings.ToLower(query)
	out := make([]Zone, 0, len(zones))
	for _, z := range zones {
		if area != AreaAll && z.Area != area {
			continue
		}
		if q != "" && !strings.Contains(searchText(z), q) {
			continue
		}
		out = append(out, z)
	}
	return out
}

func searchText(z Zone) string {
	var b strings.Builder
	b.WriteString(z.Name)
	b.WriteByte(' ')
	b.WriteString(z.Type)
	for _, t := range z.Tags {
		b.WriteByte(' ')
		b.WriteString(t)
	}
	b.WriteByte(' ')
	b.WriteString(z.Sun)
	return strings.ToLower(b.String())
}
