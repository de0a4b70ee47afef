package domain

import (
	"math"
	"sort"
)

// Frequency is how often a seasonal quest recurs.
type Frequency string

const (
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyOnce     Frequency = "once"
)

// rank orders frequencies for display: weekly < biweekly < once.
func (f Frequency) rank() int {
	switch f {
	case FrequencyWeekly:
		return 0
	case FrequencyBiweekly:
		return 1
	case FrequencyOnce:
		return 2
	default:
		return 3
	}
}

// Quest is a fixed seasonal care task. The list is code-defined and not
// user-editable; completion flags are persisted separately, addressed by
// position in this list.
type Quest struct {
	Text      string    `json:"text"`
	Frequency Frequency `json:"frequency"`
}

var staticQuests = []Quest{
	{Text: "Deep-water anything planted this season", Frequency: FrequencyWeekly},
	{Text: "Feed the container plantings", Frequency: FrequencyBiweekly},
	{Text: "Overseed patchy spots in the back lawn", Frequency: FrequencyOnce},
	{Text: "Skim and top off the pond", Frequency: FrequencyWeekly},
	{Text: "Check drip lines for clogs", Frequency: FrequencyBiweekly},
	{Text: "Refresh mulch around the beds", Frequency: FrequencyOnce},
	{Text: "Deadhead spent blooms in the front beds", Frequency: FrequencyWeekly},
}

// Quests returns the static quest list. The returned slice is a copy.
func Quests() []Quest {
	return append([]Quest(nil), staticQuests...)
}

// Checklist holds per-quest completion flags positionally aligned to the
// static quest list.
type Checklist []bool

// ReconcileChecklist fits persisted flags to the current quest count:
// extra trailing flags are dropped, missing ones default to false.
func ReconcileChecklist(flags []bool, count int) Checklist {
	if count < 0 {
		count = 0
	}
	out := make(Checklist, count)
	copy(out, flags)
	return out
}

// CompletedCount is the number of flags set true.
func (c Checklist) CompletedCount() int {
	n := 0
	for _, done := range c {
		if done {
			n++
		}
	}
	return n
}

// CompletionPercent is the completed share as a rounded integer in
// [0,100]. The denominator is guarded so an empty list yields 0.
func (c Checklist) CompletionPercent() int {
	total := len(c)
	if total < 1 {
		total = 1
	}
	return int(math.Round(float64(c.CompletedCount()) / float64(total) * 100))
}

// QuestDisplayOrder returns the indices of quests sorted by frequency
// rank for rendering. The sort is stable and purely presentational:
// completion flags keep addressing the original, unsorted positions.
func QuestDisplayOrder(quests []Quest) []int {
	order := make([]int, len(quests))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return quests[order[a]].Frequency.rank() < quests[order[b]].Frequency.rank()
	})
	return order
}
