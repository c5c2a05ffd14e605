package feed

import (
	"time"

	"github.com/tidwall/btree"
)

type timelineEntry struct {
	seq uint64
	rec Recording
}

// timeline keeps recordings ordered by start time; recordings with equal
// start times keep their arrival order. Not safe for concurrent use.
type timeline struct {
	tree *btree.BTreeG[timelineEntry]
	seq  uint64
}

func newTimeline() *timeline {
	return &timeline{
		tree: btree.NewBTreeGOptions(func(a, b timelineEntry) bool {
			if !a.rec.StartTime.Equal(b.rec.StartTime) {
				return a.rec.StartTime.Before(b.rec.StartTime)
			}
			return a.seq < b.seq
		}, btree.Options{NoLocks: true}),
	}
}

func (t *timeline) add(rec Recording) {
	t.seq++
	t.tree.Set(timelineEntry{seq: t.seq, rec: rec})
}

func (t *timeline) len() int {
	return t.tree.Len()
}

func (t *timeline) all() []Recording {
	out := make([]Recording, 0, t.tree.Len())
	t.tree.Scan(func(e timelineEntry) bool {
		out = append(out, e.rec)
		return true
	})
	return out
}

// since returns recordings that started at or after ts.
func (t *timeline) since(ts time.Time) []Recording {
	var out []Recording
	t.tree.Ascend(timelineEntry{rec: Recording{StartTime: ts}}, func(e timelineEntry) bool {
		out = append(out, e.rec)
		return true
	})
	return out
}
