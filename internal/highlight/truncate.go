package highlight

import (
	"github.com/mattn/go-runewidth"

	"github.com/phyten/hlgrep/internal/model"
	"github.com/phyten/hlgrep/internal/textutil"
)

// Truncate cuts segs so the rendered line is at most width display columns,
// appending ellipsis as a plain segment when something was dropped.
// Emphasis of the kept text is preserved. width <= 0 means unlimited.
func Truncate(segs []model.Segment, width int, ellipsis string) []model.Segment {
	if width <= 0 {
		return segs
	}
	total := 0
	for _, seg := range segs {
		total += textutil.VisibleWidth(seg.Text)
	}
	if total <= width {
		return segs
	}
	budget := width - runewidth.StringWidth(ellipsis)
	if budget < 0 {
		budget, ellipsis = width, ""
	}
	out := make([]model.Segment, 0, len(segs)+1)
	for _, seg := range segs {
		head, used := textutil.TakeWidth(seg.Text, budget)
		if head != "" {
			out = append(out, model.Segment{Text: head, Emphasized: seg.Emphasized})
		}
		budget -= used
		if len(head) < len(seg.Text) {
			break
		}
	}
	if ellipsis != "" {
		out = append(out, model.Segment{Text: ellipsis})
	}
	return out
}
