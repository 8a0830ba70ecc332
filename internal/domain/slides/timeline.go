package slides

import "github.com/fredcamaral/termdeck/internal/domain/entities"

// Timeline is the ordered sequence of slides assembled during authoring.
// It is immutable during playback.
type Timeline struct {
	slides []Slide
}

// Slides returns the slides in playback order.
func (t *Timeline) Slides() []Slide { return t.slides }

// Len returns the number of slides in the timeline.
func (t *Timeline) Len() int { return len(t.slides) }

// TimelineBuilder assembles a Timeline during the authoring phase. The
// builder is append-only; the single exception is the synthesized title
// chapter, which Build relocates to index 0 after all authoring is done.
type TimelineBuilder struct {
	slides []Slide
	meta   entities.Metadata
}

// NewTimelineBuilder creates an empty timeline builder.
func NewTimelineBuilder() *TimelineBuilder {
	return &TimelineBuilder{}
}

// Add appends a slide in authoring declaration order.
func (b *TimelineBuilder) Add(s Slide) {
	b.slides = append(b.slides, s)
}

// SetMetadata records the presentation metadata. When the metadata has a
// title, Build synthesizes a leading chapter slide from it.
func (b *TimelineBuilder) SetMetadata(m entities.Metadata) {
	b.meta = m
}

// Len returns the number of slides added so far.
func (b *TimelineBuilder) Len() int { return len(b.slides) }

// Build produces the final timeline. A synthesized title chapter, if
// any, is placed at index 0 regardless of how many slides were declared
// before it.
func (b *TimelineBuilder) Build() *Timeline {
	out := make([]Slide, 0, len(b.slides)+1)

	if b.meta.HasTitle() {
		title := NewChapter()
		title.SetTransition(b.meta.DefaultTransition)
		title.Append(b.meta.TitleLines()...)
		out = append(out, title)
	}

	out = append(out, b.slides...)
	return &Timeline{slides: out}
}
