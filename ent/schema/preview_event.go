package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PreviewEvent records one generated paper so it can be listed and
// replayed later.
type PreviewEvent struct {
	ent.Schema
}

func (PreviewEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{JournalMixin{}}
}

func (PreviewEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("preview_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("UUID handed back with the preview"),
		field.String("level").
			NotEmpty().
			Comment("Paper level, e.g. AB-3 or Custom"),
		field.String("title").
			Default("").
			Comment("Resolved paper title"),
		field.Int("question_count").
			Default(0).
			Comment("Total questions across all blocks"),
		field.JSON("config", map[string]any{}).
			Comment("Resolved paper config"),
	}
}

func (PreviewEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("level"),
	}
}
