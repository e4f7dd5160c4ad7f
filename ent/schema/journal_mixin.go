package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// JournalMixin holds what every journal entry needs to be ordered and
// replayed: its place in the journal, when it was written, and the seed
// and engine version that reproduce its questions.
type JournalMixin struct {
	mixin.Schema
}

func (JournalMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Unique().
			Immutable().
			Comment("Journal order, handed out by the global_sequence counter"),
		field.Time("timestamp").
			Default(func() time.Time { return time.Now().UTC() }).
			Immutable().
			Comment("UTC time the paper was generated"),
		field.Int64("seed").
			Immutable().
			Comment("Seed the paper was generated with"),
		field.String("engine_version").
			NotEmpty().
			Immutable().
			Comment("Question engine version; replay warns on a major mismatch"),
	}
}

func (JournalMixin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
	}
}
