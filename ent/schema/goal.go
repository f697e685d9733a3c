package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Goal is a user-defined study target evaluated against report history.
// current_value and status are derived columns owned by the progress
// tracker; everything else is fixed at creation.
type Goal struct {
	ent.Schema
}

func (Goal) Fields() []ent.Field {
	return []ent.Field{
		field.String("goal_id").
			Unique().
			Immutable(),
		field.String("description").
			NotEmpty(),
		field.String("type").
			Immutable().
			Comment("completion or improvement"),
		field.String("subject").
			Immutable().
			Comment("Subject filter; empty or 'all' matches every report"),
		field.Float("target_value").
			Immutable().
			Comment("Report count (completion) or score delta (improvement)"),
		field.Float("current_value").
			Default(0),
		field.String("timeframe").
			Immutable().
			Comment("week or month"),
		field.Time("start_date").
			Default(time.Now).
			Immutable(),
		field.String("status").
			Default("active").
			Comment("active or completed; never reverts once completed"),
	}
}

func (Goal) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("goal_id"),
		index.Fields("status"),
	}
}
