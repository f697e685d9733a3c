package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Profile is the single local user profile. Exactly one row exists.
type Profile struct {
	ent.Schema
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Default("Learner"),
		field.String("detail_level").
			Default("full").
			Comment("Preferred feedback detail: full or summary"),
		field.JSON("badge_ids", []string{}).
			Optional().
			Comment("Earned achievement ids; grows monotonically, never pruned"),
	}
}
