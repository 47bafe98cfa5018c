package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TurnEvent records the outcome of one tutor turn. It is an audit record;
// conversation state is never restored from it.
type TurnEvent struct {
	ent.Schema
}

func (TurnEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TurnEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("topic").
			Default("").
			Comment("Session topic"),
		field.Int("exchange").
			Comment("Exchange count after the turn"),
		field.Bool("answered").
			Default(false).
			Comment("Whether the student answered a pending question"),
		field.Bool("correct").
			Default(false).
			Comment("Whether that answer was correct"),
		field.Bool("question").
			Default(false).
			Comment("Whether the reply carried an embedded question"),
		field.String("chart_kind").
			Default("").
			Comment("Kind of the synthesized chart, empty when none"),
		field.String("concepts").
			Default("").
			Comment("Comma-separated concept tags"),
		field.Int("scaffolding_level").
			Default(0).
			Comment("Scaffolding level after the turn"),
	}
}

func (TurnEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic"),
	}
}
