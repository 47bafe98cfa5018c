package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SanitizeEvent records a material repair of model text, for offline
// monitoring of output quality.
type SanitizeEvent struct {
	ent.Schema
}

func (SanitizeEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SanitizeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("stage").
			Comment("Pipeline position: pre, post"),
		field.String("rules").
			Comment("Comma-separated labels of the rules that fired"),
		field.Int("input_len").
			Comment("Byte length before repair"),
		field.Int("output_len").
			Comment("Byte length after repair"),
		field.Text("sample").
			Default("").
			Comment("Leading excerpt of the unrepaired text"),
	}
}

func (SanitizeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("stage"),
	}
}
