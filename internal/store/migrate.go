package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	entschema "github.com/abhisek/tutorcore/ent/schema"
)

// Table names.
const (
	tableLLMRequests = "llm_request_events"
	tableSanitize    = "sanitize_events"
	tableTurns       = "turn_events"
)

// entSchema is the part of an ent schema the migrator reads.
type entSchema interface {
	Fields() []ent.Field
	Indexes() []ent.Index
	Mixin() []ent.Mixin
}

type tableSpec struct {
	name   string
	schema entSchema
}

// tables maps every event table to the ent schema that defines it.
var tables = []tableSpec{
	{tableLLMRequests, entschema.LLMRequestEvent{}},
	{tableSanitize, entschema.SanitizeEvent{}},
	{tableTurns, entschema.TurnEvent{}},
}

// descriptors flattens mixin and schema fields and indexes, mixins first.
func descriptors(s entSchema) ([]*field.Descriptor, []*index.Descriptor) {
	var fields []*field.Descriptor
	var indexes []*index.Descriptor
	for _, m := range s.Mixin() {
		for _, f := range m.Fields() {
			fields = append(fields, f.Descriptor())
		}
		for _, i := range m.Indexes() {
			indexes = append(indexes, i.Descriptor())
		}
	}
	for _, f := range s.Fields() {
		fields = append(fields, f.Descriptor())
	}
	for _, i := range s.Indexes() {
		indexes = append(indexes, i.Descriptor())
	}
	return fields, indexes
}

// column converts an ent field descriptor to a migration column. Times are
// stored as unix milliseconds.
func column(d *field.Descriptor) *schema.Column {
	c := &schema.Column{
		Name:     d.Name,
		Type:     d.Info.Type,
		Size:     int64(d.Size),
		Unique:   d.Unique,
		Nullable: d.Optional,
	}
	if d.Info.Type == field.TypeTime {
		c.SchemaType = map[string]string{dialect.SQLite: "integer"}
	}
	switch v := d.Default.(type) {
	case string, bool, int, int64, float64:
		c.Default = v
	}
	return c
}

// table builds the migration table for an ent schema, with an
// autoincrement id primary key ahead of the schema fields.
func table(name string, s entSchema) *schema.Table {
	fields, indexes := descriptors(s)
	id := &schema.Column{Name: "id", Type: field.TypeInt, Increment: true}
	t := &schema.Table{
		Name:       name,
		Columns:    []*schema.Column{id},
		PrimaryKey: []*schema.Column{id},
	}
	byName := make(map[string]*schema.Column, len(fields))
	for _, f := range fields {
		c := column(f)
		byName[f.Name] = c
		t.Columns = append(t.Columns, c)
	}
	for _, ix := range indexes {
		idx := &schema.Index{
			Name:   name + "_" + strings.Join(ix.Fields, "_"),
			Unique: ix.Unique,
		}
		for _, f := range ix.Fields {
			idx.Columns = append(idx.Columns, byName[f])
		}
		t.Indexes = append(t.Indexes, idx)
	}
	return t
}

// migrate creates missing tables and indexes through ent's schema migrator.
// Columns are never dropped.
func migrate(ctx context.Context, db *sql.DB) error {
	m, err := schema.NewMigrate(entsql.OpenDB(dialect.SQLite, db))
	if err != nil {
		return fmt.Errorf("schema migrator: %w", err)
	}
	ts := make([]*schema.Table, 0, len(tables))
	for _, t := range tables {
		ts = append(ts, table(t.name, t.schema))
	}
	if err := m.Create(ctx, ts...); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// columnsOf returns the column names of a table in schema order.
func columnsOf(table string) []string {
	for _, t := range tables {
		if t.name != table {
			continue
		}
		fields, _ := descriptors(t.schema)
		out := make([]string, 0, len(fields)+1)
		out = append(out, "id")
		for _, f := range fields {
			out = append(out, f.Name)
		}
		return out
	}
	return nil
}
