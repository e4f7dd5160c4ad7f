package store

import (
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"

	entschema "github.com/abhisek/mathpaper/ent/schema"
)

const previewTable = "preview_events"

// tables are the migrated tables, built from the ent schema definitions.
var tables = []*schema.Table{
	tableOf(previewTable, entschema.PreviewEvent{}),
}

// tableOf turns an ent schema into a migration table: an auto-increment
// id, then the mixin fields, then the schema's own fields.
func tableOf(name string, s ent.Interface) *schema.Table {
	t := schema.NewTable(name).
		AddPrimary(&schema.Column{Name: "id", Type: field.TypeInt, Increment: true})

	var (
		fields  []ent.Field
		indexes []ent.Index
	)
	for _, m := range s.Mixin() {
		fields = append(fields, m.Fields()...)
		indexes = append(indexes, m.Indexes()...)
	}
	fields = append(fields, s.Fields()...)
	indexes = append(indexes, s.Indexes()...)

	for _, f := range fields {
		d := f.Descriptor()
		t.AddColumn(&schema.Column{
			Name:     d.Name,
			Type:     d.Info.Type,
			Unique:   d.Unique,
			Nullable: d.Optional || d.Nillable,
		})
	}
	for _, idx := range indexes {
		d := idx.Descriptor()
		t.AddIndex(indexName(name, d.Fields, d.Unique), d.Unique, d.Fields)
	}
	return t
}

func indexName(table string, columns []string, unique bool) string {
	prefix := "idx"
	if unique {
		prefix = "uidx"
	}
	return prefix + "_" + table + "_" + strings.Join(columns, "_")
}
