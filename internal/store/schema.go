package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const llmEventsTable = "llm_request_events"

var llmEventsColumns = []*schema.Column{
	{Name: "id", Type: field.TypeInt64, Increment: true},
	{Name: "timestamp", Type: field.TypeTime},
	{Name: "request_id", Type: field.TypeString, Default: ""},
	{Name: "provider", Type: field.TypeString},
	{Name: "model", Type: field.TypeString},
	{Name: "purpose", Type: field.TypeString},
	{Name: "input_tokens", Type: field.TypeInt, Default: 0},
	{Name: "output_tokens", Type: field.TypeInt, Default: 0},
	{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
	{Name: "success", Type: field.TypeBool},
	{Name: "error_message", Type: field.TypeString, Size: 2147483647, Default: ""},
	{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
}

// LLMEventsTable is the completion audit log.
var LLMEventsTable = &schema.Table{
	Name:       llmEventsTable,
	Columns:    llmEventsColumns,
	PrimaryKey: []*schema.Column{llmEventsColumns[0]},
	Indexes: []*schema.Index{
		{Name: "llmrequestevent_timestamp", Columns: []*schema.Column{llmEventsColumns[1]}},
		{Name: "llmrequestevent_purpose", Columns: []*schema.Column{llmEventsColumns[5]}},
	},
}

// Tables lists every table Open migrates.
var Tables = []*schema.Table{
	LLMEventsTable,
}
