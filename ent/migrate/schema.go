// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// GoalsColumns holds the columns for the "goals" table.
	GoalsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "goal_id", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString},
		{Name: "type", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "target_value", Type: field.TypeFloat64},
		{Name: "current_value", Type: field.TypeFloat64, Default: 0},
		{Name: "timeframe", Type: field.TypeString},
		{Name: "start_date", Type: field.TypeTime},
		{Name: "status", Type: field.TypeString, Default: "active"},
	}
	// GoalsTable holds the schema information for the "goals" table.
	GoalsTable = &schema.Table{
		Name:       "goals",
		Columns:    GoalsColumns,
		PrimaryKey: []*schema.Column{GoalsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "goal_goal_id",
				Unique:  false,
				Columns: []*schema.Column{GoalsColumns[1]},
			},
			{
				Name:    "goal_status",
				Unique:  false,
				Columns: []*schema.Column{GoalsColumns[9]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "request_body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "response_body", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[4]},
			},
		},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Default: "Learner"},
		{Name: "detail_level", Type: field.TypeString, Default: "full"},
		{Name: "badge_ids", Type: field.TypeJSON, Nullable: true},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
	}
	// ReportsColumns holds the columns for the "reports" table.
	ReportsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "report_id", Type: field.TypeString, Unique: true},
		{Name: "subject", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "total_marks", Type: field.TypeInt},
		{Name: "marks_scored", Type: field.TypeInt},
		{Name: "total_questions", Type: field.TypeInt},
		{Name: "correct_answers", Type: field.TypeInt},
		{Name: "time_taken_secs", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "weak_areas", Type: field.TypeJSON, Nullable: true},
		{Name: "answers", Type: field.TypeJSON, Nullable: true},
		{Name: "questions", Type: field.TypeJSON, Nullable: true},
		{Name: "detail_level", Type: field.TypeString, Default: "summary"},
	}
	// ReportsTable holds the schema information for the "reports" table.
	ReportsTable = &schema.Table{
		Name:       "reports",
		Columns:    ReportsColumns,
		PrimaryKey: []*schema.Column{ReportsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "report_report_id",
				Unique:  false,
				Columns: []*schema.Column{ReportsColumns[1]},
			},
			{
				Name:    "report_subject",
				Unique:  false,
				Columns: []*schema.Column{ReportsColumns[2]},
			},
			{
				Name:    "report_created_at",
				Unique:  false,
				Columns: []*schema.Column{ReportsColumns[10]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		GoalsTable,
		LlmRequestEventsTable,
		ProfilesTable,
		ReportsTable,
	}
)

func init() {
}
