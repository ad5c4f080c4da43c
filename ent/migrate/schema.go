// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptsColumns holds the columns for the "attempts" table.
	AttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "exercise_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "answer", Type: field.TypeString},
		{Name: "is_correct", Type: field.TypeBool},
		{Name: "error_kind", Type: field.TypeString, Default: ""},
		{Name: "feedback_text", Type: field.TypeString, Default: ""},
		{Name: "elapsed_ms", Type: field.TypeInt64, Default: 0},
		{Name: "submitted_at", Type: field.TypeTime},
	}
	// AttemptsTable holds the schema information for the "attempts" table.
	AttemptsTable = &schema.Table{
		Name:       "attempts",
		Columns:    AttemptsColumns,
		PrimaryKey: []*schema.Column{AttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attempt_user_id_submitted_at",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[2], AttemptsColumns[8]},
			},
			{
				Name:    "attempt_exercise_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[1]},
			},
		},
	}
	// ExercisesColumns holds the columns for the "exercises" table.
	ExercisesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "verb", Type: field.TypeString},
		{Name: "tense", Type: field.TypeString},
		{Name: "person", Type: field.TypeString},
		{Name: "trigger_phrase", Type: field.TypeString},
		{Name: "prompt", Type: field.TypeString},
		{Name: "answer", Type: field.TypeString},
		{Name: "alternates", Type: field.TypeJSON, Nullable: true},
		{Name: "rule_note", Type: field.TypeString, Default: ""},
		{Name: "difficulty", Type: field.TypeInt},
		{Name: "hints", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ExercisesTable holds the schema information for the "exercises" table.
	ExercisesTable = &schema.Table{
		Name:       "exercises",
		Columns:    ExercisesColumns,
		PrimaryKey: []*schema.Column{ExercisesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "exercise_verb",
				Unique:  false,
				Columns: []*schema.Column{ExercisesColumns[1]},
			},
			{
				Name:    "exercise_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExercisesColumns[11]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "estimated_cost", Type: field.TypeFloat64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "timestamp", Type: field.TypeTime},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[10]},
			},
		},
	}
	// MasteryRecordsColumns holds the columns for the "mastery_records" table.
	MasteryRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "verb", Type: field.TypeString},
		{Name: "consecutive_correct", Type: field.TypeInt, Default: 0},
		{Name: "total_attempts", Type: field.TypeInt, Default: 0},
		{Name: "correct_count", Type: field.TypeInt, Default: 0},
		{Name: "interval_ns", Type: field.TypeInt64, Default: 0},
		{Name: "next_review", Type: field.TypeTime},
		{Name: "last_outcome", Type: field.TypeString, Default: ""},
		{Name: "last_practiced", Type: field.TypeTime},
	}
	// MasteryRecordsTable holds the schema information for the "mastery_records" table.
	MasteryRecordsTable = &schema.Table{
		Name:       "mastery_records",
		Columns:    MasteryRecordsColumns,
		PrimaryKey: []*schema.Column{MasteryRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "masteryrecord_user_id_verb",
				Unique:  true,
				Columns: []*schema.Column{MasteryRecordsColumns[1], MasteryRecordsColumns[2]},
			},
			{
				Name:    "masteryrecord_user_id_next_review",
				Unique:  false,
				Columns: []*schema.Column{MasteryRecordsColumns[1], MasteryRecordsColumns[7]},
			},
		},
	}
	// VerbsColumns holds the columns for the "verbs" table.
	VerbsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "infinitive", Type: field.TypeString, Unique: true},
		{Name: "english", Type: field.TypeString, Default: ""},
		{Name: "class", Type: field.TypeString},
		{Name: "stem_change", Type: field.TypeString, Default: "none"},
	}
	// VerbsTable holds the schema information for the "verbs" table.
	VerbsTable = &schema.Table{
		Name:       "verbs",
		Columns:    VerbsColumns,
		PrimaryKey: []*schema.Column{VerbsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptsTable,
		ExercisesTable,
		LlmRequestEventsTable,
		MasteryRecordsTable,
		VerbsTable,
	}
)

func init() {
}
