// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ConfigItemsColumns holds the columns for the "config_items" table.
	ConfigItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeJSON},
		{Name: "value_type", Type: field.TypeEnum, Enums: []string{"string", "int", "float", "bool", "structured"}, Default: "structured"},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ConfigItemsTable holds the schema information for the "config_items" table.
	ConfigItemsTable = &schema.Table{
		Name:       "config_items",
		Columns:    ConfigItemsColumns,
		PrimaryKey: []*schema.Column{ConfigItemsColumns[0]},
	}
	// IngestRecordsColumns holds the columns for the "ingest_records" table.
	IngestRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "remote_name", Type: field.TypeString, Unique: true},
		{Name: "size", Type: field.TypeInt64, Default: 0},
		{Name: "modified_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"new", "queued", "ignored", "superseded"}, Default: "new"},
		{Name: "job_id", Type: field.TypeInt, Nullable: true},
		{Name: "first_seen", Type: field.TypeTime},
		{Name: "last_seen", Type: field.TypeTime},
	}
	// IngestRecordsTable holds the schema information for the "ingest_records" table.
	IngestRecordsTable = &schema.Table{
		Name:       "ingest_records",
		Columns:    IngestRecordsColumns,
		PrimaryKey: []*schema.Column{IngestRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "ingestrecord_status",
				Unique:  false,
				Columns: []*schema.Column{IngestRecordsColumns[4]},
			},
		},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "transcript_file", Type: field.TypeString},
		{Name: "project_name", Type: field.TypeString},
		{Name: "project_path", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "investigating", "completed", "failed", "cancelled", "paused"}, Default: "pending"},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "max_retries", Type: field.TypeInt, Default: 3},
		{Name: "queued_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_heartbeat", Type: field.TypeTime, Nullable: true},
		{Name: "worker_id", Type: field.TypeString, Nullable: true},
		{Name: "estimated_cost", Type: field.TypeFloat64, Default: 0},
		{Name: "actual_cost", Type: field.TypeFloat64, Default: 0},
		{Name: "current_phase_index", Type: field.TypeInt, Default: 0},
		{Name: "recovery_attempts", Type: field.TypeInt, Default: 0},
		{Name: "media_id", Type: field.TypeString, Nullable: true},
		{Name: "sst_record_id", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "error_timestamp", Type: field.TypeTime, Nullable: true},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "job_status",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[4]},
			},
			{
				Name:    "job_transcript_file",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[1]},
			},
			{
				Name:    "job_status_priority_queued_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[4], JobsColumns[5], JobsColumns[8]},
			},
			{
				Name:    "job_status_last_heartbeat",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[4], JobsColumns[11]},
			},
		},
	}
	// JobPhasesColumns holds the columns for the "job_phases" table.
	JobPhasesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeEnum, Enums: []string{"analyst", "formatter", "seo", "manager", "timestamp", "investigation", "copy_editor"}},
		{Name: "phase_index", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "completed", "failed", "skipped"}, Default: "pending"},
		{Name: "tier_index", Type: field.TypeInt, Default: 0},
		{Name: "tier_label", Type: field.TypeString, Nullable: true},
		{Name: "model", Type: field.TypeString, Nullable: true},
		{Name: "tier_reason", Type: field.TypeString, Nullable: true},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "cost", Type: field.TypeFloat64, Default: 0},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "deliverable_path", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "job_id", Type: field.TypeInt},
	}
	// JobPhasesTable holds the schema information for the "job_phases" table.
	JobPhasesTable = &schema.Table{
		Name:       "job_phases",
		Columns:    JobPhasesColumns,
		PrimaryKey: []*schema.Column{JobPhasesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "job_phases_jobs_phases",
				Columns:    []*schema.Column{JobPhasesColumns[16]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "jobphase_job_id_phase_index",
				Unique:  true,
				Columns: []*schema.Column{JobPhasesColumns[16], JobPhasesColumns[2]},
			},
			{
				Name:    "jobphase_status",
				Unique:  false,
				Columns: []*schema.Column{JobPhasesColumns[3]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "event_type", Type: field.TypeEnum, Enums: []string{"job_queued", "job_started", "job_completed", "job_failed", "job_cancelled", "phase_started", "phase_completed", "phase_failed", "cost_update", "model_selected", "model_fallback", "system_pause", "system_resume", "system_error", "user_action"}},
		{Name: "data", Type: field.TypeJSON, Nullable: true},
		{Name: "job_id", Type: field.TypeInt, Nullable: true},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "session_events_jobs_events",
				Columns:    []*schema.Column{SessionEventsColumns[4]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_job_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4], SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_event_type",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ConfigItemsTable,
		IngestRecordsTable,
		JobsTable,
		JobPhasesTable,
		SessionEventsTable,
	}
)

func init() {
	JobPhasesTable.ForeignKeys[0].RefTable = JobsTable
	SessionEventsTable.ForeignKeys[0].RefTable = JobsTable
}
