// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/cardigan-project/cardigan/ent/configitem"
	"github.com/cardigan-project/cardigan/ent/ingestrecord"
	"github.com/cardigan-project/cardigan/ent/job"
	"github.com/cardigan-project/cardigan/ent/jobphase"
	"github.com/cardigan-project/cardigan/ent/schema"
	"github.com/cardigan-project/cardigan/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	configitemFields := schema.ConfigItem{}.Fields()
	_ = configitemFields
	// configitemDescUpdatedAt is the schema descriptor for updated_at field.
	configitemDescUpdatedAt := configitemFields[3].Descriptor()
	// configitem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	configitem.DefaultUpdatedAt = configitemDescUpdatedAt.Default.(func() time.Time)
	// configitem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	configitem.UpdateDefaultUpdatedAt = configitemDescUpdatedAt.UpdateDefault.(func() time.Time)
	ingestrecordFields := schema.IngestRecord{}.Fields()
	_ = ingestrecordFields
	// ingestrecordDescSize is the schema descriptor for size field.
	ingestrecordDescSize := ingestrecordFields[1].Descriptor()
	// ingestrecord.DefaultSize holds the default value on creation for the size field.
	ingestrecord.DefaultSize = ingestrecordDescSize.Default.(int64)
	// ingestrecordDescFirstSeen is the schema descriptor for first_seen field.
	ingestrecordDescFirstSeen := ingestrecordFields[5].Descriptor()
	// ingestrecord.DefaultFirstSeen holds the default value on creation for the first_seen field.
	ingestrecord.DefaultFirstSeen = ingestrecordDescFirstSeen.Default.(func() time.Time)
	// ingestrecordDescLastSeen is the schema descriptor for last_seen field.
	ingestrecordDescLastSeen := ingestrecordFields[6].Descriptor()
	// ingestrecord.DefaultLastSeen holds the default value on creation for the last_seen field.
	ingestrecord.DefaultLastSeen = ingestrecordDescLastSeen.Default.(func() time.Time)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescPriority is the schema descriptor for priority field.
	jobDescPriority := jobFields[4].Descriptor()
	// job.DefaultPriority holds the default value on creation for the priority field.
	job.DefaultPriority = jobDescPriority.Default.(int)
	// jobDescRetryCount is the schema descriptor for retry_count field.
	jobDescRetryCount := jobFields[5].Descriptor()
	// job.DefaultRetryCount holds the default value on creation for the retry_count field.
	job.DefaultRetryCount = jobDescRetryCount.Default.(int)
	// jobDescMaxRetries is the schema descriptor for max_retries field.
	jobDescMaxRetries := jobFields[6].Descriptor()
	// job.DefaultMaxRetries holds the default value on creation for the max_retries field.
	job.DefaultMaxRetries = jobDescMaxRetries.Default.(int)
	// jobDescQueuedAt is the schema descriptor for queued_at field.
	jobDescQueuedAt := jobFields[7].Descriptor()
	// job.DefaultQueuedAt holds the default value on creation for the queued_at field.
	job.DefaultQueuedAt = jobDescQueuedAt.Default.(func() time.Time)
	// jobDescEstimatedCost is the schema descriptor for estimated_cost field.
	jobDescEstimatedCost := jobFields[12].Descriptor()
	// job.DefaultEstimatedCost holds the default value on creation for the estimated_cost field.
	job.DefaultEstimatedCost = jobDescEstimatedCost.Default.(float64)
	// jobDescActualCost is the schema descriptor for actual_cost field.
	jobDescActualCost := jobFields[13].Descriptor()
	// job.DefaultActualCost holds the default value on creation for the actual_cost field.
	job.DefaultActualCost = jobDescActualCost.Default.(float64)
	// jobDescCurrentPhaseIndex is the schema descriptor for current_phase_index field.
	jobDescCurrentPhaseIndex := jobFields[14].Descriptor()
	// job.DefaultCurrentPhaseIndex holds the default value on creation for the current_phase_index field.
	job.DefaultCurrentPhaseIndex = jobDescCurrentPhaseIndex.Default.(int)
	// jobDescRecoveryAttempts is the schema descriptor for recovery_attempts field.
	jobDescRecoveryAttempts := jobFields[15].Descriptor()
	// job.DefaultRecoveryAttempts holds the default value on creation for the recovery_attempts field.
	job.DefaultRecoveryAttempts = jobDescRecoveryAttempts.Default.(int)
	jobphaseFields := schema.JobPhase{}.Fields()
	_ = jobphaseFields
	// jobphaseDescTierIndex is the schema descriptor for tier_index field.
	jobphaseDescTierIndex := jobphaseFields[4].Descriptor()
	// jobphase.DefaultTierIndex holds the default value on creation for the tier_index field.
	jobphase.DefaultTierIndex = jobphaseDescTierIndex.Default.(int)
	// jobphaseDescAttempts is the schema descriptor for attempts field.
	jobphaseDescAttempts := jobphaseFields[8].Descriptor()
	// jobphase.DefaultAttempts holds the default value on creation for the attempts field.
	jobphase.DefaultAttempts = jobphaseDescAttempts.Default.(int)
	// jobphaseDescCost is the schema descriptor for cost field.
	jobphaseDescCost := jobphaseFields[9].Descriptor()
	// jobphase.DefaultCost holds the default value on creation for the cost field.
	jobphase.DefaultCost = jobphaseDescCost.Default.(float64)
	// jobphaseDescInputTokens is the schema descriptor for input_tokens field.
	jobphaseDescInputTokens := jobphaseFields[10].Descriptor()
	// jobphase.DefaultInputTokens holds the default value on creation for the input_tokens field.
	jobphase.DefaultInputTokens = jobphaseDescInputTokens.Default.(int)
	// jobphaseDescOutputTokens is the schema descriptor for output_tokens field.
	jobphaseDescOutputTokens := jobphaseFields[11].Descriptor()
	// jobphase.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	jobphase.DefaultOutputTokens = jobphaseDescOutputTokens.Default.(int)
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventFields[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
}
