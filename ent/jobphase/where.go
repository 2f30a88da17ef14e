// Code generated by ent, DO NOT EDIT.

package jobphase

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/cardigan-project/cardigan/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldLTE(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldEQ(FieldJobID, v))
}

// PhaseIndex applies equality check predicate on the "phase_index" field. It's identical to PhaseIndexEQ.
func PhaseIndex(v int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldEQ(FieldPhaseIndex, v))
}

// TierIndex applies equality check predicate on the "tier_index" field. It's identical to TierIndexEQ.
func TierIndex(v int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldEQ(FieldTierIndex, v))
}

// TierLabel applies equality check predicate on the "tier_label" field. It's identical to TierLabelEQ.
func TierLabel(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldEQ(FieldTierLabel, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldEQ(FieldModel, v))
}

// TierReason applies equality check predicate on the "tier_reason" field. It's identical to TierReasonEQ.
func TierReason(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldEQ(FieldTierReason, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldEQ(FieldAttempts, v))
}

// Cost applies equality check predicate on the "cost" field. It's identical to CostEQ.
func Cost(v float64) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldEQ(FieldCost, v))
}

// InputTokens applies equality check predicate on the "input_tokens" field. It's identical to InputTokensEQ.
func InputTokens(v int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldEQ(FieldInputTokens, v))
}

// OutputTokens applies equality check predicate on the "output_tokens" field. It's identical to OutputTokensEQ.
func OutputTokens(v int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldEQ(FieldOutputTokens, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldEQ(FieldCompletedAt, v))
}

// DeliverablePath applies equality check predicate on the "deliverable_path" field. It's identical to DeliverablePathEQ.
func DeliverablePath(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldEQ(FieldDeliverablePath, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldEQ(FieldErrorMessage, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldNotIn(FieldJobID, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v Name) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v Name) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...Name) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...Name) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldNotIn(FieldName, vs...))
}

// PhaseIndexEQ applies the EQ predicate on the "phase_index" field.
func PhaseIndexEQ(v int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldEQ(FieldPhaseIndex, v))
}

// PhaseIndexNEQ applies the NEQ predicate on the "phase_index" field.
func PhaseIndexNEQ(v int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldNEQ(FieldPhaseIndex, v))
}

// PhaseIndexIn applies the In predicate on the "phase_index" field.
func PhaseIndexIn(vs ...int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldIn(FieldPhaseIndex, vs...))
}

// PhaseIndexNotIn applies the NotIn predicate on the "phase_index" field.
func PhaseIndexNotIn(vs ...int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldNotIn(FieldPhaseIndex, vs...))
}

// PhaseIndexGT applies the GT predicate on the "phase_index" field.
func PhaseIndexGT(v int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldGT(FieldPhaseIndex, v))
}

// PhaseIndexGTE applies the GTE predicate on the "phase_index" field.
func PhaseIndexGTE(v int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldGTE(FieldPhaseIndex, v))
}

// PhaseIndexLT applies the LT predicate on the "phase_index" field.
func PhaseIndexLT(v int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldLT(FieldPhaseIndex, v))
}

// PhaseIndexLTE applies the LTE predicate on the "phase_index" field.
func PhaseIndexLTE(v int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldLTE(FieldPhaseIndex, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldNotIn(FieldStatus, vs...))
}

// TierIndexEQ applies the EQ predicate on the "tier_index" field.
func TierIndexEQ(v int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldEQ(FieldTierIndex, v))
}

// TierIndexNEQ applies the NEQ predicate on the "tier_index" field.
func TierIndexNEQ(v int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldNEQ(FieldTierIndex, v))
}

// TierIndexIn applies the In predicate on the "tier_index" field.
func TierIndexIn(vs ...int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldIn(FieldTierIndex, vs...))
}

// TierIndexNotIn applies the NotIn predicate on the "tier_index" field.
func TierIndexNotIn(vs ...int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldNotIn(FieldTierIndex, vs...))
}

// TierIndexGT applies the GT predicate on the "tier_index" field.
func TierIndexGT(v int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldGT(FieldTierIndex, v))
}

// TierIndexGTE applies the GTE predicate on the "tier_index" field.
func TierIndexGTE(v int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldGTE(FieldTierIndex, v))
}

// TierIndexLT applies the LT predicate on the "tier_index" field.
func TierIndexLT(v int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldLT(FieldTierIndex, v))
}

// TierIndexLTE applies the LTE predicate on the "tier_index" field.
func TierIndexLTE(v int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldLTE(FieldTierIndex, v))
}

// TierLabelEQ applies the EQ predicate on the "tier_label" field.
func TierLabelEQ(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldEQ(FieldTierLabel, v))
}

// TierLabelNEQ applies the NEQ predicate on the "tier_label" field.
func TierLabelNEQ(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldNEQ(FieldTierLabel, v))
}

// TierLabelIn applies the In predicate on the "tier_label" field.
func TierLabelIn(vs ...string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldIn(FieldTierLabel, vs...))
}

// TierLabelNotIn applies the NotIn predicate on the "tier_label" field.
func TierLabelNotIn(vs ...string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldNotIn(FieldTierLabel, vs...))
}

// TierLabelGT applies the GT predicate on the "tier_label" field.
func TierLabelGT(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldGT(FieldTierLabel, v))
}

// TierLabelGTE applies the GTE predicate on the "tier_label" field.
func TierLabelGTE(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldGTE(FieldTierLabel, v))
}

// TierLabelLT applies the LT predicate on the "tier_label" field.
func TierLabelLT(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldLT(FieldTierLabel, v))
}

// TierLabelLTE applies the LTE predicate on the "tier_label" field.
func TierLabelLTE(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldLTE(FieldTierLabel, v))
}

// TierLabelContains applies the Contains predicate on the "tier_label" field.
func TierLabelContains(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldContains(FieldTierLabel, v))
}

// TierLabelHasPrefix applies the HasPrefix predicate on the "tier_label" field.
func TierLabelHasPrefix(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldHasPrefix(FieldTierLabel, v))
}

// TierLabelHasSuffix applies the HasSuffix predicate on the "tier_label" field.
func TierLabelHasSuffix(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldHasSuffix(FieldTierLabel, v))
}

// TierLabelIsNil applies the IsNil predicate on the "tier_label" field.
func TierLabelIsNil() predicate.JobPhase {
	return predicate.JobPhase(sql.FieldIsNull(FieldTierLabel))
}

// TierLabelNotNil applies the NotNil predicate on the "tier_label" field.
func TierLabelNotNil() predicate.JobPhase {
	return predicate.JobPhase(sql.FieldNotNull(FieldTierLabel))
}

// TierLabelEqualFold applies the EqualFold predicate on the "tier_label" field.
func TierLabelEqualFold(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldEqualFold(FieldTierLabel, v))
}

// TierLabelContainsFold applies the ContainsFold predicate on the "tier_label" field.
func TierLabelContainsFold(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldContainsFold(FieldTierLabel, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldHasSuffix(FieldModel, v))
}

// ModelIsNil applies the IsNil predicate on the "model" field.
func ModelIsNil() predicate.JobPhase {
	return predicate.JobPhase(sql.FieldIsNull(FieldModel))
}

// ModelNotNil applies the NotNil predicate on the "model" field.
func ModelNotNil() predicate.JobPhase {
	return predicate.JobPhase(sql.FieldNotNull(FieldModel))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldContainsFold(FieldModel, v))
}

// TierReasonEQ applies the EQ predicate on the "tier_reason" field.
func TierReasonEQ(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldEQ(FieldTierReason, v))
}

// TierReasonNEQ applies the NEQ predicate on the "tier_reason" field.
func TierReasonNEQ(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldNEQ(FieldTierReason, v))
}

// TierReasonIn applies the In predicate on the "tier_reason" field.
func TierReasonIn(vs ...string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldIn(FieldTierReason, vs...))
}

// TierReasonNotIn applies the NotIn predicate on the "tier_reason" field.
func TierReasonNotIn(vs ...string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldNotIn(FieldTierReason, vs...))
}

// TierReasonGT applies the GT predicate on the "tier_reason" field.
func TierReasonGT(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldGT(FieldTierReason, v))
}

// TierReasonGTE applies the GTE predicate on the "tier_reason" field.
func TierReasonGTE(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldGTE(FieldTierReason, v))
}

// TierReasonLT applies the LT predicate on the "tier_reason" field.
func TierReasonLT(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldLT(FieldTierReason, v))
}

// TierReasonLTE applies the LTE predicate on the "tier_reason" field.
func TierReasonLTE(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldLTE(FieldTierReason, v))
}

// TierReasonContains applies the Contains predicate on the "tier_reason" field.
func TierReasonContains(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldContains(FieldTierReason, v))
}

// TierReasonHasPrefix applies the HasPrefix predicate on the "tier_reason" field.
func TierReasonHasPrefix(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldHasPrefix(FieldTierReason, v))
}

// TierReasonHasSuffix applies the HasSuffix predicate on the "tier_reason" field.
func TierReasonHasSuffix(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldHasSuffix(FieldTierReason, v))
}

// TierReasonIsNil applies the IsNil predicate on the "tier_reason" field.
func TierReasonIsNil() predicate.JobPhase {
	return predicate.JobPhase(sql.FieldIsNull(FieldTierReason))
}

// TierReasonNotNil applies the NotNil predicate on the "tier_reason" field.
func TierReasonNotNil() predicate.JobPhase {
	return predicate.JobPhase(sql.FieldNotNull(FieldTierReason))
}

// TierReasonEqualFold applies the EqualFold predicate on the "tier_reason" field.
func TierReasonEqualFold(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldEqualFold(FieldTierReason, v))
}

// TierReasonContainsFold applies the ContainsFold predicate on the "tier_reason" field.
func TierReasonContainsFold(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldContainsFold(FieldTierReason, v))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldLTE(FieldAttempts, v))
}

// CostEQ applies the EQ predicate on the "cost" field.
func CostEQ(v float64) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldEQ(FieldCost, v))
}

// CostNEQ applies the NEQ predicate on the "cost" field.
func CostNEQ(v float64) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldNEQ(FieldCost, v))
}

// CostIn applies the In predicate on the "cost" field.
func CostIn(vs ...float64) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldIn(FieldCost, vs...))
}

// CostNotIn applies the NotIn predicate on the "cost" field.
func CostNotIn(vs ...float64) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldNotIn(FieldCost, vs...))
}

// CostGT applies the GT predicate on the "cost" field.
func CostGT(v float64) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldGT(FieldCost, v))
}

// CostGTE applies the GTE predicate on the "cost" field.
func CostGTE(v float64) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldGTE(FieldCost, v))
}

// CostLT applies the LT predicate on the "cost" field.
func CostLT(v float64) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldLT(FieldCost, v))
}

// CostLTE applies the LTE predicate on the "cost" field.
func CostLTE(v float64) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldLTE(FieldCost, v))
}

// InputTokensEQ applies the EQ predicate on the "input_tokens" field.
func InputTokensEQ(v int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldEQ(FieldInputTokens, v))
}

// InputTokensNEQ applies the NEQ predicate on the "input_tokens" field.
func InputTokensNEQ(v int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldNEQ(FieldInputTokens, v))
}

// InputTokensIn applies the In predicate on the "input_tokens" field.
func InputTokensIn(vs ...int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldIn(FieldInputTokens, vs...))
}

// InputTokensNotIn applies the NotIn predicate on the "input_tokens" field.
func InputTokensNotIn(vs ...int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldNotIn(FieldInputTokens, vs...))
}

// InputTokensGT applies the GT predicate on the "input_tokens" field.
func InputTokensGT(v int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldGT(FieldInputTokens, v))
}

// InputTokensGTE applies the GTE predicate on the "input_tokens" field.
func InputTokensGTE(v int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldGTE(FieldInputTokens, v))
}

// InputTokensLT applies the LT predicate on the "input_tokens" field.
func InputTokensLT(v int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldLT(FieldInputTokens, v))
}

// InputTokensLTE applies the LTE predicate on the "input_tokens" field.
func InputTokensLTE(v int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldLTE(FieldInputTokens, v))
}

// OutputTokensEQ applies the EQ predicate on the "output_tokens" field.
func OutputTokensEQ(v int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldEQ(FieldOutputTokens, v))
}

// OutputTokensNEQ applies the NEQ predicate on the "output_tokens" field.
func OutputTokensNEQ(v int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldNEQ(FieldOutputTokens, v))
}

// OutputTokensIn applies the In predicate on the "output_tokens" field.
func OutputTokensIn(vs ...int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldIn(FieldOutputTokens, vs...))
}

// OutputTokensNotIn applies the NotIn predicate on the "output_tokens" field.
func OutputTokensNotIn(vs ...int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldNotIn(FieldOutputTokens, vs...))
}

// OutputTokensGT applies the GT predicate on the "output_tokens" field.
func OutputTokensGT(v int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldGT(FieldOutputTokens, v))
}

// OutputTokensGTE applies the GTE predicate on the "output_tokens" field.
func OutputTokensGTE(v int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldGTE(FieldOutputTokens, v))
}

// OutputTokensLT applies the LT predicate on the "output_tokens" field.
func OutputTokensLT(v int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldLT(FieldOutputTokens, v))
}

// OutputTokensLTE applies the LTE predicate on the "output_tokens" field.
func OutputTokensLTE(v int) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldLTE(FieldOutputTokens, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.JobPhase {
	return predicate.JobPhase(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.JobPhase {
	return predicate.JobPhase(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.JobPhase {
	return predicate.JobPhase(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.JobPhase {
	return predicate.JobPhase(sql.FieldNotNull(FieldCompletedAt))
}

// DeliverablePathEQ applies the EQ predicate on the "deliverable_path" field.
func DeliverablePathEQ(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldEQ(FieldDeliverablePath, v))
}

// DeliverablePathNEQ applies the NEQ predicate on the "deliverable_path" field.
func DeliverablePathNEQ(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldNEQ(FieldDeliverablePath, v))
}

// DeliverablePathIn applies the In predicate on the "deliverable_path" field.
func DeliverablePathIn(vs ...string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldIn(FieldDeliverablePath, vs...))
}

// DeliverablePathNotIn applies the NotIn predicate on the "deliverable_path" field.
func DeliverablePathNotIn(vs ...string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldNotIn(FieldDeliverablePath, vs...))
}

// DeliverablePathGT applies the GT predicate on the "deliverable_path" field.
func DeliverablePathGT(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldGT(FieldDeliverablePath, v))
}

// DeliverablePathGTE applies the GTE predicate on the "deliverable_path" field.
func DeliverablePathGTE(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldGTE(FieldDeliverablePath, v))
}

// DeliverablePathLT applies the LT predicate on the "deliverable_path" field.
func DeliverablePathLT(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldLT(FieldDeliverablePath, v))
}

// DeliverablePathLTE applies the LTE predicate on the "deliverable_path" field.
func DeliverablePathLTE(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldLTE(FieldDeliverablePath, v))
}

// DeliverablePathContains applies the Contains predicate on the "deliverable_path" field.
func DeliverablePathContains(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldContains(FieldDeliverablePath, v))
}

// DeliverablePathHasPrefix applies the HasPrefix predicate on the "deliverable_path" field.
func DeliverablePathHasPrefix(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldHasPrefix(FieldDeliverablePath, v))
}

// DeliverablePathHasSuffix applies the HasSuffix predicate on the "deliverable_path" field.
func DeliverablePathHasSuffix(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldHasSuffix(FieldDeliverablePath, v))
}

// DeliverablePathIsNil applies the IsNil predicate on the "deliverable_path" field.
func DeliverablePathIsNil() predicate.JobPhase {
	return predicate.JobPhase(sql.FieldIsNull(FieldDeliverablePath))
}

// DeliverablePathNotNil applies the NotNil predicate on the "deliverable_path" field.
func DeliverablePathNotNil() predicate.JobPhase {
	return predicate.JobPhase(sql.FieldNotNull(FieldDeliverablePath))
}

// DeliverablePathEqualFold applies the EqualFold predicate on the "deliverable_path" field.
func DeliverablePathEqualFold(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldEqualFold(FieldDeliverablePath, v))
}

// DeliverablePathContainsFold applies the ContainsFold predicate on the "deliverable_path" field.
func DeliverablePathContainsFold(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldContainsFold(FieldDeliverablePath, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.JobPhase {
	return predicate.JobPhase(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.JobPhase {
	return predicate.JobPhase(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.JobPhase {
	return predicate.JobPhase(sql.FieldContainsFold(FieldErrorMessage, v))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.JobPhase {
	return predicate.JobPhase(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.Job) predicate.JobPhase {
	return predicate.JobPhase(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.JobPhase) predicate.JobPhase {
	return predicate.JobPhase(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.JobPhase) predicate.JobPhase {
	return predicate.JobPhase(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.JobPhase) predicate.JobPhase {
	return predicate.JobPhase(sql.NotPredicates(p))
}
