// Code generated by ent, DO NOT EDIT.

package ingestrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/cardigan-project/cardigan/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldLTE(FieldID, id))
}

// RemoteName applies equality check predicate on the "remote_name" field. It's identical to RemoteNameEQ.
func RemoteName(v string) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldEQ(FieldRemoteName, v))
}

// Size applies equality check predicate on the "size" field. It's identical to SizeEQ.
func Size(v int64) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldEQ(FieldSize, v))
}

// ModifiedAt applies equality check predicate on the "modified_at" field. It's identical to ModifiedAtEQ.
func ModifiedAt(v time.Time) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldEQ(FieldModifiedAt, v))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v int) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldEQ(FieldJobID, v))
}

// FirstSeen applies equality check predicate on the "first_seen" field. It's identical to FirstSeenEQ.
func FirstSeen(v time.Time) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldEQ(FieldFirstSeen, v))
}

// LastSeen applies equality check predicate on the "last_seen" field. It's identical to LastSeenEQ.
func LastSeen(v time.Time) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldEQ(FieldLastSeen, v))
}

// RemoteNameEQ applies the EQ predicate on the "remote_name" field.
func RemoteNameEQ(v string) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldEQ(FieldRemoteName, v))
}

// RemoteNameNEQ applies the NEQ predicate on the "remote_name" field.
func RemoteNameNEQ(v string) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldNEQ(FieldRemoteName, v))
}

// RemoteNameIn applies the In predicate on the "remote_name" field.
func RemoteNameIn(vs ...string) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldIn(FieldRemoteName, vs...))
}

// RemoteNameNotIn applies the NotIn predicate on the "remote_name" field.
func RemoteNameNotIn(vs ...string) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldNotIn(FieldRemoteName, vs...))
}

// RemoteNameGT applies the GT predicate on the "remote_name" field.
func RemoteNameGT(v string) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldGT(FieldRemoteName, v))
}

// RemoteNameGTE applies the GTE predicate on the "remote_name" field.
func RemoteNameGTE(v string) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldGTE(FieldRemoteName, v))
}

// RemoteNameLT applies the LT predicate on the "remote_name" field.
func RemoteNameLT(v string) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldLT(FieldRemoteName, v))
}

// RemoteNameLTE applies the LTE predicate on the "remote_name" field.
func RemoteNameLTE(v string) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldLTE(FieldRemoteName, v))
}

// RemoteNameContains applies the Contains predicate on the "remote_name" field.
func RemoteNameContains(v string) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldContains(FieldRemoteName, v))
}

// RemoteNameHasPrefix applies the HasPrefix predicate on the "remote_name" field.
func RemoteNameHasPrefix(v string) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldHasPrefix(FieldRemoteName, v))
}

// RemoteNameHasSuffix applies the HasSuffix predicate on the "remote_name" field.
func RemoteNameHasSuffix(v string) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldHasSuffix(FieldRemoteName, v))
}

// RemoteNameEqualFold applies the EqualFold predicate on the "remote_name" field.
func RemoteNameEqualFold(v string) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldEqualFold(FieldRemoteName, v))
}

// RemoteNameContainsFold applies the ContainsFold predicate on the "remote_name" field.
func RemoteNameContainsFold(v string) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldContainsFold(FieldRemoteName, v))
}

// SizeEQ applies the EQ predicate on the "size" field.
func SizeEQ(v int64) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldEQ(FieldSize, v))
}

// SizeNEQ applies the NEQ predicate on the "size" field.
func SizeNEQ(v int64) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldNEQ(FieldSize, v))
}

// SizeIn applies the In predicate on the "size" field.
func SizeIn(vs ...int64) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldIn(FieldSize, vs...))
}

// SizeNotIn applies the NotIn predicate on the "size" field.
func SizeNotIn(vs ...int64) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldNotIn(FieldSize, vs...))
}

// SizeGT applies the GT predicate on the "size" field.
func SizeGT(v int64) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldGT(FieldSize, v))
}

// SizeGTE applies the GTE predicate on the "size" field.
func SizeGTE(v int64) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldGTE(FieldSize, v))
}

// SizeLT applies the LT predicate on the "size" field.
func SizeLT(v int64) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldLT(FieldSize, v))
}

// SizeLTE applies the LTE predicate on the "size" field.
func SizeLTE(v int64) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldLTE(FieldSize, v))
}

// ModifiedAtEQ applies the EQ predicate on the "modified_at" field.
func ModifiedAtEQ(v time.Time) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldEQ(FieldModifiedAt, v))
}

// ModifiedAtNEQ applies the NEQ predicate on the "modified_at" field.
func ModifiedAtNEQ(v time.Time) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldNEQ(FieldModifiedAt, v))
}

// ModifiedAtIn applies the In predicate on the "modified_at" field.
func ModifiedAtIn(vs ...time.Time) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldIn(FieldModifiedAt, vs...))
}

// ModifiedAtNotIn applies the NotIn predicate on the "modified_at" field.
func ModifiedAtNotIn(vs ...time.Time) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldNotIn(FieldModifiedAt, vs...))
}

// ModifiedAtGT applies the GT predicate on the "modified_at" field.
func ModifiedAtGT(v time.Time) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldGT(FieldModifiedAt, v))
}

// ModifiedAtGTE applies the GTE predicate on the "modified_at" field.
func ModifiedAtGTE(v time.Time) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldGTE(FieldModifiedAt, v))
}

// ModifiedAtLT applies the LT predicate on the "modified_at" field.
func ModifiedAtLT(v time.Time) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldLT(FieldModifiedAt, v))
}

// ModifiedAtLTE applies the LTE predicate on the "modified_at" field.
func ModifiedAtLTE(v time.Time) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldLTE(FieldModifiedAt, v))
}

// ModifiedAtIsNil applies the IsNil predicate on the "modified_at" field.
func ModifiedAtIsNil() predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldIsNull(FieldModifiedAt))
}

// ModifiedAtNotNil applies the NotNil predicate on the "modified_at" field.
func ModifiedAtNotNil() predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldNotNull(FieldModifiedAt))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldNotIn(FieldStatus, vs...))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v int) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v int) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...int) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...int) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDGT applies the GT predicate on the "job_id" field.
func JobIDGT(v int) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldGT(FieldJobID, v))
}

// JobIDGTE applies the GTE predicate on the "job_id" field.
func JobIDGTE(v int) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldGTE(FieldJobID, v))
}

// JobIDLT applies the LT predicate on the "job_id" field.
func JobIDLT(v int) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldLT(FieldJobID, v))
}

// JobIDLTE applies the LTE predicate on the "job_id" field.
func JobIDLTE(v int) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldLTE(FieldJobID, v))
}

// JobIDIsNil applies the IsNil predicate on the "job_id" field.
func JobIDIsNil() predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldIsNull(FieldJobID))
}

// JobIDNotNil applies the NotNil predicate on the "job_id" field.
func JobIDNotNil() predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldNotNull(FieldJobID))
}

// FirstSeenEQ applies the EQ predicate on the "first_seen" field.
func FirstSeenEQ(v time.Time) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldEQ(FieldFirstSeen, v))
}

// FirstSeenNEQ applies the NEQ predicate on the "first_seen" field.
func FirstSeenNEQ(v time.Time) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldNEQ(FieldFirstSeen, v))
}

// FirstSeenIn applies the In predicate on the "first_seen" field.
func FirstSeenIn(vs ...time.Time) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldIn(FieldFirstSeen, vs...))
}

// FirstSeenNotIn applies the NotIn predicate on the "first_seen" field.
func FirstSeenNotIn(vs ...time.Time) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldNotIn(FieldFirstSeen, vs...))
}

// FirstSeenGT applies the GT predicate on the "first_seen" field.
func FirstSeenGT(v time.Time) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldGT(FieldFirstSeen, v))
}

// FirstSeenGTE applies the GTE predicate on the "first_seen" field.
func FirstSeenGTE(v time.Time) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldGTE(FieldFirstSeen, v))
}

// FirstSeenLT applies the LT predicate on the "first_seen" field.
func FirstSeenLT(v time.Time) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldLT(FieldFirstSeen, v))
}

// FirstSeenLTE applies the LTE predicate on the "first_seen" field.
func FirstSeenLTE(v time.Time) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldLTE(FieldFirstSeen, v))
}

// LastSeenEQ applies the EQ predicate on the "last_seen" field.
func LastSeenEQ(v time.Time) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldEQ(FieldLastSeen, v))
}

// LastSeenNEQ applies the NEQ predicate on the "last_seen" field.
func LastSeenNEQ(v time.Time) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldNEQ(FieldLastSeen, v))
}

// LastSeenIn applies the In predicate on the "last_seen" field.
func LastSeenIn(vs ...time.Time) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldIn(FieldLastSeen, vs...))
}

// LastSeenNotIn applies the NotIn predicate on the "last_seen" field.
func LastSeenNotIn(vs ...time.Time) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldNotIn(FieldLastSeen, vs...))
}

// LastSeenGT applies the GT predicate on the "last_seen" field.
func LastSeenGT(v time.Time) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldGT(FieldLastSeen, v))
}

// LastSeenGTE applies the GTE predicate on the "last_seen" field.
func LastSeenGTE(v time.Time) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldGTE(FieldLastSeen, v))
}

// LastSeenLT applies the LT predicate on the "last_seen" field.
func LastSeenLT(v time.Time) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldLT(FieldLastSeen, v))
}

// LastSeenLTE applies the LTE predicate on the "last_seen" field.
func LastSeenLTE(v time.Time) predicate.IngestRecord {
	return predicate.IngestRecord(sql.FieldLTE(FieldLastSeen, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.IngestRecord) predicate.IngestRecord {
	return predicate.IngestRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.IngestRecord) predicate.IngestRecord {
	return predicate.IngestRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.IngestRecord) predicate.IngestRecord {
	return predicate.IngestRecord(sql.NotPredicates(p))
}
