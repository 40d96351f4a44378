// Code generated by ent, DO NOT EDIT.

package lessoncontent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/coursegen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldLTE(FieldID, id))
}

// CourseID applies equality check predicate on the "course_id" field. It's identical to CourseIDEQ.
func CourseID(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldEQ(FieldCourseID, v))
}

// ModuleOrder applies equality check predicate on the "module_order" field. It's identical to ModuleOrderEQ.
func ModuleOrder(v int) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldEQ(FieldModuleOrder, v))
}

// SubtopicOrder applies equality check predicate on the "subtopic_order" field. It's identical to SubtopicOrderEQ.
func SubtopicOrder(v int) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldEQ(FieldSubtopicOrder, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldEQ(FieldTitle, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldEQ(FieldContent, v))
}

// EstimatedReadTimeMin applies equality check predicate on the "estimated_read_time_min" field. It's identical to EstimatedReadTimeMinEQ.
func EstimatedReadTimeMin(v int) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldEQ(FieldEstimatedReadTimeMin, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldEQ(FieldModel, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldEQ(FieldUpdatedAt, v))
}

// CourseIDEQ applies the EQ predicate on the "course_id" field.
func CourseIDEQ(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldEQ(FieldCourseID, v))
}

// CourseIDNEQ applies the NEQ predicate on the "course_id" field.
func CourseIDNEQ(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldNEQ(FieldCourseID, v))
}

// CourseIDIn applies the In predicate on the "course_id" field.
func CourseIDIn(vs ...string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldIn(FieldCourseID, vs...))
}

// CourseIDNotIn applies the NotIn predicate on the "course_id" field.
func CourseIDNotIn(vs ...string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldNotIn(FieldCourseID, vs...))
}

// CourseIDGT applies the GT predicate on the "course_id" field.
func CourseIDGT(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldGT(FieldCourseID, v))
}

// CourseIDGTE applies the GTE predicate on the "course_id" field.
func CourseIDGTE(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldGTE(FieldCourseID, v))
}

// CourseIDLT applies the LT predicate on the "course_id" field.
func CourseIDLT(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldLT(FieldCourseID, v))
}

// CourseIDLTE applies the LTE predicate on the "course_id" field.
func CourseIDLTE(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldLTE(FieldCourseID, v))
}

// CourseIDContains applies the Contains predicate on the "course_id" field.
func CourseIDContains(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldContains(FieldCourseID, v))
}

// CourseIDHasPrefix applies the HasPrefix predicate on the "course_id" field.
func CourseIDHasPrefix(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldHasPrefix(FieldCourseID, v))
}

// CourseIDHasSuffix applies the HasSuffix predicate on the "course_id" field.
func CourseIDHasSuffix(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldHasSuffix(FieldCourseID, v))
}

// CourseIDEqualFold applies the EqualFold predicate on the "course_id" field.
func CourseIDEqualFold(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldEqualFold(FieldCourseID, v))
}

// CourseIDContainsFold applies the ContainsFold predicate on the "course_id" field.
func CourseIDContainsFold(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldContainsFold(FieldCourseID, v))
}

// ModuleOrderEQ applies the EQ predicate on the "module_order" field.
func ModuleOrderEQ(v int) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldEQ(FieldModuleOrder, v))
}

// ModuleOrderNEQ applies the NEQ predicate on the "module_order" field.
func ModuleOrderNEQ(v int) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldNEQ(FieldModuleOrder, v))
}

// ModuleOrderIn applies the In predicate on the "module_order" field.
func ModuleOrderIn(vs ...int) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldIn(FieldModuleOrder, vs...))
}

// ModuleOrderNotIn applies the NotIn predicate on the "module_order" field.
func ModuleOrderNotIn(vs ...int) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldNotIn(FieldModuleOrder, vs...))
}

// ModuleOrderGT applies the GT predicate on the "module_order" field.
func ModuleOrderGT(v int) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldGT(FieldModuleOrder, v))
}

// ModuleOrderGTE applies the GTE predicate on the "module_order" field.
func ModuleOrderGTE(v int) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldGTE(FieldModuleOrder, v))
}

// ModuleOrderLT applies the LT predicate on the "module_order" field.
func ModuleOrderLT(v int) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldLT(FieldModuleOrder, v))
}

// ModuleOrderLTE applies the LTE predicate on the "module_order" field.
func ModuleOrderLTE(v int) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldLTE(FieldModuleOrder, v))
}

// SubtopicOrderEQ applies the EQ predicate on the "subtopic_order" field.
func SubtopicOrderEQ(v int) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldEQ(FieldSubtopicOrder, v))
}

// SubtopicOrderNEQ applies the NEQ predicate on the "subtopic_order" field.
func SubtopicOrderNEQ(v int) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldNEQ(FieldSubtopicOrder, v))
}

// SubtopicOrderIn applies the In predicate on the "subtopic_order" field.
func SubtopicOrderIn(vs ...int) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldIn(FieldSubtopicOrder, vs...))
}

// SubtopicOrderNotIn applies the NotIn predicate on the "subtopic_order" field.
func SubtopicOrderNotIn(vs ...int) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldNotIn(FieldSubtopicOrder, vs...))
}

// SubtopicOrderGT applies the GT predicate on the "subtopic_order" field.
func SubtopicOrderGT(v int) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldGT(FieldSubtopicOrder, v))
}

// SubtopicOrderGTE applies the GTE predicate on the "subtopic_order" field.
func SubtopicOrderGTE(v int) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldGTE(FieldSubtopicOrder, v))
}

// SubtopicOrderLT applies the LT predicate on the "subtopic_order" field.
func SubtopicOrderLT(v int) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldLT(FieldSubtopicOrder, v))
}

// SubtopicOrderLTE applies the LTE predicate on the "subtopic_order" field.
func SubtopicOrderLTE(v int) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldLTE(FieldSubtopicOrder, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldContainsFold(FieldTitle, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldContainsFold(FieldContent, v))
}

// EstimatedReadTimeMinEQ applies the EQ predicate on the "estimated_read_time_min" field.
func EstimatedReadTimeMinEQ(v int) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldEQ(FieldEstimatedReadTimeMin, v))
}

// EstimatedReadTimeMinNEQ applies the NEQ predicate on the "estimated_read_time_min" field.
func EstimatedReadTimeMinNEQ(v int) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldNEQ(FieldEstimatedReadTimeMin, v))
}

// EstimatedReadTimeMinIn applies the In predicate on the "estimated_read_time_min" field.
func EstimatedReadTimeMinIn(vs ...int) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldIn(FieldEstimatedReadTimeMin, vs...))
}

// EstimatedReadTimeMinNotIn applies the NotIn predicate on the "estimated_read_time_min" field.
func EstimatedReadTimeMinNotIn(vs ...int) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldNotIn(FieldEstimatedReadTimeMin, vs...))
}

// EstimatedReadTimeMinGT applies the GT predicate on the "estimated_read_time_min" field.
func EstimatedReadTimeMinGT(v int) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldGT(FieldEstimatedReadTimeMin, v))
}

// EstimatedReadTimeMinGTE applies the GTE predicate on the "estimated_read_time_min" field.
func EstimatedReadTimeMinGTE(v int) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldGTE(FieldEstimatedReadTimeMin, v))
}

// EstimatedReadTimeMinLT applies the LT predicate on the "estimated_read_time_min" field.
func EstimatedReadTimeMinLT(v int) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldLT(FieldEstimatedReadTimeMin, v))
}

// EstimatedReadTimeMinLTE applies the LTE predicate on the "estimated_read_time_min" field.
func EstimatedReadTimeMinLTE(v int) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldLTE(FieldEstimatedReadTimeMin, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldContainsFold(FieldModel, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LessonContent) predicate.LessonContent {
	return predicate.LessonContent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LessonContent) predicate.LessonContent {
	return predicate.LessonContent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LessonContent) predicate.LessonContent {
	return predicate.LessonContent(sql.NotPredicates(p))
}
