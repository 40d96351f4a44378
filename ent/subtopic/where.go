// Code generated by ent, DO NOT EDIT.

package subtopic

import (
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/coursegen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldLTE(FieldID, id))
}

// CourseID applies equality check predicate on the "course_id" field. It's identical to CourseIDEQ.
func CourseID(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldEQ(FieldCourseID, v))
}

// ModuleOrder applies equality check predicate on the "module_order" field. It's identical to ModuleOrderEQ.
func ModuleOrder(v int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldEQ(FieldModuleOrder, v))
}

// SubtopicOrder applies equality check predicate on the "subtopic_order" field. It's identical to SubtopicOrderEQ.
func SubtopicOrder(v int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldEQ(FieldSubtopicOrder, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldEQ(FieldTitle, v))
}

// CourseIDEQ applies the EQ predicate on the "course_id" field.
func CourseIDEQ(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldEQ(FieldCourseID, v))
}

// CourseIDNEQ applies the NEQ predicate on the "course_id" field.
func CourseIDNEQ(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldNEQ(FieldCourseID, v))
}

// CourseIDIn applies the In predicate on the "course_id" field.
func CourseIDIn(vs ...string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldIn(FieldCourseID, vs...))
}

// CourseIDNotIn applies the NotIn predicate on the "course_id" field.
func CourseIDNotIn(vs ...string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldNotIn(FieldCourseID, vs...))
}

// CourseIDGT applies the GT predicate on the "course_id" field.
func CourseIDGT(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldGT(FieldCourseID, v))
}

// CourseIDGTE applies the GTE predicate on the "course_id" field.
func CourseIDGTE(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldGTE(FieldCourseID, v))
}

// CourseIDLT applies the LT predicate on the "course_id" field.
func CourseIDLT(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldLT(FieldCourseID, v))
}

// CourseIDLTE applies the LTE predicate on the "course_id" field.
func CourseIDLTE(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldLTE(FieldCourseID, v))
}

// CourseIDContains applies the Contains predicate on the "course_id" field.
func CourseIDContains(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldContains(FieldCourseID, v))
}

// CourseIDHasPrefix applies the HasPrefix predicate on the "course_id" field.
func CourseIDHasPrefix(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldHasPrefix(FieldCourseID, v))
}

// CourseIDHasSuffix applies the HasSuffix predicate on the "course_id" field.
func CourseIDHasSuffix(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldHasSuffix(FieldCourseID, v))
}

// CourseIDEqualFold applies the EqualFold predicate on the "course_id" field.
func CourseIDEqualFold(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldEqualFold(FieldCourseID, v))
}

// CourseIDContainsFold applies the ContainsFold predicate on the "course_id" field.
func CourseIDContainsFold(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldContainsFold(FieldCourseID, v))
}

// ModuleOrderEQ applies the EQ predicate on the "module_order" field.
func ModuleOrderEQ(v int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldEQ(FieldModuleOrder, v))
}

// ModuleOrderNEQ applies the NEQ predicate on the "module_order" field.
func ModuleOrderNEQ(v int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldNEQ(FieldModuleOrder, v))
}

// ModuleOrderIn applies the In predicate on the "module_order" field.
func ModuleOrderIn(vs ...int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldIn(FieldModuleOrder, vs...))
}

// ModuleOrderNotIn applies the NotIn predicate on the "module_order" field.
func ModuleOrderNotIn(vs ...int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldNotIn(FieldModuleOrder, vs...))
}

// ModuleOrderGT applies the GT predicate on the "module_order" field.
func ModuleOrderGT(v int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldGT(FieldModuleOrder, v))
}

// ModuleOrderGTE applies the GTE predicate on the "module_order" field.
func ModuleOrderGTE(v int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldGTE(FieldModuleOrder, v))
}

// ModuleOrderLT applies the LT predicate on the "module_order" field.
func ModuleOrderLT(v int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldLT(FieldModuleOrder, v))
}

// ModuleOrderLTE applies the LTE predicate on the "module_order" field.
func ModuleOrderLTE(v int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldLTE(FieldModuleOrder, v))
}

// SubtopicOrderEQ applies the EQ predicate on the "subtopic_order" field.
func SubtopicOrderEQ(v int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldEQ(FieldSubtopicOrder, v))
}

// SubtopicOrderNEQ applies the NEQ predicate on the "subtopic_order" field.
func SubtopicOrderNEQ(v int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldNEQ(FieldSubtopicOrder, v))
}

// SubtopicOrderIn applies the In predicate on the "subtopic_order" field.
func SubtopicOrderIn(vs ...int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldIn(FieldSubtopicOrder, vs...))
}

// SubtopicOrderNotIn applies the NotIn predicate on the "subtopic_order" field.
func SubtopicOrderNotIn(vs ...int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldNotIn(FieldSubtopicOrder, vs...))
}

// SubtopicOrderGT applies the GT predicate on the "subtopic_order" field.
func SubtopicOrderGT(v int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldGT(FieldSubtopicOrder, v))
}

// SubtopicOrderGTE applies the GTE predicate on the "subtopic_order" field.
func SubtopicOrderGTE(v int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldGTE(FieldSubtopicOrder, v))
}

// SubtopicOrderLT applies the LT predicate on the "subtopic_order" field.
func SubtopicOrderLT(v int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldLT(FieldSubtopicOrder, v))
}

// SubtopicOrderLTE applies the LTE predicate on the "subtopic_order" field.
func SubtopicOrderLTE(v int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldLTE(FieldSubtopicOrder, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldContainsFold(FieldTitle, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Subtopic) predicate.Subtopic {
	return predicate.Subtopic(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Subtopic) predicate.Subtopic {
	return predicate.Subtopic(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Subtopic) predicate.Subtopic {
	return predicate.Subtopic(sql.NotPredicates(p))
}
