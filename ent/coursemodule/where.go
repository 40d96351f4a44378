// Code generated by ent, DO NOT EDIT.

package coursemodule

import (
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/coursegen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldLTE(FieldID, id))
}

// CourseID applies equality check predicate on the "course_id" field. It's identical to CourseIDEQ.
func CourseID(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldEQ(FieldCourseID, v))
}

// ModuleOrder applies equality check predicate on the "module_order" field. It's identical to ModuleOrderEQ.
func ModuleOrder(v int) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldEQ(FieldModuleOrder, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldEQ(FieldDescription, v))
}

// CourseIDEQ applies the EQ predicate on the "course_id" field.
func CourseIDEQ(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldEQ(FieldCourseID, v))
}

// CourseIDNEQ applies the NEQ predicate on the "course_id" field.
func CourseIDNEQ(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldNEQ(FieldCourseID, v))
}

// CourseIDIn applies the In predicate on the "course_id" field.
func CourseIDIn(vs ...string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldIn(FieldCourseID, vs...))
}

// CourseIDNotIn applies the NotIn predicate on the "course_id" field.
func CourseIDNotIn(vs ...string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldNotIn(FieldCourseID, vs...))
}

// CourseIDGT applies the GT predicate on the "course_id" field.
func CourseIDGT(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldGT(FieldCourseID, v))
}

// CourseIDGTE applies the GTE predicate on the "course_id" field.
func CourseIDGTE(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldGTE(FieldCourseID, v))
}

// CourseIDLT applies the LT predicate on the "course_id" field.
func CourseIDLT(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldLT(FieldCourseID, v))
}

// CourseIDLTE applies the LTE predicate on the "course_id" field.
func CourseIDLTE(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldLTE(FieldCourseID, v))
}

// CourseIDContains applies the Contains predicate on the "course_id" field.
func CourseIDContains(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldContains(FieldCourseID, v))
}

// CourseIDHasPrefix applies the HasPrefix predicate on the "course_id" field.
func CourseIDHasPrefix(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldHasPrefix(FieldCourseID, v))
}

// CourseIDHasSuffix applies the HasSuffix predicate on the "course_id" field.
func CourseIDHasSuffix(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldHasSuffix(FieldCourseID, v))
}

// CourseIDEqualFold applies the EqualFold predicate on the "course_id" field.
func CourseIDEqualFold(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldEqualFold(FieldCourseID, v))
}

// CourseIDContainsFold applies the ContainsFold predicate on the "course_id" field.
func CourseIDContainsFold(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldContainsFold(FieldCourseID, v))
}

// ModuleOrderEQ applies the EQ predicate on the "module_order" field.
func ModuleOrderEQ(v int) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldEQ(FieldModuleOrder, v))
}

// ModuleOrderNEQ applies the NEQ predicate on the "module_order" field.
func ModuleOrderNEQ(v int) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldNEQ(FieldModuleOrder, v))
}

// ModuleOrderIn applies the In predicate on the "module_order" field.
func ModuleOrderIn(vs ...int) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldIn(FieldModuleOrder, vs...))
}

// ModuleOrderNotIn applies the NotIn predicate on the "module_order" field.
func ModuleOrderNotIn(vs ...int) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldNotIn(FieldModuleOrder, vs...))
}

// ModuleOrderGT applies the GT predicate on the "module_order" field.
func ModuleOrderGT(v int) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldGT(FieldModuleOrder, v))
}

// ModuleOrderGTE applies the GTE predicate on the "module_order" field.
func ModuleOrderGTE(v int) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldGTE(FieldModuleOrder, v))
}

// ModuleOrderLT applies the LT predicate on the "module_order" field.
func ModuleOrderLT(v int) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldLT(FieldModuleOrder, v))
}

// ModuleOrderLTE applies the LTE predicate on the "module_order" field.
func ModuleOrderLTE(v int) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldLTE(FieldModuleOrder, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldContainsFold(FieldDescription, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CourseModule) predicate.CourseModule {
	return predicate.CourseModule(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CourseModule) predicate.CourseModule {
	return predicate.CourseModule(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CourseModule) predicate.CourseModule {
	return predicate.CourseModule(sql.NotPredicates(p))
}
