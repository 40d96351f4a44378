// Code generated by ent, DO NOT EDIT.

package subtopic

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the subtopic type in the database.
	Label = "subtopic"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCourseID holds the string denoting the course_id field in the database.
	FieldCourseID = "course_id"
	// FieldModuleOrder holds the string denoting the module_order field in the database.
	FieldModuleOrder = "module_order"
	// FieldSubtopicOrder holds the string denoting the subtopic_order field in the database.
	FieldSubtopicOrder = "subtopic_order"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// Table holds the table name of the subtopic in the database.
	Table = "subtopics"
)

// Columns holds all SQL columns for subtopic fields.
var Columns = []string{
	FieldID,
	FieldCourseID,
	FieldModuleOrder,
	FieldSubtopicOrder,
	FieldTitle,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	CourseIDValidator func(string) error
	// ModuleOrderValidator is a validator for the "module_order" field. It is called by the builders before save.
	ModuleOrderValidator func(int) error
	// SubtopicOrderValidator is a validator for the "subtopic_order" field. It is called by the builders before save.
	SubtopicOrderValidator func(int) error
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
)

// OrderOption defines the ordering options for the Subtopic queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCourseID orders the results by the course_id field.
func ByCourseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCourseID, opts...).ToFunc()
}

// ByModuleOrder orders the results by the module_order field.
func ByModuleOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModuleOrder, opts...).ToFunc()
}

// BySubtopicOrder orders the results by the subtopic_order field.
func BySubtopicOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubtopicOrder, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}
