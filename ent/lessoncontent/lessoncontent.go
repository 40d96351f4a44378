// Code generated by ent, DO NOT EDIT.

package lessoncontent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the lessoncontent type in the database.
	Label = "lesson_content"
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
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldEstimatedReadTimeMin holds the string denoting the estimated_read_time_min field in the database.
	FieldEstimatedReadTimeMin = "estimated_read_time_min"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the lessoncontent in the database.
	Table = "lesson_contents"
)

// Columns holds all SQL columns for lessoncontent fields.
var Columns = []string{
	FieldID,
	FieldCourseID,
	FieldModuleOrder,
	FieldSubtopicOrder,
	FieldTitle,
	FieldContent,
	FieldEstimatedReadTimeMin,
	FieldModel,
	FieldUpdatedAt,
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
	// ContentValidator is a validator for the "content" field. It is called by the builders before save.
	ContentValidator func(string) error
	// DefaultEstimatedReadTimeMin holds the default value on creation for the "estimated_read_time_min" field.
	DefaultEstimatedReadTimeMin int
	// DefaultModel holds the default value on creation for the "model" field.
	DefaultModel string
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the LessonContent queries.
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

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByEstimatedReadTimeMin orders the results by the estimated_read_time_min field.
func ByEstimatedReadTimeMin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedReadTimeMin, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
