// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/coursegen/ent/course"
	"github.com/abhisek/coursegen/ent/coursemodule"
	"github.com/abhisek/coursegen/ent/lessoncontent"
	"github.com/abhisek/coursegen/ent/llmrequestevent"
	"github.com/abhisek/coursegen/ent/schema"
	"github.com/abhisek/coursegen/ent/subtopic"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	courseFields := schema.Course{}.Fields()
	_ = courseFields
	// courseDescGoal is the schema descriptor for goal field.
	courseDescGoal := courseFields[1].Descriptor()
	// course.GoalValidator is a validator for the "goal" field. It is called by the builders before save.
	course.GoalValidator = courseDescGoal.Validators[0].(func(string) error)
	// courseDescKnowledgeProfile is the schema descriptor for knowledge_profile field.
	courseDescKnowledgeProfile := courseFields[2].Descriptor()
	// course.DefaultKnowledgeProfile holds the default value on creation for the knowledge_profile field.
	course.DefaultKnowledgeProfile = courseDescKnowledgeProfile.Default.(string)
	// courseDescTitle is the schema descriptor for title field.
	courseDescTitle := courseFields[3].Descriptor()
	// course.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	course.TitleValidator = courseDescTitle.Validators[0].(func(string) error)
	// courseDescDescription is the schema descriptor for description field.
	courseDescDescription := courseFields[4].Descriptor()
	// course.DefaultDescription holds the default value on creation for the description field.
	course.DefaultDescription = courseDescDescription.Default.(string)
	// courseDescCreatedAt is the schema descriptor for created_at field.
	courseDescCreatedAt := courseFields[5].Descriptor()
	// course.DefaultCreatedAt holds the default value on creation for the created_at field.
	course.DefaultCreatedAt = courseDescCreatedAt.Default.(func() time.Time)
	coursemoduleFields := schema.CourseModule{}.Fields()
	_ = coursemoduleFields
	// coursemoduleDescCourseID is the schema descriptor for course_id field.
	coursemoduleDescCourseID := coursemoduleFields[0].Descriptor()
	// coursemodule.CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	coursemodule.CourseIDValidator = coursemoduleDescCourseID.Validators[0].(func(string) error)
	// coursemoduleDescModuleOrder is the schema descriptor for module_order field.
	coursemoduleDescModuleOrder := coursemoduleFields[1].Descriptor()
	// coursemodule.ModuleOrderValidator is a validator for the "module_order" field. It is called by the builders before save.
	coursemodule.ModuleOrderValidator = coursemoduleDescModuleOrder.Validators[0].(func(int) error)
	// coursemoduleDescTitle is the schema descriptor for title field.
	coursemoduleDescTitle := coursemoduleFields[2].Descriptor()
	// coursemodule.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	coursemodule.TitleValidator = coursemoduleDescTitle.Validators[0].(func(string) error)
	// coursemoduleDescDescription is the schema descriptor for description field.
	coursemoduleDescDescription := coursemoduleFields[3].Descriptor()
	// coursemodule.DefaultDescription holds the default value on creation for the description field.
	coursemodule.DefaultDescription = coursemoduleDescDescription.Default.(string)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	lessoncontentFields := schema.LessonContent{}.Fields()
	_ = lessoncontentFields
	// lessoncontentDescCourseID is the schema descriptor for course_id field.
	lessoncontentDescCourseID := lessoncontentFields[0].Descriptor()
	// lessoncontent.CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	lessoncontent.CourseIDValidator = lessoncontentDescCourseID.Validators[0].(func(string) error)
	// lessoncontentDescModuleOrder is the schema descriptor for module_order field.
	lessoncontentDescModuleOrder := lessoncontentFields[1].Descriptor()
	// lessoncontent.ModuleOrderValidator is a validator for the "module_order" field. It is called by the builders before save.
	lessoncontent.ModuleOrderValidator = lessoncontentDescModuleOrder.Validators[0].(func(int) error)
	// lessoncontentDescSubtopicOrder is the schema descriptor for subtopic_order field.
	lessoncontentDescSubtopicOrder := lessoncontentFields[2].Descriptor()
	// lessoncontent.SubtopicOrderValidator is a validator for the "subtopic_order" field. It is called by the builders before save.
	lessoncontent.SubtopicOrderValidator = lessoncontentDescSubtopicOrder.Validators[0].(func(int) error)
	// lessoncontentDescTitle is the schema descriptor for title field.
	lessoncontentDescTitle := lessoncontentFields[3].Descriptor()
	// lessoncontent.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	lessoncontent.TitleValidator = lessoncontentDescTitle.Validators[0].(func(string) error)
	// lessoncontentDescContent is the schema descriptor for content field.
	lessoncontentDescContent := lessoncontentFields[4].Descriptor()
	// lessoncontent.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	lessoncontent.ContentValidator = lessoncontentDescContent.Validators[0].(func(string) error)
	// lessoncontentDescEstimatedReadTimeMin is the schema descriptor for estimated_read_time_min field.
	lessoncontentDescEstimatedReadTimeMin := lessoncontentFields[5].Descriptor()
	// lessoncontent.DefaultEstimatedReadTimeMin holds the default value on creation for the estimated_read_time_min field.
	lessoncontent.DefaultEstimatedReadTimeMin = lessoncontentDescEstimatedReadTimeMin.Default.(int)
	// lessoncontentDescModel is the schema descriptor for model field.
	lessoncontentDescModel := lessoncontentFields[6].Descriptor()
	// lessoncontent.DefaultModel holds the default value on creation for the model field.
	lessoncontent.DefaultModel = lessoncontentDescModel.Default.(string)
	// lessoncontentDescUpdatedAt is the schema descriptor for updated_at field.
	lessoncontentDescUpdatedAt := lessoncontentFields[7].Descriptor()
	// lessoncontent.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	lessoncontent.DefaultUpdatedAt = lessoncontentDescUpdatedAt.Default.(func() time.Time)
	// lessoncontent.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	lessoncontent.UpdateDefaultUpdatedAt = lessoncontentDescUpdatedAt.UpdateDefault.(func() time.Time)
	subtopicFields := schema.Subtopic{}.Fields()
	_ = subtopicFields
	// subtopicDescCourseID is the schema descriptor for course_id field.
	subtopicDescCourseID := subtopicFields[0].Descriptor()
	// subtopic.CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	subtopic.CourseIDValidator = subtopicDescCourseID.Validators[0].(func(string) error)
	// subtopicDescModuleOrder is the schema descriptor for module_order field.
	subtopicDescModuleOrder := subtopicFields[1].Descriptor()
	// subtopic.ModuleOrderValidator is a validator for the "module_order" field. It is called by the builders before save.
	subtopic.ModuleOrderValidator = subtopicDescModuleOrder.Validators[0].(func(int) error)
	// subtopicDescSubtopicOrder is the schema descriptor for subtopic_order field.
	subtopicDescSubtopicOrder := subtopicFields[2].Descriptor()
	// subtopic.SubtopicOrderValidator is a validator for the "subtopic_order" field. It is called by the builders before save.
	subtopic.SubtopicOrderValidator = subtopicDescSubtopicOrder.Validators[0].(func(int) error)
	// subtopicDescTitle is the schema descriptor for title field.
	subtopicDescTitle := subtopicFields[3].Descriptor()
	// subtopic.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	subtopic.TitleValidator = subtopicDescTitle.Validators[0].(func(string) error)
}
