// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/prepdeck/prepdeck/ent/goal"
	"github.com/prepdeck/prepdeck/ent/llmrequestevent"
	"github.com/prepdeck/prepdeck/ent/profile"
	"github.com/prepdeck/prepdeck/ent/report"
	"github.com/prepdeck/prepdeck/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	goalFields := schema.Goal{}.Fields()
	_ = goalFields
	// goalDescDescription is the schema descriptor for description field.
	goalDescDescription := goalFields[1].Descriptor()
	// goal.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	goal.DescriptionValidator = goalDescDescription.Validators[0].(func(string) error)
	// goalDescCurrentValue is the schema descriptor for current_value field.
	goalDescCurrentValue := goalFields[5].Descriptor()
	// goal.DefaultCurrentValue holds the default value on creation for the current_value field.
	goal.DefaultCurrentValue = goalDescCurrentValue.Default.(float64)
	// goalDescStartDate is the schema descriptor for start_date field.
	goalDescStartDate := goalFields[7].Descriptor()
	// goal.DefaultStartDate holds the default value on creation for the start_date field.
	goal.DefaultStartDate = goalDescStartDate.Default.(func() time.Time)
	// goalDescStatus is the schema descriptor for status field.
	goalDescStatus := goalFields[8].Descriptor()
	// goal.DefaultStatus holds the default value on creation for the status field.
	goal.DefaultStatus = goalDescStatus.Default.(string)
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescProvider is the schema descriptor for provider field.
	llmrequesteventDescProvider := llmrequesteventFields[1].Descriptor()
	// llmrequestevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	llmrequestevent.ProviderValidator = llmrequesteventDescProvider.Validators[0].(func(string) error)
	// llmrequesteventDescModel is the schema descriptor for model field.
	llmrequesteventDescModel := llmrequesteventFields[2].Descriptor()
	// llmrequestevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	llmrequestevent.ModelValidator = llmrequesteventDescModel.Validators[0].(func(string) error)
	// llmrequesteventDescPurpose is the schema descriptor for purpose field.
	llmrequesteventDescPurpose := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.PurposeValidator is a validator for the "purpose" field. It is called by the builders before save.
	llmrequestevent.PurposeValidator = llmrequesteventDescPurpose.Validators[0].(func(string) error)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescName is the schema descriptor for name field.
	profileDescName := profileFields[0].Descriptor()
	// profile.DefaultName holds the default value on creation for the name field.
	profile.DefaultName = profileDescName.Default.(string)
	// profileDescDetailLevel is the schema descriptor for detail_level field.
	profileDescDetailLevel := profileFields[1].Descriptor()
	// profile.DefaultDetailLevel holds the default value on creation for the detail_level field.
	profile.DefaultDetailLevel = profileDescDetailLevel.Default.(string)
	reportFields := schema.Report{}.Fields()
	_ = reportFields
	// reportDescSubject is the schema descriptor for subject field.
	reportDescSubject := reportFields[1].Descriptor()
	// report.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	report.SubjectValidator = reportDescSubject.Validators[0].(func(string) error)
	// reportDescCreatedAt is the schema descriptor for created_at field.
	reportDescCreatedAt := reportFields[9].Descriptor()
	// report.DefaultCreatedAt holds the default value on creation for the created_at field.
	report.DefaultCreatedAt = reportDescCreatedAt.Default.(func() time.Time)
	// reportDescDetailLevel is the schema descriptor for detail_level field.
	reportDescDetailLevel := reportFields[13].Descriptor()
	// report.DefaultDetailLevel holds the default value on creation for the detail_level field.
	report.DefaultDetailLevel = reportDescDetailLevel.Default.(string)
}
