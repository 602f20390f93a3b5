// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/lexio/ent/attemptevent"
	"github.com/abhisek/lexio/ent/learningitem"
	"github.com/abhisek/lexio/ent/llmrequestevent"
	"github.com/abhisek/lexio/ent/schema"
	"github.com/abhisek/lexio/ent/stageevent"
	"github.com/abhisek/lexio/ent/vocabentry"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescSessionID is the schema descriptor for session_id field.
	attempteventDescSessionID := attempteventFields[0].Descriptor()
	// attemptevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	attemptevent.SessionIDValidator = attempteventDescSessionID.Validators[0].(func(string) error)
	// attempteventDescItemID is the schema descriptor for item_id field.
	attempteventDescItemID := attempteventFields[1].Descriptor()
	// attemptevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	attemptevent.ItemIDValidator = attempteventDescItemID.Validators[0].(func(string) error)
	// attempteventDescEntryID is the schema descriptor for entry_id field.
	attempteventDescEntryID := attempteventFields[2].Descriptor()
	// attemptevent.EntryIDValidator is a validator for the "entry_id" field. It is called by the builders before save.
	attemptevent.EntryIDValidator = attempteventDescEntryID.Validators[0].(func(string) error)
	// attempteventDescMode is the schema descriptor for mode field.
	attempteventDescMode := attempteventFields[3].Descriptor()
	// attemptevent.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	attemptevent.ModeValidator = attempteventDescMode.Validators[0].(func(string) error)
	// attempteventDescStage is the schema descriptor for stage field.
	attempteventDescStage := attempteventFields[6].Descriptor()
	// attemptevent.StageValidator is a validator for the "stage" field. It is called by the builders before save.
	attemptevent.StageValidator = attempteventDescStage.Validators[0].(func(string) error)
	// attempteventDescPriorityScore is the schema descriptor for priority_score field.
	attempteventDescPriorityScore := attempteventFields[7].Descriptor()
	// attemptevent.DefaultPriorityScore holds the default value on creation for the priority_score field.
	attemptevent.DefaultPriorityScore = attempteventDescPriorityScore.Default.(int)
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
	learningitemFields := schema.LearningItem{}.Fields()
	_ = learningitemFields
	// learningitemDescEntryID is the schema descriptor for entry_id field.
	learningitemDescEntryID := learningitemFields[1].Descriptor()
	// learningitem.EntryIDValidator is a validator for the "entry_id" field. It is called by the builders before save.
	learningitem.EntryIDValidator = learningitemDescEntryID.Validators[0].(func(string) error)
	// learningitemDescStage is the schema descriptor for stage field.
	learningitemDescStage := learningitemFields[2].Descriptor()
	// learningitem.DefaultStage holds the default value on creation for the stage field.
	learningitem.DefaultStage = learningitemDescStage.Default.(string)
	// learningitemDescEaseFactor is the schema descriptor for ease_factor field.
	learningitemDescEaseFactor := learningitemFields[3].Descriptor()
	// learningitem.DefaultEaseFactor holds the default value on creation for the ease_factor field.
	learningitem.DefaultEaseFactor = learningitemDescEaseFactor.Default.(float64)
	// learningitemDescIntervalDays is the schema descriptor for interval_days field.
	learningitemDescIntervalDays := learningitemFields[4].Descriptor()
	// learningitem.DefaultIntervalDays holds the default value on creation for the interval_days field.
	learningitem.DefaultIntervalDays = learningitemDescIntervalDays.Default.(int)
	// learningitemDescRepetitions is the schema descriptor for repetitions field.
	learningitemDescRepetitions := learningitemFields[5].Descriptor()
	// learningitem.DefaultRepetitions holds the default value on creation for the repetitions field.
	learningitem.DefaultRepetitions = learningitemDescRepetitions.Default.(int)
	// learningitemDescCorrectCount is the schema descriptor for correct_count field.
	learningitemDescCorrectCount := learningitemFields[7].Descriptor()
	// learningitem.DefaultCorrectCount holds the default value on creation for the correct_count field.
	learningitem.DefaultCorrectCount = learningitemDescCorrectCount.Default.(int)
	// learningitemDescIncorrectCount is the schema descriptor for incorrect_count field.
	learningitemDescIncorrectCount := learningitemFields[8].Descriptor()
	// learningitem.DefaultIncorrectCount holds the default value on creation for the incorrect_count field.
	learningitem.DefaultIncorrectCount = learningitemDescIncorrectCount.Default.(int)
	// learningitemDescAddedAt is the schema descriptor for added_at field.
	learningitemDescAddedAt := learningitemFields[10].Descriptor()
	// learningitem.DefaultAddedAt holds the default value on creation for the added_at field.
	learningitem.DefaultAddedAt = learningitemDescAddedAt.Default.(func() time.Time)
	// learningitemDescTier is the schema descriptor for tier field.
	learningitemDescTier := learningitemFields[11].Descriptor()
	// learningitem.DefaultTier holds the default value on creation for the tier field.
	learningitem.DefaultTier = learningitemDescTier.Default.(string)
	// learningitemDescPriorityScore is the schema descriptor for priority_score field.
	learningitemDescPriorityScore := learningitemFields[12].Descriptor()
	// learningitem.DefaultPriorityScore holds the default value on creation for the priority_score field.
	learningitem.DefaultPriorityScore = learningitemDescPriorityScore.Default.(int)
	// learningitemDescID is the schema descriptor for id field.
	learningitemDescID := learningitemFields[0].Descriptor()
	// learningitem.IDValidator is a validator for the "id" field. It is called by the builders before save.
	learningitem.IDValidator = learningitemDescID.Validators[0].(func(string) error)
	stageeventMixin := schema.StageEvent{}.Mixin()
	stageeventMixinFields0 := stageeventMixin[0].Fields()
	_ = stageeventMixinFields0
	stageeventFields := schema.StageEvent{}.Fields()
	_ = stageeventFields
	// stageeventDescTimestamp is the schema descriptor for timestamp field.
	stageeventDescTimestamp := stageeventMixinFields0[1].Descriptor()
	// stageevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	stageevent.DefaultTimestamp = stageeventDescTimestamp.Default.(func() time.Time)
	// stageeventDescItemID is the schema descriptor for item_id field.
	stageeventDescItemID := stageeventFields[0].Descriptor()
	// stageevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	stageevent.ItemIDValidator = stageeventDescItemID.Validators[0].(func(string) error)
	// stageeventDescFromStage is the schema descriptor for from_stage field.
	stageeventDescFromStage := stageeventFields[1].Descriptor()
	// stageevent.FromStageValidator is a validator for the "from_stage" field. It is called by the builders before save.
	stageevent.FromStageValidator = stageeventDescFromStage.Validators[0].(func(string) error)
	// stageeventDescToStage is the schema descriptor for to_stage field.
	stageeventDescToStage := stageeventFields[2].Descriptor()
	// stageevent.ToStageValidator is a validator for the "to_stage" field. It is called by the builders before save.
	stageevent.ToStageValidator = stageeventDescToStage.Validators[0].(func(string) error)
	// stageeventDescTrigger is the schema descriptor for trigger field.
	stageeventDescTrigger := stageeventFields[3].Descriptor()
	// stageevent.TriggerValidator is a validator for the "trigger" field. It is called by the builders before save.
	stageevent.TriggerValidator = stageeventDescTrigger.Validators[0].(func(string) error)
	// stageeventDescSessionID is the schema descriptor for session_id field.
	stageeventDescSessionID := stageeventFields[4].Descriptor()
	// stageevent.DefaultSessionID holds the default value on creation for the session_id field.
	stageevent.DefaultSessionID = stageeventDescSessionID.Default.(string)
	vocabentryFields := schema.VocabEntry{}.Fields()
	_ = vocabentryFields
	// vocabentryDescTerm is the schema descriptor for term field.
	vocabentryDescTerm := vocabentryFields[1].Descriptor()
	// vocabentry.TermValidator is a validator for the "term" field. It is called by the builders before save.
	vocabentry.TermValidator = vocabentryDescTerm.Validators[0].(func(string) error)
	// vocabentryDescTranslation is the schema descriptor for translation field.
	vocabentryDescTranslation := vocabentryFields[2].Descriptor()
	// vocabentry.TranslationValidator is a validator for the "translation" field. It is called by the builders before save.
	vocabentry.TranslationValidator = vocabentryDescTranslation.Validators[0].(func(string) error)
	// vocabentryDescPartOfSpeech is the schema descriptor for part_of_speech field.
	vocabentryDescPartOfSpeech := vocabentryFields[3].Descriptor()
	// vocabentry.DefaultPartOfSpeech holds the default value on creation for the part_of_speech field.
	vocabentry.DefaultPartOfSpeech = vocabentryDescPartOfSpeech.Default.(string)
	// vocabentryDescDefinition is the schema descriptor for definition field.
	vocabentryDescDefinition := vocabentryFields[4].Descriptor()
	// vocabentry.DefaultDefinition holds the default value on creation for the definition field.
	vocabentry.DefaultDefinition = vocabentryDescDefinition.Default.(string)
	// vocabentryDescMnemonic is the schema descriptor for mnemonic field.
	vocabentryDescMnemonic := vocabentryFields[6].Descriptor()
	// vocabentry.DefaultMnemonic holds the default value on creation for the mnemonic field.
	vocabentry.DefaultMnemonic = vocabentryDescMnemonic.Default.(string)
	// vocabentryDescTier is the schema descriptor for tier field.
	vocabentryDescTier := vocabentryFields[7].Descriptor()
	// vocabentry.DefaultTier holds the default value on creation for the tier field.
	vocabentry.DefaultTier = vocabentryDescTier.Default.(string)
	// vocabentryDescTopic is the schema descriptor for topic field.
	vocabentryDescTopic := vocabentryFields[8].Descriptor()
	// vocabentry.DefaultTopic holds the default value on creation for the topic field.
	vocabentry.DefaultTopic = vocabentryDescTopic.Default.(string)
	// vocabentryDescCreatedAt is the schema descriptor for created_at field.
	vocabentryDescCreatedAt := vocabentryFields[9].Descriptor()
	// vocabentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	vocabentry.DefaultCreatedAt = vocabentryDescCreatedAt.Default.(func() time.Time)
	// vocabentryDescID is the schema descriptor for id field.
	vocabentryDescID := vocabentryFields[0].Descriptor()
	// vocabentry.IDValidator is a validator for the "id" field. It is called by the builders before save.
	vocabentry.IDValidator = vocabentryDescID.Validators[0].(func(string) error)
}
