package logging

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldEventType classifies log events for filtering and alerting.
	FieldEventType = "event_type"
	// FieldErrorHint carries the suggested next step for a logged failure.
	FieldErrorHint = "error_hint"
	// FieldCorrelationToken is the key for the per-frame correlation token.
	FieldCorrelationToken = "correlation_token"
	// FieldInstruction is the key for raw instruction text.
	FieldInstruction = "instruction"
	// FieldParameter is the key for parameter names.
	FieldParameter = "parameter"
	// FieldTask is the key for task names.
	FieldTask = "task"
)
