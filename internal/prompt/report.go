package prompt

// Status is the outcome of an invocation that got as far as parsing.
type Status string

const (
	StatusOK      Status = "ok"
	StatusInvalid Status = "invalid"
)

// Report is the result of one prompt, read and parse cycle.
type Report struct {
	// Input is the raw line as read, terminator included.
	Input string `json:"input" yaml:"input" jsonschema:"description=Raw line as read from the console"`
	// Trimmed is Input without surrounding whitespace.
	Trimmed string `json:"trimmed" yaml:"trimmed" jsonschema:"description=Input with surrounding whitespace removed"`
	Status  Status `json:"status" yaml:"status" jsonschema:"enum=ok,enum=invalid"`
	// Value is set only when Status is ok.
	Value  *int32           `json:"value,omitempty" yaml:"value,omitempty" jsonschema:"description=Parsed number when status is ok"`
	Reason ValidationReason `json:"reason,omitempty" yaml:"reason,omitempty" jsonschema:"enum=empty,enum=syntax,enum=range"`
	// Message is the line shown to the user.
	Message string `json:"message" yaml:"message"`
}

// OK reports whether a number was parsed.
func (r Report) OK() bool {
	return r.Status == StatusOK && r.Value != nil
}
