package mcp

// ValidationError reports missing or absent required invocation
// arguments.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// UnknownToolError reports an invocation of an unregistered tool name.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string { return "Unknown tool: " + e.Name }
