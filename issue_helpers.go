package mibig

// IssueAt creates an Issue at the given path with provided field, code and message.
// This is a convenience helper to improve readability at call sites with many parameters.
func IssueAt(p PathRef, field, code, msg string, params map[string]any) Issue {
	return Issue{Field: field, Path: p.Pointer(), Code: code, Message: msg, Params: params}
}

// NewIssue creates an Issue anchored at the root of the validated value.
func NewIssue(field, code, msg string) Issue {
	return Issue{Field: field, Path: "/", Code: code, Message: msg}
}
