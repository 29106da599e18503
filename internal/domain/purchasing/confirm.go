package purchasing

// Prompts shown to the user before destructive edits
const (
	PromptDeleteLastItem = "Delete the last item?"
	PromptReset          = "Are you sure you want to reset all fields? This cannot be undone."
)

// Confirmer asks the user a yes/no question before a destructive edit
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a plain function to Confirmer
type ConfirmFunc func(prompt string) bool

// Confirm calls f(prompt)
func (f ConfirmFunc) Confirm(prompt string) bool {
	return f(prompt)
}

var (
	// Accept answers yes to every prompt
	Accept Confirmer = ConfirmFunc(func(string) bool { return true })
	// Decline answers no to every prompt
	Decline Confirmer = ConfirmFunc(func(string) bool { return false })
)

// Answer returns Accept when ok is true and Decline otherwise.
// Used when the answer was collected before the request was made.
func Answer(ok bool) Confirmer {
	if ok {
		return Accept
	}
	return Decline
}

func confirmed(c Confirmer, prompt string) bool {
	if c == nil {
		return false
	}
	return c.Confirm(prompt)
}
