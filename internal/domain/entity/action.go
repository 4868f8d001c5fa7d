package entity

// ActionID identifies an editing action. IDs are kebab-case and stable
// because they key persisted settings.
type ActionID string

const (
	ActionCutLine              ActionID = "cut-line"
	ActionCopyLine             ActionID = "copy-line"
	ActionPasteLine            ActionID = "paste-line"
	ActionDeleteLine           ActionID = "delete-line"
	ActionInsertLineBelow      ActionID = "insert-line-below"
	ActionInsertLineAbove      ActionID = "insert-line-above"
	ActionMoveLineUp           ActionID = "move-line-up"
	ActionMoveLineDown         ActionID = "move-line-down"
	ActionDuplicateLineUp      ActionID = "duplicate-line-up"
	ActionDuplicateLineDown    ActionID = "duplicate-line-down"
	ActionIndentLine           ActionID = "indent-line"
	ActionOutdentLine          ActionID = "outdent-line"
	ActionToggleLineComment    ActionID = "toggle-line-comment"
	ActionAddLineComment       ActionID = "add-line-comment"
	ActionRemoveLineComment    ActionID = "remove-line-comment"
	ActionToggleBlockComment   ActionID = "toggle-block-comment"
	ActionSelectNextOccurrence ActionID = "select-next-occurrence"
	ActionTrimTrailingSpace    ActionID = "trim-trailing-whitespace"
	ActionTransformUppercase   ActionID = "transform-uppercase"
	ActionTransformLowercase   ActionID = "transform-lowercase"
	ActionTransformTitlecase   ActionID = "transform-titlecase"
)

// Action categories, used for grouping in listings.
const (
	CategoryClipboard = "clipboard"
	CategoryLines     = "lines"
	CategoryIndent    = "indentation"
	CategoryComments  = "comments"
	CategorySelection = "selection"
	CategoryCase      = "case"
	CategoryCleanup   = "cleanup"
)

// ActionConfig is a catalog entry describing an action and its defaults.
type ActionConfig struct {
	ID             ActionID
	DefaultKey     string
	Description    string
	Category       string
	DefaultEnabled bool
}

// IsChord reports whether the default key is a two-part chord.
func (a ActionConfig) IsChord() bool {
	return IsChordKey(a.DefaultKey)
}

var defaultActions = []ActionConfig{
	{ActionCutLine, "Ctrl+X", "Cut the current line when nothing is selected", CategoryClipboard, true},
	{ActionCopyLine, "Ctrl+C", "Copy the current line when nothing is selected", CategoryClipboard, true},
	{ActionPasteLine, "Ctrl+V", "Paste a copied line above the current line", CategoryClipboard, true},
	{ActionDeleteLine, "Ctrl+Shift+K", "Delete the current line", CategoryLines, true},
	{ActionInsertLineBelow, "Ctrl+Enter", "Insert a line below", CategoryLines, true},
	{ActionInsertLineAbove, "Ctrl+Shift+Enter", "Insert a line above", CategoryLines, true},
	{ActionMoveLineUp, "Alt+ArrowUp", "Move line up", CategoryLines, true},
	{ActionMoveLineDown, "Alt+ArrowDown", "Move line down", CategoryLines, true},
	{ActionDuplicateLineUp, "Shift+Alt+ArrowUp", "Copy line up", CategoryLines, true},
	{ActionDuplicateLineDown, "Shift+Alt+ArrowDown", "Copy line down", CategoryLines, true},
	{ActionIndentLine, "Ctrl+]", "Indent line", CategoryIndent, true},
	{ActionOutdentLine, "Ctrl+[", "Outdent line", CategoryIndent, true},
	{ActionToggleLineComment, "Ctrl+/", "Toggle line comment", CategoryComments, true},
	{ActionAddLineComment, "Ctrl+K Ctrl+C", "Add line comment", CategoryComments, true},
	{ActionRemoveLineComment, "Ctrl+K Ctrl+U", "Remove line comment", CategoryComments, true},
	{ActionToggleBlockComment, "Shift+Alt+A", "Toggle block comment", CategoryComments, true},
	{ActionSelectNextOccurrence, "Ctrl+D", "Select word or next occurrence", CategorySelection, true},
	{ActionTrimTrailingSpace, "Ctrl+K Ctrl+X", "Trim trailing whitespace", CategoryCleanup, true},
	{ActionTransformUppercase, "Ctrl+Alt+U", "Transform to uppercase", CategoryCase, false},
	{ActionTransformLowercase, "Ctrl+Alt+L", "Transform to lowercase", CategoryCase, false},
	{ActionTransformTitlecase, "Ctrl+Alt+T", "Transform to title case", CategoryCase, false},
}

// DefaultActions returns the action catalog in registration order.
// The returned slice is a copy.
func DefaultActions() []ActionConfig {
	out := make([]ActionConfig, len(defaultActions))
	copy(out, defaultActions)
	return out
}

// LookupAction returns the catalog entry for id.
func LookupAction(id ActionID) (ActionConfig, bool) {
	for _, a := range defaultActions {
		if a.ID == id {
			return a, true
		}
	}
	return ActionConfig{}, false
}
