package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/linekeys/internal/application/port"
	"github.com/bnema/linekeys/internal/application/port/mocks"
	"github.com/bnema/linekeys/internal/domain/entity"
)

func newEditUseCase(t *testing.T) (*EditActionsUseCase, *mocks.MockClipboard, *mocks.MockNotification) {
	t.Helper()
	clip := mocks.NewMockClipboard(t)
	notifier := mocks.NewMockNotification(t)
	uc := NewEditActionsUseCase(clip, notifier, EditOptions{PasteGuard: time.Millisecond})
	return uc, clip, notifier
}

func TestEditActionsUseCase_CopyLine(t *testing.T) {
	uc, clip, notifier := newEditUseCase(t)
	clip.EXPECT().WriteText(mock.Anything, "hello\n").Return(nil)
	notifier.EXPECT().Show(mock.Anything, "surface-1", "Line copied", port.NotificationSuccess, DefaultFeedbackDurationMs).Return("")

	buf := newFakeBuffer("hello\nworld", 2, 2)
	err := uc.Execute(context.Background(), buf, entity.ActionCopyLine)

	require.NoError(t, err)
	assert.Equal(t, "hello\nworld", buf.value)
	assert.Empty(t, buf.replacements)
}

func TestEditActionsUseCase_CopyEmptyLine(t *testing.T) {
	uc, clip, notifier := newEditUseCase(t)
	clip.EXPECT().WriteText(mock.Anything, "\n").Return(nil)
	notifier.EXPECT().Show(mock.Anything, mock.Anything, "Line copied", port.NotificationSuccess, mock.Anything).Return("")

	buf := newFakeBuffer("one\n\nthree", 4, 4)
	require.NoError(t, uc.Execute(context.Background(), buf, entity.ActionCopyLine))
}

func TestEditActionsUseCase_CutLine(t *testing.T) {
	uc, clip, notifier := newEditUseCase(t)
	clip.EXPECT().WriteText(mock.Anything, "two\n").Return(nil)
	notifier.EXPECT().Show(mock.Anything, "surface-1", "Line cut", port.NotificationSuccess, mock.Anything).Return("")

	buf := newFakeBuffer("one\ntwo\nthree", 5, 5)
	require.NoError(t, uc.Execute(context.Background(), buf, entity.ActionCutLine))

	assert.Equal(t, "one\nthree", buf.value)
	assert.Equal(t, 4, buf.start)
	assert.Equal(t, 4, buf.end)
	require.Len(t, buf.replacements, 1)
	// only the differing span "wo\nt" is replaced
	assert.Equal(t, port.Replacement{Text: "", Start: 5, End: 9, Selection: &port.Range{Start: 4, End: 4}}, buf.replacements[0])
}

func TestEditActionsUseCase_ClipboardFailureLeavesBufferUntouched(t *testing.T) {
	uc, clip, notifier := newEditUseCase(t)
	clip.EXPECT().WriteText(mock.Anything, "two\n").Return(errors.New("permission denied"))
	notifier.EXPECT().Show(mock.Anything, "surface-1", "Clipboard write failed", port.NotificationError, mock.Anything).Return("")

	buf := newFakeBuffer("one\ntwo\nthree", 5, 5)
	err := uc.Execute(context.Background(), buf, entity.ActionCutLine)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
	assert.Equal(t, "one\ntwo\nthree", buf.value)
	assert.Empty(t, buf.replacements)
}

func TestEditActionsUseCase_PasteLinePayload(t *testing.T) {
	uc, clip, _ := newEditUseCase(t)
	clip.EXPECT().ReadText(mock.Anything).Return("x\n", nil)

	buf := newFakeBuffer("one\ntwo", 5, 5)
	require.NoError(t, uc.Execute(context.Background(), buf, entity.ActionPasteLine))

	assert.Equal(t, "one\nx\ntwo", buf.value)
	assert.Equal(t, 6, buf.start)
	assert.Equal(t, 6, buf.end)
}

func TestEditActionsUseCase_PasteReadFailure(t *testing.T) {
	uc, clip, notifier := newEditUseCase(t)
	clip.EXPECT().ReadText(mock.Anything).Return("", errors.New("no access"))
	notifier.EXPECT().Show(mock.Anything, mock.Anything, "Clipboard read failed", port.NotificationError, mock.Anything).Return("")

	buf := newFakeBuffer("one", 1, 1)
	require.Error(t, uc.Execute(context.Background(), buf, entity.ActionPasteLine))
	assert.Equal(t, "one", buf.value)
}

func TestEditActionsUseCase_NativePassthrough(t *testing.T) {
	t.Run("cut with selection", func(t *testing.T) {
		uc, _, _ := newEditUseCase(t)
		buf := &nativeBuffer{fakeBuffer: newFakeBuffer("hello world", 0, 5)}

		require.NoError(t, uc.Execute(context.Background(), buf, entity.ActionCutLine))
		assert.Equal(t, []string{"cut"}, buf.native)
		assert.Equal(t, "hello world", buf.value)
	})

	t.Run("copy with selection", func(t *testing.T) {
		uc, _, _ := newEditUseCase(t)
		buf := &nativeBuffer{fakeBuffer: newFakeBuffer("hello world", 0, 5)}

		require.NoError(t, uc.Execute(context.Background(), buf, entity.ActionCopyLine))
		assert.Equal(t, []string{"copy"}, buf.native)
	})

	t.Run("paste of plain text", func(t *testing.T) {
		uc, clip, _ := newEditUseCase(t)
		clip.EXPECT().ReadText(mock.Anything).Return("plain", nil)
		buf := &nativeBuffer{fakeBuffer: newFakeBuffer("hello", 5, 5)}

		require.NoError(t, uc.Execute(context.Background(), buf, entity.ActionPasteLine))
		assert.Equal(t, []string{"paste"}, buf.native)
		assert.Equal(t, "hello", buf.value)
	})

	t.Run("paste of a line stays line aware", func(t *testing.T) {
		uc, clip, _ := newEditUseCase(t)
		clip.EXPECT().ReadText(mock.Anything).Return("x\n", nil)
		buf := &nativeBuffer{fakeBuffer: newFakeBuffer("one\ntwo", 5, 5)}

		require.NoError(t, uc.Execute(context.Background(), buf, entity.ActionPasteLine))
		assert.Empty(t, buf.native)
		assert.Equal(t, "one\nx\ntwo", buf.value)
	})
}

func TestEditActionsUseCase_SingleLineSurface(t *testing.T) {
	for _, action := range []entity.ActionID{
		entity.ActionInsertLineBelow,
		entity.ActionInsertLineAbove,
		entity.ActionMoveLineUp,
		entity.ActionMoveLineDown,
		entity.ActionDuplicateLineUp,
		entity.ActionDuplicateLineDown,
	} {
		t.Run(string(action), func(t *testing.T) {
			uc, _, _ := newEditUseCase(t)
			buf := newFakeBuffer("abc", 1, 1)
			buf.single = true

			require.NoError(t, uc.Execute(context.Background(), buf, action))
			assert.Equal(t, "abc", buf.value)
			assert.Empty(t, buf.replacements)
		})
	}
}

func TestEditActionsUseCase_LineOperations(t *testing.T) {
	tests := []struct {
		name      string
		action    entity.ActionID
		value     string
		start     int
		end       int
		wantValue string
		wantStart int
		wantEnd   int
	}{
		{"move down", entity.ActionMoveLineDown, "a\nb\nc", 0, 0, "b\na\nc", 2, 2},
		{"move up", entity.ActionMoveLineUp, "a\nb\nc", 2, 2, "b\na\nc", 0, 0},
		{"duplicate down", entity.ActionDuplicateLineDown, "a\nb", 0, 0, "a\na\nb", 2, 2},
		{"indent", entity.ActionIndentLine, "foo", 1, 1, "\tfoo", 2, 2},
		{"outdent", entity.ActionOutdentLine, "    foo", 5, 5, "foo", 1, 1},
		{"delete", entity.ActionDeleteLine, "a\nb\nc", 2, 2, "a\nc", 2, 2},
		{"toggle comment", entity.ActionToggleLineComment, "foo", 0, 0, "// foo", 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _, _ := newEditUseCase(t)
			buf := newFakeBuffer(tt.value, tt.start, tt.end)

			require.NoError(t, uc.Execute(context.Background(), buf, tt.action))
			assert.Equal(t, tt.wantValue, buf.value)
			assert.Equal(t, tt.wantStart, buf.start)
			assert.Equal(t, tt.wantEnd, buf.end)
		})
	}
}

func TestEditActionsUseCase_MoveAtEdgeIsNoop(t *testing.T) {
	uc, _, _ := newEditUseCase(t)
	buf := newFakeBuffer("a\nb", 0, 0)

	require.NoError(t, uc.Execute(context.Background(), buf, entity.ActionMoveLineUp))
	assert.Equal(t, "a\nb", buf.value)
	assert.Empty(t, buf.replacements)
}

func TestEditActionsUseCase_SelectNextOccurrence(t *testing.T) {
	uc, _, notifier := newEditUseCase(t)
	ctx := context.Background()
	buf := newFakeBuffer("word1 word2 word1 word3", 2, 2)

	require.NoError(t, uc.Execute(ctx, buf, entity.ActionSelectNextOccurrence))
	assert.Equal(t, []int{0, 5}, []int{buf.start, buf.end})
	assert.Equal(t, "word1", uc.SearchTerm("surface-1"))

	require.NoError(t, uc.Execute(ctx, buf, entity.ActionSelectNextOccurrence))
	assert.Equal(t, []int{12, 17}, []int{buf.start, buf.end})

	// a new selection becomes the term without moving
	buf.SetSelection(6, 11)
	notifier.EXPECT().Show(mock.Anything, "surface-1", `Searching for "word2"`, port.NotificationInfo, mock.Anything).Return("")
	require.NoError(t, uc.Execute(ctx, buf, entity.ActionSelectNextOccurrence))
	assert.Equal(t, []int{6, 11}, []int{buf.start, buf.end})
	assert.Equal(t, "word2", uc.SearchTerm("surface-1"))

	notifier.EXPECT().Show(mock.Anything, "surface-1", `No more occurrences of "word2"`, port.NotificationInfo, mock.Anything).Return("")
	require.NoError(t, uc.Execute(ctx, buf, entity.ActionSelectNextOccurrence))
	assert.Equal(t, []int{6, 11}, []int{buf.start, buf.end})

	uc.ForgetSurface("surface-1")
	assert.Empty(t, uc.SearchTerm("surface-1"))
}

func TestEditActionsUseCase_SearchTermIsPerSurface(t *testing.T) {
	uc, _, _ := newEditUseCase(t)
	ctx := context.Background()

	a := newFakeBuffer("alpha beta", 0, 0)
	b := newFakeBuffer("alpha beta", 7, 7)
	b.id = "surface-2"

	require.NoError(t, uc.Execute(ctx, a, entity.ActionSelectNextOccurrence))
	require.NoError(t, uc.Execute(ctx, b, entity.ActionSelectNextOccurrence))

	assert.Equal(t, "alpha", uc.SearchTerm("surface-1"))
	assert.Equal(t, "beta", uc.SearchTerm("surface-2"))
}

func TestEditActionsUseCase_NoOpFeedback(t *testing.T) {
	tests := []struct {
		name    string
		action  entity.ActionID
		value   string
		start   int
		end     int
		message string
	}{
		{"no trailing whitespace", entity.ActionTrimTrailingSpace, "clean", 0, 0, "No trailing whitespace found"},
		{"nothing to transform", entity.ActionTransformUppercase, "abc", 1, 1, "Select text to transform"},
		{"no word at cursor", entity.ActionSelectNextOccurrence, "   ", 1, 1, "No word at cursor"},
		{"nothing to uncomment", entity.ActionRemoveLineComment, "code", 0, 0, "No commented lines"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _, notifier := newEditUseCase(t)
			notifier.EXPECT().Show(mock.Anything, "surface-1", tt.message, port.NotificationInfo, mock.Anything).Return("")

			buf := newFakeBuffer(tt.value, tt.start, tt.end)
			require.NoError(t, uc.Execute(context.Background(), buf, tt.action))
			assert.Equal(t, tt.value, buf.value)
			assert.Empty(t, buf.replacements)
		})
	}
}

func TestEditActionsUseCase_TrimAndTransform(t *testing.T) {
	uc, _, _ := newEditUseCase(t)
	ctx := context.Background()

	buf := newFakeBuffer("a  \nb\t", 0, 0)
	require.NoError(t, uc.Execute(ctx, buf, entity.ActionTrimTrailingSpace))
	assert.Equal(t, "a\nb", buf.value)

	buf = newFakeBuffer("hello world", 0, 11)
	require.NoError(t, uc.Execute(ctx, buf, entity.ActionTransformTitlecase))
	assert.Equal(t, "Hello World", buf.value)
	assert.Equal(t, []int{0, 11}, []int{buf.start, buf.end})
}

func TestEditActionsUseCase_UnknownAction(t *testing.T) {
	uc, _, _ := newEditUseCase(t)
	err := uc.Execute(context.Background(), newFakeBuffer("", 0, 0), "explode")
	require.ErrorIs(t, err, entity.ErrUnknownAction)
}

func TestEditActionsUseCase_NilGuards(t *testing.T) {
	var nilUC *EditActionsUseCase
	require.Error(t, nilUC.Execute(context.Background(), newFakeBuffer("", 0, 0), entity.ActionCopyLine))

	uc := NewEditActionsUseCase(nil, nil, EditOptions{})
	err := uc.Execute(context.Background(), newFakeBuffer("a", 0, 0), entity.ActionCopyLine)
	require.EqualError(t, err, "clipboard is nil")

	require.Error(t, uc.Execute(context.Background(), nil, entity.ActionCopyLine))
}

func TestEditActionsUseCase_ReplaceError(t *testing.T) {
	uc, _, _ := newEditUseCase(t)
	buf := newFakeBuffer("foo", 0, 0)
	buf.replaceErr = errors.New("read-only")

	err := uc.Execute(context.Background(), buf, entity.ActionIndentLine)
	require.ErrorIs(t, err, errCommitFailed)
}

func TestEditActionsUseCase_OwnsPasteDuringClipboardCall(t *testing.T) {
	uc, clip, notifier := newEditUseCase(t)
	notifier.EXPECT().Show(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("").Maybe()

	var ownedDuringCall bool
	clip.EXPECT().WriteText(mock.Anything, "a\n").RunAndReturn(func(context.Context, string) error {
		ownedDuringCall = uc.OwnsPaste()
		return nil
	})

	require.False(t, uc.OwnsPaste())
	require.NoError(t, uc.Execute(context.Background(), newFakeBuffer("a", 0, 0), entity.ActionCopyLine))

	assert.True(t, ownedDuringCall)
	assert.Eventually(t, func() bool { return !uc.OwnsPaste() }, time.Second, time.Millisecond)
}

func TestEditActionsUseCase_Handle(t *testing.T) {
	uc, _, _ := newEditUseCase(t)
	var handler ActionHandler = uc.Handle

	buf := newFakeBuffer("x", 0, 0)
	require.NoError(t, handler(context.Background(), buf, entity.ActionIndentLine))
	assert.Equal(t, "\tx", buf.value)
}

func TestChangedSpan(t *testing.T) {
	tests := []struct {
		name      string
		a, b      string
		wantStart int
		wantOld   int
		wantNew   int
	}{
		{"insert in middle", "abc", "abXc", 2, 2, 3},
		{"delete suffix", "abc", "a", 1, 3, 1},
		{"prepend", "abc", "xabc", 0, 0, 1},
		{"replace all", "abc", "xyz", 0, 3, 3},
		{"repeated chars", "aa", "aaa", 2, 2, 3},
		{"multibyte boundary", "é", "è", 0, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, oldEnd, newEnd := changedSpan(tt.a, tt.b)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantOld, oldEnd)
			assert.Equal(t, tt.wantNew, newEnd)
			assert.Equal(t, tt.b, tt.a[:start]+tt.b[start:newEnd]+tt.a[oldEnd:])
		})
	}
}
