package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/bnema/linekeys/internal/application/port"
	"github.com/bnema/linekeys/internal/domain/entity"
	"github.com/bnema/linekeys/internal/domain/textops"
	"github.com/bnema/linekeys/internal/logging"
)

// PasteGuardRelease is how long the paste-ownership flag outlives a clipboard call.
const PasteGuardRelease = 100 * time.Millisecond

// EditOptions configures an EditActionsUseCase.
type EditOptions struct {
	FeedbackDurationMs int
	PasteGuard         time.Duration
}

// EditActionsUseCase runs editing actions against a TextBuffer: it snapshots
// the buffer, applies the textops operation, commits the minimal changed
// range and reports feedback.
type EditActionsUseCase struct {
	clipboard  port.Clipboard
	notifier   port.Notification
	feedbackMs int
	pasteGuard time.Duration

	mu         sync.Mutex
	cursors    map[string]*textops.SearchCursor
	guardSeq   uint64
	guardTimer *time.Timer
	pasteOwned atomic.Bool
}

// NewEditActionsUseCase creates the use case. notifier may be nil.
func NewEditActionsUseCase(clipboard port.Clipboard, notifier port.Notification, opts EditOptions) *EditActionsUseCase {
	uc := &EditActionsUseCase{
		clipboard:  clipboard,
		notifier:   notifier,
		feedbackMs: opts.FeedbackDurationMs,
		pasteGuard: opts.PasteGuard,
		cursors:    make(map[string]*textops.SearchCursor),
	}
	if uc.feedbackMs <= 0 {
		uc.feedbackMs = DefaultFeedbackDurationMs
	}
	if uc.pasteGuard <= 0 {
		uc.pasteGuard = PasteGuardRelease
	}
	return uc
}

// Handle adapts Execute to ActionHandler.
func (uc *EditActionsUseCase) Handle(ctx context.Context, buf port.TextBuffer, action entity.ActionID) error {
	return uc.Execute(ctx, buf, action)
}

// OwnsPaste reports whether a clipboard operation started by this use case
// is in flight or just settled. Hosts use it to ignore the paste event their
// own clipboard write may trigger.
func (uc *EditActionsUseCase) OwnsPaste() bool {
	return uc.pasteOwned.Load()
}

// SearchTerm returns the occurrence search term remembered for a surface.
func (uc *EditActionsUseCase) SearchTerm(surfaceID string) string {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if cur, ok := uc.cursors[surfaceID]; ok {
		return cur.Term
	}
	return ""
}

// ForgetSurface drops per-surface state.
func (uc *EditActionsUseCase) ForgetSurface(surfaceID string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.cursors, surfaceID)
}

// Execute runs action on buf.
func (uc *EditActionsUseCase) Execute(ctx context.Context, buf port.TextBuffer, action entity.ActionID) error {
	if uc == nil {
		return fmt.Errorf("edit actions use case is nil")
	}
	if buf == nil {
		return fmt.Errorf("text buffer is nil")
	}

	ctx = logging.WithSurface(ctx, buf.SurfaceID())
	log := logging.FromContext(ctx)

	start, end := buf.Selection()
	st := textops.State{Text: buf.Value(), Start: start, End: end}.Normalize()
	single := buf.SingleLine()

	log.Debug().
		Str("action", string(action)).
		Int("start", st.Start).
		Int("end", st.End).
		Bool("single_line", single).
		Msg("executing edit action")

	switch action {
	case entity.ActionCutLine:
		return uc.cut(ctx, buf, st, single)
	case entity.ActionCopyLine:
		return uc.copy(ctx, buf, st, single)
	case entity.ActionPasteLine:
		return uc.paste(ctx, buf, st, single)
	case entity.ActionDeleteLine:
		return commit(buf, st, textops.DeleteLine(st, single))
	case entity.ActionInsertLineBelow, entity.ActionInsertLineAbove,
		entity.ActionDuplicateLineUp, entity.ActionDuplicateLineDown,
		entity.ActionMoveLineUp, entity.ActionMoveLineDown:
		if single {
			log.Debug().Str("action", string(action)).Msg("line action ignored on single-line surface")
			return nil
		}
		return uc.lineAction(buf, st, action)
	case entity.ActionIndentLine:
		return commit(buf, st, textops.Indent(st))
	case entity.ActionOutdentLine:
		return commit(buf, st, textops.Outdent(st))
	case entity.ActionToggleLineComment:
		return uc.lineComment(ctx, buf, st, textops.CommentToggle)
	case entity.ActionAddLineComment:
		return uc.lineComment(ctx, buf, st, textops.CommentAdd)
	case entity.ActionRemoveLineComment:
		return uc.lineComment(ctx, buf, st, textops.CommentRemove)
	case entity.ActionToggleBlockComment:
		return commit(buf, st, textops.ToggleBlockComment(st))
	case entity.ActionSelectNextOccurrence:
		return uc.selectNext(ctx, buf, st)
	case entity.ActionTrimTrailingSpace:
		next, status := textops.TrimTrailingWhitespace(st)
		if status != textops.StatusApplied {
			uc.notify(ctx, buf, "No trailing whitespace found", port.NotificationInfo)
			return nil
		}
		return commit(buf, st, next)
	case entity.ActionTransformUppercase:
		return uc.transform(ctx, buf, st, textops.CaseUpper)
	case entity.ActionTransformLowercase:
		return uc.transform(ctx, buf, st, textops.CaseLower)
	case entity.ActionTransformTitlecase:
		return uc.transform(ctx, buf, st, textops.CaseTitle)
	default:
		return fmt.Errorf("%w: %s", entity.ErrUnknownAction, action)
	}
}

func (uc *EditActionsUseCase) cut(ctx context.Context, buf port.TextBuffer, st textops.State, single bool) error {
	if !st.Collapsed() {
		if native, ok := buf.(port.NativeClipboardPassthrough); ok {
			return native.NativeCut(ctx)
		}
	}

	next, clip := textops.CutLine(st, single)
	if err := uc.writeClipboard(ctx, buf, clip); err != nil {
		return err
	}
	if err := commit(buf, st, next); err != nil {
		return err
	}
	if st.Collapsed() && !single {
		uc.notify(ctx, buf, "Line cut", port.NotificationSuccess)
	}
	return nil
}

func (uc *EditActionsUseCase) copy(ctx context.Context, buf port.TextBuffer, st textops.State, single bool) error {
	if !st.Collapsed() {
		if native, ok := buf.(port.NativeClipboardPassthrough); ok {
			return native.NativeCopy(ctx)
		}
	}

	if err := uc.writeClipboard(ctx, buf, textops.CopyLine(st, single)); err != nil {
		return err
	}
	if st.Collapsed() && !single {
		uc.notify(ctx, buf, "Line copied", port.NotificationSuccess)
	}
	return nil
}

func (uc *EditActionsUseCase) paste(ctx context.Context, buf port.TextBuffer, st textops.State, single bool) error {
	payload, err := uc.readClipboard(ctx, buf)
	if err != nil {
		return err
	}

	lineAware := textops.IsLinePayload(payload) && st.Collapsed() && !single
	if !lineAware {
		if native, ok := buf.(port.NativeClipboardPassthrough); ok {
			return native.NativePaste(ctx)
		}
	}
	return commit(buf, st, textops.Paste(st, payload, single))
}

func (uc *EditActionsUseCase) lineAction(buf port.TextBuffer, st textops.State, action entity.ActionID) error {
	var next textops.State
	switch action {
	case entity.ActionInsertLineBelow:
		next = textops.InsertLineBelow(st)
	case entity.ActionInsertLineAbove:
		next = textops.InsertLineAbove(st)
	case entity.ActionDuplicateLineUp:
		next = textops.DuplicateLines(st, textops.Up)
	case entity.ActionDuplicateLineDown:
		next = textops.DuplicateLines(st, textops.Down)
	case entity.ActionMoveLineUp, entity.ActionMoveLineDown:
		dir := textops.Up
		if action == entity.ActionMoveLineDown {
			dir = textops.Down
		}
		var status textops.Status
		next, status = textops.MoveLines(st, dir)
		if status != textops.StatusApplied {
			return nil
		}
	}
	return commit(buf, st, next)
}

func (uc *EditActionsUseCase) lineComment(ctx context.Context, buf port.TextBuffer, st textops.State, mode textops.CommentMode) error {
	next, status := textops.ToggleLineComment(st, mode)
	if status != textops.StatusApplied {
		msg := "Nothing to comment"
		if mode == textops.CommentRemove {
			msg = "No commented lines"
		}
		uc.notify(ctx, buf, msg, port.NotificationInfo)
		return nil
	}
	return commit(buf, st, next)
}

func (uc *EditActionsUseCase) selectNext(ctx context.Context, buf port.TextBuffer, st textops.State) error {
	uc.mu.Lock()
	cur, ok := uc.cursors[buf.SurfaceID()]
	if !ok {
		cur = &textops.SearchCursor{}
		uc.cursors[buf.SurfaceID()] = cur
	}
	next, status := textops.SelectWordOrNextOccurrence(st, cur)
	term := cur.Term
	uc.mu.Unlock()

	switch status {
	case textops.StatusNoWord:
		uc.notify(ctx, buf, "No word at cursor", port.NotificationInfo)
		return nil
	case textops.StatusNoOccurrence:
		uc.notify(ctx, buf, fmt.Sprintf("No more occurrences of %q", term), port.NotificationInfo)
		return nil
	case textops.StatusTermAdopted:
		uc.notify(ctx, buf, fmt.Sprintf("Searching for %q", term), port.NotificationInfo)
		return nil
	}
	buf.SetSelection(next.Start, next.End)
	return nil
}

func (uc *EditActionsUseCase) transform(ctx context.Context, buf port.TextBuffer, st textops.State, mode textops.CaseMode) error {
	next, status := textops.TransformCase(st, mode)
	if status != textops.StatusApplied {
		uc.notify(ctx, buf, "Select text to transform", port.NotificationInfo)
		return nil
	}
	return commit(buf, st, next)
}

func (uc *EditActionsUseCase) writeClipboard(ctx context.Context, buf port.TextBuffer, text string) error {
	if uc.clipboard == nil {
		return fmt.Errorf("clipboard is nil")
	}
	uc.acquirePasteGuard()
	defer uc.releasePasteGuard()

	if err := uc.clipboard.WriteText(ctx, text); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("clipboard write failed")
		uc.notify(ctx, buf, "Clipboard write failed", port.NotificationError)
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}

func (uc *EditActionsUseCase) readClipboard(ctx context.Context, buf port.TextBuffer) (string, error) {
	if uc.clipboard == nil {
		return "", fmt.Errorf("clipboard is nil")
	}
	uc.acquirePasteGuard()
	defer uc.releasePasteGuard()

	text, err := uc.clipboard.ReadText(ctx)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("clipboard read failed")
		uc.notify(ctx, buf, "Clipboard read failed", port.NotificationError)
		return "", fmt.Errorf("failed to read clipboard: %w", err)
	}
	return text, nil
}

func (uc *EditActionsUseCase) acquirePasteGuard() {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.guardSeq++
	if uc.guardTimer != nil {
		uc.guardTimer.Stop()
		uc.guardTimer = nil
	}
	uc.pasteOwned.Store(true)
}

// releasePasteGuard clears the flag after the guard delay unless another
// clipboard call started in the meantime.
func (uc *EditActionsUseCase) releasePasteGuard() {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	seq := uc.guardSeq
	uc.guardTimer = time.AfterFunc(uc.pasteGuard, func() {
		uc.mu.Lock()
		defer uc.mu.Unlock()
		if uc.guardSeq == seq {
			uc.pasteOwned.Store(false)
			uc.guardTimer = nil
		}
	})
}

func (uc *EditActionsUseCase) notify(ctx context.Context, buf port.TextBuffer, msg string, kind port.NotificationType) {
	if uc.notifier == nil {
		return
	}
	uc.notifier.Show(ctx, buf.SurfaceID(), msg, kind, uc.feedbackMs)
}

// errCommitFailed wraps host errors from ReplaceRange.
var errCommitFailed = errors.New("failed to update text")

// commit writes next into buf, replacing only the span that differs from prev.
func commit(buf port.TextBuffer, prev, next textops.State) error {
	if prev.Text == next.Text {
		if prev.Start != next.Start || prev.End != next.End {
			buf.SetSelection(next.Start, next.End)
		}
		return nil
	}

	start, oldEnd, newEnd := changedSpan(prev.Text, next.Text)
	err := buf.ReplaceRange(port.Replacement{
		Text:      next.Text[start:newEnd],
		Start:     start,
		End:       oldEnd,
		Selection: &port.Range{Start: next.Start, End: next.End},
	})
	if err != nil {
		return fmt.Errorf("%w: %w", errCommitFailed, err)
	}
	return nil
}

// changedSpan returns the differing region as [start, oldEnd) in a and
// [start, newEnd) in b, aligned to rune boundaries.
func changedSpan(a, b string) (start, oldEnd, newEnd int) {
	limit := min(len(a), len(b))
	for start < limit && a[start] == b[start] {
		start++
	}
	for start > 0 && start < len(a) && !utf8.RuneStart(a[start]) {
		start--
	}

	suffix := 0
	for suffix < limit-start && a[len(a)-1-suffix] == b[len(b)-1-suffix] {
		suffix++
	}
	for suffix > 0 && !utf8.RuneStart(a[len(a)-suffix]) {
		suffix--
	}
	return start, len(a) - suffix, len(b) - suffix
}
