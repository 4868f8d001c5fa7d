package usecase

import (
	"context"

	"github.com/bnema/linekeys/internal/application/port"
	"github.com/bnema/linekeys/internal/domain/entity"
)

type fakeBuffer struct {
	value      string
	start, end int
	single     bool
	id         string
	replaceErr error

	replacements []port.Replacement
}

func newFakeBuffer(value string, start, end int) *fakeBuffer {
	return &fakeBuffer{value: value, start: start, end: end, id: "surface-1"}
}

func (b *fakeBuffer) Value() string { return b.value }

func (b *fakeBuffer) Selection() (int, int) { return b.start, b.end }

func (b *fakeBuffer) SetSelection(start, end int) {
	b.start, b.end = start, end
}

func (b *fakeBuffer) ReplaceRange(r port.Replacement) error {
	if b.replaceErr != nil {
		return b.replaceErr
	}
	b.replacements = append(b.replacements, r)
	b.value = b.value[:r.Start] + r.Text + b.value[r.End:]
	if r.Selection != nil {
		b.start, b.end = r.Selection.Start, r.Selection.End
	} else {
		b.start = r.Start + len(r.Text)
		b.end = b.start
	}
	return nil
}

func (b *fakeBuffer) SingleLine() bool { return b.single }

func (b *fakeBuffer) SurfaceID() string { return b.id }

// nativeBuffer records delegated clipboard operations.
type nativeBuffer struct {
	*fakeBuffer
	native []string
}

func (b *nativeBuffer) NativeCut(context.Context) error {
	b.native = append(b.native, "cut")
	return nil
}

func (b *nativeBuffer) NativeCopy(context.Context) error {
	b.native = append(b.native, "copy")
	return nil
}

func (b *nativeBuffer) NativePaste(context.Context) error {
	b.native = append(b.native, "paste")
	return nil
}

type staticBindings struct {
	table *entity.EffectiveBindingTable
}

func (s staticBindings) Table() *entity.EffectiveBindingTable { return s.table }

func defaultBindings() staticBindings {
	var bindings []entity.EffectiveBinding
	for _, a := range entity.DefaultActions() {
		bindings = append(bindings, entity.EffectiveBinding{
			Action:  a.ID,
			Key:     a.DefaultKey,
			Enabled: a.DefaultEnabled,
			IsChord: a.IsChord(),
		})
	}
	return staticBindings{table: entity.NewEffectiveBindingTable("", bindings)}
}

func keyEvent(key string) entity.KeyEvent {
	return entity.EventFromCombo(entity.ParseCombo(key), entity.PlatformOther)
}

type handledAction struct {
	surfaceID string
	action    entity.ActionID
}

// recorder collects actions fired by a dispatcher.
type recorder struct {
	actions []handledAction
}

func (r *recorder) handle(_ context.Context, buf port.TextBuffer, action entity.ActionID) error {
	r.actions = append(r.actions, handledAction{surfaceID: buf.SurfaceID(), action: action})
	return nil
}
