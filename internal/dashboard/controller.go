package dashboard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/arlearn/admin-backend/internal/domain"
)

// ModalMode distinguishes the two uses of the edit modal.
type ModalMode int

const (
	ModeCreate ModalMode = iota
	ModeEdit
)

// Modal is the edit dialog state. Target is set only in edit mode.
type Modal struct {
	Open   bool
	Mode   ModalMode
	Target domain.Entity
}

// NoticeKind classifies the transient user-facing notice.
type NoticeKind int

const (
	NoticeNone NoticeKind = iota
	NoticeSuccess
	NoticeError
)

// Notice is the last outcome shown to the user.
type Notice struct {
	Kind    NoticeKind
	Message string
}

// Controller is the dashboard's CRUD state machine. It mirrors a single
// UI thread: methods are not safe for concurrent use, and the loading
// flag guards duplicate submissions by convention only.
//
// The items list is a best-effort mirror of the server's rows for the
// active kind. It is never mutated before the server confirms an
// operation; successful mutations patch it from the server-returned row.
type Controller struct {
	collab  Collaborator
	log     *slog.Logger
	confirm func(prompt string) bool

	activeKind domain.Kind
	items      []domain.Entity
	loading    bool
	modal      Modal
	form       FormBuffer
	notice     Notice
}

// NewController creates a Controller for the given collaborator. The
// confirm hook stands in for the browser's confirmation dialog; a nil
// hook confirms everything.
func NewController(log *slog.Logger, collab Collaborator, confirm func(prompt string) bool) *Controller {
	if confirm == nil {
		confirm = func(string) bool { return true }
	}
	return &Controller{
		collab:     collab,
		log:        log.With("component", "dashboard"),
		confirm:    confirm,
		activeKind: domain.KindModel,
	}
}

// ActiveKind returns the kind whose rows the controller mirrors.
func (c *Controller) ActiveKind() domain.Kind { return c.activeKind }

// Items returns the in-memory mirror. It may be stale after a failed List.
func (c *Controller) Items() []domain.Entity { return c.items }

// Loading reports whether an operation is in flight.
func (c *Controller) Loading() bool { return c.loading }

// Modal returns the dialog state.
func (c *Controller) Modal() Modal { return c.modal }

// Form returns the live form buffer for field edits.
func (c *Controller) Form() *FormBuffer { return &c.form }

// Notice returns the last outcome notice.
func (c *Controller) Notice() Notice { return c.notice }

// SetActiveKind switches the dashboard tab and reloads. Switching resets
// the mirror: stale rows of the old kind never show under the new one.
func (c *Controller) SetActiveKind(ctx context.Context, kind domain.Kind) {
	if !kind.Valid() {
		return
	}
	if kind != c.activeKind {
		c.activeKind = kind
		c.items = nil
	}
	c.List(ctx)
}

// List replaces the mirror with the full unfiltered row set of the active
// kind. On failure the previous items stay visible: the error is logged
// but not surfaced, matching the behavior this dashboard inherits.
func (c *Controller) List(ctx context.Context) {
	c.loading = true
	defer func() { c.loading = false }()

	switch c.activeKind {
	case domain.KindQuiz:
		questions, err := c.collab.ListQuestions(ctx)
		if err != nil {
			c.log.ErrorContext(ctx, "list questions", slog.String("error", err.Error()))
			return
		}
		c.items = c.items[:0]
		for _, q := range questions {
			c.items = append(c.items, q)
		}
	default:
		models, err := c.collab.ListModels(ctx)
		if err != nil {
			c.log.ErrorContext(ctx, "list models", slog.String("error", err.Error()))
			return
		}
		c.items = c.items[:0]
		for _, m := range models {
			c.items = append(c.items, m)
		}
	}
}

// OpenCreate opens the modal with an empty form.
func (c *Controller) OpenCreate() {
	c.form.Reset()
	c.modal = Modal{Open: true, Mode: ModeCreate}
}

// OpenEdit opens the modal pre-filled from the entity. Only the active
// kind's fields are copied; the other kind's fields reset to empty.
func (c *Controller) OpenEdit(entity domain.Entity) {
	if entity == nil || entity.EntityKind() != c.activeKind {
		return
	}
	switch e := entity.(type) {
	case *domain.ARModel:
		c.form.LoadModel(e)
	case *domain.QuizQuestion:
		c.form.LoadQuestion(e)
	default:
		return
	}
	c.modal = Modal{Open: true, Mode: ModeEdit, Target: entity}
}

// CloseModal discards the form without saving.
func (c *Controller) CloseModal() {
	c.form.Reset()
	c.modal = Modal{}
}

// Submit sends the form as a kind-scoped payload. On success the mirror
// is patched from the server-returned row, the modal closes, and the form
// resets. On failure the modal stays open with the verbose error so the
// user can fix and retry.
func (c *Controller) Submit(ctx context.Context) {
	if !c.modal.Open || c.loading {
		return
	}
	c.loading = true
	defer func() { c.loading = false }()

	saved, err := c.save(ctx)
	if err != nil {
		c.notice = Notice{Kind: NoticeError, Message: err.Error()}
		return
	}

	if c.modal.Mode == ModeCreate {
		c.items = append(c.items, saved)
	} else {
		for i, item := range c.items {
			if item.EntityID() == saved.EntityID() {
				c.items[i] = saved
				break
			}
		}
	}

	c.form.Reset()
	c.modal = Modal{}
	c.notice = Notice{Kind: NoticeSuccess, Message: "saved"}
}

func (c *Controller) save(ctx context.Context) (domain.Entity, error) {
	switch c.activeKind {
	case domain.KindQuiz:
		if c.modal.Mode == ModeCreate {
			return c.collab.CreateQuestion(ctx, c.form.quizFields())
		}
		return c.collab.UpdateQuestion(ctx, c.modal.Target.EntityID(), c.form.quizFields())
	default:
		if c.modal.Mode == ModeCreate {
			return c.collab.CreateModel(ctx, c.form.modelFields())
		}
		return c.collab.UpdateModel(ctx, c.modal.Target.EntityID(), c.form.modelFields())
	}
}

// Delete removes a row after explicit confirmation. On success the row
// leaves the mirror; on failure the mirror is untouched and the notice is
// generic, not the underlying error.
func (c *Controller) Delete(ctx context.Context, id int64) {
	if c.loading {
		return
	}
	if !c.confirm(fmt.Sprintf("delete %s %d?", c.activeKind, id)) {
		return
	}
	c.loading = true
	defer func() { c.loading = false }()

	var err error
	if c.activeKind == domain.KindQuiz {
		err = c.collab.DeleteQuestion(ctx, id)
	} else {
		err = c.collab.DeleteModel(ctx, id)
	}
	if err != nil {
		c.log.ErrorContext(ctx, "delete failed",
			slog.String("kind", string(c.activeKind)),
			slog.Int64("id", id),
			slog.String("error", err.Error()),
		)
		c.notice = Notice{Kind: NoticeError, Message: "delete failed"}
		return
	}

	for i, item := range c.items {
		if item.EntityID() == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			break
		}
	}
	c.notice = Notice{Kind: NoticeSuccess, Message: "deleted"}
}
