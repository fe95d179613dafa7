// Package listctrl owns the lifecycle of a resource-management screen:
// one generic filter→sort→paginate pipeline and CRUD workflow shared by
// every resource, configured rather than reimplemented per screen.
package listctrl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/text/collate"

	"github.com/pattarapon/hr-console/internal/validation"
)

type FormMode int

const (
	FormNone FormMode = iota
	FormCreate
	FormEdit
)

func (m FormMode) String() string {
	switch m {
	case FormCreate:
		return "CREATE"
	case FormEdit:
		return "EDIT"
	}
	return "NONE"
}

type SortDirection int

const (
	Ascending SortDirection = iota
	Descending
)

func (d SortDirection) String() string {
	if d == Descending {
		return "DESC"
	}
	return "ASC"
}

// Bindings are the screen's network edges. T is the read-side record,
// D the write-side draft.
type Bindings[T, D any] struct {
	// List replaces the collection wholesale.
	List func(ctx context.Context) ([]T, error)
	// LoadRefs fetches dependent reference lists before the collection
	// (departments before employees). Optional.
	LoadRefs func(ctx context.Context) error
	Create   func(ctx context.Context, draft D) error
	Update   func(ctx context.Context, id int64, draft D) error
	Remove   func(ctx context.Context, id int64) error
}

// Messages are the transient banners per outcome.
type Messages struct {
	Created      string
	Updated      string
	Deleted      string
	LoadFailed   string
	SaveFailed   string
	DeleteFailed string
}

// Config parameterizes the controller for one resource.
type Config[T, D any] struct {
	Name string

	// ItemID extracts the surrogate key used for edit and delete.
	ItemID func(T) int64
	// SearchFields are the text columns the search box matches against.
	SearchFields []func(T) string
	// SortKeys is the explicit accessor table for sortable columns.
	SortKeys map[string]func(T) SortKey
	// RequiredFields are touched en masse by a failed submit so their
	// errors render.
	RequiredFields []string

	DefaultDraft func() D
	// ResolveDraft maps a listed record back into an editable draft,
	// including the denormalized-name to foreign-key reverse lookup.
	ResolveDraft func(ctx context.Context, item T) (D, error)
	Validate     func(draft D) validation.Result

	Bindings Bindings[T, D]
	Messages Messages

	// MessageTTL is how long a transient banner lives. Zero means 3s.
	MessageTTL time.Duration
	Logger     *slog.Logger
}

const (
	defaultPageSize   = 5
	defaultMessageTTL = 3 * time.Second
)

// Controller serializes all screen state behind one mutex; network calls
// run outside it so a slow request never freezes the rest of the screen.
type Controller[T, D any] struct {
	cfg      Config[T, D]
	collator *collate.Collator

	mu              sync.Mutex
	items           []T
	loading         bool
	formMode        FormMode
	formDraft       *D
	editingID       *int64
	confirmDeleteID *int64
	searchTerm      string
	sortKey         string
	sortDir         SortDirection
	page            int
	pageSize        int
	message         string
	messageGen      int
	touched         map[string]bool
	lastResult      validation.Result
}

func New[T, D any](cfg Config[T, D]) *Controller[T, D] {
	if cfg.MessageTTL <= 0 {
		cfg.MessageTTL = defaultMessageTTL
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Controller[T, D]{
		cfg:      cfg,
		collator: newCollator(),
		page:     1,
		pageSize: defaultPageSize,
		touched:  make(map[string]bool),
	}
}

// Load refetches reference lists and the collection. On failure the
// collection is left untouched and a transient error banner is set.
func (c *Controller[T, D]) Load(ctx context.Context) error {
	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()

	if c.cfg.Bindings.LoadRefs != nil {
		if err := c.cfg.Bindings.LoadRefs(ctx); err != nil {
			c.cfg.Logger.Error("failed to load reference lists", "screen", c.cfg.Name, "error", err)
			c.finishLoad(nil, false)
			c.setMessage(c.cfg.Messages.LoadFailed)
			return err
		}
	}

	items, err := c.cfg.Bindings.List(ctx)
	if err != nil {
		c.cfg.Logger.Error("failed to load collection", "screen", c.cfg.Name, "error", err)
		c.finishLoad(nil, false)
		c.setMessage(c.cfg.Messages.LoadFailed)
		return err
	}

	c.finishLoad(items, true)
	return nil
}

func (c *Controller[T, D]) finishLoad(items []T, replace bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if replace {
		c.items = items
	}
}

// StartCreate opens the form on the resource's default-empty draft.
func (c *Controller[T, D]) StartCreate() {
	draft := c.cfg.DefaultDraft()
	c.mu.Lock()
	defer c.mu.Unlock()
	c.formMode = FormCreate
	c.formDraft = &draft
	c.editingID = nil
	c.resetFormStateLocked()
}

// StartCreateFrom opens the form on a pre-seeded draft, e.g. creating
// credentials for an employee row that has none yet.
func (c *Controller[T, D]) StartCreateFrom(draft D) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.formMode = FormCreate
	c.formDraft = &draft
	c.editingID = nil
	c.resetFormStateLocked()
}

// StartEdit resolves the listed record into a draft. Resolution may hit
// the network for dependent lists, so it runs outside the lock.
func (c *Controller[T, D]) StartEdit(ctx context.Context, id int64) error {
	c.mu.Lock()
	var found *T
	for i := range c.items {
		if c.cfg.ItemID(c.items[i]) == id {
			found = &c.items[i]
			break
		}
	}
	c.mu.Unlock()

	if found == nil {
		return fmt.Errorf("%s: no item with id %d", c.cfg.Name, id)
	}

	draft, err := c.cfg.ResolveDraft(ctx, *found)
	if err != nil {
		c.cfg.Logger.Error("failed to resolve draft", "screen", c.cfg.Name, "id", id, "error", err)
		c.setMessage(c.cfg.Messages.LoadFailed)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.formMode = FormEdit
	c.formDraft = &draft
	c.editingID = &id
	c.resetFormStateLocked()
	return nil
}

func (c *Controller[T, D]) resetFormStateLocked() {
	c.touched = make(map[string]bool)
	c.lastResult = validation.Result{}
	c.confirmDeleteID = nil
}

// Submit validates the draft, then creates or updates per form mode. An
// invalid draft touches every required field and never reaches the
// network. A network failure leaves the form open for retry; success
// closes it and resynchronizes from the server.
func (c *Controller[T, D]) Submit(ctx context.Context, draft D) (validation.Result, error) {
	result := c.cfg.Validate(draft)

	c.mu.Lock()
	c.formDraft = &draft
	c.lastResult = result
	if !result.Valid() {
		for _, field := range c.cfg.RequiredFields {
			c.touched[field] = true
		}
		for field := range result.FieldErrors {
			c.touched[field] = true
		}
		c.mu.Unlock()
		return result, nil
	}
	mode := c.formMode
	var editingID *int64
	if c.editingID != nil {
		id := *c.editingID
		editingID = &id
	}
	c.mu.Unlock()

	var err error
	switch {
	case mode == FormEdit && editingID != nil:
		err = c.cfg.Bindings.Update(ctx, *editingID, draft)
	default:
		err = c.cfg.Bindings.Create(ctx, draft)
	}

	if err != nil {
		c.cfg.Logger.Error("failed to submit draft", "screen", c.cfg.Name, "mode", mode.String(), "error", err)
		c.setMessage(c.cfg.Messages.SaveFailed)
		return result, err
	}

	c.mu.Lock()
	c.formMode = FormNone
	c.formDraft = nil
	c.editingID = nil
	c.mu.Unlock()

	if mode == FormEdit {
		c.setMessage(c.cfg.Messages.Updated)
	} else {
		c.setMessage(c.cfg.Messages.Created)
	}

	// resync only after the mutation response, never interleaved with it
	return result, c.Load(ctx)
}

// CancelForm closes the form without touching the network.
func (c *Controller[T, D]) CancelForm() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.formMode = FormNone
	c.formDraft = nil
	c.editingID = nil
}

// RequestDelete opens the confirmation prompt; nothing is called yet.
func (c *Controller[T, D]) RequestDelete(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.confirmDeleteID = &id
	c.formMode = FormNone
	c.formDraft = nil
}

// ConfirmDelete removes the pending record. The prompt closes whether or
// not the call succeeds.
func (c *Controller[T, D]) ConfirmDelete(ctx context.Context) error {
	c.mu.Lock()
	if c.confirmDeleteID == nil {
		c.mu.Unlock()
		return nil
	}
	id := *c.confirmDeleteID
	c.confirmDeleteID = nil
	c.mu.Unlock()

	if err := c.cfg.Bindings.Remove(ctx, id); err != nil {
		c.cfg.Logger.Error("failed to delete", "screen", c.cfg.Name, "id", id, "error", err)
		c.setMessage(c.cfg.Messages.DeleteFailed)
		return err
	}

	c.setMessage(c.cfg.Messages.Deleted)
	return c.Load(ctx)
}

// CancelDelete clears the prompt without any network call.
func (c *Controller[T, D]) CancelDelete() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.confirmDeleteID = nil
}

// SetSearchTerm resets to the first page so the user never lands past the
// end of a shrunken result set.
func (c *Controller[T, D]) SetSearchTerm(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.searchTerm = term
	c.page = 1
}

// SetSort toggles direction on the active column and resets to ascending
// on a new one. Unknown columns are ignored.
func (c *Controller[T, D]) SetSort(field string) {
	if _, ok := c.cfg.SortKeys[field]; !ok {
		c.cfg.Logger.Warn("ignoring sort on unknown column", "screen", c.cfg.Name, "field", field)
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sortKey == field {
		if c.sortDir == Ascending {
			c.sortDir = Descending
		} else {
			c.sortDir = Ascending
		}
		return
	}
	c.sortKey = field
	c.sortDir = Ascending
}

func (c *Controller[T, D]) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.page = page
}

func (c *Controller[T, D]) SetPageSize(size int) {
	if size < 1 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pageSize = size
	c.page = 1
}

// Touch marks a field as interacted with so its error may render.
func (c *Controller[T, D]) Touch(field string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.touched[field] = true
}

// Draft returns the open form draft, if any.
func (c *Controller[T, D]) Draft() (D, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.formDraft == nil {
		var zero D
		return zero, false
	}
	return *c.formDraft, true
}

// VisibleErrors is the last validation result restricted to touched
// fields: errors never appear before first interaction.
func (c *Controller[T, D]) VisibleErrors() map[string]validation.ErrorKind {
	c.mu.Lock()
	defer c.mu.Unlock()
	visible := make(map[string]validation.ErrorKind)
	for field, kind := range c.lastResult.FieldErrors {
		if c.touched[field] {
			visible[field] = kind
		}
	}
	return visible
}

// setMessage installs a transient banner that clears itself after the TTL
// unless a newer message supersedes it.
func (c *Controller[T, D]) setMessage(text string) {
	c.mu.Lock()
	c.message = text
	c.messageGen++
	gen := c.messageGen
	ttl := c.cfg.MessageTTL
	c.mu.Unlock()

	time.AfterFunc(ttl, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.messageGen == gen {
			c.message = ""
		}
	})
}
