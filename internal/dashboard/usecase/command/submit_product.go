package command

import (
	"context"
	"regexp"
	"time"

	"github.com/charakka/opsboard/internal/dashboard/domain"
)

// pricePattern accepts decimal-grouped magnitudes like "9,600" or
// "1,250.50" as well as plain digit runs.
var pricePattern = regexp.MustCompile(`^\d{1,3}(,\d{3})*(\.\d+)?$|^\d+(\.\d+)?$`)

// SubmitProductCommand is the product draft coming from the creation
// form. Code, Name, Category and Price are required; the rest default.
type SubmitProductCommand struct {
	Code       string
	Name       string
	Kind       domain.ItemKind
	Category   string
	StockLevel int
	MinLevel   int
	Price      string
}

// SubmitProductHandler validates product drafts and appends accepted ones
// to the item store.
type SubmitProductHandler struct {
	items       domain.ItemRepository
	strictPrice bool
	now         func() time.Time
}

// NewSubmitProductHandler creates a new submit product handler. With
// strictPrice set, drafts whose price is not a grouped decimal magnitude
// are rejected; otherwise any non-empty price string is accepted for
// parity with the form's historical behavior.
func NewSubmitProductHandler(items domain.ItemRepository, strictPrice bool) *SubmitProductHandler {
	return &SubmitProductHandler{
		items:       items,
		strictPrice: strictPrice,
		now:         time.Now,
	}
}

// Handle validates the draft and appends the resulting item. On any
// validation failure the store is left untouched and a structured error
// reports every offending field. Kind defaults to Single, stock levels to
// zero, and the update date to today in short month/day form.
func (h *SubmitProductHandler) Handle(ctx context.Context, cmd SubmitProductCommand) (*domain.InventoryItem, error) {
	verr := &domain.ValidationError{}
	if cmd.Code == "" {
		verr.Missing = append(verr.Missing, "code")
	}
	if cmd.Name == "" {
		verr.Missing = append(verr.Missing, "name")
	}
	if cmd.Category == "" {
		verr.Missing = append(verr.Missing, "category")
	}
	if cmd.Price == "" {
		verr.Missing = append(verr.Missing, "price")
	} else if h.strictPrice && !pricePattern.MatchString(cmd.Price) {
		verr.Invalid = append(verr.Invalid, "price")
	}
	if cmd.StockLevel < 0 {
		verr.Invalid = append(verr.Invalid, "stock_level")
	}
	if cmd.MinLevel < 0 {
		verr.Invalid = append(verr.Invalid, "min_level")
	}
	if len(verr.Missing) > 0 || len(verr.Invalid) > 0 {
		return nil, verr
	}

	if h.items.HasCode(ctx, cmd.Code) {
		return nil, &domain.DuplicateCodeError{Code: cmd.Code}
	}

	kind := cmd.Kind
	if kind == "" {
		kind = domain.KindSingle
	}

	item := domain.InventoryItem{
		Code:        cmd.Code,
		Name:        cmd.Name,
		Kind:        kind,
		Category:    cmd.Category,
		StockLevel:  cmd.StockLevel,
		MinLevel:    cmd.MinLevel,
		Price:       cmd.Price,
		LastUpdated: h.now().Format("Jan 2"),
	}

	h.items.Append(ctx, item)
	return &item, nil
}
