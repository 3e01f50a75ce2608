package factory

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/honey-ledger/backend/internal/application/adapter"
	"github.com/honey-ledger/backend/internal/domain/entity"
	"github.com/honey-ledger/backend/internal/domain/textnorm"
)

// SuggestInventoryInput represents the input for inventory suggestions.
type SuggestInventoryInput struct {
	PersonName string
}

// InventorySuggestion is one unsold honey entry of the matched beekeeper.
type InventorySuggestion struct {
	EntryID       uuid.UUID
	BeekeeperID   uuid.UUID
	BeekeeperName string
	Date          string
	DisplayDate   string
	Detail        string
	Quantity      *decimal.Decimal
	Unit          string
	UnitPrice     *decimal.Decimal
	PriceKnown    bool
}

// SuggestInventoryOutput represents the suggestion list. Empty when no
// beekeeper matches the typed name.
type SuggestInventoryOutput struct {
	Suggestions []*InventorySuggestion
}

// SuggestInventoryUseCase matches a typed person name to a beekeeper
// and lists their unsold honey inventory so a shipment line can be
// linked to the stock it drains.
type SuggestInventoryUseCase struct {
	beekeeperRepo adapter.BeekeeperRepository
	entryRepo     adapter.EntryRepository
}

// NewSuggestInventoryUseCase creates a new SuggestInventoryUseCase instance.
func NewSuggestInventoryUseCase(beekeeperRepo adapter.BeekeeperRepository, entryRepo adapter.EntryRepository) *SuggestInventoryUseCase {
	return &SuggestInventoryUseCase{
		beekeeperRepo: beekeeperRepo,
		entryRepo:     entryRepo,
	}
}

// Execute resolves suggestions. Matching is an exact locale-normalized
// name comparison, so "MEHMET yılmaz" finds "Mehmet Yılmaz".
func (uc *SuggestInventoryUseCase) Execute(ctx context.Context, input SuggestInventoryInput) (*SuggestInventoryOutput, error) {
	wanted := textnorm.NormalizeText(input.PersonName)
	if wanted == "" {
		return &SuggestInventoryOutput{}, nil
	}

	keepers, err := uc.beekeeperRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list beekeepers: %w", err)
	}

	var matched *entity.Beekeeper
	for _, k := range keepers {
		if textnorm.NormalizeText(k.Name) == wanted {
			matched = k
			break
		}
	}
	if matched == nil {
		return &SuggestInventoryOutput{}, nil
	}

	entries, err := uc.entryRepo.FindByOwner(ctx, entity.OwnerTypeBeekeeper, matched.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load beekeeper entries: %w", err)
	}

	var unsold []*entity.Entry
	for _, e := range entries {
		if e.Side != entity.SideLeft || e.Hidden || !e.IsHoney() || e.IsSold() {
			continue
		}
		unsold = append(unsold, e)
	}
	sort.SliceStable(unsold, func(i, j int) bool { return entity.SortChronological(unsold[i], unsold[j]) })

	output := &SuggestInventoryOutput{Suggestions: make([]*InventorySuggestion, 0, len(unsold))}
	for _, e := range unsold {
		unitPrice := e.EffectiveUnitPrice()
		output.Suggestions = append(output.Suggestions, &InventorySuggestion{
			EntryID:       e.ID,
			BeekeeperID:   matched.ID,
			BeekeeperName: matched.Name,
			Date:          e.Date,
			DisplayDate:   entity.FormatDisplayDate(e.Date),
			Detail:        e.HoneyDetail(),
			Quantity:      e.Quantity,
			Unit:          e.Unit,
			UnitPrice:     unitPrice,
			PriceKnown:    unitPrice != nil && unitPrice.Sign() > 0,
		})
	}
	return output, nil
}
