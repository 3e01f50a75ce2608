package beekeeper

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/honey-ledger/backend/internal/application/adapter"
	"github.com/honey-ledger/backend/internal/domain/entity"
	domainerror "github.com/honey-ledger/backend/internal/domain/error"
	"github.com/honey-ledger/backend/internal/domain/valueobject"
)

// GetBookInput represents the input for reading a beekeeper's book.
type GetBookInput struct {
	BeekeeperID   uuid.UUID
	IncludeHidden bool
}

// GetBookOutput is the full two-sided book of one beekeeper.
type GetBookOutput struct {
	Beekeeper *BeekeeperOutput
	Left      []*EntryOutput
	Right     []*EntryOutput
	Balance   valueobject.Balance
}

// GetBookUseCase assembles a beekeeper's ledger book snapshot.
type GetBookUseCase struct {
	beekeeperRepo adapter.BeekeeperRepository
	entryRepo     adapter.EntryRepository
}

// NewGetBookUseCase creates a new GetBookUseCase instance.
func NewGetBookUseCase(beekeeperRepo adapter.BeekeeperRepository, entryRepo adapter.EntryRepository) *GetBookUseCase {
	return &GetBookUseCase{
		beekeeperRepo: beekeeperRepo,
		entryRepo:     entryRepo,
	}
}

// Execute reads the book. Hidden entries are filtered from the lists
// unless requested, and never contribute to the side totals.
func (uc *GetBookUseCase) Execute(ctx context.Context, input GetBookInput) (*GetBookOutput, error) {
	keeper, err := uc.beekeeperRepo.FindByID(ctx, input.BeekeeperID)
	if err != nil {
		return nil, domainerror.NewOwnerError(
			domainerror.ErrCodeOwnerNotFound,
			"beekeeper not found",
			domainerror.ErrOwnerNotFound,
		)
	}

	entries, err := uc.entryRepo.FindByOwner(ctx, entity.OwnerTypeBeekeeper, input.BeekeeperID)
	if err != nil {
		return nil, fmt.Errorf("failed to load beekeeper entries: %w", err)
	}

	var left, right []*entity.Entry
	leftTotal, rightTotal := decimal.Zero, decimal.Zero
	for _, e := range entries {
		if !e.Hidden && e.Price != nil {
			switch e.Side {
			case entity.SideLeft:
				leftTotal = leftTotal.Add(*e.Price)
			case entity.SideRight:
				rightTotal = rightTotal.Add(*e.Price)
			}
		}
		if e.Hidden && !input.IncludeHidden {
			continue
		}
		switch e.Side {
		case entity.SideLeft:
			left = append(left, e)
		case entity.SideRight:
			right = append(right, e)
		}
	}

	sort.SliceStable(left, func(i, j int) bool { return entity.SortManual(left[i], left[j]) })
	sort.SliceStable(right, func(i, j int) bool { return entity.SortManual(right[i], right[j]) })

	output := &GetBookOutput{
		Beekeeper: toBeekeeperOutput(keeper),
		Left:      make([]*EntryOutput, 0, len(left)),
		Right:     make([]*EntryOutput, 0, len(right)),
		Balance:   valueobject.NewBalance(leftTotal, rightTotal),
	}
	for _, e := range left {
		output.Left = append(output.Left, toEntryOutput(e))
	}
	for _, e := range right {
		output.Right = append(output.Right, toEntryOutput(e))
	}

	return output, nil
}
