package beekeeper

import (
	"context"
	"fmt"
	"sort"

	"github.com/honey-ledger/backend/internal/application/adapter"
	"github.com/honey-ledger/backend/internal/domain/textnorm"
)

// ListBeekeepersOutput represents the beekeeper list.
type ListBeekeepersOutput struct {
	Beekeepers []*BeekeeperOutput
}

// ListBeekeepersUseCase lists beekeepers for selection and search.
type ListBeekeepersUseCase struct {
	beekeeperRepo adapter.BeekeeperRepository
}

// NewListBeekeepersUseCase creates a new ListBeekeepersUseCase instance.
func NewListBeekeepersUseCase(beekeeperRepo adapter.BeekeeperRepository) *ListBeekeepersUseCase {
	return &ListBeekeepersUseCase{beekeeperRepo: beekeeperRepo}
}

// Execute returns all beekeepers, sorted by registry number with name
// breaking ties.
func (uc *ListBeekeepersUseCase) Execute(ctx context.Context) (*ListBeekeepersOutput, error) {
	keepers, err := uc.beekeeperRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list beekeepers: %w", err)
	}

	sort.SliceStable(keepers, func(i, j int) bool {
		if keepers[i].Number != keepers[j].Number {
			return keepers[i].Number < keepers[j].Number
		}
		return textnorm.NormalizeText(keepers[i].Name) < textnorm.NormalizeText(keepers[j].Name)
	})

	output := &ListBeekeepersOutput{Beekeepers: make([]*BeekeeperOutput, 0, len(keepers))}
	for _, k := range keepers {
		output.Beekeepers = append(output.Beekeepers, toBeekeeperOutput(k))
	}
	return output, nil
}
