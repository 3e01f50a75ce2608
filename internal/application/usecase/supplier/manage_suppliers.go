package supplier

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/honey-ledger/backend/internal/application/adapter"
	"github.com/honey-ledger/backend/internal/domain/entity"
	domainerror "github.com/honey-ledger/backend/internal/domain/error"
	"github.com/honey-ledger/backend/internal/domain/textnorm"
)

// CreateSupplierInput represents the input for supplier creation.
type CreateSupplierInput struct {
	Name string
	Note string
}

// CreateSupplierOutput represents the output of supplier creation.
type CreateSupplierOutput struct {
	Supplier *SupplierOutput
}

// CreateSupplierUseCase handles supplier creation.
type CreateSupplierUseCase struct {
	supplierRepo adapter.SupplierRepository
}

// NewCreateSupplierUseCase creates a new CreateSupplierUseCase instance.
func NewCreateSupplierUseCase(supplierRepo adapter.SupplierRepository) *CreateSupplierUseCase {
	return &CreateSupplierUseCase{supplierRepo: supplierRepo}
}

// Execute performs the creation.
func (uc *CreateSupplierUseCase) Execute(ctx context.Context, input CreateSupplierInput) (*CreateSupplierOutput, error) {
	name := textnorm.TitleCase(input.Name)
	if name == "" {
		return nil, domainerror.NewOwnerError(
			domainerror.ErrCodeMissingOwnerName,
			"supplier name is required",
			domainerror.ErrMissingOwnerName,
		)
	}
	sup := entity.NewSupplier(name, textnorm.NormalizeSpaces(input.Note))
	if err := uc.supplierRepo.Create(ctx, sup); err != nil {
		return nil, fmt.Errorf("failed to create supplier: %w", err)
	}
	return &CreateSupplierOutput{Supplier: toSupplierOutput(sup)}, nil
}

// UpdateSupplierInput represents the input for supplier updates.
type UpdateSupplierInput struct {
	SupplierID uuid.UUID
	Name       string
	Note       string
	Active     bool
}

// UpdateSupplierOutput represents the output of a supplier update.
type UpdateSupplierOutput struct {
	Supplier *SupplierOutput
}

// UpdateSupplierUseCase handles supplier updates.
type UpdateSupplierUseCase struct {
	supplierRepo adapter.SupplierRepository
}

// NewUpdateSupplierUseCase creates a new UpdateSupplierUseCase instance.
func NewUpdateSupplierUseCase(supplierRepo adapter.SupplierRepository) *UpdateSupplierUseCase {
	return &UpdateSupplierUseCase{supplierRepo: supplierRepo}
}

// Execute performs the update.
func (uc *UpdateSupplierUseCase) Execute(ctx context.Context, input UpdateSupplierInput) (*UpdateSupplierOutput, error) {
	name := textnorm.TitleCase(input.Name)
	if name == "" {
		return nil, domainerror.NewOwnerError(
			domainerror.ErrCodeMissingOwnerName,
			"supplier name is required",
			domainerror.ErrMissingOwnerName,
		)
	}

	sup, err := uc.supplierRepo.FindByID(ctx, input.SupplierID)
	if err != nil {
		return nil, domainerror.NewOwnerError(
			domainerror.ErrCodeOwnerNotFound,
			"supplier not found",
			domainerror.ErrOwnerNotFound,
		)
	}

	sup.Name = name
	sup.Note = textnorm.NormalizeSpaces(input.Note)
	sup.Active = input.Active
	sup.UpdatedAt = time.Now().UTC()

	if err := uc.supplierRepo.Update(ctx, sup); err != nil {
		return nil, fmt.Errorf("failed to update supplier: %w", err)
	}
	return &UpdateSupplierOutput{Supplier: toSupplierOutput(sup)}, nil
}

// ListSuppliersOutput represents the supplier list.
type ListSuppliersOutput struct {
	Suppliers []*SupplierOutput
}

// ListSuppliersUseCase lists suppliers, name-sorted.
type ListSuppliersUseCase struct {
	supplierRepo adapter.SupplierRepository
}

// NewListSuppliersUseCase creates a new ListSuppliersUseCase instance.
func NewListSuppliersUseCase(supplierRepo adapter.SupplierRepository) *ListSuppliersUseCase {
	return &ListSuppliersUseCase{supplierRepo: supplierRepo}
}

// Execute returns all suppliers.
func (uc *ListSuppliersUseCase) Execute(ctx context.Context) (*ListSuppliersOutput, error) {
	suppliers, err := uc.supplierRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	sort.SliceStable(suppliers, func(i, j int) bool {
		return textnorm.NormalizeText(suppliers[i].Name) < textnorm.NormalizeText(suppliers[j].Name)
	})

	output := &ListSuppliersOutput{Suppliers: make([]*SupplierOutput, 0, len(suppliers))}
	for _, s := range suppliers {
		output.Suppliers = append(output.Suppliers, toSupplierOutput(s))
	}
	return output, nil
}

// DeleteSupplierInput represents the input for supplier deletion.
type DeleteSupplierInput struct {
	SupplierID uuid.UUID
}

// DeleteSupplierOutput reports the cascade size.
type DeleteSupplierOutput struct {
	EntriesDeleted int
	Batches        int
}

// DeleteSupplierUseCase removes a supplier and their book in bounded
// batches.
type DeleteSupplierUseCase struct {
	supplierRepo adapter.SupplierRepository
	entryRepo    adapter.EntryRepository
}

// NewDeleteSupplierUseCase creates a new DeleteSupplierUseCase instance.
func NewDeleteSupplierUseCase(supplierRepo adapter.SupplierRepository, entryRepo adapter.EntryRepository) *DeleteSupplierUseCase {
	return &DeleteSupplierUseCase{
		supplierRepo: supplierRepo,
		entryRepo:    entryRepo,
	}
}

// Execute performs the cascade deletion.
func (uc *DeleteSupplierUseCase) Execute(ctx context.Context, input DeleteSupplierInput) (*DeleteSupplierOutput, error) {
	if _, err := uc.supplierRepo.FindByID(ctx, input.SupplierID); err != nil {
		return nil, domainerror.NewOwnerError(
			domainerror.ErrCodeOwnerNotFound,
			"supplier not found",
			domainerror.ErrOwnerNotFound,
		)
	}

	entries, err := uc.entryRepo.FindByOwner(ctx, entity.OwnerTypeSupplier, input.SupplierID)
	if err != nil {
		return nil, fmt.Errorf("failed to load supplier entries: %w", err)
	}
	ids := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}

	result, err := uc.entryRepo.DeleteBatch(ctx, ids)
	if err != nil {
		return nil, domainerror.NewOwnerError(
			domainerror.ErrCodeCascadeIncomplete,
			fmt.Sprintf("deleted %d of %d entries before failing", result.Operations, len(ids)),
			domainerror.ErrCascadeIncomplete,
		)
	}

	if err := uc.supplierRepo.Delete(ctx, input.SupplierID); err != nil {
		return nil, fmt.Errorf("failed to delete supplier: %w", err)
	}

	slog.Info("Deleted supplier book",
		"supplierID", input.SupplierID,
		"entries", result.Operations,
		"batches", result.Batches,
	)

	return &DeleteSupplierOutput{
		EntriesDeleted: result.Operations,
		Batches:        result.Batches,
	}, nil
}
