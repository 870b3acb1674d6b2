package handler

import (
	"context"

	"github.com/xenking/storefront/gen/oas"
)

// ListAddresses returns the caller's saved addresses, the default first.
func (h *Handler) ListAddresses(ctx context.Context) ([]oas.Address, error) {
	list, err := h.Addresses.List(ctx, identity(ctx).CustomerID)
	if err != nil {
		return nil, err
	}
	out := make([]oas.Address, 0, len(list))
	for i := range list {
		out = append(out, toOASAddress(&list[i]))
	}
	return out, nil
}

func (h *Handler) CreateAddress(ctx context.Context, req *oas.AddressInput) (*oas.Address, error) {
	a, err := h.Addresses.Create(ctx, identity(ctx).CustomerID, fromOASAddress(req))
	if err != nil {
		return nil, err
	}
	out := toOASAddress(a)
	return &out, nil
}

func (h *Handler) GetAddress(ctx context.Context, params oas.GetAddressParams) (*oas.Address, error) {
	a, err := h.Addresses.Get(ctx, identity(ctx).CustomerID, params.ID)
	if err != nil {
		return nil, err
	}
	out := toOASAddress(a)
	return &out, nil
}

func (h *Handler) UpdateAddress(ctx context.Context, req *oas.AddressInput, params oas.UpdateAddressParams) (*oas.Address, error) {
	a, err := h.Addresses.Update(ctx, identity(ctx).CustomerID, params.ID, fromOASAddress(req))
	if err != nil {
		return nil, err
	}
	out := toOASAddress(a)
	return &out, nil
}

func (h *Handler) DeleteAddress(ctx context.Context, params oas.DeleteAddressParams) (*oas.Message, error) {
	if err := h.Addresses.Delete(ctx, identity(ctx).CustomerID, params.ID); err != nil {
		return nil, err
	}
	return &oas.Message{Message: "address deleted"}, nil
}
