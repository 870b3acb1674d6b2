package address

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	byID map[string]*Address
}

func newMemRepo() *memRepo {
	return &memRepo{byID: make(map[string]*Address)}
}

func (m *memRepo) List(_ context.Context, customerID string) ([]Address, error) {
	var out []Address
	for _, a := range m.byID {
		if a.CustomerID == customerID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Default != out[j].Default {
			return out[i].Default
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *memRepo) Get(_ context.Context, customerID, id string) (*Address, error) {
	a, ok := m.byID[id]
	if !ok || a.CustomerID != customerID {
		return nil, ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *memRepo) save(a *Address) error {
	for _, other := range m.byID {
		if other.ID != a.ID && other.CustomerID == a.CustomerID && other.Name == a.Name {
			return ErrDuplicateName
		}
	}
	if a.Default {
		for _, other := range m.byID {
			if other.CustomerID == a.CustomerID {
				other.Default = false
			}
		}
	}
	cp := *a
	m.byID[a.ID] = &cp
	return nil
}

func (m *memRepo) Create(_ context.Context, a *Address) error { return m.save(a) }

func (m *memRepo) Update(_ context.Context, a *Address) error { return m.save(a) }

func (m *memRepo) Delete(_ context.Context, customerID, id string) error {
	a, ok := m.byID[id]
	if !ok || a.CustomerID != customerID {
		return ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

func home() Address {
	return Address{
		Name:      "Home",
		FullName:  "Asha Rao",
		ContactNo: "9000000000",
		Email:     "asha@example.com",
		Address:   "12 MG Road",
		City:      "Bengaluru",
		State:     "Karnataka",
		Pincode:   "560001",
		Country:   "India",
	}
}

func newTestService() (*Service, *memRepo) {
	repo := newMemRepo()
	svc := NewService(repo)
	clock := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}
	return svc, repo
}

func TestService_Create(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	in := home()
	in.City = "  Bengaluru "
	a, err := svc.Create(ctx, "cust-1", in)
	require.NoError(t, err)
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, "cust-1", a.CustomerID)
	assert.Equal(t, "Bengaluru", a.City)

	_, err = svc.Create(ctx, "cust-1", home())
	require.ErrorIs(t, err, ErrDuplicateName)

	// Names are unique per customer only.
	_, err = svc.Create(ctx, "cust-2", home())
	require.NoError(t, err)
}

func TestService_CreateValidation(t *testing.T) {
	svc, repo := newTestService()

	in := home()
	in.State = ""
	in.Email = "not-an-email"
	_, err := svc.Create(context.Background(), "cust-1", in)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.ErrorIs(t, err, ErrInvalidRequest)
	assert.ElementsMatch(t, []string{"State", "Email"}, verr.Fields)
	assert.Empty(t, repo.byID)
}

func TestService_DefaultIsExclusive(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	first := home()
	first.Default = true
	a, err := svc.Create(ctx, "cust-1", first)
	require.NoError(t, err)

	second := home()
	second.Name = "Office"
	second.Default = true
	b, err := svc.Create(ctx, "cust-1", second)
	require.NoError(t, err)

	third := home()
	third.Name = "Parents"
	_, err = svc.Create(ctx, "cust-1", third)
	require.NoError(t, err)

	list, err := svc.List(ctx, "cust-1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, b.ID, list[0].ID)
	assert.True(t, list[0].Default)
	assert.Equal(t, "Parents", list[1].Name)
	assert.Equal(t, a.ID, list[2].ID)
	assert.False(t, list[2].Default)
}

func TestService_UpdateAndDelete(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	a, err := svc.Create(ctx, "cust-1", home())
	require.NoError(t, err)

	_, err = svc.Update(ctx, "cust-2", a.ID, home())
	require.ErrorIs(t, err, ErrNotFound)

	in := home()
	in.City = "Mysuru"
	in.Default = true
	updated, err := svc.Update(ctx, "cust-1", a.ID, in)
	require.NoError(t, err)
	assert.Equal(t, a.ID, updated.ID)
	assert.Equal(t, a.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(a.UpdatedAt))

	got, err := svc.Get(ctx, "cust-1", a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mysuru", got.City)
	assert.True(t, got.Default)

	_, err = svc.Get(ctx, "cust-2", a.ID)
	require.ErrorIs(t, err, ErrNotFound)

	require.ErrorIs(t, svc.Delete(ctx, "cust-2", a.ID), ErrNotFound)
	require.NoError(t, svc.Delete(ctx, "cust-1", a.ID))
	_, err = svc.Get(ctx, "cust-1", a.ID)
	require.ErrorIs(t, err, ErrNotFound)
}
