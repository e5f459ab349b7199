package app

import (
	"context"
	"errors"
	"testing"

	"github.com/dwikikusuma/storefront/internal/customer/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	byEmail map[string]domain.Customer

	getErr error
	// raceOnCreate simulates a concurrent insert of the same email.
	raceOnCreate bool
	updates      int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byEmail: map[string]domain.Customer{}}
}

func (f *fakeRepo) GetByEmail(ctx context.Context, email string) (domain.Customer, error) {
	if f.getErr != nil {
		return domain.Customer{}, f.getErr
	}
	c, ok := f.byEmail[email]
	if !ok {
		return domain.Customer{}, ErrNotFound
	}
	return c, nil
}

func (f *fakeRepo) Create(ctx context.Context, c domain.Customer) (domain.Customer, error) {
	if f.raceOnCreate {
		f.raceOnCreate = false
		f.byEmail[c.Email] = domain.Customer{ID: "winner", Email: c.Email, Profile: domain.Profile{Name: "First"}}
		return domain.Customer{}, ErrAlreadyExists
	}
	if _, ok := f.byEmail[c.Email]; ok {
		return domain.Customer{}, ErrAlreadyExists
	}
	c.ID = "c-" + c.Email
	f.byEmail[c.Email] = c
	return c, nil
}

func (f *fakeRepo) UpdateProfile(ctx context.Context, id string, p domain.Profile) (domain.Customer, error) {
	f.updates++
	for email, c := range f.byEmail {
		if c.ID == id {
			c.Profile = p
			f.byEmail[email] = c
			return c, nil
		}
	}
	return domain.Customer{}, ErrNotFound
}

func TestResolveOrCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates with normalized email", func(t *testing.T) {
		repo := newFakeRepo()
		c, err := NewService(repo).ResolveOrCreate(ctx, "  Ana@Example.COM ", domain.Profile{Name: "Ana"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Email != "ana@example.com" || c.Profile.Name != "Ana" {
			t.Fatalf("unexpected customer: %+v", c)
		}
	})

	t.Run("merges without erasing", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo)
		first, _ := svc.ResolveOrCreate(ctx, "ana@example.com", domain.Profile{Name: "Ana", Phone: "555"})

		second, err := svc.ResolveOrCreate(ctx, "ANA@example.com", domain.Profile{City: "CDMX", Phone: " "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if second.ID != first.ID {
			t.Fatalf("expected same customer, got %s and %s", first.ID, second.ID)
		}
		want := domain.Profile{Name: "Ana", Phone: "555", City: "CDMX"}
		if second.Profile != want {
			t.Fatalf("profile = %+v, want %+v", second.Profile, want)
		}
	})

	t.Run("no write when nothing changes", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo)
		_, _ = svc.ResolveOrCreate(ctx, "ana@example.com", domain.Profile{Name: "Ana"})
		_, _ = svc.ResolveOrCreate(ctx, "ana@example.com", domain.Profile{Name: "Ana"})
		if repo.updates != 0 {
			t.Fatalf("expected no updates, got %d", repo.updates)
		}
	})

	t.Run("concurrent create falls back to merge", func(t *testing.T) {
		repo := newFakeRepo()
		repo.raceOnCreate = true
		c, err := NewService(repo).ResolveOrCreate(ctx, "ana@example.com", domain.Profile{Phone: "555"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.ID != "winner" || c.Profile.Name != "First" || c.Profile.Phone != "555" {
			t.Fatalf("unexpected customer: %+v", c)
		}
	})

	t.Run("validation", func(t *testing.T) {
		for _, email := range []string{"", "   ", "not-an-email", "Ana <ana@example.com>"} {
			_, err := NewService(newFakeRepo()).ResolveOrCreate(ctx, email, domain.Profile{})
			if !errors.Is(err, ErrInvalidEmail) {
				t.Fatalf("%q: expected ErrInvalidEmail, got %v", email, err)
			}
		}
	})

	t.Run("store failure", func(t *testing.T) {
		repo := newFakeRepo()
		repo.getErr = errors.New("connection refused")
		_, err := NewService(repo).ResolveOrCreate(ctx, "ana@example.com", domain.Profile{})
		if !errors.Is(err, ErrStore) {
			t.Fatalf("expected ErrStore, got %v", err)
		}
	})
}

func TestResolveLeavesProfileAlone(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := NewService(repo)

	_, err := svc.ResolveOrCreate(ctx, "ana@example.com", domain.Profile{Name: "Ana", City: "CDMX"})
	require.NoError(t, err)

	c, err := svc.Resolve(ctx, "ANA@example.com")
	require.NoError(t, err)
	assert.Equal(t, domain.Profile{Name: "Ana", City: "CDMX"}, c.Profile)
	assert.Zero(t, repo.updates)

	fresh, err := svc.Resolve(ctx, "bo@example.com")
	require.NoError(t, err)
	assert.Equal(t, domain.Profile{}, fresh.Profile)
}

func TestMergeProfile(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := NewService(repo)

	_, err := svc.Resolve(ctx, "ana@example.com")
	require.NoError(t, err)

	c, err := svc.MergeProfile(ctx, "Ana@Example.com", domain.Profile{Name: "Ana", Phone: "555"})
	require.NoError(t, err)
	assert.Equal(t, domain.Profile{Name: "Ana", Phone: "555"}, c.Profile)

	_, err = svc.MergeProfile(ctx, "nobody@example.com", domain.Profile{Name: "X"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.MergeProfile(ctx, "not-an-email", domain.Profile{})
	assert.ErrorIs(t, err, ErrInvalidEmail)
}
