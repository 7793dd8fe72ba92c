package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"vastuguru-api/internal/domain/services"
)

func svc(id string, price int64, features ...string) services.Service {
	return services.Service{
		ID:          id,
		Title:       "Package " + id,
		Price:       price,
		Description: "desc " + id,
		Features:    features,
		Category:    services.CategoryAstrology,
		ServiceType: services.TypePackage,
		IsActive:    true,
	}
}

func TestBuild_SortsByPriceAndTiers(t *testing.T) {
	in := []services.Service{
		svc("a", 60000),
		svc("b", 5000),
		svc("c", 25000),
	}

	got, err := BuildCatalog(in)
	require.NoError(t, err)

	want := []Plan{
		{ID: "b", Tier: TierBasic, Price: 5000, DisplayPrice: "5,000", Description: "desc b", Features: []string{}},
		{ID: "c", Tier: TierSilver, Price: 25000, DisplayPrice: "25,000", Description: "desc c", Features: []string{}},
		{ID: "a", Tier: TierGold, Price: 60000, DisplayPrice: "60,000", Description: "desc a", Features: []string{}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BuildCatalog mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_StableOnEqualPrices(t *testing.T) {
	got, err := BuildCatalog([]services.Service{
		svc("A", 10000),
		svc("B", 10000),
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].ID)
	assert.Equal(t, "B", got[1].ID)
}

func TestBuild_DoesNotMutateInput(t *testing.T) {
	in := []services.Service{
		svc("x", 70000, "one", "two"),
		svc("y", 100),
	}
	snapshot := make([]services.Service, len(in))
	copy(snapshot, in)

	got, err := BuildCatalog(in)
	require.NoError(t, err)

	if diff := cmp.Diff(snapshot, in); diff != "" {
		t.Errorf("input mutated (-before +after):\n%s", diff)
	}

	got[1].Features[0] = "changed"
	assert.Equal(t, "one", in[0].Features[0], "plan features must not alias service features")
}

func TestBuild_NilFeaturesBecomeEmpty(t *testing.T) {
	s := svc("n", 100)
	s.Features = nil

	got, err := BuildCatalog([]services.Service{s})
	require.NoError(t, err)
	require.NotNil(t, got[0].Features)
	assert.Empty(t, got[0].Features)
}

func TestBuild_FormatsWithIndianGrouping(t *testing.T) {
	got, err := BuildCatalog([]services.Service{svc("l", 100000)})
	require.NoError(t, err)
	assert.Equal(t, "1,00,000", got[0].DisplayPrice)
	assert.Equal(t, TierPlatinum, got[0].Tier)
}

func TestBuild_InvalidPriceFailsWholeBuild(t *testing.T) {
	_, err := BuildCatalog([]services.Service{svc("ok", 10), svc("bad", -5)})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPrice)
	assert.Contains(t, err.Error(), "bad")
}

func TestBuild_EmptyInput(t *testing.T) {
	got, err := BuildCatalog(nil)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestBuild_PropertyBased_LengthOrderIdempotence(t *testing.T) {
	b := DefaultBuilder()

	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 30).Draw(t, "n")
		in := make([]services.Service, n)
		for i := range in {
			price := rapid.Int64Range(0, 120_000).Draw(t, "price")
			in[i] = svc(string(rune('a'+i%26))+string(rune('0'+i/26)), price)
		}

		first, err := b.Build(in)
		require.NoError(t, err)
		second, err := b.Build(in)
		require.NoError(t, err)

		assert.Len(t, first, n)
		assert.True(t, cmp.Equal(first, second), "Build must be idempotent")

		pos := map[string]int{}
		for i, s := range in {
			pos[s.ID] = i
		}
		for i := 1; i < len(first); i++ {
			prev, cur := first[i-1], first[i]
			assert.LessOrEqual(t, prev.Price, cur.Price)
			if prev.Price == cur.Price {
				assert.Less(t, pos[prev.ID], pos[cur.ID], "equal prices keep input order")
			}
		}
		for _, p := range first {
			want, err := Classify(p.Price)
			require.NoError(t, err)
			assert.Equal(t, want, p.Tier)
		}
	})
}

func TestBuildAdmin_KeepsServiceIdentifiers(t *testing.T) {
	s := svc("pkg-1", 45000, "call")
	s.SubCategory = "vastu-for-home"

	got, err := DefaultBuilder().BuildAdmin([]services.Service{s})
	require.NoError(t, err)
	require.Len(t, got, 1)

	p := got[0]
	assert.Equal(t, "pkg-1", p.ID)
	assert.Equal(t, TierGold, p.Tier)
	assert.Equal(t, "vastu-for-home", p.SubCategory)
	assert.Equal(t, PlanActions{Edit: "pkg-1", Delete: "pkg-1"}, p.Actions)
}

func TestNewBuilder_RejectsBadInput(t *testing.T) {
	f, err := NewPriceFormatter("en-IN")
	require.NoError(t, err)

	_, err = NewBuilder(Thresholds{BasicMax: 10, SilverMax: 5, GoldMax: 20}, f)
	assert.ErrorIs(t, err, ErrInvalidThresholds)

	_, err = NewBuilder(DefaultThresholds(), nil)
	assert.Error(t, err)
}
