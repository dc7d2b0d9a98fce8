package guest

import (
	"testing"
	"time"

	"backoffice/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var filterNow = time.Date(2023, 7, 1, 12, 0, 0, 0, time.UTC)

func filterFixture() []domain.Guest {
	daysAgo := func(d int) *time.Time {
		t := filterNow.AddDate(0, 0, -d)
		return &t
	}

	return []domain.Guest{
		{
			ID:            "guest-1",
			Name:          "Олена Петренко",
			PhoneNumber:   "+380 67 123 4567",
			TotalOrders:   25,
			TotalSpend:    4350,
			LastOrderDate: daysAgo(2),
			Segment:       "VIP",
		},
		{
			ID:            "guest-2",
			Name:          "Андрій Коваленко",
			PhoneNumber:   "+380 50 987 6543",
			TotalOrders:   8,
			TotalSpend:    1240,
			LastOrderDate: daysAgo(20),
			Segment:       "Активні",
		},
		{
			ID:            "guest-3",
			Name:          "Марія Шевченко",
			PhoneNumber:   "+380 63 555 7788",
			TotalOrders:   3,
			TotalSpend:    420,
			LastOrderDate: daysAgo(45),
			Segment:       "Сплячі",
		},
		{
			ID:          "guest-4",
			Name:        "Ігор Бондаренко",
			PhoneNumber: "+380 96 222 3344",
			TotalOrders: 0,
			TotalSpend:  0,
			Segment:     "Нові",
		},
	}
}

func filteredIDs(guests []domain.Guest) []string {
	ids := make([]string, 0, len(guests))
	for _, g := range guests {
		ids = append(ids, g.ID)
	}
	return ids
}

func TestApply_EmptyFilterReturnsAll(t *testing.T) {
	guests := filterFixture()

	got := Apply(guests, Filter{}, filterNow)

	require.Len(t, got, len(guests))
	assert.Equal(t, []string{"guest-1", "guest-2", "guest-3", "guest-4"}, filteredIDs(got))
}

func TestApply_SearchByName(t *testing.T) {
	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{name: "exact substring", search: "Петренко", want: []string{"guest-1"}},
		{name: "case insensitive", search: "петренко", want: []string{"guest-1"}},
		{name: "shared suffix", search: "енко", want: []string{"guest-1", "guest-2", "guest-3", "guest-4"}},
		{name: "no match", search: "Сидоренко", want: []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Apply(filterFixture(), Filter{Search: tc.search}, filterNow)
			assert.Equal(t, tc.want, filteredIDs(got))
		})
	}
}

func TestApply_SearchByPhone(t *testing.T) {
	got := Apply(filterFixture(), Filter{Search: "67 123"}, filterNow)
	assert.Equal(t, []string{"guest-1"}, filteredIDs(got))

	got = Apply(filterFixture(), Filter{Search: "+380"}, filterNow)
	assert.Len(t, got, 4)
}

func TestApply_Segment(t *testing.T) {
	got := Apply(filterFixture(), Filter{Segment: "VIP"}, filterNow)
	assert.Equal(t, []string{"guest-1"}, filteredIDs(got))

	got = Apply(filterFixture(), Filter{Segment: "Сплячі"}, filterNow)
	assert.Equal(t, []string{"guest-3"}, filteredIDs(got))

	got = Apply(filterFixture(), Filter{Segment: "Невідомий"}, filterNow)
	assert.Empty(t, got)
}

func TestApply_Activity(t *testing.T) {
	got := Apply(filterFixture(), Filter{Activity: ActivityOver14Days}, filterNow)
	assert.Equal(t, []string{"guest-2", "guest-3"}, filteredIDs(got))

	got = Apply(filterFixture(), Filter{Activity: ActivityOver30Days}, filterNow)
	assert.Equal(t, []string{"guest-3"}, filteredIDs(got))
}

func TestApply_ActivityExcludesGuestsWithoutOrders(t *testing.T) {
	// guest-4 has no last order date and must fail any activity window
	got := Apply(filterFixture(), Filter{Activity: ActivityOver14Days}, filterNow)
	assert.NotContains(t, filteredIDs(got), "guest-4")
}

func TestApply_Spend(t *testing.T) {
	tests := []struct {
		spend string
		want  []string
	}{
		{spend: SpendOver500, want: []string{"guest-1", "guest-2"}},
		{spend: SpendOver1000, want: []string{"guest-1", "guest-2"}},
		{spend: SpendOver5000, want: []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.spend, func(t *testing.T) {
			got := Apply(filterFixture(), Filter{Spend: tc.spend}, filterNow)
			assert.Equal(t, tc.want, filteredIDs(got))
		})
	}
}

func TestApply_SpendBoundaryIsExclusive(t *testing.T) {
	guests := []domain.Guest{{ID: "g", TotalSpend: 500}}

	got := Apply(guests, Filter{Spend: SpendOver500}, filterNow)
	assert.Empty(t, got)
}

func TestApply_CombinedFilters(t *testing.T) {
	f := Filter{Search: "Коваленко", Segment: "Активні", Activity: ActivityOver14Days, Spend: SpendOver1000}

	got := Apply(filterFixture(), f, filterNow)
	assert.Equal(t, []string{"guest-2"}, filteredIDs(got))

	f.Spend = SpendOver5000
	got = Apply(filterFixture(), f, filterNow)
	assert.Empty(t, got)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	guests := filterFixture()

	Apply(guests, Filter{Segment: "VIP"}, filterNow)

	assert.Len(t, guests, 4)
	assert.Equal(t, "guest-1", guests[0].ID)
}
