package rest_test

import (
	"net/http"
	"testing"

	"backoffice/internal/rest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllGuests(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(t, e, http.MethodGet, "/api/guests", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var guests []rest.GuestResponse
	decodeBody(t, rec, &guests)

	require.Len(t, guests, 4)
	assert.Equal(t, "guest-1", guests[0].ID)
	assert.Equal(t, "Олена Петренко", guests[0].Name)
	assert.Equal(t, "25", guests[0].TotalOrders)
	assert.Equal(t, "4350.00", guests[0].TotalSpend)
	require.NotNil(t, guests[0].AvgOrderValue)
	assert.Equal(t, "174.00", *guests[0].AvgOrderValue)
}

func TestGetAllGuests_QueryFilters(t *testing.T) {
	e := newTestServer(t)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "search by name", query: "search=Петренко", want: []string{"guest-1"}},
		{name: "search case insensitive", query: "search=петренко", want: []string{"guest-1"}},
		{name: "search by phone", query: "search=67+123", want: []string{"guest-1"}},
		{name: "segment", query: "segment=Student", want: []string{"guest-2"}},
		{name: "spend over 5000", query: "spend=%3E5000", want: []string{"guest-3"}},
		{name: "combined", query: "segment=Parent&spend=%3E1000", want: []string{"guest-3"}},
		{name: "no match", query: "search=Немає+Такого", want: []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(t, e, http.MethodGet, "/api/guests?"+tc.query, "")
			require.Equal(t, http.StatusOK, rec.Code)

			var guests []rest.GuestResponse
			decodeBody(t, rec, &guests)

			ids := make([]string, 0, len(guests))
			for _, g := range guests {
				ids = append(ids, g.ID)
			}
			assert.Equal(t, tc.want, ids)
		})
	}
}

func TestGetGuestByID(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(t, e, http.MethodGet, "/api/guests/guest-2", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var g rest.GuestResponse
	decodeBody(t, rec, &g)
	assert.Equal(t, "Андрій Коваленко", g.Name)
	assert.Equal(t, "2780.50", g.TotalSpend)
}

func TestGetGuestByID_NotFound(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(t, e, http.MethodGet, "/api/guests/no-such-guest", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Guest not found", errorMessage(t, rec))
}

func TestCreateGuest_MinimalBody(t *testing.T) {
	e := newTestServer(t)

	body := `{"name":"Новий Гість","phoneNumber":"+380 99 111 2233","segment":"Нові"}`
	rec := doRequest(t, e, http.MethodPost, "/api/guests", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created rest.GuestResponse
	decodeBody(t, rec, &created)

	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	// omitted counters default to zero in the string encoding
	assert.Equal(t, "0", created.TotalOrders)
	assert.Equal(t, "0.00", created.TotalSpend)
	assert.Nil(t, created.LastOrderDate)
	assert.Nil(t, created.AvgOrderValue)

	// the stored record round-trips identically
	rec = doRequest(t, e, http.MethodGet, "/api/guests/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched rest.GuestResponse
	decodeBody(t, rec, &fetched)
	assert.Equal(t, created, fetched)
}

func TestCreateGuest_FullBody(t *testing.T) {
	e := newTestServer(t)

	body := `{
		"name": "Ірина Мельник",
		"phoneNumber": "+380 93 444 5566",
		"segment": "VIP",
		"totalOrders": "12",
		"totalSpend": "2,340.00",
		"favoriteAddresses": ["вул. Саксаганського, 5 (Дім)"],
		"avgOrderValue": "195.00",
		"deliveryZone": "Центр"
	}`
	rec := doRequest(t, e, http.MethodPost, "/api/guests", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created rest.GuestResponse
	decodeBody(t, rec, &created)

	assert.Equal(t, "12", created.TotalOrders)
	// thousand separators are accepted on input, never emitted
	assert.Equal(t, "2340.00", created.TotalSpend)
	require.NotNil(t, created.DeliveryZone)
	assert.Equal(t, "Центр", *created.DeliveryZone)
	assert.Equal(t, []string{"вул. Саксаганського, 5 (Дім)"}, created.FavoriteAddresses)
}

func TestCreateGuest_ValidationListsEveryField(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(t, e, http.MethodPost, "/api/guests", `{"name":"Тільки Ім'я"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	msg := errorMessage(t, rec)
	assert.Contains(t, msg, "PhoneNumber")
	assert.Contains(t, msg, "Segment")
}

func TestCreateGuest_RejectsBadAmount(t *testing.T) {
	e := newTestServer(t)

	body := `{"name":"Гість","phoneNumber":"+380 99 111 2233","segment":"Нові","totalSpend":"not-a-number"}`
	rec := doRequest(t, e, http.MethodPost, "/api/guests", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, errorMessage(t, rec), "invalid amount")
}

func TestUpdateGuest(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(t, e, http.MethodPatch, "/api/guests/guest-4", `{"segment":"VIP","totalSpend":"5100.00"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated rest.GuestResponse
	decodeBody(t, rec, &updated)

	assert.Equal(t, "VIP", updated.Segment)
	assert.Equal(t, "5100.00", updated.TotalSpend)
	// untouched fields keep their stored values
	assert.Equal(t, "Дмитро Сидоренко", updated.Name)
	assert.Equal(t, "8", updated.TotalOrders)
}

func TestUpdateGuest_EmptyBodyIsNoOp(t *testing.T) {
	e := newTestServer(t)

	before := doRequest(t, e, http.MethodGet, "/api/guests/guest-1", "")
	require.Equal(t, http.StatusOK, before.Code)

	rec := doRequest(t, e, http.MethodPatch, "/api/guests/guest-1", `{}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, before.Body.String(), rec.Body.String())
}

func TestUpdateGuest_NotFound(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(t, e, http.MethodPatch, "/api/guests/no-such-guest", `{"segment":"VIP"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Guest not found", errorMessage(t, rec))
}
