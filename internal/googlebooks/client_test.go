package googlebooks

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFetchPageSuccess(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/volumes", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "intitle:Dune", r.URL.Query().Get("q"))
		require.Equal(t, "newest", r.URL.Query().Get("orderBy"))
		require.Equal(t, "0", r.URL.Query().Get("startIndex"))
		require.Equal(t, "40", r.URL.Query().Get("maxResults"))

		response := `{
			"totalItems": 77,
			"items": [
				{
					"volumeInfo": {
						"title": "Dune",
						"authors": ["Frank Herbert"],
						"publisher": "Ace Books",
						"publishedDate": "1990-09-01",
						"pageCount": 896,
						"categories": ["Fiction"],
						"averageRating": 4.5,
						"language": "en",
						"printType": "BOOK",
						"industryIdentifiers": [
							{"type": "ISBN_10", "identifier": "0441172717"},
							{"type": "ISBN_13", "identifier": "9780441172719"}
						]
					}
				},
				{
					"volumeInfo": {
						"title": "Dune Messiah",
						"language": "en",
						"printType": "BOOK"
					}
				}
			]
		}`
		_, _ = w.Write([]byte(response))
	})

	server := newIPv4TestServer(t, mux)
	client := newTestClient(server, "")

	page, err := client.FetchPage(context.Background(), "intitle:Dune", 0)
	require.NoError(t, err)
	require.Equal(t, 77, page.TotalItems)
	require.Equal(t, 0, page.StartIndex)
	require.Len(t, page.Items, 2)
	require.Equal(t, "Dune", page.Items[0].VolumeInfo.Title)
	require.Equal(t, []string{"Frank Herbert"}, page.Items[0].VolumeInfo.Authors)
	require.Equal(t, "9780441172719", page.Items[0].VolumeInfo.IndustryIdentifiers[1].Identifier)
}

func TestFetchPageEmptySentinel(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/volumes", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"totalItems": 0, "items": []}`))
	})

	server := newIPv4TestServer(t, mux)
	client := newTestClient(server, "")

	page, err := client.FetchPage(context.Background(), "intitle:nothing", 0)
	require.NoError(t, err)
	require.Empty(t, page.Items)
	require.Equal(t, 0, page.TotalItems)
}

func TestFetchPageNoItemsZeroesTotal(t *testing.T) {
	// Some responses report a total but carry no items; that is still the
	// nothing-more-to-fetch sentinel.
	mux := http.NewServeMux()
	mux.HandleFunc("/volumes", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"totalItems": 433}`))
	})

	server := newIPv4TestServer(t, mux)
	client := newTestClient(server, "")

	page, err := client.FetchPage(context.Background(), "subject:history", 400)
	require.NoError(t, err)
	require.Empty(t, page.Items)
	require.Equal(t, 0, page.TotalItems)
	require.Equal(t, 400, page.StartIndex)
}

func TestFetchPageServerErrorSingleAttempt(t *testing.T) {
	var attempts atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/volumes", func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	server := newIPv4TestServer(t, mux)
	client := newTestClient(server, "")

	page, err := client.FetchPage(context.Background(), "intitle:Dune", 0)
	require.Error(t, err)
	require.Nil(t, page)
	require.Contains(t, err.Error(), "status 500")
	require.Equal(t, int32(1), attempts.Load())
}

func TestFetchPageSendsAPIKey(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/volumes", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "sekrit", r.URL.Query().Get("key"))
		_, _ = w.Write([]byte(`{"totalItems": 0, "items": []}`))
	})

	server := newIPv4TestServer(t, mux)
	client := newTestClient(server, "sekrit")

	_, err := client.FetchPage(context.Background(), "intitle:Dune", 0)
	require.NoError(t, err)
}

func TestFetchPageMalformedBody(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/volumes", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"totalItems": `))
	})

	server := newIPv4TestServer(t, mux)
	client := newTestClient(server, "")

	_, err := client.FetchPage(context.Background(), "intitle:Dune", 0)
	require.Error(t, err)
	require.Contains(t, err.Error(), "decode")
}
