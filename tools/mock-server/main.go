// Package main implements a mock Etsy API server for local development.
// It serves canned responses from JSON fixtures to simulate the Etsy Open
// API and OAuth token endpoint without requiring real Etsy credentials.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

type apiFixture struct {
	Listings []json.RawMessage `json:"listings"`
	Shops    []json.RawMessage `json:"shops"`
}

type listingStub struct {
	ListingID int64 `json:"listing_id"`
	ShopID    int64 `json:"shop_id"`
}

type shopStub struct {
	ShopID   int64  `json:"shop_id"`
	ShopName string `json:"shop_name"`
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/fixture.json", "path to API fixture")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fixture, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "listings", len(fixture.Listings), "shops", len(fixture.Shops))

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v3/public/oauth/token", tokenHandler(logger))
	mux.HandleFunc("GET /v3/application/listings/{listing_id}", listingHandler(logger, fixture))
	mux.HandleFunc("GET /v3/application/listings/{listing_id}/reviews", reviewsHandler(logger))
	mux.HandleFunc("GET /v3/application/shops/{shop_id}", shopHandler(logger, fixture))
	mux.HandleFunc("GET /v3/application/shops/{shop_id}/listings/active", shopListingsHandler(logger, fixture))
	mux.HandleFunc("GET /v3/application/shops", searchShopsHandler(logger, fixture))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock Etsy server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func loadFixture(path string) (*apiFixture, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var f apiFixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &f, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}

func tokenHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil || r.PostFormValue("client_id") == "" {
			logger.Warn("token request missing client_id")
			writeJSON(w, http.StatusUnauthorized, map[string]string{
				"error":             "invalid_client",
				"error_description": "client authentication failed",
			})
			return
		}
		if grant := r.PostFormValue("grant_type"); grant != "client_credentials" {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error":             "unsupported_grant_type",
				"error_description": "grant_type must be client_credentials",
			})
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"access_token": "mock-token-v3-" + strconv.FormatInt(int64(os.Getpid()), 16),
			"expires_in":   3600,
			"token_type":   "Bearer",
		})
		logger.Info("issued mock token")
	}
}

func listingHandler(logger *slog.Logger, fixture *apiFixture) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("listing_id")
		for _, raw := range fixture.Listings {
			var stub listingStub
			//nolint:errcheck,gosec // fixture data is trusted; stub extraction is best-effort
			json.Unmarshal(raw, &stub)
			if strconv.FormatInt(stub.ListingID, 10) == id {
				w.Header().Set("Content-Type", "application/json")
				w.Write(raw) //nolint:errcheck,gosec // best-effort write
				logger.Info("served listing", "listing_id", id)
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "listing not found"})
	}
}

func reviewsHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"count": 2,
			"results": []map[string]any{
				{"rating": 5, "review": "Beautiful piece, fast shipping."},
				{"rating": 4, "review": "Lovely, slightly smaller than expected."},
			},
		})
		logger.Info("served reviews", "listing_id", r.PathValue("listing_id"))
	}
}

func shopHandler(logger *slog.Logger, fixture *apiFixture) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("shop_id")
		for _, raw := range fixture.Shops {
			var stub shopStub
			//nolint:errcheck,gosec // fixture data is trusted; stub extraction is best-effort
			json.Unmarshal(raw, &stub)
			if strconv.FormatInt(stub.ShopID, 10) == id {
				w.Header().Set("Content-Type", "application/json")
				w.Write(raw) //nolint:errcheck,gosec // best-effort write
				logger.Info("served shop", "shop_id", id)
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "shop not found"})
	}
}

func shopListingsHandler(logger *slog.Logger, fixture *apiFixture) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("shop_id")
		limit := queryInt(r, "limit", 25)

		var matched []json.RawMessage
		for _, raw := range fixture.Listings {
			var stub listingStub
			//nolint:errcheck,gosec // fixture data is trusted; stub extraction is best-effort
			json.Unmarshal(raw, &stub)
			if strconv.FormatInt(stub.ShopID, 10) == id {
				matched = append(matched, raw)
			}
		}

		total := len(matched)
		if len(matched) > limit {
			matched = matched[:limit]
		}
		if matched == nil {
			matched = []json.RawMessage{}
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"count":   total,
			"results": matched,
		})
		logger.Info("served shop listings", "shop_id", id, "returned", len(matched))
	}
}

func searchShopsHandler(logger *slog.Logger, fixture *apiFixture) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.ToLower(r.URL.Query().Get("shop_name"))
		limit := queryInt(r, "limit", 25)
		offset := queryInt(r, "offset", 0)

		var matched []json.RawMessage
		for _, raw := range fixture.Shops {
			var stub shopStub
			//nolint:errcheck,gosec // fixture data is trusted; stub extraction is best-effort
			json.Unmarshal(raw, &stub)
			if name == "" || strings.Contains(strings.ToLower(stub.ShopName), name) {
				matched = append(matched, raw)
			}
		}

		total := len(matched)
		if offset >= len(matched) {
			matched = nil
		} else {
			end := min(offset+limit, len(matched))
			matched = matched[offset:end]
		}
		if matched == nil {
			matched = []json.RawMessage{}
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"count":   total,
			"results": matched,
		})
		logger.Info("shop search", "shop_name", name, "matched", total, "returned", len(matched))
	}
}

func queryInt(r *http.Request, key string, fallback int) int {
	s := r.URL.Query().Get(key)
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
