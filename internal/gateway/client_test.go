package gateway_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/farmatech/farmatech-client/internal/gateway"
	"github.com/farmatech/farmatech-client/internal/models"
	"github.com/farmatech/farmatech-client/internal/session"
)

func newStoreWithTokens(access, refresh string) *session.MemoryStore {
	store := session.NewMemoryStore()
	store.SetTokens(session.Tokens{Access: access, Refresh: refresh})
	return store
}

func writeMedicamentos(w http.ResponseWriter) {
	fmt.Fprint(w, `[{"id":1,"nome":"Dipirona","quantidade":12,"quantidade_minima":5,"categoria":"Analgésico","preco":"8.50","data_vencimento":"2026-12-31"}]`)
}

func TestRefreshAndRetryOnExpiredToken(t *testing.T) {
	var resourceCalls, refreshCalls int32

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/token/refresh/":
			atomic.AddInt32(&refreshCalls, 1)
			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			if body["refresh"] != "refresh-1" {
				t.Errorf("refresh request carried token %q, want refresh-1", body["refresh"])
			}
			fmt.Fprint(w, `{"access":"access-2"}`)
		case "/medicamentos/":
			atomic.AddInt32(&resourceCalls, 1)
			if r.Header.Get("Authorization") != "Bearer access-2" {
				w.WriteHeader(http.StatusUnauthorized)
				fmt.Fprint(w, `{"detail":"token expirado"}`)
				return
			}
			writeMedicamentos(w)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	t.Cleanup(backend.Close)

	store := newStoreWithTokens("access-1", "refresh-1")
	client := gateway.New(backend.URL, store)

	meds, err := client.Medicamentos(context.Background())
	if err != nil {
		t.Fatalf("Medicamentos failed: %v", err)
	}
	if len(meds) != 1 || meds[0].Nome != "Dipirona" {
		t.Errorf("unexpected result %+v", meds)
	}
	if got := atomic.LoadInt32(&refreshCalls); got != 1 {
		t.Errorf("refresh called %d times, want 1", got)
	}
	if got := atomic.LoadInt32(&resourceCalls); got != 2 {
		t.Errorf("resource called %d times, want 2 (original plus retry)", got)
	}

	tokens, err := store.Tokens()
	if err != nil {
		t.Fatalf("store should still hold tokens: %v", err)
	}
	if tokens.Access != "access-2" || tokens.Refresh != "refresh-1" {
		t.Errorf("store holds %+v after refresh", tokens)
	}
}

func TestRefreshFailureClearsSession(t *testing.T) {
	var resourceCalls int32

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/token/refresh/":
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"detail":"refresh token inválido"}`)
		case "/medicamentos/":
			atomic.AddInt32(&resourceCalls, 1)
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	t.Cleanup(backend.Close)

	store := newStoreWithTokens("expired", "stale")
	client := gateway.New(backend.URL, store)

	_, err := client.Medicamentos(context.Background())
	if !errors.Is(err, gateway.ErrUnauthorized) {
		t.Fatalf("got %v, want ErrUnauthorized", err)
	}
	if got := atomic.LoadInt32(&resourceCalls); got != 1 {
		t.Errorf("resource called %d times, want 1 (no retry after failed refresh)", got)
	}
	if _, err := store.Tokens(); !errors.Is(err, session.ErrNoSession) {
		t.Error("session should be cleared after failed refresh")
	}
}

func TestRetryStillUnauthorizedClearsSession(t *testing.T) {
	var resourceCalls int32

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/token/refresh/":
			fmt.Fprint(w, `{"access":"access-2"}`)
		case "/medicamentos/":
			atomic.AddInt32(&resourceCalls, 1)
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	t.Cleanup(backend.Close)

	store := newStoreWithTokens("access-1", "refresh-1")
	client := gateway.New(backend.URL, store)

	_, err := client.Medicamentos(context.Background())
	if !errors.Is(err, gateway.ErrUnauthorized) {
		t.Fatalf("got %v, want ErrUnauthorized", err)
	}
	if got := atomic.LoadInt32(&resourceCalls); got != 2 {
		t.Errorf("resource called %d times, want exactly 2", got)
	}
	if _, err := store.Tokens(); !errors.Is(err, session.ErrNoSession) {
		t.Error("session should be cleared when the retry is still rejected")
	}
}

func TestConcurrentRequestsShareOneRefresh(t *testing.T) {
	var refreshCalls int32

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/token/refresh/":
			atomic.AddInt32(&refreshCalls, 1)
			time.Sleep(150 * time.Millisecond)
			fmt.Fprint(w, `{"access":"access-2"}`)
		case "/medicamentos/":
			if r.Header.Get("Authorization") != "Bearer access-2" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			writeMedicamentos(w)
		}
	}))
	t.Cleanup(backend.Close)

	store := newStoreWithTokens("expired", "refresh-1")
	client := gateway.New(backend.URL, store)

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = client.Medicamentos(context.Background())
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Errorf("request %d failed: %v", i, err)
		}
	}
	if got := atomic.LoadInt32(&refreshCalls); got != 1 {
		t.Errorf("refresh called %d times for %d concurrent requests, want 1", got, workers)
	}
}

func TestAPIErrorCarriesBackendMessage(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		fmt.Fprint(w, `{"message":"quantidade insuficiente em estoque"}`)
	}))
	t.Cleanup(backend.Close)

	client := gateway.New(backend.URL, newStoreWithTokens("access", "refresh"))

	_, err := client.CreateMedicamento(context.Background(), models.Medicamento{Nome: "Dipirona"})
	var apiErr *gateway.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("got %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusConflict {
		t.Errorf("status = %d, want 409", apiErr.StatusCode)
	}
	if apiErr.Message != "quantidade insuficiente em estoque" {
		t.Errorf("message = %q", apiErr.Message)
	}
}

func TestUnreachableBackend(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	backend.Close()

	client := gateway.New(backend.URL, newStoreWithTokens("access", "refresh"))

	_, err := client.Medicamentos(context.Background())
	if !errors.Is(err, gateway.ErrUnreachable) {
		t.Fatalf("got %v, want ErrUnreachable", err)
	}
}

func TestCreateMedicamentoPayloadIsSnakeCase(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("could not decode payload: %v", err)
		}
		for _, key := range []string{"nome", "quantidade", "quantidade_minima", "categoria", "preco", "data_vencimento"} {
			if _, ok := payload[key]; !ok {
				t.Errorf("payload missing field %q", key)
			}
		}
		if _, ok := payload["id"]; ok {
			t.Error("payload should not carry an id")
		}
		fmt.Fprint(w, `{"id":9,"nome":"Amoxicilina","quantidade":30,"quantidade_minima":10,"categoria":"Antibiótico","preco":25.9,"data_vencimento":"2027-01-15"}`)
	}))
	t.Cleanup(backend.Close)

	client := gateway.New(backend.URL, newStoreWithTokens("access", "refresh"))

	med, err := client.CreateMedicamento(context.Background(), models.Medicamento{
		Nome:             "Amoxicilina",
		Quantidade:       30,
		QuantidadeMinima: 10,
		Categoria:        "Antibiótico",
		Preco:            25.9,
		DataVencimento:   "2027-01-15",
	})
	if err != nil {
		t.Fatalf("CreateMedicamento failed: %v", err)
	}
	if med.ID != 9 || med.Preco != 25.9 {
		t.Errorf("unexpected result %+v", med)
	}
}

func TestPrecoAcceptsStringAndNumber(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[
			{"id":1,"nome":"A","quantidade":1,"quantidade_minima":1,"categoria":"x","preco":"12.50","data_vencimento":"2026-01-01"},
			{"id":2,"nome":"B","quantidade":1,"quantidade_minima":1,"categoria":"x","preco":7.25,"data_vencimento":"2026-01-01"}
		]`)
	}))
	t.Cleanup(backend.Close)

	client := gateway.New(backend.URL, newStoreWithTokens("access", "refresh"))

	meds, err := client.Medicamentos(context.Background())
	if err != nil {
		t.Fatalf("Medicamentos failed: %v", err)
	}
	if meds[0].Preco != 12.5 {
		t.Errorf("string preco decoded as %v, want 12.5", meds[0].Preco)
	}
	if meds[1].Preco != 7.25 {
		t.Errorf("numeric preco decoded as %v, want 7.25", meds[1].Preco)
	}
}

func TestLoginStoresTokens(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/login/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["username"] != "ana@farmatech.com.br" || body["password"] != "s3nha" {
			t.Errorf("unexpected login payload %v", body)
		}
		fmt.Fprint(w, `{"success":true,"message":"ok","user":{"id":3,"email":"ana@farmatech.com.br"},"access":"acc","refresh":"ref"}`)
	}))
	t.Cleanup(backend.Close)

	store := session.NewMemoryStore()
	client := gateway.New(backend.URL, store)

	user, err := client.Login(context.Background(), "ana@farmatech.com.br", "s3nha")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if user.ID != 3 {
		t.Errorf("unexpected user %+v", user)
	}

	tokens, err := store.Tokens()
	if err != nil {
		t.Fatalf("tokens not stored: %v", err)
	}
	if tokens.Access != "acc" || tokens.Refresh != "ref" {
		t.Errorf("stored tokens %+v", tokens)
	}
}

func TestLoginRejectedPassesMessageThrough(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"success":false,"message":"usuário ou senha incorretos"}`)
	}))
	t.Cleanup(backend.Close)

	store := session.NewMemoryStore()
	client := gateway.New(backend.URL, store)

	_, err := client.Login(context.Background(), "ana@farmatech.com.br", "errada")
	var apiErr *gateway.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("got %v, want *APIError", err)
	}
	if apiErr.Message != "usuário ou senha incorretos" {
		t.Errorf("message = %q", apiErr.Message)
	}
	if _, err := store.Tokens(); !errors.Is(err, session.ErrNoSession) {
		t.Error("no tokens should be stored after a rejected login")
	}
}
